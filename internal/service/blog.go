package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/anekzad/portfolio/internal/markdown"
	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/repository"
)

// BlogService merges two post sources: markdown files under
// content/blog and published articles from the database.
type BlogService struct {
	parser      *markdown.Parser
	contentPath string
	articles    repository.ArticleRepository
}

func NewBlogService(contentPath string, articles repository.ArticleRepository) *BlogService {
	return &BlogService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
		articles:    articles,
	}
}

// Posts returns markdown posts and published database articles, newest first.
func (s *BlogService) Posts() ([]*model.BlogPost, error) {
	posts, err := s.markdownPosts()
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.Published()
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		post, err := s.articlePost(a)
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	return posts, nil
}

// Post resolves a slug to a markdown post first, then to a published article.
func (s *BlogService) Post(slug string) (*model.BlogPost, error) {
	post, err := s.markdownPost(slug)
	if err == nil {
		return post, nil
	}

	article, err := s.articles.BySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, fmt.Errorf("blog post not found: %s", slug)
		}
		return nil, err
	}
	if !article.Published {
		return nil, fmt.Errorf("blog post not found: %s", slug)
	}

	return s.articlePost(article)
}

// PostsByTag filters markdown posts by tag (articles carry no tags).
func (s *BlogService) PostsByTag(tag string) ([]*model.BlogPost, error) {
	allPosts, err := s.markdownPosts()
	if err != nil {
		return nil, err
	}

	var posts []*model.BlogPost
	for _, post := range allPosts {
		for _, postTag := range post.Tags {
			if strings.EqualFold(postTag, tag) {
				posts = append(posts, post)
				break
			}
		}
	}

	return posts, nil
}

func (s *BlogService) markdownPosts() ([]*model.BlogPost, error) {
	pattern := filepath.Join(s.contentPath, "blog", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var posts []*model.BlogPost
	for _, file := range files {
		post, err := s.markdownPost(filepath.Base(file[:len(file)-3]))
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (s *BlogService) markdownPost(slug string) (*model.BlogPost, error) {
	path := filepath.Join(s.contentPath, "blog", slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blog post not found: %s", slug)
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, err
	}

	post := &model.BlogPost{
		Slug:        slug,
		HTMLContent: string(htmlContent),
		Content:     string(content),
	}

	title, ok := meta["title"].(string)
	if ok {
		post.Title = title
	}

	author, ok := meta["author"].(string)
	if ok {
		post.Author = author
	}

	description, ok := meta["description"].(string)
	if ok {
		post.Description = description
	}

	// YAML decoders hand dates back as either a string or a time.Time
	// depending on quoting.
	switch v := meta["date"].(type) {
	case string:
		date, err := time.Parse("2006-01-02", v)
		if err == nil {
			post.Date = date
		}
	case time.Time:
		post.Date = v
	}

	tags, ok := meta["tags"].([]any)
	if ok {
		for _, tag := range tags {
			tagStr, ok := tag.(string)
			if ok {
				post.Tags = append(post.Tags, tagStr)
			}
		}
	}

	heroImage, ok := meta["hero_image"].(string)
	if ok {
		post.HeroImage = heroImage
	}

	post.ReadTime = calculateReadTime(string(content))

	return post, nil
}

func (s *BlogService) articlePost(article *model.Article) (*model.BlogPost, error) {
	htmlContent, err := s.parser.Parse([]byte(article.Content))
	if err != nil {
		return nil, err
	}

	post := &model.BlogPost{
		Title:       article.Title,
		Slug:        article.Slug,
		Date:        article.CreatedAt,
		Description: article.Description,
		Content:     article.Content,
		HTMLContent: string(htmlContent),
		ReadTime:    calculateReadTime(article.Content),
		FromDB:      true,
	}
	if article.ImageURL != nil {
		post.HeroImage = *article.ImageURL
	}

	return post, nil
}

func calculateReadTime(content string) int {
	words := strings.Fields(content)
	wordsPerMinute := 200
	readTime := len(words) / wordsPerMinute
	if readTime < 1 {
		readTime = 1
	}
	return readTime
}
