package service

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/repository"
	"github.com/anekzad/portfolio/internal/storage"
)

var (
	ErrArticleInvalid = errors.New("title, slug and content are required")
	ErrSlugInvalid    = errors.New("slug may only contain lowercase letters, digits and dashes")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ArticleInput carries the fields of a create/update request. Image is
// optional; when present it is uploaded to object storage and the resulting
// URL stored on the article.
type ArticleInput struct {
	Title       string
	Slug        string
	Description string
	Content     string
	Published   bool
	Image       io.Reader
	ImageName   string
}

type ArticleService struct {
	articles repository.ArticleRepository
	storage  storage.Storage
}

func NewArticleService(articles repository.ArticleRepository, store storage.Storage) *ArticleService {
	return &ArticleService{
		articles: articles,
		storage:  store,
	}
}

func (s *ArticleService) Create(in ArticleInput) (*model.Article, error) {
	if in.Title == "" || in.Slug == "" || in.Content == "" {
		return nil, ErrArticleInvalid
	}
	if !slugPattern.MatchString(in.Slug) {
		return nil, ErrSlugInvalid
	}

	article := &model.Article{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		Content:     in.Content,
		Published:   in.Published,
	}

	if in.Image != nil {
		url, err := s.uploadImage(in.Image, in.ImageName)
		if err != nil {
			return nil, err
		}
		article.ImageURL = &url
	}

	err := s.articles.Create(article)
	if err != nil {
		return nil, err
	}

	return article, nil
}

func (s *ArticleService) Update(slug string, in ArticleInput) (*model.Article, error) {
	article, err := s.articles.BySlug(slug)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		article.Title = in.Title
	}
	if in.Description != "" {
		article.Description = in.Description
	}
	if in.Content != "" {
		article.Content = in.Content
	}
	article.Published = in.Published

	if in.Image != nil {
		url, err := s.uploadImage(in.Image, in.ImageName)
		if err != nil {
			return nil, err
		}
		article.ImageURL = &url
	}

	err = s.articles.Update(article)
	if err != nil {
		return nil, err
	}

	return article, nil
}

func (s *ArticleService) Delete(slug string) error {
	return s.articles.Delete(slug)
}

func (s *ArticleService) BySlug(slug string) (*model.Article, error) {
	return s.articles.BySlug(slug)
}

// All returns every article, including unpublished drafts (admin view).
func (s *ArticleService) All() ([]*model.Article, error) {
	return s.articles.All()
}

func (s *ArticleService) Published() ([]*model.Article, error) {
	return s.articles.Published()
}

func (s *ArticleService) uploadImage(image io.Reader, name string) (string, error) {
	if name == "" {
		name = "image"
	}
	key := fmt.Sprintf("articles/%d-%s", time.Now().UnixMilli(), strings.ReplaceAll(name, " ", "-"))

	err := s.storage.Save(key, image)
	if err != nil {
		return "", fmt.Errorf("failed to upload article image: %w", err)
	}

	return s.storage.URL(key), nil
}
