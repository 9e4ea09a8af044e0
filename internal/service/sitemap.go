package service

import (
	"encoding/xml"
	"log/slog"
	"strings"
	"time"

	"github.com/anekzad/portfolio/internal/model"
)

// publicRoutes lists the static public pages included in the sitemap.
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "monthly"},
	{"/about", "0.8", "monthly"},
	{"/blog", "0.9", "weekly"},
	{"/projects", "0.8", "monthly"},
	{"/contact", "0.7", "yearly"},
	{"/resume", "0.7", "monthly"},
}

type SitemapService struct {
	blogService *BlogService
	baseURL     string
}

func NewSitemapService(blogService *BlogService, baseURL string) *SitemapService {
	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SitemapService{
		blogService: blogService,
		baseURL:     baseURL,
	}
}

// GenerateSitemap generates a complete sitemap including all pages
func (s *SitemapService) GenerateSitemap() ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []model.SitemapURL{},
	}

	sitemap.URLs = append(sitemap.URLs, s.staticRoutes()...)

	blogURLs, err := s.blogURLs()
	if err != nil {
		// Log but don't fail - the blog might not have posts yet
		slog.Warn("failed to get blog URLs for sitemap", "error", err)
	} else {
		sitemap.URLs = append(sitemap.URLs, blogURLs...)
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	result := xml.Header + string(output)
	return []byte(result), nil
}

func (s *SitemapService) staticRoutes() []model.SitemapURL {
	today := time.Now().Format("2006-01-02")
	urls := make([]model.SitemapURL, 0, len(publicRoutes))

	for _, route := range publicRoutes {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}

	return urls
}

// blogURLs covers markdown posts, published articles, and tag pages.
func (s *SitemapService) blogURLs() ([]model.SitemapURL, error) {
	posts, err := s.blogService.Posts()
	if err != nil {
		return nil, err
	}

	urls := make([]model.SitemapURL, 0, len(posts))
	for _, post := range posts {
		lastMod := time.Now().Format("2006-01-02")
		if !post.Date.IsZero() {
			lastMod = post.Date.Format("2006-01-02")
		}

		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/blog/" + post.Slug,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	tagMap := make(map[string]bool)
	for _, post := range posts {
		for _, tag := range post.Tags {
			tagMap[tag] = true
		}
	}

	for tag := range tagMap {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/blog/tag/" + tag,
			LastMod:    time.Now().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.5",
		})
	}

	return urls, nil
}
