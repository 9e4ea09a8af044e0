package service

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/repository"
)

type mockStorage struct {
	saveFunc func(path string, file io.Reader) error
	urlFunc  func(path string) string
}

func (m *mockStorage) Save(path string, file io.Reader) error {
	if m.saveFunc != nil {
		return m.saveFunc(path, file)
	}
	return nil
}

func (m *mockStorage) Delete(path string) error { return nil }

func (m *mockStorage) URL(path string) string {
	if m.urlFunc != nil {
		return m.urlFunc(path)
	}
	return "https://cdn.example.com/" + path
}

func TestArticleCreate_Valid(t *testing.T) {
	var created *model.Article
	articles := &mockArticleRepository{
		createFunc: func(article *model.Article) error {
			created = article
			return nil
		},
	}
	svc := NewArticleService(articles, &mockStorage{})

	article, err := svc.Create(ArticleInput{
		Title:     "New Post",
		Slug:      "new-post",
		Content:   "Body text.",
		Published: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected the repository create to be called")
	}
	if article.Slug != "new-post" || !article.Published {
		t.Errorf("unexpected article %+v", article)
	}
	if article.ImageURL != nil {
		t.Error("no image was supplied, ImageURL should be nil")
	}
}

func TestArticleCreate_Validation(t *testing.T) {
	svc := NewArticleService(&mockArticleRepository{}, &mockStorage{})

	tests := []struct {
		name string
		in   ArticleInput
		want error
	}{
		{"missing title", ArticleInput{Slug: "s", Content: "c"}, ErrArticleInvalid},
		{"missing content", ArticleInput{Title: "t", Slug: "s"}, ErrArticleInvalid},
		{"uppercase slug", ArticleInput{Title: "t", Slug: "New-Post", Content: "c"}, ErrSlugInvalid},
		{"spaces in slug", ArticleInput{Title: "t", Slug: "new post", Content: "c"}, ErrSlugInvalid},
		{"leading dash", ArticleInput{Title: "t", Slug: "-new-post", Content: "c"}, ErrSlugInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestArticleCreate_UploadsImage(t *testing.T) {
	var savedKey string
	store := &mockStorage{
		saveFunc: func(path string, file io.Reader) error {
			savedKey = path
			return nil
		},
	}
	svc := NewArticleService(&mockArticleRepository{}, store)

	article, err := svc.Create(ArticleInput{
		Title:     "With Image",
		Slug:      "with-image",
		Content:   "Body.",
		Image:     strings.NewReader("fake image bytes"),
		ImageName: "hero shot.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(savedKey, "articles/") {
		t.Errorf("image key should live under articles/, got %q", savedKey)
	}
	if strings.Contains(savedKey, " ") {
		t.Errorf("image key should not contain spaces, got %q", savedKey)
	}
	if article.ImageURL == nil || !strings.HasPrefix(*article.ImageURL, "https://cdn.example.com/") {
		t.Errorf("unexpected image url %v", article.ImageURL)
	}
}

func TestArticleCreate_UploadFailure(t *testing.T) {
	store := &mockStorage{
		saveFunc: func(path string, file io.Reader) error {
			return errors.New("bucket unavailable")
		},
	}
	svc := NewArticleService(&mockArticleRepository{}, store)

	_, err := svc.Create(ArticleInput{
		Title:   "With Image",
		Slug:    "with-image",
		Content: "Body.",
		Image:   strings.NewReader("bytes"),
	})
	if err == nil {
		t.Fatal("expected an error when the upload fails")
	}
}

func TestArticleUpdate_PartialFields(t *testing.T) {
	existing := &model.Article{
		Title:       "Old Title",
		Slug:        "post",
		Description: "Old description",
		Content:     "Old content",
		Published:   false,
	}
	var updated *model.Article
	articles := &mockArticleRepository{
		bySlugFunc: func(slug string) (*model.Article, error) {
			return existing, nil
		},
		updateFunc: func(article *model.Article) error {
			updated = article
			return nil
		},
	}
	svc := NewArticleService(articles, &mockStorage{})

	_, err := svc.Update("post", ArticleInput{Title: "New Title", Published: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Title != "New Title" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.Content != "Old content" {
		t.Errorf("empty input fields must keep existing values, got %q", updated.Content)
	}
	if !updated.Published {
		t.Error("published flag not applied")
	}
}

func TestArticleUpdate_NotFound(t *testing.T) {
	svc := NewArticleService(&mockArticleRepository{}, &mockStorage{})

	_, err := svc.Update("missing", ArticleInput{Title: "x"})
	if !errors.Is(err, repository.ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}
