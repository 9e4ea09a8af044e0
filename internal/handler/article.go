package handler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/repository"
	"github.com/anekzad/portfolio/internal/service"
)

// 10 MB cap on multipart article forms (hero image included).
const maxArticleFormSize = 10 << 20

type ArticleHandler struct {
	articleService *service.ArticleService
}

func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

type articleResponse struct {
	Success bool           `json:"success"`
	Article *model.Article `json:"article"`
}

// List handles GET /api/articles (admin: includes unpublished drafts).
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.All()
	if err != nil {
		slog.Error("article list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list articles")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

// Create handles POST /api/articles (multipart form with optional image).
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := articleInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	article, err := h.articleService.Create(*in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleInvalid), errors.Is(err, service.ErrSlugInvalid):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrDuplicateSlug):
			writeError(w, http.StatusConflict, "An article with this slug already exists")
		default:
			slog.Error("article create failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create article")
		}
		return
	}

	writeJSON(w, http.StatusOK, articleResponse{Success: true, Article: article})
}

// Update handles PUT /api/articles/{slug}.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	in, err := articleInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	article, err := h.articleService.Update(slug, *in)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrArticleNotFound):
			writeError(w, http.StatusNotFound, "Article not found")
		default:
			slog.Error("article update failed", "error", err, "slug", slug)
			writeError(w, http.StatusInternalServerError, "Failed to update article")
		}
		return
	}

	writeJSON(w, http.StatusOK, articleResponse{Success: true, Article: article})
}

// Delete handles DELETE /api/articles/{slug}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	err := h.articleService.Delete(slug)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		slog.Error("article delete failed", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func articleInput(r *http.Request) (*service.ArticleInput, error) {
	err := r.ParseMultipartForm(maxArticleFormSize)
	if err != nil {
		return nil, err
	}

	in := &service.ArticleInput{
		Title:       r.FormValue("title"),
		Slug:        r.FormValue("slug"),
		Description: r.FormValue("description"),
		Content:     r.FormValue("content"),
		Published:   r.FormValue("published") == "true",
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		// Buffer the upload so the multipart reader can be closed before
		// the storage call.
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		in.Image = bytes.NewReader(data)
		in.ImageName = header.Filename
	} else if err != http.ErrMissingFile {
		return nil, err
	}

	return in, nil
}
