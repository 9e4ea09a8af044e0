package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/service"
	"github.com/anekzad/portfolio/internal/web"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// homePostCount is how many recent posts the home page shows.
const homePostCount = 3

type PageHandler struct {
	blogService *service.BlogService
	renderer    *web.Renderer
	titleCaser  cases.Caser
}

func NewPageHandler(blogService *service.BlogService, renderer *web.Renderer) *PageHandler {
	return &PageHandler{
		blogService: blogService,
		renderer:    renderer,
		titleCaser:  cases.Title(language.English),
	}
}

func (h *PageHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.Posts()
	if err != nil {
		slog.Warn("failed to load posts for home page", "error", err)
		posts = []*model.BlogPost{}
	}
	if len(posts) > homePostCount {
		posts = posts[:homePostCount]
	}

	h.renderer.Render(w, r, "home", "", posts)
}

// StaticPage returns a handler rendering the named content-only page.
// The page title is derived from the template name.
func (h *PageHandler) StaticPage(name string) http.HandlerFunc {
	title := h.titleCaser.String(strings.ReplaceAll(name, "-", " "))
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, name, title, nil)
	}
}

func (h *PageHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderStatus(w, r, http.StatusNotFound, "not_found", "Not Found", nil)
}
