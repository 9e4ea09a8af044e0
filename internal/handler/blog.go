package handler

import (
	"log/slog"
	"net/http"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/service"
	"github.com/anekzad/portfolio/internal/web"
)

type BlogHandler struct {
	blogService *service.BlogService
	renderer    *web.Renderer
}

func NewBlogHandler(blogService *service.BlogService, renderer *web.Renderer) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		renderer:    renderer,
	}
}

type blogListData struct {
	Posts []*model.BlogPost
	Tag   string
}

func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.Posts()
	if err != nil {
		slog.Error("blog list failed", "error", err)
		http.Error(w, "Failed to load blog posts", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, r, "blog_list", "Articles & Blog", blogListData{Posts: posts})
}

func (h *BlogHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		h.renderer.RenderStatus(w, r, http.StatusNotFound, "not_found", "Not Found", nil)
		return
	}

	post, err := h.blogService.Post(slug)
	if err != nil {
		h.renderer.RenderStatus(w, r, http.StatusNotFound, "not_found", "Not Found", nil)
		return
	}

	h.renderer.Render(w, r, "blog_post", post.Title, post)
}

func (h *BlogHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")
	if tag == "" {
		h.renderer.RenderStatus(w, r, http.StatusNotFound, "not_found", "Not Found", nil)
		return
	}

	posts, err := h.blogService.PostsByTag(tag)
	if err != nil {
		slog.Error("blog tag list failed", "error", err, "tag", tag)
		http.Error(w, "Failed to load blog posts", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, r, "blog_list", "Articles & Blog", blogListData{Posts: posts, Tag: tag})
}
