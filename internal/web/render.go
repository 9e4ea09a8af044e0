package web

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/anekzad/portfolio/internal/config"
	"github.com/anekzad/portfolio/internal/ctxkeys"
)

//go:embed templates
var templatesFS embed.FS

// PageData is the payload handed to every page template.
type PageData struct {
	Title string
	App   *config.Config
	CSRF  string
	Data  any
}

// Renderer renders named page templates from the embedded template tree.
type Renderer struct {
	fs fs.FS
}

func NewRenderer() *Renderer {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The subdirectory is embedded at compile time; failing to open it
		// means the binary is broken.
		panic(err)
	}
	return &Renderer{fs: sub}
}

// Render writes the named page with an HTTP 200 status.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	rn.RenderStatus(w, r, http.StatusOK, name, title, data)
}

// RenderStatus writes the named page with an explicit status code.
func (rn *Renderer) RenderStatus(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	v, err := Parse(rn.fs, name)
	if err != nil {
		slog.Error("render failed", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	err = v.Render(w, PageData{
		Title: title,
		App:   ctxkeys.Config(r.Context()),
		CSRF:  ctxkeys.CSRFToken(r.Context()),
		Data:  data,
	})
	if err != nil {
		slog.Error("render failed", "page", name, "error", err)
	}
}
