package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/anekzad/portfolio/internal/ctxkeys"
	"github.com/anekzad/portfolio/internal/service"
	"github.com/anekzad/portfolio/internal/web"
)

type AdminHandler struct {
	authService *service.AuthService
	renderer    *web.Renderer
}

func NewAdminHandler(authService *service.AuthService, renderer *web.Renderer) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		renderer:    renderer,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, expiry, err := h.authService.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid password")
		case errors.Is(err, service.ErrAuthNotConfigured):
			writeError(w, http.StatusServiceUnavailable, "Admin login is not configured")
		default:
			slog.Error("admin login failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to process login")
		}
		return
	}

	h.authService.SetSessionCookie(w, token, expiry)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout handles POST /api/admin/logout.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type adminPageData struct {
	LoggedIn bool
}

// AdminPage handles GET /admin.
func (h *AdminHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "admin", "Admin", adminPageData{
		LoggedIn: ctxkeys.IsAdmin(r.Context()),
	})
}
