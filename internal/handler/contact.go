package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/anekzad/portfolio/internal/repository"
	"github.com/anekzad/portfolio/internal/service"
	"github.com/anekzad/portfolio/internal/web"
)

type ContactHandler struct {
	verificationService *service.VerificationService
	contactService      *service.ContactService
	renderer            *web.Renderer
}

func NewContactHandler(verificationService *service.VerificationService, contactService *service.ContactService, renderer *web.Renderer) *ContactHandler {
	return &ContactHandler{
		verificationService: verificationService,
		contactService:      contactService,
		renderer:            renderer,
	}
}

type verifyEmailRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type verifyEmailResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	AlreadyVerified bool   `json:"alreadyVerified,omitempty"`
}

// RequestVerification handles POST /api/contact/verify-email.
func (h *ContactHandler) RequestVerification(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email address is required")
		return
	}

	alreadyVerified, err := h.verificationService.RequestVerification(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, "Please enter a valid email address")
			return
		}
		slog.Error("verification request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to process your request")
		return
	}

	if alreadyVerified {
		writeJSON(w, http.StatusOK, verifyEmailResponse{
			Success:         true,
			Message:         "Your email is already verified. You can send your message directly.",
			AlreadyVerified: true,
		})
		return
	}

	writeJSON(w, http.StatusOK, verifyEmailResponse{
		Success: true,
		Message: "Verification email has been sent. Please check your inbox.",
	})
}

type verifyResult struct {
	Heading string
	Message string
	Success bool
}

// Confirm handles GET /api/contact/verify?token=...
// The link is followed directly in a browser, so both outcomes render HTML.
func (h *ContactHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		h.renderer.RenderStatus(w, r, http.StatusBadRequest, "verify_result", "Invalid Token", verifyResult{
			Heading: "Invalid Token",
			Message: "No verification token provided. Please check the link and try again.",
		})
		return
	}

	_, err := h.verificationService.ConfirmToken(token)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTokenNotFound):
			// A consumed token looks identical to a never-issued one, so the
			// page covers the already-verified case as well.
			h.renderer.RenderStatus(w, r, http.StatusBadRequest, "verify_result", "Invalid Token", verifyResult{
				Heading: "Invalid Token",
				Message: "This verification link is invalid or has already been used. If you already verified your email, you can return to the contact page and send your message. Otherwise, please request a new verification email.",
			})
		case errors.Is(err, repository.ErrTokenExpired):
			h.renderer.RenderStatus(w, r, http.StatusBadRequest, "verify_result", "Token Expired", verifyResult{
				Heading: "Token Expired",
				Message: "The verification link has expired. Please request a new verification email.",
			})
		default:
			slog.Error("token confirmation failed", "error", err)
			h.renderer.RenderStatus(w, r, http.StatusInternalServerError, "verify_result", "Verification Error", verifyResult{
				Heading: "Verification Error",
				Message: "An error occurred during verification. Please try again later.",
			})
		}
		return
	}

	h.renderer.Render(w, r, "verify_result", "Email Verified", verifyResult{
		Heading: "Email Verified",
		Message: "Your email has been successfully verified. You can now return to the contact page and send your message.",
		Success: true,
	})
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type submitResponse struct {
	Success           bool   `json:"success"`
	ID                string `json:"id"`
	DuplicateDetected bool   `json:"duplicateDetected,omitempty"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	result, err := h.contactService.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotVerified):
			writeError(w, http.StatusForbidden, "Please verify your email address first")
		default:
			slog.Error("contact submission failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to process your request")
		}
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success:           true,
		ID:                result.ID,
		DuplicateDetected: result.Duplicate,
	})
}

// Status handles GET /api/contact/verification-status (admin only).
func (h *ContactHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.verificationService.Status()
	if err != nil {
		slog.Error("verification status failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch verification status")
		return
	}

	writeJSON(w, http.StatusOK, status)
}
