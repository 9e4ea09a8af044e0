package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/repository"
	"github.com/anekzad/portfolio/internal/validation"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
)

// VerificationService owns the email-verification workflow: issuing tokens,
// mailing confirmation links, and flipping records to verified.
type VerificationService struct {
	contacts    repository.ContactRepository
	mailer      Mailer
	tokenExpiry time.Duration
}

func NewVerificationService(contacts repository.ContactRepository, mailer Mailer, tokenExpiry time.Duration) *VerificationService {
	return &VerificationService{
		contacts:    contacts,
		mailer:      mailer,
		tokenExpiry: tokenExpiry,
	}
}

// GenerateToken produces an unpredictable 256-bit token as a 64-char hex string.
func GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// RequestVerification issues (or reissues) a verification token for the
// address and emails the confirmation link. Returns alreadyVerified=true
// without touching the record when the address has a verified row.
// Repeated requests for the same unverified address overwrite the one
// placeholder row, invalidating any earlier token.
func (s *VerificationService) RequestVerification(name, email string) (alreadyVerified bool, err error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	if verr := validation.ValidateEmail(email); verr != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidEmail, verr)
	}

	_, err = s.contacts.VerifiedByEmail(email)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, repository.ErrContactNotFound) {
		return false, fmt.Errorf("failed to look up contact: %w", err)
	}

	token, err := GenerateToken()
	if err != nil {
		return false, fmt.Errorf("failed to generate token: %w", err)
	}
	expires := time.Now().Add(s.tokenExpiry)

	if name == "" {
		name = "User"
	}

	contact := &model.Contact{
		ID:           model.PlaceholderID(email),
		Name:         name,
		Email:        email,
		Message:      model.PendingMessage,
		Verified:     false,
		VerifyToken:  &token,
		TokenExpires: &expires,
	}
	err = s.contacts.Upsert(contact)
	if err != nil {
		return false, fmt.Errorf("failed to save verification record: %w", err)
	}

	err = s.mailer.SendVerificationEmail(email, token, name)
	if err != nil {
		return false, fmt.Errorf("failed to send verification email: %w", err)
	}

	return false, nil
}

// ConfirmToken marks the record carrying the token as verified and clears the
// token. The expiry check and the clear are a single conditional update in the
// repository, so concurrent confirmations converge on one verified record.
// A token that was already consumed reports repository.ErrTokenNotFound.
func (s *VerificationService) ConfirmToken(token string) (*model.Contact, error) {
	if token == "" {
		return nil, repository.ErrTokenNotFound
	}
	return s.contacts.ConfirmToken(token)
}

// PendingVerification is one in-flight verification attempt, for the admin
// status view.
type PendingVerification struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	CreatedAt    time.Time  `json:"createdAt"`
	TokenExpires *time.Time `json:"tokenExpires"`
	Expired      bool       `json:"expired"`
}

type VerificationStatus struct {
	PendingCount         int                   `json:"pendingCount"`
	VerifiedCount        int                   `json:"verifiedCount"`
	PendingVerifications []PendingVerification `json:"pendingVerifications"`
}

// Status reports pending verification attempts and the verified-contact count.
func (s *VerificationService) Status() (*VerificationStatus, error) {
	pending, err := s.contacts.PendingVerifications()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending verifications: %w", err)
	}

	verified, err := s.contacts.CountVerified()
	if err != nil {
		return nil, fmt.Errorf("failed to count verified contacts: %w", err)
	}

	status := &VerificationStatus{
		PendingCount:         len(pending),
		VerifiedCount:        verified,
		PendingVerifications: make([]PendingVerification, 0, len(pending)),
	}
	for _, c := range pending {
		status.PendingVerifications = append(status.PendingVerifications, PendingVerification{
			ID:           c.ID,
			Name:         c.Name,
			Email:        c.Email,
			CreatedAt:    c.CreatedAt,
			TokenExpires: c.TokenExpires,
			Expired:      c.TokenExpired(),
		})
	}

	return status, nil
}
