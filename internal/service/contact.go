package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/repository"
	"github.com/anekzad/portfolio/internal/validation"
)

var (
	ErrNotVerified   = errors.New("email not verified")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmailDelivery = errors.New("email delivery failed")
)

// SubmitResult reports the stored record id and whether the submission was a
// duplicate absorbed within the suppression window.
type SubmitResult struct {
	ID        string
	Duplicate bool
}

// ContactService accepts messages from verified senders and notifies the site
// owner. Duplicate (email, message) pairs inside the window are soft-accepted
// by returning the prior record id.
type ContactService struct {
	contacts        repository.ContactRepository
	mailer          Mailer
	duplicateWindow time.Duration
}

func NewContactService(contacts repository.ContactRepository, mailer Mailer, duplicateWindow time.Duration) *ContactService {
	return &ContactService{
		contacts:        contacts,
		mailer:          mailer,
		duplicateWindow: duplicateWindow,
	}
}

func (s *ContactService) Submit(name, email, message string) (*SubmitResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	if err := validation.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateMessage(message); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	verified, err := s.contacts.VerifiedByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, ErrNotVerified
		}
		return nil, fmt.Errorf("failed to look up contact: %w", err)
	}

	// Absorb double-submit clicks: identical (email, message) inside the
	// window returns the prior record instead of writing a new one.
	prior, err := s.contacts.RecentDuplicate(email, message, time.Now().Add(-s.duplicateWindow))
	if err == nil {
		return &SubmitResult{ID: prior.ID, Duplicate: true}, nil
	}
	if !errors.Is(err, repository.ErrContactNotFound) {
		return nil, fmt.Errorf("failed to check for duplicates: %w", err)
	}

	contact := &model.Contact{
		ID:        verified.ID,
		Name:      name,
		Email:     email,
		Message:   message,
		Verified:  true,
		CreatedAt: verified.CreatedAt,
	}
	err = s.contacts.Upsert(contact)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	// The notification emails are the whole point of the record, so delivery
	// failures fail the submission.
	err = s.mailer.SendContactNotification(name, email, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailDelivery, err)
	}
	err = s.mailer.SendContactConfirmation(email, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailDelivery, err)
	}

	return &SubmitResult{ID: contact.ID}, nil
}
