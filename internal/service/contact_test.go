package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anekzad/portfolio/internal/model"
)

func verifiedRepo(id string) *mockContactRepository {
	return &mockContactRepository{
		verifiedByEmailFunc: func(email string) (*model.Contact, error) {
			return &model.Contact{ID: id, Email: email, Verified: true, CreatedAt: time.Now().Add(-time.Hour)}, nil
		},
	}
}

func TestSubmit_NotVerified(t *testing.T) {
	svc := NewContactService(&mockContactRepository{}, &mockMailer{}, 5*time.Minute)

	_, err := svc.Submit("Jane", "jane@example.com", "Hello there")
	if !errors.Is(err, ErrNotVerified) {
		t.Errorf("expected ErrNotVerified, got %v", err)
	}
}

func TestSubmit_Success(t *testing.T) {
	var saved *model.Contact
	notified := false
	confirmed := false

	repo := verifiedRepo("contact-1")
	repo.upsertFunc = func(contact *model.Contact) error {
		saved = contact
		return nil
	}
	mailer := &mockMailer{
		sendNotificationFunc: func(name, email, message string) error {
			notified = true
			return nil
		},
		sendConfirmationFunc: func(email, name string) error {
			confirmed = true
			return nil
		},
	}
	svc := NewContactService(repo, mailer, 5*time.Minute)

	result, err := svc.Submit("Jane", "Jane@Example.com ", "Hello there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ID != "contact-1" {
		t.Errorf("expected the verified record id, got %q", result.ID)
	}
	if result.Duplicate {
		t.Error("fresh submission should not report duplicate")
	}
	if saved == nil {
		t.Fatal("expected the message to be saved")
	}
	if saved.ID != "contact-1" {
		t.Errorf("message must reuse the verified record id, got %q", saved.ID)
	}
	if saved.Email != "jane@example.com" {
		t.Errorf("expected normalized email, got %q", saved.Email)
	}
	if saved.Message != "Hello there" {
		t.Errorf("unexpected message %q", saved.Message)
	}
	if !saved.Verified {
		t.Error("saved message must keep verified=true")
	}
	if !notified || !confirmed {
		t.Error("expected both owner notification and sender confirmation")
	}
}

func TestSubmit_DuplicateWithinWindow(t *testing.T) {
	upserted := false
	mailed := false

	repo := verifiedRepo("contact-1")
	repo.recentDuplicateFunc = func(email, message string, since time.Time) (*model.Contact, error) {
		// The cutoff must reach back the configured window.
		expected := time.Now().Add(-5 * time.Minute)
		if since.Before(expected.Add(-time.Minute)) || since.After(expected.Add(time.Minute)) {
			t.Errorf("cutoff %v not near %v", since, expected)
		}
		return &model.Contact{ID: "prior-id", Email: email, Message: message}, nil
	}
	repo.upsertFunc = func(contact *model.Contact) error {
		upserted = true
		return nil
	}
	mailer := &mockMailer{
		sendNotificationFunc: func(name, email, message string) error {
			mailed = true
			return nil
		},
	}
	svc := NewContactService(repo, mailer, 5*time.Minute)

	result, err := svc.Submit("Jane", "jane@example.com", "Hello there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Duplicate {
		t.Error("expected duplicate=true")
	}
	if result.ID != "prior-id" {
		t.Errorf("expected the prior record id, got %q", result.ID)
	}
	if upserted {
		t.Error("duplicate must not write a new record")
	}
	if mailed {
		t.Error("duplicate must not send emails")
	}
}

func TestSubmit_InvalidInput(t *testing.T) {
	svc := NewContactService(verifiedRepo("contact-1"), &mockMailer{}, 5*time.Minute)

	tests := []struct {
		name    string
		inName  string
		inEmail string
		inMsg   string
	}{
		{"empty name", "", "jane@example.com", "Hello"},
		{"empty message", "Jane", "jane@example.com", "   "},
		{"bad email", "Jane", "not-an-email", "Hello"},
		{"long message", "Jane", "jane@example.com", strings.Repeat("x", 5001)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(tt.inName, tt.inEmail, tt.inMsg)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSubmit_NotificationFailureFailsSubmission(t *testing.T) {
	repo := verifiedRepo("contact-1")
	mailer := &mockMailer{
		sendNotificationFunc: func(name, email, message string) error {
			return errors.New("smtp down")
		},
	}
	svc := NewContactService(repo, mailer, 5*time.Minute)

	_, err := svc.Submit("Jane", "jane@example.com", "Hello there")
	if !errors.Is(err, ErrEmailDelivery) {
		t.Errorf("expected ErrEmailDelivery, got %v", err)
	}
}

func TestSubmit_RepositoryErrorSurfaces(t *testing.T) {
	repo := &mockContactRepository{
		verifiedByEmailFunc: func(email string) (*model.Contact, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewContactService(repo, &mockMailer{}, 5*time.Minute)

	_, err := svc.Submit("Jane", "jane@example.com", "Hello there")
	if err == nil || errors.Is(err, ErrNotVerified) {
		t.Errorf("infrastructure errors must not read as ErrNotVerified, got %v", err)
	}
}
