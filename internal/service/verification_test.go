package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/anekzad/portfolio/internal/repository"
)

// ---------------------------------------------------------------------------
// mockContactRepository / mockMailer — func-field stubs shared by the
// verification and contact service tests
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	upsertFunc               func(contact *model.Contact) error
	verifiedByEmailFunc      func(email string) (*model.Contact, error)
	confirmTokenFunc         func(token string) (*model.Contact, error)
	recentDuplicateFunc      func(email, message string, since time.Time) (*model.Contact, error)
	pendingVerificationsFunc func() ([]*model.Contact, error)
	countVerifiedFunc        func() (int, error)
}

func (m *mockContactRepository) Upsert(contact *model.Contact) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(contact)
	}
	return nil
}

func (m *mockContactRepository) VerifiedByEmail(email string) (*model.Contact, error) {
	if m.verifiedByEmailFunc != nil {
		return m.verifiedByEmailFunc(email)
	}
	return nil, repository.ErrContactNotFound
}

func (m *mockContactRepository) ConfirmToken(token string) (*model.Contact, error) {
	if m.confirmTokenFunc != nil {
		return m.confirmTokenFunc(token)
	}
	return nil, repository.ErrTokenNotFound
}

func (m *mockContactRepository) RecentDuplicate(email, message string, since time.Time) (*model.Contact, error) {
	if m.recentDuplicateFunc != nil {
		return m.recentDuplicateFunc(email, message, since)
	}
	return nil, repository.ErrContactNotFound
}

func (m *mockContactRepository) PendingVerifications() ([]*model.Contact, error) {
	if m.pendingVerificationsFunc != nil {
		return m.pendingVerificationsFunc()
	}
	return nil, nil
}

func (m *mockContactRepository) CountVerified() (int, error) {
	if m.countVerifiedFunc != nil {
		return m.countVerifiedFunc()
	}
	return 0, nil
}

type mockMailer struct {
	sendVerificationFunc func(email, token, name string) error
	sendNotificationFunc func(name, email, message string) error
	sendConfirmationFunc func(email, name string) error
}

func (m *mockMailer) SendVerificationEmail(email, token, name string) error {
	if m.sendVerificationFunc != nil {
		return m.sendVerificationFunc(email, token, name)
	}
	return nil
}

func (m *mockMailer) SendContactNotification(name, email, message string) error {
	if m.sendNotificationFunc != nil {
		return m.sendNotificationFunc(name, email, message)
	}
	return nil
}

func (m *mockMailer) SendContactConfirmation(email, name string) error {
	if m.sendConfirmationFunc != nil {
		return m.sendConfirmationFunc(email, name)
	}
	return nil
}

// ---------------------------------------------------------------------------
// GenerateToken tests
// ---------------------------------------------------------------------------

func TestGenerateToken_Format(t *testing.T) {
	token, err := GenerateToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(token) != 64 {
		t.Errorf("expected 64-char token, got %d chars", len(token))
	}
	for _, r := range token {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Errorf("token contains non-hex character %q", r)
			break
		}
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[token] {
			t.Fatal("generated duplicate token")
		}
		seen[token] = true
	}
}

// ---------------------------------------------------------------------------
// RequestVerification tests
// ---------------------------------------------------------------------------

func TestRequestVerification_NewAddress(t *testing.T) {
	var saved *model.Contact
	var sentTo, sentToken string

	repo := &mockContactRepository{
		upsertFunc: func(contact *model.Contact) error {
			saved = contact
			return nil
		},
	}
	mailer := &mockMailer{
		sendVerificationFunc: func(email, token, name string) error {
			sentTo = email
			sentToken = token
			return nil
		},
	}
	svc := NewVerificationService(repo, mailer, 24*time.Hour)

	alreadyVerified, err := svc.RequestVerification("Jane", "Jane@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alreadyVerified {
		t.Error("expected alreadyVerified=false for a new address")
	}

	if saved == nil {
		t.Fatal("expected a record to be saved")
	}
	if saved.Email != "jane@example.com" {
		t.Errorf("expected normalized email, got %q", saved.Email)
	}
	if saved.ID != model.PlaceholderID("jane@example.com") {
		t.Errorf("expected placeholder id, got %q", saved.ID)
	}
	if saved.Message != model.PendingMessage {
		t.Errorf("expected pending message, got %q", saved.Message)
	}
	if saved.Verified {
		t.Error("placeholder record must not be verified")
	}
	if saved.VerifyToken == nil || *saved.VerifyToken != sentToken {
		t.Error("emailed token does not match the stored token")
	}
	if saved.TokenExpires == nil {
		t.Fatal("expected a token expiry")
	}
	expectedExpiry := time.Now().Add(24 * time.Hour)
	if saved.TokenExpires.Before(expectedExpiry.Add(-time.Minute)) || saved.TokenExpires.After(expectedExpiry.Add(time.Minute)) {
		t.Errorf("expiry %v not near %v", saved.TokenExpires, expectedExpiry)
	}
	if sentTo != "jane@example.com" {
		t.Errorf("verification email sent to %q", sentTo)
	}
}

func TestRequestVerification_AlreadyVerified(t *testing.T) {
	upserted := false
	mailed := false

	repo := &mockContactRepository{
		verifiedByEmailFunc: func(email string) (*model.Contact, error) {
			return &model.Contact{ID: "abc", Email: email, Verified: true}, nil
		},
		upsertFunc: func(contact *model.Contact) error {
			upserted = true
			return nil
		},
	}
	mailer := &mockMailer{
		sendVerificationFunc: func(email, token, name string) error {
			mailed = true
			return nil
		},
	}
	svc := NewVerificationService(repo, mailer, 24*time.Hour)

	alreadyVerified, err := svc.RequestVerification("Jane", "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !alreadyVerified {
		t.Error("expected alreadyVerified=true")
	}
	if upserted {
		t.Error("verified address must not be overwritten")
	}
	if mailed {
		t.Error("verified address must not receive another email")
	}
}

func TestRequestVerification_InvalidEmail(t *testing.T) {
	svc := NewVerificationService(&mockContactRepository{}, &mockMailer{}, 24*time.Hour)

	_, err := svc.RequestVerification("Jane", "not-an-email")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}

	_, err = svc.RequestVerification("Jane", "")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail for empty address, got %v", err)
	}
}

func TestRequestVerification_DefaultName(t *testing.T) {
	var saved *model.Contact
	repo := &mockContactRepository{
		upsertFunc: func(contact *model.Contact) error {
			saved = contact
			return nil
		},
	}
	svc := NewVerificationService(repo, &mockMailer{}, 24*time.Hour)

	_, err := svc.RequestVerification("   ", "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Name != "User" {
		t.Errorf("expected default name, got %q", saved.Name)
	}
}

func TestRequestVerification_MailerFailure(t *testing.T) {
	repo := &mockContactRepository{}
	mailer := &mockMailer{
		sendVerificationFunc: func(email, token, name string) error {
			return errors.New("smtp down")
		},
	}
	svc := NewVerificationService(repo, mailer, 24*time.Hour)

	_, err := svc.RequestVerification("Jane", "jane@example.com")
	if err == nil {
		t.Fatal("expected an error when the email cannot be sent")
	}
}

// ---------------------------------------------------------------------------
// ConfirmToken / Status tests
// ---------------------------------------------------------------------------

func TestConfirmToken_EmptyToken(t *testing.T) {
	svc := NewVerificationService(&mockContactRepository{}, &mockMailer{}, 24*time.Hour)

	_, err := svc.ConfirmToken("")
	if !errors.Is(err, repository.ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestConfirmToken_Delegates(t *testing.T) {
	confirmed := &model.Contact{ID: "abc", Verified: true}
	repo := &mockContactRepository{
		confirmTokenFunc: func(token string) (*model.Contact, error) {
			if token != "tok" {
				t.Errorf("unexpected token %q", token)
			}
			return confirmed, nil
		},
	}
	svc := NewVerificationService(repo, &mockMailer{}, 24*time.Hour)

	contact, err := svc.ConfirmToken("tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact != confirmed {
		t.Error("expected the repository result to be returned")
	}
}

func TestStatus_CountsAndExpiry(t *testing.T) {
	token := "tok"
	expired := time.Now().Add(-time.Hour)
	active := time.Now().Add(time.Hour)

	repo := &mockContactRepository{
		pendingVerificationsFunc: func() ([]*model.Contact, error) {
			return []*model.Contact{
				{ID: "a", Email: "a@example.com", VerifyToken: &token, TokenExpires: &expired},
				{ID: "b", Email: "b@example.com", VerifyToken: &token, TokenExpires: &active},
			}, nil
		},
		countVerifiedFunc: func() (int, error) {
			return 7, nil
		},
	}
	svc := NewVerificationService(repo, &mockMailer{}, 24*time.Hour)

	status, err := svc.Status()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.PendingCount != 2 {
		t.Errorf("expected 2 pending, got %d", status.PendingCount)
	}
	if status.VerifiedCount != 7 {
		t.Errorf("expected 7 verified, got %d", status.VerifiedCount)
	}
	if !status.PendingVerifications[0].Expired {
		t.Error("first attempt should report expired")
	}
	if status.PendingVerifications[1].Expired {
		t.Error("second attempt should not report expired")
	}
}
