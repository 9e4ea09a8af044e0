package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrTokenNotFound   = errors.New("token not found")
	ErrTokenExpired    = errors.New("token has expired")
)

type ContactRepository interface {
	Upsert(contact *model.Contact) error
	VerifiedByEmail(email string) (*model.Contact, error)
	ConfirmToken(token string) (*model.Contact, error)
	RecentDuplicate(email, message string, since time.Time) (*model.Contact, error)
	PendingVerifications() ([]*model.Contact, error)
	CountVerified() (int, error)
}

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Upsert inserts the record or, when the id already exists, overwrites the
// mutable columns in place. Keyed on id so repeated verification requests for
// the same address reuse one row.
func (r *contactRepository) Upsert(contact *model.Contact) error {
	now := time.Now()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = now
	}
	contact.UpdatedAt = now

	query := `
		INSERT INTO contacts (id, name, email, message, verified, verify_token, token_expires, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			message = excluded.message,
			verified = excluded.verified,
			verify_token = excluded.verify_token,
			token_expires = excluded.token_expires,
			updated_at = excluded.updated_at
	`
	_, err := r.db.Exec(query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Message,
		contact.Verified,
		contact.VerifyToken,
		contact.TokenExpires,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	return err
}

// VerifiedByEmail returns the newest verified record for the address, or
// ErrContactNotFound if the address has never completed verification.
func (r *contactRepository) VerifiedByEmail(email string) (*model.Contact, error) {
	contact := &model.Contact{}
	query := `SELECT * FROM contacts WHERE email = $1 AND verified = TRUE ORDER BY updated_at DESC LIMIT 1`

	err := r.db.Get(contact, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrContactNotFound
	}

	return contact, err
}

// ConfirmToken atomically flips the record to verified and clears the token.
// The expiry check happens inside the same UPDATE, so two concurrent
// confirmations cannot both clear the token and the record converges to a
// single verified state. When the conditional update matches nothing, a
// follow-up read distinguishes an expired token from an unknown one.
func (r *contactRepository) ConfirmToken(token string) (*model.Contact, error) {
	contact := &model.Contact{}
	now := time.Now()

	query := `
		UPDATE contacts
		SET verified = TRUE, verify_token = NULL, token_expires = NULL, updated_at = $1
		WHERE verify_token = $2 AND token_expires > $1
		RETURNING *
	`

	err := r.db.Get(contact, query, now, token)
	if err == nil {
		return contact, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	// No row matched: either the token was never issued (or already cleared),
	// or it exists but is past its expiry.
	var stale model.Contact
	err = r.db.Get(&stale, `SELECT * FROM contacts WHERE verify_token = $1`, token)
	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}
	return nil, ErrTokenExpired
}

// RecentDuplicate returns a record with the identical (email, message) pair
// touched after the given cutoff, or ErrContactNotFound. Rows still holding
// the verification placeholder message never count as duplicates, so the
// first real message goes through even if its text matches the placeholder.
func (r *contactRepository) RecentDuplicate(email, message string, since time.Time) (*model.Contact, error) {
	contact := &model.Contact{}
	query := `
		SELECT * FROM contacts
		WHERE email = $1 AND message = $2 AND updated_at > $3 AND message <> $4
		ORDER BY updated_at DESC LIMIT 1
	`

	err := r.db.Get(contact, query, email, message, since, model.PendingMessage)
	if err == sql.ErrNoRows {
		return nil, ErrContactNotFound
	}

	return contact, err
}

// PendingVerifications lists unverified records that still carry a token,
// newest first.
func (r *contactRepository) PendingVerifications() ([]*model.Contact, error) {
	contacts := []*model.Contact{}
	query := `
		SELECT * FROM contacts
		WHERE verified = FALSE AND verify_token IS NOT NULL
		ORDER BY created_at DESC
	`

	err := r.db.Select(&contacts, query)
	return contacts, err
}

func (r *contactRepository) CountVerified() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM contacts WHERE verified = TRUE`)
	return count, err
}
