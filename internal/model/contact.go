package model

import (
	"strings"
	"time"
)

// Contact is one row per correspondent. Before a real message exists the row
// holds verification state under a deterministic placeholder id, and the same
// row is reused by upsert once the sender submits an actual message.
type Contact struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Message      string     `db:"message"`
	Verified     bool       `db:"verified"`
	VerifyToken  *string    `db:"verify_token"`
	TokenExpires *time.Time `db:"token_expires"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// PendingMessage is the body text held while verification is in progress.
const PendingMessage = "Verification in progress..."

// PlaceholderID derives the deterministic record id for an email address:
// "temp-" plus the address stripped of non-alphanumerics. Repeated
// verification requests for the same address overwrite one row instead of
// accumulating duplicates.
func PlaceholderID(email string) string {
	var b strings.Builder
	b.WriteString("temp-")
	for _, r := range email {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *Contact) TokenExpired() bool {
	if c.TokenExpires == nil {
		return true
	}
	return time.Now().After(*c.TokenExpires)
}

func (c *Contact) Pending() bool {
	return !c.Verified && c.VerifyToken != nil
}
