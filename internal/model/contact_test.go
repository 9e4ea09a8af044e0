package model

import (
	"testing"
	"time"
)

func TestPlaceholderID_Deterministic(t *testing.T) {
	a := PlaceholderID("test@example.com")
	b := PlaceholderID("test@example.com")
	if a != b {
		t.Errorf("expected identical ids, got %q and %q", a, b)
	}
}

func TestPlaceholderID_StripsNonAlphanumerics(t *testing.T) {
	got := PlaceholderID("first.last+tag@example.co.uk")
	want := "temp-firstlasttagexamplecouk"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestContact_TokenExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		expires *time.Time
		want    bool
	}{
		{"nil expiry", nil, true},
		{"past expiry", &past, true},
		{"future expiry", &future, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Contact{TokenExpires: tt.expires}
			if got := c.TokenExpired(); got != tt.want {
				t.Errorf("TokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContact_Pending(t *testing.T) {
	token := "abc"

	c := &Contact{Verified: false, VerifyToken: &token}
	if !c.Pending() {
		t.Error("unverified contact with token should be pending")
	}

	c = &Contact{Verified: true, VerifyToken: nil}
	if c.Pending() {
		t.Error("verified contact should not be pending")
	}

	c = &Contact{Verified: false, VerifyToken: nil}
	if c.Pending() {
		t.Error("contact without token should not be pending")
	}
}
