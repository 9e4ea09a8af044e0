package validation

import (
	"errors"
	"strings"
)

const maxMessageLength = 5000

// ValidateMessage validates a contact message body
func ValidateMessage(message string) error {
	trimmed := strings.TrimSpace(message)

	if trimmed == "" {
		return errors.New("message is required")
	}

	if len([]rune(trimmed)) > maxMessageLength {
		return errors.New("message is too long (max 5000 characters)")
	}

	return nil
}
