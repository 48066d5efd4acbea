package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// MinPasswordLength is the shortest password the backend accepts
const MinPasswordLength = 6

// MinUsernameLength is the shortest username accepted at registration
const MinUsernameLength = 3

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents caller-supplied data rejected before any network call
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < MinPasswordLength {
		return ValidationError{Field: "password", Message: fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength)}
	}
	return nil
}

// ValidatePasswordConfirmation checks that both password entries match
func ValidatePasswordConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ValidationError{Field: "confirm_password", Message: "Passwords do not match"}
	}
	return nil
}

// ValidateUsername checks if a username is valid
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ValidationError{Field: "username", Message: "username is required"}
	}
	if len(username) < MinUsernameLength {
		return ValidationError{Field: "username", Message: fmt.Sprintf("Username must be at least %d characters long", MinUsernameLength)}
	}
	return nil
}

// ValidateResetToken checks that a reset token was supplied
func ValidateResetToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ValidationError{Field: "token", Message: "reset token is required"}
	}
	return nil
}
