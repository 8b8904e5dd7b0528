// Package contact manages the contacts resource: validation, email
// uniqueness, persistence, and the profile-picture lifecycle against the
// object store.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Contact represents one entry in the address book. Picture is persisted as
// a storage key and rewritten to its public URL on every read path.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Picture     *string   `json:"picture,omitempty"`
	IsFavourite bool      `json:"isFavourite"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ErrNotFound is returned when a contact does not exist.
var ErrNotFound = errors.New("contact not found")

// ErrDuplicateEmail is returned when another contact already uses the email.
var ErrDuplicateEmail = errors.New("contact with this email already exists")

// ErrInvalid marks user-correctable validation failures.
var ErrInvalid = errors.New("invalid contact")

// Input carries the mutable fields accepted on create and update.
type Input struct {
	Name        string
	Email       string
	Phone       *string
	IsFavourite bool
}

// Validate checks the request-level constraints: non-blank name, non-blank
// email containing "@".
func (in Input) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if strings.TrimSpace(in.Email) == "" || !strings.Contains(in.Email, "@") {
		return fmt.Errorf("%w: email must be a valid address", ErrInvalid)
	}
	return nil
}
