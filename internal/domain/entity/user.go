// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Every account carries exactly one
// Profile which fixes its marketplace role at registration time.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique login name, immutable after registration.
	FirstName    string    // Optional display first name.
	LastName     string    // Optional display last name.
	Email        string    // Contact email address.
	PasswordHash string    // bcrypt hash of the user's password.
	IsStaff      bool      // Administrative flag; staff users may delete orders.
	Profile      *Profile  // The role-carrying profile created with the account.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Role returns the role recorded on the user's profile, or the empty Role when
// the profile has not been loaded.
func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}

	return u.Profile.Type
}

// Profile holds the marketplace-facing metadata of a user. It is created
// atomically with the User during registration and owned by that user; the
// role type is set once and never changed by profile edits.
type Profile struct {
	UserID       uuid.UUID // Foreign key linking the profile to its User.
	Type         Role      // customer or business, fixed at registration.
	File         string    // Reference to an uploaded avatar image (pass-through field).
	Location     string    // Free-text location.
	Tel          string    // Contact phone number.
	Description  string    // Free-text self description.
	WorkingHours string    // Free-text working hours.
	CreatedAt    time.Time // Timestamp of profile creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
