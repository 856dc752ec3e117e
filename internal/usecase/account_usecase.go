// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username         string `json:"username" validate:"required,max=150"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	RepeatedPassword string `json:"repeated_password" validate:"required"`
	Type             string `json:"type" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// CredentialOutput is the issued bearer credential plus account basics.
type CredentialOutput struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	UserID   uuid.UUID `json:"user_id"`
}

// AccountUsecase defines registration and authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a User and their role Profile atomically, then issues
	// the account's credential.
	Register(ctx context.Context, input *RegisterInput) (*CredentialOutput, error)

	// Login verifies the credentials and returns the account's token,
	// reusing the existing token record when one exists.
	Login(ctx context.Context, input *LoginInput) (*CredentialOutput, error)

	// Authenticate resolves a presented token key to the acting identity.
	// It is used by the authentication middleware on every request.
	Authenticate(ctx context.Context, tokenKey string) (*Actor, error)
}
