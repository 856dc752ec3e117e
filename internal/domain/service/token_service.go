// Package service defines interfaces for domain services.
package service

// TokenService produces opaque credential keys. Issuance is idempotent per
// user: the generated key is only persisted when the user has no token yet,
// so the service stays a pure key generator.
type TokenService interface {
	// GenerateKey returns a new cryptographically random token key.
	GenerateKey() (string, error)
}
