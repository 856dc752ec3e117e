package auth

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/Danielluzius/coderr-backend/internal/domain/service"
)

// tokenKeyBytes is the entropy of a token key. Hex encoding doubles it to the
// 40-character key stored in the database.
const tokenKeyBytes = 20

// randomTokenService generates opaque token keys from the system CSPRNG.
type randomTokenService struct{}

// NewTokenService is the constructor for randomTokenService.
func NewTokenService() service.TokenService {
	return &randomTokenService{}
}

// GenerateKey returns a new cryptographically random 40-character hex key.
func (s *randomTokenService) GenerateKey() (string, error) {
	buf := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for token key")
	}

	return hex.EncodeToString(buf), nil
}
