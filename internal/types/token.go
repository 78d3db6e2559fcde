package types

import "github.com/google/uuid"

// TokenClaims holds the validated identity extracted from a JWT.
type TokenClaims struct {
	UserID uuid.UUID
}
