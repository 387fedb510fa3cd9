package jwttoken

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the app-facing token payload.
type Claims struct {
	UserID uuid.UUID
	Role   string
	Name   string
	Email  string

	Issuer   string
	Audience string

	IssuedAt  time.Time
	ExpiresAt time.Time
	TokenID   string // jti
	Subject   string
}

// GetUserID implements authorize.ClaimsProvider.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetRole returns the role claim as stored in the token.
func (c *Claims) GetRole() string {
	return c.Role
}

func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
