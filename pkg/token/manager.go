// Package jwttoken verifies and issues the HS256 bearer tokens used by the
// HTTP API and the realtime endpoint.
package jwttoken

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/petscare/petscare_backend/config"
)

type Config struct {
	Secret   string
	Issuer   string
	Audience string

	AccessTTL time.Duration
}

type Manager struct {
	cfg    Config
	secret []byte
}

func New(cfg Config) (*Manager, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, ErrConfig{Msg: "secret is required"}
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	return &Manager{cfg: cfg, secret: []byte(cfg.Secret)}, nil
}

// NewManager creates a new token manager from central config.
func NewManager(cfg *config.Config) (*Manager, error) {
	j := cfg.Authentication.JWT
	return New(Config{
		Secret:    j.Secret,
		Issuer:    j.Issuer,
		Audience:  j.Audience,
		AccessTTL: time.Duration(j.AccessTTLMinutes) * time.Minute,
	})
}

type wireClaims struct {
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs an access token for the given user. Used by the seed command
// and tests; production traffic carries tokens issued by the identity
// service with the same secret.
func (m *Manager) Issue(userID uuid.UUID, role, name, email string) (string, error) {
	now := time.Now()
	claims := wireClaims{
		Role:  role,
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.AccessTTL)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string and maps it to app claims.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if m.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.cfg.Issuer))
	}
	if m.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(m.cfg.Audience))
	}

	var wc wireClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &wc, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	if !tok.Valid {
		return nil, ErrInvalidToken{Err: jwt.ErrTokenUnverifiable}
	}

	userID, err := uuid.Parse(wc.Subject)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	claims := &Claims{
		UserID:  userID,
		Role:    wc.Role,
		Name:    wc.Name,
		Email:   wc.Email,
		Issuer:  wc.Issuer,
		TokenID: wc.ID,
		Subject: wc.Subject,
	}
	if len(wc.Audience) > 0 {
		claims.Audience = wc.Audience[0]
	}
	if wc.IssuedAt != nil {
		claims.IssuedAt = wc.IssuedAt.Time
	}
	if wc.ExpiresAt != nil {
		claims.ExpiresAt = wc.ExpiresAt.Time
	}
	return claims, nil
}
