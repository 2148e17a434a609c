package identity

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"msitumum/entities"
	"msitumum/pkg/apperr"
)

type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTProvider signs HS256 tokens whose subject is the user id.
type JWTProvider struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationStore
	now     func() time.Time
}

type Option func(*JWTProvider)

func WithClock(now func() time.Time) Option { return func(p *JWTProvider) { p.now = now } }

func NewJWT(secret string, ttl time.Duration, revoked RevocationStore, opts ...Option) *JWTProvider {
	p := &JWTProvider{secret: []byte(secret), ttl: ttl, revoked: revoked, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *JWTProvider) Issue(u *entities.User) (string, error) {
	now := p.now()
	claims := Claims{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", apperr.Upstream("could not issue token", err)
	}
	return signed, nil
}

func (p *JWTProvider) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	}); err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	return claims, nil
}

func (p *JWTProvider) Verify(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Access token required")
	}
	claims, err := p.parse(token)
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	if p.revoked != nil && claims.ID != "" {
		revoked, err := p.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, apperr.Upstream("could not verify token", err)
		}
		if revoked {
			return nil, apperr.Unauthorized("Invalid or expired token")
		}
	}
	return &Principal{ID: uint(id), Username: claims.Username, Email: claims.Email, Role: claims.Role}, nil
}

// Revoke invalidates token until its natural expiry. Revoking an invalid token is an error.
func (p *JWTProvider) Revoke(ctx context.Context, token string) error {
	claims, err := p.parse(token)
	if err != nil {
		return err
	}
	if p.revoked == nil {
		return apperr.Upstream("logout unavailable", errors.New("no revocation store configured"))
	}
	until := p.now().Add(p.ttl)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	return p.revoked.Revoke(ctx, claims.ID, until)
}
