package jwtinfra

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/config"
)

// Claims holds the JWT payload. The company name is the caller identity
// every tenant-scoped operation trusts once the token verifies.
type Claims struct {
	CompanyName string `json:"companyName"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 JWTs.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return &Provider{
		secret: []byte(cfg.JWTSecret),
		expiry: time.Duration(cfg.JWTExpiryDays) * 24 * time.Hour,
	}, nil
}

func (p *Provider) Sign(companyName string) (string, error) {
	claims := Claims{
		CompanyName: companyName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.CompanyName == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
