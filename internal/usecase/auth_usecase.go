package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"church_giving/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAuthNotConfigured  = errors.New("admin login not configured")
)

const adminRole = "admin"

// AdminClaims are carried by admin access tokens.
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type AuthToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// IAuthUseCase signs in the church office admin and checks their tokens.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (AuthToken, error)
	ValidateToken(token string) (AdminClaims, error)
}

type AuthUseCase struct {
	adminEmail   string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(cfg config.AuthConfig) *AuthUseCase {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthUseCase{
		adminEmail:   strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		passwordHash: []byte(cfg.AdminPasswordHash),
		secret:       []byte(cfg.JWTSecret),
		ttl:          ttl,
		now:          time.Now,
	}
}

func (u *AuthUseCase) Login(_ context.Context, email, password string) (AuthToken, error) {
	if u.adminEmail == "" || len(u.passwordHash) == 0 || len(u.secret) == 0 {
		log.Printf("[auth][usecase] login attempted but admin credentials are not configured")
		return AuthToken{}, ErrAuthNotConfigured
	}

	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(u.adminEmail)) == 1
	// bcrypt runs regardless of the email match.
	pwErr := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password))
	if !emailOK || pwErr != nil {
		log.Printf("[auth][usecase] login rejected")
		return AuthToken{}, ErrInvalidCredentials
	}

	now := u.now()
	exp := now.Add(u.ttl)
	claims := AdminClaims{
		Email: u.adminEmail,
		Role:  adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.adminEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return AuthToken{}, fmt.Errorf("sign token: %w", err)
	}
	log.Printf("[auth][usecase] login success")
	return AuthToken{AccessToken: signed, ExpiresAt: exp}, nil
}

func (u *AuthUseCase) ValidateToken(token string) (AdminClaims, error) {
	if len(u.secret) == 0 {
		return AdminClaims{}, ErrAuthNotConfigured
	}

	var claims AdminClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil {
		return AdminClaims{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !parsed.Valid || claims.Role != adminRole {
		return AdminClaims{}, ErrUnauthorized
	}
	return claims, nil
}
