package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	authHelper "clubolimpo_backend/internals/features/users/auth/helper"
	model "clubolimpo_backend/internals/features/users/auth/model"
	authRepo "clubolimpo_backend/internals/features/users/auth/repository"
)

/* ==========================
   Const & Types
========================== */

const accessTTLDefault = 24 * time.Hour

var (
	ErrAdminExists        = errors.New("admin user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrMissingSecret      = errors.New("JWT_SECRET is not set")
)

// Claims is the payload of an access token.
type Claims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Users  *authRepo.UserRepository
	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func NewAuthService(users *authRepo.UserRepository, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	return &AuthService{
		Users:  users,
		Secret: strings.TrimSpace(secret),
		TTL:    ttl,
		Now:    time.Now,
	}
}

/* ==========================
   Register / Login
========================== */

// Register creates the admin account; it refuses once any user exists.
func (s *AuthService) Register(ctx context.Context, username, password string, email *string) (*model.UserModel, error) {
	n, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrAdminExists
	}

	hashed, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.UserModel{
		Username: username,
		Password: hashed,
		Email:    email,
		IsActive: true,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials of an active user and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, *model.UserModel, error) {
	user, err := s.Users.FindActiveByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, nil, err
	}
	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	token, exp, err := s.IssueToken(user)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return token, exp, user, nil
}

/* ==========================
   Tokens
========================== */

func (s *AuthService) IssueToken(user *model.UserModel) (string, time.Time, error) {
	if s.Secret == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	now := s.Now().UTC()
	exp := now.Add(s.TTL)
	claims := Claims{
		ID:       user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseToken verifies the signature and expiry of a raw token. Expired tokens
// yield ErrTokenExpired, every other failure ErrTokenInvalid.
func (s *AuthService) ParseToken(raw string) (*Claims, error) {
	if s.Secret == "" {
		return nil, ErrMissingSecret
	}
	claims := &Claims{}
	parser := jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.Secret), nil
	}); err != nil {
		return nil, ErrTokenInvalid
	}

	if claims.ExpiresAt == nil {
		return nil, ErrTokenInvalid
	}
	if !s.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	if claims.ID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
