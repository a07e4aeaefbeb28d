package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lexhaven/lexai/internal/domain"
	"github.com/lexhaven/lexai/internal/repository"
)

// Service handles account registration and session tokens.
type Service struct {
	users       *repository.UserRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
}

// NewService creates an auth service signing tokens with jwtSecret.
func NewService(users *repository.UserRepository, jwtSecret string, tokenExpiry time.Duration) *Service {
	return &Service{
		users:       users,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: tokenExpiry,
	}
}

// Signup registers a new account and returns a session token for it.
func (s *Service) Signup(email, password, role string) (domain.AuthResponse, error) {
	if !domain.ValidRole(role) {
		return domain.AuthResponse{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidRequest, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Create(email, string(hash), role)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	return s.issueToken(user)
}

// Signin authenticates an existing account and returns a session token.
func (s *Service) Signin(email, password string) (domain.AuthResponse, error) {
	user, hash, found, err := s.users.GetByEmail(email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if !found {
		return domain.AuthResponse{}, domain.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.AuthResponse{}, domain.ErrBadCredentials
	}

	return s.issueToken(user)
}

// ParseToken validates a session token and returns the user id it names.
func (s *Service) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domain.ErrUnauthorized
	}
	return userID, nil
}

func (s *Service) issueToken(user domain.User) (domain.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("signing token: %w", err)
	}
	return domain.AuthResponse{Token: signed, User: user}, nil
}
