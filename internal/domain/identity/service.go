package identity

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type tokenIssuer interface {
	GenerateToken(subject, role string) (string, error)
}

// Service holds the login flow. Token verification lives in the auth
// middleware; this side only issues tokens.
type Service struct {
	users Repository
	jwt   tokenIssuer
}

func NewService(users Repository, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login checks the password and issues a bearer token bound to the
// username and role. Unknown user and wrong password collapse to the
// same error.
func (s *Service) Login(ctx context.Context, username, password string) (string, *User, error) {
	username = strings.TrimSpace(username)
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
