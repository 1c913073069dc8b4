package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fitmanager/internal/model"
	"fitmanager/internal/pkg/jwtutil"
)

var (
	ErrUsernameExists    = errors.New("username already exists")
	ErrEmailExists       = errors.New("email already exists")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters long")
	ErrInvalidCredential = errors.New("invalid credentials")
)

type AuthService struct {
	users         UserStore
	events        ActivityPublisher
	jwtSecret     string
	jwtExpiration time.Duration
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(users UserStore, events ActivityPublisher, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		events:        events,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password

	if username == "" || email == "" {
		return nil, ErrInvalidInput
	}
	// The request schema enforces the same minimum; both checks must agree.
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existingByName, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existingByName != nil {
		return nil, ErrUsernameExists
	}

	existingByEmail, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.Publish(context.Background(), model.ActivityEvent{
			UserID:     user.ID,
			Action:     "register",
			Entity:     "user",
			EntityID:   user.ID,
			OccurredAt: time.Now(),
		})
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	// Unknown user and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Verify checks credentials without issuing a token, for re-auth flows.
func (s *AuthService) Verify(input LoginInput) (bool, error) {
	user, err := s.users.GetByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return false, nil
	}
	return true, nil
}
