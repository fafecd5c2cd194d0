package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"hobbyhub/internal/domain"
	"hobbyhub/internal/repository"
)

var (
	// ErrEmailTaken is returned when registering with an email that is in use.
	ErrEmailTaken = errors.New("email already in use")
	// ErrUsernameTaken is returned when registering with a username that is in use.
	ErrUsernameTaken = errors.New("username already in use")
	// ErrUnknownEmail indicates no account exists for the email. It is kept
	// distinct from ErrInvalidPassword so the caller can suggest signing up.
	ErrUnknownEmail = errors.New("no account registered for this email")
	// ErrInvalidPassword indicates the password did not match the stored hash.
	ErrInvalidPassword = errors.New("password is incorrect")
)

// ValidationError marks malformed input rejected before it reaches
// storage. Handlers map it to a 400-class response with field detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, email, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type userService struct {
	users      repository.UserRepository
	bcryptCost int
}

func NewUserService(users repository.UserRepository, bcryptCost int) UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		users:      users,
		bcryptCost: bcryptCost,
	}
}

func (s *userService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &ValidationError{Field: "email", Message: "email is not valid"}
	}
	// Character counts, not bytes, so multibyte usernames get the same
	// bounds the binding layer enforces.
	if n := utf8.RuneCountInString(username); n < 2 || n > 20 {
		return nil, &ValidationError{Field: "username", Message: "username must be between 2 and 20 characters"}
	}
	if utf8.RuneCountInString(password) < 6 {
		return nil, &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}

	// Email and username are checked with separate lookups so the caller
	// learns which one is taken.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		// The unique constraints back up the lookups above; a duplicate
		// slipping through here means a concurrent registration won.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "email", Message: "email and password are required"}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return sanitizeUser(user), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
