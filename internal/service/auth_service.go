package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"genmoney/internal/model"
	"genmoney/internal/repository"
	"genmoney/internal/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration and login, issuing a bearer token on
// success.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password, fullName string) (*model.User, string, error) {
	// Check-then-insert; email matching is exact, no case folding.
	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:              uuid.NewString(),
		Email:           email,
		FullName:        fullName,
		PasswordHash:    string(hash),
		IsAdmin:         false,
		CreatedAt:       time.Now().UTC(),
		EnrolledCourses: []string{},
		Badges:          []string{},
		Progress:        map[string]interface{}{},
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}
	// Same error for unknown email and wrong password.
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}
