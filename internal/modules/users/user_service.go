package users

import (
	"context"
	"errors"
	"fmt"

	"contact-management/internal/models"
	"contact-management/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface defines methods for user business logic.
type ServiceInterface interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error)
	Get(ctx context.Context, username string) (*models.UserResponse, error)
	Update(ctx context.Context, username string, req models.UpdateUserRequest) (*models.UserResponse, error)
	Logout(ctx context.Context, username string) error
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) ServiceInterface {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, req models.RegisterUserRequest) (*models.UserResponse, error) {
	// Fast-path rejection of duplicate usernames. The primary key on
	// users.username is the actual uniqueness guarantee; two concurrent
	// registrations can both pass this check and one will fail on insert.
	count, err := s.repo.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("service.Register.CountByUsername: %w", err)
	}
	if count > 0 {
		return nil, models.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service.Register.HashPassword: %w", err)
	}

	user, err := s.repo.Create(ctx, req.Username, string(hashedPassword), req.Name)
	if err != nil {
		return nil, fmt.Errorf("service.Register.Create: %w", err)
	}

	return &models.UserResponse{Username: user.Username, Name: user.Name}, nil
}

func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.Login.FindByUsername: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	// A fresh token overwrites any prior one: one active session per user.
	token := utils.NewSessionToken()
	if err := s.repo.SetToken(ctx, user.Username, token); err != nil {
		return nil, fmt.Errorf("service.Login.SetToken: %w", err)
	}

	return &models.TokenResponse{Token: token}, nil
}

func (s *Service) Get(ctx context.Context, username string) (*models.UserResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service.Get.FindByUsername: %w", err)
	}
	return &models.UserResponse{Username: user.Username, Name: user.Name}, nil
}

func (s *Service) Update(ctx context.Context, username string, req models.UpdateUserRequest) (*models.UserResponse, error) {
	var passwordHash *string
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("service.Update.HashPassword: %w", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	user, err := s.repo.UpdateProfile(ctx, username, req.Name, passwordHash)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service.Update.UpdateProfile: %w", err)
	}
	return &models.UserResponse{Username: user.Username, Name: user.Name}, nil
}

func (s *Service) Logout(ctx context.Context, username string) error {
	if err := s.repo.ClearToken(ctx, username); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("service.Logout.ClearToken: %w", err)
	}
	return nil
}
