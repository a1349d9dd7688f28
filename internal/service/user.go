package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/set-night/dicebot/internal/domain"
	"github.com/set-night/dicebot/internal/repository"
)

type UserService struct {
	repo *repository.Repository
}

func NewUserService(repo *repository.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) FindOrCreate(ctx context.Context, telegramID int64, firstName, username string, isAdmin bool) (*domain.User, bool, error) {
	user, err := s.repo.GetUserByTelegramID(ctx, telegramID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	user, err = s.repo.CreateUser(ctx, telegramID, firstName, username, isAdmin)
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return user, true, nil
}

func (s *UserService) UpdateInfo(ctx context.Context, userID int64, firstName, username string) error {
	return s.repo.UpdateUserInfo(ctx, userID, firstName, username)
}
