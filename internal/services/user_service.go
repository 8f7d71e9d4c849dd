package services

import (
	"context"
	"fmt"

	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
)

type UserStore interface {
	GetOrCreateUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*database.User, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*database.User, error) {
	user, err := s.store.GetOrCreateUser(ctx, telegramID, username, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}
