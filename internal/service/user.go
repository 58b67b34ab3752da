package service

import (
	"context"

	"htmxcontacts/internal/model"
)

// CreatedUserID is the id assigned to every created user.
const CreatedUserID uint64 = 1337

// UserService defines the use cases for users.
type UserService interface {
	// Create returns a user carrying username and CreatedUserID. No uniqueness
	// check is made and nothing is stored.
	Create(ctx context.Context, username string) (*model.User, error)
}

type userService struct{}

// NewUserService constructs a new UserService.
func NewUserService() UserService {
	return &userService{}
}

func (s *userService) Create(ctx context.Context, username string) (*model.User, error) {
	return &model.User{ID: CreatedUserID, Username: username}, nil
}
