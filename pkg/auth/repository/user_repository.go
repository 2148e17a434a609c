package repository

import (
	"context"

	"msitumum/entities"
)

// ErrUserExists is the message for a username or email that is already registered.
const ErrUserExists = "Username or email already exists"

type UserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	// FindByLogin matches the username, or the email when login contains "@".
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
}
