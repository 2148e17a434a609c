package service

import (
	"context"

	"msitumum/entities"
)

type RegisterInput struct {
	Username     string `json:"username" validate:"required,min=3"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FullName     string `json:"full_name" validate:"required"`
	Role         string `json:"role" validate:"omitempty,oneof=farmer ngo donor government admin"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"` // username or email
	Password string `json:"password" validate:"required"`
}

type Session struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Login(ctx context.Context, in LoginInput) (*Session, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, uid uint) (*entities.User, error)
}
