package serviceImp

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/auth/identity"
	"msitumum/pkg/auth/repository"
	"msitumum/pkg/auth/service"
)

const invalidCredentials = "Invalid credentials"

type authSvc struct {
	users  repository.UserRepository
	tokens *identity.JWTProvider
	cost   int
}

func NewAuthService(users repository.UserRepository, tokens *identity.JWTProvider) service.AuthService {
	return &authSvc{users: users, tokens: tokens, cost: bcrypt.DefaultCost}
}

// NewAuthServiceWithCost lets tests use a cheap bcrypt cost.
func NewAuthServiceWithCost(users repository.UserRepository, tokens *identity.JWTProvider, cost int) service.AuthService {
	return &authSvc{users: users, tokens: tokens, cost: cost}
}

func (s *authSvc) Register(ctx context.Context, in service.RegisterInput) (*service.Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = entities.RoleFarmer
	}
	if !entities.ValidRole(in.Role) {
		return nil, apperr.Validationf("invalid role %q", in.Role)
	}

	exists, err := s.users.Exists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Validation(repository.ErrUserExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, apperr.Upstream("could not hash password", err)
	}
	u := &entities.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		FullName:     in.FullName,
		Organization: in.Organization,
		Phone:        in.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &service.Session{Token: token, User: u}, nil
}

func (s *authSvc) Login(ctx context.Context, in service.LoginInput) (*service.Session, error) {
	login := strings.TrimSpace(in.Username)
	if strings.Contains(login, "@") {
		login = strings.ToLower(login)
	}
	u, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized(invalidCredentials)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperr.Unauthorized(invalidCredentials)
	}
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &service.Session{Token: token, User: u}, nil
}

func (s *authSvc) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

func (s *authSvc) Me(ctx context.Context, uid uint) (*entities.User, error) {
	return s.users.FindByID(ctx, uid)
}
