package commands

import (
	"context"

	"hoteldesk/internal/domain/user"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/pkg/errs"
	"hoteldesk/internal/pkg/jwt"
	"hoteldesk/internal/pkg/password"

	"github.com/google/uuid"
)

type RegisterUserInput struct {
	Email    string
	Password string
	Role     string
	HotelID  *uuid.UUID
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterUserInput) (uuid.UUID, error)
	Login(ctx context.Context, input LoginInput) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommands struct {
	users UserRepository
	jwt   *jwt.Service
}

func NewAuthCommands(users UserRepository, jwtSvc *jwt.Service) AuthCommands {
	return &authCommands{users: users, jwt: jwtSvc}
}

func (c *authCommands) Register(ctx context.Context, input RegisterUserInput) (uuid.UUID, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	pass, err := user.NewPassword(input.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	role, err := user.NewRole(input.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(email, hash, role, input.HotelID)
	if err := c.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrEmailAlreadyExists)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.ID(), nil
}

func (c *authCommands) Login(ctx context.Context, input LoginInput) (*TokenPair, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	u, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !u.IsActive() {
		return nil, errs.Mark(errs.New("account disabled"), errs.ErrUserInactive)
	}

	if err := password.ComparePassword(u.PasswordHash(), input.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	pair, err := c.issueTokens(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	if err := c.users.UpdateLastLogin(ctx, u.ID()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return pair, nil
}

func (c *authCommands) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := c.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, errs.Mark(errs.New("token is not a refresh token"), errs.ErrInvalidCredentials)
	}

	u, err := c.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !u.IsActive() {
		return nil, errs.Mark(errs.New("account disabled"), errs.ErrUserInactive)
	}

	return c.issueTokens(u.ID(), u.Role())
}

func (c *authCommands) issueTokens(id uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := c.jwt.GenerateAccessToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := c.jwt.GenerateRefreshToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
