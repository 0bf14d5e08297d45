package usecase

import (
	"context"

	"hoteldesk/internal/pkg/errs"
	"hoteldesk/internal/pkg/jwt"
	"hoteldesk/internal/usecase/queries"
)

// TokenValidator turns a bearer token into the authorized user the auth
// middleware attaches to the request. The database lookup keeps revoked and
// deactivated accounts out even while their tokens are still fresh.
type TokenValidator struct {
	jwt   *jwt.Service
	users queries.UserQueries
}

func NewTokenValidator(jwtSvc *jwt.Service, users queries.UserQueries) *TokenValidator {
	return &TokenValidator{jwt: jwtSvc, users: users}
}

func (v *TokenValidator) Validate(ctx context.Context, token string) (*queries.AuthorizedUserView, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, errs.Mark(errs.New("token is not an access token"), errs.ErrInvalidCredentials)
	}

	u, err := v.users.GetAuthorizedUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, errs.Mark(errs.New("account disabled"), errs.ErrUserInactive)
	}
	return u, nil
}
