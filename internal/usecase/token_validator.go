package usecase

import (
	"context"
	"time"

	"toolshare/internal/domain/user"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/pkg/jwt"
	"toolshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenRevoked = errs.New("token revoked")

// Principal is the authenticated caller behind a validated access token.
type Principal struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenID   string
	ExpiresAt time.Time
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	denylist   shared.TokenDenylist
}

func NewTokenValidator(jwtService *jwt.Service, denylist shared.TokenDenylist) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		denylist:   denylist,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (*Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	if id := claims.TokenID(); id != "" {
		revoked, err := t.denylist.IsRevoked(ctx, id)
		if err != nil {
			return nil, errs.Wrap(err, "failed to check token denylist")
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return &Principal{
		UserID:    claims.UserID,
		Role:      role,
		TokenID:   claims.TokenID(),
		ExpiresAt: claims.ExpiresAt(),
	}, nil
}
