package commands

import (
	"context"
	"log/slog"
	"time"

	"toolshare/internal/domain/user"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/infra"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/pkg/jwt"
	"toolshare/internal/pkg/password"
	"toolshare/internal/usecase/shared"
)

type AuthResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	// Logout revokes the token id until the moment the token would have expired
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	denylist   shared.TokenDenylist
	jwtService *jwt.Service
	hasher     password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	denylist shared.TokenDenylist,
	jwtService *jwt.Service,
	hasher password.Hasher,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		denylist:   denylist,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	input, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := a.hasher.Hash(input.Password.Value())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(input.Name, input.Email, hash, input.Role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Users().EmailTaken(ctx, u.Email().Value(), u.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if taken {
			return ErrEmailTaken
		}
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(u)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	email, plain, err := req.ToDomain()
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByEmail(ctx, email.Value())
		if err != nil {
			return err
		}
		u = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so emails cannot be probed
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := a.hasher.Compare(u.PasswordHash(), plain); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issue(u)
}

func (a *authCommandsImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	if err := a.denylist.Revoke(ctx, tokenID, expiresAt); err != nil {
		slog.Error("failed to revoke token", "error", err)
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (a *authCommandsImpl) issue(u *user.User) (*AuthResult, error) {
	token, err := a.jwtService.GenerateAccessToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		User:        u,
		AccessToken: token,
		ExpiresIn:   a.jwtService.AccessTokenDuration(),
	}, nil
}
