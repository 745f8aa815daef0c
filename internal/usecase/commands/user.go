package commands

import (
	"context"

	"toolshare/internal/domain/user"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/infra"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/pkg/password"
	"toolshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*user.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req reqdto.ChangePasswordRequest) error
	// DeleteUser is an admin operation; admins cannot remove their own account
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher password.Hasher
	clock  clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, hasher password.Hasher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher, clock: clk}
}

func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*user.User, error) {
	input, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var updated *user.User
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := uc.loadUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		taken, err := tx.Users().EmailTaken(ctx, input.Email.Value(), userID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if taken {
			return ErrEmailTaken
		}

		u.UpdateProfile(input.Name, input.Email, input.Bio, uc.clock.Now())
		if err := tx.Users().UpdateProfile(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *userCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, req reqdto.ChangePasswordRequest) error {
	next, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := uc.loadUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := uc.hasher.Compare(u.PasswordHash(), req.CurrentPassword); err != nil {
			return ErrWrongPassword
		}

		hash, err := uc.hasher.Hash(next.Value())
		if err != nil {
			return err
		}
		u.ChangePasswordHash(hash, uc.clock.Now())
		if err := tx.Users().UpdatePassword(ctx, u); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *userCommandsImpl) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrCannotDeleteSelf
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, targetID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrUserNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *userCommandsImpl) loadUser(ctx context.Context, tx shared.Tx, id uuid.UUID) (*user.User, error) {
	u, err := tx.Users().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u, nil
}
