package commands

import (
	"context"

	"toolshare/internal/domain/tool"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/infra"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type ToolCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateToolRequest) (*tool.Tool, error)
	Update(ctx context.Context, actorID, toolID uuid.UUID, req reqdto.UpdateToolRequest) (*tool.Tool, error)
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, toolID uuid.UUID) error
}

type toolCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewToolCommands(uow shared.UnitOfWork, clk clock.Clock) ToolCommands {
	return &toolCommandsImpl{uow: uow, clock: clk}
}

func (uc *toolCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateToolRequest) (*tool.Tool, error) {
	input, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	t, err := tool.NewTool(ownerID, input.Details, input.DailyPrice, input.Status, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Tools().Create(ctx, t); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrUserNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *toolCommandsImpl) Update(ctx context.Context, actorID, toolID uuid.UUID, req reqdto.UpdateToolRequest) (*tool.Tool, error) {
	p, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var updated *tool.Tool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := loadTool(ctx, tx, toolID, true)
		if err != nil {
			return err
		}
		if err := t.Apply(actorID, p, uc.clock.Now()); err != nil {
			if errs.Is(err, tool.ErrNotOwner) {
				return errs.Mark(err, errs.ErrForbidden)
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Tools().Update(ctx, t); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *toolCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, toolID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := loadTool(ctx, tx, toolID, true)
		if err != nil {
			return err
		}
		if !t.CanBeDeletedBy(actorID, isAdmin) {
			return errs.Mark(tool.ErrNotOwner, errs.ErrForbidden)
		}
		if err := tx.Tools().Delete(ctx, toolID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrToolNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func loadTool(ctx context.Context, tx shared.Tx, id uuid.UUID, lock bool) (*tool.Tool, error) {
	var (
		t   *tool.Tool
		err error
	)
	if lock {
		t, err = tx.Tools().LockByID(ctx, id)
	} else {
		t, err = tx.Tools().FindByID(ctx, id)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrToolNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return t, nil
}
