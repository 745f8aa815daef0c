package commands

import (
	"context"

	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/shared"
)

type CompletionCommands interface {
	// CompleteEnded moves approved reservations whose end date has passed to completed
	CompleteEnded(ctx context.Context) (int64, error)
}

type completionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCompletionCommands(uow shared.UnitOfWork, clk clock.Clock) CompletionCommands {
	return &completionCommandsImpl{uow: uow, clock: clk}
}

func (uc *completionCommandsImpl) CompleteEnded(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Reservations().CompleteEnded(ctx, clock.Today(uc.clock))
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		n = count
		return nil
	})
	return n, err
}
