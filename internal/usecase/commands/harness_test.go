//go:build unit

package commands_test

import (
	"context"
	"time"

	"toolshare/internal/pkg/clock"
	"toolshare/internal/usecase/shared"
	sharedmock "toolshare/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

// txHarness runs every Within callback against mock repositories.
type txHarness struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	users        *sharedmock.MockUserRepository
	tools        *sharedmock.MockToolRepository
	reservations *sharedmock.MockReservationRepository
	reviews      *sharedmock.MockReviewRepository
	clock        *clock.MockClock
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		tools:        sharedmock.NewMockToolRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		reviews:      sharedmock.NewMockReviewRepository(ctrl),
		clock:        clock.NewMockClock(now),
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Tools().Return(h.tools).AnyTimes()
	h.tx.EXPECT().Reservations().Return(h.reservations).AnyTimes()
	h.tx.EXPECT().Reviews().Return(h.reviews).AnyTimes()
	return h
}
