package commands

import (
	"context"
	"log/slog"

	domreview "toolshare/internal/domain/review"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/infra"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	Review             *domreview.Review
	OwnerSecurityScore float64
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, reviewerID uuid.UUID) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview stores the review and recomputes the tool owner's security score in the same transaction.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, reviewerID uuid.UUID) (*CreateReviewResult, error) {
	rev, err := domreview.NewReview(req.ReservationID, reviewerID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	result := &CreateReviewResult{Review: rev}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, req.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := domreview.CheckEligibility(res, reviewerID); err != nil {
			return errs.Mark(err, errs.ErrReviewNotAllowed)
		}

		exists, err := tx.Reviews().ExistsForReservation(ctx, res.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			return errs.Mark(domreview.ErrReviewAlreadyExists, errs.ErrReviewNotAllowed)
		}

		if err := tx.Reviews().Create(ctx, rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(domreview.ErrReviewAlreadyExists, errs.ErrReviewNotAllowed)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		t, err := loadTool(ctx, tx, res.ToolID(), false)
		if err != nil {
			return err
		}
		score, err := tx.Users().RefreshSecurityScore(ctx, t.OwnerID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result.OwnerSecurityScore = score
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("review created", "review_id", rev.ID(), "reservation_id", req.ReservationID, "owner_score", result.OwnerSecurityScore)
	return result, nil
}
