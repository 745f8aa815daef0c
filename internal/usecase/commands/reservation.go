package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/reservation"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/infra"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/queries"
	"toolshare/internal/usecase/shared"

	"github.com/google/uuid"
)

// lostRaceMessage is returned when the exclusion constraint rejects an insert the checks allowed.
const lostRaceMessage = "Tool was booked for these dates by someone else"

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	// CreateReservation books the tool; a non-nil idempotencyKey makes retries replay the first result
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, renterID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateReservationResult, error)
	UpdateStatus(ctx context.Context, actorID, reservationID uuid.UUID, req reqdto.UpdateReservationStatusRequest) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	idempotency        shared.IdempotencyStore
	services           reservation.Services
	reservationQueries queries.ReservationQueries
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	idempotency shared.IdempotencyStore,
	services reservation.Services,
	reservationQueries queries.ReservationQueries,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		idempotency:        idempotency,
		services:           services,
		reservationQueries: reservationQueries,
	}
}

func (r *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	renterID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*CreateReservationResult, error) {
	request, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if idempotencyKey == nil {
		view, err := r.createNewReservation(ctx, request, renterID)
		if err != nil {
			return nil, err
		}
		return &CreateReservationResult{Reservation: view}, nil
	}

	requestHash := r.calculateRequestHash(req)
	replayed, err := r.handleIdempotency(ctx, *idempotencyKey, renterID, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateReservationResult{Reservation: replayed, IsReplayed: true}, nil
	}

	view, err := r.createNewReservation(ctx, request, renterID)
	if err != nil {
		if releaseErr := r.idempotency.Release(ctx, *idempotencyKey, renterID); releaseErr != nil {
			slog.Warn("failed to release idempotency key", "key", idempotencyKey.String(), "error", releaseErr)
		}
		return nil, err
	}

	if err := r.idempotency.Complete(ctx, *idempotencyKey, renterID, view.ID); err != nil {
		slog.Warn("failed to complete idempotency key", "key", idempotencyKey.String(), "error", err)
	}
	return &CreateReservationResult{Reservation: view}, nil
}

func (r *reservationCommandsImpl) handleIdempotency(
	ctx context.Context,
	key, renterID uuid.UUID,
	requestHash string,
) (*queries.ReservationView, error) {
	existing, err := r.idempotency.Begin(ctx, key, renterID, requestHash)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing == nil {
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ReservationID == nil {
			return nil, errs.New("completed request missing result reservation ID")
		}
		return r.reservationQueries.GetByIDSystem(ctx, *existing.ReservationID)
	case shared.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

// createNewReservation runs the availability checks against the locked tool row.
func (r *reservationCommandsImpl) createNewReservation(
	ctx context.Context,
	request availability.ReservationRequest,
	renterID uuid.UUID,
) (*queries.ReservationView, error) {
	var created *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := loadTool(ctx, tx, request.ToolID, true)
		if err != nil {
			return err
		}

		booked, err := tx.Reservations().BlockingRanges(ctx, t.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		res, err := reservation.NewReservation(r.services, t, renterID, request, booked)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(&availability.SubmissionRejectedError{
					Status:  http.StatusConflict,
					Message: lostRaceMessage,
				}, errs.ErrDomainValidation)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := r.reservationQueries.GetByIDSystem(ctx, created.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *reservationCommandsImpl) UpdateStatus(
	ctx context.Context,
	actorID, reservationID uuid.UUID,
	req reqdto.UpdateReservationStatusRequest,
) (*queries.ReservationView, error) {
	next, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		t, err := loadTool(ctx, tx, res.ToolID(), false)
		if err != nil {
			return err
		}

		if err := res.ChangeStatus(res.ActorFor(actorID, t.OwnerID()), next, r.services.Clock.Now()); err != nil {
			if errs.Is(err, reservation.ErrNotParticipant) {
				return errs.Mark(err, errs.ErrForbidden)
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		// leaving a blocking status frees the dates; nothing to recheck
		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByIDSystem(ctx, reservationID)
}

func (r *reservationCommandsImpl) calculateRequestHash(req reqdto.CreateReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
