package reservation

import (
	"errors"
	"time"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/domain/tool"
	"toolshare/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrOwnTool           = errors.New("you cannot reserve your own tool")
	ErrToolNotAvailable  = errors.New("tool is not available for reservation")
	ErrInvalidTransition = errors.New("reservation status transition is not allowed")
	ErrNotParticipant    = errors.New("not allowed to change this reservation")
	ErrToolMismatch      = errors.New("reservation request targets a different tool")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator pricing.PriceCalculator
}

type Reservation struct {
	id         uuid.UUID
	toolID     uuid.UUID
	renterID   uuid.UUID
	period     availability.DateRange
	totalPrice pricing.Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation runs every check a new booking must pass against the locked
// tool and its currently booked ranges. The returned reservation is pending.
func NewReservation(
	services Services,
	t *tool.Tool,
	renterID uuid.UUID,
	req availability.ReservationRequest,
	booked []availability.BookedRange,
) (*Reservation, error) {
	if req.ToolID != t.ID() {
		return nil, ErrToolMismatch
	}
	if t.IsOwnedBy(renterID) {
		return nil, ErrOwnTool
	}
	if !t.IsReservable() {
		return nil, ErrToolNotAvailable
	}

	now := services.Clock.Now()
	if v := availability.ValidateRange(req, clock.DateOf(now)); !v.Passed() {
		return nil, v.Err
	}
	if c := availability.CheckOverlap(req, booked); c.Conflict {
		return nil, c.Err()
	}

	total, err := services.PriceCalculator.TotalFor(t.DailyPrice(), req.Start, req.End)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:         uuid.New(),
		toolID:     t.ID(),
		renterID:   renterID,
		period:     req.Range(),
		totalPrice: total,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, toolID, renterID uuid.UUID,
	period availability.DateRange,
	totalPrice pricing.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		toolID:     toolID,
		renterID:   renterID,
		period:     period,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ActorFor reports how userID relates to this reservation, given the tool owner.
func (r *Reservation) ActorFor(userID, toolOwnerID uuid.UUID) Actor {
	switch userID {
	case toolOwnerID:
		return ActorOwner
	case r.renterID:
		return ActorRenter
	default:
		return ActorNone
	}
}

// ChangeStatus moves the reservation along its lifecycle. Owners may drive any
// allowed transition; renters may only cancel.
func (r *Reservation) ChangeStatus(actor Actor, next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	switch actor {
	case ActorOwner:
	case ActorRenter:
		if next != StatusCancelled {
			return ErrNotParticipant
		}
	default:
		return ErrNotParticipant
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsReviewable() bool {
	return r.status == StatusCompleted
}

func (r *Reservation) HasEnded(today time.Time) bool {
	return r.period.End.Before(clock.DateOf(today))
}

func (r *Reservation) ID() uuid.UUID                  { return r.id }
func (r *Reservation) ToolID() uuid.UUID              { return r.toolID }
func (r *Reservation) RenterID() uuid.UUID            { return r.renterID }
func (r *Reservation) Period() availability.DateRange { return r.period }
func (r *Reservation) StartDate() time.Time           { return r.period.Start }
func (r *Reservation) EndDate() time.Time             { return r.period.End }
func (r *Reservation) TotalPrice() pricing.Money      { return r.totalPrice }
func (r *Reservation) Status() Status                 { return r.status }
func (r *Reservation) CreatedAt() time.Time           { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time           { return r.updatedAt }
