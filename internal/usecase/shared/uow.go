package shared

import (
	"context"
	"time"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/reservation"
	"toolshare/internal/domain/review"
	"toolshare/internal/domain/tool"
	"toolshare/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to the current transaction.
type Tx interface {
	Users() UserRepository
	Tools() ToolRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	// EmailTaken reports whether another user than exceptID already uses email
	EmailTaken(ctx context.Context, email string, exceptID uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, u *user.User) error
	UpdatePassword(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// RefreshSecurityScore sets avg(rating on the owner's tools) * 2, or the default when unrated
	RefreshSecurityScore(ctx context.Context, ownerID uuid.UUID) (float64, error)
}

type ToolRepository interface {
	Create(ctx context.Context, t *tool.Tool) error
	FindByID(ctx context.Context, id uuid.UUID) (*tool.Tool, error)
	// LockByID loads the tool with SELECT ... FOR UPDATE
	LockByID(ctx context.Context, id uuid.UUID) (*tool.Tool, error)
	Update(ctx context.Context, t *tool.Tool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// BlockingRanges returns the tool's booked ranges ordered by start date, then id
	BlockingRanges(ctx context.Context, toolID uuid.UUID) ([]availability.BookedRange, error)
	UpdateStatus(ctx context.Context, r *reservation.Reservation) error
	// CompleteEnded marks approved reservations ending before today as completed
	CompleteEnded(ctx context.Context, today time.Time) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error)
}

// IdempotencyStore tracks Idempotency-Key usage for reservation creation.
type IdempotencyStore interface {
	// Begin claims key for the request; it returns the stored record when the key was already used
	Begin(ctx context.Context, key, userID uuid.UUID, requestHash string) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, userID uuid.UUID, reservationID uuid.UUID) error
	Release(ctx context.Context, key, userID uuid.UUID) error
}

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyRecord struct {
	Status        IdempotencyStatus `json:"status"`
	RequestHash   string            `json:"request_hash"`
	ReservationID *uuid.UUID        `json:"reservation_id,omitempty"`
}

// TokenDenylist holds revoked access token ids until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
