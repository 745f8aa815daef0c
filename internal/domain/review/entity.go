package review

import (
	"time"

	"toolshare/internal/domain/reservation"

	"github.com/google/uuid"
)

type Review struct {
	id            uuid.UUID
	reservationID uuid.UUID
	reviewerID    uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
}

func NewReview(reservationID, reviewerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:            uuid.New(),
		reservationID: reservationID,
		reviewerID:    reviewerID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
	}, nil
}

// CheckEligibility allows the renter of a completed reservation to review it.
func CheckEligibility(res *reservation.Reservation, reviewerID uuid.UUID) error {
	if res.RenterID() != reviewerID {
		return ErrNotReviewer
	}
	if !res.IsReviewable() {
		return ErrReservationNotEligible
	}
	return nil
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) ReviewerID() uuid.UUID    { return r.reviewerID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
