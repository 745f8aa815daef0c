//go:build unit || e2e

package builder

import (
	"time"

	domreview "toolshare/internal/domain/review"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ReservationID uuid.UUID
	ReviewerID    uuid.UUID
	ReviewerName  string
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ReservationID: uuid.New(),
		ReviewerID:    uuid.New(),
		ReviewerName:  "Test Renter",
		Rating:        5,
		Comment:       "Worked perfectly",
		CreatedAt:     time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReviewBuilder) WithReservation(id uuid.UUID) *ReviewBuilder {
	b.ReservationID = id
	return b
}

func (b *ReviewBuilder) WithReviewer(id uuid.UUID) *ReviewBuilder {
	b.ReviewerID = id
	return b
}

func (b *ReviewBuilder) WithRating(r int) *ReviewBuilder {
	b.Rating = r
	return b
}

func (b *ReviewBuilder) WithComment(c string) *ReviewBuilder {
	b.Comment = c
	return b
}

func (b *ReviewBuilder) WithCreatedAt(t time.Time) *ReviewBuilder {
	b.CreatedAt = t
	return b
}

func (b *ReviewBuilder) BuildDomain() *domreview.Review {
	r, _ := domreview.NewReview(b.ReservationID, b.ReviewerID, b.Rating, b.Comment, b.CreatedAt)
	return r
}

func (b *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:           uuid.New(),
		ReviewerID:   b.ReviewerID,
		ReviewerName: b.ReviewerName,
		Rating:       b.Rating,
		Comment:      b.Comment,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReservationID: b.ReservationID,
		Rating:        b.Rating,
		Comment:       b.Comment,
	}
}
