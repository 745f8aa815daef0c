package response

import (
	"time"

	"toolshare/internal/usecase/commands"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID                 uuid.UUID `json:"id"`
	ReservationID      uuid.UUID `json:"reservation_id"`
	ReviewerID         uuid.UUID `json:"reviewer_id"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment"`
	OwnerSecurityScore float64   `json:"owner_security_score"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromCreateReviewResult(r *commands.CreateReviewResult) *ReviewResponse {
	return &ReviewResponse{
		ID:                 r.Review.ID(),
		ReservationID:      r.Review.ReservationID(),
		ReviewerID:         r.Review.ReviewerID(),
		Rating:             r.Review.Rating().Value(),
		Comment:            r.Review.Comment().String(),
		OwnerSecurityScore: r.OwnerSecurityScore,
		CreatedAt:          r.Review.CreatedAt(),
	}
}

type ReviewListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ReviewerID   uuid.UUID `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Items     []*ReviewListItemResponse `json:"items"`
	NextAfter string                    `json:"next_after,omitempty"`
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) *ReviewListResponse {
	res := &ReviewListResponse{Items: make([]*ReviewListItemResponse, len(items))}
	for i, it := range items {
		var item ReviewListItemResponse
		copyFields(&item, it)
		res.Items[i] = &item
	}
	if next != nil {
		res.NextAfter = next.After
	}
	return res
}
