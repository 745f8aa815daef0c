package request

import (
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Comment       string    `json:"comment" binding:"required,max=1000"`
}

type ListReviewsRequest struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	After string `form:"after"`
}
