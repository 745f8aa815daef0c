package response

import (
	"time"

	"toolshare/internal/domain/user"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Bio           *string   `json:"bio"`
	SecurityScore float64   `json:"security_score"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var res UserResponse
	copyFields(&res, v)
	return &res
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, len(vs))
	for i, v := range vs {
		out[i] = FromUserView(v)
	}
	return out
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID(),
		Name:          u.Name().String(),
		Email:         u.Email().Value(),
		Role:          u.Role().String(),
		Bio:           u.Bio(),
		SecurityScore: u.SecurityScore(),
		CreatedAt:     u.CreatedAt(),
	}
}

type UserStatsResponse struct {
	ToolsOwned   int64   `json:"tools_owned"`
	RentalsCount int64   `json:"rentals_count"`
	TotalSpent   float64 `json:"total_spent"`
}

func FromUserStats(s *queries.UserStats) *UserStatsResponse {
	return &UserStatsResponse{
		ToolsOwned:   s.ToolsOwned,
		RentalsCount: s.RentalsCount,
		TotalSpent:   money(s.TotalSpentCents),
	}
}
