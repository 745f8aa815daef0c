//go:build unit || e2e

package builder

import (
	"time"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/domain/reservation"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	ToolID          uuid.UUID
	ToolName        string
	OwnerID         uuid.UUID
	RenterID        uuid.UUID
	RenterName      string
	StartDate       time.Time
	EndDate         time.Time
	TotalPriceCents int64
	Status          reservation.Status
	Reviewed        bool
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              uuid.New(),
		ToolID:          uuid.New(),
		ToolName:        "Cordless Drill",
		OwnerID:         uuid.New(),
		RenterID:        uuid.New(),
		RenterName:      "Test Renter",
		StartDate:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		TotalPriceCents: 4500,
		Status:          reservation.StatusPending,
		CreatedAt:       time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithTool(toolID, ownerID uuid.UUID) *ReservationBuilder {
	b.ToolID = toolID
	b.OwnerID = ownerID
	return b
}

func (b *ReservationBuilder) WithRenter(renterID uuid.UUID) *ReservationBuilder {
	b.RenterID = renterID
	return b
}

func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.StartDate, _ = clock.ParseDate(start)
	b.EndDate, _ = clock.ParseDate(end)
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithTotalPriceCents(cents int64) *ReservationBuilder {
	b.TotalPriceCents = cents
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.ToolID, b.RenterID,
		availability.NewDateRange(b.StartDate, b.EndDate),
		pricing.NewMoney(b.TotalPriceCents),
		b.Status,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		ToolID:          b.ToolID,
		ToolName:        b.ToolName,
		OwnerID:         b.OwnerID,
		RenterID:        b.RenterID,
		RenterName:      b.RenterName,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status.String(),
		Reviewed:        b.Reviewed,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildRequest() availability.ReservationRequest {
	return availability.NewReservationRequest(b.ToolID, b.StartDate, b.EndDate)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ToolID: b.ToolID,
		DateRangeRequest: reqdto.DateRangeRequest{
			StartDate: clock.FormatDate(b.StartDate),
			EndDate:   clock.FormatDate(b.EndDate),
		},
	}
}
