package availability

import (
	"fmt"
	"time"

	"toolshare/internal/pkg/clock"

	"github.com/google/uuid"
)

// DateRange is a closed interval of calendar dates: both Start and End are rental days.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// BookedRange is a DateRange already committed against a tool.
type BookedRange = DateRange

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: clock.DateOf(start), End: clock.DateOf(end)}
}

func (r DateRange) IsOrdered() bool {
	return !r.End.Before(r.Start)
}

func (r DateRange) Days() int64 {
	return clock.DaysInclusive(r.Start, r.End)
}

// Overlaps reports whether the two closed intervals share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", clock.FormatDate(r.Start), clock.FormatDate(r.End))
}

// ReservationRequest is the renter's proposal; it is not persisted until submitted.
type ReservationRequest struct {
	ToolID uuid.UUID
	Start  time.Time
	End    time.Time
}

func NewReservationRequest(toolID uuid.UUID, start, end time.Time) ReservationRequest {
	return ReservationRequest{ToolID: toolID, Start: clock.DateOf(start), End: clock.DateOf(end)}
}

func (r ReservationRequest) Range() DateRange {
	return DateRange{Start: r.Start, End: r.End}
}

func (r ReservationRequest) WithDates(start, end time.Time) ReservationRequest {
	return NewReservationRequest(r.ToolID, start, end)
}
