package pricing

import (
	"time"

	"toolshare/internal/pkg/clock"
)

type PriceCalculator interface {
	TotalFor(dailyRate Money, start, end time.Time) (Money, error)
}

// DailyRateCalculator charges the daily rate for every calendar day in the inclusive range.
type DailyRateCalculator struct{}

func NewDailyRateCalculator() *DailyRateCalculator {
	return &DailyRateCalculator{}
}

func (DailyRateCalculator) TotalFor(dailyRate Money, start, end time.Time) (Money, error) {
	if !dailyRate.IsPositive() {
		return Money{}, ErrNonPositiveRate
	}
	days := clock.DaysInclusive(start, end)
	if days <= 0 {
		return Money{}, ErrEmptyRentalRange
	}
	return dailyRate.Mul(days), nil
}
