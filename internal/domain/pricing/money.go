package pricing

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativeMoney    = errors.New("money cannot be negative")
	ErrNonPositiveRate  = errors.New("daily price must be greater than zero")
	ErrEmptyRentalRange = errors.New("rental range must cover at least one day")
)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromFloat converts a decimal amount (as sent over the wire) to cents, rounding half away from zero.
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("invalid amount %v", amount)
	}
	if amount < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Float64() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Mul(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
