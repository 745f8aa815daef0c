package response

import (
	"log/slog"
	"time"

	"toolshare/internal/domain/pricing"
	"toolshare/internal/pkg/clock"

	"github.com/jinzhu/copier"
)

// copyFields fills same-named fields of dst from src. Mismatched types are left for the caller.
func copyFields(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		slog.Error("response mapping failed", "error", err)
	}
}

func money(cents int64) float64 {
	return pricing.NewMoney(cents).Float64()
}

func date(t time.Time) string {
	return clock.FormatDate(t)
}
