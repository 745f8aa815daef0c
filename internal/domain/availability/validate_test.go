//go:build unit

package availability_test

import (
	"testing"

	"toolshare/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRange(t *testing.T) {
	today := date("2024-06-05")

	tests := []struct {
		name  string
		req   availability.ReservationRequest
		errIs error
	}{
		{name: "starts today", req: request("2024-06-05", "2024-06-05")},
		{name: "starts in the future", req: request("2024-06-06", "2024-06-09")},
		{name: "start yesterday with valid end", req: request("2024-06-04", "2024-06-09"), errIs: availability.ErrStartInPast},
		{name: "start yesterday with end before start", req: request("2024-06-04", "2024-06-01"), errIs: availability.ErrStartInPast},
		{name: "end before start", req: request("2024-06-10", "2024-06-09"), errIs: availability.ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := availability.ValidateRange(tt.req, today)
			if tt.errIs == nil {
				assert.True(t, result.Passed())
				assert.NoError(t, result.Err)
				return
			}
			assert.False(t, result.Passed())
			require.ErrorIs(t, result.Err, tt.errIs)
			require.ErrorIs(t, result.Err, availability.ErrInvalidRange)
		})
	}
}
