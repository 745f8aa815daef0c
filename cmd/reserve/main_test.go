//go:build unit

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"toolshare/internal/domain/availability"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolID = "7d0f5c1e-3a5b-4c8e-9f10-2b3c4d5e6f70"

func fakeServer(t *testing.T, created *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tools/{id}/availability", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]string{{"start_date": "2024-06-05", "end_date": "2024-06-10"}})
	})
	mux.HandleFunc("GET /api/reservations/price", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"total_price": 30.0})
	})
	mux.HandleFunc("POST /api/reservations", func(w http.ResponseWriter, r *http.Request) {
		*created++
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "11111111-2222-3333-4444-555555555555", "status": "pending"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer

	opts, err := parseFlags([]string{"-tool", toolID, "-start", "2024-06-12", "-end", "2024-06-13", "-dry-run"}, &stderr)
	require.NoError(t, err)
	assert.True(t, opts.dryRun)
	assert.Equal(t, "2024-06-12", clock.FormatDate(opts.start))

	_, err = parseFlags([]string{"-tool", "nope"}, &stderr)
	assert.ErrorContains(t, err, "-tool")
}

func TestRun(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	t.Run("見積もり後に予約を作成する", func(t *testing.T) {
		var created int
		srv := fakeServer(t, &created)
		var out bytes.Buffer

		opts, err := parseFlags([]string{"-tool", toolID, "-start", "2024-06-12", "-end", "2024-06-13"}, &out)
		require.NoError(t, err)

		err = run(context.Background(), opts, config.ClientConfig{BaseURL: srv.URL}, clk, &out)

		require.NoError(t, err)
		assert.Equal(t, 1, created)
		assert.Contains(t, out.String(), "booked  2024-06-05 to 2024-06-10")
		assert.Contains(t, out.String(), "price   30.00 for 2 day(s)")
		assert.Contains(t, out.String(), "created 11111111-2222-3333-4444-555555555555 (pending)")
	})

	t.Run("重複する日付はサーバーに送らない", func(t *testing.T) {
		var created int
		srv := fakeServer(t, &created)
		var out bytes.Buffer

		opts, err := parseFlags([]string{"-tool", toolID, "-start", "2024-06-08", "-end", "2024-06-13"}, &out)
		require.NoError(t, err)

		err = run(context.Background(), opts, config.ClientConfig{BaseURL: srv.URL}, clk, &out)

		assert.ErrorIs(t, err, availability.ErrDateConflict)
		assert.Zero(t, created)
	})

	t.Run("dry-run", func(t *testing.T) {
		var created int
		srv := fakeServer(t, &created)
		var out bytes.Buffer

		opts, err := parseFlags([]string{"-tool", toolID, "-start", "2024-06-12", "-end", "2024-06-12", "-dry-run"}, &out)
		require.NoError(t, err)

		require.NoError(t, run(context.Background(), opts, config.ClientConfig{BaseURL: srv.URL}, clk, &out))
		assert.Zero(t, created)
	})
}
