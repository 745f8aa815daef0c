//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"toolshare/internal/domain/user"
	"toolshare/internal/handler/dto/response"
	"toolshare/tests/common/authtest"
	"toolshare/tests/common/builder"
	"toolshare/tests/common/dbtest"
	"toolshare/tests/common/httptest"
	"toolshare/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL     = "/api/reviews"
	toolReviewsURL = "/api/tools/%s/reviews"
)

type ReviewSuite struct {
	e2e.SharedSuite
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

type rental struct {
	ownerID       uuid.UUID
	toolID        uuid.UUID
	renterID      uuid.UUID
	renterToken   string
	reservationID uuid.UUID
}

// seedRental books a past rental in the given status.
func (s *ReviewSuite) seedRental(status string) rental {
	t := s.T()
	var r rental
	r.ownerID = dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com", string(user.RoleUser))
	r.renterID, r.renterToken = authtest.CreateAndLogin(t, s.DB, s.Router, "Renter", "renter@example.com", string(user.RoleUser))
	r.toolID = dbtest.CreateTestTool(t, s.DB, r.ownerID, "Table Saw", "Power Tools", 2500, "available")

	end := time.Now().UTC().AddDate(0, 0, -2)
	r.reservationID = dbtest.CreateTestReservation(t, s.DB, r.toolID, r.renterID, end.AddDate(0, 0, -3), end, 10000, status)
	return r
}

func (s *ReviewSuite) TestCreateReview() {
	s.Run("完了した予約をレビューするとオーナーのスコアが更新される", func() {
		t := s.T()
		r := s.seedRental("completed")

		body := builder.NewReviewBuilder().WithReservation(r.reservationID).WithRating(4).WithComment("Sharp blade").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, body, r.renterToken)

		var res response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		assert.Equal(t, 4, res.Rating)
		assert.InDelta(t, 8.0, res.OwnerSecurityScore, 0.001)
		assert.InDelta(t, 8.0, dbtest.SecurityScore(t, s.DB, r.ownerID), 0.001)
	})

	s.Run("同じ予約への2回目のレビューは409", func() {
		t := s.T()
		r := s.seedRental("completed")
		dbtest.CreateTestReview(t, s.DB, r.reservationID, r.renterID, 5, "Great")

		body := builder.NewReviewBuilder().WithReservation(r.reservationID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, body, r.renterToken)

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Reservation already reviewed")
	})

	s.Run("未完了の予約はレビューできない", func() {
		t := s.T()
		r := s.seedRental("approved")

		body := builder.NewReviewBuilder().WithReservation(r.reservationID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, body, r.renterToken)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Can only review completed reservations")
	})

	s.Run("借り手以外はレビューできない", func() {
		t := s.T()
		r := s.seedRental("completed")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Other", "other@example.com", string(user.RoleUser))

		body := builder.NewReviewBuilder().WithReservation(r.reservationID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, body, otherToken)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Only the renter can review this reservation")
	})

	s.Run("存在しない予約", func() {
		t := s.T()
		r := s.seedRental("completed")

		body := builder.NewReviewBuilder().WithReservation(uuid.New()).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, body, r.renterToken)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("未認証", func() {
		body := builder.NewReviewBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, body, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *ReviewSuite) TestListToolReviews() {
	t := s.T()
	r := s.seedRental("completed")
	first := dbtest.CreateTestReview(t, s.DB, r.reservationID, r.renterID, 5, "Great")

	end := time.Now().UTC().AddDate(0, 0, -10)
	second := dbtest.CreateTestReservation(t, s.DB, r.toolID, r.renterID, end.AddDate(0, 0, -1), end, 5000, "completed")
	secondReview := dbtest.CreateTestReview(t, s.DB, second, r.renterID, 3, "Blade was dull")

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(toolReviewsURL, r.toolID)+"?limit=1", nil, "")
	var page response.ReviewListResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
	require.Len(t, page.Items, 1)
	require.NotEmpty(t, page.NextAfter)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(toolReviewsURL, r.toolID)+"?limit=1&after="+url.QueryEscape(page.NextAfter), nil, "")
	var next response.ReviewListResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &next)
	require.Len(t, next.Items, 1)
	assert.Empty(t, next.NextAfter)

	got := []uuid.UUID{page.Items[0].ID, next.Items[0].ID}
	want := []uuid.UUID{first, secondReview}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b uuid.UUID) bool { return a.String() < b.String() })); diff != "" {
		t.Errorf("paged reviews mismatch (-want +got):\n%s", diff)
	}
}
