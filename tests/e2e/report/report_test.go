//go:build e2e

package report_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"toolshare/internal/domain/user"
	"toolshare/internal/handler/dto/response"
	"toolshare/tests/common/authtest"
	"toolshare/tests/common/dbtest"
	"toolshare/tests/common/httptest"
	"toolshare/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReportSuite struct {
	e2e.SharedSuite
}

func TestReportSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReportSuite))
}

func june(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

// reviewedRental seeds a completed rental of toolID by renterID with a review of the given rating.
func (s *ReportSuite) reviewedRental(toolID, renterID uuid.UUID, startDay, rating int) {
	t := s.T()
	id := dbtest.CreateTestReservation(t, s.DB, toolID, renterID, june(startDay), june(startDay+1), 3000, "completed")
	dbtest.CreateTestReview(t, s.DB, id, renterID, rating, "fine")
}

func (s *ReportSuite) TestActivity() {
	s.Run("借りた道具と所有する道具を新しい順にまとめる", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com", string(user.RoleUser))
		meID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Me", "me@example.com", string(user.RoleUser))
		otherID := dbtest.CreateTestUser(t, s.DB, "Other", "other@example.com", string(user.RoleUser))

		drill := dbtest.CreateTestTool(t, s.DB, ownerID, "Drill", "Power Tools", 1500, "available")
		dbtest.CreateTestReservation(t, s.DB, drill, meID, june(3), june(4), 3000, "completed")
		dbtest.CreateTestReservation(t, s.DB, drill, meID, june(10), june(11), 3000, "pending")
		dbtest.CreateTestReservation(t, s.DB, drill, otherID, june(20), june(21), 3000, "pending")
		dbtest.CreateTestTool(t, s.DB, meID, "Ladder", "Hand Tools", 800, "available")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reports/activity", nil, token)

		var got []response.ReportActivityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		today := time.Now().UTC().Format("2006-01-02")
		want := []response.ReportActivityResponse{
			{Name: "Ladder", Type: "Owned", Date: today},
			{Name: "Drill", Type: "Rented", Date: "2024-06-10"},
			{Name: "Drill", Type: "Rented", Date: "2024-06-03"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("activity mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("未認証", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reports/activity", nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *ReportSuite) TestTopOwners() {
	t := s.T()
	renterID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Renter", "renter@example.com", string(user.RoleUser))

	starID := dbtest.CreateTestUser(t, s.DB, "Star", "star@example.com", string(user.RoleUser))
	saw := dbtest.CreateTestTool(t, s.DB, starID, "Saw", "Power Tools", 1500, "available")
	sander := dbtest.CreateTestTool(t, s.DB, starID, "Sander", "Power Tools", 1500, "available")
	s.reviewedRental(saw, renterID, 1, 5)
	s.reviewedRental(saw, renterID, 5, 4)
	s.reviewedRental(sander, renterID, 9, 5)

	// exactly 4.0 does not qualify
	steadyID := dbtest.CreateTestUser(t, s.DB, "Steady", "steady@example.com", string(user.RoleUser))
	s.reviewedRental(dbtest.CreateTestTool(t, s.DB, steadyID, "Clamp", "Hand Tools", 500, "available"), renterID, 1, 4)

	dbtest.CreateTestUser(t, s.DB, "Unrated", "unrated@example.com", string(user.RoleUser))

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reports/stats", nil, token)

	var got []response.TopOwnerResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Star", got[0].Name)
	assert.InDelta(t, 14.0/3.0, got[0].AvgRating, 0.001)
	assert.Equal(t, int64(2), got[0].ToolCount)
}

func (s *ReportSuite) TestAdminStats() {
	s.Run("売上は完了した予約のみ", func() {
		t := s.T()
		_, adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Admin", "admin@example.com", string(user.RoleAdmin))
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com", string(user.RoleUser))
		renterID := dbtest.CreateTestUser(t, s.DB, "Renter", "renter@example.com", string(user.RoleUser))
		toolID := dbtest.CreateTestTool(t, s.DB, ownerID, "Drill", "Power Tools", 2500, "available")

		dbtest.CreateTestReservation(t, s.DB, toolID, renterID, june(1), june(4), 10000, "completed")
		dbtest.CreateTestReservation(t, s.DB, toolID, renterID, june(5), june(5), 2500, "completed")
		dbtest.CreateTestReservation(t, s.DB, toolID, renterID, june(10), june(13), 9999, "pending")
		dbtest.CreateTestReservation(t, s.DB, toolID, renterID, june(14), june(15), 7000, "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/stats", nil, adminToken)

		var got response.SystemStatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, response.SystemStatsResponse{
			TotalUsers:        3,
			TotalTools:        1,
			TotalReservations: 4,
			TotalRevenue:      125.0,
			SystemStatus:      "Operational",
		}, got)
	})

	s.Run("管理者以外は403", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "User", "user@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/stats", nil, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *ReportSuite) TestSearchTools() {
	t := s.T()
	ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com", string(user.RoleUser))
	dbtest.CreateTestTool(t, s.DB, ownerID, "100% Cotton Rags", "Cleaning", 300, "available")
	dbtest.CreateTestTool(t, s.DB, ownerID, "1000 Grit Stone", "Sharpening", 400, "available")
	dbtest.CreateTestTool(t, s.DB, ownerID, "Hedge Trimmer", "Garden", 1200, "available")

	search := func(q string) []string {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/tools/search?q="+url.QueryEscape(q), nil, "")
		var items []response.ToolListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &items)
		names := make([]string, len(items))
		for i, it := range items {
			names[i] = it.Name
		}
		return names
	}

	assert.Equal(t, []string{"100% Cotton Rags"}, search("100%"), "% must match literally")
	assert.Equal(t, []string{"Hedge Trimmer"}, search("gARDEN"), "category match is case-insensitive")
	assert.Empty(t, search("_"))
}

func (s *ReportSuite) TestMyStats() {
	t := s.T()
	ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com", string(user.RoleUser))
	meID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "Me", "me@example.com", string(user.RoleUser))
	toolID := dbtest.CreateTestTool(t, s.DB, ownerID, "Drill", "Power Tools", 1500, "available")
	dbtest.CreateTestTool(t, s.DB, meID, "Ladder", "Hand Tools", 800, "available")

	for i, status := range []string{"completed", "approved", "pending", "rejected", "cancelled"} {
		start := june(1 + 3*i)
		dbtest.CreateTestReservation(t, s.DB, toolID, meID, start, start.AddDate(0, 0, 1), 1000, status)
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/me/stats", nil, token)

	var got response.UserStatsResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
	assert.Equal(t, response.UserStatsResponse{ToolsOwned: 1, RentalsCount: 5, TotalSpent: 30.0}, got, fmt.Sprintf("body: %s", w.Body.String()))
}
