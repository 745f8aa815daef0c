//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/infra"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/queries"
	queriesmock "toolshare/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockAvailabilityReadStore
	q     queries.AvailabilityQueries
	tool  uuid.UUID
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockAvailabilityReadStore(s.ctrl)
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC))
	s.q = queries.NewAvailabilityQueries(s.store, pricing.NewDailyRateCalculator(), clk)
	s.tool = uuid.New()
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func day(v string) time.Time {
	t, err := clock.ParseDate(v)
	if err != nil {
		panic(err)
	}
	return t
}

func (s *AvailabilityQueriesTestSuite) request(start, end string) availability.ReservationRequest {
	return availability.NewReservationRequest(s.tool, day(start), day(end))
}

func (s *AvailabilityQueriesTestSuite) TestBookedRanges() {
	s.Run("returns ranges of a known tool", func() {
		ranges := []availability.BookedRange{
			availability.NewDateRange(day("2024-06-03"), day("2024-06-04")),
			availability.NewDateRange(day("2024-06-08"), day("2024-06-09")),
		}
		s.store.EXPECT().DailyPrice(gomock.Any(), s.tool).Return(pricing.NewMoney(1000), nil)
		s.store.EXPECT().BookedRanges(gomock.Any(), s.tool).Return(ranges, nil)

		got, err := s.q.BookedRanges(context.Background(), s.tool)
		s.Require().NoError(err)
		if diff := cmp.Diff(ranges, got); diff != "" {
			s.Failf("ranges mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("unknown tool", func() {
		s.store.EXPECT().DailyPrice(gomock.Any(), s.tool).
			Return(pricing.Money{}, infra.WrapRepoErr("tool not found", nil, infra.KindNotFound))

		_, err := s.q.BookedRanges(context.Background(), s.tool)
		s.ErrorIs(err, errs.ErrToolNotFound)
	})

	s.Run("read failure", func() {
		s.store.EXPECT().DailyPrice(gomock.Any(), s.tool).Return(pricing.NewMoney(1000), nil)
		s.store.EXPECT().BookedRanges(gomock.Any(), s.tool).Return(nil, errors.New("timeout"))

		_, err := s.q.BookedRanges(context.Background(), s.tool)
		s.ErrorIs(err, queries.ErrQueryFailed)
	})
}

func (s *AvailabilityQueriesTestSuite) TestCheck() {
	booked := []availability.BookedRange{availability.NewDateRange(day("2024-06-10"), day("2024-06-15"))}

	cases := []struct {
		name        string
		start, end  string
		valid       bool
		conflict    bool
		quoteNeeded bool
	}{
		{name: "free dates", start: "2024-06-02", end: "2024-06-05", valid: true, quoteNeeded: true},
		{name: "today is allowed", start: "2024-06-01", end: "2024-06-01", valid: true, quoteNeeded: true},
		{name: "touching the booking", start: "2024-06-05", end: "2024-06-10", valid: true, conflict: true},
		{name: "start in the past", start: "2024-05-31", end: "2024-06-02"},
		{name: "reversed range still reports nothing to quote", start: "2024-06-05", end: "2024-06-04"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.store.EXPECT().DailyPrice(gomock.Any(), s.tool).Return(pricing.NewMoney(1000), nil)
			s.store.EXPECT().BookedRanges(gomock.Any(), s.tool).Return(booked, nil)

			d, err := s.q.Check(context.Background(), s.request(tc.start, tc.end))
			s.Require().NoError(err)
			s.Equal(tc.valid, d.Validation.Passed())
			s.Equal(tc.conflict, d.Conflict.Conflict)
			s.Equal(tc.quoteNeeded, d.QuoteNeeded)
		})
	}
}

func (s *AvailabilityQueriesTestSuite) TestQuote() {
	s.Run("multiplies the daily rate by inclusive days", func() {
		s.store.EXPECT().DailyPrice(gomock.Any(), s.tool).Return(pricing.NewMoney(1250), nil)

		quote, err := s.q.Quote(context.Background(), s.request("2024-06-10", "2024-06-13"))
		s.Require().NoError(err)
		s.Equal(int64(5000), quote.TotalPrice.Cents())
		s.Equal(int64(1250), quote.DailyPrice.Cents())
		s.Equal(int64(4), quote.Days)
	})

	s.Run("single day", func() {
		s.store.EXPECT().DailyPrice(gomock.Any(), s.tool).Return(pricing.NewMoney(1250), nil)

		quote, err := s.q.Quote(context.Background(), s.request("2024-06-10", "2024-06-10"))
		s.Require().NoError(err)
		s.Equal(int64(1250), quote.TotalPrice.Cents())
	})

	s.Run("invalid range is not priced", func() {
		_, err := s.q.Quote(context.Background(), s.request("2024-06-10", "2024-06-09"))
		s.ErrorIs(err, availability.ErrInvalidRange)
		s.Equal("End date must be after start date", err.Error())
	})

	s.Run("unknown tool", func() {
		s.store.EXPECT().DailyPrice(gomock.Any(), s.tool).
			Return(pricing.Money{}, infra.WrapRepoErr("tool not found", nil, infra.KindNotFound))

		_, err := s.q.Quote(context.Background(), s.request("2024-06-10", "2024-06-12"))
		s.ErrorIs(err, errs.ErrToolNotFound)
	})
}
