//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"toolshare/internal/domain/review"
	"toolshare/internal/handler/api"
	resdto "toolshare/internal/handler/dto/response"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/commands"
	"toolshare/tests/common/builder"
	"toolshare/tests/common/httptest"
	"toolshare/tests/common/testutil"
	commandsmock "toolshare/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands)
	s.userID = uuid.New()

	s.router.POST("/reviews", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Create(c)
	})
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name         string
	mutate       func(m map[string]any)
	setupMock    func()
	expectCode   int
	expectInBody string
}

func (s *ReviewHandlerTestSuite) TestCreateReview() {
	url := "/reviews"
	b := builder.NewReviewBuilder().WithReviewer(s.userID).WithRating(4).WithComment("Sharp blades")
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns the recalculated owner score", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody, s.userID).Return(&commands.CreateReviewResult{
			Review:             b.BuildDomain(),
			OwnerSecurityScore: 8.5,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ReservationID, body.ReservationID)
		s.Equal(s.userID, body.ReviewerID)
		s.Equal(4, body.Rating)
		s.Equal("Sharp blades", body.Comment)
		s.Equal(8.5, body.OwnerSecurityScore)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	cases := []testCaseReview{
		{
			name:       "validation: missing reservation id",
			mutate:     testutil.Field("reservation_id", nil),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "validation: rating above 5",
			mutate:     testutil.Field("rating", 6),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "validation: rating below 1",
			mutate:     testutil.Field("rating", 0),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "validation: comment too long",
			mutate:     testutil.Field("comment", strings.Repeat("x", 1001)),
			expectCode: http.StatusBadRequest,
		},
		{
			name: "domain: not the renter",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody, s.userID).
					Return(nil, errs.Mark(review.ErrNotReviewer, errs.ErrForbidden))
			},
			expectCode:   http.StatusForbidden,
			expectInBody: "Only the renter can review this reservation",
		},
		{
			name: "domain: reservation not completed",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody, s.userID).
					Return(nil, review.ErrReservationNotEligible)
			},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Can only review completed reservations",
		},
		{
			name: "domain: already reviewed",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody, s.userID).
					Return(nil, review.ErrReviewAlreadyExists)
			},
			expectCode:   http.StatusConflict,
			expectInBody: "Reservation already reviewed",
		},
		{
			name: "domain: reservation not found",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody, s.userID).
					Return(nil, errs.ErrReservationNotFound)
			},
			expectCode:   http.StatusNotFound,
			expectInBody: "Reservation not found",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}
			var body any = reqBody
			if tc.mutate != nil {
				body = testutil.DtoMap(s.T(), reqBody, tc.mutate)
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}
}
