//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"toolshare/internal/domain/reservation"
	"toolshare/internal/domain/review"
	"toolshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Worked perfectly", actual.Comment().String())
	})

	t.Run("評価値検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "0はNG",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "1はOK",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "5はOK",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "6はNG",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("コメント検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "最大長OK",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "空NG",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "最大長超過NG",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("コメントは前後の空白を除去", func(t *testing.T) {
		r, err := review.NewReview(uuid.New(), uuid.New(), 4, "  Trimmed comment  ", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", r.Comment().String())
	})
}

func TestCheckEligibility(t *testing.T) {
	renterID := uuid.New()

	tests := []struct {
		name       string
		status     reservation.Status
		reviewerID uuid.UUID
		errIs      error
	}{
		{name: "完了済みの借り手OK", status: reservation.StatusCompleted, reviewerID: renterID},
		{name: "承認済みはNG", status: reservation.StatusApproved, reviewerID: renterID, errIs: review.ErrReservationNotEligible},
		{name: "キャンセル済みはNG", status: reservation.StatusCancelled, reviewerID: renterID, errIs: review.ErrReservationNotEligible},
		{name: "借り手以外はNG", status: reservation.StatusCompleted, reviewerID: uuid.New(), errIs: review.ErrNotReviewer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := builder.NewReservationBuilder().
				WithRenterID(renterID).
				WithStatus(tt.status).
				BuildReconstructed()

			err := review.CheckEligibility(res, tt.reviewerID)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
