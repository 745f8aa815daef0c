package httperr

import (
	"net/http"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/domain/reservation"
	"toolshare/internal/domain/review"
	"toolshare/internal/domain/tool"
	"toolshare/internal/domain/user"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/commands"
	"toolshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const MsgInternal = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error onto its HTTP status and message.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

// Classify picks status and user-facing message. Unknown errors become 500 with a generic message.
func Classify(err error) (int, string) {
	var rejected *availability.SubmissionRejectedError
	var conflict *availability.DateConflictError
	switch {
	case errs.As(err, &rejected):
		return http.StatusConflict, rejected.Error()
	case errs.As(err, &conflict):
		return http.StatusConflict, conflict.Error()
	case errs.Is(err, availability.ErrInvalidRange):
		return http.StatusBadRequest, rangeMessage(err)

	case errs.IsAny(err, errs.ErrUserNotFound, errs.ErrToolNotFound, errs.ErrReservationNotFound):
		return http.StatusNotFound, notFoundMessage(err)

	case errs.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect email or password"
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"

	case errs.Is(err, tool.ErrNotOwner):
		return http.StatusForbidden, "Only the owner can modify this tool"
	case errs.Is(err, reservation.ErrNotParticipant):
		return http.StatusForbidden, "Not allowed to change this reservation"
	case errs.Is(err, review.ErrNotReviewer):
		return http.StatusForbidden, "Only the renter can review this reservation"
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"

	case errs.Is(err, commands.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errs.Is(err, commands.ErrWrongPassword):
		return http.StatusBadRequest, "Current password is incorrect"
	case errs.Is(err, commands.ErrCannotDeleteSelf):
		return http.StatusBadRequest, "Cannot delete yourself"
	case errs.Is(err, review.ErrReviewAlreadyExists):
		return http.StatusConflict, "Reservation already reviewed"
	case errs.Is(err, review.ErrReservationNotEligible):
		return http.StatusBadRequest, "Can only review completed reservations"
	case errs.Is(err, errs.ErrIdempotencyMismatch):
		return http.StatusUnprocessableEntity, "Idempotency key reused with a different request"
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, "Reservation request is currently being processed"
	case errs.Is(err, reservation.ErrInvalidTransition):
		return http.StatusConflict, "Reservation status transition is not allowed"
	case errs.Is(err, errs.ErrReviewNotAllowed):
		return http.StatusBadRequest, "Review not allowed"
	case errs.Is(err, queries.ErrInvalidCursor):
		return http.StatusBadRequest, "Invalid cursor"

	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest, domainMessage(err)
	}
	return http.StatusInternalServerError, MsgInternal
}

func rangeMessage(err error) string {
	var rangeErr *availability.RangeError
	if errs.As(err, &rangeErr) {
		return rangeErr.Error()
	}
	return "Invalid date range"
}

func notFoundMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrToolNotFound):
		return "Tool not found"
	case errs.Is(err, errs.ErrReservationNotFound):
		return "Reservation not found"
	default:
		return "User not found"
	}
}

// domainMessage surfaces the innermost domain error text; those messages are written for end users.
func domainMessage(err error) string {
	for _, known := range domainErrors {
		if errs.Is(err, known) {
			return known.Error()
		}
	}
	return "Invalid request"
}

var domainErrors = []error{
	reservation.ErrOwnTool,
	reservation.ErrToolNotAvailable,
	reservation.ErrInvalidStatus,
	reservation.ErrToolMismatch,
	tool.ErrInvalidName,
	tool.ErrDescriptionTooLong,
	tool.ErrCategoryTooLong,
	tool.ErrInvalidStatus,
	tool.ErrNonPositivePrice,
	tool.ErrImageURLTooLong,
	review.ErrInvalidRating,
	review.ErrEmptyComment,
	review.ErrCommentTooLong,
	user.ErrInvalidEmail,
	user.ErrInvalidRole,
	user.ErrPasswordTooWeak,
	user.ErrInvalidName,
	user.ErrBioTooLong,
	pricing.ErrNegativeMoney,
	pricing.ErrNonPositiveRate,
	pricing.ErrEmptyRentalRange,
}
