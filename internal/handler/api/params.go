package api

import (
	"net/http"

	"toolshare/internal/handler/httperr"
	"toolshare/internal/handler/middleware"
	"toolshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// currentUserID aborts with 401 when the auth middleware did not run.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func pathID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+label+" ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortBind(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
