package middleware

import (
	"net/http"
	"strconv"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the acting user's id. Authentication proper is out of
// scope; the gateway in front of this service is trusted to set the header.
const UserIDHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

var errMissingUserID = errs.New("missing user id header")

// RequireUser extracts the acting user id from the request header and makes
// it available through GetUserID.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingUserID,
				UserIDHeader+" header required", nil)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Newf("invalid user id header: %q", raw),
				"Invalid "+UserIDHeader+" header", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}
