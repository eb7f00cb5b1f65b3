package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/pkg/response"
)

// MustGetUserID extracts the authenticated user id injected by the JWT
// middleware. On failure it writes a 401; the caller should return when
// ok is false.
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "must sign in")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		response.Unauthorized(c, "must sign in")
		return 0, false
	}
	return id, true
}

// pathID parses a numeric :id path parameter. On failure it writes a 400;
// the caller should return when ok is false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
