package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quicklic/clinic-scheduler/internal/httperr"
)

// writeBusinessError maps a business error onto the HTTP surface.
// Returns false when the error is not a business error (caller handles
// it as transient/internal).
func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	switch {
	case code == "appointment_overlap" || code == "duplicate_identifier":
		httperr.Conflict(c, code, "The requested time is no longer available.")
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Requested record does not exist.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
	return true
}
