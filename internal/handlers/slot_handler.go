package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/httpresp"
	"github.com/quicklic/clinic-scheduler/internal/usecase/scheduling"
)

type SlotHandler struct {
	getSlots *scheduling.GetSlots
}

func NewSlotHandler(getSlots *scheduling.GetSlots) *SlotHandler {
	return &SlotHandler{getSlots: getSlots}
}

// ListForDay returns one doctor's slot grid for a given date, each slot
// flagged available or taken.
func (h *SlotHandler) ListForDay(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Doctor id must be numeric.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "invalid_datetime", "date query parameter is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.getSlots.Execute(c.Request.Context(), uint(doctorID), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Please try again later.")
		return
	}

	httpresp.List(c, slots)
}
