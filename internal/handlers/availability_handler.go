package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/httpresp"
	"github.com/quicklic/clinic-scheduler/internal/middleware"
	"github.com/quicklic/clinic-scheduler/internal/usecase/scheduling"
)

type AvailabilityHandler struct {
	repo   schedule.Repository
	update *scheduling.UpdateAvailability
}

func NewAvailabilityHandler(
	repo schedule.Repository,
	update *scheduling.UpdateAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, update: update}
}

type AvailabilityRequest struct {
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	SlotMinutes int     `json:"slot_minutes" binding:"required"`
	Weekdays    [7]bool `json:"weekdays"`
}

type availabilityPayload struct {
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	SlotMinutes int     `json:"slot_minutes"`
	Weekdays    [7]bool `json:"weekdays"`
}

// Get returns the authenticated doctor's weekly availability. Doctors
// without a stored setting see the default empty window.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	doctorID := c.GetUint(middleware.ContextUserID)

	avail := schedule.DefaultAvailability()
	if setting, err := h.repo.GetDoctorSetting(c.Request.Context(), doctorID); err == nil {
		avail = schedule.FromSetting(setting)
	}

	httpresp.OK(c, availabilityPayload{
		StartTime:   avail.StartTime,
		EndTime:     avail.EndTime,
		SlotMinutes: avail.SlotMinutes,
		Weekdays:    avail.Weekdays,
	})
}

// Update replaces the doctor's weekly availability and reports which
// future appointments were discarded by the change.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	doctorID := c.GetUint(middleware.ContextUserID)

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	next := schedule.WeeklyAvailability{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		SlotMinutes: req.SlotMinutes,
		Weekdays:    req.Weekdays,
	}

	discarded, err := h.update.Execute(c.Request.Context(), doctorID, next)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_update_availability", "Please try again later.")
		}
		return
	}

	if discarded == nil {
		discarded = []uint{}
	}

	httpresp.OK(c, gin.H{
		"availability": availabilityPayload{
			StartTime:   next.StartTime,
			EndTime:     next.EndTime,
			SlotMinutes: next.SlotMinutes,
			Weekdays:    next.Weekdays,
		},
		"discarded_appointment_ids": discarded,
	})
}
