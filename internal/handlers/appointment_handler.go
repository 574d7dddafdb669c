package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quicklic/clinic-scheduler/internal/domain/schedule"
	"github.com/quicklic/clinic-scheduler/internal/httperr"
	"github.com/quicklic/clinic-scheduler/internal/httpresp"
	"github.com/quicklic/clinic-scheduler/internal/middleware"
	"github.com/quicklic/clinic-scheduler/internal/models"
	"github.com/quicklic/clinic-scheduler/internal/usecase/scheduling"
)

type AppointmentHandler struct {
	book   *scheduling.BookAppointment
	list   *scheduling.ListAppointments
	status *scheduling.ChangeStatus
	cancel *scheduling.CancelAppointment
}

func NewAppointmentHandler(
	book *scheduling.BookAppointment,
	list *scheduling.ListAppointments,
	status *scheduling.ChangeStatus,
	cancel *scheduling.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:   book,
		list:   list,
		status: status,
		cancel: cancel,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	DoctorID      uint   `json:"doctor_id" binding:"required"`
	ClinicID      uint   `json:"clinic_id" binding:"required"`
	ReasonID      uint   `json:"reason_id" binding:"required"`
	StartDatetime string `json:"start_datetime" binding:"required"`
	EndDatetime   string `json:"end_datetime" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CONF NOSW DISC DONE"`
}

// --------- Handlers ---------

// Create books an appointment for the authenticated patient.
func (h *AppointmentHandler) Create(c *gin.Context) {
	patientID := c.GetUint(middleware.ContextUserID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseDatetime(req.StartDatetime)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "start_datetime must be RFC3339.")
		return
	}
	end, err := parseDatetime(req.EndDatetime)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "end_datetime must be RFC3339.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), scheduling.BookAppointmentInput{
		PatientID:     patientID,
		DoctorID:      req.DoctorID,
		ClinicID:      req.ClinicID,
		ReasonID:      req.ReasonID,
		StartDatetime: start,
		EndDatetime:   end,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_book_appointment", "Please try again later.")
		}
		return
	}

	httpresp.Created(c, appointmentPayload(ap))
}

// List returns the caller's appointments. Doctors see their own
// schedule, patients their own bookings.
func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	role := c.GetString(middleware.ContextUserRole)

	filter := schedule.AppointmentFilter{}
	switch role {
	case models.RoleDoctor:
		filter.DoctorID = &userID
	default:
		filter.PatientID = &userID
	}

	if v := c.Query("status"); v != "" {
		filter.Statuses = parseStatusList(v)
	}
	if v := c.Query("clinic_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			clinicID := uint(id)
			filter.ClinicID = &clinicID
		}
	}
	if v := c.Query("reason_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			reasonID := uint(id)
			filter.ReasonID = &reasonID
		}
	}
	if v := c.Query("from"); v != "" {
		from, err := parseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_datetime", "from must be YYYY-MM-DD.")
			return
		}
		filter.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := parseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_datetime", "to must be YYYY-MM-DD.")
			return
		}
		// Inclusive end date.
		end := to.Add(24 * time.Hour)
		filter.To = &end
	}

	items, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Please try again later.")
		return
	}

	httpresp.List(c, items)
}

// UpdateStatus is the doctor-side lifecycle endpoint.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	doctorID := c.GetUint(middleware.ContextUserID)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Appointment id must be numeric.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.status.Execute(
		c.Request.Context(),
		doctorID,
		uint(appointmentID),
		schedule.Status(req.Status),
	)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_update_status", "Please try again later.")
		}
		return
	}

	httpresp.OK(c, appointmentPayload(ap))
}

// Cancel is the patient-side cancellation endpoint.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	patientID := c.GetUint(middleware.ContextUserID)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Appointment id must be numeric.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), patientID, uint(appointmentID))
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_cancel_appointment", "Please try again later.")
		}
		return
	}

	httpresp.OK(c, appointmentPayload(ap))
}

func appointmentPayload(ap *models.Appointment) gin.H {
	return gin.H{
		"id":             ap.ID,
		"qid":            ap.QID,
		"patient_id":     ap.PatientID,
		"doctor_id":      ap.DoctorID,
		"clinic_id":      ap.ClinicID,
		"reason_id":      ap.ReasonID,
		"start_datetime": ap.StartDatetime,
		"end_datetime":   ap.EndDatetime,
		"status":         ap.Status,
	}
}
