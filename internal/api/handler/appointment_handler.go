package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/scheduling"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/response"
)

// AppointmentHandler serves the secretary's-office booking feature.
//
// These routes keep the portal's legacy wire contract: the caller
// identifies itself in the payload, listings are bare arrays and
// cancellations acknowledge with {"success": true}.
type AppointmentHandler struct {
	appointmentSvc service.AppointmentService
}

// timeNow is swapped out in tests.
var timeNow = time.Now

// NewAppointmentHandler creates the AppointmentHandler.
func NewAppointmentHandler(appointmentSvc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentSvc: appointmentSvc}
}

// List returns appointments as a bare array, optionally filtered by day.
// GET /api/v1/appointments?day=YYYY-MM-DD
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.appointmentSvc.List(c.Request.Context(), c.Query("day"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.OK(c, appointments)
}

// Availability returns the status of every slot for one day.
// GET /api/v1/appointments/availability?day=YYYY-MM-DD
func (h *AppointmentHandler) Availability(c *gin.Context) {
	day := c.Query("day")
	if !scheduling.IsBookableDay(day, timeNow()) {
		response.BadRequest(c, "day is not bookable")
		return
	}

	statuses, err := h.appointmentSvc.Availability(c.Request.Context(), day)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.OK(c, statuses)
}

// Agenda returns the caller's appointments in chronological order. An
// absent or zero user id yields an empty agenda.
// GET /api/v1/appointments/agenda?user_id=N
func (h *AppointmentHandler) Agenda(c *gin.Context) {
	userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)

	entries, err := h.appointmentSvc.Agenda(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.OK(c, entries)
}

// Book creates an appointment. The calendar policy (weekdays, today or
// later) is enforced here; the scheduler assumes it.
// POST /api/v1/appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid booking payload")
		return
	}
	if !scheduling.IsBookableDay(req.Day, timeNow()) {
		response.BadRequest(c, "day is not bookable")
		return
	}

	appointment, err := h.appointmentSvc.Book(c.Request.Context(), &req)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	response.OK(c, appointment)
}

// Cancel deletes an appointment the caller owns.
// DELETE /api/v1/appointments
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req dto.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid cancellation payload")
		return
	}

	if err := h.appointmentSvc.Cancel(c.Request.Context(), &req); err != nil {
		writeSchedulingError(c, err)
		return
	}
	response.Success(c)
}

// ICS downloads one appointment as an iCalendar file.
// GET /api/v1/appointments/:id/ics
func (h *AppointmentHandler) ICS(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	data, err := h.appointmentSvc.ICS(c.Request.Context(), id)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="cita-%d.ics"`, id))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

// writeSchedulingError maps the scheduling error taxonomy to HTTP.
func writeSchedulingError(c *gin.Context, err error) {
	var persistence *scheduling.PersistenceError
	switch {
	case errors.Is(err, scheduling.ErrUnauthenticated):
		response.Unauthorized(c, "must sign in")
	case errors.Is(err, scheduling.ErrInvalidInput):
		response.BadRequest(c, "invalid appointment data")
	case errors.Is(err, scheduling.ErrNotFound):
		response.NotFound(c, "appointment not found")
	case errors.Is(err, scheduling.ErrForbidden):
		response.Forbidden(c, "appointment owned by another user")
	case errors.Is(err, scheduling.ErrAlreadyPast):
		response.BadRequest(c, "appointment is already in the past")
	case errors.Is(err, scheduling.ErrSlotTaken):
		response.Conflict(c, "slot already booked")
	case errors.As(err, &persistence):
		response.InternalError(c, persistence.Error())
	default:
		response.InternalError(c, "")
	}
}
