// Package http provides HTTP handlers for appointment operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	"github.com/jo4ovms/psychology-project/internal/appointment/http/dto"
	"github.com/jo4ovms/psychology-project/internal/appointment/usecase"
	"github.com/jo4ovms/psychology-project/internal/httputil"
)

// AppointmentHandler handles HTTP requests for appointment operations.
type AppointmentHandler struct {
	appointmentUseCase usecase.UseCase
	logger             *slog.Logger
}

// NewAppointmentHandler creates a new appointment handler with required dependencies.
func NewAppointmentHandler(appointmentUseCase usecase.UseCase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUseCase: appointmentUseCase,
		logger:             logger,
	}
}

// CreateHandler schedules an appointment.
// POST /v1/users/:user_id/appointments
func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	userID, err := httputil.ParseIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	appointment, err := h.appointmentUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAppointmentToResponse(appointment))
}

// GetHandler retrieves an appointment.
// GET /v1/users/:user_id/appointments/:appointment_id
func (h *AppointmentHandler) GetHandler(c *gin.Context) {
	userID, appointmentID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentUseCase.Get(c.Request.Context(), userID, appointmentID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAppointmentToResponse(appointment))
}

// ListHandler lists the appointments of a user.
// GET /v1/users/:user_id/appointments?from=&to=&status=&client_id=&offset=0&limit=50
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	userID, err := httputil.ParseIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	filter, err := parseListFilter(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	appointments, err := h.appointmentUseCase.List(c.Request.Context(), userID, filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAppointmentsToListResponse(appointments))
}

// UpdateHandler replaces an appointment.
// PUT /v1/users/:user_id/appointments/:appointment_id
func (h *AppointmentHandler) UpdateHandler(c *gin.Context) {
	userID, appointmentID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	var req dto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	appointment, err := h.appointmentUseCase.Update(c.Request.Context(), userID, appointmentID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAppointmentToResponse(appointment))
}

// DeleteHandler deletes an appointment.
// DELETE /v1/users/:user_id/appointments/:appointment_id
// Returns 204 No Content.
func (h *AppointmentHandler) DeleteHandler(c *gin.Context) {
	userID, appointmentID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.appointmentUseCase.Delete(c.Request.Context(), userID, appointmentID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *AppointmentHandler) parseIDs(c *gin.Context) (userID, appointmentID int64, ok bool) {
	userID, err := httputil.ParseIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return 0, 0, false
	}

	appointmentID, err = httputil.ParseIDParam(c, "appointment_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return 0, 0, false
	}

	return userID, appointmentID, true
}

func parseListFilter(c *gin.Context) (domain.ListFilter, error) {
	var filter domain.ListFilter

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		return filter, err
	}
	filter.Offset = offset
	filter.Limit = limit

	if filter.ClientID, err = httputil.ParseOptionalIDQuery(c, "client_id"); err != nil {
		return filter, err
	}
	if filter.From, err = httputil.ParseOptionalTimeQuery(c, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = httputil.ParseOptionalTimeQuery(c, "to"); err != nil {
		return filter, err
	}

	if raw := c.Query("status"); raw != "" {
		status := domain.Status(raw)
		if !status.IsValid() {
			return filter, fmt.Errorf("invalid status parameter: %q", raw)
		}
		filter.Status = &status
	}

	return filter, nil
}
