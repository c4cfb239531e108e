// Package http provides HTTP handlers for consultation operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
	"github.com/jo4ovms/psychology-project/internal/consultation/http/dto"
	"github.com/jo4ovms/psychology-project/internal/consultation/usecase"
	"github.com/jo4ovms/psychology-project/internal/httputil"
)

// ConsultationHandler handles HTTP requests for consultation operations.
type ConsultationHandler struct {
	consultationUseCase usecase.UseCase
	logger              *slog.Logger
}

// NewConsultationHandler creates a new consultation handler with required dependencies.
func NewConsultationHandler(consultationUseCase usecase.UseCase, logger *slog.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUseCase: consultationUseCase,
		logger:              logger,
	}
}

// CreateHandler records a consultation.
// POST /v1/users/:user_id/consultations
func (h *ConsultationHandler) CreateHandler(c *gin.Context) {
	userID, err := httputil.ParseIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	consultation, err := h.consultationUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapConsultationToResponse(consultation))
}

// GetHandler retrieves a consultation.
// GET /v1/users/:user_id/consultations/:consultation_id
func (h *ConsultationHandler) GetHandler(c *gin.Context) {
	userID, consultationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	consultation, err := h.consultationUseCase.Get(c.Request.Context(), userID, consultationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapConsultationToResponse(consultation))
}

// ListHandler lists the consultations of a user.
// GET /v1/users/:user_id/consultations?client_id=&offset=0&limit=50
func (h *ConsultationHandler) ListHandler(c *gin.Context) {
	userID, err := httputil.ParseIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	clientID, err := httputil.ParseOptionalIDQuery(c, "client_id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	filter := domain.ListFilter{ClientID: clientID, Offset: offset, Limit: limit}
	consultations, err := h.consultationUseCase.List(c.Request.Context(), userID, filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapConsultationsToListResponse(consultations))
}

// UpdateHandler replaces a consultation.
// PUT /v1/users/:user_id/consultations/:consultation_id
func (h *ConsultationHandler) UpdateHandler(c *gin.Context) {
	userID, consultationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	var req dto.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	consultation, err := h.consultationUseCase.Update(c.Request.Context(), userID, consultationID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapConsultationToResponse(consultation))
}

// DeleteHandler deletes a consultation.
// DELETE /v1/users/:user_id/consultations/:consultation_id
// Returns 204 No Content.
func (h *ConsultationHandler) DeleteHandler(c *gin.Context) {
	userID, consultationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.consultationUseCase.Delete(c.Request.Context(), userID, consultationID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *ConsultationHandler) parseIDs(c *gin.Context) (userID, consultationID int64, ok bool) {
	userID, err := httputil.ParseIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return 0, 0, false
	}

	consultationID, err = httputil.ParseIDParam(c, "consultation_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return 0, 0, false
	}

	return userID, consultationID, true
}
