// Package http provides HTTP handlers for client (patient) operations. Every route is
// nested under the owning user.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jo4ovms/psychology-project/internal/client/http/dto"
	"github.com/jo4ovms/psychology-project/internal/client/usecase"
	"github.com/jo4ovms/psychology-project/internal/httputil"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	clientUseCase usecase.UseCase
	logger        *slog.Logger
}

// NewClientHandler creates a new client handler with required dependencies.
func NewClientHandler(clientUseCase usecase.UseCase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		clientUseCase: clientUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a client for a user.
// POST /v1/users/:user_id/clients
func (h *ClientHandler) CreateHandler(c *gin.Context) {
	userID, err := httputil.ParseIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	client, err := h.clientUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapClientToResponse(client))
}

// GetHandler retrieves a client with its decrypted fields.
// GET /v1/users/:user_id/clients/:client_id
func (h *ClientHandler) GetHandler(c *gin.Context) {
	userID, clientID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	client, err := h.clientUseCase.Get(c.Request.Context(), userID, clientID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientToResponse(client))
}

// ListHandler lists the clients of a user.
// GET /v1/users/:user_id/clients?offset=0&limit=50
func (h *ClientHandler) ListHandler(c *gin.Context) {
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

	clients, err := h.clientUseCase.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientsToListResponse(clients))
}

// UpdateHandler replaces the data of a client.
// PUT /v1/users/:user_id/clients/:client_id
func (h *ClientHandler) UpdateHandler(c *gin.Context) {
	userID, clientID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	client, err := h.clientUseCase.Update(c.Request.Context(), userID, clientID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientToResponse(client))
}

// DeleteHandler deletes a client.
// DELETE /v1/users/:user_id/clients/:client_id
// Returns 204 No Content.
func (h *ClientHandler) DeleteHandler(c *gin.Context) {
	userID, clientID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.clientUseCase.Delete(c.Request.Context(), userID, clientID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *ClientHandler) parseIDs(c *gin.Context) (userID, clientID int64, ok bool) {
	userID, err := httputil.ParseIDParam(c, "user_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return 0, 0, false
	}

	clientID, err = httputil.ParseIDParam(c, "client_id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return 0, 0, false
	}

	return userID, clientID, true
}
