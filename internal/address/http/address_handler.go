// Package http provides HTTP handlers for client address operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jo4ovms/psychology-project/internal/address/http/dto"
	"github.com/jo4ovms/psychology-project/internal/address/usecase"
	"github.com/jo4ovms/psychology-project/internal/httputil"
)

// AddressHandler handles HTTP requests for address operations.
type AddressHandler struct {
	addressUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewAddressHandler creates a new address handler with required dependencies.
func NewAddressHandler(addressUseCase usecase.UseCase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		addressUseCase: addressUseCase,
		logger:         logger,
	}
}

// CreateHandler adds an address to a client.
// POST /v1/users/:user_id/clients/:client_id/addresses
func (h *AddressHandler) CreateHandler(c *gin.Context) {
	ids, ok := h.parseIDs(c, "user_id", "client_id")
	if !ok {
		return
	}

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	address, err := h.addressUseCase.Create(c.Request.Context(), ids[0], ids[1], req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAddressToResponse(address))
}

// GetHandler retrieves an address.
// GET /v1/users/:user_id/clients/:client_id/addresses/:address_id
func (h *AddressHandler) GetHandler(c *gin.Context) {
	ids, ok := h.parseIDs(c, "user_id", "client_id", "address_id")
	if !ok {
		return
	}

	address, err := h.addressUseCase.Get(c.Request.Context(), ids[0], ids[1], ids[2])
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAddressToResponse(address))
}

// ListHandler lists the addresses of a client.
// GET /v1/users/:user_id/clients/:client_id/addresses
func (h *AddressHandler) ListHandler(c *gin.Context) {
	ids, ok := h.parseIDs(c, "user_id", "client_id")
	if !ok {
		return
	}

	addresses, err := h.addressUseCase.List(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAddressesToListResponse(addresses))
}

// UpdateHandler replaces an address.
// PUT /v1/users/:user_id/clients/:client_id/addresses/:address_id
func (h *AddressHandler) UpdateHandler(c *gin.Context) {
	ids, ok := h.parseIDs(c, "user_id", "client_id", "address_id")
	if !ok {
		return
	}

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	address, err := h.addressUseCase.Update(c.Request.Context(), ids[0], ids[1], ids[2], req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAddressToResponse(address))
}

// DeleteHandler deletes an address.
// DELETE /v1/users/:user_id/clients/:client_id/addresses/:address_id
// Returns 204 No Content.
func (h *AddressHandler) DeleteHandler(c *gin.Context) {
	ids, ok := h.parseIDs(c, "user_id", "client_id", "address_id")
	if !ok {
		return
	}

	if err := h.addressUseCase.Delete(c.Request.Context(), ids[0], ids[1], ids[2]); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseIDs parses the named path parameters in order and writes a 400 response on
// the first invalid one.
func (h *AddressHandler) parseIDs(c *gin.Context, names ...string) ([]int64, bool) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := httputil.ParseIDParam(c, name)
		if err != nil {
			httputil.HandleBadRequestGin(c, err, h.logger)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
