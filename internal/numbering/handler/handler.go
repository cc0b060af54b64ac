// Package handler exposes the numbering module over HTTP.
package handler

import (
	"net/http"

	"phonecheck_backend/internal/numbering/service"
	"phonecheck_backend/internal/numbering/transport"
	"phonecheck_backend/platform/httpkit"
	"phonecheck_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for phone number validation.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new numbering handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the phone number routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/validate", h.Validate)
	rg.GET("/regions", h.ListRegions)
}

// Validate handles POST /phone-numbers/validate.
func (h *Handler) Validate(c *gin.Context) {
	var req transport.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	resp, err := h.svc.Validate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// ListRegions handles GET /phone-numbers/regions.
func (h *Handler) ListRegions(c *gin.Context) {
	httpkit.OK(c, h.svc.ListRegions(c.Request.Context()))
}
