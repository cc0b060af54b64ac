// Package numbering provides the phone number validation domain module.
package numbering

import (
	"math/rand"
	"time"

	apphttp "phonecheck_backend/internal/http"
	"phonecheck_backend/internal/numbering/engine"
	"phonecheck_backend/internal/numbering/handler"
	"phonecheck_backend/internal/numbering/service"
	"phonecheck_backend/platform/config"
	"phonecheck_backend/platform/logger"
	"phonecheck_backend/platform/validator"
)

// Module represents the numbering domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new numbering module with all dependencies wired.
func NewModule(eng *engine.Engine, cfg config.NumberingConfig, log *logger.Logger, val *validator.Validator) *Module {
	svc := service.New(eng, service.NewDirectory(), log)
	if cfg.IsCarrierHintsEnabled() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		svc.SetCarrierEstimator(service.NewHeuristicCarriers(rng))
	}
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "numbering"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/phone-numbers"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
