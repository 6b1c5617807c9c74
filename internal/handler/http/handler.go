package http

import (
	"github.com/workstreamhq/credvault/internal/config"
	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/internal/service"
	"github.com/workstreamhq/credvault/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		validator:    validators.NewCredentialRequestValidator(),
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
