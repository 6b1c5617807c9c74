package handler

import (
	"github.com/workstreamhq/credvault/internal/config"
	"github.com/workstreamhq/credvault/internal/handler/http"
	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
