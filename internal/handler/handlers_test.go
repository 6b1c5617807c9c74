package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstreamhq/credvault/internal/config"
	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/internal/service"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
	}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress_ReturnsError(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.StructuredConfig{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, h)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}
