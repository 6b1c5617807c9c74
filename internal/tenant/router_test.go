package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/models"
)

type directoryFunc func(ctx context.Context, accountID string) (*models.AccountRoute, error)

func (f directoryFunc) Lookup(ctx context.Context, accountID string) (*models.AccountRoute, error) {
	return f(ctx, accountID)
}

func TestResolve_ExplicitRemoteIDSkipsDirectory(t *testing.T) {
	called := false
	dir := directoryFunc(func(context.Context, string) (*models.AccountRoute, error) {
		called = true
		return nil, nil
	})

	router := NewRouter(dir, logger.Nop())
	decision := router.Resolve(context.Background(), "A1", "remote-42", models.CloudPrivate)

	assert.False(t, called, "directory must not be consulted for explicit remote ids")
	assert.Equal(t, models.RouteDecision{RemoteAccountID: "remote-42", CloudClass: models.CloudPrivate}, decision)
}

func TestResolve_ExplicitRemoteIDDefaultsToPublic(t *testing.T) {
	router := NewRouter(nil, logger.Nop())
	decision := router.Resolve(context.Background(), "A1", "remote-42", "")

	assert.Equal(t, models.CloudPublic, decision.CloudClass)
	assert.Equal(t, "remote-42", decision.RemoteAccountID)
}

func TestResolve_DirectoryHit(t *testing.T) {
	dir := directoryFunc(func(_ context.Context, accountID string) (*models.AccountRoute, error) {
		assert.Equal(t, "A1", accountID)
		return &models.AccountRoute{RemoteAccountID: "remote-7", CloudType: "Private Cloud"}, nil
	})

	router := NewRouter(dir, logger.Nop())
	decision := router.Resolve(context.Background(), "A1", "", "")

	assert.Equal(t, models.RouteDecision{RemoteAccountID: "remote-7", CloudClass: models.CloudPrivate}, decision)
	assert.True(t, decision.Dedicated())
}

func TestResolve_DirectoryMissMeansSharedStore(t *testing.T) {
	dir := directoryFunc(func(context.Context, string) (*models.AccountRoute, error) {
		return nil, nil
	})

	router := NewRouter(dir, logger.Nop())
	decision := router.Resolve(context.Background(), "A1", "", "")

	assert.Equal(t, models.RouteDecision{CloudClass: models.CloudPublic}, decision)
	assert.False(t, decision.Dedicated())
}

func TestResolve_DirectoryFailureDegradesGracefully(t *testing.T) {
	dir := directoryFunc(func(context.Context, string) (*models.AccountRoute, error) {
		return nil, errors.New("network unreachable")
	})

	router := NewRouter(dir, logger.Nop())
	decision := router.Resolve(context.Background(), "A1", "", "")

	assert.Equal(t, models.RouteDecision{CloudClass: models.CloudPublic}, decision)
}

func TestResolve_EmptyRemoteIDFromDirectory(t *testing.T) {
	dir := directoryFunc(func(context.Context, string) (*models.AccountRoute, error) {
		return &models.AccountRoute{CloudType: "private"}, nil
	})

	router := NewRouter(dir, logger.Nop())
	decision := router.Resolve(context.Background(), "A1", "", "")

	// No remote id recorded: shared store, regardless of reported class.
	assert.Empty(t, decision.RemoteAccountID)
}

func TestResolve_StableAcrossCalls(t *testing.T) {
	dir := directoryFunc(func(context.Context, string) (*models.AccountRoute, error) {
		return &models.AccountRoute{RemoteAccountID: "remote-7", CloudType: "public"}, nil
	})

	router := NewRouter(dir, logger.Nop())
	first := router.Resolve(context.Background(), "A1", "", "")
	second := router.Resolve(context.Background(), "A1", "", "")

	assert.Equal(t, first, second, "same account must route identically absent a directory change")
}

func TestNormalizeCloudClass(t *testing.T) {
	cases := map[string]models.CloudClass{
		"private":            models.CloudPrivate,
		"Private Cloud":      models.CloudPrivate,
		"GOV-PRIVATE":        models.CloudPrivate,
		"dedicated tier":     models.CloudPrivate,
		"Reserved":           models.CloudPrivate,
		"public":             models.CloudPublic,
		"Public Cloud":       models.CloudPublic,
		"":                   models.CloudPublic,
		"something else":     models.CloudPublic,
		"  Private  ":        models.CloudPrivate,
		"shared multitenant": models.CloudPublic,
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeCloudClass(raw), "raw=%q", raw)
	}
}

func TestStaticDirectory(t *testing.T) {
	dir := NewStaticDirectory(map[string]models.AccountRoute{
		"A1": {RemoteAccountID: "remote-1", CloudType: "private"},
	})

	route, err := dir.Lookup(context.Background(), "A1")
	assert.NoError(t, err)
	assert.Equal(t, "remote-1", route.RemoteAccountID)

	missing, err := dir.Lookup(context.Background(), "A2")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
