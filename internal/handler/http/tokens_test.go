package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/internal/mock"
	"github.com/workstreamhq/credvault/internal/service"
	"github.com/workstreamhq/credvault/internal/validators"
	"github.com/workstreamhq/credvault/models"
)

// newHandlerWithVault builds a Handler whose VaultService is the given mock.
func newHandlerWithVault(vault service.VaultService) *Handler {
	return &Handler{
		services:  &service.Services{VaultService: vault},
		validator: validators.NewCredentialRequestValidator(),
		logger:    logger.Nop(),
	}
}

// ── storeToken ───────────────────────────────────────────────────────────────

func TestStoreToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mock.NewMockVaultService(ctrl)
	h := newHandlerWithVault(mockVault)

	stored := models.CredentialRecord{
		ID:              "rec-1",
		EncryptedSecret: models.RedactedSecret,
		TokenType:       "Bearer",
	}
	mockVault.EXPECT().StoreAccessToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req models.StoreTokenRequest) (models.CredentialRecord, error) {
			assert.Equal(t, "ghp_abc123", req.Token)
			assert.Equal(t, "A1", req.Context.AccountID)
			return stored, nil
		})

	body := `{"token":"ghp_abc123","tokenType":"Bearer","context":{"accountId":"A1"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tokens", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.storeToken(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rec-1"`)
	assert.Contains(t, rec.Body.String(), models.RedactedSecret)
	assert.NotContains(t, rec.Body.String(), "ghp_abc123")
}

func TestStoreToken_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerWithVault(mock.NewMockVaultService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tokens", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.storeToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreToken_EmptyToken_MapsToBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the validator rejects before the service is reached
	h := newHandlerWithVault(mock.NewMockVaultService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tokens", strings.NewReader(`{"token":""}`))
	rec := httptest.NewRecorder()

	h.storeToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── getToken ─────────────────────────────────────────────────────────────────

func TestGetToken_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mock.NewMockVaultService(ctrl)
	h := newHandlerWithVault(mockVault)

	token := &models.AccessToken{Token: "ghp_abc123", TokenType: "Bearer"}
	mockVault.EXPECT().GetAccessToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, query models.TokenQuery) (*models.AccessToken, error) {
			assert.Equal(t, "A1", query.Context.AccountID)
			assert.Equal(t, "E1", query.Context.EnterpriseID)
			assert.Equal(t, "P1", query.Context.Product)
			return token, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens?accountId=A1&enterpriseId=E1&product=P1", nil)
	rec := httptest.NewRecorder()

	h.getToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"found":true`)
	assert.Contains(t, rec.Body.String(), "ghp_abc123")
}

func TestGetToken_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mock.NewMockVaultService(ctrl)
	h := newHandlerWithVault(mockVault)

	mockVault.EXPECT().GetAccessToken(gomock.Any(), gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens?accountId=A1", nil)
	rec := httptest.NewRecorder()

	h.getToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"found":false`)
}

// ── lookupToken ──────────────────────────────────────────────────────────────

func TestLookupToken_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mock.NewMockVaultService(ctrl)
	h := newHandlerWithVault(mockVault)

	token := &models.AccessToken{Token: "xoxb-1"}
	mockVault.EXPECT().GetAccessTokenByName(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, query models.NameQuery) (*models.AccessToken, error) {
			assert.Equal(t, "slack", query.ConnectorName)
			assert.Equal(t, "A1", query.Context.AccountID)
			return token, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/lookup?connectorName=slack&accountId=A1", nil)
	rec := httptest.NewRecorder()

	h.lookupToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"found":true`)
}

func TestLookupToken_NoName_MapsToBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the validator rejects before the service is reached
	h := newHandlerWithVault(mock.NewMockVaultService(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/lookup", nil)
	rec := httptest.NewRecorder()

	h.lookupToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
