package http

import (
	"encoding/json"
	"net/http"

	"github.com/workstreamhq/credvault/internal/app"
	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/internal/utils"
	"github.com/workstreamhq/credvault/models"
)

func (h *Handler) storeToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.StoreTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.storeToken").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.storeToken").Msg("invalid store request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.services.VaultService.StoreAccessToken(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.storeToken").Msg(app.MsgStoreTokenFailed)
		http.Error(w, app.MsgStoreTokenFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.StoreTokenResponse{Record: record}, http.StatusCreated)
}

func (h *Handler) getToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := models.TokenQuery{
		UserID:          r.URL.Query().Get("userId"),
		Context:         tenantContextFromQuery(r),
		RemoteAccountID: r.URL.Query().Get("remoteAccountId"),
		CloudClass:      models.CloudClass(r.URL.Query().Get("cloudClass")),
	}

	if err := h.validator.Validate(r.Context(), query); err != nil {
		log.Err(err).Str("func", "*Handler.getToken").Msg("invalid token query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.services.VaultService.GetAccessToken(r.Context(), query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getToken").Msg(app.MsgResolveTokenFailed)
		http.Error(w, app.MsgResolveTokenFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AccessTokenResponse{Found: token != nil, Token: token}, http.StatusOK)
}

func (h *Handler) lookupToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := models.NameQuery{
		CredentialName:  r.URL.Query().Get("credentialName"),
		ConnectorName:   r.URL.Query().Get("connectorName"),
		UserID:          r.URL.Query().Get("userId"),
		Context:         tenantContextFromQuery(r),
		RemoteAccountID: r.URL.Query().Get("remoteAccountId"),
		CloudClass:      models.CloudClass(r.URL.Query().Get("cloudClass")),
	}

	if err := h.validator.Validate(r.Context(), query); err != nil {
		log.Err(err).Str("func", "*Handler.lookupToken").Msg("invalid lookup query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.services.VaultService.GetAccessTokenByName(r.Context(), query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.lookupToken").Msg(app.MsgLookupTokenFailed)
		http.Error(w, app.MsgLookupTokenFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AccessTokenResponse{Found: token != nil, Token: token}, http.StatusOK)
}

// tenantContextFromQuery reads the tenant-context fields off the query
// string. An absent parameter stays an empty string and imposes no
// constraint downstream.
func tenantContextFromQuery(r *http.Request) models.TenantContext {
	q := r.URL.Query()
	return models.TenantContext{
		EnterpriseID:   q.Get("enterpriseId"),
		EnterpriseName: q.Get("enterpriseName"),
		AccountID:      q.Get("accountId"),
		AccountName:    q.Get("accountName"),
		Workstream:     q.Get("workstream"),
		Product:        q.Get("product"),
		Service:        q.Get("service"),
	}
}
