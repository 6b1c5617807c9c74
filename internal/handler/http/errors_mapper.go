package http

import (
	"errors"
	"net/http"

	"github.com/workstreamhq/credvault/internal/crypto"
	"github.com/workstreamhq/credvault/internal/service"
	"github.com/workstreamhq/credvault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNoTokenProvided:       http.StatusBadRequest,
	service.ErrNoLookupNameProvided:  http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	crypto.ErrMasterKeyMissing:  http.StatusInternalServerError,
	crypto.ErrMasterKeyTooShort: http.StatusInternalServerError,
	crypto.ErrDecryption:        http.StatusInternalServerError,

	store.ErrUnsupportedBackend:  http.StatusInternalServerError,
	store.ErrDuplicateCredential: http.StatusConflict,
	store.ErrKeyValueOperation:   http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
