package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("hello"))
	w.Write([]byte(" world"))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, len("hello world"), w.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("ok"))

	assert.Equal(t, http.StatusOK, w.status)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
