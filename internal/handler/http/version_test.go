package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion(t *testing.T) {
	rec := doRequest(newTestRouter(t, nil, nil), http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestGetServerVersion_NoSessionNeeded(t *testing.T) {
	rec := doRequest(newTestRouter(t, nil, nil), http.MethodGet, "/api/version", "", "garbage")

	assert.Equal(t, http.StatusOK, rec.Code)
}
