package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	decode(t, w, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "up", resp.DB)
	assert.Equal(t, "up", resp.Cache)
	assert.Equal(t, "test", resp.Version)

	s.redis.Close()
	w = s.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code, "the site still works without the cache")
	decode(t, w, &resp)
	assert.Equal(t, "down", resp.Cache)
}
