//go:build !integration && !e2e
// +build !integration,!e2e

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/config"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/models"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/service"
	"github.com/Sachin-MethodTech/analytics-dashboard/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, upstream http.HandlerFunc) *Server {
	t.Helper()

	upstreamServer := testutil.MockUpstreamServer(t, upstream)

	cfg := config.DefaultConfig()
	cfg.Upstream.URL = upstreamServer.URL

	logger := testutil.NewTestLogger()
	feed := service.NewFeedService(cfg.Upstream, logger)
	view := service.NewViewService(service.NewResolver(service.DefaultRoutes()))

	return NewServer(ServerDeps{
		Config:      cfg,
		FeedService: feed,
		ViewService: view,
		Logger:      logger,
	})
}

func TestServer_Routes(t *testing.T) {
	server := newTestServer(t, testutil.MockFeedResponse(
		models.Record{Endpoint: "/es/ps", User: "alice", Date: "2024-03-01 09:00:00"},
	))

	paths := []string{"/api/health", "/api/analytics", "/api/records", "/api/users", "/api/applications"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			server.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestServer_RequestIDHeader(t *testing.T) {
	server := newTestServer(t, testutil.MockFeedResponse())

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_GatewayErrorShape(t *testing.T) {
	server := newTestServer(t, testutil.MockUpstreamResponse(http.StatusBadGateway, nil))

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("GET", "/api/analytics", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestServer_UnknownRoute(t *testing.T) {
	server := newTestServer(t, testutil.MockFeedResponse())

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("GET", "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
