package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for testing.
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRouter creates a Gin router configured for testing.
func NewTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// NewTestContext creates a Gin context for testing.
func NewTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

// MockUpstreamServer creates a mock upstream feed server, closed on cleanup.
func MockUpstreamServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// MockUpstreamResponse returns a handler that responds with the given status
// and body.
func MockUpstreamResponse(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	}
}

// MockFeedResponse wraps records in the upstream {"output": [...]} envelope.
func MockFeedResponse(records ...models.Record) http.HandlerFunc {
	return MockUpstreamResponse(http.StatusOK, map[string]any{"output": records})
}
