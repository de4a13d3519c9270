//go:build !integration && !e2e
// +build !integration,!e2e

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/config"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/models"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/service"
	"github.com/Sachin-MethodTech/analytics-dashboard/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordsHandler(t *testing.T, upstream http.HandlerFunc) *RecordsHandler {
	t.Helper()
	server := testutil.MockUpstreamServer(t, upstream)
	feed := service.NewFeedService(
		config.UpstreamConfig{URL: server.URL, TimeoutSeconds: 5},
		testutil.NewTestLogger(),
	)
	view := service.NewViewService(service.NewResolver(service.DefaultRoutes()))
	ist := time.FixedZone("IST", 330*60)
	return NewRecordsHandler(feed, view, ist, testutil.NewTestLogger())
}

func feedFixture() http.HandlerFunc {
	return testutil.MockFeedResponse(
		models.Record{Endpoint: "/es/ps", User: "carol", Date: "2024-03-03 09:00:00"},
		models.Record{Endpoint: "/date_range/7", User: "alice", Date: "2024-03-01 09:00:00"},
		models.Record{Endpoint: "/es/as", User: "bob", Date: "2024-03-02 09:00:00"},
	)
}

type recordsResponse struct {
	Count int              `json:"count"`
	Rows  []models.RowView `json:"rows"`
}

func TestRecordsHandler_DefaultAscending(t *testing.T) {
	h := newRecordsHandler(t, feedFixture())

	c, w := testutil.NewTestContext()
	c.Request = httptest.NewRequest("GET", "/api/records", nil)

	h.Records(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp recordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "alice", resp.Rows[0].User)
	assert.Equal(t, "carol", resp.Rows[2].User)
	assert.Equal(t, "Date Range", resp.Rows[0].Application)
}

func TestRecordsHandler_DescendingAndFiltered(t *testing.T) {
	h := newRecordsHandler(t, feedFixture())

	c, w := testutil.NewTestContext()
	c.Request = httptest.NewRequest("GET", "/api/records?sort=desc&users=alice,bob", nil)

	h.Records(c)

	var resp recordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "bob", resp.Rows[0].User)
	assert.Equal(t, "alice", resp.Rows[1].User)
}

func TestRecordsHandler_FixedTimezone(t *testing.T) {
	h := newRecordsHandler(t, feedFixture())

	c, w := testutil.NewTestContext()
	c.Request = httptest.NewRequest("GET", "/api/records?tz=fixed&users=alice", nil)

	h.Records(c)

	var resp recordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	// 09:00 UTC reinterpreted in UTC+5:30 on a 12-hour clock.
	assert.Equal(t, "2024-03-01 02:30:00 PM", resp.Rows[0].DisplayDate)
}

func TestRecordsHandler_UpstreamFailure(t *testing.T) {
	h := newRecordsHandler(t, testutil.MockUpstreamResponse(http.StatusInternalServerError, nil))

	c, w := testutil.NewTestContext()
	c.Request = httptest.NewRequest("GET", "/api/records", nil)

	h.Records(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRecordsHandler_Users(t *testing.T) {
	h := newRecordsHandler(t, feedFixture())

	c, w := testutil.NewTestContext()
	c.Request = httptest.NewRequest("GET", "/api/users", nil)

	h.Users(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"alice", "bob", "carol"}, resp["users"])
}

func TestRecordsHandler_Applications(t *testing.T) {
	h := newRecordsHandler(t, feedFixture())

	c, w := testutil.NewTestContext()
	c.Request = httptest.NewRequest("GET", "/api/applications", nil)

	h.Applications(c)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Autosuggest", "Date Range", "Product Search"}, resp["applications"])
}
