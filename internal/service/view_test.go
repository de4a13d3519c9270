//go:build !integration && !e2e
// +build !integration,!e2e

package service

import (
	"testing"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []models.Record {
	// Intentionally out of order: t2, t0, t1, plus one unparsable.
	return []models.Record{
		{User: "carol", Endpoint: "/es/ps", Date: "2024-03-03 09:00:00"},
		{User: "alice", Endpoint: "/date_range/7", Date: "2024-03-01 09:00:00"},
		{User: "bob", Endpoint: "/es/as", Date: "2024-03-02 09:00:00"},
		{User: "dave", Endpoint: "/insights", Date: "garbage"},
	}
}

func TestBuildView_AscendingSort(t *testing.T) {
	svc := NewViewService(NewResolver(DefaultRoutes()))

	rows := svc.BuildView(testRecords(), ViewOptions{})
	require.Len(t, rows, 4)

	assert.Equal(t, "dave", rows[0].User) // sentinel sorts first ascending
	assert.Equal(t, "alice", rows[1].User)
	assert.Equal(t, "bob", rows[2].User)
	assert.Equal(t, "carol", rows[3].User)
}

func TestBuildView_DescendingSort(t *testing.T) {
	svc := NewViewService(NewResolver(DefaultRoutes()))

	rows := svc.BuildView(testRecords(), ViewOptions{Descending: true})
	require.Len(t, rows, 4)

	assert.Equal(t, "carol", rows[0].User)
	assert.Equal(t, "bob", rows[1].User)
	assert.Equal(t, "alice", rows[2].User)
	assert.Equal(t, "dave", rows[3].User) // sentinel sorts last descending
}

func TestBuildView_UserFilter(t *testing.T) {
	svc := NewViewService(NewResolver(DefaultRoutes()))

	rows := svc.BuildView(testRecords(), ViewOptions{Users: []string{"alice", "carol"}})
	require.Len(t, rows, 2)
	assert.Equal(t, "alice", rows[0].User)
	assert.Equal(t, "carol", rows[1].User)
}

func TestBuildView_Projection(t *testing.T) {
	svc := NewViewService(NewResolver(DefaultRoutes()))

	records := []models.Record{{
		User:     "alice",
		Endpoint: "/date_range/7",
		Date:     "2024-03-01",
		Time:     "10:30:00",
		QueryParams: map[string]any{
			"ids": []any{[]any{float64(1)}, []any{float64(2)}},
		},
	}}

	rows := svc.BuildView(records, ViewOptions{})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Date Range", row.Application)
	assert.Equal(t, "2024-03-01 10:30:00", row.DisplayDate)
	assert.True(t, row.NeedsExpansion)
	require.Len(t, row.Params, 2)
	assert.True(t, row.Params[0].ShowKey)
	assert.False(t, row.Params[1].ShowKey)
}

func TestBuildView_DegradedRowsKept(t *testing.T) {
	// A record with an unparsable date and unmatched endpoint still renders,
	// with sentinel display values; rows are never dropped.
	svc := NewViewService(NewResolver(DefaultRoutes()))

	rows := svc.BuildView([]models.Record{
		{User: "eve", Endpoint: "/no/such/route", Date: "someday"},
	}, ViewOptions{})

	require.Len(t, rows, 1)
	assert.Equal(t, UnknownApplication, rows[0].Application)
	assert.Equal(t, "someday", rows[0].DisplayDate)
}

func TestBuildView_StableForEqualKeys(t *testing.T) {
	svc := NewViewService(NewResolver(DefaultRoutes()))

	records := []models.Record{
		{User: "first", Date: "2024-03-01 09:00:00"},
		{User: "second", Date: "2024-03-01 09:00:00"},
	}

	rows := svc.BuildView(records, ViewOptions{})
	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0].User)
	assert.Equal(t, "second", rows[1].User)
}

func TestUsers_Distinct(t *testing.T) {
	svc := NewViewService(NewResolver(DefaultRoutes()))

	records := append(testRecords(), models.Record{User: "alice", Endpoint: "/es/ps"})
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, svc.Users(records))
}

func TestApplications_Distinct(t *testing.T) {
	svc := NewViewService(NewResolver(DefaultRoutes()))

	apps := svc.Applications(testRecords())
	assert.Equal(t, []string{"Autosuggest", "Date Range", "Insights", "Product Search"}, apps)
}
