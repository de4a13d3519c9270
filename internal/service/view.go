package service

import (
	"sort"
	"time"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/models"
)

// ViewOptions selects and orders the records included in a view.
type ViewOptions struct {
	// Users restricts the view to the given user identifiers; empty means all.
	Users []string
	// Descending flips the date ordering; ascending is the default.
	Descending bool
	// Location, when set, switches display dates to the fixed-timezone
	// 12-hour rendering.
	Location *time.Location
}

// ViewService assembles the derived table view served to the dashboard.
// It holds no state of its own beyond its collaborators: the full view is
// recomputed eagerly from the caller-supplied record set on every call.
type ViewService struct {
	resolver *Resolver
}

// NewViewService creates a ViewService using the given endpoint resolver.
func NewViewService(resolver *Resolver) *ViewService {
	return &ViewService{resolver: resolver}
}

// BuildView filters, sorts, and projects records into display rows. Sort keys
// are recomputed per call; records with unparsable dates carry the sentinel
// instant and therefore sort below all valid-dated records ascending, above
// them descending.
func (s *ViewService) BuildView(records []models.Record, opts ViewOptions) []models.RowView {
	filtered := filterByUsers(records, opts.Users)

	type keyed struct {
		rec models.Record
		key Instant
	}
	keyedRecs := make([]keyed, len(filtered))
	for i, rec := range filtered {
		keyedRecs[i] = keyed{rec: rec, key: RecordInstant(rec)}
	}

	sort.SliceStable(keyedRecs, func(i, j int) bool {
		if opts.Descending {
			return keyedRecs[i].key > keyedRecs[j].key
		}
		return keyedRecs[i].key < keyedRecs[j].key
	})

	rows := make([]models.RowView, len(keyedRecs))
	for i, kr := range keyedRecs {
		rows[i] = s.project(kr.rec, opts.Location)
	}
	return rows
}

// Users returns the distinct user identifiers across records, sorted.
func (s *ViewService) Users(records []models.Record) []string {
	return distinct(records, func(rec models.Record) string { return rec.User })
}

// Applications returns the distinct resolved application names across
// records, sorted.
func (s *ViewService) Applications(records []models.Record) []string {
	return distinct(records, func(rec models.Record) string { return s.resolver.Resolve(rec.Endpoint) })
}

func (s *ViewService) project(rec models.Record, loc *time.Location) models.RowView {
	display := ""
	if loc != nil {
		display = FormatDisplayInZone(rec, loc)
	} else {
		display = FormatDisplay(rec)
	}
	return models.RowView{
		User:           rec.User,
		Endpoint:       rec.Endpoint,
		Application:    s.resolver.Resolve(rec.Endpoint),
		DisplayDate:    display,
		Params:         FlattenParams(rec.QueryParams),
		NeedsExpansion: NeedsExpansion(rec.QueryParams),
	}
}

func filterByUsers(records []models.Record, users []string) []models.Record {
	if len(users) == 0 {
		return records
	}
	selected := make(map[string]struct{}, len(users))
	for _, u := range users {
		selected[u] = struct{}{}
	}
	var filtered []models.Record
	for _, rec := range records {
		if _, ok := selected[rec.User]; ok {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func distinct(records []models.Record, pick func(models.Record) string) []string {
	seen := make(map[string]struct{}, len(records))
	var values []string
	for _, rec := range records {
		v := pick(rec)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
