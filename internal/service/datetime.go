package service

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/models"
)

// Instant is an absolute point in time in milliseconds since the Unix epoch.
// InstantNone marks input that could not be parsed; it sorts before every
// valid instant.
type Instant int64

// InstantNone is the negative-infinity sentinel for unparsable input.
const InstantNone Instant = math.MinInt64

// Valid reports whether the instant holds a real timestamp.
func (i Instant) Valid() bool { return i != InstantNone }

var (
	spaceDateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	datePrefixRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	shortTimeRe     = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

const (
	naiveLayout   = "2006-01-02T15:04:05"
	dateLayout    = "2006-01-02"
	displayLayout = "2006-01-02 15:04:05"
	clock12Layout = "2006-01-02 03:04:05 PM"
)

// isoLayouts are tried in order for strings carrying a 'T' separator. The
// offset-aware layouts come first so an explicit zone is honored when present.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseInstant converts the union of upstream date/time shapes into a
// comparable instant. Resolution order, first successful parse wins:
//
//  1. "YYYY-MM-DD HH:MM:SS"        → space swapped for 'T', local-naive
//  2. contains 'T'                 → ISO-8601, zone honored when present
//  3. dateStr + timeStr            → first 10 chars of dateStr + 'T' + timeStr
//  4. bare "YYYY-MM-DD" prefix     → midnight local
//  5. timeStr + fallbackDate       → combined, local-naive
//  6. date prefix retry            → explicit "T00:00:00"
//  7. InstantNone
//
// A branch whose parse fails falls through to the next rule; the function is
// total and never returns an error.
func ParseInstant(dateStr, timeStr, fallbackDate string) Instant {
	// Rule 1: space-separated full datetime.
	if spaceDateTimeRe.MatchString(dateStr) {
		if t, err := time.ParseInLocation(naiveLayout, strings.Replace(dateStr, " ", "T", 1), time.Local); err == nil {
			return toInstant(t)
		}
	}

	// Rule 2: ISO-8601 with 'T' separator.
	if strings.Contains(dateStr, "T") {
		if t, ok := parseISO(dateStr); ok {
			return toInstant(t)
		}
	}

	// Rule 3: separate date and time fields.
	if dateStr != "" && timeStr != "" && len(dateStr) >= 10 {
		combined := dateStr[:10] + "T" + normalizeTime(timeStr)
		if t, err := time.ParseInLocation(naiveLayout, combined, time.Local); err == nil {
			return toInstant(t)
		}
	}

	// Rule 4: bare date, midnight local.
	if datePrefixRe.MatchString(dateStr) {
		if t, err := time.ParseInLocation(dateLayout, dateStr[:10], time.Local); err == nil {
			return toInstant(t)
		}
	}

	// Rule 5: time only, caller-supplied fallback date.
	if timeStr != "" && fallbackDate != "" && len(fallbackDate) >= 10 {
		combined := fallbackDate[:10] + "T" + normalizeTime(timeStr)
		if t, err := time.ParseInLocation(naiveLayout, combined, time.Local); err == nil {
			return toInstant(t)
		}
	}

	// Rule 6: date prefix retry at explicit midnight.
	if datePrefixRe.MatchString(dateStr) {
		if t, err := time.ParseInLocation(naiveLayout, dateStr[:10]+"T00:00:00", time.Local); err == nil {
			return toInstant(t)
		}
	}

	return InstantNone
}

// RecordInstant computes a record's sort key from its date and time fields.
func RecordInstant(rec models.Record) Instant {
	return ParseInstant(rec.Date, rec.Time, "")
}

// FormatDisplay renders a record's timestamp as "YYYY-MM-DD HH:MM:SS".
// Resolution mirrors ParseInstant's branching; a missing time renders as a
// dash, and on total failure the best available raw fragment is returned
// rather than an error.
func FormatDisplay(rec models.Record) string {
	if spaceDateTimeRe.MatchString(rec.Date) {
		if t, err := time.ParseInLocation(naiveLayout, strings.Replace(rec.Date, " ", "T", 1), time.Local); err == nil {
			return t.Format(displayLayout)
		}
	}

	if strings.Contains(rec.Date, "T") {
		if t, ok := parseISO(rec.Date); ok {
			return t.In(time.Local).Format(displayLayout)
		}
	}

	datePart := ""
	if datePrefixRe.MatchString(rec.Date) {
		datePart = rec.Date[:10]
	}
	timePart := rec.Time
	if timePart == "" {
		timePart = "-"
	}

	if datePart != "" && rec.Time != "" {
		if t, err := time.ParseInLocation(naiveLayout, datePart+"T"+normalizeTime(rec.Time), time.Local); err == nil {
			return t.Format(displayLayout)
		}
	}

	// Degraded display: whatever fragment survived.
	if datePart != "" {
		return datePart + " " + timePart
	}
	return rec.Date
}

// FormatDisplayInZone renders a record's timestamp in a fixed civil timezone
// on a 12-hour clock. Space-separated datetimes are reinterpreted as UTC
// before conversion; ISO datetimes keep their own offset. The degraded
// fallbacks match FormatDisplay.
func FormatDisplayInZone(rec models.Record, loc *time.Location) string {
	if spaceDateTimeRe.MatchString(rec.Date) {
		if t, err := time.ParseInLocation(naiveLayout, strings.Replace(rec.Date, " ", "T", 1), time.UTC); err == nil {
			return t.In(loc).Format(clock12Layout)
		}
	}

	if strings.Contains(rec.Date, "T") {
		if t, ok := parseISO(rec.Date); ok {
			return t.In(loc).Format(clock12Layout)
		}
	}

	datePart := ""
	if datePrefixRe.MatchString(rec.Date) {
		datePart = rec.Date[:10]
	}
	timePart := rec.Time
	if timePart == "" {
		timePart = "-"
	}

	if datePart != "" && rec.Time != "" {
		if t, err := time.ParseInLocation(naiveLayout, datePart+"T"+normalizeTime(rec.Time), time.UTC); err == nil {
			return t.In(loc).Format(clock12Layout)
		}
	}

	if datePart != "" {
		return datePart + " " + timePart
	}
	return rec.Date
}

// parseISO parses a 'T'-separated datetime, honoring an explicit offset when
// one is present and falling back to local-naive interpretation otherwise.
func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		var t time.Time
		var err error
		if strings.Contains(layout, "Z07:00") {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeTime appends seconds to a bare "HH:MM" so a single layout covers
// both accepted time shapes.
func normalizeTime(s string) string {
	if shortTimeRe.MatchString(s) {
		return s + ":00"
	}
	return s
}

func toInstant(t time.Time) Instant {
	return Instant(t.UnixMilli())
}
