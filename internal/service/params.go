package service

import (
	"encoding/json"
	"sort"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/models"
)

// FlattenParams converts a record's query_params mapping into an ordered
// sequence of display rows. String values holding JSON are decoded first. An
// "array of arrays" value expands to one row per inner array, all sharing the
// outer key with only the first row carrying the visible label. Rows are
// emitted in sorted key order so output is deterministic.
func FlattenParams(params map[string]any) []models.ParamRow {
	if len(params) == 0 {
		return nil
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows []models.ParamRow
	for _, key := range keys {
		value := decodeNested(params[key])

		if inner, ok := asArrayOfArrays(value); ok {
			for i, item := range inner {
				rows = append(rows, models.ParamRow{
					Key:     key,
					ShowKey: i == 0,
					Value:   renderValue(item),
				})
			}
			continue
		}

		rows = append(rows, models.ParamRow{
			Key:     key,
			ShowKey: true,
			Value:   renderValue(value),
		})
	}
	return rows
}

// NeedsExpansion reports whether a record's parameter set would flatten to
// more than one display row. It gates the dashboard's expand/collapse
// affordance.
func NeedsExpansion(params map[string]any) bool {
	return len(FlattenParams(params)) > 1
}

// decodeNested unwraps a string value that itself holds JSON. Plain strings
// pass through untouched.
func decodeNested(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return value
	}
	// A bare JSON scalar like "42" decodes fine but is better displayed raw.
	switch decoded.(type) {
	case []any, map[string]any:
		return decoded
	}
	return value
}

// asArrayOfArrays reports whether value is a non-empty array whose elements
// are all arrays, returning the inner arrays when so.
func asArrayOfArrays(value any) ([]any, bool) {
	outer, ok := value.([]any)
	if !ok || len(outer) == 0 {
		return nil, false
	}
	for _, item := range outer {
		if _, ok := item.([]any); !ok {
			return nil, false
		}
	}
	return outer, true
}

// renderValue produces the display string for a flattened value: strings
// verbatim, everything else compact JSON.
func renderValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}
