// Package models defines the domain models for the analytics dashboard.
package models

import (
	"bytes"
	"encoding/json"
)

// Record represents a single analytics record as received from the upstream
// feed. The feed is schema-inconsistent across producers, so every field is
// optional and validated on the fly by the services that consume it.
type Record struct {
	Endpoint    string         `json:"endpoint"`
	User        string         `json:"user"`
	QueryParams map[string]any `json:"query_params,omitempty"`
	Purpose     string         `json:"purpose,omitempty"` // reserved, unused upstream field
	Date        string         `json:"date,omitempty"`
	Time        string         `json:"time,omitempty"`
}

// FeedPayload is the upstream response envelope. Some producers wrap a single
// record, others an array; Output is normalized to a slice either way.
type FeedPayload struct {
	Output []Record
}

// UnmarshalJSON accepts {"output": Record} and {"output": [Record, ...]}.
func (p *FeedPayload) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Output json.RawMessage `json:"output"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if len(envelope.Output) == 0 {
		p.Output = nil
		return nil
	}

	trimmed := bytes.TrimLeft(envelope.Output, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(envelope.Output, &p.Output)
	}

	var single Record
	if err := json.Unmarshal(envelope.Output, &single); err != nil {
		return err
	}
	p.Output = []Record{single}
	return nil
}

// ParamRow is one display row of a record's flattened query parameters.
// When a value expands to several rows they all share the same Key, with
// only the first row carrying the visible label.
type ParamRow struct {
	Key     string `json:"key"`
	ShowKey bool   `json:"show_key"`
	Value   string `json:"value"`
}

// RowView is one fully-derived table row served to the dashboard.
type RowView struct {
	User           string     `json:"user"`
	Endpoint       string     `json:"endpoint"`
	Application    string     `json:"application"`
	DisplayDate    string     `json:"display_date"`
	Params         []ParamRow `json:"params"`
	NeedsExpansion bool       `json:"needs_expansion"`
}
