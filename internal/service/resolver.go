package service

import "strings"

// UnknownApplication is returned when no route pattern matches an endpoint.
const UnknownApplication = "-"

// Route maps a path pattern to the application that owns it. Segments wrapped
// in {} match any single path segment positionally.
type Route struct {
	Pattern     string
	Application string
}

// Resolver maps request paths to application names against an ordered route
// table. The table is a slice, never a map: match order is authoritative at
// every stage, and the first matching entry wins.
type Resolver struct {
	routes []Route
}

// NewResolver creates a Resolver over the given route table.
func NewResolver(routes []Route) *Resolver {
	return &Resolver{routes: routes}
}

// DefaultRoutes returns the static route table for the analytics feed.
func DefaultRoutes() []Route {
	return []Route{
		{Pattern: "/es/ps", Application: "Product Search"},
		{Pattern: "/es/as", Application: "Autosuggest"},
		{Pattern: "/date_range/{date_range_id}", Application: "Date Range"},
		{Pattern: "/reco/similar/{product_id}", Application: "Recommendations"},
		{Pattern: "/reco", Application: "Recommendations"},
		{Pattern: "/catalog/products/{product_id}", Application: "Catalog"},
		{Pattern: "/catalog", Application: "Catalog"},
		{Pattern: "/insights", Application: "Insights"},
	}
}

// Resolve maps an endpoint to its owning application name.
//
// Matching stages, each scanned in table order:
//  1. exact pattern match
//  2. equal segment count, {placeholder} segments wildcard
//  3. raw string-prefix match
//
// An endpoint matching nothing resolves to UnknownApplication. Stage 3 is a
// plain substring prefix with no segment boundary check, so "/es" would also
// match "/estimate"; callers rely on this looseness.
func (r *Resolver) Resolve(endpoint string) string {
	if endpoint == "" {
		return UnknownApplication
	}

	// Stage 1: exact match.
	for _, route := range r.routes {
		if route.Pattern == endpoint {
			return route.Application
		}
	}

	// Stage 2: positional template match.
	segments := splitSegments(endpoint)
	for _, route := range r.routes {
		if matchSegments(splitSegments(route.Pattern), segments) {
			return route.Application
		}
	}

	// Stage 3: prefix match.
	for _, route := range r.routes {
		if strings.HasPrefix(endpoint, route.Pattern) {
			return route.Application
		}
	}

	return UnknownApplication
}

// splitSegments splits a path on '/', dropping empty segments.
func splitSegments(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// matchSegments compares pattern segments against endpoint segments,
// treating {wrapped} pattern segments as single-segment wildcards.
func matchSegments(pattern, endpoint []string) bool {
	if len(pattern) != len(endpoint) || len(pattern) == 0 {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			continue
		}
		if p != endpoint[i] {
			return false
		}
	}
	return true
}
