package domain

import (
	"fmt"
	"strings"
)

// RouteRule maps an HTTP method and a path template to an access class.
// Template segments written as {name} match exactly one non-empty path segment.
type RouteRule struct {
	Method   string
	Template string
	Class    AccessClass
}

type compiledRule struct {
	method   string
	segments []string
	wildcard []bool
	class    AccessClass
}

// RouteTable classifies requests against a fixed set of rules. It is built once at
// startup and never mutated, so it is safe for concurrent use without locking.
type RouteTable struct {
	rules []compiledRule
}

// NewRouteTable compiles the given rules into structural segment matchers.
// Templates must be absolute paths.
func NewRouteTable(rules ...RouteRule) (*RouteTable, error) {
	table := &RouteTable{rules: make([]compiledRule, 0, len(rules))}
	for _, rule := range rules {
		if !strings.HasPrefix(rule.Template, "/") {
			return nil, fmt.Errorf("route template %q must start with '/'", rule.Template)
		}
		if rule.Method == "" {
			return nil, fmt.Errorf("route template %q has no method", rule.Template)
		}

		segments := splitPath(rule.Template)
		wildcard := make([]bool, len(segments))
		for i, seg := range segments {
			wildcard[i] = isPlaceholder(seg)
		}

		table.rules = append(table.rules, compiledRule{
			method:   rule.Method,
			segments: segments,
			wildcard: wildcard,
			class:    rule.Class,
		})
	}
	return table, nil
}

// Classify returns the access class for the request. Paths that match no rule
// default to AccessAuthenticated. Rules sharing a class may overlap freely; the
// first matching rule wins, so overlapping rules with different classes should
// be avoided when building a table.
func (t *RouteTable) Classify(method, path string) AccessClass {
	segments := splitPath(path)
	for i := range t.rules {
		if t.rules[i].matches(method, segments) {
			return t.rules[i].class
		}
	}
	return AccessAuthenticated
}

func (r *compiledRule) matches(method string, segments []string) bool {
	if r.method != method || len(r.segments) != len(segments) {
		return false
	}
	for i, seg := range r.segments {
		if r.wildcard[i] {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if seg != segments[i] {
			return false
		}
	}
	return true
}

// splitPath drops the leading slash and splits on '/'. A trailing slash yields an
// empty final segment, so "/songs/" never matches the "/songs" template.
func splitPath(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

func isPlaceholder(segment string) bool {
	return len(segment) > 2 && segment[0] == '{' && segment[len(segment)-1] == '}'
}

// DefaultRules returns the access rules of the music catalog API.
func DefaultRules() []RouteRule {
	return []RouteRule{
		{Method: "GET", Template: "/health", Class: AccessPublic},
		{Method: "POST", Template: "/sessions", Class: AccessLoggedOutOnly},
		{Method: "POST", Template: "/users", Class: AccessAdminOnly},
		{Method: "POST", Template: "/songs", Class: AccessAdminOnly},
		{Method: "PUT", Template: "/songs/{song_id}", Class: AccessAdminOnly},
		{Method: "DELETE", Template: "/songs/{song_id}", Class: AccessAdminOnly},
		{Method: "POST", Template: "/albums", Class: AccessAdminOnly},
		{Method: "PUT", Template: "/albums/{album_id}", Class: AccessAdminOnly},
		{Method: "DELETE", Template: "/albums/{album_id}", Class: AccessAdminOnly},
	}
}

// DefaultRouteTable compiles DefaultRules.
func DefaultRouteTable() *RouteTable {
	table, err := NewRouteTable(DefaultRules()...)
	if err != nil {
		panic(err)
	}
	return table
}
