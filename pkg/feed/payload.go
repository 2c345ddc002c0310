package feed

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// Payload is a raw notification payload as decoded from the remote
// service response, e.g. by encoding/json into map[string]any.
//
// The payload shape is dictated by the service and is not treated as a
// strict contract: every lookup below degrades to absent on missing or
// mis-typed fields instead of failing.
type Payload = map[string]any

func stringValue(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	return s, ok
}

func boolValue(m map[string]any, key string) (bool, bool) {
	if m == nil {
		return false, false
	}
	b, ok := m[key].(bool)
	return b, ok
}

func mapValue(m map[string]any, key string) (map[string]any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m[key].(map[string]any)
	return v, ok
}

func listValue(m map[string]any, key string) ([]any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m[key].([]any)
	return v, ok
}

// idValue extracts an identifier that the service may encode as a JSON
// number or as a decimal string, depending on the endpoint version.
func idValue(m map[string]any, key string) (int64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// urlValue parses a URL field, treating empty and unparseable strings as
// absent.
func urlValue(m map[string]any, key string) *url.URL {
	s, ok := stringValue(m, key)
	if !ok {
		return nil
	}
	return parseURL(s)
}

func parseURL(s string) *url.URL {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil
	}
	return u
}
