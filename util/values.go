package util

import "encoding/json"

// GetString returns m[key] when it is a string.
func GetString(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// GetMap returns m[key] when it is a JSON object.
func GetMap(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key].(map[string]any)
	return v, ok
}

// GetFloat returns m[key] as a float when it is numeric.
func GetFloat(m map[string]any, key string) (float64, bool) {
	switch n := m[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// HasKey reports whether m contains key, even with a null value.
func HasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

// DecodeObject decodes raw into a generic JSON object. It returns false for
// anything that is not an object.
func DecodeObject(raw []byte) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

// NonNullJSON returns nil for an absent or JSON null value so that
// omitempty drops it.
func NonNullJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
