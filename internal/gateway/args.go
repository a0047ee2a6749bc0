package gateway

import (
	"encoding/json"
	"math"

	"siyuanmcp/internal/model"
)

// decodeArgs interprets the raw argument payload. Absent or null
// arguments become an empty object; anything that is not a JSON object
// is the caller's fault.
func decodeArgs(raw json.RawMessage) (map[string]any, *model.GatewayError) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, model.Validationf("arguments must be a JSON object")
	}
	switch v := value.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, model.Validationf("arguments must be a JSON object")
	}
}

func requiredString(args map[string]any, key string) (string, *model.GatewayError) {
	value, ok := args[key].(string)
	if !ok {
		return "", model.Validationf("missing or invalid `%s`", key)
	}
	return value, nil
}

// optionalString returns the value only when present and a string; a
// wrong-typed value is treated as absent.
func optionalString(args map[string]any, key string) (string, bool) {
	value, ok := args[key].(string)
	return value, ok
}

func optionalBool(args map[string]any, key string) (bool, bool) {
	value, ok := args[key].(bool)
	return value, ok
}

// optionalUint returns the value only when it is a non-negative integer
// JSON number; fractional or negative values are treated as absent.
func optionalUint(args map[string]any, key string) (uint64, bool) {
	value, ok := args[key].(float64)
	if !ok || value < 0 || value != math.Trunc(value) || value > math.MaxUint64 {
		return 0, false
	}
	return uint64(value), true
}

func stringArray(args map[string]any, key string) ([]string, *model.GatewayError) {
	values, ok := args[key].([]any)
	if !ok {
		return nil, model.Validationf("missing or invalid `%s`", key)
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		item, ok := value.(string)
		if !ok {
			return nil, model.Validationf("invalid `%s` entry", key)
		}
		out = append(out, item)
	}
	return out, nil
}
