package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solidmcp/solidmcp/pkg/geom"
)

// Argument coercion helpers. Wire arguments arrive as decoded JSON, so
// numbers are float64 and ids may be numbers or (possibly quoted) strings.

func floatArg(args map[string]any, key string, def float64) float64 {
	v, ok := args[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return def
}

func intArg(args map[string]any, key string, def int) int {
	return int(floatArg(args, key, float64(def)))
}

func boolArg(args map[string]any, key string) bool {
	v, ok := args[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func stringArg(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

// vecArg reads a 3-element numeric array argument.
func vecArg(args map[string]any, key string, def geom.Vec3) geom.Vec3 {
	raw, ok := args[key].([]any)
	if !ok {
		return def
	}
	out := def
	get := func(i int, fallback float64) float64 {
		if i >= len(raw) {
			return fallback
		}
		if f, ok := raw[i].(float64); ok {
			return f
		}
		return fallback
	}
	out.X = get(0, def.X)
	out.Y = get(1, def.Y)
	out.Z = get(2, def.Z)
	return out
}

// idArg resolves an entity reference argument. Ids may arrive as numbers or
// strings; stray quote characters around string ids are stripped before
// parsing.
func idArg(args map[string]any, key string) (int64, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing required argument: %s", key)
	}
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case string:
		cleaned := strings.Trim(strings.TrimSpace(n), `"'`)
		id, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid entity id %q", n)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("invalid entity id %v", v)
	}
}

// numberSchema and friends keep the JSON-Schema literals in one place.
func numberSchema(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}

func stringSchema(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func vectorSchema(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "number"},
		"description": desc,
	}
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	s := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}
