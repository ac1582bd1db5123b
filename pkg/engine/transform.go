package engine

import (
	"math"
	"regexp"
	"strconv"
)

// castValue coerces v toward the type the schema declares, recursing through
// objects and arrays. Only unambiguous conversions are applied; anything the
// rules don't cover passes through untouched and is left for validation to
// judge. Schemas declaring multiple types are ambiguous and never coerced.
func castValue(v any, schema any) any {
	sm, ok := schema.(map[string]any)
	if !ok {
		return v
	}

	if t, ok := sm["type"].(string); ok {
		switch t {
		case "integer":
			if s, ok := v.(string); ok {
				if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
					return f
				}
			}
		case "number":
			if s, ok := v.(string); ok {
				if f, err := strconv.ParseFloat(s, 64); err == nil {
					return f
				}
			}
		case "string":
			switch n := v.(type) {
			case float64:
				return strconv.FormatFloat(n, 'f', -1, 64)
			case bool:
				return strconv.FormatBool(n)
			}
		case "boolean":
			if s, ok := v.(string); ok {
				if b, err := strconv.ParseBool(s); err == nil {
					return b
				}
			}
		}
	}

	switch vv := v.(type) {
	case map[string]any:
		props, _ := sm["properties"].(map[string]any)
		if props == nil {
			return vv
		}
		out := make(map[string]any, len(vv))
		for k, val := range vv {
			if ps, ok := props[k]; ok {
				out[k] = castValue(val, ps)
			} else {
				out[k] = val
			}
		}
		return out
	case []any:
		return mapItems(vv, sm, castValue)
	}
	return v
}

// stripAdditionals removes object properties and array items the schema
// does not permit, recursing through declared substructure. Properties
// survive when they are declared, match a patternProperties pattern, or
// additionalProperties is anything but false.
func stripAdditionals(v any, schema any) any {
	sm, ok := schema.(map[string]any)
	if !ok {
		return v
	}

	switch vv := v.(type) {
	case map[string]any:
		props, _ := sm["properties"].(map[string]any)
		addl, hasAddl := sm["additionalProperties"]
		strict := hasAddl && addl == false
		out := make(map[string]any, len(vv))
		for k, val := range vv {
			ps, declared := props[k]
			switch {
			case declared:
				out[k] = stripAdditionals(val, ps)
			case matchesPattern(k, sm):
				out[k] = val
			case strict:
				// not permitted: drop
			default:
				if as, ok := addl.(map[string]any); ok {
					out[k] = stripAdditionals(val, as)
				} else {
					out[k] = val
				}
			}
		}
		return out
	case []any:
		out := mapItems(vv, sm, stripAdditionals)
		// Tuple schemas with items:false reject trailing elements; trim them.
		if tuple := tupleSchemas(sm); tuple != nil && len(out) > len(tuple) {
			if extra, ok := extraItemsSchema(sm); ok && extra == false {
				out = out[:len(tuple)]
			}
		}
		return out
	}
	return v
}

// mapItems applies fn element-wise using the schema's item declarations:
// a single items schema applies to every element, a tuple (prefixItems, or
// items as an array in older drafts) applies per index.
func mapItems(items []any, sm map[string]any, fn func(any, any) any) []any {
	single, _ := sm["items"].(map[string]any)
	tuple := tupleSchemas(sm)
	if single == nil && tuple == nil {
		return items
	}
	out := make([]any, len(items))
	for i, el := range items {
		switch {
		case single != nil:
			out[i] = fn(el, single)
		case i < len(tuple):
			out[i] = fn(el, tuple[i])
		default:
			out[i] = el
		}
	}
	return out
}

func tupleSchemas(sm map[string]any) []any {
	if t, ok := sm["prefixItems"].([]any); ok {
		return t
	}
	if t, ok := sm["items"].([]any); ok {
		return t
	}
	return nil
}

// extraItemsSchema returns the schema governing elements past a tuple:
// items next to prefixItems, or additionalItems in older drafts.
func extraItemsSchema(sm map[string]any) (any, bool) {
	if _, ok := sm["prefixItems"]; ok {
		v, has := sm["items"]
		return v, has
	}
	v, has := sm["additionalItems"]
	return v, has
}

// matchesPattern reports whether key matches any patternProperties pattern.
// Invalid patterns never match; the engine rejects them during compile.
func matchesPattern(key string, sm map[string]any) bool {
	pats, _ := sm["patternProperties"].(map[string]any)
	for pat := range pats {
		if re, err := regexp.Compile(pat); err == nil && re.MatchString(key) {
			return true
		}
	}
	return false
}
