package suite

// equalOutput compares the engine's transformed output against an expected
// value. When both sides are composite (object or array) the comparison is
// deep structural equality: object keys in any order, array order and length
// significant. Otherwise it is strict value-and-type equality, so an expected
// 1 never matches a produced "1". Values are assumed to come from JSON
// decoding (map[string]any, []any, string, float64, bool, nil).
func equalOutput(got, want any) bool {
	if isComposite(got) && isComposite(want) {
		return deepEqual(got, want)
	}
	return scalarEqual(got, want)
}

func isComposite(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

func deepEqual(got, want any) bool {
	switch g := got.(type) {
	case map[string]any:
		w, ok := want.(map[string]any)
		if !ok || len(g) != len(w) {
			return false
		}
		for k, gv := range g {
			wv, ok := w[k]
			if !ok || !equalOutput(gv, wv) {
				return false
			}
		}
		return true
	case []any:
		w, ok := want.([]any)
		if !ok || len(g) != len(w) {
			return false
		}
		for i := range g {
			if !equalOutput(g[i], w[i]) {
				return false
			}
		}
		return true
	}
	return scalarEqual(got, want)
}

func scalarEqual(got, want any) bool {
	switch g := got.(type) {
	case nil:
		return want == nil
	case bool:
		w, ok := want.(bool)
		return ok && g == w
	case string:
		w, ok := want.(string)
		return ok && g == w
	case float64:
		w, ok := want.(float64)
		return ok && g == w
	}
	return false
}
