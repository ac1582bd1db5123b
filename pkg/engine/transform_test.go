package engine

import (
	"reflect"
	"testing"
)

func TestCastScalars(t *testing.T) {
	cases := []struct {
		name   string
		schema map[string]any
		in     any
		want   any
	}{
		{"string to integer", map[string]any{"type": "integer"}, "5", float64(5)},
		{"fractional string stays for integer", map[string]any{"type": "integer"}, "5.5", "5.5"},
		{"string to number", map[string]any{"type": "number"}, "5.5", 5.5},
		{"number to string", map[string]any{"type": "string"}, float64(7), "7"},
		{"bool to string", map[string]any{"type": "string"}, true, "true"},
		{"string to bool", map[string]any{"type": "boolean"}, "true", true},
		{"non-numeric string untouched", map[string]any{"type": "integer"}, "five", "five"},
		{"no type untouched", map[string]any{}, "5", "5"},
	}
	for _, tc := range cases {
		if got := castValue(tc.in, tc.schema); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %#v, want %#v", tc.name, got, tc.want)
		}
	}
}

func TestCastRecursesIntoStructure(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"n":    map[string]any{"type": "integer"},
			"tags": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	}
	in := map[string]any{
		"n":     "42",
		"tags":  []any{float64(1), "x"},
		"other": "untouched",
	}
	got := castValue(in, schema)
	want := map[string]any{
		"n":     float64(42),
		"tags":  []any{"1", "x"},
		"other": "untouched",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestStripAdditionalProperties(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "integer"},
		},
		"additionalProperties": false,
	}
	in := map[string]any{"a": float64(1), "extra": float64(2)}
	got := stripAdditionals(in, schema)
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestStripKeepsPatternProperties(t *testing.T) {
	schema := map[string]any{
		"type":                 "object",
		"patternProperties":    map[string]any{"^x-": map[string]any{}},
		"additionalProperties": false,
	}
	in := map[string]any{"x-trace": "keep", "other": "drop"}
	got := stripAdditionals(in, schema)
	want := map[string]any{"x-trace": "keep"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestStripWithoutConstraintKeepsAll(t *testing.T) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{"a": map[string]any{}},
	}
	in := map[string]any{"a": float64(1), "extra": float64(2)}
	if got := stripAdditionals(in, schema); !reflect.DeepEqual(got, in) {
		t.Errorf("got %#v, want all keys kept", got)
	}
}

func TestStripTrimsTupleExtras(t *testing.T) {
	schema := map[string]any{
		"type":        "array",
		"prefixItems": []any{map[string]any{"type": "integer"}},
		"items":       false,
	}
	in := []any{float64(1), float64(2), float64(3)}
	got := stripAdditionals(in, schema)
	want := []any{float64(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestValidatorAppliesModes(t *testing.T) {
	e := New()
	s, err := e.Compile(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "integer"},
		},
		"additionalProperties": false,
	}, "")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	v := e.NewValidator(ModeCast | ModeRemoveAdditionals)
	out, err := v.Validate(s, map[string]any{"a": "1", "extra": float64(2)})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %#v, want %#v", out, want)
	}

	// Without modes the same instance must be rejected.
	if _, err := e.NewValidator(0).Validate(s, map[string]any{"a": "1", "extra": float64(2)}); err == nil {
		t.Error("expected rejection without mode flags")
	}
}
