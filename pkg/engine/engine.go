// Package engine adapts a JSON Schema validation library into the interface
// the conformance suite drives: draft-tagged schema compilation, mode-flagged
// validators, and a three-way error taxonomy (schema-structure, instance
// rejection, engine-internal).
package engine

import (
	"errors"
	"fmt"
	"strings"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// resourceURL is the synthetic location under which fixture schemas are
// registered with the compiler. Each compile uses a fresh compiler, so the
// name never collides.
const resourceURL = "fixture.json"

// Engine wraps the underlying validation library.
type Engine struct{}

// New returns a ready-to-use engine.
func New() *Engine {
	return &Engine{}
}

// Schema is a compiled schema plus the raw definition it came from. The raw
// form drives the CAST and REMOVE_ADDITIONALS transforms, which need the
// schema's declared shape rather than its compiled representation.
type Schema struct {
	raw      any
	compiled *sjsonschema.Schema
}

// Compile builds a Schema from a raw definition under the given draft tag.
// A structurally invalid definition yields a *SchemaError; any other compile
// failure (such as an unresolvable remote reference) is engine-internal.
func (e *Engine) Compile(raw any, draft string) (*Schema, error) {
	d, err := draftFor(draft)
	if err != nil {
		return nil, err
	}

	c := sjsonschema.NewCompiler()
	c.DefaultDraft(d)
	if err := c.AddResource(resourceURL, raw); err != nil {
		return nil, &SchemaError{Err: err}
	}
	compiled, err := c.Compile(resourceURL)
	if err != nil {
		var se *sjsonschema.SchemaValidationError
		if errors.As(err, &se) {
			return nil, &SchemaError{Err: err}
		}
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{raw: raw, compiled: compiled}, nil
}

// Validator validates instances under a fixed set of mode flags. Validators
// are cheap to construct; the suite builds a fresh one per check so no state
// leaks across checks.
type Validator struct {
	modes Mode
}

// NewValidator returns a validator configured with the given mode bitmask.
func (e *Engine) NewValidator(modes Mode) *Validator {
	return &Validator{modes: modes}
}

// Validate runs instance through the schema and returns the (possibly
// transformed) instance on success. Semantic rejection yields an
// *InstanceError; anything else is engine-internal. The CAST and
// REMOVE_ADDITIONALS transforms run before validation, so the engine judges
// the instance it would actually emit.
func (v *Validator) Validate(s *Schema, instance any) (any, error) {
	out := instance
	if v.modes&ModeCast != 0 {
		out = castValue(out, s.raw)
	}
	if v.modes&ModeRemoveAdditionals != 0 {
		out = stripAdditionals(out, s.raw)
	}
	if err := s.compiled.Validate(out); err != nil {
		var ve *sjsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, &InstanceError{Err: ve}
		}
		return nil, fmt.Errorf("validate instance: %w", err)
	}
	return out, nil
}

// Drafts lists the draft tags Compile accepts, in preference order.
func Drafts() []string {
	return []string{"draft2020-12", "draft2019-09", "draft7", "draft6", "draft4"}
}

// ValidDraft reports whether Compile accepts the given draft tag.
func ValidDraft(name string) bool {
	_, err := draftFor(name)
	return err == nil
}

// draftFor resolves a draft tag to the library's dialect. The empty tag
// selects the latest supported draft.
func draftFor(name string) (*sjsonschema.Draft, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "draft2020-12", "2020-12":
		return sjsonschema.Draft2020, nil
	case "draft2019-09", "2019-09":
		return sjsonschema.Draft2019, nil
	case "draft7", "7":
		return sjsonschema.Draft7, nil
	case "draft6", "6":
		return sjsonschema.Draft6, nil
	case "draft4", "4":
		return sjsonschema.Draft4, nil
	}
	return nil, fmt.Errorf("unknown draft %q (supported: %s)", name, strings.Join(Drafts(), ", "))
}
