package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/schemaci/conform/pkg/engine"
	"github.com/schemaci/conform/pkg/suite"
)

// ValidationError represents a single manifest validation error with
// location context.
type ValidationError struct {
	Phase    string `json:"phase"` // structural, semantic, domain
	Path     string `json:"path"`  // JSON-path-like location (e.g., "suites[0].dir")
	Message  string `json:"message"`
	Severity string `json:"severity"` // error, warning
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Phase, e.Path, e.Message)
}

// ValidateFile performs the full 3-phase validation pipeline on a manifest file.
// Phase 1: Structural (strict YAML decode)
// Phase 2: Semantic (JSON Schema validation)
// Phase 3: Domain (custom Go rules)
func ValidateFile(path string) (*Manifest, []*ValidationError) {
	var allErrors []*ValidationError

	m, err := LoadFile(path)
	if err != nil {
		allErrors = append(allErrors, &ValidationError{
			Phase:    "structural",
			Message:  err.Error(),
			Severity: "error",
		})
		return nil, allErrors
	}

	allErrors = append(allErrors, validateSemantic(m)...)
	allErrors = append(allErrors, ValidateDomain(m)...)

	if len(allErrors) > 0 {
		return m, allErrors
	}
	return m, nil
}

// validateSemantic validates the manifest against its generated JSON Schema.
func validateSemantic(m *Manifest) []*ValidationError {
	fail := func(msg string) []*ValidationError {
		return []*ValidationError{{Phase: "semantic", Message: msg, Severity: "error"}}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fail(fmt.Sprintf("marshal for schema validation: %v", err))
	}
	schemaJSON, err := GenerateJSONSchema()
	if err != nil {
		return fail(fmt.Sprintf("generate schema: %v", err))
	}

	var schemaDoc any
	if err := json.Unmarshal(schemaJSON, &schemaDoc); err != nil {
		return fail(fmt.Sprintf("unmarshal schema: %v", err))
	}

	c := sjsonschema.NewCompiler()
	if err := c.AddResource("manifest-v0.json", schemaDoc); err != nil {
		return fail(fmt.Sprintf("add schema resource: %v", err))
	}
	sch, err := c.Compile("manifest-v0.json")
	if err != nil {
		return fail(fmt.Sprintf("compile schema: %v", err))
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fail(fmt.Sprintf("unmarshal document: %v", err))
	}

	if err := sch.Validate(doc); err != nil {
		var errs []*ValidationError
		if ve, ok := err.(*sjsonschema.ValidationError); ok {
			for _, cause := range flattenValidationErrors(ve) {
				errs = append(errs, &ValidationError{
					Phase:    "semantic",
					Path:     strings.Join(cause.InstanceLocation, "/"),
					Message:  fmt.Sprintf("%v", cause.ErrorKind),
					Severity: "error",
				})
			}
		} else {
			errs = append(errs, &ValidationError{
				Phase:    "semantic",
				Message:  err.Error(),
				Severity: "error",
			})
		}
		return errs
	}
	return nil
}

// flattenValidationErrors recursively collects all leaf validation errors.
func flattenValidationErrors(ve *sjsonschema.ValidationError) []*sjsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*sjsonschema.ValidationError{ve}
	}
	var flat []*sjsonschema.ValidationError
	for _, cause := range ve.Causes {
		flat = append(flat, flattenValidationErrors(cause)...)
	}
	return flat
}

// ValidateDomain performs Phase 3 domain-level validation.
// Returns a slice of errors; empty means valid.
func ValidateDomain(m *Manifest) []*ValidationError {
	var errs []*ValidationError

	if len(m.Suites) == 0 {
		errs = append(errs, &ValidationError{
			Phase:    "domain",
			Path:     "suites",
			Message:  "manifest must list at least one suite directory",
			Severity: "error",
		})
	}

	for i, ref := range m.Suites {
		if ref.Dir == "" {
			errs = append(errs, &ValidationError{
				Phase:    "domain",
				Path:     fmt.Sprintf("suites[%d].dir", i),
				Message:  "suite requires a fixture directory",
				Severity: "error",
			})
		}
		if ref.Draft != "" && !engine.ValidDraft(ref.Draft) {
			errs = append(errs, &ValidationError{
				Phase:    "domain",
				Path:     fmt.Sprintf("suites[%d].draft", i),
				Message:  fmt.Sprintf("unknown draft %q: must be one of %s", ref.Draft, strings.Join(engine.Drafts(), ", ")),
				Severity: "error",
			})
		}
	}

	for i, p := range m.Ignores {
		if p == "" {
			errs = append(errs, &ValidationError{
				Phase:    "domain",
				Path:     fmt.Sprintf("ignores[%d]", i),
				Message:  "empty ignore pattern would suppress every failure",
				Severity: "error",
			})
		}
	}

	if m.Filter != "" {
		if _, err := suite.CompileFilter(m.Filter); err != nil {
			errs = append(errs, &ValidationError{
				Phase:    "domain",
				Path:     "filter",
				Message:  err.Error(),
				Severity: "error",
			})
		}
	}

	return errs
}
