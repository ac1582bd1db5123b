// Package suite executes JSON Schema conformance fixtures against the
// validation engine and aggregates pass/fail results for CI gating.
//
// A run is a single sequential pass: collections load fully up front, then
// every group gets a schema-level check and every case a data-level check,
// each appending exactly one record to the result log. Reporting happens
// once at the end.
package suite

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/schemaci/conform/pkg/engine"
)

// Suite holds the loaded collections, the ignore registry, and an optional
// check filter. Configure it fully before calling Run.
type Suite struct {
	engine      *engine.Engine
	collections []Collection
	ignores     IgnoreList
	filter      *Filter
}

// New returns an empty suite driving the given engine.
func New(eng *engine.Engine) *Suite {
	return &Suite{engine: eng}
}

// Ignore registers a known-failure substring pattern.
func (s *Suite) Ignore(pattern string) {
	s.ignores.Ignore(pattern)
}

// Ignores exposes the registry for the reporting pass.
func (s *Suite) Ignores() *IgnoreList {
	return &s.ignores
}

// SetFilter installs a check-selection expression.
func (s *Suite) SetFilter(src string) error {
	f, err := CompileFilter(src)
	if err != nil {
		return err
	}
	s.filter = f
	return nil
}

func (s *Suite) match(file, group, caseDesc string) bool {
	return s.filter == nil || s.filter.Match(file, group, caseDesc)
}

// Run executes every check in deterministic order (collections in
// registration order, files in walk order, groups and cases in file order)
// and returns the result log. Per-check engine failures never escape: they
// become hard-error records.
func (s *Suite) Run() *Log {
	log := &Log{}
	for _, col := range s.collections {
		for _, g := range col.Groups {
			if s.match(col.File, g.Description, "") {
				s.checkSchema(col, g, log)
			}
			for _, c := range g.Cases {
				if s.match(col.File, g.Description, c.Description) {
					s.checkCase(col, g, c, log)
				}
			}
		}
	}
	return log
}

// checkSchema verifies that the engine's accept/reject verdict for the
// group's schema definition matches the fixture's expectation. A group with
// cases is always expected to compile; the loader guarantees Valid is set
// otherwise.
func (s *Suite) checkSchema(col Collection, g TestGroup, log *Log) {
	expected := true
	if g.Cases == nil {
		expected = *g.Valid
	}

	result := true
	var msg string
	sch, err := s.engine.Compile(g.Schema, col.Draft)
	switch {
	case err == nil:
		// The schema compiled. Probe it against a null placeholder: an
		// instance-level rejection still means the schema itself is fine,
		// which is all this check measures.
		if _, verr := s.engine.NewValidator(0).Validate(sch, nil); verr != nil {
			var ie *engine.InstanceError
			if !errors.As(verr, &ie) {
				log.Append(Record{
					File:  col.File,
					Group: g.Description,
					Err:   "schema check: " + verr.Error(),
				})
				return
			}
		}
	default:
		var se *engine.SchemaError
		if !errors.As(err, &se) {
			log.Append(Record{
				File:  col.File,
				Group: g.Description,
				Err:   "schema check: " + err.Error(),
			})
			return
		}
		result = false
		msg = se.Error()
	}

	rec := Record{Valid: result == expected, File: col.File, Group: g.Description}
	if !rec.Valid {
		rec.Err = msg
	}
	log.Append(rec)
}

// checkCase validates one data instance under the case's mode flags and
// compares the verdict (and, when declared, the transformed output) against
// the fixture's expectation. Schema and validator are built fresh per case
// so nothing leaks between checks.
func (s *Suite) checkCase(col Collection, g TestGroup, c TestCase, log *Log) {
	hard := func(err error) {
		log.Append(Record{
			File:  col.File,
			Group: g.Description,
			Case:  c.Description,
			Err:   "case check: " + err.Error(),
		})
	}

	sch, err := s.engine.Compile(g.Schema, col.Draft)
	if err != nil {
		hard(err)
		return
	}

	v := s.engine.NewValidator(engine.ParseModes(c.Modes))
	result := true
	var msg string
	out, err := v.Validate(sch, c.Data)
	if err != nil {
		var ie *engine.InstanceError
		if !errors.As(err, &ie) {
			hard(err)
			return
		}
		result = false
		msg = ie.Error()
	} else if c.Expect != nil {
		var want any
		if uerr := json.Unmarshal(c.Expect, &want); uerr != nil {
			hard(fmt.Errorf("decode expected value: %w", uerr))
			return
		}
		if !equalOutput(out, want) {
			result = false
			msg = fmt.Sprintf("output %v does not match expected %v", out, want)
		}
	}

	rec := Record{Valid: result == c.Valid, File: col.File, Group: g.Description, Case: c.Description}
	if !rec.Valid {
		rec.Err = msg
	}
	log.Append(rec)
}
