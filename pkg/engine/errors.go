package engine

// SchemaError reports that a schema definition is structurally invalid and
// cannot be compiled. It is an expected outcome for schema-level conformance
// checks, as opposed to engine-internal failures.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string { return e.Err.Error() }

func (e *SchemaError) Unwrap() error { return e.Err }

// InstanceError reports that an instance was semantically rejected by a
// schema during validation. Any validation failure that is not an
// InstanceError or a SchemaError is engine-internal (unresolved references,
// unreachable remote resources, and the like).
type InstanceError struct {
	Err error
}

func (e *InstanceError) Error() string { return e.Err.Error() }

func (e *InstanceError) Unwrap() error { return e.Err }
