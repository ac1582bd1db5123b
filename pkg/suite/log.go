package suite

import "strings"

// Record is the outcome of one executed check: one per group for schema
// checks, one per case for data checks. Immutable once appended.
type Record struct {
	Valid bool
	File  string
	Group string
	Case  string
	Err   string
}

// Message renders the record for operators and for ignore matching: the
// non-empty context fields joined by pipes, in fixed order.
func (r Record) Message() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{r.File, r.Group, r.Case, r.Err} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// Log is the append-only sequence of check outcomes. Nothing reads it until
// the final reporting pass.
type Log struct {
	records []Record
}

// Append adds one record.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// Records returns the records in execution order.
func (l *Log) Records() []Record {
	return l.records
}
