package engine

// Mode is a set of independent validator behavior toggles, combined by
// bitwise OR.
type Mode uint8

const (
	// ModeCast coerces instance values toward schema-declared types where
	// the conversion is unambiguous (e.g. "5" to 5 under type: integer).
	ModeCast Mode = 1 << iota

	// ModeRemoveAdditionals strips object properties and array items the
	// schema does not permit instead of failing on them.
	ModeRemoveAdditionals
)

// modeNames maps fixture mode-flag names to their bits.
var modeNames = map[string]Mode{
	"CAST":               ModeCast,
	"REMOVE_ADDITIONALS": ModeRemoveAdditionals,
}

// ParseModes accumulates the named flags into a bitmask. Unrecognized names
// are silently skipped so fixture corpora written for newer engines still
// load.
func ParseModes(names []string) Mode {
	var m Mode
	for _, name := range names {
		m |= modeNames[name]
	}
	return m
}
