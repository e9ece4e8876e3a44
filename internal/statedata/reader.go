package statedata

import "strings"

// LookupFunc resolves a configuration key. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// FieldSeparator splits the legacy single-line configuration value.
const FieldSeparator = ","

// ReadFields returns the comma-separated fields bound to slug. Fields keep
// their order and surrounding whitespace.
func ReadFields(lookup LookupFunc, slug string) ([]string, error) {
	value, ok := lookup(slug)
	if !ok {
		return nil, &MissingConfigError{Key: slug}
	}
	return strings.Split(value, FieldSeparator), nil
}
