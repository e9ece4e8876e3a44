package statedata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigNotFound is matched by every error reporting that no data is bound
// to a page slug.
var ErrConfigNotFound = errors.New("configuration not found")

// MissingConfigError names the configuration key that had no value.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("configuration not found for %q", e.Key)
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// Problem describes one configuration defect found while loading the table.
type Problem struct {
	Slug    string
	Message string
}

func (p Problem) String() string {
	return p.Slug + ": " + p.Message
}

// ValidationError is returned by Load in strict mode.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.String())
	}
	return fmt.Sprintf("invalid state configuration (%d problems): %s", len(e.Problems), strings.Join(msgs, "; "))
}
