package pokemon

import (
	"errors"

	domcommon "pokeproxy/internal/domain/common"
)

// Operation names the service call that produced a Failure.
type Operation string

const (
	OpListTypes  Operation = "list_types"
	OpListByType Operation = "list_by_type"
	OpSearch     Operation = "search"
	OpList       Operation = "list"
)

// Failure is the error outcome of every Service call. Term carries the
// caller-facing subject (normalized search term, type id) when there is one.
type Failure struct {
	Op   Operation
	Term string
	Err  error
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(op Operation, term string, err error) error {
	return &Failure{Op: op, Term: term, Err: err}
}

// AsFailure extracts the Failure from err, if any.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	return domcommon.IsNotFound(err)
}
