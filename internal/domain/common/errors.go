package common

import (
	"errors"
	"fmt"
)

// NotFoundError reports that the upstream API has no resource under Key.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

func NewNotFound(entity, key string) error {
	return NotFoundError{Entity: entity, Key: key}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
