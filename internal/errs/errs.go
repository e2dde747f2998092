package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind of every argument validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which parameter violated which constraint.
type ArgumentError struct {
	Name       string
	Value      interface{}
	Constraint string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s = %v, expected %s", ErrInvalidArgument, e.Name, e.Value, e.Constraint)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func InvalidArgument(name string, value interface{}, constraint string) error {
	return &ArgumentError{Name: name, Value: value, Constraint: constraint}
}
