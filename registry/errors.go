package registry

import (
	"errors"
	"fmt"
)

// DuplicateUnitError is returned when registering a name that already
// exists.
type DuplicateUnitError struct {
	Name string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unit %q already exists", e.Name)
}

// UnknownUnitError is returned by callers that treat a missing name as a
// failure, such as quantity construction by unit name.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("registry does not contain unit %q", e.Name)
}

// IsDuplicate reports whether err is a DuplicateUnitError.
func IsDuplicate(err error) bool {
	var dup *DuplicateUnitError
	return errors.As(err, &dup)
}

// IsUnknown reports whether err is an UnknownUnitError.
func IsUnknown(err error) bool {
	var unknown *UnknownUnitError
	return errors.As(err, &unknown)
}
