package lib

import "fmt"

// Err prefixes err with the operation name that failed. A nil err stays nil so
// callers can wrap a return value unconditionally.
func Err(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
