package repo

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateField = errors.New("user with this mob_num or pan_num already exists")
)

func isUniqueViolation(err error) bool {
	pgErr := &pq.Error{}
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}
