package lib_test

import (
	"errors"
	"testing"

	"user-management-api/internal/lib"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	base := errors.New("boom")

	err := lib.Err("user_repo.Create", base)

	assert.EqualError(t, err, "user_repo.Create: boom")
	assert.ErrorIs(t, err, base)
	assert.NoError(t, lib.Err("user_repo.Create", nil))
}
