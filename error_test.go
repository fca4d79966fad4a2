package policydoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/policydoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := policydoc.Errorf(policydoc.ENOTFOUND, "policy %q not found", "test")

	assert.Equal(t, policydoc.ENOTFOUND, policydoc.ErrorCode(err))
	assert.Equal(t, "policy \"test\" not found", policydoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, policydoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, policydoc.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving table: %w", policydoc.Errorf(policydoc.EINVALID, "no data to save"))

	assert.Equal(t, policydoc.EINVALID, policydoc.ErrorCode(err))
	assert.Equal(t, "no data to save", policydoc.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, policydoc.EINTERNAL, policydoc.ErrorCode(err))
	assert.Equal(t, "Internal error.", policydoc.ErrorMessage(err))
}
