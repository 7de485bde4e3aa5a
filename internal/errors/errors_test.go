package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinelIdentity(t *testing.T) {
	sentinel := New("account not found")

	wrapped := Wrap(sentinel, "find account by id")
	wrapped = WithStack(wrapped)

	assert.True(t, Is(wrapped, sentinel))
	assert.Equal(t, "find account by id: account not found", Unwrap(wrapped).Error())
	assert.Equal(t, sentinel, Cause(wrapped))
}

type codedError struct {
	code string
}

func (e *codedError) Error() string {
	return e.code
}

func TestAsThroughWrapChain(t *testing.T) {
	inner := &codedError{code: "DUPLICATE_KEY"}
	wrapped := Wrapf(inner, "insert %s", "accounts")

	var target *codedError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "DUPLICATE_KEY", target.code)
}
