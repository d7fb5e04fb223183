package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinel(t *testing.T) {
	sentinel := New("empty reference set")

	wrapped := Wrapf(Wrap(sentinel, "generate properties"), "run %d", 1)
	assert.True(t, Is(wrapped, sentinel))
	assert.Equal(t, "run 1: generate properties: empty reference set", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapKeepsSentinel")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "unused"))
	assert.NoError(t, Wrapf(nil, "unused %d", 1))
	assert.False(t, Is(nil, New("x")))
}
