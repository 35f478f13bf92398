package mpw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWipe(t *testing.T) {
	b := []byte("banana")
	Wipe(b)
	assert.Equal(t, make([]byte, 6), b)

	Wipe(nil)
}

func TestSecret_ReleaseTwice(t *testing.T) {
	var s secret
	s.init([]byte{1, 2, 3})

	require.NoError(t, s.release())
	assert.ErrorIs(t, s.release(), ErrReleased)
	assert.ErrorIs(t, s.view(func([]byte) error { return nil }), ErrReleased)
}
