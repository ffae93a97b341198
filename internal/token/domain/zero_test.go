package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	t.Run("clears an entropy buffer", func(t *testing.T) {
		buf := []byte{0xde, 0xad, 0xbe, 0xef}
		Zero(buf)
		assert.Equal(t, make([]byte, len(buf)), buf)
	})

	t.Run("clears a default-length token buffer", func(t *testing.T) {
		buf := make([]byte, DefaultByteLength)
		for i := range buf {
			buf[i] = byte(i + 1)
		}
		Zero(buf)
		assert.Equal(t, make([]byte, DefaultByteLength), buf)
	})

	t.Run("handles empty buffer", func(t *testing.T) {
		buf := []byte{}
		Zero(buf)
		assert.Empty(t, buf)
	})

	t.Run("handles nil buffer", func(t *testing.T) {
		assert.NotPanics(t, func() { Zero(nil) })
	})
}
