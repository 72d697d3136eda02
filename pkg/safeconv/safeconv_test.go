package safeconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMustUintToInt verifies conversion and the overflow panic.
func TestMustUintToInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, MustUintToInt(0))
	assert.Equal(t, 42, MustUintToInt(42))
	assert.Equal(t, MaxInt, MustUintToInt(uint(MaxInt)))

	assert.Panics(t, func() {
		MustUintToInt(uint(MaxInt) + 1)
	})
}

// TestMustIntToUint verifies conversion and the negative-value panic.
func TestMustIntToUint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(0), MustIntToUint(0))
	assert.Equal(t, uint(7), MustIntToUint(7))

	assert.Panics(t, func() {
		MustIntToUint(-1)
	})
}

// TestMustIntToUint32 verifies bounds in both directions.
func TestMustIntToUint32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), MustIntToUint32(0))
	assert.Equal(t, MaxUint32, MustIntToUint32(int(MaxUint32)))

	assert.Panics(t, func() {
		MustIntToUint32(-1)
	})
	assert.Panics(t, func() {
		MustIntToUint32(int(MaxUint32) + 1)
	})
}
