package gitlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewHash_RoundTrip verifies hex parsing and formatting agree.
func TestNewHash_RoundTrip(t *testing.T) {
	t.Parallel()

	hex := "0123456789abcdef0123456789abcdef01234567"
	hash := NewHash(hex)

	assert.Equal(t, hex, hash.String())
	assert.False(t, hash.IsZero())
}

// TestNewHash_UpperCase verifies case-insensitive parsing.
func TestNewHash_UpperCase(t *testing.T) {
	t.Parallel()

	lower := NewHash("abcdef0000000000000000000000000000000000")
	upper := NewHash("ABCDEF0000000000000000000000000000000000")

	assert.Equal(t, lower, upper)
}

// TestHash_IsZero verifies the zero-value check.
func TestHash_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Hash{}.IsZero())
	assert.False(t, NewHash("01").IsZero())
}

// TestHash_ToOid verifies conversion to the libgit2 representation.
func TestHash_ToOid(t *testing.T) {
	t.Parallel()

	hash := NewHash("0123456789abcdef0123456789abcdef01234567")
	oid := hash.ToOid()

	assert.Equal(t, hash, HashFromOid(oid))
}
