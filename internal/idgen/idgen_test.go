package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	a := UUID()
	b := UUID()

	assert.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestSequence(t *testing.T) {
	gen := Sequence("id-1", "id-2")

	assert.Equal(t, "id-1", gen())
	assert.Equal(t, "id-2", gen())
	assert.Panics(t, func() { gen() })
}
