package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIDRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	wire := FormatID(id)
	assert.Len(t, wire, 24)

	parsed, err := ParseID(wire)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseIDRejectsMalformed(t *testing.T) {
	for _, wire := range []string{
		"",
		"abc",
		"zzzzzzzzzzzzzzzzzzzzzzzz",   // right length, wrong charset
		"64ab64ab64ab64ab64ab64ab64", // too long
		"not-an-id",
	} {
		_, err := ParseID(wire)
		assert.ErrorIs(t, err, ErrInvalidID, "wire id %q", wire)
	}
}
