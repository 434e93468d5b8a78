package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haru-256/hashlab/pkg/config"
)

func TestLookupKnownSchemes(t *testing.T) {
	tests := []struct {
		id       int
		method   config.HashMethod
		modulus  int
		bucket   int
		strategy config.Strategy
	}{
		{1, config.Division, 120, 1, config.Linear},
		{3, config.Division, 120, 1, config.Chaining},
		{9, config.Division, 113, 1, config.Chaining},
		{10, config.Division, 41, 3, config.Linear},
		{11, config.Division, 41, 3, config.Quadratic},
		{12, config.Fibonacci, 0, 1, config.Linear},
		{14, config.Fibonacci, 0, 1, config.Chaining},
	}

	for _, tt := range tests {
		s, err := Lookup(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.id, s.ID)
		assert.Equal(t, tt.method, s.Config.HashMethod)
		assert.Equal(t, tt.modulus, s.Config.Modulus)
		assert.Equal(t, tt.bucket, s.Config.BucketSize)
		assert.Equal(t, tt.strategy, s.Config.Strategy)
		assert.Equal(t, 120, s.Config.TableSize)
		require.NoError(t, s.Config.Validate())
	}
}

func TestLookupRejectsOutOfRange(t *testing.T) {
	_, err := Lookup(0)
	assert.ErrorIs(t, err, ErrUnknownScheme)

	_, err = Lookup(15)
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestAllReturnsFourteenSchemesInOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 14)
	for i, s := range all {
		assert.Equal(t, i+1, s.ID)
	}
}

func TestAllReturnsACopy(t *testing.T) {
	all := All()
	all[0].ID = 999

	again, err := Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, 1, again.ID)
}
