package probing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haru-256/hashlab/pkg/metrics"
)

func TestScenarioA_LinearFirstCollision(t *testing.T) {
	storage := NewStorage(10)
	m := metrics.New()

	require.NoError(t, Insert(storage, 2, 2, 10, false, 0, 0, m))
	assert.Equal(t, 1, m.Comparisons)
	assert.Equal(t, 1, m.Insertions)
	assert.Equal(t, 0, m.PrimaryCollisions)
	assert.Equal(t, 0, m.Probes)

	require.NoError(t, Insert(storage, 12, 2, 10, false, 0, 0, m))
	assert.Equal(t, 3, m.Comparisons)
	assert.Equal(t, 2, m.Insertions)
	assert.Equal(t, 1, m.PrimaryCollisions)
	assert.Equal(t, 0, m.SecondaryCollisions)
	assert.Equal(t, 1, m.TotalCollisions)
	assert.Equal(t, 1, m.Probes)

	assert.Equal(t, 2, storage[2].Key)
	assert.Equal(t, 12, storage[3].Key)
}

func TestScenarioB_LinearFourthInsertDeltas(t *testing.T) {
	storage := NewStorage(5)
	m := metrics.New()

	for _, k := range []int{0, 1, 2, 3} {
		require.NoError(t, Insert(storage, k, k, 5, false, 0, 0, m))
	}

	before := metrics.Snapshot{
		Comparisons: m.Comparisons,
		Insertions:  m.Insertions,
	}

	require.NoError(t, Insert(storage, 0, 0, 5, false, 0, 0, m))

	assert.Equal(t, before.Comparisons+5, m.Comparisons)
	assert.Equal(t, before.Insertions+1, m.Insertions)
	assert.Equal(t, 1, m.PrimaryCollisions)
	assert.Equal(t, 3, m.SecondaryCollisions)
	assert.Equal(t, 4, m.Probes)
	assert.Equal(t, Slot{Occupied: true, Key: 0}, storage[4])
}

func TestScenarioC_LinearTableFull(t *testing.T) {
	storage := NewStorage(3)
	m := metrics.New()

	for _, k := range []int{0, 1, 2} {
		require.NoError(t, Insert(storage, k, k, 3, false, 0, 0, m))
	}

	err := Insert(storage, 3, 0, 3, false, 0, 0, m)
	assert.ErrorIs(t, err, ErrTableFull)

	assert.Equal(t, 3, m.Insertions)
	assert.Equal(t, 6, m.Comparisons)
	assert.Equal(t, 1, m.PrimaryCollisions)
	assert.Equal(t, 2, m.SecondaryCollisions)
	assert.Equal(t, 3, m.TotalCollisions)
	assert.Equal(t, 3, m.Probes)
}

func TestScenarioD_QuadraticProbeSequence(t *testing.T) {
	storage := NewStorage(5)
	storage[1] = Slot{Occupied: true, Key: 100}
	storage[2] = Slot{Occupied: true, Key: 200}
	m := metrics.New()

	require.NoError(t, Insert(storage, 7, 1, 5, true, 0.5, 0.5, m))

	assert.Equal(t, 3, m.Comparisons)
	assert.Equal(t, 2, m.Probes)
	assert.Equal(t, 1, m.PrimaryCollisions)
	assert.Equal(t, 1, m.SecondaryCollisions)
	assert.Equal(t, 2, m.TotalCollisions)
	assert.Equal(t, 1, m.Insertions)
	assert.Equal(t, 7, storage[4].Key)
}

func TestProbeIndexDeterminism(t *testing.T) {
	for i := 0; i < 10; i++ {
		a := ProbeIndex(3, i, 17, true, 1.7, 2.3)
		b := ProbeIndex(3, i, 17, true, 1.7, 2.3)
		assert.Equal(t, a, b)
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, 17)
	}
}

func TestInsertThenSearchFindsKey(t *testing.T) {
	storage := NewStorage(10)
	m := metrics.New()

	require.NoError(t, Insert(storage, 42, 3, 10, false, 0, 0, m))
	snapshotBefore := append([]Slot(nil), storage...)

	found := Search(storage, 42, 3, 10, false, 0, 0, m)
	assert.True(t, found)
	assert.Equal(t, snapshotBefore, storage, "search must not mutate storage")
}

func TestSearchMissingKeyReturnsFalse(t *testing.T) {
	storage := NewStorage(5)
	m := metrics.New()
	require.NoError(t, Insert(storage, 1, 0, 5, false, 0, 0, m))

	assert.False(t, Search(storage, 99, 0, 5, false, 0, 0, m))
}

func TestLookupNeverMutatesMetrics(t *testing.T) {
	storage := NewStorage(5)
	m := metrics.New()
	require.NoError(t, Insert(storage, 1, 0, 5, false, 0, 0, m))

	before := *m
	assert.Equal(t, Search(storage, 1, 0, 5, false, 0, 0, metrics.New()), Lookup(storage, 1, 0, 5, false, 0, 0))
	assert.False(t, Lookup(storage, 404, 0, 5, false, 0, 0))
	assert.Equal(t, before, *m, "lookup must never touch metrics")
}
