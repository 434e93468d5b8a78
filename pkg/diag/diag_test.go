package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSinkTableFullAndPoolExhausted(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf, false)

	sink.TableFull(42, 7)
	sink.PoolExhausted(99, 3)

	out := buf.String()
	assert.Contains(t, out, "table full, key 42")
	assert.Contains(t, out, "pool exhausted, key 99")
}

func TestWriterSinkDumpOnlyWhenVerbose(t *testing.T) {
	var quiet bytes.Buffer
	NewWriterSink(&quiet, false).Dump("label", []int{1, 2, 3})
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	NewWriterSink(&verbose, true).Dump("label", []int{1, 2, 3})
	assert.Contains(t, verbose.String(), "label")
}

func TestHeaviestBucketsOrdersByLoadThenIndex(t *testing.T) {
	loads := []int{0, 3, 5, 5, 0, 1}
	top := HeaviestBuckets(loads, 3)

	assert.Equal(t, []BucketLoad{
		{Index: 2, Load: 5},
		{Index: 3, Load: 5},
		{Index: 1, Load: 3},
	}, top)
}

func TestHeaviestBucketsSkipsZeroLoadAndClampsN(t *testing.T) {
	loads := []int{0, 0, 2}
	top := HeaviestBuckets(loads, 10)
	assert.Equal(t, []BucketLoad{{Index: 2, Load: 2}}, top)
}

func TestHeaviestBucketsEmpty(t *testing.T) {
	assert.Empty(t, HeaviestBuckets(nil, 5))
	assert.Empty(t, HeaviestBuckets([]int{0, 0}, 5))
}
