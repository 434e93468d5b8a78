package sweep

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haru-256/hashlab/pkg/config"
	"github.com/haru-256/hashlab/pkg/diag"
	"github.com/haru-256/hashlab/pkg/scheme"
)

func TestRunAllSchemesProducesOneResultEach(t *testing.T) {
	schemes := scheme.All()
	input := []int{1, 2, 3, 4, 5, 12, 113, 120}

	var buf bytes.Buffer
	sink := diag.NewWriterSink(&buf, false)

	results, err := Run(schemes, input, sink)
	require.NoError(t, err)
	require.Len(t, results, len(schemes))

	for i, r := range results {
		assert.Equal(t, schemes[i].ID, r.Scheme.ID)
		assert.NotNil(t, r.Table)
		assert.LessOrEqual(t, r.Metrics.Insertions, r.Scheme.Config.TableSize)
	}
}

func TestRunReportsTableFullOnExhaustedSmallTable(t *testing.T) {
	small := scheme.Scheme{ID: 1, Config: config.Configuration{
		TableSize: 3, BucketSize: 1, HashMethod: config.Division, Strategy: config.Linear, Modulus: 3,
	}}
	input := []int{0, 3, 6, 9}

	var buf bytes.Buffer
	sink := diag.NewWriterSink(&buf, false)

	results, err := Run([]scheme.Scheme{small}, input, sink)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].Metrics.Insertions)
	assert.Contains(t, buf.String(), "table full")
}
