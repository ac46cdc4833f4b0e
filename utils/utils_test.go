package utils

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestArange(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, Arange(0, 4, 1))
	assert.Equal(t, []float64{1, 1.5, 2, 2.5}, Arange(1, 2.75, 0.5))
	assert.Len(t, Arange(0, 1, 0.1), 10)
	assert.Empty(t, Arange(2, 2, 1))
	assert.Empty(t, Arange(0, 1, 0))
	assert.Empty(t, Arange(3, 1, 1))
}

func TestNanMean(t *testing.T) {
	assert.InDelta(t, 2.0, NanMean([]float64{1, math.NaN(), 3}), 1e-12)
	assert.True(t, math.IsNaN(NanMean(nil)))
	assert.True(t, math.IsNaN(NanMean([]float64{math.NaN()})))
}

func TestWithLogFields(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithLogFields(ctx))

	ctx = WithLogFields(ctx, zap.String("plane", "VISp_0"))
	ctx = WithLogFields(ctx, zap.Int("channel", 3))
	fields, ok := ctx.Value(loggerFieldsKey{}).([]zap.Field)
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "plane", fields[0].Key)
	assert.Equal(t, "channel", fields[1].Key)
	assert.NotNil(t, GetLogger(ctx))
}
