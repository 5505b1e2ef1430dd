package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLights(n int) []Light {
	out := make([]Light, n)
	for i := range out {
		f := float32(i)
		out[i] = NewLight(
			WithPosition(f, f+0.5, -f),
			WithColor(f/100, 0.5, 1),
			WithStrength(f+1),
		)
	}
	return out
}

func TestAggregateTruncatesInInputOrder(t *testing.T) {
	lights := makeLights(MaxLights + 7)
	p := Aggregate(lights)

	require.Equal(t, MaxLights, p.Count)
	require.Len(t, p.Positions, MaxLights*3)
	require.Len(t, p.Colours, MaxLights*3)
	require.Len(t, p.Strengths, MaxLights)
	for i := 0; i < MaxLights; i++ {
		pos, col := lights[i].Position(), lights[i].Color()
		assert.Equal(t, pos[:], p.Positions[i*3:i*3+3])
		assert.Equal(t, col[:], p.Colours[i*3:i*3+3])
		assert.Equal(t, lights[i].Strength(), p.Strengths[i])
	}
}

func TestAggregateEmpty(t *testing.T) {
	for _, lights := range [][]Light{nil, {}} {
		p := Aggregate(lights)
		assert.Zero(t, p.Count)
		assert.NotNil(t, p.Positions)
		assert.Empty(t, p.Positions)
		assert.Empty(t, p.Colours)
		assert.Empty(t, p.Strengths)
	}
}

func TestAggregateUnderCapacity(t *testing.T) {
	p := Aggregate(makeLights(3))
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, []float32{1, 2, 3}, p.Strengths)
}

func TestAggregateSkipsInactive(t *testing.T) {
	lights := makeLights(MaxLights + 2)
	lights[0].SetEnabled(false)
	lights[1] = nil

	p := Aggregate(lights)
	require.Equal(t, MaxLights, p.Count)
	// Slots 0 and 1 are freed, so the tail lights fit.
	assert.Equal(t, lights[2].Strength(), p.Strengths[0])
	assert.Equal(t, lights[MaxLights+1].Strength(), p.Strengths[MaxLights-1])
}

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(WithName("key"))
	assert.Equal(t, "key", l.Name())
	assert.True(t, l.Enabled())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1), l.Strength())

	l.SetID(3)
	l.SetPosition(1, 2, 3)
	l.SetColor(0, 1, 0)
	l.SetStrength(4)
	assert.Equal(t, uint64(3), l.ID())
	assert.Equal(t, [3]float32{1, 2, 3}, l.Position())
	assert.Equal(t, [3]float32{0, 1, 0}, l.Color())
	assert.Equal(t, float32(4), l.Strength())
}
