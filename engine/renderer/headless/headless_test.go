package headless

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgram(t *testing.T, b Backend) common.ProgramHandle {
	t.Helper()
	h, err := b.CreateProgram(shader.DefaultVertex(), shader.DefaultFragment())
	require.NoError(t, err)
	require.True(t, h.Valid())
	return h
}

func TestViewport(t *testing.T) {
	b := NewBackend(640, 480)
	w, h := b.Viewport()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	b.SetViewport(10, 20)
	w, h = b.Viewport()
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, renderer.BackendTypeHeadless, b.Type())
}

func TestRecordsStateAndClear(t *testing.T) {
	b := NewBackend(1, 1)
	b.SetPipelineState(pipeline.Overlay())
	b.Clear([3]float32{1, 0, 0}, 1)

	cmds := b.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, OpSetPipelineState, cmds[0].Op)
	assert.Equal(t, pipeline.Overlay(), cmds[0].State)
	assert.Equal(t, OpClear, cmds[1].Op)
	assert.Equal(t, [3]float32{1, 0, 0}, cmds[1].Color)

	b.Reset()
	assert.Empty(t, b.Commands())
}

func TestUniformsFilteredByProgram(t *testing.T) {
	b := NewBackend(1, 1)
	prog := newProgram(t, b)

	b.SetUniformFloat(shader.UniformAlpha, 1)
	assert.Empty(t, b.Commands(), "no program bound")

	require.NoError(t, b.UseProgram(prog))
	b.SetUniformFloat(shader.UniformAlpha, 0.25)
	b.SetUniformFloat("notDeclared", 3)
	b.SetUniformVec3Array(shader.UniformLightPositions, nil)
	b.SetUniformFloatArray(shader.UniformLightStrengths, []float32{})

	uniforms := ops(b.Commands(), OpSetUniform)
	require.Len(t, uniforms, 1)
	assert.Equal(t, shader.UniformAlpha, uniforms[0].Uniform)
	assert.Equal(t, []float32{0.25}, uniforms[0].Values)
}

func TestDrawSnapshotsUniforms(t *testing.T) {
	b := NewBackend(1, 1)
	prog := newProgram(t, b)
	vao, err := b.CreateMesh(renderer.MeshData{Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}})
	require.NoError(t, err)

	require.NoError(t, b.UseProgram(prog))
	require.NoError(t, b.BindVertexArray(vao))
	b.SetUniformInt(shader.UniformLightCount, 2)
	require.NoError(t, b.Draw(model.DrawCall{Count: 3}))
	b.SetUniformInt(shader.UniformLightCount, 5)
	require.NoError(t, b.Draw(model.DrawCall{Count: 3}))

	snaps := b.DrawUniforms()
	require.Len(t, snaps, 2)
	assert.Equal(t, []float32{2}, snaps[0][shader.UniformLightCount])
	assert.Equal(t, []float32{5}, snaps[1][shader.UniformLightCount])

	assert.Error(t, b.Draw(model.DrawCall{}))
}

func TestInvalidHandles(t *testing.T) {
	b := NewBackend(1, 1)
	assert.ErrorIs(t, b.UseProgram(7), renderer.ErrInvalidHandle)
	assert.ErrorIs(t, b.BindVertexArray(7), renderer.ErrInvalidHandle)
	assert.ErrorIs(t, b.BindTexture(common.TextureUnitDiffuse, 7), renderer.ErrInvalidHandle)
	assert.NoError(t, b.BindTexture(common.TextureUnitDiffuse, 0))

	tex, err := b.CreateTexture(renderer.TextureData{Width: 2, Height: 1, Pixels: make([]byte, 8)})
	require.NoError(t, err)
	require.NoError(t, b.BindTexture(common.TextureUnitNormal, tex))

	b.Invalidate(uint32(tex))
	assert.ErrorIs(t, b.BindTexture(common.TextureUnitNormal, tex), renderer.ErrInvalidHandle)

	prog := newProgram(t, b)
	b.Release()
	assert.ErrorIs(t, b.UseProgram(prog), renderer.ErrInvalidHandle)
}

func TestCreateRejectsMalformedInput(t *testing.T) {
	b := NewBackend(1, 1)
	_, err := b.CreateMesh(renderer.MeshData{Positions: []float32{1, 2}})
	assert.Error(t, err)
	_, err = b.CreateTexture(renderer.TextureData{Width: 2, Height: 2, Pixels: make([]byte, 4)})
	assert.Error(t, err)
	_, err = b.CreateProgram(shader.DefaultVertex(), shader.DefaultVertex())
	assert.Error(t, err)
	_, err = b.CreateProgram(nil, shader.DefaultFragment())
	assert.Error(t, err)
}

func ops(cmds []Command, op Op) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
