package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	assert.True(t, obj.Enabled())
	assert.False(t, obj.HUD())
	assert.Zero(t, obj.ParentID())
	assert.Equal(t, common.IdentityMatrix, obj.Transform().LocalMatrix())
	require.NotNil(t, obj.Material())
	assert.Nil(t, obj.Model())
}

func TestBuilderOptions(t *testing.T) {
	mat := material.NewMaterial(material.WithAlpha(0.5))
	mdl := model.NewModel(model.WithKind(model.KindPlane))
	obj := NewGameObject(
		WithName("crosshair"),
		WithHUD(true),
		WithPosition(1, 2, 3),
		WithScale(2, 2, 2),
		WithCentroid(0.5, 0, 0),
		WithParent(4),
		WithMaterial(mat),
		WithModel(mdl),
		WithEnabled(false),
	)

	assert.Equal(t, "crosshair", obj.Name())
	assert.True(t, obj.HUD())
	assert.False(t, obj.Enabled())
	assert.Equal(t, uint64(4), obj.ParentID())
	tr := obj.Transform()
	assert.Equal(t, [3]float32{1, 2, 3}, tr.Position)
	assert.Equal(t, [3]float32{2, 2, 2}, tr.Scale)
	assert.Equal(t, [3]float32{0.5, 0, 0}, tr.Centroid)
	assert.Same(t, mat, obj.Material())
	assert.Same(t, mdl, obj.Model())
}

func TestTransformIsCopied(t *testing.T) {
	obj := NewGameObject()
	tr := obj.Transform()
	tr.Position = [3]float32{9, 9, 9}
	assert.Equal(t, [3]float32{}, obj.Transform().Position)

	obj.SetPosition(1, 0, 0)
	obj.SetCentroid(0, 1, 0)
	obj.SetScale(3, 3, 3)
	obj.SetParent(2)
	obj.SetID(5)
	obj.SetName("moved")
	obj.SetHUD(true)

	tr = obj.Transform()
	assert.Equal(t, [3]float32{1, 0, 0}, tr.Position)
	assert.Equal(t, [3]float32{0, 1, 0}, tr.Centroid)
	assert.Equal(t, [3]float32{3, 3, 3}, tr.Scale)
	assert.Equal(t, uint64(2), obj.ParentID())
	assert.Equal(t, uint64(5), obj.ID())
	assert.Equal(t, "moved", obj.Name())
	assert.True(t, obj.HUD())
}
