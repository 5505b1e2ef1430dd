package renderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureFromImageRepacks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 3, 4, 4))
	img.Set(2, 3, color.NRGBA{R: 255, A: 255})
	img.Set(3, 3, color.NRGBA{B: 255, A: 255})

	tex := TextureFromImage(img)
	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 1, tex.Height)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 0, 255, 255}, tex.Pixels)
}

func TestDecodeTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{G: 128, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	tex, err := DecodeTexture(&buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 128, 0, 255}, tex.Pixels)

	_, err = DecodeTexture(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)

	_, err = LoadTexture("does-not-exist.png")
	assert.Error(t, err)
}
