package renderer

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
)

// TextureFromImage converts img to tightly packed RGBA8 rows, top row first.
//
// Parameters:
//   - img: the source image
//
// Returns:
//   - TextureData: the converted pixels
func TextureFromImage(img image.Image) TextureData {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return TextureData{Width: bounds.Dx(), Height: bounds.Dy(), Pixels: rgba.Pix}
}

// DecodeTexture decodes a PNG or JPEG image into TextureData.
//
// Parameters:
//   - r: the encoded image
//
// Returns:
//   - TextureData: the decoded pixels
//   - error: an error if the image cannot be decoded
func DecodeTexture(r io.Reader) (TextureData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return TextureData{}, fmt.Errorf("decode texture: %w", err)
	}
	if img.Bounds().Empty() {
		return TextureData{}, fmt.Errorf("decode texture: empty %s image", format)
	}
	return TextureFromImage(img), nil
}

// LoadTexture reads and decodes a PNG or JPEG file into TextureData.
//
// Parameters:
//   - path: the image file path
//
// Returns:
//   - TextureData: the decoded pixels
//   - error: an error if the file cannot be read or decoded
func LoadTexture(path string) (TextureData, error) {
	f, err := os.Open(path)
	if err != nil {
		return TextureData{}, fmt.Errorf("load texture %q: %w", path, err)
	}
	defer f.Close()
	return DecodeTexture(f)
}
