package spriteanim

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// PixelRect converts a normalized UV Rect into pixel coordinates against an
// atlas image of the given bounds.
func (r Rect) PixelRect(atlasWidth, atlasHeight int) image.Rectangle {
	x0 := int(r.X * float64(atlasWidth))
	y0 := int(r.Y * float64(atlasHeight))
	x1 := int((r.X + r.W) * float64(atlasWidth))
	y1 := int((r.Y + r.H) * float64(atlasHeight))
	return image.Rect(x0, y0, x1, y1)
}

// SubImage returns the portion of atlas named by region, sharing pixel
// storage with atlas (no copy). This is the cheap path for hosts that draw
// frames directly from the shared atlas every tick.
func (r Rect) SubImage(atlas *ebiten.Image) *ebiten.Image {
	bounds := atlas.Bounds()
	rect := r.PixelRect(bounds.Dx(), bounds.Dy())
	return atlas.SubImage(rect).(*ebiten.Image)
}

// MaterializeFrame crops region out of a CPU-side atlas image into a new,
// owned *ebiten.Image. Unlike SubImage, the result does not alias the
// atlas, so it is safe to cache and reuse after the atlas is mutated or
// discarded.
func MaterializeFrame(atlas image.Image, region Rect) *ebiten.Image {
	bounds := atlas.Bounds()
	rect := region.PixelRect(bounds.Dx(), bounds.Dy())

	cropped := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(cropped, cropped.Bounds(), atlas, rect.Min, draw.Src)

	return ebiten.NewImageFromImage(cropped)
}
