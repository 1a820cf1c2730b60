package shade

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// Texture is a 2D image addressed by normalized coordinates. Addressing and
// filtering policy belong to the texture: coordinates outside [0, 1] resolve
// however the implementation decides, and callers pick a filter by calling
// Sample (nearest texel) or BilinearSample (filtered).
type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

// ImageTexture samples an already-decoded image. Coordinates repeat outside
// [0, 1] and V grows upward, so v is flipped before the pixel lookup.
type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) *ImageTexture {
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

// Fit resizes the backing image to width x height.
func (t *ImageTexture) Fit(width, height int) {
	if width == t.Width && height == t.Height {
		return
	}
	t.Image = resize.Resize(uint(width), uint(height), t.Image, resize.Bilinear)
	t.Width = width
	t.Height = height
}

// Sample returns the texel nearest to (u, v).
func (t *ImageTexture) Sample(u, v float64) Color {
	// Wrap coords
	u = u - math.Floor(u)
	v = v - math.Floor(v)
	// Flip V for standard UV coords
	v = 1 - v

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return MakeColor(t.Image.At(x, y))
}

// BilinearSample filters between the four texels around (u, v), with the same
// repeat addressing as Sample.
func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))

	x := u*float64(t.Width) - 0.5
	y := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	return c00.Lerp(c10, fx).Lerp(c01.Lerp(c11, fx), fy)
}

// texel reads pixel (x, y) with repeat wrapping of the indices.
func (t *ImageTexture) texel(x, y int) Color {
	x = ((x % t.Width) + t.Width) % t.Width
	y = ((y % t.Height) + t.Height) % t.Height
	return MakeColor(t.Image.At(x, y))
}

// SolidTexture returns one color for every coordinate.
type SolidTexture struct {
	Color Color
}

func NewSolidTexture(c Color) *SolidTexture {
	return &SolidTexture{c}
}

func (t *SolidTexture) Sample(u, v float64) Color {
	return t.Color
}

func (t *SolidTexture) BilinearSample(u, v float64) Color {
	return t.Color
}
