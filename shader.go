// Package shade implements the fragment-shading stage of a software
// rasterization pipeline: each fragment's interpolated coordinates map to a
// color by sampling a texture bound for the draw invocation. Everything
// around it (vertex transform, interpolation, depth, blending) lives in the
// surrounding pipeline.
package shade

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Fragment carries the attributes the interpolation stage produces for one
// raster sample.
type Fragment struct {
	// TexCoord is the first interpolated coordinate pair. It is accepted for
	// compatibility with upstream interpolators but never read during
	// shading; UV is the pair that drives sampling.
	TexCoord mgl64.Vec2
	// UV is the sampling coordinate in the texture's normalized [0, 1] space.
	UV mgl64.Vec2
}

// TextureShader resolves fragment colors by sampling a single texture. The
// texture is bound explicitly at construction and must stay unmutated while
// the shader is in use; one shader value serves one draw invocation.
type TextureShader struct {
	Texture Texture
}

func NewTextureShader(texture Texture) *TextureShader {
	return &TextureShader{texture}
}

// Fragment returns the texture sample at f's sampling coordinate, unmodified.
// The bound texture must be valid; its addressing mode decides how
// out-of-range coordinates resolve.
func (s *TextureShader) Fragment(f Fragment) Color {
	return s.Texture.Sample(f.UV.X(), f.UV.Y())
}

// Resolve shades every fragment in frags, writing one color per fragment into
// the matching slot of out. Fragments are independent, so the work is spread
// across all logical CPUs. out must hold at least len(frags) slots.
func (s *TextureShader) Resolve(frags []Fragment, out []Color) {
	var wg sync.WaitGroup
	wn := runtime.NumCPU()
	wg.Add(wn)
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			for i := wi; i < len(frags); i += wn {
				out[i] = s.Fragment(frags[i])
			}
			wg.Done()
		}(wi)
	}
	wg.Wait()
}
