package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/netisu/shade"
)

const size = 256

func main() {
	tex := shade.NewImageTexture(checker(8))
	// Upscale with bilinear filtering so the output shows gradients
	// between the checker cells instead of hard blocks.
	tex.Fit(64, 64)
	shader := shade.NewTextureShader(tex)

	frags := make([]shade.Fragment, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u := (float64(x) + 0.5) / size
			v := 1 - (float64(y)+0.5)/size
			frags[y*size+x] = shade.Fragment{UV: mgl64.Vec2{u, v}}
		}
	}

	colors := make([]shade.Color, len(frags))
	shader.Resolve(frags, colors)

	im := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i, c := range colors {
		n := c.NRGBA()
		j := i * 4
		im.Pix[j+0] = n.R
		im.Pix[j+1] = n.G
		im.Pix[j+2] = n.B
		im.Pix[j+3] = n.A
	}

	file, err := os.Create("out.png")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, im); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("shaded %d fragments -> out.png\n", len(frags))
}

func checker(n int) image.Image {
	a := shade.HexColor("fff").NRGBA()
	b := shade.HexColor("7f7fd5").NRGBA()
	im := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x+y)%2 == 0 {
				im.SetNRGBA(x, y, a)
			} else {
				im.SetNRGBA(x, y, b)
			}
		}
	}
	return im
}
