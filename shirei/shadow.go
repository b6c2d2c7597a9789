package shirei

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/vector"
)

// Shadows are pre-rendered: a rounded rect rasterized with room for the blur
// on every side, then gaussian blurred. Results are shared between all
// containers with the same size, corners, blur and alpha.

type shadowKey struct {
	w, h    int
	corners [4]uint8
	blur    uint8 // tenths
	alpha   uint8
}

var shadows = make(map[shadowKey]ImageId)

func blurShadowImage(size Vec2, corners Vec4, radius f32, alpha f32) ImageId {
	key := shadowKey{
		w:     int(size[0]),
		h:     int(size[1]),
		blur:  uint8(radius * 10),
		alpha: uint8(alpha * 0xff),
	}
	for i := range corners {
		key.corners[i] = uint8(corners[i])
	}
	if id, ok := shadows[key]; ok {
		return id
	}
	id := registerImage(renderShadow(size, corners, radius, alpha))
	shadows[key] = id
	return id
}

func renderShadow(size Vec2, corners Vec4, radius f32, alpha f32) *image.RGBA {
	width := int(size[0] + radius*4)
	height := int(size[1] + radius*4)

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Over

	// cubic approximation of a quarter circle
	const q = 4 * (math.Sqrt2 - 1) / 3
	const iq = 1 - q

	// css order: top-left, top-right, bottom-right, bottom-left
	nw, ne, se, sw := corners[0], corners[1], corners[2], corners[3]

	w := radius * 2
	n := radius * 2
	e := w + size[0]
	s := n + size[1]

	r.MoveTo(w+nw, n)
	r.LineTo(e-ne, n)
	r.CubeTo(e-ne*iq, n, e, n+ne*iq, e, n+ne)
	r.LineTo(e, s-se)
	r.CubeTo(e, s-se*iq, e-se*iq, s, e-se, s)
	r.LineTo(w+sw, s)
	r.CubeTo(w+sw*iq, s, w, s-sw*iq, w, s-sw)
	r.LineTo(w, n+nw)
	r.CubeTo(w, n+nw*iq, w+nw*iq, n, w+nw, n)
	r.ClosePath()

	src := image.NewUniform(color.RGBA{0, 0, 0, uint8(alpha * 0xff)})
	r.Draw(img, img.Bounds(), src, image.Point{})

	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, float64(radius))
}
