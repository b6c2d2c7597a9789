package shirei

import (
	"github.com/cespare/xxhash/v2"
	g "go.hasen.dev/generic"
)

// Surfaces are what the backend draws: a rectangle with rounded corners, a
// vertical gradient, and optionally a glyph or an image. All UI is built by
// composing surfaces.

type ClipStackOp int

const (
	_ ClipStackOp = iota
	ClipPush
	ClipPop
)

type Surface struct {
	Rect    Rect
	Color1  Vec4
	Color2  Vec4
	Corners Vec4

	Stroke  f32 // border width; zero means fill
	ImageId ImageId

	FontId  FontId
	GlyphId GlyphId

	Clip ClipStackOp

	Transperancy    f32
	PopTransperancy bool
}

var surfaces = make([]Surface, 0, 1024*4)

var surfaceHash uint64

func PushSurface(s Surface) {
	g.Append(&surfaces, s)
}

// Surface is a flat struct with no pointers, so its raw bytes identify it.
// The window size is mixed in so a resize always counts as a change.
func computeSurfacesHash(ss []Surface) uint64 {
	h := xxhash.New()
	Hash(h, &WindowSize)
	HashSlice(h, ss)
	return h.Sum64()
}

type hoverable struct {
	Rect Rect
	Id   any
}

// filled while rendering; read at the start of the next frame
var hoverables []hoverable

func beginRenderToSurfaces(root *Container) {
	g.ResetSlice(&surfaces)
	g.ResetSlice(&hoverables)

	renderToSurfaces(root)
}

func renderToSurfaces(c *Container) {
	var clipOpen, clipClose ClipStackOp
	if c.Clip {
		clipOpen, clipClose = ClipPush, ClipPop
	}

	rect := Rect{Origin: c.resolvedOrigin, Size: c.resolvedSize}

	if c.Shadow.Alpha > 0 {
		shRect := rect
		shRect.Origin = Vec2Add(shRect.Origin, c.Shadow.Offset)
		// the shadow image carries room for the blur on each side
		shRect.Origin = Vec2Add(shRect.Origin, Vec2{-c.Shadow.Blur * 2, -c.Shadow.Blur * 2})

		PushSurface(Surface{
			Rect:    shRect,
			ImageId: blurShadowImage(rect.Size, c.Corners, c.Shadow.Blur, c.Shadow.Alpha),
		})
	}

	PushSurface(Surface{
		Rect:         rect,
		Color1:       c.Background,
		Color2:       Vec4Add(c.Background, c.Gradient),
		Corners:      c.Corners,
		FontId:       c.fontId,
		GlyphId:      c.glyphId,
		Clip:         clipOpen,
		Transperancy: c.Transperancy,
	})

	if !c.ClickThrough {
		g.Append(&hoverables, hoverable{Rect: c.screenRect, Id: c.Id})
	}

	for i := range c.children {
		renderToSurfaces(&c.children[i])
	}

	if c.BorderWidth > 0 || c.Clip || c.Transperancy > 0 {
		PushSurface(Surface{
			Rect:            rect,
			Color1:          c.BorderColor,
			Color2:          c.BorderColor,
			Corners:         c.Corners,
			Stroke:          c.BorderWidth,
			Clip:            clipClose,
			PopTransperancy: c.Transperancy > 0,
		})
	}
}
