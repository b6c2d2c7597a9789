package giobackend

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"github.com/dboslee/lru"
	ot "github.com/go-text/typesetting/font/opentype"

	"go.hasen.dev/datepicker/shirei"
)

type glyphKey struct {
	fontId  shirei.FontId
	glyphId shirei.GlyphId
}

var glyphPaths = lru.New[glyphKey, clip.PathSpec]()

// glyphPath converts a glyph outline, in font units, into a gio path.
func glyphPath(fontId shirei.FontId, glyphId shirei.GlyphId) clip.PathSpec {
	key := glyphKey{fontId, glyphId}
	if ps, ok := glyphPaths.Get(key); ok {
		return ps
	}

	outline := shirei.GlyphOutline(fontId, glyphId)

	var path clip.Path
	path.Begin(new(op.Ops))
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			path.MoveTo(f32.Point(seg.Args[0]))
		case ot.SegmentOpLineTo:
			path.LineTo(f32.Point(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			path.QuadTo(f32.Point(seg.Args[0]), f32.Point(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			path.CubeTo(f32.Point(seg.Args[0]), f32.Point(seg.Args[1]), f32.Point(seg.Args[2]))
		}
	}
	ps := path.End()

	// an empty outline may mean the font is not parsed yet
	if len(outline.Segments) > 0 {
		glyphPaths.Set(key, ps)
	}
	return ps
}
