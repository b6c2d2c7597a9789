package giobackend

import (
	"fmt"
	"image"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"go.hasen.dev/datepicker/shirei"
)

var dpi float32

// baseline position as a fraction of the glyph rect height
const baselineRatio = 0.82

// renderer turns a frame's surfaces into gio ops, keeping the clip and
// opacity stacks balanced.
type renderer struct {
	ops     *op.Ops
	clips   []clip.Stack
	opacity []paint.OpacityStack
}

func renderSurfaces(surfaces []shirei.Surface) op.CallOp {
	r := renderer{ops: new(op.Ops)}
	macro := op.Record(r.ops)

	op.Affine(f32.Affine2D{}.Scale(f32.Pt(0, 0), f32.Pt(dpi, dpi))).Add(r.ops)

	for i := range surfaces {
		r.draw(&surfaces[i])
	}

	if len(r.clips) != 0 {
		panic(fmt.Sprintf("uneven clip stack %d", len(r.clips)))
	}
	return macro.Stop()
}

func (r *renderer) draw(s *shirei.Surface) {
	if s.Transperancy > 0 {
		r.opacity = append(r.opacity, paint.PushOpacity(r.ops, 1-s.Transperancy))
	}

	rrect := clip.RRect{
		Rect: image.Rectangle{
			Min: imgPoint(s.Rect.Origin),
			Max: imgPoint(s.Rect.Max()),
		},
		// css order: top-left, top-right, bottom-right, bottom-left
		NW: int(s.Corners[0]),
		NE: int(s.Corners[1]),
		SE: int(s.Corners[2]),
		SW: int(s.Corners[3]),
	}

	if s.Clip == shirei.ClipPush {
		r.clips = append(r.clips, rrect.Op(r.ops).Push(r.ops))
	}

	switch {
	case s.FontId > 0 && s.GlyphId > 0:
		r.glyph(s)
	case s.ImageId > 0:
		r.image(s)
	default:
		var shape clip.Op
		if s.Stroke == 0 {
			shape = rrect.Op(r.ops)
		} else {
			shape = clip.Stroke{Path: rrect.Path(r.ops), Width: s.Stroke}.Op()
		}
		stack := shape.Push(r.ops)
		r.paint(s)
		stack.Pop()
	}

	if s.PopTransperancy {
		if len(r.opacity) == 0 {
			panic("surface rendering: uneven opacity stack")
		}
		r.opacity[len(r.opacity)-1].Pop()
		r.opacity = r.opacity[:len(r.opacity)-1]
	}

	if s.Clip == shirei.ClipPop {
		if len(r.clips) == 0 {
			panic("surface rendering: uneven clip stack")
		}
		r.clips[len(r.clips)-1].Pop()
		r.clips = r.clips[:len(r.clips)-1]
	}
}

// paint fills the current clip with the surface's vertical gradient.
func (r *renderer) paint(s *shirei.Surface) {
	rect := s.Rect
	paint.LinearGradientOp{
		// gradient stops are in device pixels
		Stop1:  f32.Pt(rect.Origin[0]*dpi, rect.Origin[1]*dpi),
		Stop2:  f32.Pt(rect.Origin[0]*dpi, (rect.Origin[1]+rect.Size[1])*dpi),
		Color1: shirei.HSLAColor(s.Color1),
		Color2: shirei.HSLAColor(s.Color2),
	}.Add(r.ops)
	paint.PaintOp{}.Add(r.ops)
}

func (r *renderer) glyph(s *shirei.Surface) {
	face := shirei.GetFace(s.FontId)
	shape := clip.Outline{Path: glyphPath(s.FontId, s.GlyphId)}.Op()

	// font units grow upwards; scale so the em box matches the rect height
	scale := s.Rect.Size[1] * face.InvUPM
	var affine f32.Affine2D
	affine = affine.Scale(f32.Pt(0, 0), f32.Pt(scale, -scale))
	affine = affine.Offset(f32Point(s.Rect.Origin))
	affine = affine.Offset(f32.Pt(0, s.Rect.Size[1]*baselineRatio))

	transform := op.Affine(affine).Push(r.ops)
	stack := shape.Push(r.ops)
	r.paint(s)
	stack.Pop()
	transform.Pop()
}

func (r *renderer) image(s *shirei.Surface) {
	img := shirei.LookupImage(s.ImageId)
	if img == nil {
		return
	}

	// images are the rasterized shadows, already at their drawn size
	transform := op.Offset(imgPoint(s.Rect.Origin)).Push(r.ops)
	paint.NewImageOp(img).Add(r.ops)
	paint.PaintOp{}.Add(r.ops)
	transform.Pop()
}
