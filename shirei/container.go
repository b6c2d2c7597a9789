package shirei

import (
	"go.hasen.dev/generic"
)

// Containers are the unit of layout. They stack their children along a main
// axis (vertical by default, horizontal for rows) in a flex-box like way.

// Colors are Vec4 in HSLA:
// H: 0-360
// S: 0-100
// L: 0-100
// A: 0-1
const (
	HUE        = 0
	SATURATION = 1
	LIGHT      = 2
	ALPHA      = 3
)

type Border struct {
	BorderColor Vec4
	BorderWidth f32
}

type Shadow struct {
	Offset Vec2
	Blur   f32
	Alpha  f32
}

type Alignment int

const (
	AlignUnset Alignment = iota

	AlignStart
	AlignMiddle
	AlignEnd
)

// padding order is: top right bottom left
const (
	PAD_TOP    = 0
	PAD_RIGHT  = 1
	PAD_BOTTOM = 2
	PAD_LEFT   = 3
)

type Attrs struct {
	Padding Vec4
	Gap     f32

	// 0 means opaque; the zero value is the useful default
	Transperancy f32

	MainAlign  Alignment
	CrossAlign Alignment

	// with respect to the parent
	Grow      f32
	SelfAlign Alignment

	MinSize Vec2
	MaxSize Vec2 // zero means unconstrained

	// position relative to the parent origin, used when Floats is set
	Float Vec2

	Background Vec4
	Gradient   Vec4 // delta applied to the background at the bottom edge

	Border
	Shadow

	Corners Vec4

	Row          bool
	ExpandAcross bool
	Floats       bool
	// size comes from constraints and growth only, not from the content
	ExtrinsicSize bool

	ClickThrough bool

	// clip children to the container rect
	Clip bool
}

func PaddingVH(v f32, h f32) Vec4 {
	return Vec4{v, h, v, h}
}

func PadSize(padding Vec4) Vec2 {
	return Vec2{
		padding[PAD_LEFT] + padding[PAD_RIGHT],
		padding[PAD_TOP] + padding[PAD_BOTTOM],
	}
}

type Container struct {
	Id any
	Attrs

	scope scopeId

	fontId  FontId
	glyphId GlyphId

	resolvedSize   Vec2
	relativeOrigin Vec2
	resolvedOrigin Vec2
	contentSize    Vec2

	// resolved rect clipped by the clipping regions of the ancestors
	screenRect Rect

	parent     *Container
	children   []Container
	nextAutoId int
}

// RenderData is what a container leaves behind for the next frame.
type RenderData struct {
	Attrs
	parentId       any
	ResolvedSize   Vec2
	RelativeOrigin Vec2
	ResolvedOrigin Vec2
	contentSize    Vec2
	screenRect     Rect
}

var renderData = make(map[any]RenderData)
var renderDataNext = make(map[any]RenderData)

var current *Container

func Layout(attrs Attrs, builder func()) {
	LayoutId(nil, attrs, builder)
}

// LayoutId opens a container, runs builder to add its children, then closes
// it. A nil id derives a synthetic one from the parent scope and the position
// among the anonymous siblings, so inserting an element with an explicit id
// does not shift the ids of its anonymous siblings.
func LayoutId(id any, attrs Attrs, builder func()) {
	var scope scopeId
	if id == nil {
		scope = addChildScope(current.scope, current.nextAutoId)
		id = scope
		current.nextAutoId++
	} else {
		scope = scopeIdFrom(id)
	}

	if current.ClickThrough {
		attrs.ClickThrough = true
	}

	c := generic.AllocAppend(&current.children)
	c.Id = id
	c.scope = scope
	c.Attrs = attrs
	c.parent = current
	current = c

	if builder != nil {
		builder()
	}

	resolveSizeFromInside(c)

	current = c.parent
}

func Element(attrs Attrs) {
	LayoutId(nil, attrs, nil)
}

func ElementId(id any, attrs Attrs) {
	LayoutId(id, attrs, nil)
}

func Nil() {
	LayoutId(nil, Attrs{}, nil)
}

// ModAttrs changes the attributes of the current container. It must run
// before any child is added since children are sized as they close.
func ModAttrs(fns ...func(*Attrs)) {
	if len(current.children) > 0 {
		panic("ATTRS SHOULD BE CHANGED **BEFORE** ADD CHILD ELEMENTS!")
	}
	for _, fn := range fns {
		fn(&current.Attrs)
	}
}
