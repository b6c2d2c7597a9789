package shirei

// Layout happens in three passes over the container tree:
//
//  1. sizes from the inside, bottom-up while the tree is being built
//  2. sizes from the outside, top-down: cross axis expansion and flex growth
//  3. origins, top-down, applying alignment
//
// then screen rects are clipped and the tree is flattened into surfaces.

func performLayout(root *Container) {
	resolveSizesFromOutside(root)
	resolveOrigins(root)
	applyClipping(root, Rect{Size: WindowSize})
	beginRenderToSurfaces(root)
}

// called when a container closes; children sizes are already resolved
func resolveSizeFromInside(c *Container) {
	mainAxis, crossAxis := MainCrossAxes(c.Row)

	var content Vec2
	var placed int
	for i := range c.children {
		child := &c.children[i]
		if child.Floats {
			continue
		}
		if placed > 0 {
			content[mainAxis] += c.Gap
		}
		content[mainAxis] += child.resolvedSize[mainAxis]
		content[crossAxis] = max(content[crossAxis], child.resolvedSize[crossAxis])
		placed++
	}
	c.contentSize = content

	var size Vec2
	if !c.ExtrinsicSize {
		size = content
	}
	size = Vec2Add(size, PadSize(c.Padding))

	for axis := range size {
		size[axis] = max(size[axis], c.MinSize[axis])
		if c.MaxSize[axis] > 0 {
			size[axis] = min(size[axis], c.MaxSize[axis])
		}
	}

	c.resolvedSize = size
}

func resolveSizesFromOutside(c *Container) {
	mainAxis, crossAxis := MainCrossAxes(c.Row)

	available := Vec2Sub(c.resolvedSize, PadSize(c.Padding))
	room := available[mainAxis] - c.contentSize[mainAxis]

	var growthRequest f32
	for i := range c.children {
		child := &c.children[i]
		if child.Floats {
			continue
		}
		growthRequest += child.Grow
		if child.ExpandAcross {
			child.resolvedSize[crossAxis] = available[crossAxis]
		}
	}

	if room > 0 && growthRequest > 0 {
		factor := room / growthRequest
		for i := range c.children {
			child := &c.children[i]
			if child.Floats || child.Grow == 0 {
				continue
			}
			amount := child.Grow * factor
			child.resolvedSize[mainAxis] += amount
			c.contentSize[mainAxis] += amount
		}
	}

	for i := range c.children {
		resolveSizesFromOutside(&c.children[i])
	}
}

func alignOffset(align Alignment, free f32) f32 {
	switch align {
	case AlignMiddle:
		return free / 2
	case AlignEnd:
		return free
	}
	return 0
}

func resolveOrigins(c *Container) {
	mainAxis, crossAxis := MainCrossAxes(c.Row)

	available := Vec2Sub(c.resolvedSize, PadSize(c.Padding))

	var next Vec2
	next[0] = c.Padding[PAD_LEFT]
	next[1] = c.Padding[PAD_TOP]
	next[mainAxis] += alignOffset(c.MainAlign, available[mainAxis]-c.contentSize[mainAxis])

	for i := range c.children {
		child := &c.children[i]
		if child.Floats {
			child.relativeOrigin = child.Float
		} else {
			child.relativeOrigin = next
			align := c.CrossAlign
			if child.SelfAlign != AlignUnset {
				align = child.SelfAlign
			}
			child.relativeOrigin[crossAxis] += alignOffset(align, available[crossAxis]-child.resolvedSize[crossAxis])
			next[mainAxis] += child.resolvedSize[mainAxis] + c.Gap
		}
		child.resolvedOrigin = Vec2Add(c.resolvedOrigin, child.relativeOrigin)
		resolveOrigins(child)
	}

	var parentId any
	if c.parent != nil {
		parentId = c.parent.Id
	}
	renderDataNext[c.Id] = RenderData{
		Attrs:          c.Attrs,
		parentId:       parentId,
		ResolvedSize:   c.resolvedSize,
		RelativeOrigin: c.relativeOrigin,
		ResolvedOrigin: c.resolvedOrigin,
		contentSize:    c.contentSize,
	}
}

// applyClipping computes the visible part of every container; it does not
// change what gets drawn.
func applyClipping(c *Container, clipRect Rect) {
	c.screenRect = RectIntersect(clipRect, Rect{Origin: c.resolvedOrigin, Size: c.resolvedSize})

	rd := renderDataNext[c.Id]
	rd.screenRect = c.screenRect
	renderDataNext[c.Id] = rd

	childClip := clipRect
	if c.Clip {
		childClip = c.screenRect
	}
	for i := range c.children {
		applyClipping(&c.children[i], childClip)
	}
}
