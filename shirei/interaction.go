package shirei

import (
	"slices"

	g "go.hasen.dev/generic"
)

// Hover state is computed from the previous frame: the topmost hoverable
// under the mouse plus every ancestor that is not click-through. The first
// entry of hoverList is the directly hovered element.
var hoverList []any

var active any // being engaged with the mouse

func updateHovered() {
	g.ResetSlice(&hoverList)
	for _, h := range slices.Backward(hoverables) {
		if !RectContainsPoint(h.Rect, InputState.MousePoint) {
			continue
		}
		for id := h.Id; id != nil; id = renderData[id].parentId {
			if !renderData[id].ClickThrough {
				g.Append(&hoverList, id)
			}
		}
		break
	}
}

func IsHovered() bool {
	return slices.Contains(hoverList, current.Id)
}

func IdIsHovered(id any) bool {
	return slices.Contains(hoverList, id)
}

// ClickedOutside reports a mouse press that landed on none of the given ids
// (or their descendants).
func ClickedOutside(ids ...any) bool {
	if FrameInput.Mouse != MouseClick {
		return false
	}
	for _, id := range ids {
		if id != nil && IdIsHovered(id) {
			return false
		}
	}
	return true
}

func SetActive() {
	active = current.Id
}

func UnsetActive() {
	active = nil
}

func IsActive() bool {
	return active != nil && active == current.Id
}

// PressAction makes the current container behave like a button: it becomes
// active on press and reports true when the mouse is released over it.
func PressAction() bool {
	var action bool
	if IsHovered() && FrameInput.Mouse == MouseClick {
		SetActive()
	}
	if IsActive() && FrameInput.Mouse == MouseRelease {
		UnsetActive()
		action = IsHovered()
	}
	if action {
		RequestNextFrame()
	}
	return action
}

func CurrentId() any {
	return current.Id
}

func GetLastId() any {
	if len(current.children) == 0 {
		return nil
	}
	return g.Last(current.children).Id
}

func GetResolvedRectOf(id any) Rect {
	rd := renderData[id]
	return Rect{Origin: rd.ResolvedOrigin, Size: rd.ResolvedSize}
}

func GetResolvedSize() Vec2 {
	return renderData[current.Id].ResolvedSize
}
