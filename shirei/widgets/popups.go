package widgets

import (
	g "go.hasen.dev/generic"

	. "go.hasen.dev/datepicker/shirei"
)

// Popups are drawn after the rest of the frame so they sit on top of it.
// Their content should float; PopupPosition gives window coordinates as long
// as PopupsHost is called directly from the root frame function.

var popups = make([]func(), 0, 128)
var popupsFrameNumber int64

func Popup(fn func()) {
	if FrameNumber > popupsFrameNumber+1 {
		// PopupsHost is not being called; don't queue forever
		return
	}
	popups = append(popups, fn)
}

func PopupsHost() {
	popupsFrameNumber = FrameNumber
	// popups may open more popups while running
	for i := 0; i < len(popups); i++ {
		popups[i]()
	}
	g.ResetSlice(&popups)
}

// margin kept between a popup and its anchor or the window edge
const popupMargin = 4

// PopupPosition places the current container below the anchor, shifted to
// stay inside the window.
func PopupPosition(anchorId any) Vec2 {
	anchor := GetResolvedRectOf(anchorId)
	return KeepOnScreen(Vec2{anchor.Origin[0], anchor.Origin[1] + anchor.Size[1] + popupMargin})
}

// KeepOnScreen moves pos so the current container, at the size it had in the
// previous frame, fits inside the window. The top left corner wins when the
// container is larger than the window.
func KeepOnScreen(pos Vec2) Vec2 {
	size := GetResolvedSize()
	if pos[0]+size[0] > WindowSize[0] {
		pos[0] = WindowSize[0] - size[0] - popupMargin
	}
	if pos[1]+size[1] > WindowSize[1] {
		pos[1] = WindowSize[1] - size[1] - popupMargin
	}
	pos[0] = max(0, pos[0])
	pos[1] = max(0, pos[1])
	return pos
}
