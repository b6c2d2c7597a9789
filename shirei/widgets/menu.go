package widgets

import (
	. "go.hasen.dev/datepicker/shirei"
	. "go.hasen.dev/datepicker/shirei/tw"
)

// frame in which a menu item was last pressed
var menuItemPressedAt int64 = -1

var MenuBG = Vec4{220, 20, 94, 1}

func MenuButton(label string, fn func()) {
	MenuButtonExt(label, ButtonAttrs{}, fn)
}

type menuState struct {
	open   bool
	btnId  any
	menuId any
}

// MenuButtonExt opens a popup menu below the button; fn adds the items. The
// menu closes when an item is pressed or on a click outside of it.
func MenuButtonExt(label string, attrs ButtonAttrs, fn func()) {
	Layout(TW(), func() {
		var state = Use[menuState]("menu-state")
		if ButtonExt(label+" ▾", attrs) {
			state.open = !state.open
		}

		// items run inside the popup host, after this point of the frame
		if state.open && menuItemPressedAt == FrameNumber-1 {
			state.open = false
		}

		state.btnId = GetLastId()

		if state.open {
			menuKey := state.btnId
			Popup(func() {
				LayoutId(popupMenuId{menuKey}, TW(BR(6), BG(0, 0, 10, 0.2)), func() {
					ModAttrs(FloatV(PopupPosition(state.btnId)))

					state.menuId = CurrentId()
					ModAttrs(func(a *Attrs) {
						a.Shadow.Blur = 40
						a.Shadow.Alpha = 0.3
					})
					Layout(TW(MinWidth(100), BR(4), Pad2(6, 0), Gap(2), MaxWidth(600), BGV(MenuBG), BW(1), Bo(0, 0, 10, 0.8), Clip), func() {
						ModAttrs(func(a *Attrs) {
							a.Shadow.Blur = 4
							a.Shadow.Alpha = 0.7
							a.Shadow.Offset[1] = 2
						})
						fn()
					})
				})
			})
		}

		// after the menu so clicks inside it still register
		if ClickedOutside(state.btnId, state.menuId) {
			state.open = false
		}
	})
}

type popupMenuId struct {
	anchor any
}

func MenuSeparator() {
	Layout(TW(Expand, Pad2(4, 10)), func() {
		Element(TW(BG(0, 0, 0, 0.5), MinSize(1, 1), Expand))
		Element(TW(BG(0, 0, 100, 1), MinSize(1, 1), Expand))
	})
}

// MenuItemExt honors Id, Disabled and Primary; Primary marks the item as
// the current choice.
func MenuItemExt(label string, attrs ButtonAttrs) bool {
	var action bool
	LayoutId(attrs.Id, TW(Row, Expand, CA(AlignMiddle), BGV(MenuBG), Pad2(4, 8), Gap(12)), func() {
		if attrs.Disabled {
			ModAttrs(Trans(0.2))
		}

		var bg = Vec4{234, 92, 84, 0}
		if attrs.Primary {
			bg[ALPHA] = 0.4
		}
		if !attrs.Disabled {
			if IsHovered() {
				bg[ALPHA] = 0.8
			}
			action = PressAction()
		}
		Element(TW(Float(0, 0), BR(2), MinSizeV(GetResolvedSize()), BGV(bg)))

		Label(label, Sz(12), Clr(0, 0, 10, 1))
	})
	if action {
		menuItemPressedAt = FrameNumber
	}
	return action
}
