// Package giobackend runs a shirei frame function inside a gio window.
package giobackend

import (
	"image"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"go.hasen.dev/generic"

	"go.hasen.dev/datepicker/logger"
	"go.hasen.dev/datepicker/shirei"
)

var window *app.Window

func SetupWindow(title string, width int, height int) {
	window = new(app.Window)
	window.Option(app.Title(title))
	window.Option(app.Size(unit.Dp(width), unit.Dp(height)))
}

var frameMacro op.CallOp

// Run takes over the main goroutine and never returns; the process exits
// when the window is closed.
func Run(frameFn shirei.FrameFn) {
	shirei.InitFontSubsystem()
	go loop(frameFn)
	app.Main()
}

func loop(frameFn shirei.FrameFn) {
	log := shirei.Logger().With("gio")

	// cap the frame rate so mouse movement and resizing don't spin the cpu
	const fps = 60
	const slowFrame = 2 * time.Second / fps
	frameTicker := time.NewTicker(time.Second / fps)

	// a picker's "today" can change while the window sits idle
	slowTicker := time.NewTicker(time.Second)
	go func() {
		for range slowTicker.C {
			window.Invalidate()
		}
	}()

	var lastEventTime time.Time
	var tag = new(int)

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			code := 0
			if e.Err != nil {
				log.Errorf("window closed: %s", e.Err)
				code = 1
			}
			_ = log.Sync()
			os.Exit(code)

		case app.FrameEvent:
			<-frameTicker.C

			frameStart := time.Now()
			dpi = e.Metric.PxPerDp
			ctx := app.NewContext(new(op.Ops), e)
			shirei.WindowSize = shirei.Vec2Mul(imgVec2(e.Size), 1/dpi)

			// no pointer events from outside the window
			clip.Rect{Max: e.Size}.Push(ctx.Ops)

			ctx.Execute(key.FocusCmd{Tag: tag})
			event.Op(ctx.Ops, tag)

			if n := readEvents(ctx, tag, log); n > 0 {
				lastEventTime = frameStart
			}

			frameData := shirei.RunFrameFn(frameFn)
			if frameData.FrameHasChanges {
				frameMacro = renderSurfaces(frameData.Surfaces)
			}
			frameMacro.Add(ctx.Ops)
			e.Frame(ctx.Ops)

			shirei.TotalFrameTime = time.Since(frameStart)
			if shirei.TotalFrameTime > slowFrame {
				log.Debugf("slow frame: layout %s, total %s", shirei.LayoutTime, shirei.TotalFrameTime)
			}

			if frameData.NextFrameRequested || time.Since(lastEventTime) < time.Second {
				window.Invalidate()
			}
		}
	}
}

// readEvents moves the pending gio events into shirei's input state and
// returns how many there were.
func readEvents(ctx app.Context, tag event.Tag, log logger.Logger) int {
	const mods = key.ModSuper | key.ModAlt | key.ModCommand | key.ModShift | key.ModCtrl
	filters := []event.Filter{
		pointer.Filter{
			Target:  tag,
			Kinds:   pointer.Press | pointer.Release | pointer.Move | pointer.Scroll | pointer.Drag,
			ScrollX: pointer.ScrollRange{Min: -100, Max: 100},
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		},
		key.Filter{Focus: tag, Optional: mods},
		// tab needs its own filter
		key.Filter{Focus: tag, Optional: mods, Name: key.NameTab},
		key.FocusFilter{Target: tag},
	}

	var count int
	for {
		ev, ok := ctx.Event(filters...)
		if !ok {
			return count
		}
		count++
		switch ev := ev.(type) {
		case pointer.Event:
			onPointer(ev)
		case key.Event:
			onKey(ev)
		case key.FocusEvent, key.EditEvent, key.SnippetEvent, key.SelectionEvent:
		default:
			log.Debugf("unhandled event %#v", ev)
		}
	}
}

func onPointer(e pointer.Event) {
	prev := shirei.InputState.MousePoint
	shirei.InputState.MousePoint = shirei.Vec2Mul(f32Vec2(e.Position), 1/dpi)
	// shirei's button values follow gio's
	shirei.InputState.MouseButton = shirei.MouseButton(e.Buttons)
	shirei.FrameInput.Motion = shirei.Vec2Add(shirei.FrameInput.Motion, shirei.Vec2Sub(shirei.InputState.MousePoint, prev))
	shirei.FrameInput.Scroll = f32Vec2(e.Scroll)
	switch e.Kind {
	case pointer.Press:
		shirei.FrameInput.Mouse = shirei.MouseClick
	case pointer.Release:
		shirei.FrameInput.Mouse = shirei.MouseRelease
	}
}

func onKey(e key.Event) {
	shirei.InputState.Modifiers = shirei.Modifiers(e.Modifiers)
	code := mapKeyCode(e.Name)
	if e.State == key.Press {
		shirei.FrameInput.Key = code
	}
	if code == shirei.KeyCodeNone {
		return
	}
	switch e.State {
	case key.Press:
		generic.SliceAddUniq(&shirei.InputState.DownKeys, code)
	case key.Release:
		generic.SliceRemove(&shirei.InputState.DownKeys, code)
	}
}

func imgPoint(v shirei.Vec2) image.Point {
	return image.Point{X: int(v[0]), Y: int(v[1])}
}

func f32Point(v shirei.Vec2) f32.Point {
	return f32.Pt(v[0], v[1])
}

func f32Vec2(p f32.Point) shirei.Vec2 {
	return shirei.Vec2{p.X, p.Y}
}

func imgVec2(p image.Point) shirei.Vec2 {
	return shirei.Vec2{float32(p.X), float32(p.Y)}
}
