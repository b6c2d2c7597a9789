package shirei

import (
	"sync/atomic"
	"time"

	g "go.hasen.dev/generic"
)

type FrameFn func()

// set from the file watcher goroutine too
var requested atomic.Bool

// RequestNextFrame asks the backend to run another frame even when nothing
// changed on screen, e.g. after a watched file was modified.
func RequestNextFrame() {
	requested.Store(true)
}

type MouseButton uint8

// mirrors the values in gioui
const (
	MousePrimary MouseButton = iota
	MouseSecondary
	MouseTertiary
)

type MouseAction uint8

const (
	MouseClick MouseAction = 1 + iota
	MouseRelease
)

type Modifiers uint32

// mirrors the values in gioui
const (
	ModCtrl Modifiers = 1 << iota
	ModCmd
	ModShift
	ModAlt
	ModSuper
)

const ModNone Modifiers = 0

// persistent input state
var InputState struct {
	MousePoint  Vec2
	MouseButton MouseButton

	DownKeys []KeyCode

	Modifiers Modifiers
}

// transient input state, reset after every frame
var FrameInput struct {
	Mouse  MouseAction
	Motion Vec2
	Scroll Vec2

	Key KeyCode
}

// set by the backend
var WindowSize Vec2

// incremented at the start of every frame
var FrameNumber int64

var frameStart = time.Now()

var LayoutTime time.Duration
var TotalFrameTime time.Duration

type FrameOutputData struct {
	Surfaces []Surface

	NextFrameRequested bool
	FrameHasChanges    bool
}

type rootId int

// RunFrameFn builds the UI by calling frameFn, lays it out, and returns the
// surfaces to draw. It is called by the backend once per frame.
func RunFrameFn(frameFn FrameFn) FrameOutputData {
	frameStart = time.Now()
	FrameNumber++

	updateHovered()

	g.ResetSlice(&surfaces)

	root := new(Container)
	root.Id = rootId(0)
	root.scope = scopeIdFrom(root.Id)
	root.MinSize = WindowSize
	root.MaxSize = WindowSize
	root.Clip = true
	current = root

	frameFn()

	resolveSizeFromInside(root)
	performLayout(root)

	g.Reset(&FrameInput)

	var output FrameOutputData
	output.Surfaces = surfaces

	newHash := computeSurfacesHash(surfaces)
	output.FrameHasChanges = newHash != surfaceHash
	output.NextFrameRequested = requested.Swap(false) || output.FrameHasChanges
	surfaceHash = newHash

	renderData = renderDataNext
	renderDataNext = make(map[any]RenderData, len(renderData))

	// hooks not used this frame are dropped
	hooksMap = hooksMapNext
	hooksMapNext = make(map[HookEntryKey]any, len(hooksMap))

	LayoutTime = time.Since(frameStart)

	return output
}
