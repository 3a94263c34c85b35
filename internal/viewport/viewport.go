// Package viewport owns the pan/zoom state of one map viewer and turns
// pointer and wheel gestures into it.
package viewport

import "go.uber.org/zap"

const (
	MinScale    = 0.5
	MaxScale    = 4.0
	WheelFactor = 0.001
	ZoomStep    = 0.5
)

// Vec is a screen-space vector in cells.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// State is the full interaction state of a viewer. Offset is unbounded; Scale
// always lies in [MinScale, MaxScale].
type State struct {
	Scale    float64
	Offset   Vec
	Dragging bool
	// Anchor is pointer minus offset at drag start.
	Anchor Vec
}

// Home is the canonical view: unit scale, no offset, not dragging.
func Home() State {
	return State{Scale: 1}
}

// Clamp limits s to the valid zoom range.
func Clamp(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// Engine mutates State only through the gesture operations below.
type Engine struct {
	s State
}

// New returns an engine at the home view.
func New() *Engine {
	return &Engine{s: Home()}
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.s
}

// OnWheel zooms by -deltaY*WheelFactor around the fixed container origin.
func (e *Engine) OnWheel(deltaY float64) {
	e.s.Scale = Clamp(e.s.Scale - deltaY*WheelFactor)
}

// OnDragStart begins a pan at pointer p.
func (e *Engine) OnDragStart(p Vec) {
	e.s.Dragging = true
	e.s.Anchor = p.Sub(e.s.Offset)
}

// OnDragMove recomputes the offset from the drag anchor. No-op unless dragging.
func (e *Engine) OnDragMove(p Vec) {
	if !e.s.Dragging {
		return
	}
	e.s.Offset = p.Sub(e.s.Anchor)
}

// OnDragEnd stops panning. Called on release and when the pointer leaves the viewer.
func (e *Engine) OnDragEnd() {
	e.s.Dragging = false
}

// ZoomIn steps the scale up by ZoomStep.
func (e *Engine) ZoomIn() {
	e.s.Scale = Clamp(e.s.Scale + ZoomStep)
}

// ZoomOut steps the scale down by ZoomStep.
func (e *Engine) ZoomOut() {
	e.s.Scale = Clamp(e.s.Scale - ZoomStep)
}

// Recenter returns to the home scale and offset.
func (e *Engine) Recenter() {
	e.s.Scale = 1
	e.s.Offset = Vec{}
}

// OnNetworkChange resets the view unconditionally.
func (e *Engine) OnNetworkChange() {
	zap.L().Debug("viewport reset on network change",
		zap.Float64("scale", e.s.Scale),
		zap.Float64("offset_x", e.s.Offset.X),
		zap.Float64("offset_y", e.s.Offset.Y),
	)
	e.s = Home()
}
