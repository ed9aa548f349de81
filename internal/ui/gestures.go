package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// DefaultSwipeThreshold is the travel, in pixels, a drag needs along its
// dominant axis to count as a swipe.
const DefaultSwipeThreshold float32 = 50.0

// ClassifySwipe turns the total travel of a drag into a gesture.
func ClassifySwipe(dx, dy, threshold float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx >= absDy {
		if absDx < threshold {
			return GestureNone
		}
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}

	if absDy < threshold {
		return GestureNone
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// GestureHandler accumulates drag events and reports a swipe when the drag ends
type GestureHandler struct {
	onGesture      func(GestureType)
	swipeThreshold float32

	dx, dy float32
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:      onGesture,
		swipeThreshold: DefaultSwipeThreshold,
	}
}

// Dragged records the movement of one drag step
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	gh.dx += event.Dragged.DX
	gh.dy += event.Dragged.DY
}

// DragEnd classifies the finished drag and resets tracking
func (gh *GestureHandler) DragEnd() {
	gesture := ClassifySwipe(gh.dx, gh.dy, gh.swipeThreshold)
	gh.dx, gh.dy = 0, 0

	if gesture != GestureNone && gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// SwipeArea is a container widget that reports swipes made across its content
type SwipeArea struct {
	widget.BaseWidget
	content fyne.CanvasObject
	handler *GestureHandler
}

var _ fyne.Draggable = (*SwipeArea)(nil)

// NewSwipeArea wraps content and calls onGesture for every recognised swipe
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	s := &SwipeArea{
		content: content,
		handler: NewGestureHandler(onGesture),
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// Dragged implements fyne.Draggable
func (s *SwipeArea) Dragged(event *fyne.DragEvent) {
	s.handler.Dragged(event)
}

// DragEnd implements fyne.Draggable
func (s *SwipeArea) DragEnd() {
	s.handler.DragEnd()
}
