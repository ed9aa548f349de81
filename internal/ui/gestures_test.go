package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		want   GestureType
	}{
		{"tiny move", 10, 5, GestureNone},
		{"left", -80, 10, GestureSwipeLeft},
		{"right", 80, -10, GestureSwipeRight},
		{"up", 5, -70, GestureSwipeUp},
		{"down", -5, 70, GestureSwipeDown},
		{"exact threshold", DefaultSwipeThreshold, 0, GestureSwipeRight},
		{"vertical below threshold", 0, 40, GestureNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySwipe(tt.dx, tt.dy, DefaultSwipeThreshold); got != tt.want {
				t.Errorf("ClassifySwipe(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestSwipeArea_AccumulatesDrag(t *testing.T) {
	var got []GestureType
	area := NewSwipeArea(canvas.NewRectangle(ColorWhite), func(g GestureType) {
		got = append(got, g)
	})

	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: -30}})
	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: -30}})
	area.DragEnd()

	// A short drag after the swipe is not reported
	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 20}})
	area.DragEnd()

	if len(got) != 1 || got[0] != GestureSwipeLeft {
		t.Errorf("Expected one left swipe, got %v", got)
	}
}
