package main

import "math"

// Viewport holds the pan/zoom transform between world and screen
// coordinates: screen = world*scale + offset.
type Viewport struct {
	scale   float64
	offset  Point
	minZoom float64
	maxZoom float64

	panning bool
	lastPan Point
}

func NewViewport(cfg *Config) *Viewport {
	return &Viewport{
		scale:   cfg.StartZoom,
		minZoom: cfg.MinZoom,
		maxZoom: cfg.MaxZoom,
	}
}

func (v *Viewport) Scale() float64 { return v.scale }
func (v *Viewport) Offset() Point  { return v.offset }

func (v *Viewport) ToWorld(s Point) Point {
	return Point{(s.X - v.offset.X) / v.scale, (s.Y - v.offset.Y) / v.scale}
}

func (v *Viewport) ToScreen(w Point) Point {
	return Point{w.X*v.scale + v.offset.X, w.Y*v.scale + v.offset.Y}
}

// Zoom scales the view by a fixed factor, zooming in when direction is
// positive. A request that would leave the zoom bounds is rejected and
// leaves the transform untouched. The world point under the anchor
// stays under the anchor afterward.
func (v *Viewport) Zoom(direction int, anchor Point) bool {
	factor := zoomInFactor
	if direction < 0 {
		factor = zoomOutFactor
	}
	newScale := v.scale * factor
	if newScale > v.maxZoom || newScale < v.minZoom {
		return false
	}
	world := v.ToWorld(anchor)
	v.scale = newScale
	v.offset = Point{anchor.X - world.X*newScale, anchor.Y - world.Y*newScale}
	return true
}

// Panning is a pure screen-space scroll: the offset moves by the
// pointer delta since the last update, no world math involved.
func (v *Viewport) BeginPan(s Point) {
	v.panning = true
	v.lastPan = s
}

func (v *Viewport) UpdatePan(s Point) {
	if !v.panning {
		return
	}
	v.offset = v.offset.Add(s.Sub(v.lastPan))
	v.lastPan = s
}

func (v *Viewport) EndPan() { v.panning = false }

func (v *Viewport) Panning() bool { return v.panning }

// PanBy scrolls by a screen-space delta directly, for keyboard panning.
func (v *Viewport) PanBy(d Point) {
	v.offset = v.offset.Add(d)
}

// VisibleRect returns the world rectangle covered by a screen area of
// the given size.
func (v *Viewport) VisibleRect(screenW, screenH float64) Rect {
	return Rect{
		Min: v.ToWorld(Point{0, 0}),
		Max: v.ToWorld(Point{screenW, screenH}),
	}
}

// GridLine is one background grid line in world coordinates. Every
// GridMajorEvery-th line is emphasized.
type GridLine struct {
	From  Point
	To    Point
	Major bool
}

// GridLines computes the background grid for the currently visible
// world rectangle only; lines are never materialized beyond it.
func (v *Viewport) GridLines(screenW, screenH, gridSize float64, majorEvery int) []GridLine {
	visible := v.VisibleRect(screenW, screenH)

	var lines []GridLine
	count := int(math.Floor(visible.Min.X / gridSize))
	for x := float64(count) * gridSize; x < visible.Max.X; x += gridSize {
		lines = append(lines, GridLine{
			From:  Point{x, visible.Min.Y},
			To:    Point{x, visible.Max.Y},
			Major: count%majorEvery == 0,
		})
		count++
	}
	count = int(math.Floor(visible.Min.Y / gridSize))
	for y := float64(count) * gridSize; y < visible.Max.Y; y += gridSize {
		lines = append(lines, GridLine{
			From:  Point{visible.Min.X, y},
			To:    Point{visible.Max.X, y},
			Major: count%majorEvery == 0,
		})
		count++
	}
	return lines
}
