package main

import "math"

// Point is a position in either world or screen coordinates; the
// viewport converts between the two.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Manhattan returns |dx| + |dy| between two points. Port hit tests use
// Manhattan distance rather than Euclidean, matching the square-ish
// shape of a terminal cell.
func Manhattan(p, q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

type Rect struct {
	Min Point
	Max Point
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Point{x, y}, Max: Point{x + w, y + h}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// cubicPoint evaluates a cubic Bézier at t in [0,1].
func cubicPoint(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*c1.X + b2*c2.X + b3*p1.X,
		Y: b0*p0.Y + b1*c1.Y + b2*c2.Y + b3*p1.Y,
	}
}
