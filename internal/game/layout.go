package game

import "fmt"

// Point is a screen-space position.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned screen-space rectangle.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether (px,py) lies inside r. Edges count as inside.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// GridSpec describes a card grid: fixed card size, row-major order, fixed gaps.
type GridSpec struct {
	Origin  Point
	CardW   float64
	CardH   float64
	Count   int
	Columns int
	GapH    float64 // between columns
	GapV    float64 // between rows
}

// LayoutGrid places Count cards row by row, Columns per row. The last row
// may be partially filled.
func LayoutGrid(s GridSpec) ([]Rect, error) {
	if s.Columns < 1 {
		return nil, fmt.Errorf("%w: columns %d must be >= 1", ErrInvalidConfig, s.Columns)
	}
	if s.Count < 0 {
		return nil, fmt.Errorf("%w: card count %d must not be negative", ErrInvalidConfig, s.Count)
	}
	rects := make([]Rect, s.Count)
	for i := range rects {
		row := i / s.Columns
		col := i % s.Columns
		rects[i] = Rect{
			X: s.Origin.X + float64(col)*(s.CardW+s.GapH),
			Y: s.Origin.Y + float64(row)*(s.CardH+s.GapV),
			W: s.CardW,
			H: s.CardH,
		}
	}
	return rects, nil
}
