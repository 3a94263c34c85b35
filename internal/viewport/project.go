package viewport

import "metromap/internal/network"

// Layout is the map area the canvas is laid out in, in cells.
type Layout struct {
	W, H int
}

// Origin is the transform origin: the centre of the map area.
func (l Layout) Origin() Vec {
	return Vec{float64(l.W) / 2, float64(l.H) / 2}
}

// Canvas returns the size of the square logical canvas at scale 1, in cells.
// Terminal cells are about twice as tall as wide, so the canvas spans twice as
// many columns as rows.
func (l Layout) Canvas() (cols, rows float64) {
	rows = min(float64(l.H), float64(l.W)/2)
	if rows < 1 {
		rows = 1
	}
	return rows * 2, rows
}

// local places p on the scale-1 canvas centred in the map area.
func (l Layout) local(p network.Point) Vec {
	cols, rows := l.Canvas()
	o := l.Origin()
	return Vec{
		X: o.X - cols/2 + p.X/100*cols,
		Y: o.Y - rows/2 + p.Y/100*rows,
	}
}

// Project maps a canvas position to screen cells: translate by the offset,
// then scale around the origin. The offset is in unscaled cells.
func Project(s State, l Layout, p network.Point) Vec {
	o := l.Origin()
	loc := l.local(p)
	return Vec{
		X: o.X + s.Offset.X + s.Scale*(loc.X-o.X),
		Y: o.Y + s.Offset.Y + s.Scale*(loc.Y-o.Y),
	}
}

// Unproject is the inverse of Project.
func Unproject(s State, l Layout, v Vec) network.Point {
	o := l.Origin()
	cols, rows := l.Canvas()
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	locX := o.X + (v.X-o.X-s.Offset.X)/scale
	locY := o.Y + (v.Y-o.Y-s.Offset.Y)/scale
	return network.Point{
		X: (locX - (o.X - cols/2)) / cols * 100,
		Y: (locY - (o.Y - rows/2)) / rows * 100,
	}
}
