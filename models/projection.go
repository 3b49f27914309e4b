package models

import "iter"

// Point2 is one rendered vertex of a 2D layout.
type Point2 struct {
	Pos   Vec2
	Color Color
	Size  float64
}

// Line2 is one rendered edge of a 2D layout.
type Line2 struct {
	From, To Vec2
	Color    Color
}

// Point3 is one rendered vertex of a 3D layout.
type Point3 struct {
	Pos   Vec3
	Color Color
	Size  float64
}

// Line3 is one rendered edge of a 3D layout.
type Line3 struct {
	From, To Vec3
	Color    Color
}

// PointSource2 is implemented by layouts that can project their vertices
// into 2D. The sequence is regenerated from live state on every iteration;
// callers must not hold it across mutations.
type PointSource2 interface {
	Points2() iter.Seq[Point2]
}

// LineSource2 is implemented by layouts that can project their edges into 2D.
type LineSource2 interface {
	Lines2() iter.Seq[Line2]
}

// PointSource3 is the 3D counterpart of PointSource2.
type PointSource3 interface {
	Points3() iter.Seq[Point3]
}

// LineSource3 is the 3D counterpart of LineSource2.
type LineSource3 interface {
	Lines3() iter.Seq[Line3]
}

// Scene2 is the full read-only projection of a 2D layout, the contract a
// renderer depends on.
type Scene2 interface {
	PointSource2
	LineSource2
}

// Scene3 is the full read-only projection of a 3D layout.
type Scene3 interface {
	PointSource3
	LineSource3
}
