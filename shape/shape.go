// Package shape implements a closed set of solid shapes: boxes and spheres.
package shape

import "math"

// Shape is either a Box or a Sphere.
type Shape interface {
	Volume() float64
	SurfaceArea() float64
	isShape()
}

// Box is a rectangular cuboid.
type Box struct {
	Width, Length, Depth float64
}

// Sphere is a ball of a given radius.
type Sphere struct {
	Radius float64
}

var (
	_ Shape = Box{}
	_ Shape = Sphere{}
)

func (b Box) Volume() float64 {
	return b.Width * b.Length * b.Depth
}

func (b Box) SurfaceArea() float64 {
	return 2 * (b.Width*b.Length + b.Width*b.Depth + b.Length*b.Depth)
}

func (Box) isShape() {}

func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

func (s Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

func (Sphere) isShape() {}
