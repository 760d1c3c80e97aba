package geoslice

import "errors"

var (
	// ErrInvalidZ indicates a slicing Z value that is NaN or infinite.
	ErrInvalidZ = errors.New("geoslice: invalid slicing Z plane")

	// ErrInvalidDensity indicates an infill density outside (0, 1].
	ErrInvalidDensity = errors.New("geoslice: infill density must be in (0, 1]")

	// ErrInvalidExtrusionWidth indicates a non-positive extrusion width.
	ErrInvalidExtrusionWidth = errors.New("geoslice: extrusion width must be positive")

	// ErrInvalidOffset indicates a negative offset distance.
	ErrInvalidOffset = errors.New("geoslice: offset distance must be non-negative")

	// ErrInvalidEpsilon indicates a non-positive tolerance value.
	ErrInvalidEpsilon = errors.New("geoslice: epsilon must be positive")

	// ErrEmptyMesh indicates an operation that requires triangles was given none.
	ErrEmptyMesh = errors.New("geoslice: mesh has no triangles")
)
