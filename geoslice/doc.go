// Package geoslice implements the 2D computational-geometry kernel of a
// 3D-printing slicer: paths, simple and compound planar regions, their
// boolean combination (union, difference, intersection), offsetting for
// shells and perimeters, containment tests, segment clipping against
// regions for infill, slicing of a triangle mesh into a compound region at
// a given Z, and emission of SVG path data for preview.
//
// # Overview
//
// The data flow is Mesh3d (+ Z) -> Lines (segments cut from straddling
// triangles) -> Paths (assembled by greedy endpoint-linking) -> Simple
// Regions (classified by nesting) -> CompoundRegion -> boolean ops /
// offsetting / infill / SVG emission.
//
// # Error Handling
//
// Internal geometry routines never fail: degenerate input (zero-length
// segments, unclosable paths, stalled boolean assembly) is handled by a
// well-defined degraded-output policy documented on each routine, never by
// a returned error. Errors are reserved for the thin validation layer
// around the public entry points that accept caller-supplied scalars:
// Mesh3d.RegionForSliceAtZ returns ErrInvalidZ and ErrEmptyMesh, and
// CompoundRegion.InfillPathsForRegionWithDensity returns ErrInvalidDensity
// and ErrInvalidExtrusionWidth. Offset distances and tolerances are not
// validated: Inset and LeftOffset accept a negative distance (which
// expands the path), and a non-positive PathOptions.Epsilon falls back to
// Epsilon, so no function returns ErrInvalidOffset or ErrInvalidEpsilon.
//
// # Coordinate System and Tolerance
//
// All coordinates are float64 millimetres. Point equality, containment,
// and intersection classification all use a single tolerance (Epsilon,
// "CLOSEENOUGH" in the original design notes), overridable per call via
// PathOptions for callers who need a different working tolerance.
package geoslice
