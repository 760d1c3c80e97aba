package geoslice

import "math"

// Epsilon is the default geometric tolerance ("CLOSEENOUGH") used for point
// equality, containment, and degenerate-intersection detection throughout
// the package. Routines that accept a PathOptions use its Epsilon field
// instead; this constant is the default that PathOptions.Epsilon is seeded
// with.
const Epsilon = 1e-5

// Point2 is a point in the XY slicing plane, in millimetres.
type Point2 struct {
	X, Y float64
}

// EqualWithin reports whether p and q are within eps of each other on both axes.
func (p Point2) EqualWithin(q Point2, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Equal reports whether p and q are within Epsilon of each other.
func (p Point2) Equal(q Point2) bool {
	return p.EqualWithin(q, Epsilon)
}

// DistanceTo returns the Euclidean distance from p to q.
func (p Point2) DistanceTo(q Point2) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return math.Hypot(dx, dy)
}

// AngleTo returns the angle in [-pi, pi] of the ray from p to q.
func (p Point2) AngleTo(q Point2) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s about the origin.
func (p Point2) Scale(s float64) Point2 { return Point2{p.X * s, p.Y * s} }

// ScaleXY returns p scaled independently on each axis about the origin.
func (p Point2) ScaleXY(sx, sy float64) Point2 { return Point2{p.X * sx, p.Y * sy} }

// PolarOffset returns p moved by dist along direction angle (radians).
func (p Point2) PolarOffset(angle, dist float64) Point2 {
	return Point2{p.X + math.Cos(angle)*dist, p.Y + math.Sin(angle)*dist}
}

// Point3 is a point in model space, in millimetres, used only by Mesh3d and slicing.
type Point3 struct {
	X, Y, Z float64
}

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p-q.
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// XY projects p onto the slicing plane, discarding Z.
func (p Point3) XY() Point2 { return Point2{p.X, p.Y} }

// Lerp linearly interpolates between p and q at parameter t.
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Bounds is an axis-aligned bounding rectangle. The zero value is not an
// empty bounds; use NewEmptyBounds for a bounds safe to Expand into.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewEmptyBounds returns a Bounds with min=+Inf and max=-Inf on each axis,
// so that expanding it with any point or bounds yields exactly that point
// or bounds.
func NewEmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether b has never been expanded.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Expand grows b, if necessary, to contain p. It returns the updated bounds.
func (b Bounds) Expand(p Point2) Bounds {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// ExpandBounds grows b, if necessary, to contain other.
func (b Bounds) ExpandBounds(other Bounds) Bounds {
	if other.IsEmpty() {
		return b
	}
	b = b.Expand(Point2{other.MinX, other.MinY})
	b = b.Expand(Point2{other.MaxX, other.MaxY})
	return b
}

// Overlaps reports whether b and other share any area, including touching edges.
func (b Bounds) Overlaps(other Bounds) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// Contains reports whether p lies within b (inclusive of the boundary).
func (b Bounds) Contains(p Point2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Transform is a 2D affine transform expressed as translate-then-scale
// about a pivot point, sufficient for the slicer's needs (mesh
// repositioning and path preview scaling). Rotation is applied separately
// by Mesh3d.RotateX/Y/Z, which operate in 3D.
type Transform struct {
	Pivot  Point2
	Scale  Point2
	Offset Point2
}

// IdentityTransform returns a Transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: Point2{1, 1}}
}

// Apply maps p through t: translate to the pivot's frame, scale, translate back, then offset.
func (t Transform) Apply(p Point2) Point2 {
	rel := p.Sub(t.Pivot)
	rel = rel.ScaleXY(t.Scale.X, t.Scale.Y)
	return rel.Add(t.Pivot).Add(t.Offset)
}
