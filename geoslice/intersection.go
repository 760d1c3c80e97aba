package geoslice

// IntersectionKind classifies the result of intersecting two segments or lines.
type IntersectionKind uint8

const (
	// NoIntersection means the segments/lines do not meet.
	NoIntersection IntersectionKind = iota
	// PointIntersection means the segments/lines meet at a single point, held in P1.
	PointIntersection
	// SegmentOverlap means the segments are collinear and overlap along a
	// sub-segment, held in P1..P2 (ordered along the shared direction).
	SegmentOverlap
)

// Intersection is the typed result of intersecting two segments, per spec §3.
type Intersection struct {
	Kind IntersectionKind
	P1   Point2
	P2   Point2

	// SegmentIndex identifies which segment of a path produced this result,
	// populated by Path.IntersectionsWith; zero otherwise.
	SegmentIndex int
}

// None reports whether the intersection is the empty (NoIntersection) kind.
func (in Intersection) None() bool { return in.Kind == NoIntersection }
