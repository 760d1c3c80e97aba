package geoslice

import "math"

// Classification is the inside/outside/shared lattice used to tag a
// segment during boolean assembly (spec §4.2,
// tag_segments_relative_to_closed_path). It is modeled as its own small
// enum, independent of the Used flag, per the design notes in spec §9
// ("do not preserve the overloaded-flag pattern").
type Classification uint8

const (
	// Unclassified is the baseline value set by Path.Untag, before any
	// tagging pass has run against a reference path. It composes with a
	// new observation the same way Outside does.
	Unclassified Classification = iota
	Inside
	Outside
	Shared
	Unshared
)

func (c Classification) String() string {
	switch c {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case Shared:
		return "shared"
	case Unshared:
		return "unshared"
	default:
		return "unclassified"
	}
}

// Segment is a directed line segment with per-segment attributes, plus the
// two bookkeeping fields used during boolean assembly: Used (has this
// segment been consumed by assemble_tagged_paths) and Class (its current
// inside/outside/shared/unshared tag). Equality (Equal) is order-insensitive;
// Used and Class are not part of that comparison, since they're transient
// classification state rather than geometric identity.
type Segment struct {
	Start, End Point2

	Temperature    float64
	ExtrusionWidth float64

	Used  bool
	Class Classification
}

// NewSegment returns a Segment from start to end with zeroed attributes.
func NewSegment(start, end Point2) Segment {
	return Segment{Start: start, End: end}
}

// Equal reports whether s and other describe the same segment, in either
// direction (spec §8 property 1: a segment equals its own reversal).
func (s Segment) Equal(other Segment) bool {
	return (s.Start.Equal(other.Start) && s.End.Equal(other.End)) ||
		(s.Start.Equal(other.End) && s.End.Equal(other.Start))
}

// HasEndpoint reports whether p coincides with either endpoint of s.
func (s Segment) HasEndpoint(p Point2) bool {
	return p.Equal(s.Start) || p.Equal(s.End)
}

// Reversed returns s with its endpoints swapped; attributes are carried over unchanged.
func (s Segment) Reversed() Segment {
	s.Start, s.End = s.End, s.Start
	return s
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Angle returns the direction of s, from Start to End, in [-pi, pi].
func (s Segment) Angle() float64 {
	return s.Start.AngleTo(s.End)
}

// AngleDelta returns the signed angle, in (-pi, pi], from s's direction to other's direction.
func (s Segment) AngleDelta(other Segment) float64 {
	delta := other.Angle() - s.Angle()
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	return delta
}

// Translate returns s shifted by d.
func (s Segment) Translate(d Point2) Segment {
	s.Start, s.End = s.Start.Add(d), s.End.Add(d)
	return s
}

// Scale returns s scaled by factor about the origin.
func (s Segment) Scale(factor float64) Segment {
	s.Start, s.End = s.Start.Scale(factor), s.End.Scale(factor)
	return s
}

// ScaleAboutPoint returns s scaled by factor about center.
func (s Segment) ScaleAboutPoint(center Point2, factor float64) Segment {
	s.Start = center.Add(s.Start.Sub(center).Scale(factor))
	s.End = center.Add(s.End.Sub(center).Scale(factor))
	return s
}

// Transform returns s mapped through t.
func (s Segment) Transform(t Transform) Segment {
	s.Start, s.End = t.Apply(s.Start), t.Apply(s.End)
	return s
}

// Direction returns the unit vector from Start to End, or the zero vector
// for a degenerate (zero-length) segment.
func (s Segment) Direction() Point2 {
	l := s.Length()
	if l == 0 {
		return Point2{}
	}
	d := s.End.Sub(s.Start)
	return Point2{d.X / l, d.Y / l}
}

// ContainsWithin reports whether p lies on s, within eps, using the segment's
// bounding extent to reject points on the infinite line but outside [0,1].
func (s Segment) ContainsWithin(p Point2, eps float64) bool {
	if s.minimumExtendedLineDistance(p) > eps {
		return false
	}
	minX, maxX := minMax(s.Start.X, s.End.X)
	minY, maxY := minMax(s.Start.Y, s.End.Y)
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}

// Contains reports whether p lies on s within the default Epsilon.
func (s Segment) Contains(p Point2) bool {
	return s.ContainsWithin(p, Epsilon)
}

// ClosestPointOnSegment returns the point of s nearest to p.
func (s Segment) ClosestPointOnSegment(p Point2) Point2 {
	d := s.End.Sub(s.Start)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return s.Start
	}
	t := ((p.X-s.Start.X)*d.X + (p.Y-s.Start.Y)*d.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point2{s.Start.X + t*d.X, s.Start.Y + t*d.Y}
}

// ClosestPointOnLine returns the point of the infinite line through s nearest to p.
func (s Segment) ClosestPointOnLine(p Point2) Point2 {
	d := s.End.Sub(s.Start)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return s.Start
	}
	t := ((p.X-s.Start.X)*d.X + (p.Y-s.Start.Y)*d.Y) / lenSq
	return Point2{s.Start.X + t*d.X, s.Start.Y + t*d.Y}
}

// MinimumSegmentDistance returns the distance from p to the closest point on s.
func (s Segment) MinimumSegmentDistance(p Point2) float64 {
	return p.DistanceTo(s.ClosestPointOnSegment(p))
}

// MinimumExtendedLineDistance returns the distance from p to the infinite line through s.
func (s Segment) MinimumExtendedLineDistance(p Point2) float64 {
	return s.minimumExtendedLineDistance(p)
}

func (s Segment) minimumExtendedLineDistance(p Point2) float64 {
	return p.DistanceTo(s.ClosestPointOnLine(p))
}

// LeftOffset returns s translated perpendicular-left of its own direction by d.
func (s Segment) LeftOffset(d float64) Segment {
	ang := s.Angle() + math.Pi/2
	delta := Point2{math.Cos(ang) * d, math.Sin(ang) * d}
	return s.Translate(delta)
}

// IntersectionWithSegment intersects s and other as bounded segments, per spec §4.1.
func (s Segment) IntersectionWithSegment(other Segment) Intersection {
	return s.intersect(other, Epsilon, false)
}

// IntersectionWithSegmentEps is IntersectionWithSegment with an explicit tolerance.
func (s Segment) IntersectionWithSegmentEps(other Segment, eps float64) Intersection {
	return s.intersect(other, eps, false)
}

// IntersectionWithExtendedLine intersects the infinite lines through s and
// other, unconstrained by either segment's bounds.
func (s Segment) IntersectionWithExtendedLine(other Segment) Intersection {
	return s.intersect(other, Epsilon, true)
}

// IntersectionWithExtendedLineEps is IntersectionWithExtendedLine with an explicit tolerance.
func (s Segment) IntersectionWithExtendedLineEps(other Segment, eps float64) Intersection {
	return s.intersect(other, eps, true)
}

// intersect implements spec §4.1's algorithm: solve the 2x2 linear system
// for the infinite lines; if parallel within eps, fall back to collinear
// overlap testing; otherwise compute parameters t (on s) and u (on other),
// constraining both to [-eps, 1+eps] unless extended is set.
func (s Segment) intersect(other Segment, eps float64, extended bool) Intersection {
	d1 := s.End.Sub(s.Start)
	d2 := other.End.Sub(other.Start)
	denom := d1.X*d2.Y - d1.Y*d2.X

	if math.Abs(denom) <= eps {
		return collinearOverlap(s, other, eps, extended)
	}

	diff := other.Start.Sub(s.Start)
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom
	u := (diff.X*d1.Y - diff.Y*d1.X) / denom

	if !extended {
		if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
			return Intersection{Kind: NoIntersection}
		}
	}

	p := Point2{s.Start.X + t*d1.X, s.Start.Y + t*d1.Y}
	return Intersection{Kind: PointIntersection, P1: p}
}

// collinearOverlap handles the case where s and other's infinite lines are
// parallel (within eps). It first verifies true collinearity (other.Start
// lies on s's infinite line), then computes the overlap interval projected
// onto s's own direction.
func collinearOverlap(s, other Segment, eps float64, extended bool) Intersection {
	d1 := s.End.Sub(s.Start)
	lenSq := d1.X*d1.X + d1.Y*d1.Y
	if lenSq == 0 {
		// Degenerate self segment: treat as a point test against other.
		if other.ContainsWithin(s.Start, eps) {
			return Intersection{Kind: PointIntersection, P1: s.Start}
		}
		return Intersection{Kind: NoIntersection}
	}

	// Perpendicular distance from other.Start to s's infinite line must be
	// within eps for true collinearity, not just parallelism.
	if s.minimumExtendedLineDistance(other.Start) > eps {
		return Intersection{Kind: NoIntersection}
	}

	paramOf := func(p Point2) float64 {
		v := p.Sub(s.Start)
		return (v.X*d1.X + v.Y*d1.Y) / lenSq
	}
	tSelfMin, tSelfMax := 0.0, 1.0
	if extended {
		tSelfMin, tSelfMax = math.Inf(-1), math.Inf(1)
	}
	tc, td := paramOf(other.Start), paramOf(other.End)
	tOtherMin, tOtherMax := minMax(tc, td)

	loT := math.Max(tSelfMin, tOtherMin)
	hiT := math.Min(tSelfMax, tOtherMax)

	lenEps := eps / math.Sqrt(lenSq)
	if loT > hiT+lenEps {
		return Intersection{Kind: NoIntersection}
	}

	atParam := func(t float64) Point2 {
		return Point2{s.Start.X + t*d1.X, s.Start.Y + t*d1.Y}
	}
	if hiT-loT <= lenEps {
		return Intersection{Kind: PointIntersection, P1: atParam((loT + hiT) / 2)}
	}
	return Intersection{Kind: SegmentOverlap, P1: atParam(loT), P2: atParam(hiT)}
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
