package geoslice

import "math"

// PathSide records whether a path, taken as a whole, has been classified
// as lying inside or outside a reference path (spec §3: "path-level flags
// INSIDE/OUTSIDE when classifying nested paths"). It only has meaning
// during tagging: SideInside inverts the classification made by
// TagSegmentsRelativeToClosedPath. No routine in this package sets
// SideInside; Path.Untag resets it to SideOutside.
type PathSide uint8

const (
	SideOutside PathSide = iota
	SideInside
)

// Path is an ordered sequence of Segments forming an open or closed
// polyline (spec §3). Consecutive segments must share an endpoint within
// epsilon; a Path owns its segments exclusively.
type Path struct {
	Segments []Segment
	Side     PathSide
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

// NewPathFromPoints builds a path by attaching the segment between each
// consecutive pair of points.
func NewPathFromPoints(points []Point2) *Path {
	p := NewPath()
	for i := 1; i < len(points); i++ {
		p.Attach(NewSegment(points[i-1], points[i]))
	}
	return p
}

// NewPathFromSegment returns a one-segment path.
func NewPathFromSegment(s Segment) *Path {
	return &Path{Segments: []Segment{s}}
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	out := &Path{Segments: make([]Segment, len(p.Segments)), Side: p.Side}
	copy(out.Segments, p.Segments)
	return out
}

// Len returns the number of segments in p.
func (p *Path) Len() int { return len(p.Segments) }

// StartPoint returns the start of the first segment. Panics on an empty path.
func (p *Path) StartPoint() Point2 { return p.Segments[0].Start }

// EndPoint returns the end of the last segment. Panics on an empty path.
func (p *Path) EndPoint() Point2 { return p.Segments[len(p.Segments)-1].End }

// HasEndpoint reports whether pt matches the path's overall start or end point.
func (p *Path) HasEndpoint(pt Point2) bool {
	if p.Len() == 0 {
		return false
	}
	return pt.Equal(p.StartPoint()) || pt.Equal(p.EndPoint())
}

// IsClosed reports whether p has at least two segments and its last
// segment's end coincides with its first segment's start (spec §3).
func (p *Path) IsClosed() bool {
	if p.Len() < 2 {
		return false
	}
	return p.StartPoint().Equal(p.EndPoint())
}

// Length returns the sum of segment lengths.
func (p *Path) Length() float64 {
	total := 0.0
	for _, s := range p.Segments {
		total += s.Length()
	}
	return total
}

// WindingArea returns the signed shoelace area of p; positive indicates
// clockwise winding under the engine's convention (spec GLOSSARY).
func (p *Path) WindingArea() float64 {
	total := 0.0
	for _, s := range p.Segments {
		total += s.Start.X*s.End.Y - s.End.X*s.Start.Y
	}
	return total / 2
}

// Area returns the unsigned area enclosed by p.
func (p *Path) Area() float64 { return math.Abs(p.WindingArea()) }

// IsClockwise reports whether p winds clockwise (positive winding area).
func (p *Path) IsClockwise() bool { return p.WindingArea() > 0 }

// Bounds returns the axis-aligned bounding box of p's segments.
func (p *Path) Bounds() Bounds {
	b := NewEmptyBounds()
	for _, s := range p.Segments {
		b = b.Expand(s.Start)
		b = b.Expand(s.End)
	}
	return b
}

// CouldAttachSegment reports whether seg shares an endpoint with p, or p is empty.
func (p *Path) CouldAttachSegment(seg Segment) bool {
	if p.Len() == 0 {
		return true
	}
	return p.HasEndpoint(seg.Start) || p.HasEndpoint(seg.End)
}

// CouldAttachPath reports whether other shares an endpoint with p, or p is empty.
func (p *Path) CouldAttachPath(other *Path) bool {
	if p.Len() == 0 || other.Len() == 0 {
		return true
	}
	return p.HasEndpoint(other.StartPoint()) || p.HasEndpoint(other.EndPoint())
}

// Attach appends or prepends seg, reversing it if necessary, so that
// endpoints chain (spec §4.2). Rules, tried in order: empty path accepts;
// end==seg.Start appends; start==seg.End prepends; end==seg.End appends
// reversed; start==seg.Start prepends reversed; otherwise reject.
func (p *Path) Attach(seg Segment) bool {
	if p.Len() == 0 {
		p.Segments = append(p.Segments, seg)
		return true
	}
	switch {
	case p.EndPoint().Equal(seg.Start):
		p.Segments = append(p.Segments, seg)
	case p.StartPoint().Equal(seg.End):
		p.Segments = append([]Segment{seg}, p.Segments...)
	case p.EndPoint().Equal(seg.End):
		p.Segments = append(p.Segments, seg.Reversed())
	case p.StartPoint().Equal(seg.Start):
		p.Segments = append([]Segment{seg.Reversed()}, p.Segments...)
	default:
		return false
	}
	return true
}

// AttachPath chains other's segments, in order, onto p, after a cheap
// feasibility check on other's two endpoints. It returns false (and
// attaches nothing) when neither endpoint of other can connect to p.
func (p *Path) AttachPath(other *Path) bool {
	if !p.CouldAttachPath(other) {
		return false
	}
	for _, seg := range other.Segments {
		p.Attach(seg)
	}
	return true
}

// Reversed returns a new Path with segment order and each segment reversed.
func (p *Path) Reversed() *Path {
	out := &Path{Segments: make([]Segment, p.Len()), Side: p.Side}
	for i, s := range p.Segments {
		out.Segments[p.Len()-1-i] = s.Reversed()
	}
	return out
}

// Contains reports whether pt lies inside the closed path p, via ray
// casting to the right (spec §4.2). A non-closed path never contains a
// point. Segments whose start or end is within eps of the ray's Y are
// nudged upward by 1.5*eps to avoid degenerate hits.
func (p *Path) Contains(pt Point2) bool {
	return p.ContainsEps(pt, Epsilon)
}

// ContainsEps is Contains with an explicit tolerance.
func (p *Path) ContainsEps(pt Point2, eps float64) bool {
	if !p.IsClosed() {
		return false
	}
	rayEnd := Point2{1e9, pt.Y}
	ray := NewSegment(pt, rayEnd)
	count := 0
	for _, s := range p.Segments {
		test := s
		if math.Abs(test.Start.Y-pt.Y) < eps {
			test.Start.Y += 1.5 * eps
		}
		if math.Abs(test.End.Y-pt.Y) < eps {
			test.End.Y += 1.5 * eps
		}
		isect := test.IntersectionWithSegmentEps(ray, eps)
		if !isect.None() {
			count++
		}
	}
	return count%2 != 0
}

// IntersectsSegment reports whether any segment of p intersects seg (spec
// supplement from original_source BGLPath::intersects(Line)).
func (p *Path) IntersectsSegment(seg Segment) bool {
	for _, s := range p.Segments {
		if !s.IntersectionWithSegment(seg).None() {
			return true
		}
	}
	return false
}

// IntersectsPath reports whether any segment of p intersects any segment
// of other (spec supplement from original_source BGLPath::intersects(Path)).
func (p *Path) IntersectsPath(other *Path) bool {
	for _, a := range p.Segments {
		for _, b := range other.Segments {
			if !a.IntersectionWithSegment(b).None() {
				return true
			}
		}
	}
	return false
}

// IntersectionsWith returns the intersections of line against every
// segment of p, tagged with the producing segment's index. A POINT
// intersection that coincides with a segment's own start point is
// suppressed (it was already reported against the previous segment's end),
// except for the first segment of an open path, per spec §4.2.
func (p *Path) IntersectionsWith(line Segment) []Intersection {
	closed := p.IsClosed()
	var out []Intersection
	for i, s := range p.Segments {
		isect := s.IntersectionWithSegment(line)
		if isect.None() {
			continue
		}
		if isect.Kind == PointIntersection && isect.P1.Equal(s.Start) && (i != 0 || closed) {
			continue
		}
		isect.SegmentIndex = i
		out = append(out, isect)
	}
	return out
}

// HasEdgeWithPoint reports whether some segment of p contains pt (within
// eps), returning that segment's index. It is the BGL
// "hasEdgeWithPoint" query used by tagging to test a midpoint against a
// reference path's own edges.
func (p *Path) HasEdgeWithPoint(pt Point2, eps float64) (int, bool) {
	for i, s := range p.Segments {
		if s.ContainsWithin(pt, eps) {
			return i, true
		}
	}
	return 0, false
}

// StripSegmentsShorterThan removes segments shorter than minLen, welding
// the endpoints of their neighbors together so the path stays connected
// (original_source BGLPath::stripSegmentsShorterThan; spec §7's
// geometry-degenerate "zero-length segment: silently skip" policy in
// concrete form).
func (p *Path) StripSegmentsShorterThan(minLen float64) {
	segs := p.Segments
	i := 0
	for i < len(segs) {
		if segs[i].Length() < minLen {
			removed := segs[i]
			segs = append(segs[:i], segs[i+1:]...)
			switch {
			case i < len(segs):
				segs[i].Start = removed.Start
			case len(segs) > 0:
				segs[len(segs)-1].End = removed.End
			}
			continue
		}
		i++
	}
	p.Segments = segs
}

// Simplify fuses collinear adjacent segment pairs: while the perpendicular
// distance from the shared vertex to the line joining the outer endpoints
// is at most eps, the pair is merged into one segment (spec §4.2).
func (p *Path) Simplify(eps float64) {
	segs := p.Segments
	if len(segs) < 2 {
		return
	}
	i := 0
	for i+1 < len(segs) {
		j := i + 1
		ln := Segment{Start: segs[i].Start, End: segs[j].End}
		for ln.MinimumExtendedLineDistance(segs[i].End) <= eps {
			segs[i].End = segs[j].End
			segs = append(segs[:j], segs[j+1:]...)
			if j >= len(segs) {
				p.Segments = segs
				return
			}
			ln.End = segs[j].End
		}
		i++
	}
	p.Segments = segs
}

// ReorderByPoint rotates a closed path's segment list so that it starts at
// pt, splitting the segment containing pt when pt is not already an
// endpoint (original_source BGLPath::reorderByPoint). Intended for
// canonicalizing a closed path's start point before comparison or SVG
// emission; a no-op if pt is not on the path.
func (p *Path) ReorderByPoint(pt Point2) {
	for limit := p.Len(); limit > 0; limit-- {
		s := p.Segments[0]
		if pt.Equal(s.Start) {
			return
		}
		if !pt.Equal(s.End) && s.Contains(pt) {
			p.Segments[0].Start = pt
			p.Segments = append(p.Segments, NewSegment(p.EndPoint(), pt))
			return
		}
		p.Segments = append(p.Segments[1:], p.Segments[0])
	}
}

// Untag resets p to the baseline tagging state: Side becomes SideOutside
// and every segment's Class becomes Unclassified (spec §4.2 untag()).
func (p *Path) Untag() {
	p.Side = SideOutside
	for i := range p.Segments {
		p.Segments[i].Used = false
		p.Segments[i].Class = Unclassified
	}
}
