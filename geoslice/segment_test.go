package geoslice

import "testing"

func TestSegmentEqualIsOrderInsensitive(t *testing.T) {
	a := NewSegment(Point2{0, 0}, Point2{1, 1})
	b := NewSegment(Point2{1, 1}, Point2{0, 0})
	if !a.Equal(b) {
		t.Error("segment should equal its own reversal")
	}
}

func TestSegmentIntersectionWithSegment(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Segment
		wantKind IntersectionKind
	}{
		{
			name:     "crossing",
			a:        NewSegment(Point2{0, 0}, Point2{2, 2}),
			b:        NewSegment(Point2{0, 2}, Point2{2, 0}),
			wantKind: PointIntersection,
		},
		{
			name:     "parallel disjoint",
			a:        NewSegment(Point2{0, 0}, Point2{1, 0}),
			b:        NewSegment(Point2{0, 1}, Point2{1, 1}),
			wantKind: NoIntersection,
		},
		{
			name:     "collinear overlap",
			a:        NewSegment(Point2{0, 0}, Point2{2, 0}),
			b:        NewSegment(Point2{1, 0}, Point2{3, 0}),
			wantKind: SegmentOverlap,
		},
		{
			name:     "collinear touching at a point",
			a:        NewSegment(Point2{0, 0}, Point2{1, 0}),
			b:        NewSegment(Point2{1, 0}, Point2{2, 0}),
			wantKind: PointIntersection,
		},
		{
			name:     "non-intersecting bounded segments on crossing lines",
			a:        NewSegment(Point2{0, 0}, Point2{1, 1}),
			b:        NewSegment(Point2{5, 0}, Point2{6, -1}),
			wantKind: NoIntersection,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.a.IntersectionWithSegment(c.b)
			if got.Kind != c.wantKind {
				t.Errorf("Kind = %v, want %v (isect=%+v)", got.Kind, c.wantKind, got)
			}
		})
	}
}

func TestSegmentIntersectionWithExtendedLine(t *testing.T) {
	a := NewSegment(Point2{0, 0}, Point2{1, 0})
	b := NewSegment(Point2{5, -1}, Point2{5, 1})
	if got := a.IntersectionWithSegment(b); !got.None() {
		t.Fatalf("bounded intersection should be none, got %+v", got)
	}
	got := a.IntersectionWithExtendedLine(b)
	if got.None() || got.Kind != PointIntersection {
		t.Fatalf("extended intersection expected a point, got %+v", got)
	}
	if !got.P1.Equal(Point2{5, 0}) {
		t.Errorf("extended intersection point = %v, want (5,0)", got.P1)
	}
}

func TestSegmentLeftOffset(t *testing.T) {
	s := NewSegment(Point2{0, 0}, Point2{1, 0})
	offset := s.LeftOffset(1)
	if !offset.Start.Equal(Point2{0, 1}) || !offset.End.Equal(Point2{1, 1}) {
		t.Errorf("LeftOffset(1) = %+v, want start (0,1) end (1,1)", offset)
	}
}

func TestSegmentAngleDeltaWrapsToHalfOpenRange(t *testing.T) {
	a := NewSegment(Point2{0, 0}, Point2{1, 0})
	b := NewSegment(Point2{0, 0}, Point2{-1, 0})
	delta := a.AngleDelta(b)
	if delta <= -3.15 || delta > 3.15 {
		t.Errorf("AngleDelta out of expected range: %v", delta)
	}
}

func TestSegmentContainsWithin(t *testing.T) {
	s := NewSegment(Point2{0, 0}, Point2{10, 0})
	if !s.Contains(Point2{5, 0}) {
		t.Error("midpoint should be contained")
	}
	if s.Contains(Point2{11, 0}) {
		t.Error("point beyond End should not be contained")
	}
}
