package geoslice

import "testing"

func square(x0, y0, size float64) *Path {
	return NewPathFromPoints([]Point2{
		{x0, y0}, {x0 + size, y0}, {x0 + size, y0 + size}, {x0, y0 + size}, {x0, y0},
	})
}

func TestPathAttachChainsInEitherDirection(t *testing.T) {
	p := NewPath()
	if !p.Attach(NewSegment(Point2{0, 0}, Point2{1, 0})) {
		t.Fatal("attach to empty path should always succeed")
	}
	if !p.Attach(NewSegment(Point2{1, 0}, Point2{2, 0})) {
		t.Fatal("append should succeed")
	}
	if !p.Attach(NewSegment(Point2{-1, 0}, Point2{0, 0})) {
		t.Fatal("prepend should succeed")
	}
	if !p.StartPoint().Equal(Point2{-1, 0}) || !p.EndPoint().Equal(Point2{2, 0}) {
		t.Errorf("unexpected path extent: start=%v end=%v", p.StartPoint(), p.EndPoint())
	}
	if p.Attach(NewSegment(Point2{100, 100}, Point2{200, 200})) {
		t.Error("disjoint segment should not attach")
	}
}

func TestPathIsClosed(t *testing.T) {
	open := NewPathFromPoints([]Point2{{0, 0}, {1, 0}, {1, 1}})
	if open.IsClosed() {
		t.Error("open path reported closed")
	}
	closed := square(0, 0, 1)
	if !closed.IsClosed() {
		t.Error("square path reported open")
	}
}

func TestPathAreaAndWinding(t *testing.T) {
	s := square(0, 0, 10)
	if got := s.Area(); got != 100 {
		t.Errorf("Area() = %v, want 100", got)
	}
	if s.IsClockwise() == s.Reversed().IsClockwise() {
		t.Error("reversing a path should flip its winding")
	}
}

func TestPathContains(t *testing.T) {
	s := square(0, 0, 10)
	if !s.Contains(Point2{5, 5}) {
		t.Error("center should be contained")
	}
	if s.Contains(Point2{15, 5}) {
		t.Error("point outside bounds should not be contained")
	}
	if s.Contains(Point2{5, 15}) {
		t.Error("point outside bounds should not be contained")
	}
}

func TestPathSimplifyFusesCollinearSegments(t *testing.T) {
	p := NewPathFromPoints([]Point2{{0, 0}, {1, 0}, {2, 0}, {2, 2}})
	p.Simplify(Epsilon)
	if p.Len() != 2 {
		t.Fatalf("expected 2 segments after simplify, got %d", p.Len())
	}
	if !p.Segments[0].End.Equal(Point2{2, 0}) {
		t.Errorf("fused segment should end at (2,0), got %v", p.Segments[0].End)
	}
}

func TestPathStripSegmentsShorterThan(t *testing.T) {
	p := NewPathFromPoints([]Point2{{0, 0}, {1, 0}, {1 + 1e-7, 0}, {2, 0}})
	p.StripSegmentsShorterThan(1e-4)
	for _, s := range p.Segments {
		if s.Length() < 1e-4 {
			t.Errorf("segment shorter than threshold survived: %+v", s)
		}
	}
	if !p.StartPoint().Equal(Point2{0, 0}) || !p.EndPoint().Equal(Point2{2, 0}) {
		t.Errorf("stripping should preserve overall extent: start=%v end=%v", p.StartPoint(), p.EndPoint())
	}
}

func TestPathReorderByPoint(t *testing.T) {
	s := square(0, 0, 10)
	s.ReorderByPoint(Point2{5, 0})
	if !s.StartPoint().Equal(Point2{5, 0}) {
		t.Errorf("expected path to start at (5,0), got %v", s.StartPoint())
	}
	if !s.IsClosed() {
		t.Error("reordered path should still be closed")
	}
}

func TestPathUntagResetsClassificationAndUsed(t *testing.T) {
	s := square(0, 0, 10)
	s.Segments[0].Used = true
	s.Segments[0].Class = Inside
	s.Side = SideInside
	s.Untag()
	if s.Side != SideOutside {
		t.Error("Untag should reset Side to SideOutside")
	}
	for _, seg := range s.Segments {
		if seg.Used || seg.Class != Unclassified {
			t.Errorf("Untag left stale state: %+v", seg)
		}
	}
}
