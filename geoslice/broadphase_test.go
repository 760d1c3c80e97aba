package geoslice

import "testing"

func candidateSet(idx *segmentIndex, s Segment) map[int]bool {
	out := make(map[int]bool)
	for _, i := range idx.Candidates(s) {
		out[i] = true
	}
	return out
}

func TestSegmentIndexCandidatesFindsBoundaryTouchingBox(t *testing.T) {
	eps := 0.01
	other := []Segment{
		NewSegment(Point2{10, 0}, Point2{10, 1}), // padded minX 9.99, maxX 10.01
	}
	idx := newSegmentIndex(other, eps)

	// Query's padded MaxX (9.98+eps=9.99) lands exactly on the indexed
	// entry's padded MinX: they touch, not strictly overlap.
	query := NewSegment(Point2{0, 0}, Point2{9.98, 1})
	got := candidateSet(idx, query)
	if !got[0] {
		t.Errorf("expected boundary-touching segment 0 to be a candidate, got %v", got)
	}
}

func TestSegmentIndexCandidatesPrunesBoxesStrictlyBeyondQuery(t *testing.T) {
	eps := 0.01
	other := []Segment{
		NewSegment(Point2{10, 0}, Point2{10, 1}),
	}
	idx := newSegmentIndex(other, eps)

	// Padded MaxX (9.9+eps=9.91) now falls short of the entry's padded MinX
	// (9.99): no overlap, not even a touch.
	query := NewSegment(Point2{0, 0}, Point2{9.9, 1})
	got := candidateSet(idx, query)
	if got[0] {
		t.Errorf("expected segment 0 to be pruned, got %v", got)
	}
}

func TestSegmentIndexCandidatesReturnsAllEntriesWithDuplicateMinX(t *testing.T) {
	other := []Segment{
		NewSegment(Point2{5, 0}, Point2{5, 1}), // index 0, minX 5
		NewSegment(Point2{5, 2}, Point2{5, 3}), // index 1, same minX 5, disjoint Y
	}
	idx := newSegmentIndex(other, Epsilon)

	query := NewSegment(Point2{4, 0}, Point2{6, 3})
	got := candidateSet(idx, query)
	if !got[0] || !got[1] {
		t.Errorf("expected both same-MinX segments as candidates, got %v", got)
	}
}

func TestSegmentIndexCandidatesSeekDoesNotMissAWideLowMinXBox(t *testing.T) {
	other := []Segment{
		NewSegment(Point2{0, 0}, Point2{100, 0}), // minX 0, spans the full range
	}
	idx := newSegmentIndex(other, Epsilon)

	// The query sits near the high end of the MinX order, far from the
	// wide entry's own MinX. A seek that starts at the query's MinX without
	// accounting for maxSpan would skip straight past index 0.
	query := NewSegment(Point2{89, -1}, Point2{91, 1})
	got := candidateSet(idx, query)
	if !got[0] {
		t.Errorf("expected the wide low-MinX segment to still be found, got %v", got)
	}
}

func TestSegmentIndexCandidatesExcludesNonOverlappingY(t *testing.T) {
	other := []Segment{
		NewSegment(Point2{0, 0}, Point2{1, 1}),
		NewSegment(Point2{0, 10}, Point2{1, 11}),
	}
	idx := newSegmentIndex(other, Epsilon)

	query := NewSegment(Point2{0, 0}, Point2{1, 1})
	got := candidateSet(idx, query)
	if !got[0] {
		t.Errorf("expected overlapping segment 0 as a candidate, got %v", got)
	}
	if got[1] {
		t.Errorf("expected segment 1 (disjoint Y) to be excluded, got %v", got)
	}
}
