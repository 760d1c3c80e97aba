package geoslice

import "github.com/google/btree"

// boundedSegment is an entry in a segmentIndex: a segment's epsilon-padded
// bounding box, ordered by MinX.
type boundedSegment struct {
	minX, maxX, minY, maxY float64
	index                  int
}

func lessBoundedSegment(a, b boundedSegment) bool {
	if a.minX != b.minX {
		return a.minX < b.minX
	}
	return a.index < b.index
}

// segmentIndex is a broad-phase spatial index over a fixed slice of
// segments, backed by a B-tree ordered on bounding-box MinX. It answers
// "which segments might intersect this query segment" without an O(n²)
// all-pairs scan, per the design note (spec §9) calling for replacing the
// all-pairs self-intersection check with a sweep-line-flavored structure
// "in the same design slot". The index only prunes: every candidate it
// returns must still be exact-intersection-tested by the caller, and it
// never omits a true overlap (the bounding-box test is a necessary, not
// sufficient, condition for segment intersection).
type segmentIndex struct {
	tree *btree.BTreeG[boundedSegment]
	eps  float64

	// maxSpan is the widest (maxX-minX) among all indexed boxes. A query
	// never needs to see an entry whose MinX is more than maxSpan below the
	// query's own MinX: such an entry's MaxX can be at most its MinX plus
	// maxSpan, which falls short of the query's MinX, so it cannot overlap.
	maxSpan float64
}

func newSegmentIndex(segs []Segment, eps float64) *segmentIndex {
	t := btree.NewG(32, lessBoundedSegment)
	maxSpan := 0.0
	for i, s := range segs {
		minX, maxX := minMax(s.Start.X, s.End.X)
		minY, maxY := minMax(s.Start.Y, s.End.Y)
		minX -= eps
		maxX += eps
		minY -= eps
		maxY += eps
		if span := maxX - minX; span > maxSpan {
			maxSpan = span
		}
		t.ReplaceOrInsert(boundedSegment{
			minX: minX, maxX: maxX,
			minY: minY, maxY: maxY,
			index: i,
		})
	}
	return &segmentIndex{tree: t, eps: eps, maxSpan: maxSpan}
}

// Candidates returns the indices of segments whose padded bounding box
// overlaps s's padded bounding box, in ascending MinX order. It seeks the
// tree to the earliest entry that could possibly overlap (query MinX minus
// the widest indexed box, so a box starting before that point is already
// known to end before the query starts) instead of ascending from the
// tree's absolute start, then stops as soon as an entry's MinX exceeds the
// query's MaxX, since no later entry (all with even larger MinX) could
// overlap either.
func (idx *segmentIndex) Candidates(s Segment) []int {
	minX, maxX := minMax(s.Start.X, s.End.X)
	minY, maxY := minMax(s.Start.Y, s.End.Y)
	minX -= idx.eps
	maxX += idx.eps
	minY -= idx.eps
	maxY += idx.eps

	// index: -1 is a sentinel below every real index, so the seek lands on
	// or before the first entry whose MinX equals the bound, never past it.
	seekFrom := boundedSegment{minX: minX - idx.maxSpan, index: -1}

	var out []int
	idx.tree.AscendGreaterOrEqual(seekFrom, func(item boundedSegment) bool {
		if item.minX > maxX {
			return false
		}
		if item.maxX >= minX && item.maxY >= minY && item.minY <= maxY {
			out = append(out, item.index)
		}
		return true
	})
	return out
}
