package geoslice

import "math"

// classMask is a bitset over Classification values, used by
// assembleTaggedPaths to select which tagged segments of each operand
// path participate in a boolean result (spec §4.2).
type classMask uint8

const (
	maskInside classMask = 1 << iota
	maskOutside
	maskShared
	maskUnshared
)

func (m classMask) has(c Classification) bool {
	switch c {
	case Inside:
		return m&maskInside != 0
	case Outside:
		return m&maskOutside != 0
	case Shared:
		return m&maskShared != 0
	case Unshared:
		return m&maskUnshared != 0
	default:
		return false
	}
}

// TagSegmentsRelativeToClosedPath classifies every segment of p by testing
// its midpoint against the closed path other, after simplifying p and
// splitting it at its intersections with other (spec §4.2). If other has
// an edge containing the midpoint, the segment is shared when the two
// edges point the same direction modulo the parity of the two paths'
// windings, else unshared. Otherwise the segment is classified inside or
// outside by other.Contains(midpoint). The result composes with any prior
// classification per a fixed table, and is further inverted when p.Side
// is SideInside, so the routine can be applied against multiple reference
// paths in sequence without an Untag in between.
func (p *Path) TagSegmentsRelativeToClosedPath(other *Path, opts PathOptions) {
	p.tagSegmentsRelativeToClosedPathEps(other, opts)
}

func (p *Path) tagSegmentsRelativeToClosedPathEps(other *Path, opts PathOptions) {
	eps := opts.epsilon()
	invert := p.Side == SideInside
	p.Simplify(2 * eps)
	p.splitSegmentsAtIntersectionsWithEps(other, eps)

	selfClockwise := p.IsClockwise()
	otherClockwise := other.IsClockwise()

	for i := range p.Segments {
		seg := &p.Segments[i]
		mid := Point2{(seg.Start.X + seg.End.X) / 2, (seg.Start.Y + seg.End.Y) / 2}

		if edgeIdx, ok := other.HasEdgeWithPoint(mid, eps); ok {
			foundSeg := other.Segments[edgeIdx]
			isShared := math.Abs(seg.AngleDelta(foundSeg)) < math.Pi/2
			if selfClockwise != otherClockwise {
				isShared = !isShared
			}
			if invert {
				isShared = !isShared
			}
			switch seg.Class {
			case Unclassified, Outside, Unshared:
				if isShared {
					seg.Class = Shared
				} else {
					seg.Class = Unshared
				}
			case Shared:
				seg.Class = Shared
			case Inside:
				if isShared {
					seg.Class = Unshared
				} else {
					seg.Class = Shared
				}
			}
			opts.trace("tag: segment %d shared=%v -> %s", i, isShared, seg.Class)
			continue
		}

		isInside := other.ContainsEps(mid, eps)
		if invert {
			isInside = !isInside
		}
		if isInside {
			switch seg.Class {
			case Unclassified:
				seg.Class = Inside
			case Inside:
				seg.Class = Outside
			case Outside:
				seg.Class = Inside
			case Shared:
				seg.Class = Unshared
			case Unshared:
				seg.Class = Shared
			}
		} else if seg.Class == Unclassified {
			seg.Class = Outside
		}
		opts.trace("tag: segment %d inside=%v -> %s", i, isInside, seg.Class)
	}
}

// assembleTaggedPaths walks segments of path1 and path2 whose tag lies in
// the respective mask, greedily attaching further unused segments that
// chain, switching operand path when the current one is exhausted at the
// attachment point, and emitting a closed result path whenever attachment
// closes it (spec §4.2). It terminates either when no eligible segments
// remain, or — per spec §7's "boolean assembly stalled" policy — after two
// consecutive unproductive attachment attempts, emitting whatever paths
// were completed so far and tracing the stall if a sink is configured.
func assembleTaggedPaths(path1 *Path, mask1 classMask, path2 *Path, mask2 classMask, opts PathOptions) []*Path {
	path1.Untag()
	path1.tagSegmentsRelativeToClosedPathEps(path2, opts)
	path2.Untag()
	path2.tagSegmentsRelativeToClosedPathEps(path1, opts)

	remaining := path1.Len() + path2.Len()
	for i := range path1.Segments {
		if !mask1.has(path1.Segments[i].Class) {
			path1.Segments[i].Used = true
			remaining--
		}
	}
	for i := range path2.Segments {
		if !mask2.has(path2.Segments[i].Class) {
			path2.Segments[i].Used = true
			remaining--
		}
	}

	patha, pathb := path1, path2
	currIdx, otherIdx := 0, 0
	pathLimit := 0
	eps := opts.epsilon()

	outPaths := []*Path{NewPath()}
	outPath := outPaths[0]

	for remaining > 0 {
		if len(patha.Segments) == 0 {
			opts.trace("assembleTaggedPaths: stalled on empty operand, %d segments unreachable", remaining)
			break
		}
		seg := patha.Segments[currIdx]
		if !seg.Used && outPath.CouldAttachSegment(seg) {
			patha.Segments[currIdx].Used = true
			outPath.Attach(seg)
			remaining--
			pathLimit = 0
			currIdx++
			if currIdx == len(patha.Segments) {
				currIdx = 0
			}
			if outPath.IsClosed() {
				outPath.Simplify(2 * eps)
				outPath = NewPath()
				outPaths = append(outPaths, outPath)
				pathLimit = 0
			}
			continue
		}

		pathLimit++
		patha, pathb = pathb, patha
		currIdx, otherIdx = otherIdx, currIdx
		found := false
		for limit := len(patha.Segments); limit > 0; limit-- {
			currIdx++
			if currIdx == len(patha.Segments) {
				currIdx = 0
			}
			if !patha.Segments[currIdx].Used && outPath.CouldAttachSegment(patha.Segments[currIdx]) {
				found = true
				break
			}
		}
		if !found && remaining > 0 && pathLimit >= 2 {
			opts.trace("assembleTaggedPaths: stalled with %d segments remaining, emitting completed paths", remaining)
			outPath.Simplify(2 * eps)
			outPath = NewPath()
			outPaths = append(outPaths, outPath)
			pathLimit = 0
			if len(outPaths) > path1.Len()+path2.Len()+2 {
				// Hard backstop: more output paths than input segments means
				// we're not making progress. Bail rather than loop forever.
				break
			}
		}
	}
	if outPath.Len() == 0 {
		outPaths = outPaths[:len(outPaths)-1]
	}
	return outPaths
}

// UnionOf returns the union of closed paths p1 and p2 (spec §4.2). It
// tags both paths in place (see TagSegmentsRelativeToClosedPath); callers
// that need the untagged originals afterward should pass clones.
func UnionOf(p1, p2 *Path, opts PathOptions) []*Path {
	return assembleTaggedPaths(p1, maskOutside|maskShared, p2, maskOutside, opts)
}

// DifferenceOf returns p1 minus p2 (spec §4.2). Tags both paths in place.
func DifferenceOf(p1, p2 *Path, opts PathOptions) []*Path {
	return assembleTaggedPaths(p1, maskOutside|maskUnshared, p2, maskInside, opts)
}

// IntersectionOf returns the intersection of p1 and p2 (spec §4.2). Tags both paths in place.
func IntersectionOf(p1, p2 *Path, opts PathOptions) []*Path {
	return assembleTaggedPaths(p1, maskInside|maskShared, p2, maskInside, opts)
}

// UnionOfAll reduces a list of closed paths to their union, pairwise
// merging any two that overlap until no further merge is possible
// (original_source BGLPath::unionOf(Paths&, Paths&)). CompoundRegion.UnionOf
// and CompoundRegion.IntersectionOf use it to merge their boundary paths
// before nesting classification; AssembleCompoundRegionFrom does not call it.
func UnionOfAll(paths []*Path, opts PathOptions) []*Path {
	out := make([]*Path, len(paths))
	copy(out, paths)

	for i := 0; i < len(out); {
		found := false
		for j := i + 1; j < len(out); j++ {
			merged := UnionOf(out[i].Clone(), out[j].Clone(), opts)
			if len(merged) < 2 {
				out = append(out[:j], out[j+1:]...)
				out = append(out[:i], out[i+1:]...)
				out = append(out, merged...)
				found = true
				break
			}
		}
		if !found {
			i++
		}
	}
	return out
}

// DifferenceOfAll subtracts every path in paths2 from every path in
// paths1 (original_source BGLPath::differenceOf(Paths&, Paths&, Paths&)).
func DifferenceOfAll(paths1, paths2 []*Path, opts PathOptions) []*Path {
	out := make([]*Path, len(paths1))
	copy(out, paths1)
	for _, p2 := range paths2 {
		var next []*Path
		for _, p1 := range out {
			next = append(next, DifferenceOf(p1.Clone(), p2.Clone(), opts)...)
		}
		out = next
	}
	return out
}

// ContainedSegments clips line against the closed path p, returning the
// portions of line that lie inside or on p (spec §4.2).
func (p *Path) ContainedSegments(line Segment, opts PathOptions) []Segment {
	linePath := NewPathFromSegment(line)
	linePath.Untag()
	linePath.tagSegmentsRelativeToClosedPathEps(p, opts)

	var out []Segment
	for _, s := range linePath.Segments {
		if s.Class == Inside || s.Class == Shared || s.Class == Unshared {
			out = append(out, s)
		}
	}
	return out
}

// ContainedSubpathsOfPath clips the whole of path against the closed
// boundary p, returning the surviving pieces reassembled into sub-paths
// (original_source BGLPath::containedSubpathsOfPath).
func (p *Path) ContainedSubpathsOfPath(path *Path, opts PathOptions) []*Path {
	clip := path.Clone()
	clip.Untag()
	clip.tagSegmentsRelativeToClosedPathEps(p, opts)

	var segs []Segment
	for _, s := range clip.Segments {
		if s.Class == Inside || s.Class == Shared || s.Class == Unshared {
			segs = append(segs, s)
		}
	}
	return AssemblePathsFromSegments(segs)
}
