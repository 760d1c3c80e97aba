package geoslice

// AssemblePathsFromSegments performs greedy endpoint linking (spec §4.2):
// repeatedly start a new current path with an arbitrary unhandled segment,
// scan all remaining segments and attach each that chains, and on a pass
// with no attachment emit the current path and begin again.
func AssemblePathsFromSegments(segs []Segment) []*Path {
	unhandled := make([]Segment, len(segs))
	copy(unhandled, segs)

	var out []*Path
	current := NewPath()
	for len(unhandled) > 0 {
		if current.Len() == 0 {
			current.Attach(unhandled[0])
			unhandled = unhandled[1:]
		}
		foundLink := false
		kept := unhandled[:0]
		for _, s := range unhandled {
			if !foundLink && current.Attach(s) {
				foundLink = true
				continue
			}
			kept = append(kept, s)
		}
		unhandled = kept
		if !foundLink || len(unhandled) == 0 {
			out = append(out, current)
			current = NewPath()
		}
	}
	return out
}

// RepairUnclosedPaths separates already-closed paths unchanged. For each
// open path, it repeatedly finds the nearest endpoint of any remaining
// open path; if that distance is less than the distance across the
// current path's own open ends, it splices the two paths together
// (inserting a bridging segment); otherwise it closes the path with one
// bridging segment (spec §4.2). A path that can't be closed (fewer than
// two segments once exhausted) is dropped, per spec §7's topology-
// degenerate policy.
func RepairUnclosedPaths(paths []*Path) []*Path {
	var out []*Path
	var unhandled []*Path
	for _, p := range paths {
		if p.IsClosed() {
			out = append(out, p)
		} else {
			unhandled = append(unhandled, p)
		}
	}

	for len(unhandled) > 0 {
		path := unhandled[0]
		unhandled = unhandled[1:]
		for {
			closingDist := path.StartPoint().DistanceTo(path.EndPoint())
			closestDist := maxFloat
			closestIdx := -1
			for i, other := range unhandled {
				d1 := path.EndPoint().DistanceTo(other.StartPoint())
				d2 := path.EndPoint().DistanceTo(other.EndPoint())
				if d1 < closestDist {
					closestDist = d1
					closestIdx = i
				}
				if d2 < closestDist {
					closestDist = d2
					closestIdx = i
				}
			}
			if closestIdx >= 0 && closestDist < closingDist {
				other := unhandled[closestIdx]
				unhandled = append(unhandled[:closestIdx], unhandled[closestIdx+1:]...)
				path.Attach(NewSegment(path.EndPoint(), other.StartPoint()))
				path.AttachPath(other)
			} else {
				if path.Len() < 2 {
					break
				}
				path.Attach(NewSegment(path.EndPoint(), path.StartPoint()))
			}
			if path.IsClosed() {
				out = append(out, path)
				break
			}
		}
	}
	return out
}

const maxFloat = 9.0e9

// SplitSegmentsAtIntersectionsWith splits p's segments wherever they cross
// other's segments (spec §4.2). For a POINT intersection not already at a
// self-endpoint, the self segment is split there; for a SEGMENT overlap,
// it is split at both overlap endpoints that are not already endpoints,
// processing the farther-from-start point first so that inserting the
// nearer split afterward still lands inside the correct fragment (matches
// BGLPath::splitSegmentsAtIntersectionsWithPath's in-place list-splice
// order).
func (p *Path) SplitSegmentsAtIntersectionsWith(other *Path) {
	p.splitSegmentsAtIntersectionsWithEps(other, Epsilon)
}

func (p *Path) splitSegmentsAtIntersectionsWithEps(other *Path, eps float64) {
	segs := p.Segments
	idx := newSegmentIndex(other.Segments, eps)
	for i := 0; i < len(segs); i++ {
		for _, j := range idx.Candidates(segs[i]) {
			otherSeg := other.Segments[j]
			seg := segs[i]
			isect := seg.IntersectionWithSegmentEps(otherSeg, eps)
			if isect.None() {
				continue
			}
			var points []Point2
			if !seg.HasEndpoint(isect.P1) {
				points = append(points, isect.P1)
			}
			if isect.Kind == SegmentOverlap && !seg.HasEndpoint(isect.P2) && !isect.P1.Equal(isect.P2) {
				dist1 := seg.Start.DistanceTo(isect.P1)
				dist2 := seg.Start.DistanceTo(isect.P2)
				if dist2 > dist1 {
					points = append([]Point2{isect.P2}, points...)
				} else {
					points = append(points, isect.P2)
				}
			}
			for _, pt := range points {
				tempStart := segs[i].Start
				newSeg := Segment{
					Start: tempStart, End: pt,
					Temperature:    segs[i].Temperature,
					ExtrusionWidth: segs[i].ExtrusionWidth,
				}
				segs[i].Start = pt
				segs = append(segs, Segment{})
				copy(segs[i+1:], segs[i:len(segs)-1])
				segs[i] = newSeg
			}
		}
	}
	p.Segments = segs
}

// SeparateSelfIntersectingSubpaths splits p at its own intersections, then
// finds the first pair of non-adjacent segments sharing an endpoint — a
// lasso — and splits the path into the lasso loop and the remainder,
// recursing on each (spec §4.2). A path with no self-intersections
// returns itself as the sole element.
func (p *Path) SeparateSelfIntersectingSubpaths() []*Path {
	return p.separateSelfIntersectingSubpathsEps(Epsilon)
}

func (p *Path) separateSelfIntersectingSubpathsEps(eps float64) []*Path {
	p.splitSegmentsAtIntersectionsWithEps(p, eps)

	segs := p.Segments
	n := len(segs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if segs[i].End.Equal(segs[j].End) {
				remainder := &Path{}
				remainder.Segments = append(remainder.Segments, segs[:i+1]...)
				remainder.Segments = append(remainder.Segments, segs[j+1:]...)
				loop := &Path{Segments: append([]Segment{}, segs[i+1:j+1]...)}

				out := remainder.separateSelfIntersectingSubpathsEps(eps)
				out = append(out, loop.separateSelfIntersectingSubpathsEps(eps)...)
				return out
			}
		}
	}
	return []*Path{p}
}
