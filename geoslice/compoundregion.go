package geoslice

import "math"

// CompoundRegion is a forest of SimpleRegions: the full, possibly
// disjoint, possibly multiply-nested area produced by slicing a mesh at
// one Z level (spec §4.4).
type CompoundRegion struct {
	Subregions []*SimpleRegion
}

// AssembleCompoundRegionFrom classifies a flat, unordered list of closed
// paths into a nesting forest of SimpleRegions: a path contained by an
// even number of the others starts a new SimpleRegion, and a path
// contained by an odd number becomes a hole of its immediate parent (the
// containing path one nesting level up). This is the step that turns the
// raw loops produced by AssemblePathsFromSegments and RepairUnclosedPaths
// during mesh slicing into a region with holes correctly attributed to
// their enclosing boundary (spec §4.5).
func AssembleCompoundRegionFrom(paths []*Path, opts PathOptions) *CompoundRegion {
	n := len(paths)
	depth := make([]int, n)
	for i := range paths {
		if paths[i].Len() == 0 {
			continue
		}
		probe := paths[i].StartPoint()
		for j := range paths {
			if i == j || paths[j].Len() == 0 {
				continue
			}
			if paths[j].ContainsEps(probe, opts.epsilon()) {
				depth[i]++
			}
		}
	}

	c := &CompoundRegion{}
	regionOf := make(map[int]*SimpleRegion, n)
	for i, p := range paths {
		if p.Len() == 0 {
			continue
		}
		if depth[i]%2 == 0 {
			r := NewSimpleRegion(p)
			regionOf[i] = r
			c.Subregions = append(c.Subregions, r)
		}
	}
	for i, p := range paths {
		if p.Len() == 0 || depth[i]%2 == 0 {
			continue
		}
		parent := -1
		for j := range paths {
			if j == i || paths[j].Len() == 0 || depth[j] != depth[i]-1 {
				continue
			}
			if paths[j].ContainsEps(p.StartPoint(), opts.epsilon()) {
				parent = j
				break
			}
		}
		if r, ok := regionOf[parent]; ok {
			r.Holes = append(r.Holes, p)
		}
	}
	return c
}

// Contains reports whether pt lies within any subregion.
func (c *CompoundRegion) Contains(pt Point2) bool {
	return c.ContainsEps(pt, Epsilon)
}

// ContainsEps is Contains with an explicit tolerance.
func (c *CompoundRegion) ContainsEps(pt Point2, eps float64) bool {
	for _, r := range c.Subregions {
		if r.ContainsEps(pt, eps) {
			return true
		}
	}
	return false
}

// Area returns the sum of every subregion's area.
func (c *CompoundRegion) Area() float64 {
	total := 0.0
	for _, r := range c.Subregions {
		total += r.Area()
	}
	return total
}

// Bounds returns the bounding box of every subregion combined.
func (c *CompoundRegion) Bounds() Bounds {
	b := NewEmptyBounds()
	for _, r := range c.Subregions {
		b = b.ExpandBounds(r.Bounds())
	}
	return b
}

// flatten returns a cloned, flat list of every boundary path (outer
// boundaries and holes alike) across all subregions.
func (c *CompoundRegion) flatten() []*Path {
	var out []*Path
	for _, r := range c.Subregions {
		out = append(out, r.flattenPaths()...)
	}
	return out
}

// UnionOf returns the union of c and other (spec §4.4), reassembling the
// combined boundary soup via AssembleCompoundRegionFrom. This treats
// holes and outer boundaries uniformly during merging, which is exact
// when the two operands are disjoint or cleanly nested — the case that
// arises when combining the independently-sliced regions of separate
// meshes placed on a shared build plate — but does not reconcile a hole
// from one operand against solid material crossing into it from the
// other (documented limitation, see DESIGN.md).
func (c *CompoundRegion) UnionOf(other *CompoundRegion, opts PathOptions) *CompoundRegion {
	merged := UnionOfAll(append(c.flatten(), other.flatten()...), opts)
	return AssembleCompoundRegionFrom(merged, opts)
}

// DifferenceOf returns c minus other (spec §4.4), subject to the same
// hole-reconciliation limitation as UnionOf.
func (c *CompoundRegion) DifferenceOf(other *CompoundRegion, opts PathOptions) *CompoundRegion {
	result := DifferenceOfAll(c.flatten(), other.flatten(), opts)
	return AssembleCompoundRegionFrom(result, opts)
}

// IntersectionOf returns the intersection of c and other (spec §4.4),
// subject to the same hole-reconciliation limitation as UnionOf.
func (c *CompoundRegion) IntersectionOf(other *CompoundRegion, opts PathOptions) *CompoundRegion {
	var pieces []*Path
	for _, pa := range c.flatten() {
		for _, pb := range other.flatten() {
			pieces = append(pieces, IntersectionOf(pa.Clone(), pb.Clone(), opts)...)
		}
	}
	merged := UnionOfAll(pieces, opts)
	return AssembleCompoundRegionFrom(merged, opts)
}

// ContainedSegmentsOfLine clips line against c, splitting it first
// against each subregion's outer boundary and then re-splitting the
// surviving pieces against each of that subregion's holes, so a segment
// that dips into a hole is correctly broken around it (original_source
// BGLCompoundRegion; spec §4.4).
func (c *CompoundRegion) ContainedSegmentsOfLine(line Segment, opts PathOptions) []Segment {
	var out []Segment
	for _, r := range c.Subregions {
		pieces := r.Outer.ContainedSegments(line, opts)
		for _, h := range r.Holes {
			var kept []Segment
			for _, piece := range pieces {
				clip := NewPathFromSegment(piece)
				clip.Untag()
				clip.tagSegmentsRelativeToClosedPathEps(h, opts)
				for _, s := range clip.Segments {
					if s.Class == Outside || s.Class == Unshared {
						kept = append(kept, s)
					}
				}
			}
			pieces = kept
		}
		out = append(out, pieces...)
	}
	return out
}

// ContainedSubpathsOfPath clips the whole of path against c, reassembling
// the surviving fragments into sub-paths (original_source
// BGLCompoundRegion::containedSubpathsOfPath; spec §4.4 supplement).
func (c *CompoundRegion) ContainedSubpathsOfPath(path *Path, opts PathOptions) []*Path {
	var segs []Segment
	for _, r := range c.Subregions {
		clip := path.Clone()
		clip.Untag()
		clip.tagSegmentsRelativeToClosedPathEps(r.Outer, opts)
		var inside []Segment
		for _, s := range clip.Segments {
			if s.Class == Inside || s.Class == Shared || s.Class == Unshared {
				inside = append(inside, s)
			}
		}
		for _, h := range r.Holes {
			tmp := &Path{Segments: inside}
			tmp.Untag()
			tmp.tagSegmentsRelativeToClosedPathEps(h, opts)
			inside = nil
			for _, s := range tmp.Segments {
				if s.Class == Outside || s.Class == Unshared {
					inside = append(inside, s)
				}
			}
		}
		segs = append(segs, inside...)
	}
	return AssemblePathsFromSegments(segs)
}

// InfillPathsForRegionWithDensity returns a set of raster infill line
// segments, each as its own two-point Path, covering c at the requested
// density (spec §4.4, §6 Open Questions decision on infill orientation:
// opts.OrientationDeg is a caller-supplied angle, not internally
// alternated per slice). Lines are generated in a frame rotated by
// -OrientationDeg, spaced by ExtrusionWidth/Density, then clipped against
// c and rotated back.
func (c *CompoundRegion) InfillPathsForRegionWithDensity(opts InfillOptions) ([]*Path, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	bounds := c.Bounds()
	if bounds.IsEmpty() {
		return nil, nil
	}

	theta := opts.OrientationDeg * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	rotate := func(p Point2, c, s float64) Point2 {
		return Point2{p.X*c - p.Y*s, p.X*s + p.Y*c}
	}
	toLocal := func(p Point2) Point2 { return rotate(p, cos, -sin) }
	toWorld := func(p Point2) Point2 { return rotate(p, cos, sin) }

	localBounds := NewEmptyBounds()
	corners := []Point2{
		{bounds.MinX, bounds.MinY}, {bounds.MaxX, bounds.MinY},
		{bounds.MinX, bounds.MaxY}, {bounds.MaxX, bounds.MaxY},
	}
	for _, corner := range corners {
		localBounds = localBounds.Expand(toLocal(corner))
	}

	spacing := opts.spacing()
	if spacing <= 0 {
		return nil, ErrInvalidExtrusionWidth
	}

	var out []*Path
	for y := localBounds.MinY; y <= localBounds.MaxY; y += spacing {
		localLine := NewSegment(
			Point2{localBounds.MinX, y},
			Point2{localBounds.MaxX, y},
		)
		worldLine := NewSegment(toWorld(localLine.Start), toWorld(localLine.End))
		for _, seg := range c.ContainedSegmentsOfLine(worldLine, opts.PathOptions) {
			out = append(out, NewPathFromSegment(seg))
		}
	}
	return out, nil
}
