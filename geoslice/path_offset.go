package geoslice

// LeftOffset returns the closed paths obtained by translating every
// segment of p perpendicular-left of its own direction by d, rejoining
// consecutive offset segments at the intersection of their extended
// lines (a miter join), and repairing the corners that a bisector offset
// cannot resolve cleanly (spec §4.2, §9 design note on the incomplete
// "case II" of the original bisector offset).
//
// A miter join is invalid when the corner it produces runs backward
// relative to its own offset segment's original direction — the
// signature of a reflex corner collapsing under an offset larger than
// its local feature size. Invalid joins are pruned by welding their
// neighbors directly together, iterating up to opts.MaxPruneIterations
// times; a path that still has invalid joins after the cap, or that
// collapses to fewer than three segments, contributes no output paths
// (the offset-collapse policy, spec §7). The repaired loop is then run
// through SeparateSelfIntersectingSubpaths, keeping only the pieces whose
// winding direction matches the input's — an offset artifact loop
// produced at a tight concave corner winds the opposite way and is
// discarded.
//
// LeftOffset requires p to be closed; a non-closed path returns nil.
func (p *Path) LeftOffset(d float64, opts OffsetOptions) []*Path {
	if !p.IsClosed() || p.Len() < 3 {
		return nil
	}
	origClockwise := p.IsClockwise()

	segs := make([]Segment, p.Len())
	copy(segs, p.Segments)

	for iter := 0; iter <= opts.maxPruneIterations(); iter++ {
		offset := make([]Segment, len(segs))
		for i, s := range segs {
			offset[i] = s.LeftOffset(d)
		}

		n := len(offset)
		joins := make([]Point2, n)
		for i := 0; i < n; i++ {
			prev := offset[(i-1+n)%n]
			isect := prev.IntersectionWithExtendedLineEps(offset[i], opts.epsilon())
			switch {
			case isect.None():
				joins[i] = Point2{(prev.End.X + offset[i].Start.X) / 2, (prev.End.Y + offset[i].Start.Y) / 2}
			case isect.Kind == SegmentOverlap:
				joins[i] = isect.P1
			default:
				joins[i] = isect.P1
			}
		}

		invalid := make([]bool, n)
		anyInvalid := false
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			edge := Point2{joins[next].X - joins[i].X, joins[next].Y - joins[i].Y}
			dir := offset[i].Direction()
			if edge.X*dir.X+edge.Y*dir.Y <= 0 {
				invalid[i] = true
				anyInvalid = true
			}
		}

		if !anyInvalid {
			next := make([]Segment, n)
			for i := 0; i < n; i++ {
				next[i] = Segment{
					Start:          joins[i],
					End:            joins[(i+1)%n],
					Temperature:    segs[i].Temperature,
					ExtrusionWidth: segs[i].ExtrusionWidth,
				}
			}
			repaired := &Path{Segments: next}
			var out []*Path
			for _, sub := range repaired.separateSelfIntersectingSubpathsEps(opts.epsilon()) {
				if sub.Len() >= 3 && sub.IsClockwise() == origClockwise {
					out = append(out, sub)
				}
			}
			return out
		}

		if iter == opts.maxPruneIterations() {
			opts.trace("LeftOffset: %d invalid joins unresolved after %d passes, offset collapsed", countTrue(invalid), iter)
			return nil
		}

		// Weld away the segments whose leading join is invalid, keeping the
		// geometry connected for another pass.
		var kept []Segment
		for i := 0; i < n; i++ {
			if invalid[i] {
				continue
			}
			kept = append(kept, segs[i])
		}
		if len(kept) < 3 {
			opts.trace("LeftOffset: collapsed below 3 segments while pruning invalid joins")
			return nil
		}
		segs = kept
	}
	return nil
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// Inset returns the result of shrinking the closed path p inward by d,
// regardless of its winding direction, by choosing the sign of the
// underlying LeftOffset so that "left" faces into the shape
// (original_source BGLPath::inset, built atop leftOffset; spec §4.2).
func (p *Path) Inset(d float64, opts OffsetOptions) []*Path {
	dir := d
	if !p.IsClockwise() {
		dir = -d
	}
	return p.LeftOffset(dir, opts)
}
