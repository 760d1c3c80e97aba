package geoslice

import "math"

// Triangle3 is a single mesh facet, vertices in model space millimetres,
// winding unspecified (spec §4.5).
type Triangle3 struct {
	V0, V1, V2 Point3
}

// Bounds3 is an axis-aligned bounding box in model space.
type Bounds3 struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// NewEmptyBounds3 returns a Bounds3 safe to Expand into.
func NewEmptyBounds3() Bounds3 {
	return Bounds3{
		MinX: math.Inf(1), MinY: math.Inf(1), MinZ: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1), MaxZ: math.Inf(-1),
	}
}

// IsEmpty reports whether b has never been expanded.
func (b Bounds3) IsEmpty() bool {
	return b.MinX > b.MaxX
}

// Expand grows b, if necessary, to contain p.
func (b Bounds3) Expand(p Point3) Bounds3 {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	if p.Z < b.MinZ {
		b.MinZ = p.Z
	}
	if p.Z > b.MaxZ {
		b.MaxZ = p.Z
	}
	return b
}

// Mesh3d is a closed triangle mesh, used only as the input to slicing
// (spec §4.5). It keeps no adjacency information; RegionForSliceAtZ
// recovers polygon topology from raw triangle-plane crossings the same
// way AssemblePathsFromSegments recovers it from unordered segments.
type Mesh3d struct {
	Triangles []Triangle3
	Bounds    Bounds3
}

// NewMesh3d returns a Mesh3d over triangles with its bounds precomputed.
func NewMesh3d(triangles []Triangle3) *Mesh3d {
	m := &Mesh3d{Triangles: triangles}
	m.RecalculateBounds()
	return m
}

// RecalculateBounds recomputes m.Bounds from m.Triangles. Callers that
// mutate Triangles directly must call this afterward.
func (m *Mesh3d) RecalculateBounds() {
	b := NewEmptyBounds3()
	for _, t := range m.Triangles {
		b = b.Expand(t.V0)
		b = b.Expand(t.V1)
		b = b.Expand(t.V2)
	}
	m.Bounds = b
}

// Translate shifts every vertex by d.
func (m *Mesh3d) Translate(d Point3) {
	for i := range m.Triangles {
		m.Triangles[i].V0 = m.Triangles[i].V0.Add(d)
		m.Triangles[i].V1 = m.Triangles[i].V1.Add(d)
		m.Triangles[i].V2 = m.Triangles[i].V2.Add(d)
	}
	m.RecalculateBounds()
}

// Scale multiplies every vertex coordinate by factor about the origin.
func (m *Mesh3d) Scale(factor float64) {
	m.ScaleXYZ(factor, factor, factor)
}

// ScaleXYZ scales each axis independently about the origin.
func (m *Mesh3d) ScaleXYZ(sx, sy, sz float64) {
	for i := range m.Triangles {
		t := &m.Triangles[i]
		t.V0 = Point3{t.V0.X * sx, t.V0.Y * sy, t.V0.Z * sz}
		t.V1 = Point3{t.V1.X * sx, t.V1.Y * sy, t.V1.Z * sz}
		t.V2 = Point3{t.V2.X * sx, t.V2.Y * sy, t.V2.Z * sz}
	}
	m.RecalculateBounds()
}

func rotatePoint3(p Point3, axis int, sin, cos float64) Point3 {
	switch axis {
	case 0: // X
		return Point3{p.X, p.Y*cos - p.Z*sin, p.Y*sin + p.Z*cos}
	case 1: // Y
		return Point3{p.X*cos + p.Z*sin, p.Y, -p.X*sin + p.Z*cos}
	default: // Z
		return Point3{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos, p.Z}
	}
}

func (m *Mesh3d) rotate(axis int, degrees float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	for i := range m.Triangles {
		t := &m.Triangles[i]
		t.V0 = rotatePoint3(t.V0, axis, sin, cos)
		t.V1 = rotatePoint3(t.V1, axis, sin, cos)
		t.V2 = rotatePoint3(t.V2, axis, sin, cos)
	}
	m.RecalculateBounds()
}

// RotateX rotates the mesh degrees about the X axis, through the origin.
func (m *Mesh3d) RotateX(degrees float64) { m.rotate(0, degrees) }

// RotateY rotates the mesh degrees about the Y axis, through the origin.
func (m *Mesh3d) RotateY(degrees float64) { m.rotate(1, degrees) }

// RotateZ rotates the mesh degrees about the Z axis, through the origin.
func (m *Mesh3d) RotateZ(degrees float64) { m.rotate(2, degrees) }

// TranslateToCenterOfPlatform shifts the mesh so its XY bounding-box
// center sits at the center of a platformWidth x platformDepth build
// plate and its lowest point sits on Z=0 (spec §4.5: the placement step
// every slicer performs before RegionForSliceAtZ is called on an
// arbitrarily-positioned input mesh).
func (m *Mesh3d) TranslateToCenterOfPlatform(platformWidth, platformDepth float64) {
	if len(m.Triangles) == 0 {
		return
	}
	cx := (m.Bounds.MinX + m.Bounds.MaxX) / 2
	cy := (m.Bounds.MinY + m.Bounds.MaxY) / 2
	d := Point3{
		X: platformWidth/2 - cx,
		Y: platformDepth/2 - cy,
		Z: -m.Bounds.MinZ,
	}
	m.Translate(d)
}

// triangleSlice returns the boundary segment, if any, where triangle t
// crosses the Z=z plane. A triangle entirely to one side, or exactly
// coplanar with z, contributes nothing. The segment is oriented using the
// vertex alone on one side of the plane: walking from the crossing on its
// first edge to the crossing on its second edge keeps the triangle's
// below-the-plane material on a consistent winding side, which is what
// lets AssemblePathsFromSegments and AssembleCompoundRegionFrom recover
// correctly-wound, correctly-nested loops from the unordered segment set
// a whole mesh produces (standard triangle-plane slicing technique; spec
// §4.5).
func triangleSlice(t Triangle3, z, eps float64) (Segment, bool) {
	v := [3]Point3{t.V0, t.V1, t.V2}
	d := [3]float64{v[0].Z - z, v[1].Z - z, v[2].Z - z}

	sign := func(x float64) int {
		switch {
		case x > eps:
			return 1
		case x < -eps:
			return -1
		default:
			return 0
		}
	}
	s := [3]int{sign(d[0]), sign(d[1]), sign(d[2])}

	zeros := 0
	for _, si := range s {
		if si == 0 {
			zeros++
		}
	}

	switch zeros {
	case 3:
		return Segment{}, false
	case 2:
		a, b := -1, -1
		for i, si := range s {
			if si == 0 {
				if a == -1 {
					a = i
				} else {
					b = i
				}
			}
		}
		return NewSegment(v[a].XY(), v[b].XY()), true
	case 1:
		zi := 0
		for i, si := range s {
			if si == 0 {
				zi = i
			}
		}
		o1, o2 := (zi+1)%3, (zi+2)%3
		if s[o1] == 0 || s[o2] == 0 || s[o1] == s[o2] {
			return Segment{}, false
		}
		tp := d[o1] / (d[o1] - d[o2])
		p := v[o1].Lerp(v[o2], tp).XY()
		if d[o1] > 0 {
			return NewSegment(v[zi].XY(), p), true
		}
		return NewSegment(p, v[zi].XY()), true
	}

	alone := -1
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		if s[j] == s[k] && s[i] != s[j] {
			alone = i
			break
		}
	}
	if alone == -1 {
		return Segment{}, false
	}
	j, k := (alone+1)%3, (alone+2)%3
	tj := d[alone] / (d[alone] - d[j])
	tk := d[alone] / (d[alone] - d[k])
	pj := v[alone].Lerp(v[j], tj).XY()
	pk := v[alone].Lerp(v[k], tk).XY()
	if d[alone] > 0 {
		return NewSegment(pj, pk), true
	}
	return NewSegment(pk, pj), true
}

// RegionForSliceAtZ intersects every triangle of m against the Z=z plane,
// collects the resulting boundary segments, assembles and repairs them
// into closed paths, and classifies the paths into a nested
// CompoundRegion (spec §4.5). It returns ErrInvalidZ for a non-finite z
// and ErrEmptyMesh for a mesh with no triangles; a z outside the mesh's
// bounds is not an error, it simply yields an empty region.
func (m *Mesh3d) RegionForSliceAtZ(z float64, opts PathOptions) (*CompoundRegion, error) {
	if len(m.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return nil, ErrInvalidZ
	}

	eps := opts.epsilon()
	var segs []Segment
	for _, t := range m.Triangles {
		if seg, ok := triangleSlice(t, z, eps); ok && seg.Length() > eps {
			segs = append(segs, seg)
		}
	}

	paths := RepairUnclosedPaths(AssemblePathsFromSegments(segs))
	closed := paths[:0]
	for _, p := range paths {
		if p.IsClosed() {
			closed = append(closed, p)
		}
	}
	opts.trace("RegionForSliceAtZ: z=%.4f triangles=%d segments=%d closed paths=%d", z, len(m.Triangles), len(segs), len(closed))
	return AssembleCompoundRegionFrom(closed, opts), nil
}
