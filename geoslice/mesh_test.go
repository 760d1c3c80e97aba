package geoslice

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// cubeMesh returns the four side faces (two triangles each) of an axis
// aligned box from (0,0,0) to (size,size,size). The top and bottom caps
// are omitted since they never intersect a horizontal slicing plane
// strictly between 0 and size, and RegionForSliceAtZ only needs the
// faces that do.
func cubeMesh(size float64) *Mesh3d {
	corner := func(x, y, z float64) Point3 { return Point3{x, y, z} }
	quad := func(a, b, c, d Point3) []Triangle3 {
		return []Triangle3{{a, b, c}, {a, c, d}}
	}
	var tris []Triangle3
	tris = append(tris, quad(
		corner(0, 0, 0), corner(size, 0, 0), corner(size, 0, size), corner(0, 0, size))...) // y=0
	tris = append(tris, quad(
		corner(0, size, 0), corner(size, size, 0), corner(size, size, size), corner(0, size, size))...) // y=size
	tris = append(tris, quad(
		corner(0, 0, 0), corner(0, size, 0), corner(0, size, size), corner(0, 0, size))...) // x=0
	tris = append(tris, quad(
		corner(size, 0, 0), corner(size, size, 0), corner(size, size, size), corner(size, 0, size))...) // x=size
	return NewMesh3d(tris)
}

type MeshSuite struct {
	suite.Suite
	opts PathOptions
}

func (s *MeshSuite) SetupTest() {
	s.opts = DefaultPathOptions()
}

func (s *MeshSuite) TestRegionForSliceAtZMidHeightIsASquare() {
	m := cubeMesh(10)
	region, err := m.RegionForSliceAtZ(5, s.opts)
	s.Require().NoError(err)
	s.Require().Len(region.Subregions, 1)
	s.InDelta(100, region.Subregions[0].Area(), 1e-6)
}

func (s *MeshSuite) TestRegionForSliceAtZOutsideBoundsIsEmpty() {
	m := cubeMesh(10)
	region, err := m.RegionForSliceAtZ(50, s.opts)
	s.Require().NoError(err)
	s.Empty(region.Subregions)
}

func (s *MeshSuite) TestRegionForSliceAtZRejectsNonFiniteZ() {
	m := cubeMesh(10)
	_, err := m.RegionForSliceAtZ(nan(), s.opts)
	s.ErrorIs(err, ErrInvalidZ)
}

func (s *MeshSuite) TestRegionForSliceAtZRejectsEmptyMesh() {
	m := NewMesh3d(nil)
	_, err := m.RegionForSliceAtZ(1, s.opts)
	s.ErrorIs(err, ErrEmptyMesh)
}

func (s *MeshSuite) TestTranslatePreservesCrossSection() {
	m := cubeMesh(10)
	m.Translate(Point3{5, 5, 5})
	m.RecalculateBounds()
	region, err := m.RegionForSliceAtZ(10, s.opts)
	s.Require().NoError(err)
	s.Require().Len(region.Subregions, 1)
	s.InDelta(100, region.Subregions[0].Area(), 1e-6)
}

func (s *MeshSuite) TestTranslateToCenterOfPlatformCentersAndDropsToBed() {
	m := cubeMesh(10)
	m.Translate(Point3{37, -12, 4})
	m.TranslateToCenterOfPlatform(200, 200)
	s.InDelta(0, m.Bounds.MinZ, 1e-9)
	s.InDelta(100, (m.Bounds.MinX+m.Bounds.MaxX)/2, 1e-9)
	s.InDelta(100, (m.Bounds.MinY+m.Bounds.MaxY)/2, 1e-9)
}

func TestMeshSuite(t *testing.T) {
	suite.Run(t, new(MeshSuite))
}

func nan() float64 {
	var zero float64
	return zero / zero
}
