package geoslice

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CompoundRegionSuite struct {
	suite.Suite
	opts PathOptions
}

func (s *CompoundRegionSuite) SetupTest() {
	s.opts = DefaultPathOptions()
}

func (s *CompoundRegionSuite) TestAssembleClassifiesHoleByNestingDepth() {
	c := AssembleCompoundRegionFrom([]*Path{square(0, 0, 10), square(2, 2, 2)}, s.opts)
	s.Require().Len(c.Subregions, 1)
	s.Require().Len(c.Subregions[0].Holes, 1)
}

func (s *CompoundRegionSuite) TestAssembleSeparatesDisjointOuters() {
	c := AssembleCompoundRegionFrom([]*Path{square(0, 0, 2), square(100, 100, 2)}, s.opts)
	s.Require().Len(c.Subregions, 2)
	for _, r := range c.Subregions {
		s.Empty(r.Holes)
	}
}

func (s *CompoundRegionSuite) TestAssembleHandlesIslandWithinAHole() {
	// A ring (outer minus a hole) with a small solid island inside the hole.
	paths := []*Path{
		square(0, 0, 10),  // outer, depth 0
		square(3, 3, 4),   // hole, depth 1
		square(4, 4, 1),   // island inside the hole, depth 2
	}
	c := AssembleCompoundRegionFrom(paths, s.opts)
	s.Require().Len(c.Subregions, 2)

	var outerCount, islandCount int
	for _, r := range c.Subregions {
		if len(r.Holes) == 1 {
			outerCount++
		} else {
			islandCount++
		}
	}
	s.Equal(1, outerCount)
	s.Equal(1, islandCount)
}

func (s *CompoundRegionSuite) TestContainsAcrossSubregions() {
	c := AssembleCompoundRegionFrom([]*Path{square(0, 0, 10), square(2, 2, 2)}, s.opts)
	s.True(c.Contains(Point2{1, 1}))
	s.False(c.Contains(Point2{3, 3}))
}

func (s *CompoundRegionSuite) TestContainedSegmentsOfLineSkipsHoles() {
	c := AssembleCompoundRegionFrom([]*Path{square(0, 0, 10), square(4, 4, 2)}, s.opts)
	line := NewSegment(Point2{-1, 5}, Point2{11, 5})
	pieces := c.ContainedSegmentsOfLine(line, s.opts)

	total := 0.0
	for _, p := range pieces {
		total += p.Length()
	}
	s.InDelta(8.0, total, 1e-6) // 10 wide outer minus the 2-wide hole gap
}

func (s *CompoundRegionSuite) TestInfillRejectsInvalidDensity() {
	c := AssembleCompoundRegionFrom([]*Path{square(0, 0, 10)}, s.opts)
	_, err := c.InfillPathsForRegionWithDensity(InfillOptions{PathOptions: s.opts, Density: 0, ExtrusionWidth: 0.4})
	s.ErrorIs(err, ErrInvalidDensity)
}

func (s *CompoundRegionSuite) TestInfillProducesLinesInsideTheRegion() {
	c := AssembleCompoundRegionFrom([]*Path{square(0, 0, 10)}, s.opts)
	lines, err := c.InfillPathsForRegionWithDensity(InfillOptions{
		PathOptions: s.opts, Density: 0.5, ExtrusionWidth: 1, OrientationDeg: 0,
	})
	s.Require().NoError(err)
	s.NotEmpty(lines)
	for _, l := range lines {
		mid := Point2{
			(l.StartPoint().X + l.EndPoint().X) / 2,
			(l.StartPoint().Y + l.EndPoint().Y) / 2,
		}
		s.True(c.Contains(mid))
	}
}

func TestCompoundRegionSuite(t *testing.T) {
	suite.Run(t, new(CompoundRegionSuite))
}

func TestCompoundRegionUnionOfMergesOverlappingSubregions(t *testing.T) {
	a := AssembleCompoundRegionFrom([]*Path{square(0, 0, 2)}, DefaultPathOptions())
	b := AssembleCompoundRegionFrom([]*Path{square(1, 1, 2)}, DefaultPathOptions())
	merged := a.UnionOf(b, DefaultPathOptions())
	require.Len(t, merged.Subregions, 1)
}
