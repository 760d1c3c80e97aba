package geoslice

import (
	"fmt"
	"strings"
)

// svgPixelsPerMM converts millimeter model coordinates to the 90-dpi CSS
// pixel units SVG viewers assume absent an explicit physical unit
// (original_source BGLPath::svgPathDataWithOffset; spec §4.6).
const svgPixelsPerMM = 90.0 / 25.4

// formatSVGCoordinate renders a coordinate pair with each value padded to an
// 8-character field, matching the ostream setw(8) formatting of
// BGLPath::svgPathDataWithOffset byte-for-byte.
func formatSVGCoordinate(p Point2) string {
	return fmt.Sprintf("%8.3f,%8.3f", p.X*svgPixelsPerMM, p.Y*svgPixelsPerMM)
}

// SVGPathData renders p as an SVG path "d" attribute value: an M token at
// the start point, an L token per subsequent vertex, and a trailing Z if
// the path is closed (spec §4.6). An empty path renders as the empty
// string.
func (p *Path) SVGPathData() string {
	if p.Len() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M")
	b.WriteString(formatSVGCoordinate(p.StartPoint()))
	for _, s := range p.Segments {
		b.WriteString(" L")
		b.WriteString(formatSVGCoordinate(s.End))
	}
	if p.IsClosed() {
		b.WriteString(" Z")
	}
	return b.String()
}

// SVGPathData renders the outer boundary followed by every hole as a
// single multi-subpath "d" string, intended for an even-odd fill rule
// (spec §4.6).
func (r *SimpleRegion) SVGPathData() string {
	var parts []string
	if r.Outer != nil {
		if d := r.Outer.SVGPathData(); d != "" {
			parts = append(parts, d)
		}
	}
	for _, h := range r.Holes {
		if d := h.SVGPathData(); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " ")
}

// SVGPathData concatenates every subregion's path data (spec §4.6).
func (c *CompoundRegion) SVGPathData() string {
	var parts []string
	for _, r := range c.Subregions {
		if d := r.SVGPathData(); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " ")
}
