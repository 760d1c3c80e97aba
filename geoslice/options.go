package geoslice

// PathOptions tunes the geometric tolerance used by path and region
// operations. The zero value behaves like DefaultPathOptions: a
// non-positive Epsilon falls back to the package Epsilon and a nil Trace
// is silent.
type PathOptions struct {
	// Epsilon is the tolerance for point equality, containment, and
	// degenerate-intersection detection. A value <= 0 means Epsilon.
	Epsilon float64

	// Trace, if non-nil, receives diagnostic notices for degraded-output
	// conditions that are not errors (spec'd policy: "surface no error, log
	// at trace level via an injected sink if provided"). It is never
	// required; nil means silence.
	Trace TraceFunc
}

// DefaultPathOptions returns PathOptions seeded with Epsilon and a nil Trace sink.
func DefaultPathOptions() PathOptions {
	return PathOptions{Epsilon: Epsilon}
}

func (o PathOptions) epsilon() float64 {
	if o.Epsilon > 0 {
		return o.Epsilon
	}
	return Epsilon
}

func (o PathOptions) trace(format string, args ...any) {
	if o.Trace != nil {
		o.Trace(format, args...)
	}
}

// OffsetOptions tunes the LeftOffset/Inset bisector algorithm.
type OffsetOptions struct {
	PathOptions

	// MaxPruneIterations bounds how many invalid-run pruning passes
	// LeftOffset will attempt before giving up and returning the spec
	// §7 "offset collapse" empty result for that path. Zero means use the
	// package default.
	MaxPruneIterations int
}

// DefaultOffsetOptions returns OffsetOptions with sane defaults.
func DefaultOffsetOptions() OffsetOptions {
	return OffsetOptions{PathOptions: DefaultPathOptions(), MaxPruneIterations: 64}
}

func (o OffsetOptions) maxPruneIterations() int {
	if o.MaxPruneIterations > 0 {
		return o.MaxPruneIterations
	}
	return 64
}

// InfillOptions configures CompoundRegion.InfillPathsForRegionWithDensity.
type InfillOptions struct {
	PathOptions

	// Density is the fraction of solid fill, in (0, 1]. Spacing between
	// raster lines is ExtrusionWidth/Density.
	Density float64

	// ExtrusionWidth is the nominal bead width, in millimetres. Must be positive.
	ExtrusionWidth float64

	// OrientationDeg is the raster angle in degrees. Per spec §4.4 the
	// engine exposes alternation between slices as an external input:
	// callers typically pass 45 on even layers and -45 on odd layers.
	OrientationDeg float64
}

// Validate checks Density and ExtrusionWidth against spec §6's input contract.
func (o InfillOptions) Validate() error {
	if !(o.Density > 0) || o.Density > 1 {
		return ErrInvalidDensity
	}
	if !(o.ExtrusionWidth > 0) {
		return ErrInvalidExtrusionWidth
	}
	return nil
}

// spacing returns the distance between adjacent raster lines.
func (o InfillOptions) spacing() float64 {
	return o.ExtrusionWidth / o.Density
}
