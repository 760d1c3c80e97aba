package geoslice

// TraceFunc is an injected diagnostic sink, analogous to a structured
// logger's Debugf but with no dependency on any particular logging
// library: the teacher corpus this package is modeled on carries none in
// its non-test code, so geoslice doesn't either (see DESIGN.md). A nil
// TraceFunc is always safe to call through PathOptions.trace, which no-ops
// when Trace is unset.
type TraceFunc func(format string, args ...any)
