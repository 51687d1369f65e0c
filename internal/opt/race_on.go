//go:build race

package opt

// Race_ reports whether the binary was built with the race detector.
// Instrumented builds allocate shadow memory, so allocation counts taken
// under race are not meaningful.
const Race_ = true
