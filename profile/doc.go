// Package profile provides optional runtime profiling for dplint.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), every operation is a no-op
// with zero overhead, and the CLI does not expose profiling flags.
//
// Supported modes with the tag enabled: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace. Profiles are written to the
// configured directory as MODE.pprof files, analyzable with
// "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
