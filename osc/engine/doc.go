// Package engine ties the oscillator core together: per tick it advances
// the primary phase from the pitch control, resolves the two modulation
// channels, samples the selection triggers, runs the active oscillator and
// conditions its stereo output.
//
// The engine is single-voice and not safe for concurrent use: a real-time
// driver calls Tick exactly once per sample period from one goroutine.
// Tick does not allocate, block or fail; every input is clamped or wrapped
// into range before use.
package engine
