// Package trace renders oscillator shapes into float buffers and measures
// their spectral content. It exists for tests, tuning and offline
// inspection; nothing in the real-time path depends on it.
package trace
