//go:build tgcrelease

package tag

// Debug is false when built with -tags tgcrelease: every assert call
// in package tgc becomes a no-op the compiler can eliminate entirely.
const Debug = false
