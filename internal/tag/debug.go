//go:build !tgcrelease

// Package tag carries build-tag-selected flags read by the rest of the
// module, so debug-only checks can be compiled out of release builds
// entirely rather than skipped at runtime.
package tag

// Debug is true unless the module is built with the tgcrelease tag.
// Every assert call in package tgc is compiled away when Debug is
// false.
const Debug = true
