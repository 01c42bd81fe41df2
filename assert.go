package tgc

import (
	"github.com/facebookgo/stackerr"

	"github.com/skipor/tgc/internal/tag"
)

// assert is the debug-only contract check for host-protocol
// violations: a fatal assertion in debug builds, compiled away
// entirely (tag.Debug is a const, so the branch is dead code) when
// built with -tags tgcrelease.
func assert(cond bool, msg string) {
	if !tag.Debug {
		return
	}
	if !cond {
		panic(stackerr.Newf("tgc: assertion failed: %s", msg))
	}
}
