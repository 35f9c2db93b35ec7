package glslang

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	pkgLogger.Store(&nop)
}

// SetLogger sets the logger used for engine lifecycle and include callback
// diagnostics. The package is silent by default.
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", "glslang").Logger()
	pkgLogger.Store(&l)
}

func logger() *zerolog.Logger {
	return pkgLogger.Load()
}
