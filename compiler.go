package glslang

/*
#include <glslang/Include/glslang_c_interface.h>
*/
import "C"

import (
	"sync"
)

// Compiler is proof that the engine has been initialized for this process.
// A zero Compiler is rejected by every constructor; use Acquire.
type Compiler struct {
	ok bool
}

var acquire = sync.OnceValue(func() *Compiler {
	if C.glslang_initialize_process() == 0 {
		logger().Error().Msg("glslang_initialize_process failed")
		return nil
	}
	logger().Debug().Msg("engine initialized")
	return &Compiler{ok: true}
})

// Acquire initializes the engine on first use and returns the process-wide
// Compiler. Every call returns the same value. If initialization fails,
// Acquire returns nil and never retries.
//
// The engine is never finalized; its process-wide tables are reclaimed at
// process exit.
func Acquire() *Compiler {
	return acquire()
}

func (c *Compiler) check() error {
	if c == nil || !c.ok {
		return newError(ErrNoCompiler, "use glslang.Acquire")
	}
	return nil
}

// NewShader is shorthand for NewShader(c, input).
func (c *Compiler) NewShader(input *ShaderInput) (*Shader, error) {
	return NewShader(c, input)
}

// NewProgram is shorthand for NewProgram(c).
func (c *Compiler) NewProgram() (*Program, error) {
	return NewProgram(c)
}

// Preprocess is shorthand for Preprocess(c, input).
func (c *Compiler) Preprocess(input *ShaderInput) (string, error) {
	return Preprocess(c, input)
}
