package glslang

/*
#include <glslang/Include/glslang_c_interface.h>
*/
import "C"

import (
	"runtime"
	"sync"
)

// Shader is a preprocessed and parsed shader unit.
//
// A Shader is safe for concurrent use; calls are serialized. Close releases
// the native handle. A Shader added to a Program stays alive until that
// program is closed or consumed, even if Close is called first.
type Shader struct {
	mu       sync.Mutex
	handle   *C.glslang_shader_t
	compiler *Compiler
	cleanup  runtime.Cleanup

	stage    Stage
	spirv    bool
	client   client
	messages Messages

	refs   int
	closed bool
}

// NewShader creates a shader from input, then preprocesses and parses it.
// Either step failing returns an ErrParse error carrying the engine logs.
// The include callback, if any, is only invoked during this call.
func NewShader(c *Compiler, input *ShaderInput) (*Shader, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, newError(ErrInvalidState, "nil shader input")
	}

	var bridge *includeBridge
	if input.includer != nil {
		bridge = newIncludeBridge(input.includer)
		defer bridge.release()
	}

	ci, err := newCInput(input, bridge)
	if err != nil {
		return nil, err
	}
	defer ci.free()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	handle := C.glslang_shader_create(ci.input)
	if handle == nil {
		return nil, &Error{Kind: ErrAllocation, Stage: input.stage, Message: "glslang_shader_create returned NULL"}
	}

	if C.glslang_shader_preprocess(handle, ci.input) == 0 {
		err := &Error{Kind: ErrParse, Stage: input.stage, Log: shaderLog(handle), Message: "preprocessing failed"}
		C.glslang_shader_delete(handle)
		return nil, err
	}
	if C.glslang_shader_parse(handle, ci.input) == 0 {
		err := &Error{Kind: ErrParse, Stage: input.stage, Log: shaderLog(handle), Message: "parsing failed"}
		C.glslang_shader_delete(handle)
		return nil, err
	}

	s := &Shader{
		handle:   handle,
		compiler: c,
		stage:    input.stage,
		spirv:    input.target.spirv,
		client:   input.target.client,
		messages: input.options.Messages,
	}
	s.cleanup = runtime.AddCleanup(s, deleteShader, handle)

	ev := logger().Debug().Stringer("stage", s.stage).Bool("spirv", s.spirv)
	if bridge != nil {
		ev = ev.Int64("includes", bridge.calls.Load())
	}
	ev.Msg("shader parsed")
	return s, nil
}

// Preprocess runs only the preprocessor over input and returns the
// preprocessed text. Failure returns an ErrPreprocess error.
func Preprocess(c *Compiler, input *ShaderInput) (string, error) {
	if err := c.check(); err != nil {
		return "", err
	}
	if input == nil {
		return "", newError(ErrInvalidState, "nil shader input")
	}

	var bridge *includeBridge
	if input.includer != nil {
		bridge = newIncludeBridge(input.includer)
		defer bridge.release()
	}

	ci, err := newCInput(input, bridge)
	if err != nil {
		return "", err
	}
	defer ci.free()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	handle := C.glslang_shader_create(ci.input)
	if handle == nil {
		return "", &Error{Kind: ErrAllocation, Stage: input.stage, Message: "glslang_shader_create returned NULL"}
	}
	defer C.glslang_shader_delete(handle)

	if C.glslang_shader_preprocess(handle, ci.input) == 0 {
		return "", &Error{Kind: ErrPreprocess, Stage: input.stage, Log: shaderLog(handle)}
	}
	return goStringOrEmpty(C.glslang_shader_get_preprocessed_code(handle)), nil
}

func deleteShader(handle *C.glslang_shader_t) {
	C.glslang_shader_delete(handle)
}

func shaderLog(handle *C.glslang_shader_t) Log {
	return Log{
		Info:  goStringOrEmpty(C.glslang_shader_get_info_log(handle)),
		Debug: goStringOrEmpty(C.glslang_shader_get_info_debug_log(handle)),
	}
}

// with runs fn on the live handle, or fails with ErrClosed.
func (s *Shader) with(fn func(h *C.glslang_shader_t)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &Error{Kind: ErrClosed, Stage: s.stage, Message: "shader is closed"}
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	fn(s.handle)
	return nil
}

// Stage returns the shader's stage.
func (s *Shader) Stage() Stage { return s.stage }

// SPIRV reports whether the shader was parsed with a SPIR-V target.
func (s *Shader) SPIRV() bool { return s.spirv }

// PreprocessedCode returns the source after preprocessing.
func (s *Shader) PreprocessedCode() (string, error) {
	var code string
	err := s.with(func(h *C.glslang_shader_t) {
		code = goStringOrEmpty(C.glslang_shader_get_preprocessed_code(h))
	})
	return code, err
}

// InfoLog returns the engine logs of the shader.
func (s *Shader) InfoLog() (Log, error) {
	var l Log
	err := s.with(func(h *C.glslang_shader_t) {
		l = shaderLog(h)
	})
	return l, err
}

// SetOptions sets the shader option flags. They take effect when the
// shader is linked or its IO is mapped.
func (s *Shader) SetOptions(opts ShaderOptions) error {
	return s.with(func(h *C.glslang_shader_t) {
		C.glslang_shader_set_options(h, C.int(opts))
	})
}

// ShiftBinding offsets the bindings of one resource class. The engine only
// honors shifts when bindings are auto-mapped; results are unreliable
// otherwise.
func (s *Shader) ShiftBinding(res ResourceType, base uint32) error {
	if res >= resourceTypeCount {
		return newError(ErrInvalidState, "unknown resource type %s", res)
	}
	return s.with(func(h *C.glslang_shader_t) {
		C.glslang_shader_shift_binding(h, cResourceTypes[res], C.uint(base))
	})
}

// ShiftBindingForSet is ShiftBinding restricted to one descriptor set. Same
// caveats apply.
func (s *Shader) ShiftBindingForSet(res ResourceType, base, set uint32) error {
	if res >= resourceTypeCount {
		return newError(ErrInvalidState, "unknown resource type %s", res)
	}
	return s.with(func(h *C.glslang_shader_t) {
		C.glslang_shader_shift_binding_for_set(h, cResourceTypes[res], C.uint(base), C.uint(set))
	})
}

// Compile links the shader alone in a throwaway program and generates
// SPIR-V for its stage.
func (s *Shader) Compile() ([]uint32, error) {
	return s.compile(false)
}

// CompileSizeOptimized is Compile with the size optimizer enabled.
func (s *Shader) CompileSizeOptimized() ([]uint32, error) {
	return s.compile(true)
}

func (s *Shader) compile(optimizeSize bool) ([]uint32, error) {
	p, err := NewProgram(s.compiler)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	if err := p.AddShader(s); err != nil {
		return nil, err
	}
	if optimizeSize {
		return p.CompileSizeOptimized(s.stage)
	}
	return p.Compile(s.stage)
}

// Close releases the shader. It is deferred while programs still hold the
// shader. Calling Close more than once is a no-op.
func (s *Shader) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.refs == 0 {
		s.deleteLocked()
	}
	return nil
}

// retain registers a program holding the shader and returns its handle.
func (s *Shader) retain() (*C.glslang_shader_t, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, &Error{Kind: ErrClosed, Stage: s.stage, Message: "shader is closed"}
	}
	s.refs++
	return s.handle, nil
}

func (s *Shader) unref() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs--
	if s.refs == 0 && s.closed {
		s.deleteLocked()
	}
}

func (s *Shader) deleteLocked() {
	if s.handle == nil {
		return
	}
	s.cleanup.Stop()
	C.glslang_shader_delete(s.handle)
	s.handle = nil
	logger().Debug().Stringer("stage", s.stage).Msg("shader released")
}
