package glslang

/*
#include <stdint.h>
#include <stdlib.h>
#include <glslang/Include/glslang_c_interface.h>

extern glsl_include_result_t* goglslangIncludeSystem(void*, char*, char*, size_t);
extern glsl_include_result_t* goglslangIncludeLocal(void*, char*, char*, size_t);
extern int goglslangFreeIncludeResult(void*, glsl_include_result_t*);
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"sync/atomic"
	"unicode/utf8"
	"unsafe"
)

// IncludeType distinguishes #include <name> from #include "name".
type IncludeType uint8

const (
	// IncludeSystem is an angle-bracket include.
	IncludeSystem IncludeType = iota
	// IncludeLocal is a quoted include, relative to the including file.
	IncludeLocal
)

func (t IncludeType) String() string {
	if t == IncludeSystem {
		return "system"
	}
	return "local"
}

// IncludeResult is a resolved include.
type IncludeResult struct {
	// Name is the resolved header name, reported back as the includer of
	// nested includes.
	Name string

	// Data is the header text.
	Data string
}

// IncludeCallback resolves an include directive. includerName is the name
// of the file containing the directive and depth its nesting level,
// starting at 1. Returning false makes the directive fail to compile.
//
// The callback runs synchronously on the goroutine that created the shader.
// A panic inside it is recovered and treated as an unresolved include.
type IncludeCallback func(kind IncludeType, headerName, includerName string, depth int) (IncludeResult, bool)

// includeBridge carries an IncludeCallback across the engine boundary. The
// engine sees only the address of a C slot holding a cgo.Handle.
type includeBridge struct {
	callback IncludeCallback
	handle   cgo.Handle
	slot     *C.uintptr_t

	calls       atomic.Int64
	outstanding atomic.Int64
	released    atomic.Bool
}

func newIncludeBridge(callback IncludeCallback) *includeBridge {
	b := &includeBridge{callback: callback}
	b.handle = cgo.NewHandle(b)
	b.slot = (*C.uintptr_t)(C.malloc(C.size_t(unsafe.Sizeof(C.uintptr_t(0)))))
	*b.slot = C.uintptr_t(b.handle)
	return b
}

// ctx is the callbacks_ctx value handed to the engine.
func (b *includeBridge) ctx() unsafe.Pointer {
	return unsafe.Pointer(b.slot)
}

// release drops the handle and the slot. It is safe to call more than once.
func (b *includeBridge) release() {
	if !b.released.CompareAndSwap(false, true) {
		return
	}
	if n := b.outstanding.Load(); n != 0 {
		logger().Warn().Int64("outstanding", n).Msg("include results not returned by the engine")
	}
	b.handle.Delete()
	C.free(unsafe.Pointer(b.slot))
	b.slot = nil
}

// resolve runs the callback, converting a panic into an unresolved include.
func (b *includeBridge) resolve(kind IncludeType, header, includer string, depth int) (res IncludeResult, ok bool) {
	b.calls.Add(1)
	defer func() {
		if r := recover(); r != nil {
			logger().Warn().
				Str("header", header).
				Str("includer", includer).
				Str("panic", fmt.Sprint(r)).
				Msg("include callback panicked")
			res, ok = IncludeResult{}, false
		}
	}()
	return b.callback(kind, header, includer, depth)
}

// include resolves one directive and returns a result owned by the engine
// until it is passed back to the free trampoline, or nil.
func (b *includeBridge) include(kind IncludeType, header, includer string, depth int) *C.glsl_include_result_t {
	if !utf8.ValidString(header) || !utf8.ValidString(includer) {
		logger().Warn().Str("kind", kind.String()).Msg("include names are not valid UTF-8")
		return nil
	}

	res, ok := b.resolve(kind, header, includer, depth)
	if !ok {
		logger().Debug().Str("kind", kind.String()).Str("header", header).Msg("include not resolved")
		return nil
	}

	r := (*C.glsl_include_result_t)(C.malloc(C.size_t(unsafe.Sizeof(C.glsl_include_result_t{}))))
	if r == nil {
		return nil
	}
	r.header_name = C.CString(res.Name)
	r.header_data = C.CString(res.Data)
	r.header_length = C.size_t(len(res.Data))
	b.outstanding.Add(1)

	logger().Debug().
		Str("kind", kind.String()).
		Str("header", header).
		Str("resolved", res.Name).
		Int("depth", depth).
		Int("bytes", len(res.Data)).
		Msg("include resolved")
	return r
}

// bridgeFromContext recovers the bridge behind a callbacks_ctx pointer.
func bridgeFromContext(ctx unsafe.Pointer) *includeBridge {
	if ctx == nil {
		return nil
	}
	h := cgo.Handle(*(*C.uintptr_t)(ctx))
	b, _ := h.Value().(*includeBridge)
	return b
}

// readIncludeResult copies a result back into Go memory.
func readIncludeResult(r *C.glsl_include_result_t) (IncludeResult, bool) {
	if r == nil {
		return IncludeResult{}, false
	}
	return IncludeResult{
		Name: goStringOrEmpty(r.header_name),
		Data: C.GoStringN(r.header_data, C.int(r.header_length)),
	}, true
}

// freeIncludeResult releases r and everything it owns.
func freeIncludeResult(ctx unsafe.Pointer, r *C.glsl_include_result_t) {
	if r == nil {
		return
	}
	C.free(unsafe.Pointer(r.header_name))
	C.free(unsafe.Pointer(r.header_data))
	C.free(unsafe.Pointer(r))
	if b := bridgeFromContext(ctx); b != nil {
		b.outstanding.Add(-1)
	}
}

func includeTrampoline(ctx unsafe.Pointer, kind IncludeType, headerName, includerName *C.char, depth C.size_t) *C.glsl_include_result_t {
	b := bridgeFromContext(ctx)
	if b == nil || headerName == nil {
		return nil
	}
	return b.include(kind, C.GoString(headerName), goStringOrEmpty(includerName), int(depth))
}

//export goglslangIncludeSystem
func goglslangIncludeSystem(ctx unsafe.Pointer, headerName, includerName *C.char, depth C.size_t) *C.glsl_include_result_t {
	return includeTrampoline(ctx, IncludeSystem, headerName, includerName, depth)
}

//export goglslangIncludeLocal
func goglslangIncludeLocal(ctx unsafe.Pointer, headerName, includerName *C.char, depth C.size_t) *C.glsl_include_result_t {
	return includeTrampoline(ctx, IncludeLocal, headerName, includerName, depth)
}

//export goglslangFreeIncludeResult
func goglslangFreeIncludeResult(ctx unsafe.Pointer, result *C.glsl_include_result_t) C.int {
	freeIncludeResult(ctx, result)
	return 0
}

func includeCallbacks() C.glsl_include_callbacks_t {
	return C.glsl_include_callbacks_t{
		include_system:      C.glsl_include_system_func(C.goglslangIncludeSystem),
		include_local:       C.glsl_include_local_func(C.goglslangIncludeLocal),
		free_include_result: C.glsl_free_include_result_func(C.goglslangFreeIncludeResult),
	}
}
