package glslang

/*
#include <stdbool.h>
#include <glslang/Include/glslang_c_interface.h>
*/
import "C"

import (
	"runtime"
	"slices"
	"sync"
	"unsafe"
)

// Program links shader units and generates SPIR-V for one stage.
//
// A program is single use: Compile and CompileSizeOptimized consume it
// whether they succeed or not, and every later call returns ErrClosed.
type Program struct {
	mu       sync.Mutex
	res      *programResources
	compiler *Compiler
	cleanup  runtime.Cleanup

	// stages maps each added stage to whether every unit of that stage
	// was parsed with a SPIR-V target.
	stages   map[Stage]bool
	spirv    bool
	vulkan   bool
	messages Messages

	linked  bool
	linkErr error
}

// programResources is what must be released with the program. It is kept
// apart from Program so a runtime cleanup can release it.
type programResources struct {
	handle  *C.glslang_program_t
	shaders []*Shader
}

func (r *programResources) free() {
	if r.handle == nil {
		return
	}
	C.glslang_program_delete(r.handle)
	r.handle = nil
	for _, s := range r.shaders {
		s.unref()
	}
	r.shaders = nil
}

// NewProgram creates an empty program.
func NewProgram(c *Compiler) (*Program, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	handle := C.glslang_program_create()
	if handle == nil {
		return nil, newError(ErrAllocation, "glslang_program_create returned NULL")
	}

	p := &Program{
		res:      &programResources{handle: handle},
		compiler: c,
		stages:   make(map[Stage]bool),
	}
	p.cleanup = runtime.AddCleanup(p, (*programResources).free, p.res)
	return p, nil
}

func (p *Program) closedError() error {
	return newError(ErrClosed, "program is closed or already compiled")
}

// AddShader adds s to the program. The program keeps s alive until it is
// closed or consumed. Shaders cannot be added after linking.
func (p *Program) AddShader(s *Shader) error {
	if s == nil {
		return newError(ErrInvalidState, "nil shader")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.res.handle == nil {
		return p.closedError()
	}
	if p.linked || p.linkErr != nil {
		return newError(ErrInvalidState, "program already linked")
	}
	if slices.Contains(p.res.shaders, s) {
		return &Error{Kind: ErrInvalidState, Stage: s.stage, Message: "shader already added"}
	}

	handle, err := s.retain()
	if err != nil {
		return err
	}
	C.glslang_program_add_shader(p.res.handle, handle)
	p.res.shaders = append(p.res.shaders, s)

	if prev, ok := p.stages[s.stage]; ok {
		p.stages[s.stage] = prev && s.spirv
	} else {
		p.stages[s.stage] = s.spirv
	}
	p.spirv = p.spirv || s.spirv
	p.vulkan = p.vulkan || s.client == clientVulkan
	p.messages |= s.messages
	return nil
}

// linkMessages combines the rules every added unit asked for.
func (p *Program) linkMessages() Messages {
	m := MessagesDefault | p.messages
	if p.spirv {
		m |= MessagesSpvRules
	}
	if p.vulkan {
		m |= MessagesVulkanRules
	}
	return m
}

// Link links the added units. Linking again returns the first result.
func (p *Program) Link() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.res.handle == nil {
		return p.closedError()
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return p.linkLocked()
}

func (p *Program) linkLocked() error {
	if p.linked || p.linkErr != nil {
		return p.linkErr
	}
	if len(p.res.shaders) == 0 {
		return newError(ErrInvalidState, "no shaders added")
	}

	msgs := p.linkMessages()
	if C.glslang_program_link(p.res.handle, C.int(msgs)) == 0 {
		p.linkErr = &Error{Kind: ErrLink, Log: programLog(p.res.handle)}
		return p.linkErr
	}
	p.linked = true
	logger().Debug().Stringer("messages", msgs).Int("units", len(p.res.shaders)).Msg("program linked")
	return nil
}

// MapIO assigns locations and bindings across the linked units. Shaders
// need AutoMapLocations or AutoMapBindings for it to have an effect.
func (p *Program) MapIO() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.res.handle == nil {
		return p.closedError()
	}
	if !p.linked {
		return newError(ErrInvalidState, "MapIO requires a linked program")
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if C.glslang_program_map_io(p.res.handle) == 0 {
		return &Error{Kind: ErrMapIO, Log: programLog(p.res.handle)}
	}
	return nil
}

// InfoLog returns the engine logs of the program.
func (p *Program) InfoLog() (Log, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.res.handle == nil {
		return Log{}, p.closedError()
	}
	return programLog(p.res.handle), nil
}

// Compile links the program if needed and returns the SPIR-V words for
// stage. The program is consumed.
func (p *Program) Compile(stage Stage) ([]uint32, error) {
	return p.generate(stage, false)
}

// CompileSizeOptimized is Compile with the size optimizer enabled. The
// program is consumed.
func (p *Program) CompileSizeOptimized(stage Stage) ([]uint32, error) {
	return p.generate(stage, true)
}

func (p *Program) generate(stage Stage, optimizeSize bool) ([]uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.res.handle == nil {
		return nil, p.closedError()
	}
	defer p.closeLocked()

	if !stage.valid() {
		return nil, &Error{Kind: ErrInvalidStage, Stage: stage, Message: stage.String()}
	}
	spirv, ok := p.stages[stage]
	if !ok {
		return nil, &Error{Kind: ErrShaderStageNotFound, Stage: stage}
	}
	if !spirv {
		return nil, &Error{Kind: ErrNoLanguageTarget, Stage: stage}
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := p.linkLocked(); err != nil {
		return nil, err
	}

	h := p.res.handle
	if optimizeSize {
		opts := C.glslang_spv_options_t{}
		opts.optimize_size = C.bool(true)
		opts.validate = C.bool(true)
		C.glslang_program_SPIRV_generate_with_options(h, cStages[stage], &opts)
	} else {
		C.glslang_program_SPIRV_generate(h, cStages[stage])
	}

	messages := goStringOrEmpty(C.glslang_program_SPIRV_get_messages(h))
	size := int(C.glslang_program_SPIRV_get_size(h))
	if size == 0 {
		return nil, &Error{Kind: ErrGenerate, Stage: stage, Log: Log{Info: messages}, Message: "no SPIR-V generated"}
	}
	words := slices.Clone(unsafe.Slice((*uint32)(unsafe.Pointer(C.glslang_program_SPIRV_get_ptr(h))), size))

	ev := logger().Debug().Stringer("stage", stage).Int("words", size).Bool("optimize_size", optimizeSize)
	if messages != "" {
		ev = ev.Str("messages", messages)
	}
	ev.Msg("SPIR-V generated")
	return words, nil
}

// Close releases the program and its hold on the added shaders. Calling
// Close on a consumed program is a no-op.
func (p *Program) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *Program) closeLocked() {
	if p.res.handle == nil {
		return
	}
	p.cleanup.Stop()
	p.res.free()
}

func programLog(handle *C.glslang_program_t) Log {
	return Log{
		Info:  goStringOrEmpty(C.glslang_program_get_info_log(handle)),
		Debug: goStringOrEmpty(C.glslang_program_get_info_debug_log(handle)),
	}
}
