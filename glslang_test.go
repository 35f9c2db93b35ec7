package glslang

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glslang/spirv"
)

const vertexSource = `#version 450
layout(location = 0) in vec3 position;
void main() {
    gl_Position = vec4(position, 1.0);
}
`

const fragmentSource = `#version 450
layout(location = 0) out vec4 color;
layout(binding = 1) uniform sampler2D tex;
void main() {
    color = texture(tex, vec2(0.0));
}
`

// compiler returns the process compiler, skipping when the engine cannot
// be initialized.
func compiler(t *testing.T) *Compiler {
	t.Helper()
	c := Acquire()
	if c == nil {
		t.Skip("glslang engine unavailable")
	}
	return c
}

func newShader(t *testing.T, c *Compiler, source string, stage Stage, opts CompilerOptions) *Shader {
	t.Helper()
	input, err := NewShaderInput(MustShaderSource(source), stage, opts, nil)
	require.NoError(t, err)
	s, err := c.NewShader(input)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func requireModule(t *testing.T, words []uint32, model spirv.ExecutionModel) *spirv.Module {
	t.Helper()
	require.NotEmpty(t, words)
	assert.Equal(t, uint32(spirv.MagicNumber), words[0])

	mod, err := spirv.Decode(words)
	require.NoError(t, err)
	eps := mod.EntryPoints()
	require.Len(t, eps, 1)
	assert.Equal(t, model, eps[0].Model)
	assert.Equal(t, "main", eps[0].Name)
	return mod
}

func TestAcquireReturnsSameCompiler(t *testing.T) {
	c := compiler(t)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			if got := Acquire(); got != c {
				return fmt.Errorf("Acquire returned %p, want %p", got, c)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestZeroCompilerRejected(t *testing.T) {
	input, err := NewShaderInput(MustShaderSource(vertexSource), StageVertex, DefaultOptions(), nil)
	require.NoError(t, err)

	_, err = NewShader(nil, input)
	assert.True(t, IsKind(err, ErrNoCompiler))
	_, err = NewProgram(&Compiler{})
	assert.True(t, IsKind(err, ErrNoCompiler))
}

func TestCompile(t *testing.T) {
	compiler(t)

	words, err := Compile(MustShaderSource(fragmentSource), StageFragment)
	require.NoError(t, err)
	mod := requireModule(t, words, spirv.ExecutionModelFragment)
	assert.Equal(t, spirv.Version1_0, mod.Header.Version)
	assert.Contains(t, mod.Capabilities(), "Shader")
}

func TestCompileSPIRVVersion(t *testing.T) {
	c := compiler(t)

	opts := DefaultOptions()
	opts.Target = TargetVulkan{Version: Vulkan1_2, SPIRV: Spirv1_5}
	s := newShader(t, c, vertexSource, StageVertex, opts)

	words, err := s.Compile()
	require.NoError(t, err)
	mod := requireModule(t, words, spirv.ExecutionModelVertex)
	assert.Equal(t, spirv.Version1_5, mod.Header.Version)
}

func TestCompileSizeOptimized(t *testing.T) {
	c := compiler(t)
	s := newShader(t, c, fragmentSource, StageFragment, DefaultOptions())

	words, err := s.CompileSizeOptimized()
	require.NoError(t, err)
	requireModule(t, words, spirv.ExecutionModelFragment)
}

func TestShaderCompileRepeatedly(t *testing.T) {
	c := compiler(t)
	s := newShader(t, c, vertexSource, StageVertex, DefaultOptions())

	first, err := s.Compile()
	require.NoError(t, err)
	second, err := s.Compile()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseErrorCarriesLog(t *testing.T) {
	c := compiler(t)

	input, err := NewShaderInput(MustShaderSource("#version 450\nvoid main() { undefined_call(); }\n"), StageVertex, DefaultOptions(), nil)
	require.NoError(t, err)

	_, err = c.NewShader(input)
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, ErrParse, gerr.Kind)
	assert.Contains(t, gerr.Log.Info, "undefined_call")
}

func TestPreprocessFailureInNewShaderIsParseError(t *testing.T) {
	c := compiler(t)

	input, err := NewShaderInput(MustShaderSource("#version 450\n#error boom\nvoid main() {}\n"), StageVertex, DefaultOptions(), nil)
	require.NoError(t, err)

	_, err = c.NewShader(input)
	assert.True(t, IsKind(err, ErrParse), "got %v", err)

	_, err = c.Preprocess(input)
	assert.True(t, IsKind(err, ErrPreprocess), "got %v", err)
}

func TestPreprocess(t *testing.T) {
	c := compiler(t)

	source := "#version 450\n#define VALUE 7\nint f() { return VALUE; }\nvoid main() {}\n"
	input, err := NewShaderInput(MustShaderSource(source), StageVertex, DefaultOptions(), nil)
	require.NoError(t, err)

	code, err := Preprocess(c, input)
	require.NoError(t, err)
	assert.Contains(t, code, "return")
	assert.Contains(t, code, "7")
	assert.NotContains(t, code, "VALUE")

	s, err := c.NewShader(input)
	require.NoError(t, err)
	defer s.Close()
	parsed, err := s.PreprocessedCode()
	require.NoError(t, err)
	assert.Equal(t, code, parsed)
}

func TestIncludeCallback(t *testing.T) {
	c := compiler(t)

	source := `#version 450
#extension GL_GOOGLE_include_directive : require
#include "colors.glsl"
layout(location = 0) out vec4 color;
void main() {
    color = RED;
}
`
	var calls atomic.Int32
	include := func(kind IncludeType, header, includer string, depth int) (IncludeResult, bool) {
		calls.Add(1)
		if kind != IncludeLocal || header != "colors.glsl" {
			return IncludeResult{}, false
		}
		return IncludeResult{Name: header, Data: "#define RED vec4(1.0, 0.0, 0.0, 1.0)\n"}, true
	}

	input, err := NewShaderInput(MustShaderSource(source), StageFragment, DefaultOptions(), include)
	require.NoError(t, err)
	s, err := c.NewShader(input)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, int32(1), calls.Load())

	code, err := s.PreprocessedCode()
	require.NoError(t, err)
	assert.Contains(t, code, "color")
	assert.NotContains(t, code, "RED")

	words, err := s.Compile()
	require.NoError(t, err)
	requireModule(t, words, spirv.ExecutionModelFragment)
}

func TestIncludeCallbackPanicIsParseError(t *testing.T) {
	c := compiler(t)

	source := "#version 450\n#extension GL_GOOGLE_include_directive : require\n#include \"boom.glsl\"\nvoid main() {}\n"
	include := func(IncludeType, string, string, int) (IncludeResult, bool) {
		panic("resolver failure")
	}

	input, err := NewShaderInput(MustShaderSource(source), StageVertex, DefaultOptions(), include)
	require.NoError(t, err)

	var shaderErr error
	assert.NotPanics(t, func() {
		_, shaderErr = c.NewShader(input)
	})
	assert.True(t, IsKind(shaderErr, ErrParse), "got %v", shaderErr)
}

func TestConcurrentCompiles(t *testing.T) {
	compiler(t)

	var g errgroup.Group
	results := make([][]uint32, 8)
	for i := range results {
		g.Go(func() error {
			source := fmt.Sprintf("#version 450\nlayout(location = 0) out vec4 color;\nvoid main() { color = vec4(%d.0); }\n", i)
			words, err := Compile(MustShaderSource(source), StageFragment)
			if err != nil {
				return err
			}
			results[i] = words
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, words := range results {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			requireModule(t, words, spirv.ExecutionModelFragment)
		})
	}
}

func TestShaderClose(t *testing.T) {
	c := compiler(t)

	input, err := NewShaderInput(MustShaderSource(vertexSource), StageVertex, DefaultOptions(), nil)
	require.NoError(t, err)
	s, err := c.NewShader(input)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.PreprocessedCode()
	assert.True(t, IsKind(err, ErrClosed))
	_, err = s.Compile()
	assert.True(t, IsKind(err, ErrClosed))
	assert.True(t, IsKind(s.SetOptions(AutoMapBindings), ErrClosed))
}

func TestShaderOptionsAndShifts(t *testing.T) {
	c := compiler(t)
	s := newShader(t, c, fragmentSource, StageFragment, DefaultOptions())

	require.NoError(t, s.SetOptions(AutoMapBindings|AutoMapLocations))
	require.NoError(t, s.ShiftBinding(ResourceTexture, 4))
	require.NoError(t, s.ShiftBindingForSet(ResourceUBO, 8, 1))
	assert.True(t, IsKind(s.ShiftBinding(ResourceType(99), 0), ErrInvalidState))

	log, err := s.InfoLog()
	require.NoError(t, err)
	assert.False(t, strings.Contains(log.Info, "ERROR"))
}
