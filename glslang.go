// Package glslang is a safe Go interface to the glslang shader compiler.
//
// glslang compiles GLSL and HLSL source to SPIR-V for Vulkan and OpenGL.
// This package wraps its C interface so that misuse becomes an error
// instead of undefined behavior:
//   - the engine is initialized once per process (Acquire)
//   - targets, GLSL versions and profiles are validated before any native
//     call (NewShaderInput)
//   - shaders and programs enforce create, parse, link, generate order and
//     release their native handles exactly once (Shader, Program)
//   - include directives can be resolved by Go code (IncludeCallback),
//     with panics contained at the boundary
//
// Example usage:
//
//	source := glslang.MustShaderSource(`#version 450
//	layout(location = 0) out vec4 color;
//	void main() { color = vec4(1.0); }
//	`)
//	words, err := glslang.Compile(source, glslang.StageFragment)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For more control, build the pieces directly:
//
//	c := glslang.Acquire()
//	input, _ := glslang.NewShaderInput(source, glslang.StageFragment, glslang.DefaultOptions(), nil)
//	shader, _ := c.NewShader(input)
//	defer shader.Close()
//	program, _ := c.NewProgram()
//	program.AddShader(shader)
//	words, err := program.Compile(glslang.StageFragment)
//
// The package links against libglslang with -lglslang. Set CGO_LDFLAGS to
// point at a different build.
package glslang

import (
	"fmt"
)

// Compile compiles source for stage using DefaultOptions and no include
// support.
func Compile(source *ShaderSource, stage Stage) ([]uint32, error) {
	return CompileWithOptions(source, stage, DefaultOptions(), nil)
}

// CompileWithOptions compiles source for stage with custom options.
//
// The pipeline is:
//  1. Validate target and profile
//  2. Preprocess and parse
//  3. Link
//  4. Generate SPIR-V
func CompileWithOptions(source *ShaderSource, stage Stage, opts CompilerOptions, includer IncludeCallback) ([]uint32, error) {
	c := Acquire()
	if c == nil {
		return nil, newError(ErrNoCompiler, "engine initialization failed")
	}

	input, err := NewShaderInput(source, stage, opts, includer)
	if err != nil {
		return nil, err
	}

	shader, err := c.NewShader(input)
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", stage, err)
	}
	defer shader.Close()

	words, err := shader.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", stage, err)
	}
	return words, nil
}
