package glslang

import (
	"github.com/gogpu/glslang/limits"
)

// CompilerOptions selects the source language, target and diagnostics for
// a shader.
type CompilerOptions struct {
	// Language is the source language (default: GLSL).
	Language SourceLanguage

	// Target is the validation and output environment.
	Target Target

	// VersionProfile, when set, is forced on the source instead of the
	// #version directive.
	VersionProfile *VersionProfile

	// Messages selects engine diagnostics and rules.
	Messages Messages
}

// DefaultOptions returns GLSL targeting Vulkan 1.0 and SPIR-V 1.0.
func DefaultOptions() CompilerOptions {
	return CompilerOptions{
		Language: SourceGLSL,
		Target:   TargetVulkan{Version: Vulkan1_0, SPIRV: Spirv1_0},
		Messages: MessagesDefault,
	}
}

// ShaderInput is a validated description of one shader, ready to be passed
// to NewShader. Building it never calls into the engine.
type ShaderInput struct {
	source    *ShaderSource
	stage     Stage
	options   CompilerOptions
	resources limits.Resources
	target    resolvedTarget
	includer  IncludeCallback
}

// NewShaderInput validates source against opts using the default resource
// limits. includer may be nil.
func NewShaderInput(source *ShaderSource, stage Stage, opts CompilerOptions, includer IncludeCallback) (*ShaderInput, error) {
	return NewShaderInputWithLimits(source, &defaultResources, stage, opts, includer)
}

// NewShaderInputWithLimits is NewShaderInput with explicit resource limits.
// The limits are copied.
func NewShaderInputWithLimits(source *ShaderSource, resources *limits.Resources, stage Stage, opts CompilerOptions, includer IncludeCallback) (*ShaderInput, error) {
	if source == nil {
		return nil, newError(ErrInvalidSourceText, "nil source")
	}
	if !stage.valid() {
		return nil, &Error{Kind: ErrInvalidStage, Stage: stage, Message: stage.String()}
	}
	if resources == nil {
		resources = &defaultResources
	}

	target, err := resolveTarget(opts.Target)
	if err != nil {
		return nil, err
	}

	if opts.Language == SourceGLSL {
		vp := opts.VersionProfile
		if vp == nil {
			if parsed, ok := source.ParseProfile(); ok {
				vp = &parsed
			}
		}
		if err := verifyGLSLProfile(opts.Target, vp); err != nil {
			return nil, err
		}
	}

	if opts.VersionProfile != nil {
		vp := *opts.VersionProfile
		opts.VersionProfile = &vp
	}

	return &ShaderInput{
		source:    source,
		stage:     stage,
		options:   opts,
		resources: *resources,
		target:    target,
		includer:  includer,
	}, nil
}

// Stage returns the stage the input will be parsed as.
func (in *ShaderInput) Stage() Stage { return in.stage }

// Options returns the options the input was built with.
func (in *ShaderInput) Options() CompilerOptions { return in.options }

// SPIRV reports whether the input requests SPIR-V output.
func (in *ShaderInput) SPIRV() bool { return in.target.spirv }
