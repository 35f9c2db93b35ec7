package glslang

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes facade errors.
type ErrorKind uint8

const (
	// ErrPreprocess indicates the preprocessor rejected the source.
	ErrPreprocess ErrorKind = iota

	// ErrParse indicates preprocessing or parsing failed while creating a shader.
	ErrParse

	// ErrMapIO indicates the engine failed to map program inputs and outputs.
	ErrMapIO

	// ErrLink indicates the program failed to link.
	ErrLink

	// ErrShaderStageNotFound indicates no unit of the requested stage was added.
	ErrShaderStageNotFound

	// ErrNoLanguageTarget indicates SPIR-V generation was requested for a
	// unit compiled without a SPIR-V target.
	ErrNoLanguageTarget

	// ErrInvalidTarget indicates an impossible target combination.
	ErrInvalidTarget

	// ErrInvalidProfile indicates the GLSL version/profile is not allowed for the target.
	ErrInvalidProfile

	// ErrVersionUnsupported indicates the GLSL version/profile pair does not exist.
	ErrVersionUnsupported

	// ErrInvalidSourceText indicates source text the engine cannot accept.
	ErrInvalidSourceText

	// ErrInvalidStage indicates an out of range or unknown stage.
	ErrInvalidStage

	// ErrAllocation indicates the engine returned a null handle.
	ErrAllocation

	// ErrGenerate indicates SPIR-V generation produced no output.
	ErrGenerate

	// ErrClosed indicates use of a released or consumed handle.
	ErrClosed

	// ErrInvalidState indicates an operation out of lifecycle order.
	ErrInvalidState

	// ErrNoCompiler indicates a constructor was called without an acquired Compiler.
	ErrNoCompiler
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrPreprocess:
		return "PreprocessError"
	case ErrParse:
		return "ParseError"
	case ErrMapIO:
		return "MapIOError"
	case ErrLink:
		return "LinkError"
	case ErrShaderStageNotFound:
		return "ShaderStageNotFound"
	case ErrNoLanguageTarget:
		return "NoLanguageTarget"
	case ErrInvalidTarget:
		return "InvalidTarget"
	case ErrInvalidProfile:
		return "InvalidProfile"
	case ErrVersionUnsupported:
		return "VersionUnsupported"
	case ErrInvalidSourceText:
		return "InvalidSourceText"
	case ErrInvalidStage:
		return "InvalidStage"
	case ErrAllocation:
		return "AllocationFailed"
	case ErrGenerate:
		return "GenerateError"
	case ErrClosed:
		return "Closed"
	case ErrInvalidState:
		return "InvalidState"
	case ErrNoCompiler:
		return "NoCompiler"
	default:
		return "Unknown"
	}
}

// Log is the pair of engine logs captured when an operation failed.
type Log struct {
	Info  string
	Debug string
}

func (l Log) String() string {
	info, debug := strings.TrimSpace(l.Info), strings.TrimSpace(l.Debug)
	switch {
	case debug == "":
		return info
	case info == "":
		return debug
	default:
		return info + "\n" + debug
	}
}

// Error is returned by every fallible operation in the package.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Log holds the engine logs for ErrPreprocess, ErrParse, ErrMapIO,
	// ErrLink and ErrGenerate.
	Log Log

	// Stage is set for ErrShaderStageNotFound and stage-specific failures.
	Stage Stage

	// Target, Version and Profile are set for ErrInvalidTarget,
	// ErrInvalidProfile and ErrVersionUnsupported.
	Target  Target
	Version int
	Profile Profile

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var detail string
	switch e.Kind {
	case ErrPreprocess, ErrParse, ErrMapIO, ErrLink, ErrGenerate:
		detail = e.Log.String()
	case ErrShaderStageNotFound:
		detail = fmt.Sprintf("no %s shader in program", e.Stage)
	case ErrNoLanguageTarget:
		detail = fmt.Sprintf("%s shader was not compiled with a SPIR-V target", e.Stage)
	case ErrInvalidTarget:
		if e.Target != nil {
			detail = fmt.Sprintf("target %s", e.Target)
		}
	case ErrInvalidProfile:
		detail = fmt.Sprintf("GLSL %d %s is not valid for target %s", e.Version, e.Profile, e.Target)
	case ErrVersionUnsupported:
		detail = fmt.Sprintf("GLSL %d %s is not a supported version", e.Version, e.Profile)
	}

	switch {
	case e.Message != "" && detail != "":
		return fmt.Sprintf("glslang %s: %s: %s", e.Kind, e.Message, detail)
	case e.Message != "":
		return fmt.Sprintf("glslang %s: %s", e.Kind, e.Message)
	case detail != "":
		return fmt.Sprintf("glslang %s: %s", e.Kind, detail)
	default:
		return fmt.Sprintf("glslang %s", e.Kind)
	}
}

// Is reports whether target is an *Error of the same kind, so
// errors.Is(err, &glslang.Error{Kind: glslang.ErrLink}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
