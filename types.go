package glslang

import (
	"fmt"
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/gogpu/glslang/spirv"
)

// Stage is a shader pipeline stage.
type Stage uint8

// Shader stages accepted by the engine.
const (
	StageVertex Stage = iota
	StageTessControl
	StageTessEvaluation
	StageGeometry
	StageFragment
	StageCompute
	StageRayGen
	StageIntersect
	StageAnyHit
	StageClosestHit
	StageMiss
	StageCallable
	StageTask
	StageMesh

	stageCount
)

var stageNames = [stageCount]string{
	StageVertex:         "vert",
	StageTessControl:    "tesc",
	StageTessEvaluation: "tese",
	StageGeometry:       "geom",
	StageFragment:       "frag",
	StageCompute:        "comp",
	StageRayGen:         "rgen",
	StageIntersect:      "rint",
	StageAnyHit:         "rahit",
	StageClosestHit:     "rchit",
	StageMiss:           "rmiss",
	StageCallable:       "rcall",
	StageTask:           "task",
	StageMesh:           "mesh",
}

// Stages returns every stage in engine order.
func Stages() []Stage {
	stages := make([]Stage, stageCount)
	for i := range stages {
		stages[i] = Stage(i)
	}
	return stages
}

// String returns the short stage name used as a file extension by
// glslangValidator ("vert", "frag", ...).
func (s Stage) String() string {
	if s.valid() {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

func (s Stage) valid() bool {
	return s < stageCount
}

// ExecutionModel returns the SPIR-V execution model generated for s.
func (s Stage) ExecutionModel() spirv.ExecutionModel {
	switch s {
	case StageVertex:
		return spirv.ExecutionModelVertex
	case StageTessControl:
		return spirv.ExecutionModelTessellationControl
	case StageTessEvaluation:
		return spirv.ExecutionModelTessellationEvaluation
	case StageGeometry:
		return spirv.ExecutionModelGeometry
	case StageFragment:
		return spirv.ExecutionModelFragment
	case StageCompute:
		return spirv.ExecutionModelGLCompute
	case StageRayGen:
		return spirv.ExecutionModelRayGeneration
	case StageIntersect:
		return spirv.ExecutionModelIntersection
	case StageAnyHit:
		return spirv.ExecutionModelAnyHit
	case StageClosestHit:
		return spirv.ExecutionModelClosestHit
	case StageMiss:
		return spirv.ExecutionModelMiss
	case StageCallable:
		return spirv.ExecutionModelCallable
	case StageTask:
		return spirv.ExecutionModelTaskEXT
	case StageMesh:
		return spirv.ExecutionModelMeshEXT
	default:
		return spirv.ExecutionModel(^uint32(0))
	}
}

// ParseStage parses a short stage name such as "frag" or "comp". A few
// long spellings ("vertex", "fragment", "compute") are accepted too.
func ParseStage(name string) (Stage, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "vertex":
		return StageVertex, nil
	case "fragment", "pixel":
		return StageFragment, nil
	case "compute":
		return StageCompute, nil
	case "geometry":
		return StageGeometry, nil
	}
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return 0, &Error{Kind: ErrInvalidStage, Message: fmt.Sprintf("unknown stage %q", name)}
}

// StageFromPath infers the stage from a file name. Both "shader.frag" and
// "shader.frag.glsl" (or .hlsl) forms are recognized.
func StageFromPath(p string) (Stage, error) {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	ext := path.Ext(base)
	switch ext {
	case ".glsl", ".hlsl":
		base = strings.TrimSuffix(base, ext)
		ext = path.Ext(base)
	}
	if ext == "" {
		return 0, &Error{Kind: ErrInvalidStage, Message: fmt.Sprintf("no stage extension in %q", p)}
	}
	return ParseStage(ext[1:])
}

// SourceLanguage is the language of the shader text.
type SourceLanguage uint8

const (
	SourceGLSL SourceLanguage = iota
	SourceHLSL
)

func (l SourceLanguage) String() string {
	switch l {
	case SourceGLSL:
		return "GLSL"
	case SourceHLSL:
		return "HLSL"
	default:
		return fmt.Sprintf("SourceLanguage(%d)", uint8(l))
	}
}

// LanguageFromPath reports SourceHLSL for .hlsl files and SourceGLSL
// otherwise.
func LanguageFromPath(p string) SourceLanguage {
	if strings.EqualFold(path.Ext(p), ".hlsl") {
		return SourceHLSL
	}
	return SourceGLSL
}

// Profile is a GLSL profile.
type Profile uint8

const (
	ProfileNone Profile = iota
	ProfileCore
	ProfileCompatibility
	ProfileES
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCore:
		return "core"
	case ProfileCompatibility:
		return "compatibility"
	case ProfileES:
		return "es"
	default:
		return fmt.Sprintf("Profile(%d)", uint8(p))
	}
}

// ParseProfile parses the profile word of a #version directive. The empty
// string is ProfileNone.
func ParseProfile(word string) (Profile, bool) {
	switch word {
	case "":
		return ProfileNone, true
	case "core":
		return ProfileCore, true
	case "compatibility":
		return ProfileCompatibility, true
	case "es":
		return ProfileES, true
	default:
		return ProfileNone, false
	}
}

// SpirvVersion is a SPIR-V output version. The zero value means no SPIR-V
// output was requested.
type SpirvVersion uint8

const (
	SpirvNone SpirvVersion = iota
	Spirv1_0
	Spirv1_1
	Spirv1_2
	Spirv1_3
	Spirv1_4
	Spirv1_5
	Spirv1_6
)

func (v SpirvVersion) valid() bool {
	return v >= Spirv1_0 && v <= Spirv1_6
}

// Version returns the header version generated for v.
func (v SpirvVersion) Version() spirv.Version {
	if !v.valid() {
		return spirv.Version{}
	}
	return spirv.Version{Major: 1, Minor: uint8(v - Spirv1_0)}
}

func (v SpirvVersion) String() string {
	if v == SpirvNone {
		return "none"
	}
	if !v.valid() {
		return fmt.Sprintf("SpirvVersion(%d)", uint8(v))
	}
	return "spirv" + v.Version().String()
}

// ParseSpirvVersion parses "1.5", "spv1.5" or "spirv1.5".
func ParseSpirvVersion(s string) (SpirvVersion, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "spirv"), "spv")
	major, minor, err := parseMajorMinor(s)
	if err != nil || major != 1 || minor > 6 {
		return SpirvNone, &Error{Kind: ErrInvalidTarget, Message: fmt.Sprintf("unknown SPIR-V version %q", s)}
	}
	return Spirv1_0 + SpirvVersion(minor), nil
}

// VulkanVersion is a Vulkan client API version.
type VulkanVersion uint8

const (
	Vulkan1_0 VulkanVersion = iota + 1
	Vulkan1_1
	Vulkan1_2
	Vulkan1_3
)

func (v VulkanVersion) valid() bool {
	return v >= Vulkan1_0 && v <= Vulkan1_3
}

func (v VulkanVersion) String() string {
	if !v.valid() {
		return fmt.Sprintf("VulkanVersion(%d)", uint8(v))
	}
	return fmt.Sprintf("vulkan1.%d", v-Vulkan1_0)
}

// ParseVulkanVersion parses "1.2" or "vulkan1.2".
func ParseVulkanVersion(s string) (VulkanVersion, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "vulkan")
	major, minor, err := parseMajorMinor(s)
	if err != nil || major != 1 || minor > 3 {
		return 0, &Error{Kind: ErrInvalidTarget, Message: fmt.Sprintf("unknown Vulkan version %q", s)}
	}
	return Vulkan1_0 + VulkanVersion(minor), nil
}

// OpenGLVersion is an OpenGL client API version. Only 4.5 is supported by
// the engine.
type OpenGLVersion uint8

const (
	OpenGL4_5 OpenGLVersion = iota + 1
)

func (v OpenGLVersion) String() string {
	if v == OpenGL4_5 {
		return "opengl4.5"
	}
	return fmt.Sprintf("OpenGLVersion(%d)", uint8(v))
}

func parseMajorMinor(s string) (uint64, uint64, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return 0, 0, err
	}
	if v.Patch() != 0 || v.Prerelease() != "" {
		return 0, 0, fmt.Errorf("unexpected patch or prerelease in %q", s)
	}
	return v.Major(), v.Minor(), nil
}

// Messages selects engine diagnostics and rules. Bits match
// glslang_messages_t.
type Messages uint32

const (
	MessagesDefault          Messages = 0
	MessagesRelaxedErrors    Messages = 1 << 0
	MessagesSuppressWarnings Messages = 1 << 1
	MessagesAST              Messages = 1 << 2
	MessagesSpvRules         Messages = 1 << 3
	MessagesVulkanRules      Messages = 1 << 4
	MessagesOnlyPreprocessor Messages = 1 << 5
	MessagesReadHLSL         Messages = 1 << 6
	MessagesCascadingErrors  Messages = 1 << 7
	MessagesKeepUncalled     Messages = 1 << 8
	MessagesHLSLOffsets      Messages = 1 << 9
	MessagesDebugInfo        Messages = 1 << 10
	MessagesHLSL16BitTypes   Messages = 1 << 11
	MessagesHLSLLegalization Messages = 1 << 12
	MessagesHLSLDX9Compat    Messages = 1 << 13
	MessagesBuiltinSymbols   Messages = 1 << 14
	MessagesEnhanced         Messages = 1 << 15
	MessagesAbsolutePath     Messages = 1 << 16
	MessagesErrorColumn      Messages = 1 << 17
)

var messageNames = []string{
	"relaxed-errors", "suppress-warnings", "ast", "spv-rules", "vulkan-rules",
	"only-preprocessor", "read-hlsl", "cascading-errors", "keep-uncalled",
	"hlsl-offsets", "debug-info", "hlsl-16bit-types", "hlsl-legalization",
	"hlsl-dx9-compatible", "builtin-symbol-table", "enhanced",
	"absolute-path", "display-error-column",
}

func (m Messages) String() string {
	if m == MessagesDefault {
		return "default"
	}
	var parts []string
	for i, name := range messageNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if rest := m &^ (1<<len(messageNames) - 1); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseMessages parses a comma or pipe separated list of message names as
// printed by Messages.String.
func ParseMessages(s string) (Messages, error) {
	var m Messages
	for _, word := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		word = strings.TrimSpace(word)
		if word == "default" {
			continue
		}
		found := false
		for i, name := range messageNames {
			if name == word {
				m |= 1 << i
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("glslang: unknown message flag %q", word)
		}
	}
	return m, nil
}

// ShaderOptions are per-shader flags. Bits match glslang_shader_options_t.
type ShaderOptions uint32

const (
	ShaderOptionsDefault ShaderOptions = 0
	AutoMapBindings      ShaderOptions = 1 << 0
	AutoMapLocations     ShaderOptions = 1 << 1
	VulkanRulesRelaxed   ShaderOptions = 1 << 2
)

// ResourceType selects the binding class for ShiftBinding.
type ResourceType uint8

const (
	ResourceSampler ResourceType = iota
	ResourceTexture
	ResourceImage
	ResourceUBO
	ResourceSSBO
	ResourceUAV

	resourceTypeCount
)

func (r ResourceType) String() string {
	switch r {
	case ResourceSampler:
		return "sampler"
	case ResourceTexture:
		return "texture"
	case ResourceImage:
		return "image"
	case ResourceUBO:
		return "ubo"
	case ResourceSSBO:
		return "ssbo"
	case ResourceUAV:
		return "uav"
	default:
		return fmt.Sprintf("ResourceType(%d)", uint8(r))
	}
}
