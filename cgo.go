package glslang

/*
#cgo LDFLAGS: -lglslang -lstdc++ -lm

#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
#include <glslang/Include/glslang_c_interface.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/glslang/limits"
)

var cStages = [stageCount]C.glslang_stage_t{
	StageVertex:         C.glslang_stage_t(C.GLSLANG_STAGE_VERTEX),
	StageTessControl:    C.glslang_stage_t(C.GLSLANG_STAGE_TESSCONTROL),
	StageTessEvaluation: C.glslang_stage_t(C.GLSLANG_STAGE_TESSEVALUATION),
	StageGeometry:       C.glslang_stage_t(C.GLSLANG_STAGE_GEOMETRY),
	StageFragment:       C.glslang_stage_t(C.GLSLANG_STAGE_FRAGMENT),
	StageCompute:        C.glslang_stage_t(C.GLSLANG_STAGE_COMPUTE),
	StageRayGen:         C.glslang_stage_t(C.GLSLANG_STAGE_RAYGEN),
	StageIntersect:      C.glslang_stage_t(C.GLSLANG_STAGE_INTERSECT),
	StageAnyHit:         C.glslang_stage_t(C.GLSLANG_STAGE_ANYHIT),
	StageClosestHit:     C.glslang_stage_t(C.GLSLANG_STAGE_CLOSESTHIT),
	StageMiss:           C.glslang_stage_t(C.GLSLANG_STAGE_MISS),
	StageCallable:       C.glslang_stage_t(C.GLSLANG_STAGE_CALLABLE),
	StageTask:           C.glslang_stage_t(C.GLSLANG_STAGE_TASK),
	StageMesh:           C.glslang_stage_t(C.GLSLANG_STAGE_MESH),
}

var cResourceTypes = [resourceTypeCount]C.glslang_resource_type_t{
	ResourceSampler: C.glslang_resource_type_t(C.GLSLANG_RESOURCE_TYPE_SAMPLER),
	ResourceTexture: C.glslang_resource_type_t(C.GLSLANG_RESOURCE_TYPE_TEXTURE),
	ResourceImage:   C.glslang_resource_type_t(C.GLSLANG_RESOURCE_TYPE_IMAGE),
	ResourceUBO:     C.glslang_resource_type_t(C.GLSLANG_RESOURCE_TYPE_UBO),
	ResourceSSBO:    C.glslang_resource_type_t(C.GLSLANG_RESOURCE_TYPE_SSBO),
	ResourceUAV:     C.glslang_resource_type_t(C.GLSLANG_RESOURCE_TYPE_UAV),
}

func (l SourceLanguage) c() C.glslang_source_t {
	if l == SourceHLSL {
		return C.glslang_source_t(C.GLSLANG_SOURCE_HLSL)
	}
	return C.glslang_source_t(C.GLSLANG_SOURCE_GLSL)
}

func (p Profile) c() C.glslang_profile_t {
	switch p {
	case ProfileCore:
		return C.glslang_profile_t(C.GLSLANG_CORE_PROFILE)
	case ProfileCompatibility:
		return C.glslang_profile_t(C.GLSLANG_COMPATIBILITY_PROFILE)
	case ProfileES:
		return C.glslang_profile_t(C.GLSLANG_ES_PROFILE)
	default:
		return C.glslang_profile_t(C.GLSLANG_NO_PROFILE)
	}
}

func (c client) c() C.glslang_client_t {
	switch c {
	case clientVulkan:
		return C.glslang_client_t(C.GLSLANG_CLIENT_VULKAN)
	case clientOpenGL:
		return C.glslang_client_t(C.GLSLANG_CLIENT_OPENGL)
	default:
		return C.glslang_client_t(C.GLSLANG_CLIENT_NONE)
	}
}

func (v clientVersion) c() C.glslang_target_client_version_t {
	switch v {
	case clientVulkan1_0:
		return C.glslang_target_client_version_t(C.GLSLANG_TARGET_VULKAN_1_0)
	case clientVulkan1_1:
		return C.glslang_target_client_version_t(C.GLSLANG_TARGET_VULKAN_1_1)
	case clientVulkan1_2:
		return C.glslang_target_client_version_t(C.GLSLANG_TARGET_VULKAN_1_2)
	case clientVulkan1_3:
		return C.glslang_target_client_version_t(C.GLSLANG_TARGET_VULKAN_1_3)
	default:
		return C.glslang_target_client_version_t(C.GLSLANG_TARGET_OPENGL_450)
	}
}

func (v SpirvVersion) c() C.glslang_target_language_version_t {
	switch v {
	case Spirv1_1:
		return C.glslang_target_language_version_t(C.GLSLANG_TARGET_SPV_1_1)
	case Spirv1_2:
		return C.glslang_target_language_version_t(C.GLSLANG_TARGET_SPV_1_2)
	case Spirv1_3:
		return C.glslang_target_language_version_t(C.GLSLANG_TARGET_SPV_1_3)
	case Spirv1_4:
		return C.glslang_target_language_version_t(C.GLSLANG_TARGET_SPV_1_4)
	case Spirv1_5:
		return C.glslang_target_language_version_t(C.GLSLANG_TARGET_SPV_1_5)
	case Spirv1_6:
		return C.glslang_target_language_version_t(C.GLSLANG_TARGET_SPV_1_6)
	default:
		return C.glslang_target_language_version_t(C.GLSLANG_TARGET_SPV_1_0)
	}
}

// cInput is a glslang_input_t and everything it points to, allocated in C
// memory so the engine never holds a Go pointer.
type cInput struct {
	input     *C.glslang_input_t
	code      *C.char
	resources *C.glslang_resource_t
}

// newCInput marshals in. When bridge is non-nil its context and trampolines
// are installed as the include callbacks.
func newCInput(in *ShaderInput, bridge *includeBridge) (*cInput, error) {
	ci := &cInput{}

	ci.input = (*C.glslang_input_t)(C.calloc(1, C.size_t(unsafe.Sizeof(C.glslang_input_t{}))))
	ci.code = C.CString(in.source.text)
	resources := in.resources
	ci.resources = newCResources(&resources)
	if ci.input == nil || ci.code == nil || ci.resources == nil {
		ci.free()
		return nil, newError(ErrAllocation, "allocating shader input")
	}

	p := ci.input
	p.language = in.options.Language.c()
	p.stage = cStages[in.stage]
	p.client = in.target.client.c()
	p.client_version = in.target.clientVersion.c()
	if in.target.spirv {
		p.target_language = C.glslang_target_language_t(C.GLSLANG_TARGET_SPV)
	} else {
		p.target_language = C.glslang_target_language_t(C.GLSLANG_TARGET_NONE)
	}
	p.target_language_version = in.target.spirvVersion.c()
	p.code = ci.code

	p.default_version = 100
	p.default_profile = ProfileNone.c()
	if vp := in.options.VersionProfile; vp != nil {
		p.default_version = C.int(vp.Version)
		p.default_profile = vp.Profile.c()
		p.force_default_version_and_profile = 1
	}
	p.forward_compatible = 0
	p.messages = C.glslang_messages_t(in.options.Messages)
	p.resource = ci.resources

	if bridge != nil {
		p.callbacks = includeCallbacks()
		p.callbacks_ctx = bridge.ctx()
	}
	return ci, nil
}

func (ci *cInput) free() {
	if ci.input != nil {
		C.free(unsafe.Pointer(ci.input))
		ci.input = nil
	}
	if ci.code != nil {
		C.free(unsafe.Pointer(ci.code))
		ci.code = nil
	}
	if ci.resources != nil {
		C.free(unsafe.Pointer(ci.resources))
		ci.resources = nil
	}
}

// goStringOrEmpty copies a possibly NULL engine string.
func goStringOrEmpty(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// defaultResources is used by inputs built without explicit limits.
var defaultResources = limits.Default()
