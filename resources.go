package glslang

/*
#include <stdbool.h>
#include <stdlib.h>
#include <glslang/Include/glslang_c_interface.h>

// max_dual_source_draw_buffers_ext lives in an anonymous union.
static void goglslang_set_dual_source_draw_buffers(glslang_resource_t *r, int v) {
	r->max_dual_source_draw_buffers_ext = v;
}
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/glslang/limits"
)

// newCResources copies r into a C-allocated glslang_resource_t. The caller
// frees it with C.free.
func newCResources(r *limits.Resources) *C.glslang_resource_t {
	c := (*C.glslang_resource_t)(C.calloc(1, C.size_t(unsafe.Sizeof(C.glslang_resource_t{}))))
	if c == nil {
		return nil
	}

	c.max_lights = C.int(r.MaxLights)
	c.max_clip_planes = C.int(r.MaxClipPlanes)
	c.max_texture_units = C.int(r.MaxTextureUnits)
	c.max_texture_coords = C.int(r.MaxTextureCoords)
	c.max_vertex_attribs = C.int(r.MaxVertexAttribs)
	c.max_vertex_uniform_components = C.int(r.MaxVertexUniformComponents)
	c.max_varying_floats = C.int(r.MaxVaryingFloats)
	c.max_vertex_texture_image_units = C.int(r.MaxVertexTextureImageUnits)
	c.max_combined_texture_image_units = C.int(r.MaxCombinedTextureImageUnits)
	c.max_texture_image_units = C.int(r.MaxTextureImageUnits)
	c.max_fragment_uniform_components = C.int(r.MaxFragmentUniformComponents)
	c.max_draw_buffers = C.int(r.MaxDrawBuffers)
	c.max_vertex_uniform_vectors = C.int(r.MaxVertexUniformVectors)
	c.max_varying_vectors = C.int(r.MaxVaryingVectors)
	c.max_fragment_uniform_vectors = C.int(r.MaxFragmentUniformVectors)
	c.max_vertex_output_vectors = C.int(r.MaxVertexOutputVectors)
	c.max_fragment_input_vectors = C.int(r.MaxFragmentInputVectors)
	c.min_program_texel_offset = C.int(r.MinProgramTexelOffset)
	c.max_program_texel_offset = C.int(r.MaxProgramTexelOffset)
	c.max_clip_distances = C.int(r.MaxClipDistances)
	c.max_compute_work_group_count_x = C.int(r.MaxComputeWorkGroupCountX)
	c.max_compute_work_group_count_y = C.int(r.MaxComputeWorkGroupCountY)
	c.max_compute_work_group_count_z = C.int(r.MaxComputeWorkGroupCountZ)
	c.max_compute_work_group_size_x = C.int(r.MaxComputeWorkGroupSizeX)
	c.max_compute_work_group_size_y = C.int(r.MaxComputeWorkGroupSizeY)
	c.max_compute_work_group_size_z = C.int(r.MaxComputeWorkGroupSizeZ)
	c.max_compute_uniform_components = C.int(r.MaxComputeUniformComponents)
	c.max_compute_texture_image_units = C.int(r.MaxComputeTextureImageUnits)
	c.max_compute_image_uniforms = C.int(r.MaxComputeImageUniforms)
	c.max_compute_atomic_counters = C.int(r.MaxComputeAtomicCounters)
	c.max_compute_atomic_counter_buffers = C.int(r.MaxComputeAtomicCounterBuffers)
	c.max_varying_components = C.int(r.MaxVaryingComponents)
	c.max_vertex_output_components = C.int(r.MaxVertexOutputComponents)
	c.max_geometry_input_components = C.int(r.MaxGeometryInputComponents)
	c.max_geometry_output_components = C.int(r.MaxGeometryOutputComponents)
	c.max_fragment_input_components = C.int(r.MaxFragmentInputComponents)
	c.max_image_units = C.int(r.MaxImageUnits)
	c.max_combined_image_units_and_fragment_outputs = C.int(r.MaxCombinedImageUnitsAndFragmentOutputs)
	c.max_combined_shader_output_resources = C.int(r.MaxCombinedShaderOutputResources)
	c.max_image_samples = C.int(r.MaxImageSamples)
	c.max_vertex_image_uniforms = C.int(r.MaxVertexImageUniforms)
	c.max_tess_control_image_uniforms = C.int(r.MaxTessControlImageUniforms)
	c.max_tess_evaluation_image_uniforms = C.int(r.MaxTessEvaluationImageUniforms)
	c.max_geometry_image_uniforms = C.int(r.MaxGeometryImageUniforms)
	c.max_fragment_image_uniforms = C.int(r.MaxFragmentImageUniforms)
	c.max_combined_image_uniforms = C.int(r.MaxCombinedImageUniforms)
	c.max_geometry_texture_image_units = C.int(r.MaxGeometryTextureImageUnits)
	c.max_geometry_output_vertices = C.int(r.MaxGeometryOutputVertices)
	c.max_geometry_total_output_components = C.int(r.MaxGeometryTotalOutputComponents)
	c.max_geometry_uniform_components = C.int(r.MaxGeometryUniformComponents)
	c.max_geometry_varying_components = C.int(r.MaxGeometryVaryingComponents)
	c.max_tess_control_input_components = C.int(r.MaxTessControlInputComponents)
	c.max_tess_control_output_components = C.int(r.MaxTessControlOutputComponents)
	c.max_tess_control_texture_image_units = C.int(r.MaxTessControlTextureImageUnits)
	c.max_tess_control_uniform_components = C.int(r.MaxTessControlUniformComponents)
	c.max_tess_control_total_output_components = C.int(r.MaxTessControlTotalOutputComponents)
	c.max_tess_evaluation_input_components = C.int(r.MaxTessEvaluationInputComponents)
	c.max_tess_evaluation_output_components = C.int(r.MaxTessEvaluationOutputComponents)
	c.max_tess_evaluation_texture_image_units = C.int(r.MaxTessEvaluationTextureImageUnits)
	c.max_tess_evaluation_uniform_components = C.int(r.MaxTessEvaluationUniformComponents)
	c.max_tess_patch_components = C.int(r.MaxTessPatchComponents)
	c.max_patch_vertices = C.int(r.MaxPatchVertices)
	c.max_tess_gen_level = C.int(r.MaxTessGenLevel)
	c.max_viewports = C.int(r.MaxViewports)
	c.max_vertex_atomic_counters = C.int(r.MaxVertexAtomicCounters)
	c.max_tess_control_atomic_counters = C.int(r.MaxTessControlAtomicCounters)
	c.max_tess_evaluation_atomic_counters = C.int(r.MaxTessEvaluationAtomicCounters)
	c.max_geometry_atomic_counters = C.int(r.MaxGeometryAtomicCounters)
	c.max_fragment_atomic_counters = C.int(r.MaxFragmentAtomicCounters)
	c.max_combined_atomic_counters = C.int(r.MaxCombinedAtomicCounters)
	c.max_atomic_counter_bindings = C.int(r.MaxAtomicCounterBindings)
	c.max_vertex_atomic_counter_buffers = C.int(r.MaxVertexAtomicCounterBuffers)
	c.max_tess_control_atomic_counter_buffers = C.int(r.MaxTessControlAtomicCounterBuffers)
	c.max_tess_evaluation_atomic_counter_buffers = C.int(r.MaxTessEvaluationAtomicCounterBuffers)
	c.max_geometry_atomic_counter_buffers = C.int(r.MaxGeometryAtomicCounterBuffers)
	c.max_fragment_atomic_counter_buffers = C.int(r.MaxFragmentAtomicCounterBuffers)
	c.max_combined_atomic_counter_buffers = C.int(r.MaxCombinedAtomicCounterBuffers)
	c.max_atomic_counter_buffer_size = C.int(r.MaxAtomicCounterBufferSize)
	c.max_transform_feedback_buffers = C.int(r.MaxTransformFeedbackBuffers)
	c.max_transform_feedback_interleaved_components = C.int(r.MaxTransformFeedbackInterleavedComponents)
	c.max_cull_distances = C.int(r.MaxCullDistances)
	c.max_combined_clip_and_cull_distances = C.int(r.MaxCombinedClipAndCullDistances)
	c.max_samples = C.int(r.MaxSamples)
	c.max_mesh_output_vertices_nv = C.int(r.MaxMeshOutputVerticesNV)
	c.max_mesh_output_primitives_nv = C.int(r.MaxMeshOutputPrimitivesNV)
	c.max_mesh_work_group_size_x_nv = C.int(r.MaxMeshWorkGroupSizeXNV)
	c.max_mesh_work_group_size_y_nv = C.int(r.MaxMeshWorkGroupSizeYNV)
	c.max_mesh_work_group_size_z_nv = C.int(r.MaxMeshWorkGroupSizeZNV)
	c.max_task_work_group_size_x_nv = C.int(r.MaxTaskWorkGroupSizeXNV)
	c.max_task_work_group_size_y_nv = C.int(r.MaxTaskWorkGroupSizeYNV)
	c.max_task_work_group_size_z_nv = C.int(r.MaxTaskWorkGroupSizeZNV)
	c.max_mesh_view_count_nv = C.int(r.MaxMeshViewCountNV)
	c.max_mesh_output_vertices_ext = C.int(r.MaxMeshOutputVerticesEXT)
	c.max_mesh_output_primitives_ext = C.int(r.MaxMeshOutputPrimitivesEXT)
	c.max_mesh_work_group_size_x_ext = C.int(r.MaxMeshWorkGroupSizeXEXT)
	c.max_mesh_work_group_size_y_ext = C.int(r.MaxMeshWorkGroupSizeYEXT)
	c.max_mesh_work_group_size_z_ext = C.int(r.MaxMeshWorkGroupSizeZEXT)
	c.max_task_work_group_size_x_ext = C.int(r.MaxTaskWorkGroupSizeXEXT)
	c.max_task_work_group_size_y_ext = C.int(r.MaxTaskWorkGroupSizeYEXT)
	c.max_task_work_group_size_z_ext = C.int(r.MaxTaskWorkGroupSizeZEXT)
	c.max_mesh_view_count_ext = C.int(r.MaxMeshViewCountEXT)
	C.goglslang_set_dual_source_draw_buffers(c, C.int(r.MaxDualSourceDrawBuffersEXT))

	c.limits.non_inductive_for_loops = C.bool(r.Limits.NonInductiveForLoops)
	c.limits.while_loops = C.bool(r.Limits.WhileLoops)
	c.limits.do_while_loops = C.bool(r.Limits.DoWhileLoops)
	c.limits.general_uniform_indexing = C.bool(r.Limits.GeneralUniformIndexing)
	c.limits.general_attribute_matrix_vector_indexing = C.bool(r.Limits.GeneralAttributeMatrixVectorIndexing)
	c.limits.general_varying_indexing = C.bool(r.Limits.GeneralVaryingIndexing)
	c.limits.general_sampler_indexing = C.bool(r.Limits.GeneralSamplerIndexing)
	c.limits.general_variable_indexing = C.bool(r.Limits.GeneralVariableIndexing)
	c.limits.general_constant_matrix_vector_indexing = C.bool(r.Limits.GeneralConstantMatrixVectorIndexing)

	return c
}
