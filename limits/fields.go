package limits

import (
	"fmt"
	"sort"
)

// field addresses one int32 member of Resources by its engine name.
type field struct {
	name string
	ptr  func(r *Resources) *int32
}

var fields = []field{
	{"max_lights", func(r *Resources) *int32 { return &r.MaxLights }},
	{"max_clip_planes", func(r *Resources) *int32 { return &r.MaxClipPlanes }},
	{"max_texture_units", func(r *Resources) *int32 { return &r.MaxTextureUnits }},
	{"max_texture_coords", func(r *Resources) *int32 { return &r.MaxTextureCoords }},
	{"max_vertex_attribs", func(r *Resources) *int32 { return &r.MaxVertexAttribs }},
	{"max_vertex_uniform_components", func(r *Resources) *int32 { return &r.MaxVertexUniformComponents }},
	{"max_varying_floats", func(r *Resources) *int32 { return &r.MaxVaryingFloats }},
	{"max_vertex_texture_image_units", func(r *Resources) *int32 { return &r.MaxVertexTextureImageUnits }},
	{"max_combined_texture_image_units", func(r *Resources) *int32 { return &r.MaxCombinedTextureImageUnits }},
	{"max_texture_image_units", func(r *Resources) *int32 { return &r.MaxTextureImageUnits }},
	{"max_fragment_uniform_components", func(r *Resources) *int32 { return &r.MaxFragmentUniformComponents }},
	{"max_draw_buffers", func(r *Resources) *int32 { return &r.MaxDrawBuffers }},
	{"max_vertex_uniform_vectors", func(r *Resources) *int32 { return &r.MaxVertexUniformVectors }},
	{"max_varying_vectors", func(r *Resources) *int32 { return &r.MaxVaryingVectors }},
	{"max_fragment_uniform_vectors", func(r *Resources) *int32 { return &r.MaxFragmentUniformVectors }},
	{"max_vertex_output_vectors", func(r *Resources) *int32 { return &r.MaxVertexOutputVectors }},
	{"max_fragment_input_vectors", func(r *Resources) *int32 { return &r.MaxFragmentInputVectors }},
	{"min_program_texel_offset", func(r *Resources) *int32 { return &r.MinProgramTexelOffset }},
	{"max_program_texel_offset", func(r *Resources) *int32 { return &r.MaxProgramTexelOffset }},
	{"max_clip_distances", func(r *Resources) *int32 { return &r.MaxClipDistances }},
	{"max_compute_work_group_count_x", func(r *Resources) *int32 { return &r.MaxComputeWorkGroupCountX }},
	{"max_compute_work_group_count_y", func(r *Resources) *int32 { return &r.MaxComputeWorkGroupCountY }},
	{"max_compute_work_group_count_z", func(r *Resources) *int32 { return &r.MaxComputeWorkGroupCountZ }},
	{"max_compute_work_group_size_x", func(r *Resources) *int32 { return &r.MaxComputeWorkGroupSizeX }},
	{"max_compute_work_group_size_y", func(r *Resources) *int32 { return &r.MaxComputeWorkGroupSizeY }},
	{"max_compute_work_group_size_z", func(r *Resources) *int32 { return &r.MaxComputeWorkGroupSizeZ }},
	{"max_compute_uniform_components", func(r *Resources) *int32 { return &r.MaxComputeUniformComponents }},
	{"max_compute_texture_image_units", func(r *Resources) *int32 { return &r.MaxComputeTextureImageUnits }},
	{"max_compute_image_uniforms", func(r *Resources) *int32 { return &r.MaxComputeImageUniforms }},
	{"max_compute_atomic_counters", func(r *Resources) *int32 { return &r.MaxComputeAtomicCounters }},
	{"max_compute_atomic_counter_buffers", func(r *Resources) *int32 { return &r.MaxComputeAtomicCounterBuffers }},
	{"max_varying_components", func(r *Resources) *int32 { return &r.MaxVaryingComponents }},
	{"max_vertex_output_components", func(r *Resources) *int32 { return &r.MaxVertexOutputComponents }},
	{"max_geometry_input_components", func(r *Resources) *int32 { return &r.MaxGeometryInputComponents }},
	{"max_geometry_output_components", func(r *Resources) *int32 { return &r.MaxGeometryOutputComponents }},
	{"max_fragment_input_components", func(r *Resources) *int32 { return &r.MaxFragmentInputComponents }},
	{"max_image_units", func(r *Resources) *int32 { return &r.MaxImageUnits }},
	{"max_combined_image_units_and_fragment_outputs", func(r *Resources) *int32 { return &r.MaxCombinedImageUnitsAndFragmentOutputs }},
	{"max_combined_shader_output_resources", func(r *Resources) *int32 { return &r.MaxCombinedShaderOutputResources }},
	{"max_image_samples", func(r *Resources) *int32 { return &r.MaxImageSamples }},
	{"max_vertex_image_uniforms", func(r *Resources) *int32 { return &r.MaxVertexImageUniforms }},
	{"max_tess_control_image_uniforms", func(r *Resources) *int32 { return &r.MaxTessControlImageUniforms }},
	{"max_tess_evaluation_image_uniforms", func(r *Resources) *int32 { return &r.MaxTessEvaluationImageUniforms }},
	{"max_geometry_image_uniforms", func(r *Resources) *int32 { return &r.MaxGeometryImageUniforms }},
	{"max_fragment_image_uniforms", func(r *Resources) *int32 { return &r.MaxFragmentImageUniforms }},
	{"max_combined_image_uniforms", func(r *Resources) *int32 { return &r.MaxCombinedImageUniforms }},
	{"max_geometry_texture_image_units", func(r *Resources) *int32 { return &r.MaxGeometryTextureImageUnits }},
	{"max_geometry_output_vertices", func(r *Resources) *int32 { return &r.MaxGeometryOutputVertices }},
	{"max_geometry_total_output_components", func(r *Resources) *int32 { return &r.MaxGeometryTotalOutputComponents }},
	{"max_geometry_uniform_components", func(r *Resources) *int32 { return &r.MaxGeometryUniformComponents }},
	{"max_geometry_varying_components", func(r *Resources) *int32 { return &r.MaxGeometryVaryingComponents }},
	{"max_tess_control_input_components", func(r *Resources) *int32 { return &r.MaxTessControlInputComponents }},
	{"max_tess_control_output_components", func(r *Resources) *int32 { return &r.MaxTessControlOutputComponents }},
	{"max_tess_control_texture_image_units", func(r *Resources) *int32 { return &r.MaxTessControlTextureImageUnits }},
	{"max_tess_control_uniform_components", func(r *Resources) *int32 { return &r.MaxTessControlUniformComponents }},
	{"max_tess_control_total_output_components", func(r *Resources) *int32 { return &r.MaxTessControlTotalOutputComponents }},
	{"max_tess_evaluation_input_components", func(r *Resources) *int32 { return &r.MaxTessEvaluationInputComponents }},
	{"max_tess_evaluation_output_components", func(r *Resources) *int32 { return &r.MaxTessEvaluationOutputComponents }},
	{"max_tess_evaluation_texture_image_units", func(r *Resources) *int32 { return &r.MaxTessEvaluationTextureImageUnits }},
	{"max_tess_evaluation_uniform_components", func(r *Resources) *int32 { return &r.MaxTessEvaluationUniformComponents }},
	{"max_tess_patch_components", func(r *Resources) *int32 { return &r.MaxTessPatchComponents }},
	{"max_patch_vertices", func(r *Resources) *int32 { return &r.MaxPatchVertices }},
	{"max_tess_gen_level", func(r *Resources) *int32 { return &r.MaxTessGenLevel }},
	{"max_viewports", func(r *Resources) *int32 { return &r.MaxViewports }},
	{"max_vertex_atomic_counters", func(r *Resources) *int32 { return &r.MaxVertexAtomicCounters }},
	{"max_tess_control_atomic_counters", func(r *Resources) *int32 { return &r.MaxTessControlAtomicCounters }},
	{"max_tess_evaluation_atomic_counters", func(r *Resources) *int32 { return &r.MaxTessEvaluationAtomicCounters }},
	{"max_geometry_atomic_counters", func(r *Resources) *int32 { return &r.MaxGeometryAtomicCounters }},
	{"max_fragment_atomic_counters", func(r *Resources) *int32 { return &r.MaxFragmentAtomicCounters }},
	{"max_combined_atomic_counters", func(r *Resources) *int32 { return &r.MaxCombinedAtomicCounters }},
	{"max_atomic_counter_bindings", func(r *Resources) *int32 { return &r.MaxAtomicCounterBindings }},
	{"max_vertex_atomic_counter_buffers", func(r *Resources) *int32 { return &r.MaxVertexAtomicCounterBuffers }},
	{"max_tess_control_atomic_counter_buffers", func(r *Resources) *int32 { return &r.MaxTessControlAtomicCounterBuffers }},
	{"max_tess_evaluation_atomic_counter_buffers", func(r *Resources) *int32 { return &r.MaxTessEvaluationAtomicCounterBuffers }},
	{"max_geometry_atomic_counter_buffers", func(r *Resources) *int32 { return &r.MaxGeometryAtomicCounterBuffers }},
	{"max_fragment_atomic_counter_buffers", func(r *Resources) *int32 { return &r.MaxFragmentAtomicCounterBuffers }},
	{"max_combined_atomic_counter_buffers", func(r *Resources) *int32 { return &r.MaxCombinedAtomicCounterBuffers }},
	{"max_atomic_counter_buffer_size", func(r *Resources) *int32 { return &r.MaxAtomicCounterBufferSize }},
	{"max_transform_feedback_buffers", func(r *Resources) *int32 { return &r.MaxTransformFeedbackBuffers }},
	{"max_transform_feedback_interleaved_components", func(r *Resources) *int32 { return &r.MaxTransformFeedbackInterleavedComponents }},
	{"max_cull_distances", func(r *Resources) *int32 { return &r.MaxCullDistances }},
	{"max_combined_clip_and_cull_distances", func(r *Resources) *int32 { return &r.MaxCombinedClipAndCullDistances }},
	{"max_samples", func(r *Resources) *int32 { return &r.MaxSamples }},
	{"max_mesh_output_vertices_nv", func(r *Resources) *int32 { return &r.MaxMeshOutputVerticesNV }},
	{"max_mesh_output_primitives_nv", func(r *Resources) *int32 { return &r.MaxMeshOutputPrimitivesNV }},
	{"max_mesh_work_group_size_x_nv", func(r *Resources) *int32 { return &r.MaxMeshWorkGroupSizeXNV }},
	{"max_mesh_work_group_size_y_nv", func(r *Resources) *int32 { return &r.MaxMeshWorkGroupSizeYNV }},
	{"max_mesh_work_group_size_z_nv", func(r *Resources) *int32 { return &r.MaxMeshWorkGroupSizeZNV }},
	{"max_task_work_group_size_x_nv", func(r *Resources) *int32 { return &r.MaxTaskWorkGroupSizeXNV }},
	{"max_task_work_group_size_y_nv", func(r *Resources) *int32 { return &r.MaxTaskWorkGroupSizeYNV }},
	{"max_task_work_group_size_z_nv", func(r *Resources) *int32 { return &r.MaxTaskWorkGroupSizeZNV }},
	{"max_mesh_view_count_nv", func(r *Resources) *int32 { return &r.MaxMeshViewCountNV }},
	{"max_mesh_output_vertices_ext", func(r *Resources) *int32 { return &r.MaxMeshOutputVerticesEXT }},
	{"max_mesh_output_primitives_ext", func(r *Resources) *int32 { return &r.MaxMeshOutputPrimitivesEXT }},
	{"max_mesh_work_group_size_x_ext", func(r *Resources) *int32 { return &r.MaxMeshWorkGroupSizeXEXT }},
	{"max_mesh_work_group_size_y_ext", func(r *Resources) *int32 { return &r.MaxMeshWorkGroupSizeYEXT }},
	{"max_mesh_work_group_size_z_ext", func(r *Resources) *int32 { return &r.MaxMeshWorkGroupSizeZEXT }},
	{"max_task_work_group_size_x_ext", func(r *Resources) *int32 { return &r.MaxTaskWorkGroupSizeXEXT }},
	{"max_task_work_group_size_y_ext", func(r *Resources) *int32 { return &r.MaxTaskWorkGroupSizeYEXT }},
	{"max_task_work_group_size_z_ext", func(r *Resources) *int32 { return &r.MaxTaskWorkGroupSizeZEXT }},
	{"max_mesh_view_count_ext", func(r *Resources) *int32 { return &r.MaxMeshViewCountEXT }},
	{"max_dual_source_draw_buffers_ext", func(r *Resources) *int32 { return &r.MaxDualSourceDrawBuffersEXT }},
}

var flags = []struct {
	name string
	ptr  func(l *Limits) *bool
}{
	{"non_inductive_for_loops", func(l *Limits) *bool { return &l.NonInductiveForLoops }},
	{"while_loops", func(l *Limits) *bool { return &l.WhileLoops }},
	{"do_while_loops", func(l *Limits) *bool { return &l.DoWhileLoops }},
	{"general_uniform_indexing", func(l *Limits) *bool { return &l.GeneralUniformIndexing }},
	{"general_attribute_matrix_vector_indexing", func(l *Limits) *bool { return &l.GeneralAttributeMatrixVectorIndexing }},
	{"general_varying_indexing", func(l *Limits) *bool { return &l.GeneralVaryingIndexing }},
	{"general_sampler_indexing", func(l *Limits) *bool { return &l.GeneralSamplerIndexing }},
	{"general_variable_indexing", func(l *Limits) *bool { return &l.GeneralVariableIndexing }},
	{"general_constant_matrix_vector_indexing", func(l *Limits) *bool { return &l.GeneralConstantMatrixVectorIndexing }},
}

var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[f.name] = i
	}
	return m
}()

// Names returns the engine names of every integer limit, sorted.
func Names() []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

// FlagNames returns the engine names of the capability flags in declaration order.
func FlagNames() []string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.name)
	}
	return names
}

// Get returns the integer limit with the given engine name, e.g. "max_lights".
func (r *Resources) Get(name string) (int32, bool) {
	i, ok := fieldIndex[name]
	if !ok {
		return 0, false
	}
	return *fields[i].ptr(r), true
}

// Set assigns exactly one integer limit by engine name.
func (r *Resources) Set(name string, value int32) error {
	i, ok := fieldIndex[name]
	if !ok {
		return fmt.Errorf("limits: unknown resource limit %q", name)
	}
	*fields[i].ptr(r) = value
	return nil
}

// Flag returns the capability flag with the given engine name.
func (r *Resources) Flag(name string) (bool, bool) {
	for _, f := range flags {
		if f.name == name {
			return *f.ptr(&r.Limits), true
		}
	}
	return false, false
}

// SetFlag assigns exactly one capability flag by engine name.
func (r *Resources) SetFlag(name string, value bool) error {
	for _, f := range flags {
		if f.name == name {
			*f.ptr(&r.Limits) = value
			return nil
		}
	}
	return fmt.Errorf("limits: unknown capability flag %q", name)
}
