// Package limits describes the implementation limits the glslang engine
// consults while validating a shader.
//
// The zero value is not useful; start from Default and override the fields a
// target device actually reports:
//
//	res := limits.Default()
//	res.MaxLights = 64
//	res.Limits.WhileLoops = false
package limits

// Resources mirrors glslang_resource_t. Every value is forwarded to the
// engine verbatim; nothing here is range checked.
type Resources struct {
	MaxLights                                 int32 `yaml:"max_lights" toml:"max_lights"`
	MaxClipPlanes                             int32 `yaml:"max_clip_planes" toml:"max_clip_planes"`
	MaxTextureUnits                           int32 `yaml:"max_texture_units" toml:"max_texture_units"`
	MaxTextureCoords                          int32 `yaml:"max_texture_coords" toml:"max_texture_coords"`
	MaxVertexAttribs                          int32 `yaml:"max_vertex_attribs" toml:"max_vertex_attribs"`
	MaxVertexUniformComponents                int32 `yaml:"max_vertex_uniform_components" toml:"max_vertex_uniform_components"`
	MaxVaryingFloats                          int32 `yaml:"max_varying_floats" toml:"max_varying_floats"`
	MaxVertexTextureImageUnits                int32 `yaml:"max_vertex_texture_image_units" toml:"max_vertex_texture_image_units"`
	MaxCombinedTextureImageUnits              int32 `yaml:"max_combined_texture_image_units" toml:"max_combined_texture_image_units"`
	MaxTextureImageUnits                      int32 `yaml:"max_texture_image_units" toml:"max_texture_image_units"`
	MaxFragmentUniformComponents              int32 `yaml:"max_fragment_uniform_components" toml:"max_fragment_uniform_components"`
	MaxDrawBuffers                            int32 `yaml:"max_draw_buffers" toml:"max_draw_buffers"`
	MaxVertexUniformVectors                   int32 `yaml:"max_vertex_uniform_vectors" toml:"max_vertex_uniform_vectors"`
	MaxVaryingVectors                         int32 `yaml:"max_varying_vectors" toml:"max_varying_vectors"`
	MaxFragmentUniformVectors                 int32 `yaml:"max_fragment_uniform_vectors" toml:"max_fragment_uniform_vectors"`
	MaxVertexOutputVectors                    int32 `yaml:"max_vertex_output_vectors" toml:"max_vertex_output_vectors"`
	MaxFragmentInputVectors                   int32 `yaml:"max_fragment_input_vectors" toml:"max_fragment_input_vectors"`
	MinProgramTexelOffset                     int32 `yaml:"min_program_texel_offset" toml:"min_program_texel_offset"`
	MaxProgramTexelOffset                     int32 `yaml:"max_program_texel_offset" toml:"max_program_texel_offset"`
	MaxClipDistances                          int32 `yaml:"max_clip_distances" toml:"max_clip_distances"`
	MaxComputeWorkGroupCountX                 int32 `yaml:"max_compute_work_group_count_x" toml:"max_compute_work_group_count_x"`
	MaxComputeWorkGroupCountY                 int32 `yaml:"max_compute_work_group_count_y" toml:"max_compute_work_group_count_y"`
	MaxComputeWorkGroupCountZ                 int32 `yaml:"max_compute_work_group_count_z" toml:"max_compute_work_group_count_z"`
	MaxComputeWorkGroupSizeX                  int32 `yaml:"max_compute_work_group_size_x" toml:"max_compute_work_group_size_x"`
	MaxComputeWorkGroupSizeY                  int32 `yaml:"max_compute_work_group_size_y" toml:"max_compute_work_group_size_y"`
	MaxComputeWorkGroupSizeZ                  int32 `yaml:"max_compute_work_group_size_z" toml:"max_compute_work_group_size_z"`
	MaxComputeUniformComponents               int32 `yaml:"max_compute_uniform_components" toml:"max_compute_uniform_components"`
	MaxComputeTextureImageUnits               int32 `yaml:"max_compute_texture_image_units" toml:"max_compute_texture_image_units"`
	MaxComputeImageUniforms                   int32 `yaml:"max_compute_image_uniforms" toml:"max_compute_image_uniforms"`
	MaxComputeAtomicCounters                  int32 `yaml:"max_compute_atomic_counters" toml:"max_compute_atomic_counters"`
	MaxComputeAtomicCounterBuffers            int32 `yaml:"max_compute_atomic_counter_buffers" toml:"max_compute_atomic_counter_buffers"`
	MaxVaryingComponents                      int32 `yaml:"max_varying_components" toml:"max_varying_components"`
	MaxVertexOutputComponents                 int32 `yaml:"max_vertex_output_components" toml:"max_vertex_output_components"`
	MaxGeometryInputComponents                int32 `yaml:"max_geometry_input_components" toml:"max_geometry_input_components"`
	MaxGeometryOutputComponents               int32 `yaml:"max_geometry_output_components" toml:"max_geometry_output_components"`
	MaxFragmentInputComponents                int32 `yaml:"max_fragment_input_components" toml:"max_fragment_input_components"`
	MaxImageUnits                             int32 `yaml:"max_image_units" toml:"max_image_units"`
	MaxCombinedImageUnitsAndFragmentOutputs   int32 `yaml:"max_combined_image_units_and_fragment_outputs" toml:"max_combined_image_units_and_fragment_outputs"`
	MaxCombinedShaderOutputResources          int32 `yaml:"max_combined_shader_output_resources" toml:"max_combined_shader_output_resources"`
	MaxImageSamples                           int32 `yaml:"max_image_samples" toml:"max_image_samples"`
	MaxVertexImageUniforms                    int32 `yaml:"max_vertex_image_uniforms" toml:"max_vertex_image_uniforms"`
	MaxTessControlImageUniforms               int32 `yaml:"max_tess_control_image_uniforms" toml:"max_tess_control_image_uniforms"`
	MaxTessEvaluationImageUniforms            int32 `yaml:"max_tess_evaluation_image_uniforms" toml:"max_tess_evaluation_image_uniforms"`
	MaxGeometryImageUniforms                  int32 `yaml:"max_geometry_image_uniforms" toml:"max_geometry_image_uniforms"`
	MaxFragmentImageUniforms                  int32 `yaml:"max_fragment_image_uniforms" toml:"max_fragment_image_uniforms"`
	MaxCombinedImageUniforms                  int32 `yaml:"max_combined_image_uniforms" toml:"max_combined_image_uniforms"`
	MaxGeometryTextureImageUnits              int32 `yaml:"max_geometry_texture_image_units" toml:"max_geometry_texture_image_units"`
	MaxGeometryOutputVertices                 int32 `yaml:"max_geometry_output_vertices" toml:"max_geometry_output_vertices"`
	MaxGeometryTotalOutputComponents          int32 `yaml:"max_geometry_total_output_components" toml:"max_geometry_total_output_components"`
	MaxGeometryUniformComponents              int32 `yaml:"max_geometry_uniform_components" toml:"max_geometry_uniform_components"`
	MaxGeometryVaryingComponents              int32 `yaml:"max_geometry_varying_components" toml:"max_geometry_varying_components"`
	MaxTessControlInputComponents             int32 `yaml:"max_tess_control_input_components" toml:"max_tess_control_input_components"`
	MaxTessControlOutputComponents            int32 `yaml:"max_tess_control_output_components" toml:"max_tess_control_output_components"`
	MaxTessControlTextureImageUnits           int32 `yaml:"max_tess_control_texture_image_units" toml:"max_tess_control_texture_image_units"`
	MaxTessControlUniformComponents           int32 `yaml:"max_tess_control_uniform_components" toml:"max_tess_control_uniform_components"`
	MaxTessControlTotalOutputComponents       int32 `yaml:"max_tess_control_total_output_components" toml:"max_tess_control_total_output_components"`
	MaxTessEvaluationInputComponents          int32 `yaml:"max_tess_evaluation_input_components" toml:"max_tess_evaluation_input_components"`
	MaxTessEvaluationOutputComponents         int32 `yaml:"max_tess_evaluation_output_components" toml:"max_tess_evaluation_output_components"`
	MaxTessEvaluationTextureImageUnits        int32 `yaml:"max_tess_evaluation_texture_image_units" toml:"max_tess_evaluation_texture_image_units"`
	MaxTessEvaluationUniformComponents        int32 `yaml:"max_tess_evaluation_uniform_components" toml:"max_tess_evaluation_uniform_components"`
	MaxTessPatchComponents                    int32 `yaml:"max_tess_patch_components" toml:"max_tess_patch_components"`
	MaxPatchVertices                          int32 `yaml:"max_patch_vertices" toml:"max_patch_vertices"`
	MaxTessGenLevel                           int32 `yaml:"max_tess_gen_level" toml:"max_tess_gen_level"`
	MaxViewports                              int32 `yaml:"max_viewports" toml:"max_viewports"`
	MaxVertexAtomicCounters                   int32 `yaml:"max_vertex_atomic_counters" toml:"max_vertex_atomic_counters"`
	MaxTessControlAtomicCounters              int32 `yaml:"max_tess_control_atomic_counters" toml:"max_tess_control_atomic_counters"`
	MaxTessEvaluationAtomicCounters           int32 `yaml:"max_tess_evaluation_atomic_counters" toml:"max_tess_evaluation_atomic_counters"`
	MaxGeometryAtomicCounters                 int32 `yaml:"max_geometry_atomic_counters" toml:"max_geometry_atomic_counters"`
	MaxFragmentAtomicCounters                 int32 `yaml:"max_fragment_atomic_counters" toml:"max_fragment_atomic_counters"`
	MaxCombinedAtomicCounters                 int32 `yaml:"max_combined_atomic_counters" toml:"max_combined_atomic_counters"`
	MaxAtomicCounterBindings                  int32 `yaml:"max_atomic_counter_bindings" toml:"max_atomic_counter_bindings"`
	MaxVertexAtomicCounterBuffers             int32 `yaml:"max_vertex_atomic_counter_buffers" toml:"max_vertex_atomic_counter_buffers"`
	MaxTessControlAtomicCounterBuffers        int32 `yaml:"max_tess_control_atomic_counter_buffers" toml:"max_tess_control_atomic_counter_buffers"`
	MaxTessEvaluationAtomicCounterBuffers     int32 `yaml:"max_tess_evaluation_atomic_counter_buffers" toml:"max_tess_evaluation_atomic_counter_buffers"`
	MaxGeometryAtomicCounterBuffers           int32 `yaml:"max_geometry_atomic_counter_buffers" toml:"max_geometry_atomic_counter_buffers"`
	MaxFragmentAtomicCounterBuffers           int32 `yaml:"max_fragment_atomic_counter_buffers" toml:"max_fragment_atomic_counter_buffers"`
	MaxCombinedAtomicCounterBuffers           int32 `yaml:"max_combined_atomic_counter_buffers" toml:"max_combined_atomic_counter_buffers"`
	MaxAtomicCounterBufferSize                int32 `yaml:"max_atomic_counter_buffer_size" toml:"max_atomic_counter_buffer_size"`
	MaxTransformFeedbackBuffers               int32 `yaml:"max_transform_feedback_buffers" toml:"max_transform_feedback_buffers"`
	MaxTransformFeedbackInterleavedComponents int32 `yaml:"max_transform_feedback_interleaved_components" toml:"max_transform_feedback_interleaved_components"`
	MaxCullDistances                          int32 `yaml:"max_cull_distances" toml:"max_cull_distances"`
	MaxCombinedClipAndCullDistances           int32 `yaml:"max_combined_clip_and_cull_distances" toml:"max_combined_clip_and_cull_distances"`
	MaxSamples                                int32 `yaml:"max_samples" toml:"max_samples"`
	MaxMeshOutputVerticesNV                   int32 `yaml:"max_mesh_output_vertices_nv" toml:"max_mesh_output_vertices_nv"`
	MaxMeshOutputPrimitivesNV                 int32 `yaml:"max_mesh_output_primitives_nv" toml:"max_mesh_output_primitives_nv"`
	MaxMeshWorkGroupSizeXNV                   int32 `yaml:"max_mesh_work_group_size_x_nv" toml:"max_mesh_work_group_size_x_nv"`
	MaxMeshWorkGroupSizeYNV                   int32 `yaml:"max_mesh_work_group_size_y_nv" toml:"max_mesh_work_group_size_y_nv"`
	MaxMeshWorkGroupSizeZNV                   int32 `yaml:"max_mesh_work_group_size_z_nv" toml:"max_mesh_work_group_size_z_nv"`
	MaxTaskWorkGroupSizeXNV                   int32 `yaml:"max_task_work_group_size_x_nv" toml:"max_task_work_group_size_x_nv"`
	MaxTaskWorkGroupSizeYNV                   int32 `yaml:"max_task_work_group_size_y_nv" toml:"max_task_work_group_size_y_nv"`
	MaxTaskWorkGroupSizeZNV                   int32 `yaml:"max_task_work_group_size_z_nv" toml:"max_task_work_group_size_z_nv"`
	MaxMeshViewCountNV                        int32 `yaml:"max_mesh_view_count_nv" toml:"max_mesh_view_count_nv"`
	MaxMeshOutputVerticesEXT                  int32 `yaml:"max_mesh_output_vertices_ext" toml:"max_mesh_output_vertices_ext"`
	MaxMeshOutputPrimitivesEXT                int32 `yaml:"max_mesh_output_primitives_ext" toml:"max_mesh_output_primitives_ext"`
	MaxMeshWorkGroupSizeXEXT                  int32 `yaml:"max_mesh_work_group_size_x_ext" toml:"max_mesh_work_group_size_x_ext"`
	MaxMeshWorkGroupSizeYEXT                  int32 `yaml:"max_mesh_work_group_size_y_ext" toml:"max_mesh_work_group_size_y_ext"`
	MaxMeshWorkGroupSizeZEXT                  int32 `yaml:"max_mesh_work_group_size_z_ext" toml:"max_mesh_work_group_size_z_ext"`
	MaxTaskWorkGroupSizeXEXT                  int32 `yaml:"max_task_work_group_size_x_ext" toml:"max_task_work_group_size_x_ext"`
	MaxTaskWorkGroupSizeYEXT                  int32 `yaml:"max_task_work_group_size_y_ext" toml:"max_task_work_group_size_y_ext"`
	MaxTaskWorkGroupSizeZEXT                  int32 `yaml:"max_task_work_group_size_z_ext" toml:"max_task_work_group_size_z_ext"`
	MaxMeshViewCountEXT                       int32 `yaml:"max_mesh_view_count_ext" toml:"max_mesh_view_count_ext"`
	MaxDualSourceDrawBuffersEXT               int32 `yaml:"max_dual_source_draw_buffers_ext" toml:"max_dual_source_draw_buffers_ext"`

	// Limits holds the GLSL ES 1.00 Appendix A capability flags.
	Limits Limits `yaml:"limits" toml:"limits"`
}

// Limits mirrors glslang_limits_t.
type Limits struct {
	NonInductiveForLoops                 bool `yaml:"non_inductive_for_loops" toml:"non_inductive_for_loops"`
	WhileLoops                           bool `yaml:"while_loops" toml:"while_loops"`
	DoWhileLoops                         bool `yaml:"do_while_loops" toml:"do_while_loops"`
	GeneralUniformIndexing               bool `yaml:"general_uniform_indexing" toml:"general_uniform_indexing"`
	GeneralAttributeMatrixVectorIndexing bool `yaml:"general_attribute_matrix_vector_indexing" toml:"general_attribute_matrix_vector_indexing"`
	GeneralVaryingIndexing               bool `yaml:"general_varying_indexing" toml:"general_varying_indexing"`
	GeneralSamplerIndexing               bool `yaml:"general_sampler_indexing" toml:"general_sampler_indexing"`
	GeneralVariableIndexing              bool `yaml:"general_variable_indexing" toml:"general_variable_indexing"`
	GeneralConstantMatrixVectorIndexing  bool `yaml:"general_constant_matrix_vector_indexing" toml:"general_constant_matrix_vector_indexing"`
}

// DefaultLimits returns the reference capability flags: everything enabled.
func DefaultLimits() Limits {
	return Limits{
		NonInductiveForLoops:                 true,
		WhileLoops:                           true,
		DoWhileLoops:                         true,
		GeneralUniformIndexing:               true,
		GeneralAttributeMatrixVectorIndexing: true,
		GeneralVaryingIndexing:               true,
		GeneralSamplerIndexing:               true,
		GeneralVariableIndexing:              true,
		GeneralConstantMatrixVectorIndexing:  true,
	}
}

// Default returns the engine's reference resource limits, the same values
// glslangValidator uses when no configuration file is given.
func Default() Resources {
	return Resources{
		MaxLights:                                 32,
		MaxClipPlanes:                             6,
		MaxTextureUnits:                           32,
		MaxTextureCoords:                          32,
		MaxVertexAttribs:                          64,
		MaxVertexUniformComponents:                4096,
		MaxVaryingFloats:                          64,
		MaxVertexTextureImageUnits:                32,
		MaxCombinedTextureImageUnits:              80,
		MaxTextureImageUnits:                      32,
		MaxFragmentUniformComponents:              4096,
		MaxDrawBuffers:                            32,
		MaxVertexUniformVectors:                   128,
		MaxVaryingVectors:                         8,
		MaxFragmentUniformVectors:                 16,
		MaxVertexOutputVectors:                    16,
		MaxFragmentInputVectors:                   15,
		MinProgramTexelOffset:                     -8,
		MaxProgramTexelOffset:                     7,
		MaxClipDistances:                          8,
		MaxComputeWorkGroupCountX:                 65535,
		MaxComputeWorkGroupCountY:                 65535,
		MaxComputeWorkGroupCountZ:                 65535,
		MaxComputeWorkGroupSizeX:                  1024,
		MaxComputeWorkGroupSizeY:                  1024,
		MaxComputeWorkGroupSizeZ:                  64,
		MaxComputeUniformComponents:               1024,
		MaxComputeTextureImageUnits:               16,
		MaxComputeImageUniforms:                   8,
		MaxComputeAtomicCounters:                  8,
		MaxComputeAtomicCounterBuffers:            1,
		MaxVaryingComponents:                      60,
		MaxVertexOutputComponents:                 64,
		MaxGeometryInputComponents:                64,
		MaxGeometryOutputComponents:               128,
		MaxFragmentInputComponents:                128,
		MaxImageUnits:                             8,
		MaxCombinedImageUnitsAndFragmentOutputs:   8,
		MaxCombinedShaderOutputResources:          8,
		MaxImageSamples:                           0,
		MaxVertexImageUniforms:                    0,
		MaxTessControlImageUniforms:               0,
		MaxTessEvaluationImageUniforms:            0,
		MaxGeometryImageUniforms:                  0,
		MaxFragmentImageUniforms:                  8,
		MaxCombinedImageUniforms:                  8,
		MaxGeometryTextureImageUnits:              16,
		MaxGeometryOutputVertices:                 256,
		MaxGeometryTotalOutputComponents:          1024,
		MaxGeometryUniformComponents:              64,
		MaxGeometryVaryingComponents:              128,
		MaxTessControlInputComponents:             128,
		MaxTessControlOutputComponents:            16,
		MaxTessControlTextureImageUnits:           1,
		MaxTessControlUniformComponents:           1024,
		MaxTessControlTotalOutputComponents:       4096,
		MaxTessEvaluationInputComponents:          128,
		MaxTessEvaluationOutputComponents:         128,
		MaxTessEvaluationTextureImageUnits:        16,
		MaxTessEvaluationUniformComponents:        1024,
		MaxTessPatchComponents:                    0,
		MaxPatchVertices:                          32,
		MaxTessGenLevel:                           64,
		MaxViewports:                              16,
		MaxVertexAtomicCounters:                   0,
		MaxTessControlAtomicCounters:              0,
		MaxTessEvaluationAtomicCounters:           0,
		MaxGeometryAtomicCounters:                 0,
		MaxFragmentAtomicCounters:                 8,
		MaxCombinedAtomicCounters:                 8,
		MaxAtomicCounterBindings:                  1,
		MaxVertexAtomicCounterBuffers:             0,
		MaxTessControlAtomicCounterBuffers:        0,
		MaxTessEvaluationAtomicCounterBuffers:     0,
		MaxGeometryAtomicCounterBuffers:           0,
		MaxFragmentAtomicCounterBuffers:           1,
		MaxCombinedAtomicCounterBuffers:           1,
		MaxAtomicCounterBufferSize:                16384,
		MaxTransformFeedbackBuffers:               4,
		MaxTransformFeedbackInterleavedComponents: 64,
		MaxCullDistances:                          8,
		MaxCombinedClipAndCullDistances:           8,
		MaxSamples:                                4,
		MaxMeshOutputVerticesNV:                   256,
		MaxMeshOutputPrimitivesNV:                 512,
		MaxMeshWorkGroupSizeXNV:                   32,
		MaxMeshWorkGroupSizeYNV:                   1,
		MaxMeshWorkGroupSizeZNV:                   1,
		MaxTaskWorkGroupSizeXNV:                   32,
		MaxTaskWorkGroupSizeYNV:                   1,
		MaxTaskWorkGroupSizeZNV:                   1,
		MaxMeshViewCountNV:                        4,
		MaxMeshOutputVerticesEXT:                  256,
		MaxMeshOutputPrimitivesEXT:                256,
		MaxMeshWorkGroupSizeXEXT:                  128,
		MaxMeshWorkGroupSizeYEXT:                  128,
		MaxMeshWorkGroupSizeZEXT:                  128,
		MaxTaskWorkGroupSizeXEXT:                  128,
		MaxTaskWorkGroupSizeYEXT:                  128,
		MaxTaskWorkGroupSizeZEXT:                  128,
		MaxMeshViewCountEXT:                       4,
		MaxDualSourceDrawBuffersEXT:               1,
		Limits:                                    DefaultLimits(),
	}
}
