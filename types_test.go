package glslang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glslang/spirv"
)

func TestParseStage(t *testing.T) {
	for _, stage := range Stages() {
		got, err := ParseStage(stage.String())
		require.NoError(t, err)
		assert.Equal(t, stage, got)
	}

	got, err := ParseStage("Fragment")
	require.NoError(t, err)
	assert.Equal(t, StageFragment, got)

	_, err = ParseStage("pixelshader")
	assert.True(t, IsKind(err, ErrInvalidStage))
}

func TestStageFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Stage
	}{
		{"shaders/basic.vert", StageVertex},
		{"shaders/basic.frag.glsl", StageFragment},
		{`C:\shaders\blur.comp`, StageCompute},
		{"mesh.mesh.hlsl", StageMesh},
		{"trace.rgen", StageRayGen},
	}
	for _, tt := range tests {
		got, err := StageFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := StageFromPath("common.glsl")
	assert.Error(t, err)
}

func TestStageExecutionModel(t *testing.T) {
	assert.Equal(t, spirv.ExecutionModelVertex, StageVertex.ExecutionModel())
	assert.Equal(t, spirv.ExecutionModelFragment, StageFragment.ExecutionModel())
	assert.Equal(t, spirv.ExecutionModelGLCompute, StageCompute.ExecutionModel())
	assert.Equal(t, spirv.ExecutionModelMeshEXT, StageMesh.ExecutionModel())
}

func TestParseVersions(t *testing.T) {
	v, err := ParseSpirvVersion("1.5")
	require.NoError(t, err)
	assert.Equal(t, Spirv1_5, v)
	assert.Equal(t, spirv.Version1_5, v.Version())

	v, err = ParseSpirvVersion("spirv1.0")
	require.NoError(t, err)
	assert.Equal(t, Spirv1_0, v)

	_, err = ParseSpirvVersion("1.7")
	assert.True(t, IsKind(err, ErrInvalidTarget))
	_, err = ParseSpirvVersion("2.0")
	assert.Error(t, err)

	vk, err := ParseVulkanVersion("vulkan1.3")
	require.NoError(t, err)
	assert.Equal(t, Vulkan1_3, vk)
	assert.Equal(t, "vulkan1.3", vk.String())

	_, err = ParseVulkanVersion("1.9")
	assert.Error(t, err)
}

func TestMessages(t *testing.T) {
	m := MessagesSpvRules | MessagesVulkanRules | MessagesDebugInfo
	assert.Equal(t, "spv-rules|vulkan-rules|debug-info", m.String())
	assert.Equal(t, "default", MessagesDefault.String())

	parsed, err := ParseMessages("spv-rules, vulkan-rules|debug-info")
	require.NoError(t, err)
	assert.Equal(t, m, parsed)

	_, err = ParseMessages("bogus")
	assert.Error(t, err)
}

func TestLanguageFromPath(t *testing.T) {
	assert.Equal(t, SourceHLSL, LanguageFromPath("shader.frag.HLSL"))
	assert.Equal(t, SourceGLSL, LanguageFromPath("shader.frag"))
}
