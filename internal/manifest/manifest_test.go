package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlManifest = `
target: vulkan1.2
spirv: "1.5"
include: [include]
out_dir: build
shaders:
  - source: shaders/mesh.vert
  - source: shaders/lit.frag.glsl
    output: lit.spv
    size_optimized: true
  - source: shaders/blur.glsl
    stage: comp
    target: opengl4.5
    spirv: "1.0"
`

const tomlManifest = `
target = "vulkan1.2"
spirv = "1.5"
include = ["include"]
out_dir = "build"

[[shaders]]
source = "shaders/mesh.vert"

[[shaders]]
source = "shaders/lit.frag.glsl"
output = "lit.spv"
size_optimized = true

[[shaders]]
source = "shaders/blur.glsl"
stage = "comp"
target = "opengl4.5"
spirv = "1.0"
`

func TestParseFormatsAgree(t *testing.T) {
	fromYAML, err := Parse([]byte(yamlManifest), FormatYAML)
	require.NoError(t, err)
	fromTOML, err := Parse([]byte(tomlManifest), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	require.Len(t, fromYAML.Shaders, 3)
	assert.True(t, fromYAML.Shaders[1].SizeOptimized)
	assert.Equal(t, "comp", fromYAML.Shaders[2].Stage)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no shaders", "target: vulkan1.0\n", "shaders"},
		{"missing source", "shaders:\n  - stage: frag\n", "source"},
		{"bad stage", "shaders:\n  - source: a.glsl\n    stage: pixelshader\n", "stage"},
		{"bad target", "target: vulkan2.0\nshaders:\n  - source: a.frag\n", "target"},
		{"bad spirv", "spirv: \"2.0\"\nshaders:\n  - source: a.frag\n", "spirv"},
		{"negative jobs", "jobs: -1\nshaders:\n  - source: a.frag\n", "jobs"},
		{"unknown key", "shaderz: []\n", "shaderz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatYAML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("shaders.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("glslang.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = FormatFromPath("shaders.json")
	assert.Error(t, err)
}

func TestLoadResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shaders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "shaders/mesh.vert"), m.Resolve(m.Shaders[0].Source))
	assert.Equal(t, []string{filepath.Join(dir, "include")}, m.IncludeDirs())
	assert.Equal(t, filepath.Join(dir, "build", "mesh.vert.spv"), m.OutputPath(m.Shaders[0]))
	assert.Equal(t, filepath.Join(dir, "build", "lit.spv"), m.OutputPath(m.Shaders[1]))
	assert.Equal(t, filepath.Join(dir, "build", "blur.spv"), m.OutputPath(m.Shaders[2]))

	abs := filepath.Join(dir, "abs.spv")
	assert.Equal(t, abs, m.OutputPath(Shader{Source: "x.frag", Output: abs}))
}

func TestOutputNextToSource(t *testing.T) {
	m := &Manifest{dir: "/proj"}
	assert.Equal(t, filepath.Join("/proj", "shaders", "a.frag.spv"), m.OutputPath(Shader{Source: "shaders/a.frag"}))
}

func TestTargetFor(t *testing.T) {
	m, err := Parse([]byte(yamlManifest), FormatYAML)
	require.NoError(t, err)

	target, spirv := m.TargetFor(m.Shaders[0])
	assert.Equal(t, "vulkan1.2", target)
	assert.Equal(t, "1.5", spirv)

	target, spirv = m.TargetFor(m.Shaders[2])
	assert.Equal(t, "opengl4.5", target)
	assert.Equal(t, "1.0", spirv)
}
