package limits

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesReference(t *testing.T) {
	res := Default()

	tests := []struct {
		name string
		want int32
	}{
		{"max_lights", 32},
		{"max_clip_planes", 6},
		{"max_vertex_attribs", 64},
		{"min_program_texel_offset", -8},
		{"max_program_texel_offset", 7},
		{"max_compute_work_group_count_x", 65535},
		{"max_compute_work_group_size_z", 64},
		{"max_image_samples", 0},
		{"max_atomic_counter_buffer_size", 16384},
		{"max_mesh_output_primitives_nv", 512},
		{"max_mesh_output_primitives_ext", 256},
		{"max_task_work_group_size_x_ext", 128},
		{"max_dual_source_draw_buffers_ext", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := res.Get(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, name := range FlagNames() {
		v, ok := res.Flag(name)
		require.True(t, ok, name)
		assert.True(t, v, name)
	}
}

func TestFieldTableIsComplete(t *testing.T) {
	assert.Len(t, Names(), 102)
	assert.Len(t, FlagNames(), 9)

	seen := make(map[string]bool)
	for _, name := range Names() {
		assert.False(t, seen[name], "duplicate field %s", name)
		seen[name] = true
	}
}

func TestSetTouchesOneField(t *testing.T) {
	res := Default()
	res.MaxLights = 64
	assert.Equal(t, int32(64), res.MaxLights)

	def := Default()
	for _, name := range Names() {
		if name == "max_lights" {
			continue
		}
		got, _ := res.Get(name)
		want, _ := def.Get(name)
		assert.Equal(t, want, got, name)
	}
	assert.Equal(t, def.Limits, res.Limits)
}

func TestSetByName(t *testing.T) {
	res := Default()
	require.NoError(t, res.Set("max_lights", 64))
	assert.Equal(t, int32(64), res.MaxLights)

	require.NoError(t, res.Set("max_clip_distances", 16))
	assert.Equal(t, int32(16), res.MaxClipDistances)

	err := res.Set("max_unicorns", 1)
	assert.ErrorContains(t, err, "max_unicorns")

	require.NoError(t, res.SetFlag("while_loops", false))
	assert.False(t, res.Limits.WhileLoops)
	assert.True(t, res.Limits.DoWhileLoops)
	assert.Error(t, res.SetFlag("goto", true))
}

func TestLoadOverlaysDefaults(t *testing.T) {
	doc := `
max_lights: 64
max_draw_buffers: 8
limits:
  general_sampler_indexing: false
`
	res, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, int32(64), res.MaxLights)
	assert.Equal(t, int32(8), res.MaxDrawBuffers)
	assert.Equal(t, int32(6), res.MaxClipPlanes)
	assert.False(t, res.Limits.GeneralSamplerIndexing)
	assert.True(t, res.Limits.WhileLoops)
}

func TestLoadEmptyDocument(t *testing.T) {
	res, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), res)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("max_unicorns: 3\n"))
	assert.Error(t, err)
}

func TestMarshalLoadRoundTrip(t *testing.T) {
	res := Default()
	res.MaxViewports = 4
	res.Limits.DoWhileLoops = false

	data, err := Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_viewports: 4")

	back, err := Load(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, res, back)
}
