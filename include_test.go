package glslang

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeBridgeOwnership(t *testing.T) {
	b := newIncludeBridge(func(kind IncludeType, header, includer string, depth int) (IncludeResult, bool) {
		assert.Equal(t, IncludeLocal, kind)
		assert.Equal(t, "main.frag", includer)
		assert.Equal(t, 1, depth)
		return IncludeResult{Name: "lib/" + header, Data: "#define ANSWER 42\n"}, true
	})
	assert.Same(t, b, bridgeFromContext(b.ctx()))

	r := b.include(IncludeLocal, "common.glsl", "main.frag", 1)
	require.NotNil(t, r)
	assert.Equal(t, int64(1), b.outstanding.Load())

	res, ok := readIncludeResult(r)
	require.True(t, ok)
	assert.Equal(t, "lib/common.glsl", res.Name)
	assert.Equal(t, "#define ANSWER 42\n", res.Data)

	freeIncludeResult(b.ctx(), r)
	assert.Equal(t, int64(0), b.outstanding.Load())

	b.release()
	assert.True(t, b.released.Load())
	assert.Nil(t, b.slot)
	b.release() // second release is a no-op
}

func TestIncludeBridgeUnresolved(t *testing.T) {
	b := newIncludeBridge(func(IncludeType, string, string, int) (IncludeResult, bool) {
		return IncludeResult{}, false
	})
	defer b.release()

	assert.Nil(t, b.include(IncludeSystem, "missing.glsl", "", 1))
	assert.Equal(t, int64(1), b.calls.Load())
	assert.Equal(t, int64(0), b.outstanding.Load())
}

func TestIncludeBridgeContainsPanics(t *testing.T) {
	b := newIncludeBridge(func(IncludeType, string, string, int) (IncludeResult, bool) {
		panic("resolver exploded")
	})
	defer b.release()

	assert.NotPanics(t, func() {
		res, ok := b.resolve(IncludeLocal, "a.glsl", "main", 1)
		assert.False(t, ok)
		assert.Equal(t, IncludeResult{}, res)
	})
	assert.Nil(t, b.include(IncludeLocal, "a.glsl", "main", 1))
	assert.Equal(t, int64(0), b.outstanding.Load())
}

func TestIncludeBridgeRejectsInvalidUTF8(t *testing.T) {
	called := false
	b := newIncludeBridge(func(IncludeType, string, string, int) (IncludeResult, bool) {
		called = true
		return IncludeResult{Name: "x", Data: "x"}, true
	})
	defer b.release()

	assert.Nil(t, b.include(IncludeLocal, "bad\xff.glsl", "main", 1))
	assert.False(t, called)
}

func TestFreeIncludeResultNil(t *testing.T) {
	assert.NotPanics(t, func() { freeIncludeResult(nil, nil) })
}

func TestFSIncluder(t *testing.T) {
	shaders := fstest.MapFS{
		"lib/common.glsl":      {Data: []byte("common")},
		"lib/detail/math.glsl": {Data: []byte("math")},
		"lib/detail/pi.glsl":   {Data: []byte("pi")},
	}
	system := fstest.MapFS{
		"noise.glsl": {Data: []byte("noise")},
	}
	include := FSIncluder(shaders, system)

	tests := []struct {
		name     string
		kind     IncludeType
		header   string
		includer string
		wantName string
		wantData string
		ok       bool
	}{
		{"local from root", IncludeLocal, "lib/common.glsl", "", "lib/common.glsl", "common", true},
		{"local relative", IncludeLocal, "pi.glsl", "lib/detail/math.glsl", "lib/detail/pi.glsl", "pi", true},
		{"local parent", IncludeLocal, "../common.glsl", "lib/detail/math.glsl", "lib/common.glsl", "common", true},
		{"local falls back to roots", IncludeLocal, "noise.glsl", "lib/common.glsl", "noise.glsl", "noise", true},
		{"system ignores includer", IncludeSystem, "pi.glsl", "lib/detail/math.glsl", "", "", false},
		{"system from second root", IncludeSystem, "noise.glsl", "", "noise.glsl", "noise", true},
		{"escape rejected", IncludeSystem, "../../etc/passwd", "", "", "", false},
		{"missing", IncludeLocal, "nope.glsl", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := include(tt.kind, tt.header, tt.includer, 1)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantName, res.Name)
			assert.Equal(t, tt.wantData, res.Data)
		})
	}
}
