package glslang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   VersionProfile
		ok     bool
	}{
		{"core", "#version 450 core\nvoid main() {}", VersionProfile{450, ProfileCore}, true},
		{"bare", "#version 450\n", VersionProfile{450, ProfileNone}, true},
		{"es", "#version 310 es\n", VersionProfile{310, ProfileES}, true},
		{"compatibility", "#version 330 compatibility\n", VersionProfile{330, ProfileCompatibility}, true},
		{"leading blank lines", "\n\n   \n#version 460\n", VersionProfile{460, ProfileNone}, true},
		{"unknown profile", "#version 450 foo\n", VersionProfile{}, false},
		{"no directive", "void main() {}\n", VersionProfile{}, false},
		{"directive not first", "// header\n#version 450\n", VersionProfile{}, false},
		{"not a number", "#version abc\n", VersionProfile{}, false},
		{"empty", "", VersionProfile{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MustShaderSource(tt.source).ParseProfile()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewShaderSourceRejectsNUL(t *testing.T) {
	_, err := NewShaderSource("#version 450\x00\n")
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrInvalidSourceText))
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   resolvedTarget
		kind   ErrorKind
		fails  bool
	}{
		{
			name:   "vulkan 1.2 spirv 1.5",
			target: TargetVulkan{Version: Vulkan1_2, SPIRV: Spirv1_5},
			want:   resolvedTarget{client: clientVulkan, clientVersion: clientVulkan1_2, spirv: true, spirvVersion: Spirv1_5},
		},
		{
			name:   "opengl without spirv",
			target: TargetOpenGL{Version: OpenGL4_5},
			want:   resolvedTarget{client: clientOpenGL, clientVersion: clientOpenGL450, spirvVersion: Spirv1_0},
		},
		{
			name:   "opengl spirv",
			target: TargetOpenGL{Version: OpenGL4_5, SPIRV: Spirv1_0},
			want:   resolvedTarget{client: clientOpenGL, clientVersion: clientOpenGL450, spirv: true, spirvVersion: Spirv1_0},
		},
		{
			name:   "none",
			target: TargetNone{},
			want:   resolvedTarget{client: clientNone, clientVersion: clientOpenGL450, spirvVersion: Spirv1_0},
		},
		{name: "nil", target: nil, kind: ErrInvalidTarget, fails: true},
		{name: "vulkan without spirv", target: TargetVulkan{Version: Vulkan1_0}, kind: ErrInvalidTarget, fails: true},
		{name: "unknown vulkan", target: TargetVulkan{SPIRV: Spirv1_0}, kind: ErrInvalidTarget, fails: true},
		{name: "unknown opengl", target: TargetOpenGL{Version: 9}, kind: ErrInvalidTarget, fails: true},
		{name: "unknown spirv", target: TargetNone{SPIRV: 42}, kind: ErrInvalidTarget, fails: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveTarget(tt.target)
			if tt.fails {
				require.Error(t, err)
				assert.True(t, IsKind(err, tt.kind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyGLSLProfile(t *testing.T) {
	vulkan := TargetVulkan{Version: Vulkan1_0, SPIRV: Spirv1_0}
	openglSPIRV := TargetOpenGL{Version: OpenGL4_5, SPIRV: Spirv1_0}
	opengl := TargetOpenGL{Version: OpenGL4_5}

	tests := []struct {
		name    string
		target  Target
		version int
		profile Profile
		kind    ErrorKind
		ok      bool
	}{
		{"es 100", vulkan, 100, ProfileES, ErrVersionUnsupported, false},
		{"es 300", vulkan, 300, ProfileES, 0, true},
		{"es 320", opengl, 320, ProfileES, 0, true},
		{"unknown version", opengl, 200, ProfileNone, ErrVersionUnsupported, false},
		{"vulkan 130", vulkan, 130, ProfileNone, ErrInvalidProfile, false},
		{"vulkan 140", vulkan, 140, ProfileNone, 0, true},
		{"vulkan compatibility", vulkan, 450, ProfileCompatibility, ErrInvalidProfile, false},
		{"opengl spirv 320", openglSPIRV, 320, ProfileES, ErrInvalidProfile, false},
		{"opengl spirv 330", openglSPIRV, 330, ProfileCore, 0, true},
		{"opengl spirv 150", openglSPIRV, 150, ProfileCore, ErrInvalidProfile, false},
		{"opengl spirv compatibility", openglSPIRV, 450, ProfileCompatibility, ErrInvalidProfile, false},
		{"opengl compatibility", opengl, 110, ProfileCompatibility, 0, true},
		{"none spirv compatibility", TargetNone{SPIRV: Spirv1_3}, 450, ProfileCompatibility, ErrInvalidProfile, false},
		{"none compatibility", TargetNone{}, 450, ProfileCompatibility, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifyGLSLProfile(tt.target, &VersionProfile{tt.version, tt.profile})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, tt.kind, gerr.Kind)
			assert.Equal(t, tt.version, gerr.Version)
		})
	}

	assert.NoError(t, verifyGLSLProfile(vulkan, nil))
}

func TestVersionUnsupportedCarriesES(t *testing.T) {
	err := verifyGLSLProfile(TargetNone{}, &VersionProfile{100, ProfileES})
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, ErrVersionUnsupported, gerr.Kind)
	assert.Equal(t, 100, gerr.Version)
	assert.Equal(t, ProfileES, gerr.Profile)
}

func TestNewShaderInputValidation(t *testing.T) {
	vulkan130 := MustShaderSource("#version 130\nvoid main() {}\n")

	_, err := NewShaderInput(vulkan130, StageVertex, DefaultOptions(), nil)
	assert.True(t, IsKind(err, ErrInvalidProfile), "got %v", err)

	// A forced profile wins over the directive.
	opts := DefaultOptions()
	opts.VersionProfile = &VersionProfile{Version: 450, Profile: ProfileCore}
	in, err := NewShaderInput(vulkan130, StageVertex, opts, nil)
	require.NoError(t, err)
	assert.True(t, in.SPIRV())

	// HLSL skips GLSL profile checks entirely.
	opts = DefaultOptions()
	opts.Language = SourceHLSL
	_, err = NewShaderInput(vulkan130, StageFragment, opts, nil)
	assert.NoError(t, err)

	_, err = NewShaderInput(vulkan130, Stage(200), DefaultOptions(), nil)
	assert.True(t, IsKind(err, ErrInvalidStage))

	_, err = NewShaderInput(nil, StageVertex, DefaultOptions(), nil)
	assert.True(t, IsKind(err, ErrInvalidSourceText))

	opts = DefaultOptions()
	opts.Target = nil
	_, err = NewShaderInput(MustShaderSource("#version 450\n"), StageVertex, opts, nil)
	assert.True(t, IsKind(err, ErrInvalidTarget))
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name, spirv string
		want        Target
	}{
		{"", "", TargetVulkan{Version: Vulkan1_0, SPIRV: Spirv1_0}},
		{"vulkan1.2", "", TargetVulkan{Version: Vulkan1_2, SPIRV: Spirv1_5}},
		{"Vulkan1.3", "1.4", TargetVulkan{Version: Vulkan1_3, SPIRV: Spirv1_4}},
		{"opengl4.5", "", TargetOpenGL{Version: OpenGL4_5}},
		{"opengl", "spv1.0", TargetOpenGL{Version: OpenGL4_5, SPIRV: Spirv1_0}},
		{"none", "1.6", TargetNone{SPIRV: Spirv1_6}},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.name, tt.spirv)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	for _, bad := range [][2]string{{"metal", ""}, {"vulkan2.0", ""}, {"vulkan1.1", "2.0"}} {
		_, err := ParseTarget(bad[0], bad[1])
		assert.True(t, IsKind(err, ErrInvalidTarget), bad)
	}
}

func TestErrorIs(t *testing.T) {
	err := &Error{Kind: ErrLink, Log: Log{Info: "ERROR: missing main"}}
	assert.ErrorIs(t, err, &Error{Kind: ErrLink})
	assert.NotErrorIs(t, err, &Error{Kind: ErrParse})
	assert.Contains(t, err.Error(), "missing main")
	assert.Contains(t, err.Error(), "LinkError")
}
