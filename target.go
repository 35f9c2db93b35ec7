package glslang

import (
	"fmt"
	"strings"
)

// Target is the environment a shader is validated and compiled for. It is
// one of TargetNone, TargetVulkan or TargetOpenGL.
type Target interface {
	fmt.Stringer
	isTarget()
}

// TargetNone validates against no client API. SPIRV may be SpirvNone, in
// which case the shader can be parsed but not compiled.
type TargetNone struct {
	SPIRV SpirvVersion
}

// TargetVulkan validates against Vulkan semantics. Vulkan requires GLSL 140
// or later and a SPIR-V version.
type TargetVulkan struct {
	Version VulkanVersion
	SPIRV   SpirvVersion
}

// TargetOpenGL validates against OpenGL semantics. SPIR-V output is
// optional and requires GLSL 330 or later.
type TargetOpenGL struct {
	Version OpenGLVersion
	SPIRV   SpirvVersion
}

func (TargetNone) isTarget()   {}
func (TargetVulkan) isTarget() {}
func (TargetOpenGL) isTarget() {}

func (t TargetNone) String() string {
	return fmt.Sprintf("none/%s", t.SPIRV)
}

func (t TargetVulkan) String() string {
	return fmt.Sprintf("%s/%s", t.Version, t.SPIRV)
}

func (t TargetOpenGL) String() string {
	return fmt.Sprintf("%s/%s", t.Version, t.SPIRV)
}

// ParseTarget builds a Target from a client name ("vulkan1.2", "opengl4.5"
// or "none") and an optional SPIR-V version ("1.5"). An empty client is
// Vulkan 1.0. Vulkan without an explicit SPIR-V version gets the highest
// version its client guarantees; OpenGL and none get no SPIR-V.
func ParseTarget(name, spirvVersion string) (Target, error) {
	var spv SpirvVersion
	if spirvVersion != "" {
		v, err := ParseSpirvVersion(spirvVersion)
		if err != nil {
			return nil, err
		}
		spv = v
	}

	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "none":
		return TargetNone{SPIRV: spv}, nil
	case name == "opengl4.5" || name == "opengl":
		return TargetOpenGL{Version: OpenGL4_5, SPIRV: spv}, nil
	case name == "" || strings.HasPrefix(name, "vulkan"):
		version := Vulkan1_0
		if name != "" && name != "vulkan" {
			v, err := ParseVulkanVersion(name)
			if err != nil {
				return nil, err
			}
			version = v
		}
		if spv == SpirvNone {
			spv = vulkanSpirv[version]
		}
		return TargetVulkan{Version: version, SPIRV: spv}, nil
	default:
		return nil, &Error{Kind: ErrInvalidTarget, Message: fmt.Sprintf("unknown target %q", name)}
	}
}

var vulkanSpirv = map[VulkanVersion]SpirvVersion{
	Vulkan1_0: Spirv1_0,
	Vulkan1_1: Spirv1_3,
	Vulkan1_2: Spirv1_5,
	Vulkan1_3: Spirv1_6,
}

// client is the engine client API.
type client uint8

const (
	clientNone client = iota
	clientVulkan
	clientOpenGL
)

// clientVersion is the engine target client version.
type clientVersion uint8

const (
	clientVulkan1_0 clientVersion = iota
	clientVulkan1_1
	clientVulkan1_2
	clientVulkan1_3
	clientOpenGL450
)

// resolvedTarget is a Target translated to the engine's input fields.
type resolvedTarget struct {
	client        client
	clientVersion clientVersion
	spirv         bool
	spirvVersion  SpirvVersion
}

// resolveTarget maps t to engine input fields or fails with ErrInvalidTarget.
func resolveTarget(t Target) (resolvedTarget, error) {
	invalid := func(format string, args ...any) (resolvedTarget, error) {
		return resolvedTarget{}, &Error{Kind: ErrInvalidTarget, Target: t, Message: fmt.Sprintf(format, args...)}
	}

	switch t := t.(type) {
	case TargetNone:
		r := resolvedTarget{client: clientNone, clientVersion: clientOpenGL450, spirvVersion: Spirv1_0}
		if t.SPIRV != SpirvNone {
			if !t.SPIRV.valid() {
				return invalid("unknown SPIR-V version")
			}
			r.spirv, r.spirvVersion = true, t.SPIRV
		}
		return r, nil

	case TargetVulkan:
		if !t.Version.valid() {
			return invalid("unknown Vulkan version")
		}
		if t.SPIRV == SpirvNone {
			return invalid("Vulkan requires a SPIR-V version")
		}
		if !t.SPIRV.valid() {
			return invalid("unknown SPIR-V version")
		}
		return resolvedTarget{
			client:        clientVulkan,
			clientVersion: clientVulkan1_0 + clientVersion(t.Version-Vulkan1_0),
			spirv:         true,
			spirvVersion:  t.SPIRV,
		}, nil

	case TargetOpenGL:
		if t.Version != OpenGL4_5 {
			return invalid("unknown OpenGL version")
		}
		r := resolvedTarget{client: clientOpenGL, clientVersion: clientOpenGL450, spirvVersion: Spirv1_0}
		if t.SPIRV != SpirvNone {
			if !t.SPIRV.valid() {
				return invalid("unknown SPIR-V version")
			}
			r.spirv, r.spirvVersion = true, t.SPIRV
		}
		return r, nil

	case nil:
		return invalid("no target")

	default:
		return invalid("unknown target type %T", t)
	}
}

var glslVersions = map[int]bool{
	100: true, 110: true, 120: true, 130: true, 140: true, 150: true,
	300: true, 310: true, 320: true, 330: true,
	400: true, 410: true, 420: true, 430: true, 440: true, 450: true, 460: true,
}

// verifyGLSLProfile checks a GLSL version/profile against t. A nil
// VersionProfile means nothing is known about the source and always passes.
func verifyGLSLProfile(t Target, vp *VersionProfile) error {
	if vp == nil {
		return nil
	}
	version, profile := vp.Version, vp.Profile

	if profile == ProfileES && version != 300 && version != 310 && version != 320 {
		return &Error{Kind: ErrVersionUnsupported, Version: version, Profile: ProfileES}
	}
	if !glslVersions[version] {
		return &Error{Kind: ErrVersionUnsupported, Version: version, Profile: profile}
	}

	invalid := func(msg string) error {
		return &Error{Kind: ErrInvalidProfile, Target: t, Version: version, Profile: profile, Message: msg}
	}

	switch t := t.(type) {
	case TargetNone:
		if t.SPIRV != SpirvNone && profile == ProfileCompatibility {
			return invalid("SPIR-V does not support the compatibility profile")
		}
	case TargetVulkan:
		if version < 140 {
			return invalid("Vulkan requires GLSL 140 or later")
		}
		if profile == ProfileCompatibility {
			return invalid("SPIR-V does not support the compatibility profile")
		}
	case TargetOpenGL:
		if t.SPIRV != SpirvNone {
			if version < 330 {
				return invalid("OpenGL SPIR-V requires GLSL 330 or later")
			}
			if profile == ProfileCompatibility {
				return invalid("SPIR-V does not support the compatibility profile")
			}
		}
	}
	return nil
}
