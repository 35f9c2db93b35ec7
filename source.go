package glslang

import (
	"fmt"
	"strconv"
	"strings"
)

// ShaderSource is validated shader text.
type ShaderSource struct {
	text string
}

// NewShaderSource wraps text for compilation. Text containing a NUL byte
// cannot be handed to the engine and is rejected with ErrInvalidSourceText.
func NewShaderSource(text string) (*ShaderSource, error) {
	if i := strings.IndexByte(text, 0); i >= 0 {
		return nil, newError(ErrInvalidSourceText, "NUL byte at offset %d", i)
	}
	return &ShaderSource{text: text}, nil
}

// MustShaderSource is like NewShaderSource but panics on invalid text.
// It is meant for shader text embedded in the program.
func MustShaderSource(text string) *ShaderSource {
	s, err := NewShaderSource(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Text returns the source text.
func (s *ShaderSource) Text() string {
	return s.text
}

// VersionProfile is a GLSL version number and profile, as written in a
// #version directive.
type VersionProfile struct {
	Version int
	Profile Profile
}

func (vp VersionProfile) String() string {
	if vp.Profile == ProfileNone {
		return strconv.Itoa(vp.Version)
	}
	return fmt.Sprintf("%d %s", vp.Version, vp.Profile)
}

// ParseProfile reads the #version directive on the first non-blank line.
// It reports false when there is no directive or its profile word is not
// one of core, compatibility or es.
func (s *ShaderSource) ParseProfile() (VersionProfile, bool) {
	line := firstLine(s.text)

	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 || fields[0] != "#version" {
		return VersionProfile{}, false
	}

	version, err := strconv.Atoi(fields[1])
	if err != nil {
		return VersionProfile{}, false
	}

	var word string
	if len(fields) == 3 {
		word = fields[2]
	}
	profile, ok := ParseProfile(word)
	if !ok {
		return VersionProfile{}, false
	}
	return VersionProfile{Version: version, Profile: profile}, true
}

func firstLine(text string) string {
	for line := range strings.Lines(text) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
