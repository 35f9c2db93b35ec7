// Package snapshot_test holds golden snapshot tests for the glslang facade.
//
// Each shader in testdata/in/ is compiled for Vulkan 1.0 with headers from
// testdata/in/include/. The result is checked structurally (magic, version,
// entry point) and its disassembly is compared with
// testdata/golden/<name>.spvasm.
//
// Disassembly depends on the installed glslang release, so golden files are
// not committed. Generate them for the local engine with:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/glslang"
	"github.com/gogpu/glslang/spirv"
)

// shaderFile is an input shader loaded from disk.
type shaderFile struct {
	name   string // file name, e.g. "lit.frag"
	stage  glslang.Stage
	source string
}

func TestSnapshots(t *testing.T) {
	if glslang.Acquire() == nil {
		t.Skip("glslang engine unavailable")
	}

	shaders := loadInputShaders(t, filepath.Join("testdata", "in"))
	require.NotEmpty(t, shaders, "no input shaders found in testdata/in/")

	includes := glslang.FSIncluder(os.DirFS(filepath.Join("testdata", "in")))

	for _, shader := range shaders {
		t.Run(shader.name, func(t *testing.T) {
			words := compile(t, shader, includes)
			checkModule(t, shader, words)

			var buf bytes.Buffer
			require.NoError(t, spirv.Disassemble(&buf, words))
			compareGolden(t, filepath.Join("testdata", "golden", shader.name+".spvasm"), buf.String())
		})
	}
}

// loadInputShaders reads every shader with a stage extension from dir.
func loadInputShaders(t *testing.T, dir string) []shaderFile {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "read input directory")

	var shaders []shaderFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stage, err := glslang.StageFromPath(entry.Name())
		if err != nil {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err, "read shader %q", entry.Name())
		shaders = append(shaders, shaderFile{name: entry.Name(), stage: stage, source: string(data)})
	}

	slices.SortFunc(shaders, func(a, b shaderFile) int {
		return strings.Compare(a.name, b.name)
	})
	return shaders
}

func compile(t *testing.T, shader shaderFile, includes glslang.IncludeCallback) []uint32 {
	t.Helper()

	source, err := glslang.NewShaderSource(shader.source)
	require.NoError(t, err)

	words, err := glslang.CompileWithOptions(source, shader.stage, glslang.DefaultOptions(), includes)
	require.NoError(t, err, "compile %s", shader.name)
	return words
}

func checkModule(t *testing.T, shader shaderFile, words []uint32) {
	t.Helper()

	mod, err := spirv.Decode(words)
	require.NoError(t, err)
	require.Equal(t, uint32(spirv.MagicNumber), mod.Header.Magic)
	require.Equal(t, spirv.Version1_0, mod.Header.Version)

	eps := mod.EntryPoints()
	require.Len(t, eps, 1)
	require.Equal(t, shader.stage.ExecutionModel(), eps[0].Model)
	require.Equal(t, "main", eps[0].Name)
	t.Logf("%s: %d words, %d instructions", shader.name, len(words), len(mod.Instructions))
}

// compareGolden compares actual output with the golden file at path.
// If UPDATE_GOLDEN is set, writes actual output as the new golden file.
func compareGolden(t *testing.T, path, actual string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(actual), 0o644))
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Skipf("golden file missing: %s (run with UPDATE_GOLDEN=1 to create)", path)
	}
	require.NoError(t, err)

	// Git may convert \n to \r\n on Windows checkout.
	expectedStr := strings.ReplaceAll(string(expected), "\r\n", "\n")
	actualStr := strings.ReplaceAll(actual, "\r\n", "\n")

	if expectedStr != actualStr {
		t.Errorf("output differs from golden %s:\n%s", path, diffStrings(expectedStr, actualStr))
	}
}

// diffStrings reports the first differing line with some context.
func diffStrings(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")
	maxLines := max(len(expectedLines), len(actualLines))

	at := func(lines []string, i int) string {
		if i < len(lines) {
			return lines[i]
		}
		return ""
	}

	firstDiff := -1
	for i := range maxLines {
		if at(expectedLines, i) != at(actualLines, i) {
			firstDiff = i
			break
		}
	}
	if firstDiff < 0 {
		return "(no difference found)"
	}

	const contextLines = 3
	var sb strings.Builder
	fmt.Fprintf(&sb, "first difference at line %d (expected %d lines, got %d)\n\n",
		firstDiff+1, len(expectedLines), len(actualLines))

	for i := max(0, firstDiff-contextLines); i < min(maxLines, firstDiff+contextLines+1); i++ {
		e, a := at(expectedLines, i), at(actualLines, i)
		if e == a {
			fmt.Fprintf(&sb, "  %4d %s\n", i+1, truncate(e, 120))
			continue
		}
		fmt.Fprintf(&sb, "! %4d expected: %s\n", i+1, truncate(e, 120))
		fmt.Fprintf(&sb, "! %4d actual:   %s\n", i+1, truncate(a, 120))
	}
	return sb.String()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
