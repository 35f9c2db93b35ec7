package spirv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildModule assembles a minimal vertex module by hand.
func buildModule(t *testing.T) []uint32 {
	t.Helper()

	mod := &Module{
		Header: Header{Magic: MagicNumber, Version: Version1_3, Generator: 8 << 16, Bound: 5},
	}
	add := func(op OpCode, operands ...uint32) {
		mod.Instructions = append(mod.Instructions, Instruction{Opcode: op, Operands: operands})
	}

	add(OpCapability, 1) // Shader
	add(OpMemoryModel, 0, 1)
	add(OpEntryPoint, append(append([]uint32{uint32(ExecutionModelVertex), 4}, EncodeString("main")...), 3)...)
	add(OpName, append([]uint32{4}, EncodeString("main")...)...)
	add(OpTypeVoid, 1)
	add(OpTypeFunction, 2, 1)
	add(OpFunction, 1, 4, 0, 2)
	add(OpLabel, 6)
	add(OpReturn)
	add(OpFunctionEnd)

	return mod.Encode()
}

func TestVersionWord(t *testing.T) {
	tests := []struct {
		version Version
		word    uint32
	}{
		{Version1_0, 0x00010000},
		{Version1_3, 0x00010300},
		{Version1_6, 0x00010600},
	}
	for _, tt := range tests {
		t.Run(tt.version.String(), func(t *testing.T) {
			assert.Equal(t, tt.word, tt.version.Word())
			assert.Equal(t, tt.version, VersionFromWord(tt.word))
		})
	}
}

func TestParseHeader(t *testing.T) {
	words := buildModule(t)

	h, err := ParseHeader(words)
	require.NoError(t, err)
	assert.Equal(t, uint32(MagicNumber), h.Magic)
	assert.Equal(t, Version1_3, h.Version)
	assert.Equal(t, uint16(8), h.GeneratorTool())
	assert.Equal(t, uint32(5), h.Bound)

	_, err = ParseHeader(words[:3])
	assert.ErrorIs(t, err, ErrTooShort)

	bad := append([]uint32{0xDEADBEEF}, words[1:]...)
	_, err = ParseHeader(bad)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestDecodeEntryPoints(t *testing.T) {
	mod, err := Decode(buildModule(t))
	require.NoError(t, err)

	eps := mod.EntryPoints()
	require.Len(t, eps, 1)
	assert.Equal(t, ExecutionModelVertex, eps[0].Model)
	assert.Equal(t, "main", eps[0].Name)
	assert.Equal(t, uint32(4), eps[0].Function)
	assert.Equal(t, []uint32{3}, eps[0].Interface)

	assert.Equal(t, []string{"Shader"}, mod.Capabilities())
	assert.Equal(t, "main", mod.Names()[4])
}

func TestDecodeRejectsTruncatedInstruction(t *testing.T) {
	words := buildModule(t)
	// Claim the last instruction is longer than the module.
	words[len(words)-1] = (9 << 16) | uint32(OpFunctionEnd)

	_, err := Decode(words)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid word count")
}

func TestEncodeRoundTrip(t *testing.T) {
	words := buildModule(t)
	mod, err := Decode(words)
	require.NoError(t, err)
	assert.Equal(t, words, mod.Encode())
}

func TestStrings(t *testing.T) {
	tests := []struct {
		in    string
		words int
	}{
		{"", 1},
		{"abc", 1},
		{"main", 2},
		{"GLSL.std.450", 4},
	}
	for _, tt := range tests {
		encoded := EncodeString(tt.in)
		assert.Len(t, encoded, tt.words, "EncodeString(%q)", tt.in)

		decoded, n := DecodeString(append(encoded, 0xFFFFFFFF))
		assert.Equal(t, tt.in, decoded)
		assert.Equal(t, tt.words, n)
	}
}

func TestBytesToWords(t *testing.T) {
	words := buildModule(t)
	data := WordsToBytes(words)

	got, err := BytesToWords(data)
	require.NoError(t, err)
	assert.Equal(t, words, got)

	// Byte-swapped modules are detected from the magic number.
	swapped := make([]byte, len(data))
	for i := 0; i < len(data); i += 4 {
		swapped[i], swapped[i+1], swapped[i+2], swapped[i+3] = data[i+3], data[i+2], data[i+1], data[i]
	}
	got, err = BytesToWords(swapped)
	require.NoError(t, err)
	assert.Equal(t, words, got)

	_, err = BytesToWords(data[:6])
	assert.Error(t, err)
}

func TestDisassemble(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Disassemble(&buf, buildModule(t)))

	out := buf.String()
	for _, want := range []string{
		"; Version: 1.3",
		"OpCapability Shader",
		"OpMemoryModel Logical GLSL450",
		`OpEntryPoint Vertex %4 "main" %3`,
		`OpName %4 "main"`,
		"%1 = OpTypeVoid",
		"%2 = OpTypeFunction %1",
		"%4 = OpFunction %1 None %2",
		"OpReturn",
		"OpFunctionEnd",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 6+10, strings.Count(out, "\n"))
}

func TestDisassembleShortOperands(t *testing.T) {
	mod := &Module{Header: Header{Version: Version1_0}}
	// OpEntryPoint with too few operands is printed generically, not indexed.
	mod.Instructions = []Instruction{{Opcode: OpEntryPoint, Operands: []uint32{0}}}

	var buf bytes.Buffer
	require.NoError(t, Disassemble(&buf, mod.Encode()))
	assert.Contains(t, buf.String(), "OpEntryPoint %0")
}
