package spirv

import (
	"fmt"
	"strings"
)

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// Opcodes the reader interprets structurally.
const (
	OpNop           OpCode = 0
	OpSource        OpCode = 3
	OpName          OpCode = 5
	OpMemberName    OpCode = 6
	OpString        OpCode = 7
	OpExtension     OpCode = 10
	OpExtInstImport OpCode = 11
	OpMemoryModel   OpCode = 14
	OpEntryPoint    OpCode = 15
	OpExecutionMode OpCode = 16
	OpCapability    OpCode = 17
	OpTypeVoid      OpCode = 19
	OpTypeFunction  OpCode = 33
	OpFunction      OpCode = 54
	OpFunctionEnd   OpCode = 56
	OpDecorate      OpCode = 71
	OpLabel         OpCode = 248
	OpReturn        OpCode = 253
)

// String returns the grammar name of the opcode, or OpN when unknown.
func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

// ExecutionModel identifies the pipeline stage of an OpEntryPoint.
type ExecutionModel uint32

// Execution models glslang can emit.
const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
	ExecutionModelTaskNV                 ExecutionModel = 5267
	ExecutionModelMeshNV                 ExecutionModel = 5268
	ExecutionModelRayGeneration          ExecutionModel = 5313
	ExecutionModelIntersection           ExecutionModel = 5314
	ExecutionModelAnyHit                 ExecutionModel = 5315
	ExecutionModelClosestHit             ExecutionModel = 5316
	ExecutionModelMiss                   ExecutionModel = 5317
	ExecutionModelCallable               ExecutionModel = 5318
	ExecutionModelTaskEXT                ExecutionModel = 5364
	ExecutionModelMeshEXT                ExecutionModel = 5365
)

var executionModelNames = map[ExecutionModel]string{
	ExecutionModelVertex:                 "Vertex",
	ExecutionModelTessellationControl:    "TessellationControl",
	ExecutionModelTessellationEvaluation: "TessellationEvaluation",
	ExecutionModelGeometry:               "Geometry",
	ExecutionModelFragment:               "Fragment",
	ExecutionModelGLCompute:              "GLCompute",
	ExecutionModelKernel:                 "Kernel",
	ExecutionModelTaskNV:                 "TaskNV",
	ExecutionModelMeshNV:                 "MeshNV",
	ExecutionModelRayGeneration:          "RayGenerationKHR",
	ExecutionModelIntersection:           "IntersectionKHR",
	ExecutionModelAnyHit:                 "AnyHitKHR",
	ExecutionModelClosestHit:             "ClosestHitKHR",
	ExecutionModelMiss:                   "MissKHR",
	ExecutionModelCallable:               "CallableKHR",
	ExecutionModelTaskEXT:                "TaskEXT",
	ExecutionModelMeshEXT:                "MeshEXT",
}

func (m ExecutionModel) String() string {
	if name, ok := executionModelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ExecutionModel(%d)", uint32(m))
}

// Instruction is one decoded instruction. Operands excludes the leading
// word-count/opcode word.
type Instruction struct {
	Opcode   OpCode
	Operands []uint32

	// Offset is the word index of the instruction within the module.
	Offset int
}

// Encode re-encodes the instruction.
func (i Instruction) Encode() []uint32 {
	wordCount := uint32(len(i.Operands) + 1)
	result := make([]uint32, 0, wordCount)
	result = append(result, (wordCount<<16)|uint32(i.Opcode))
	result = append(result, i.Operands...)
	return result
}

// Module is a decoded SPIR-V module.
type Module struct {
	Header       Header
	Instructions []Instruction
}

// Decode splits words into the header and its instruction stream. It only
// checks framing: the magic number and that every instruction's word count
// fits in the module.
func Decode(words []uint32) (*Module, error) {
	header, err := ParseHeader(words)
	if err != nil {
		return nil, err
	}

	mod := &Module{Header: header}
	for offset := HeaderWords; offset < len(words); {
		word := words[offset]
		opcode := OpCode(word & 0xFFFF)
		wordCount := int(word >> 16)
		if wordCount == 0 || offset+wordCount > len(words) {
			return nil, fmt.Errorf("spirv: invalid word count %d for %s at word %d", wordCount, opcode, offset)
		}
		mod.Instructions = append(mod.Instructions, Instruction{
			Opcode:   opcode,
			Operands: words[offset+1 : offset+wordCount],
			Offset:   offset,
		})
		offset += wordCount
	}
	return mod, nil
}

// Encode serializes the module back to words. Bound and the other header
// fields are written as stored.
func (m *Module) Encode() []uint32 {
	words := []uint32{
		MagicNumber,
		m.Header.Version.Word(),
		m.Header.Generator,
		m.Header.Bound,
		m.Header.Schema,
	}
	for _, inst := range m.Instructions {
		words = append(words, inst.Encode()...)
	}
	return words
}

// EntryPoint describes one OpEntryPoint.
type EntryPoint struct {
	Model     ExecutionModel
	Function  uint32
	Name      string
	Interface []uint32
}

// EntryPoints returns every OpEntryPoint in declaration order.
func (m *Module) EntryPoints() []EntryPoint {
	var eps []EntryPoint
	for _, inst := range m.Instructions {
		if inst.Opcode != OpEntryPoint || len(inst.Operands) < 3 {
			continue
		}
		name, n := DecodeString(inst.Operands[2:])
		eps = append(eps, EntryPoint{
			Model:     ExecutionModel(inst.Operands[0]),
			Function:  inst.Operands[1],
			Name:      name,
			Interface: inst.Operands[2+n:],
		})
	}
	return eps
}

// Capabilities returns the names of every declared OpCapability.
func (m *Module) Capabilities() []string {
	var caps []string
	for _, inst := range m.Instructions {
		if inst.Opcode == OpCapability && len(inst.Operands) == 1 {
			caps = append(caps, lookup(capabilityNames, inst.Operands[0]))
		}
	}
	return caps
}

// Names returns the OpName debug names keyed by target id.
func (m *Module) Names() map[uint32]string {
	names := make(map[uint32]string)
	for _, inst := range m.Instructions {
		if inst.Opcode == OpName && len(inst.Operands) >= 2 {
			names[inst.Operands[0]], _ = DecodeString(inst.Operands[1:])
		}
	}
	return names
}

// EncodeString packs s as a nul-terminated literal string padded to a word
// boundary.
func EncodeString(s string) []uint32 {
	bytes := append([]byte(s), 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}

	words := make([]uint32, 0, len(bytes)/4)
	for i := 0; i < len(bytes); i += 4 {
		words = append(words, uint32(bytes[i])|
			uint32(bytes[i+1])<<8|
			uint32(bytes[i+2])<<16|
			uint32(bytes[i+3])<<24)
	}
	return words
}

// DecodeString reads a literal string from the front of operands and
// returns it with the number of words it occupied. An unterminated string
// consumes every operand.
func DecodeString(operands []uint32) (string, int) {
	var sb strings.Builder
	for i, w := range operands {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(b)
		}
	}
	return sb.String(), len(operands)
}

func lookup(m map[uint32]string, v uint32) string {
	if s, ok := m[v]; ok {
		return s
	}
	return fmt.Sprintf("%d", v)
}
