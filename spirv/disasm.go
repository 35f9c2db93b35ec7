package spirv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var addressingModelNames = map[uint32]string{
	0: "Logical", 1: "Physical32", 2: "Physical64", 5348: "PhysicalStorageBuffer64",
}

var memoryModelNames = map[uint32]string{
	0: "Simple", 1: "GLSL450", 2: "OpenCL", 3: "Vulkan",
}

// Disassemble writes a textual listing of the module in words to w, one
// instruction per line with result ids right-aligned in the style of
// spirv-dis. Unknown opcodes are printed generically.
func Disassemble(w io.Writer, words []uint32) error {
	mod, err := Decode(words)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	h := mod.Header
	fmt.Fprintf(bw, "; SPIR-V\n")
	fmt.Fprintf(bw, "; Version: %s\n", h.Version)
	fmt.Fprintf(bw, "; Generator: 0x%08X\n", h.Generator)
	fmt.Fprintf(bw, "; Bound: %d\n", h.Bound)
	fmt.Fprintf(bw, "; Schema: %d\n", h.Schema)
	fmt.Fprintln(bw)

	for _, inst := range mod.Instructions {
		fmt.Fprintln(bw, formatInstruction(inst))
	}
	return bw.Flush()
}

func id(n uint32) string {
	return fmt.Sprintf("%%%d", n)
}

// line collects the pieces of one disassembled instruction.
type line struct {
	result string
	parts  []string
}

func (l *line) add(format string, args ...any) {
	l.parts = append(l.parts, fmt.Sprintf(format, args...))
}

func (l *line) ids(ops []uint32) {
	for _, op := range ops {
		l.parts = append(l.parts, id(op))
	}
}

func (l *line) literals(ops []uint32) {
	for _, op := range ops {
		l.add("%d", op)
	}
}

func (l line) String() string {
	body := strings.Join(l.parts, " ")
	if l.result == "" {
		return "               " + body
	}
	return fmt.Sprintf("%14s = %s", l.result, body)
}

// minOperands is the fewest operands each specially formatted opcode needs.
// Shorter instructions fall back to the generic form.
var minOperands = map[OpCode]int{
	OpCapability: 1, OpExtInstImport: 1, OpMemoryModel: 2, OpEntryPoint: 3,
	OpExecutionMode: 2, OpName: 1, OpMemberName: 2, OpDecorate: 2, 72: 3,
	OpTypeVoid: 1, 20: 1, 21: 3, 22: 2, 23: 3, 24: 3, 25: 7, 26: 1, 27: 2,
	28: 3, 30: 1, 32: 3, OpTypeFunction: 2, 43: 3, 44: 2, OpFunction: 4,
	55: 2, 59: 3, 61: 3, 62: 2, 65: 3, 79: 4, 80: 2, 81: 3, 86: 4, 87: 4,
	OpLabel: 1, 249: 1, 254: 1,
}

func formatInstruction(inst Instruction) string {
	ops := inst.Operands
	name := inst.Opcode.String()
	l := line{parts: []string{name}}

	if n, ok := minOperands[inst.Opcode]; ok && len(ops) < n {
		return formatGeneric(inst)
	}

	switch inst.Opcode {
	case OpCapability:
		l.add("%s", lookup(capabilityNames, ops[0]))

	case OpExtInstImport:
		str, _ := DecodeString(ops[1:])
		l.result = id(ops[0])
		l.add("%q", str)

	case OpMemoryModel:
		l.add("%s %s", lookup(addressingModelNames, ops[0]), lookup(memoryModelNames, ops[1]))

	case OpEntryPoint:
		str, n := DecodeString(ops[2:])
		l.add("%s %s %q", ExecutionModel(ops[0]), id(ops[1]), str)
		l.ids(ops[2+n:])

	case OpExecutionMode:
		l.add("%s %s", id(ops[0]), lookup(executionModeNames, ops[1]))
		l.literals(ops[2:])

	case OpName:
		str, _ := DecodeString(ops[1:])
		l.add("%s %q", id(ops[0]), str)

	case OpMemberName:
		str, _ := DecodeString(ops[2:])
		l.add("%s %d %q", id(ops[0]), ops[1], str)

	case OpDecorate:
		l.add("%s %s", id(ops[0]), lookup(decorationNames, ops[1]))
		if ops[1] == 11 && len(ops) > 2 { // BuiltIn
			l.add("%s", lookup(builtInNames, ops[2]))
		} else {
			l.literals(ops[2:])
		}

	case 72: // OpMemberDecorate
		l.add("%s %d %s", id(ops[0]), ops[1], lookup(decorationNames, ops[2]))
		if ops[2] == 11 && len(ops) > 3 {
			l.add("%s", lookup(builtInNames, ops[3]))
		} else {
			l.literals(ops[3:])
		}

	case OpTypeVoid, 20, 26, OpLabel: // OpTypeBool, OpTypeSampler
		l.result = id(ops[0])

	case 21: // OpTypeInt
		l.result = id(ops[0])
		l.add("%d %d", ops[1], ops[2])

	case 22: // OpTypeFloat
		l.result = id(ops[0])
		l.literals(ops[1:])

	case 23, 24: // OpTypeVector, OpTypeMatrix
		l.result = id(ops[0])
		l.add("%s %d", id(ops[1]), ops[2])

	case 25: // OpTypeImage
		l.result = id(ops[0])
		l.add("%s %s %d %d %d %d", id(ops[1]), lookup(dimNames, ops[2]), ops[3], ops[4], ops[5], ops[6])
		l.literals(ops[7:])

	case 27, 28, 30, OpTypeFunction: // OpTypeSampledImage, OpTypeArray, OpTypeStruct
		l.result = id(ops[0])
		l.ids(ops[1:])

	case 32: // OpTypePointer
		l.result = id(ops[0])
		l.add("%s %s", lookup(storageClassNames, ops[1]), id(ops[2]))

	case 43: // OpConstant
		l.result = id(ops[1])
		l.add("%s", id(ops[0]))
		l.literals(ops[2:])

	case OpFunction:
		l.result = id(ops[1])
		l.add("%s %s %s", id(ops[0]), functionControl(ops[2]), id(ops[3]))

	case 59: // OpVariable
		l.result = id(ops[1])
		l.add("%s %s", id(ops[0]), lookup(storageClassNames, ops[2]))
		l.ids(ops[3:])

	case 79, 81: // OpVectorShuffle, OpCompositeExtract
		fixed := 3
		if inst.Opcode == 79 {
			fixed = 4
		}
		l.result = id(ops[1])
		l.ids(append([]uint32{ops[0]}, ops[2:fixed]...))
		l.literals(ops[fixed:])

	case 44, 55, 61, 65, 80, 86, 87: // typed results with id operands
		l.result = id(ops[1])
		l.ids(append([]uint32{ops[0]}, ops[2:]...))

	case 62, 249, 254, OpFunctionEnd, OpReturn: // OpStore, OpBranch, OpReturnValue
		l.ids(ops)

	default:
		return formatGeneric(inst)
	}
	return l.String()
}

func functionControl(mask uint32) string {
	if mask == 0 {
		return "None"
	}
	var parts []string
	for bit, name := range []string{"Inline", "DontInline", "Pure", "Const"} {
		if mask&(1<<bit) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d", mask)
	}
	return strings.Join(parts, "|")
}

func formatGeneric(inst Instruction) string {
	ops := inst.Operands
	l := line{parts: []string{inst.Opcode.String()}}
	if len(ops) >= 2 && inst.Opcode >= 126 && inst.Opcode <= 205 {
		// Arithmetic and logic: result type, result id, operands.
		l.result = id(ops[1])
		l.ids(append([]uint32{ops[0]}, ops[2:]...))
		return l.String()
	}
	l.ids(ops)
	return l.String()
}
