package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MagicNumber is the first word of every SPIR-V module.
const MagicNumber = 0x07230203

// HeaderWords is the number of words in the module header.
const HeaderWords = 5

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions
var (
	Version1_0 = Version{1, 0}
	Version1_1 = Version{1, 1}
	Version1_2 = Version{1, 2}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// Word encodes v the way the module header stores it: 0 | major | minor | 0.
func (v Version) Word() uint32 {
	return (uint32(v.Major) << 16) | (uint32(v.Minor) << 8)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// VersionFromWord decodes a header version word.
func VersionFromWord(w uint32) Version {
	return Version{Major: uint8(w >> 16), Minor: uint8(w >> 8)}
}

// Header is the five-word SPIR-V module header.
type Header struct {
	Magic     uint32
	Version   Version
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// GeneratorTool returns the tool half of the generator word. glslang
// registers itself as tool 8.
func (h Header) GeneratorTool() uint16 {
	return uint16(h.Generator >> 16)
}

// Errors returned when reading modules.
var (
	ErrTooShort = errors.New("spirv: module shorter than its header")
	ErrBadMagic = errors.New("spirv: invalid magic number")
)

// ParseHeader decodes the header of a module.
func ParseHeader(words []uint32) (Header, error) {
	if len(words) < HeaderWords {
		return Header{}, ErrTooShort
	}
	if words[0] != MagicNumber {
		return Header{}, fmt.Errorf("%w: 0x%08X", ErrBadMagic, words[0])
	}
	return Header{
		Magic:     words[0],
		Version:   VersionFromWord(words[1]),
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
	}, nil
}

// WordsToBytes serializes words as a little-endian byte stream, the on-disk
// .spv format.
func WordsToBytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// BytesToWords parses a .spv byte stream. Modules written on a big-endian
// host are detected from the magic number and swapped.
func BytesToWords(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("spirv: byte length %d is not a multiple of 4", len(data))
	}
	if len(data) < 4 {
		return nil, ErrTooShort
	}

	var order binary.ByteOrder = binary.LittleEndian
	switch {
	case binary.LittleEndian.Uint32(data) == MagicNumber:
	case binary.BigEndian.Uint32(data) == MagicNumber:
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: 0x%08X", ErrBadMagic, binary.LittleEndian.Uint32(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[i*4:])
	}
	return words, nil
}
