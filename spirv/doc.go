// Package spirv reads the SPIR-V modules produced by the glslang facade.
//
// SPIR-V is the standard intermediate language for GPU shaders, used by
// Vulkan, OpenCL, and OpenGL 4.6. A module is a stream of little-endian
// 32-bit words: a five-word header followed by instructions whose first word
// packs the word count (high 16 bits) and the opcode (low 16 bits).
//
// # Decoding
//
//	mod, err := spirv.Decode(words)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ep := range mod.EntryPoints() {
//		fmt.Println(ep.Model, ep.Name)
//	}
//
// # Disassembly
//
// Disassemble writes a .spvasm-like listing, enough to eyeball what the
// engine generated or to diff two builds:
//
//	spirv.Disassemble(os.Stdout, words)
//
// The package never validates semantics; that is left to downstream
// consumers such as spirv-val or the Vulkan driver.
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
