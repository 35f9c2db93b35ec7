// Command glslangc compiles GLSL and HLSL shaders to SPIR-V with glslang.
//
// Usage:
//
//	glslangc compile [flags] <input>
//	glslangc preprocess [flags] <input>
//	glslangc build <manifest>
//	glslangc watch <manifest>
//	glslangc dis <input.spv>
//	glslangc limits
//
// Examples:
//
//	glslangc compile shader.frag                       # Writes shader.frag.spv
//	glslangc compile --target vulkan1.2 -o out.spv a.comp
//	glslangc build shaders.yaml                        # Compile a manifest
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gogpu/glslang/cmd/glslangc/commands"
)

// Set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, Version, Commit, BuildDate); err != nil {
		log.Error().Err(err).Msg("glslangc failed")
		stop()
		os.Exit(1)
	}
}
