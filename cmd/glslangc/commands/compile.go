package commands

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/glslang/spirv"
)

func newCompileCommand() *cobra.Command {
	var (
		flags   compileFlags
		output  string
		sizeOpt bool
		dis     bool
	)

	cmd := &cobra.Command{
		Use:   "compile <input>",
		Short: "Compile one shader to SPIR-V",
		Long: `Compile one GLSL or HLSL shader to a SPIR-V binary.

The stage is taken from the file extension (.vert, .frag, .comp, ...,
optionally followed by .glsl or .hlsl) unless --stage is given.`,
		Example: `  # Compile for Vulkan 1.0, writing shader.frag.spv
  glslangc compile shader.frag

  # Vulkan 1.2 with SPIR-V 1.5, size optimized
  glslangc compile -t vulkan1.2 --spirv 1.5 --size-opt -o out.spv blur.comp

  # Print disassembly instead of writing a binary
  glslangc compile --dis -I include lit.frag.glsl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := flags.job(args[0])
			if err != nil {
				return err
			}
			j.sizeOptimized = sizeOpt

			words, err := j.run(cmd.Context())
			if err != nil {
				return err
			}
			if dis {
				return spirv.Disassemble(cmd.OutOrStdout(), words)
			}

			out := output
			if out == "" {
				out = defaultOutput(args[0])
			}
			if err := writeSPIRV(out, words); err != nil {
				return err
			}
			if out != "-" {
				log.Info().Str("output", out).Int("words", len(words)).Msg("wrote SPIR-V")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <input>.spv)")
	cmd.Flags().BoolVar(&sizeOpt, "size-opt", false, "optimize the module for size")
	cmd.Flags().BoolVar(&dis, "dis", false, "print disassembly instead of writing a binary")

	return cmd
}

// defaultOutput drops a trailing .glsl or .hlsl and appends .spv.
func defaultOutput(input string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(input, ".glsl"), ".hlsl")
	return base + ".spv"
}

func newPreprocessCommand() *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "preprocess <input>",
		Short: "Run only the preprocessor",
		Long: `Run the glslang preprocessor and print the result.

Includes are resolved and macros expanded. The source is not parsed, so
semantic errors are not reported.`,
		Example: `  glslangc preprocess -I include shader.frag`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := flags.job(args[0])
			if err != nil {
				return err
			}
			in, err := j.input()
			if err != nil {
				return err
			}
			c, err := compiler()
			if err != nil {
				return err
			}
			text, err := c.Preprocess(in)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(text))
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func newDisCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dis <input.spv>",
		Short:   "Disassemble a SPIR-V binary",
		Example: `  glslangc dis shader.frag.spv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			words, err := spirv.BytesToWords(data)
			if err != nil {
				return err
			}
			return spirv.Disassemble(cmd.OutOrStdout(), words)
		},
	}
	return cmd
}
