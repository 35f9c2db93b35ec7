// Command spvdis disassembles SPIR-V binaries.
//
// Usage:
//
//	spvdis [--summary] <input.spv>...
//
// With --summary only the header, capabilities and entry points are printed.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/glslang/spirv"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spvdis:", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:           "spvdis <input.spv>...",
		Short:         "Disassemble SPIR-V binaries",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, path := range args {
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "; File: %s\n", path)
				}
				if err := disassembleFile(out, path, summary); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "print only the header, capabilities and entry points")
	return cmd
}

func disassembleFile(w io.Writer, path string, summary bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	words, err := spirv.BytesToWords(data)
	if err != nil {
		return err
	}
	if !summary {
		return spirv.Disassemble(w, words)
	}
	return printSummary(w, words)
}

func printSummary(w io.Writer, words []uint32) error {
	mod, err := spirv.Decode(words)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "version:      %s\n", mod.Header.Version)
	fmt.Fprintf(w, "bound:        %d\n", mod.Header.Bound)
	fmt.Fprintf(w, "instructions: %d\n", len(mod.Instructions))
	fmt.Fprintf(w, "capabilities: %s\n", strings.Join(mod.Capabilities(), " "))
	for _, ep := range mod.EntryPoints() {
		fmt.Fprintf(w, "entry point:  %s %q (%d interface ids)\n", ep.Model, ep.Name, len(ep.Interface))
	}
	return nil
}
