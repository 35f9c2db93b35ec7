package commands

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/glslang/limits"
)

func newLimitsCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Print resource limits as YAML",
		Long: `Print the default resource limits, or the result of overlaying a
limits file onto the defaults. The output can be edited and passed back
with --limits.`,
		Example: `  glslangc limits > limits.yaml
  glslangc limits --file mobile.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := limits.Default()
			if file != "" {
				loaded, err := limits.LoadFile(file)
				if err != nil {
					return err
				}
				res = loaded
			}
			data, err := limits.Marshal(res)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "limits file to overlay onto the defaults")
	return cmd
}
