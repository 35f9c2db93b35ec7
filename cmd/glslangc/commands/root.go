package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/glslang"
	"github.com/gogpu/glslang/internal/telemetry"
)

var (
	// Global flags
	logLevel    string
	logFormat   string
	metricsAddr string

	metrics *telemetry.Metrics
)

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	return newRootCommand(version, commit, buildDate).ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glslangc",
		Short: "Compile GLSL and HLSL shaders to SPIR-V",
		Long: `glslangc drives the glslang reference compiler.

It validates targets and GLSL profiles up front, resolves #include from
directories given with -I, and writes SPIR-V binaries or disassembly.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	rootCmd.AddCommand(newCompileCommand())
	rootCmd.AddCommand(newPreprocessCommand())
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newDisCommand())
	rootCmd.AddCommand(newLimitsCommand())
	rootCmd.AddCommand(newVersionCommand(rootCmd.Version))

	return rootCmd
}

func setup(ctx context.Context) error {
	logger, err := telemetry.NewLogger(telemetry.LoggingConfig{Level: logLevel, Format: logFormat})
	if err != nil {
		return err
	}
	log.Logger = logger
	glslang.SetLogger(logger)

	if metricsAddr == "" {
		return nil
	}
	metrics = telemetry.NewMetrics()
	go func() {
		if err := metrics.Serve(ctx, metricsAddr); err != nil {
			log.Error().Err(err).Str("addr", metricsAddr).Msg("metrics server stopped")
		}
	}()
	log.Info().Str("addr", metricsAddr).Msg("serving metrics")
	return nil
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the glslangc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "glslangc %s\n", version)
			return err
		},
	}
}
