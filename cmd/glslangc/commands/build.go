package commands

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glslang"
	"github.com/gogpu/glslang/internal/manifest"
)

func newBuildCommand() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "build <manifest>",
		Short: "Compile every shader listed in a manifest",
		Long: `Compile the shaders listed in a YAML or TOML manifest.

Shaders compile concurrently. A failing shader does not stop the others;
every failure is reported and the command exits non-zero.`,
		Example: `  glslangc build shaders.yaml
  glslangc build --jobs 4 glslang.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			if jobs > 0 {
				m.Jobs = jobs
			}
			targets, err := manifestJobs(m)
			if err != nil {
				return err
			}
			return build(cmd.Context(), targets, m.Jobs)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "concurrent compilations (default: manifest value or one per CPU)")
	return cmd
}

// buildJob is a job with its output path.
type buildJob struct {
	*job
	output string
}

func manifestJobs(m *manifest.Manifest) ([]buildJob, error) {
	res, err := loadLimits(m.Resolve(m.Limits))
	if err != nil {
		return nil, err
	}
	dirs := m.IncludeDirs()

	jobs := make([]buildJob, 0, len(m.Shaders))
	for _, s := range m.Shaders {
		path := m.Resolve(s.Source)
		stage, err := stageOf(path, s.Stage)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Source, err)
		}
		target, err := glslang.ParseTarget(m.TargetFor(s))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Source, err)
		}

		opts := glslang.DefaultOptions()
		opts.Target = target
		opts.Language = glslang.LanguageFromPath(path)

		jobs = append(jobs, buildJob{
			job: &job{
				path:          path,
				stage:         stage,
				options:       opts,
				limits:        res,
				includer:      includer(path, dirs),
				sizeOptimized: s.SizeOptimized,
			},
			output: m.OutputPath(s),
		})
	}
	return jobs, nil
}

// build compiles jobs with at most limit running at once and joins every
// failure.
func build(ctx context.Context, jobs []buildJob, limit int) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	g := new(errgroup.Group)
	g.SetLimit(limit)

	for _, bj := range jobs {
		g.Go(func() error {
			words, err := bj.run(ctx)
			if err == nil {
				err = writeSPIRV(bj.output, words)
			}
			if err != nil {
				log.Error().Err(err).Str("source", bj.path).Msg("build failed")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return nil
			}
			log.Info().Str("source", bj.path).Str("output", bj.output).Msg("built")
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d shaders failed: %w", len(errs), len(jobs), errors.Join(errs...))
	}
	return nil
}
