package commands

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/glslang/internal/manifest"
)

const settleDelay = 100 * time.Millisecond

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <manifest>",
		Short: "Rebuild a manifest whenever its shaders change",
		Long: `Build a manifest, then watch its sources, include directories and the
manifest itself. A changed source rebuilds that shader. Any other change
(a header, the limits file, the manifest) rebuilds everything.`,
		Example: `  glslangc watch shaders.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watch(cmd.Context(), args[0])
		},
	}
	return cmd
}

func watch(ctx context.Context, manifestPath string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	manifestPath, err = filepath.Abs(manifestPath)
	if err != nil {
		return err
	}

	var (
		m       *manifest.Manifest
		jobs    []buildJob
		watched = map[string]bool{}
	)
	reload := func() {
		loaded, err := manifest.Load(manifestPath)
		if err == nil {
			var js []buildJob
			js, err = manifestJobs(loaded)
			if err == nil {
				m, jobs = loaded, js
			}
		}
		if err != nil {
			log.Error().Err(err).Str("manifest", manifestPath).Msg("reload failed")
			return
		}
		for _, dir := range watchDirs(manifestPath, m, jobs) {
			if watched[dir] {
				continue
			}
			if err := w.Add(dir); err != nil {
				log.Warn().Err(err).Str("dir", dir).Msg("cannot watch")
				continue
			}
			watched[dir] = true
		}
		if err := build(ctx, jobs, m.Jobs); err != nil {
			log.Error().Err(err).Msg("build failed")
		}
	}

	manifestDir := filepath.Dir(manifestPath)
	if err := w.Add(manifestDir); err != nil {
		return err
	}
	watched[manifestDir] = true

	reload()

	var (
		pending = map[string]bool{}
		timer   = time.NewTimer(0)
	)
	<-timer.C

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			pending[filepath.Clean(ev.Name)] = true
			timer.Reset(settleDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")

		case <-timer.C:
			changed := pending
			pending = map[string]bool{}

			if changed[manifestPath] || m == nil {
				reload()
				continue
			}
			if subset := changedJobs(jobs, changed); subset != nil {
				if err := build(ctx, subset, m.Jobs); err != nil {
					log.Error().Err(err).Msg("build failed")
				}
				continue
			}
			if err := build(ctx, jobs, m.Jobs); err != nil {
				log.Error().Err(err).Msg("build failed")
			}
		}
	}
}

// changedJobs returns the jobs whose source is in changed, or nil if any
// changed path is not a known source or output.
func changedJobs(jobs []buildJob, changed map[string]bool) []buildJob {
	bySource := make(map[string]buildJob, len(jobs))
	outputs := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		bySource[filepath.Clean(j.path)] = j
		outputs[filepath.Clean(j.output)] = true
	}

	var subset []buildJob
	for path := range changed {
		if outputs[path] {
			continue
		}
		j, ok := bySource[path]
		if !ok {
			return nil
		}
		subset = append(subset, j)
	}
	if len(subset) == 0 {
		return []buildJob{}
	}
	return subset
}

func watchDirs(manifestPath string, m *manifest.Manifest, jobs []buildJob) []string {
	seen := map[string]bool{}
	var dirs []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	add(filepath.Dir(manifestPath))
	for _, j := range jobs {
		add(filepath.Dir(j.path))
	}
	for _, d := range m.IncludeDirs() {
		add(d)
	}
	if m.Limits != "" {
		add(filepath.Dir(m.Resolve(m.Limits)))
	}
	return dirs
}
