package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/glslang"
	"github.com/gogpu/glslang/limits"
	"github.com/gogpu/glslang/spirv"
)

// compileFlags are the flags shared by compile and preprocess.
type compileFlags struct {
	stage      string
	target     string
	spirv      string
	messages   string
	limitsFile string
	includes   []string
	hlsl       bool
}

func (f *compileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.stage, "stage", "S", "", "shader stage (default: from file extension)")
	cmd.Flags().StringVarP(&f.target, "target", "t", "vulkan1.0", "target client (vulkan1.0-1.3, opengl4.5, none)")
	cmd.Flags().StringVar(&f.spirv, "spirv", "", "SPIR-V version (default: highest for the target)")
	cmd.Flags().StringVar(&f.messages, "messages", "", "extra message flags, e.g. debug-info|keep-uncalled")
	cmd.Flags().StringVar(&f.limitsFile, "limits", "", "YAML file of resource limits")
	cmd.Flags().StringArrayVarP(&f.includes, "include", "I", nil, "include directory (repeatable)")
	cmd.Flags().BoolVarP(&f.hlsl, "hlsl", "D", false, "treat input as HLSL")
}

// job is one source file and everything needed to compile it.
type job struct {
	path          string
	stage         glslang.Stage
	options       glslang.CompilerOptions
	limits        *limits.Resources
	includer      glslang.IncludeCallback
	sizeOptimized bool
}

func (f *compileFlags) job(path string) (*job, error) {
	stage, err := stageOf(path, f.stage)
	if err != nil {
		return nil, err
	}
	target, err := glslang.ParseTarget(f.target, f.spirv)
	if err != nil {
		return nil, err
	}

	opts := glslang.DefaultOptions()
	opts.Target = target
	opts.Language = glslang.LanguageFromPath(path)
	if f.hlsl {
		opts.Language = glslang.SourceHLSL
	}
	if f.messages != "" {
		m, err := glslang.ParseMessages(f.messages)
		if err != nil {
			return nil, err
		}
		opts.Messages |= m
	}

	res, err := loadLimits(f.limitsFile)
	if err != nil {
		return nil, err
	}

	return &job{
		path:     path,
		stage:    stage,
		options:  opts,
		limits:   res,
		includer: includer(path, f.includes),
	}, nil
}

func stageOf(path, override string) (glslang.Stage, error) {
	if override != "" {
		return glslang.ParseStage(override)
	}
	return glslang.StageFromPath(path)
}

func loadLimits(path string) (*limits.Resources, error) {
	if path == "" {
		return nil, nil
	}
	res, err := limits.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// includer searches the source's directory first, then dirs in order.
func includer(source string, dirs []string) glslang.IncludeCallback {
	roots := make([]fs.FS, 0, len(dirs)+1)
	roots = append(roots, os.DirFS(filepath.Dir(source)))
	for _, d := range dirs {
		roots = append(roots, os.DirFS(d))
	}
	return glslang.FSIncluder(roots...)
}

func (j *job) input() (*glslang.ShaderInput, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return nil, err
	}
	src, err := glslang.NewShaderSource(string(data))
	if err != nil {
		return nil, err
	}
	return glslang.NewShaderInputWithLimits(src, j.limits, j.stage, j.options, j.includer)
}

func compiler() (*glslang.Compiler, error) {
	c := glslang.Acquire()
	if c == nil {
		return nil, errors.New("glslang engine failed to initialize")
	}
	return c, nil
}

// run compiles j to SPIR-V and records the outcome.
func (j *job) run(ctx context.Context) ([]uint32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	words, err := j.compile()
	elapsed := time.Since(start)

	stage := j.stage.String()
	if err != nil {
		metrics.RecordFailure(stage, errorKind(err), elapsed)
		return nil, fmt.Errorf("%s: %w", j.path, err)
	}
	metrics.RecordCompile(stage, elapsed, len(words))
	log.Debug().
		Str("source", j.path).
		Str("stage", stage).
		Int("words", len(words)).
		Dur("elapsed", elapsed).
		Msg("compiled")
	return words, nil
}

func (j *job) compile() ([]uint32, error) {
	c, err := compiler()
	if err != nil {
		return nil, err
	}
	in, err := j.input()
	if err != nil {
		return nil, err
	}
	shader, err := c.NewShader(in)
	if err != nil {
		return nil, err
	}
	defer shader.Close()

	if info, err := shader.InfoLog(); err == nil && info.Info != "" {
		log.Warn().Str("source", j.path).Msg(info.Info)
	}

	if j.sizeOptimized {
		return shader.CompileSizeOptimized()
	}
	return shader.Compile()
}

func errorKind(err error) string {
	var gerr *glslang.Error
	if errors.As(err, &gerr) {
		return gerr.Kind.String()
	}
	return "Other"
}

// writeSPIRV writes words to path, or to stdout when path is "-".
func writeSPIRV(path string, words []uint32) error {
	data := spirv.WordsToBytes(words)
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
