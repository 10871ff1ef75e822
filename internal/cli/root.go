// Package cli wires the cobra command line to the combine pipeline.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"imagecombiner/internal/codec"
	"imagecombiner/internal/combiner"
	"imagecombiner/internal/config"
)

// Version, Commit and Date are injected from main at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type flags struct {
	configPath  string
	verbose     bool
	allocation  string
	resampler   string
	jpegQuality int
}

// NewRootCommand builds the imagecombiner command. It takes exactly the three
// positional paths; every flag is optional.
func NewRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "imagecombiner <first image> <second image> <output>",
		Short: "Combine two images by alternating their pixels",
		Long: `imagecombiner reads two images of the same format, shrinks the larger one
(by width+height) to the size of the smaller, and writes an image whose
pixels alternate between the two sources.

The output is written in the format of the inputs.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Settings file (YAML, or JSON/JSONC by extension)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print progress to stderr")
	cmd.Flags().StringVar(&f.allocation, "allocation", "", "Output buffer sizing: exact or square")
	cmd.Flags().StringVar(&f.resampler, "resampler", "", "Resize implementation: imaging or xdraw")
	cmd.Flags().IntVar(&f.jpegQuality, "jpeg-quality", 0, "JPEG quality 1-100")

	return cmd
}

func run(cmd *cobra.Command, f flags, args []string) error {
	// Positions are checked before any file, config included, is touched.
	argSet, err := combiner.FromProcessArguments(append([]string{cmd.Name()}, args...))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return &ConfigError{Err: err}
	}

	c, err := codec.New(cfg.CodecOptions())
	if err != nil {
		return &ConfigError{Err: err}
	}

	p := combiner.NewPipeline(c)
	p.Allocation = combiner.Allocation(cfg.Allocation)
	if cfg.Verbose {
		p.Logf = verboseLogger(cmd.ErrOrStderr())
	}

	if err := p.Run(argSet); err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[verbose] wrote %s\n", argSet.OutputPath)
	}
	return nil
}

func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if fs.Changed("allocation") {
		cfg.Allocation = f.allocation
	}
	if fs.Changed("resampler") {
		cfg.Resampler = f.resampler
	}
	if fs.Changed("jpeg-quality") {
		cfg.JPEGQuality = f.jpegQuality
	}
	return cfg, cfg.Validate()
}

func verboseLogger(w io.Writer) func(string, ...interface{}) {
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, "[verbose] "+format+"\n", args...)
	}
}
