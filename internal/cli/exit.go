package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"imagecombiner/internal/combiner"
)

// ExitCode is the process status for each failure kind.
type ExitCode int

const (
	ExitSuccess           ExitCode = 0
	ExitGeneralError      ExitCode = 1
	ExitMissingArgument   ExitCode = 2
	ExitUnreadableImage   ExitCode = 3
	ExitBufferTooSmall    ExitCode = 4
	ExitDifferentFormats  ExitCode = 5
	ExitUnparsableImage   ExitCode = 6
	ExitUnableToSave      ExitCode = 7
	ExitInvalidConfig     ExitCode = 8
	ExitInternalInvariant ExitCode = 70
)

var kindExitCodes = map[combiner.Kind]ExitCode{
	combiner.MissingArgument:           ExitMissingArgument,
	combiner.UnableToReadImageFromPath: ExitUnreadableImage,
	combiner.BufferTooSmall:            ExitBufferTooSmall,
	combiner.DifferentImageFormats:     ExitDifferentFormats,
	combiner.UnableToParseImage:        ExitUnparsableImage,
	combiner.UnableToSaveImage:         ExitUnableToSave,
	combiner.IndexOutOfBounds:          ExitInternalInvariant,
}

// ConfigError marks a problem with flags or the settings file.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "invalid configuration: " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// ExitCodeOf maps err to the status the process should exit with.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitInvalidConfig
	}
	if code, ok := kindExitCodes[combiner.KindOf(err)]; ok {
		return code
	}
	return ExitGeneralError
}

// Execute runs cmd, prints any failure to stderr and returns the exit code.
// An IndexOutOfBounds panic from the interleaver is reported the same way.
func Execute(cmd *cobra.Command) (code ExitCode) {
	stderr := cmd.ErrOrStderr()
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok || combiner.KindOf(err) != combiner.IndexOutOfBounds {
				panic(r)
			}
			printError(stderr, err)
			code = ExitInternalInvariant
		}
	}()

	if err := cmd.Execute(); err != nil {
		printError(stderr, err)
		return ExitCodeOf(err)
	}
	return ExitSuccess
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
