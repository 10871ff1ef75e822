package combiner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromProcessArguments(t *testing.T) {
	args, err := FromProcessArguments([]string{"imagecombiner", "a.png", "b.png", "out.png"})
	require.NoError(t, err)

	assert.Equal(t, ArgumentSet{
		FirstImagePath:  "a.png",
		SecondImagePath: "b.png",
		OutputPath:      "out.png",
	}, args)
}

func TestFromProcessArguments_IgnoresExtra(t *testing.T) {
	args, err := FromProcessArguments([]string{"imagecombiner", "a.png", "b.png", "out.png", "extra"})
	require.NoError(t, err)
	assert.Equal(t, "out.png", args.OutputPath)
}

// TestFromProcessArguments_Missing checks that the first absent position is
// the one reported.
func TestFromProcessArguments_Missing(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		detail string
	}{
		{"nothing", nil, "position 1: first image path"},
		{"program only", []string{"imagecombiner"}, "position 1: first image path"},
		{"one path", []string{"imagecombiner", "a.png"}, "position 2: second image path"},
		{"no output", []string{"imagecombiner", "a.png", "b.png"}, "position 3: output path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromProcessArguments(tt.args)
			require.Error(t, err)
			assert.Equal(t, MissingArgument, KindOf(err))

			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.detail, ce.Detail)
		})
	}
}
