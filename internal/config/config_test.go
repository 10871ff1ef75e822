package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "exact", cfg.Allocation)
	assert.Equal(t, "imaging", cfg.Resampler)
	assert.False(t, cfg.Verbose)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "imagecombiner.yaml", `
allocation: square
jpeg_quality: 90
png_compression: best
verbose: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "square", cfg.Allocation)
	assert.Equal(t, 90, cfg.JPEGQuality)
	assert.Equal(t, "best", cfg.PNGCompression)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 256, cfg.GIFColors, "fields not in the file keep their defaults")
}

func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, "imagecombiner.jsonc", `{
  // smaller palettes for GIF output
  "gif_colors": 16,
  "resampler": "xdraw", /* x/image BiLinear */
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.GIFColors)
	assert.Equal(t, "xdraw", cfg.Resampler)
	assert.Equal(t, "exact", cfg.Allocation)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad yaml", "c.yaml", "allocation: [exact"},
		{"bad json", "c.json", `{"allocation": }`},
		{"unknown allocation", "c.yaml", "allocation: triangle"},
		{"unknown resampler", "c.yaml", "resampler: lanczos"},
		{"jpeg quality too high", "c.yaml", "jpeg_quality: 101"},
		{"jpeg quality zero", "c.yaml", "jpeg_quality: 0"},
		{"unknown png compression", "c.yaml", "png_compression: ultra"},
		{"gif colors too many", "c.yaml", "gif_colors: 300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestCodecOptions(t *testing.T) {
	cfg := Default()
	cfg.JPEGQuality = 42

	opts := cfg.CodecOptions()
	assert.Equal(t, 42, opts.JPEGQuality)
	assert.Equal(t, cfg.Resampler, opts.Resampler)
	assert.Equal(t, cfg.PNGCompression, opts.PNGCompression)
	assert.Equal(t, cfg.GIFColors, opts.GIFColors)
}
