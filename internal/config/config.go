// Package config loads the optional settings file for imagecombiner.
//
// Files ending in .json or .jsonc are read as JSON with comments allowed;
// anything else is read as YAML. Every field is optional and missing fields
// keep their defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"imagecombiner/internal/codec"
	"imagecombiner/internal/combiner"
)

// Config holds every tunable of a combine run.
type Config struct {
	// Allocation is "exact" (width x height) or "square" (width x width).
	Allocation string `yaml:"allocation" json:"allocation"`
	// Resampler is "imaging" or "xdraw".
	Resampler string `yaml:"resampler" json:"resampler"`
	// JPEGQuality is 1-100.
	JPEGQuality int `yaml:"jpeg_quality" json:"jpeg_quality"`
	// PNGCompression is one of default, none, speed, best.
	PNGCompression string `yaml:"png_compression" json:"png_compression"`
	// GIFColors is the palette size used when writing GIF, 1-256.
	GIFColors int `yaml:"gif_colors" json:"gif_colors"`
	Verbose   bool `yaml:"verbose" json:"verbose"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Allocation:     string(combiner.AllocateExact),
		Resampler:      codec.ResamplerImaging,
		JPEGQuality:    75,
		PNGCompression: "default",
		GIFColors:      256,
	}
}

// Load reads path on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values the codec or pipeline cannot honour.
func (c Config) Validate() error {
	switch combiner.Allocation(c.Allocation) {
	case combiner.AllocateExact, combiner.AllocateSquare:
	default:
		return errors.Errorf("unknown allocation %q", c.Allocation)
	}
	switch c.Resampler {
	case codec.ResamplerImaging, codec.ResamplerXDraw:
	default:
		return errors.Errorf("unknown resampler %q", c.Resampler)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.Errorf("jpeg_quality %d out of range 1-100", c.JPEGQuality)
	}
	if _, err := codec.PNGCompressionLevel(c.PNGCompression); err != nil {
		return err
	}
	if c.GIFColors < 1 || c.GIFColors > 256 {
		return errors.Errorf("gif_colors %d out of range 1-256", c.GIFColors)
	}
	return nil
}

// CodecOptions converts the config into codec settings.
func (c Config) CodecOptions() codec.Options {
	return codec.Options{
		Resampler:      c.Resampler,
		JPEGQuality:    c.JPEGQuality,
		PNGCompression: c.PNGCompression,
		GIFColors:      c.GIFColors,
	}
}
