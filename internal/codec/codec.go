// Package codec is the file-backed combiner.Codec: it reads images with the
// registered decoders, resamples them and writes the combined result.
package codec

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"imagecombiner/internal/combiner"
)

// Resampler names.
const (
	ResamplerImaging = "imaging"
	ResamplerXDraw   = "xdraw"
)

// Options tune resampling and encoding. Zero values fall back to defaults.
type Options struct {
	Resampler      string
	JPEGQuality    int
	PNGCompression string
	GIFColors      int
}

// FileCodec implements combiner.Codec on top of the local file system.
type FileCodec struct {
	resampler string
	encode    []imaging.EncodeOption
}

var _ combiner.Codec = (*FileCodec)(nil)

// New builds a FileCodec. It fails only on an unknown resampler or PNG
// compression name.
func New(opts Options) (*FileCodec, error) {
	c := &FileCodec{resampler: ResamplerImaging}
	switch opts.Resampler {
	case "", ResamplerImaging:
	case ResamplerXDraw:
		c.resampler = ResamplerXDraw
	default:
		return nil, errors.Errorf("unknown resampler %q", opts.Resampler)
	}

	if opts.JPEGQuality > 0 {
		c.encode = append(c.encode, imaging.JPEGQuality(opts.JPEGQuality))
	}
	if opts.PNGCompression != "" {
		level, err := PNGCompressionLevel(opts.PNGCompression)
		if err != nil {
			return nil, err
		}
		c.encode = append(c.encode, imaging.PNGCompressionLevel(level))
	}
	if opts.GIFColors > 0 {
		c.encode = append(c.encode, imaging.GIFNumColors(opts.GIFColors))
	}
	return c, nil
}

// PNGCompressionLevel maps a compression name to the encoder level.
func PNGCompressionLevel(name string) (png.CompressionLevel, error) {
	switch strings.ToLower(name) {
	case "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	}
	return 0, errors.Errorf("unknown png compression %q", name)
}

// Decode reads the file at path and converts it to RGBA8. The format is
// sniffed from the file contents, not the extension.
func (c *FileCodec) Decode(path string) (combiner.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return combiner.Image{}, combiner.NewError(combiner.UnableToReadImageFromPath, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return combiner.Image{}, combiner.NewError(combiner.UnableToReadImageFromPath, path, err)
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		if errors.Is(err, image.ErrFormat) {
			return combiner.Image{}, combiner.NewError(combiner.BufferTooSmall, path, errors.Wrap(err, "detect format"))
		}
		return combiner.Image{}, combiner.NewError(combiner.UnableToParseImage, path, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return combiner.Image{}, combiner.NewError(combiner.UnableToParseImage, path, err)
	}
	return fromImage(img, combiner.Format(format)), nil
}

// Resize resamples img to exactly width x height. Asking for the size img
// already has returns a copy.
func (c *FileCodec) Resize(img combiner.Image, width, height int) combiner.Image {
	if img.Width == width && img.Height == height {
		pix := make([]byte, len(img.Pix))
		copy(pix, img.Pix)
		return combiner.Image{Pix: pix, Width: width, Height: height, Format: img.Format}
	}
	if width <= 0 || height <= 0 {
		return combiner.Image{Format: img.Format}
	}

	src := toNRGBA(img.Pix, img.Width, img.Height)
	var dst *image.NRGBA
	switch c.resampler {
	case ResamplerXDraw:
		dst = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	default:
		dst = imaging.Resize(src, width, height, imaging.Linear)
	}
	return fromImage(dst, img.Format)
}

// Encode writes pix to path in the given format. The file is written to a
// temporary name first and renamed into place, so a failure leaves any
// existing file at path alone.
func (c *FileCodec) Encode(pix []byte, width, height int, format combiner.Format, path string) error {
	need := width * height * 4
	if len(pix) < need {
		return combiner.NewError(combiner.UnableToSaveImage, path,
			errors.Errorf("%dx%d image needs %d bytes, buffer holds %d", width, height, need, len(pix)))
	}

	f, err := imaging.FormatFromExtension(string(format))
	if err != nil {
		return combiner.NewError(combiner.UnableToSaveImage, path, errors.Wrapf(err, "encode %s", format))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, toNRGBA(pix[:need], width, height), f, c.encode...); err != nil {
		return combiner.NewError(combiner.UnableToSaveImage, path, err)
	}
	if err := writeFile(path, buf.Bytes()); err != nil {
		return combiner.NewError(combiner.UnableToSaveImage, path, err)
	}
	return nil
}

func toNRGBA(pix []byte, width, height int) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// fromImage converts any image to tightly packed non-premultiplied RGBA.
func fromImage(img image.Image, format combiner.Format) combiner.Image {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return combiner.Image{
		Pix:    nrgba.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: format,
	}
}
