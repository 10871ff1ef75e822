package combiner

import "fmt"

// Format identifies a container format as reported by the decoder. The
// pipeline only ever compares two formats for equality.
type Format string

// Image is a decoded picture: non-premultiplied RGBA8, row-major, no
// padding between rows.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	Format Format
}

// Codec reads, writes and resamples images for the pipeline.
type Codec interface {
	// Decode reads the file at path. Errors are *Error values of kind
	// UnableToReadImageFromPath, BufferTooSmall or UnableToParseImage.
	Decode(path string) (Image, error)
	// Encode writes pix as a width x height image in format to path. Errors
	// are *Error values of kind UnableToSaveImage.
	Encode(pix []byte, width, height int, format Format, path string) error
	// Resize resamples img to exactly width x height with a triangle filter.
	Resize(img Image, width, height int) Image
}

// Allocation decides the dimensions of the output buffer.
type Allocation string

const (
	// AllocateExact sizes the output as width x height of the first image.
	AllocateExact Allocation = "exact"
	// AllocateSquare uses the first image's width for both dimensions.
	AllocateSquare Allocation = "square"
)

// Pipeline combines two images by alternating their pixels.
type Pipeline struct {
	Codec      Codec
	Allocation Allocation
	// Logf receives progress lines. Nil discards them.
	Logf func(format string, args ...interface{})
}

// NewPipeline returns a pipeline using codec with exact allocation.
func NewPipeline(codec Codec) *Pipeline {
	return &Pipeline{Codec: codec, Allocation: AllocateExact}
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// Run decodes both inputs, checks that they share a format, brings them to
// a common size, interleaves them and writes the result to args.OutputPath.
// Nothing is written unless every earlier step succeeded.
func (p *Pipeline) Run(args ArgumentSet) error {
	first, err := p.Codec.Decode(args.FirstImagePath)
	if err != nil {
		return err
	}
	second, err := p.Codec.Decode(args.SecondImagePath)
	if err != nil {
		return err
	}
	p.logf("decoded %s: %dx%d %s", args.FirstImagePath, first.Width, first.Height, first.Format)
	p.logf("decoded %s: %dx%d %s", args.SecondImagePath, second.Width, second.Height, second.Format)

	if first.Format != second.Format {
		return newError(DifferentImageFormats,
			fmt.Sprintf("%s is %s, %s is %s", args.FirstImagePath, first.Format, args.SecondImagePath, second.Format), nil)
	}

	first, second = p.StandardizeSize(first, second)

	output := p.allocate(first, args.OutputPath)
	if err := output.SetData(CombineImages(first, second)); err != nil {
		return err
	}

	p.logf("writing %s: %dx%d %s", output.Name, output.Width, output.Height, first.Format)
	return p.Codec.Encode(output.Data(), output.Width, output.Height, first.Format, output.Name)
}

func (p *Pipeline) allocate(img Image, name string) *ImageBuffer {
	if p.Allocation == AllocateSquare {
		return NewImageBuffer(img.Width, img.Width, name)
	}
	return NewImageBuffer(img.Width, img.Height, name)
}

// SmallestDimension picks the target size of two images. The comparison is
// on width+height, not area; ties go to b.
func SmallestDimension(aw, ah, bw, bh int) (int, int) {
	if aw+ah < bw+bh {
		return aw, ah
	}
	return bw, bh
}

// StandardizeSize resizes one of a and b so both have the dimensions chosen
// by SmallestDimension. If b already has them, a is resized, otherwise b is.
func (p *Pipeline) StandardizeSize(a, b Image) (Image, Image) {
	width, height := SmallestDimension(a.Width, a.Height, b.Width, b.Height)
	p.logf("Width: %d, height: %d", width, height)

	if b.Width == width && b.Height == height {
		return p.Codec.Resize(a, width, height), b
	}
	return a, p.Codec.Resize(b, width, height)
}

// CombineImages interleaves the pixels of two equally sized images.
func CombineImages(a, b Image) []byte {
	return AlternatePixels(a.Pix, b.Pix)
}

// AlternatePixels builds a buffer as long as a in which even pixels come
// from a and odd pixels from b. b must be at least as long as a; a short
// source panics with an IndexOutOfBounds *Error.
func AlternatePixels(a, b []byte) []byte {
	combined := make([]byte, len(a))
	for i := 0; i < len(a); i += 4 {
		src := b
		if i%8 == 0 {
			src = a
		}
		copy(combined[i:], rgbaAt(src, i))
	}
	return combined
}

func rgbaAt(pix []byte, start int) []byte {
	if start+4 > len(pix) {
		panic(newError(IndexOutOfBounds, fmt.Sprintf("pixel at byte %d of %d", start, len(pix)), nil))
	}
	return pix[start : start+4]
}
