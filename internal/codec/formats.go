package codec

// Decoders registered with the image package. Formats without an encoder
// (webp) can still be read; writing them fails with UnableToSaveImage.
import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)
