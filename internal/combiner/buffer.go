package combiner

import "fmt"

// ImageBuffer holds the pixel bytes of the combined image. Its capacity is
// fixed at width*height*4 when it is created and the contents can only be
// swapped out whole through SetData.
type ImageBuffer struct {
	Width  int
	Height int
	Name   string

	data     []byte
	capacity int
}

// NewImageBuffer allocates an empty buffer able to hold width*height RGBA
// pixels.
func NewImageBuffer(width, height int, name string) *ImageBuffer {
	capacity := width * height * 4
	return &ImageBuffer{
		Width:    width,
		Height:   height,
		Name:     name,
		data:     make([]byte, 0, capacity),
		capacity: capacity,
	}
}

// Capacity is the number of bytes the buffer was sized for.
func (b *ImageBuffer) Capacity() int { return b.capacity }

// Data returns the current contents. Callers must not modify it.
func (b *ImageBuffer) Data() []byte { return b.data }

// SetData replaces the contents with buf. A buf longer than the capacity is
// rejected with BufferTooSmall and the previous contents are kept.
func (b *ImageBuffer) SetData(buf []byte) error {
	if len(buf) > b.capacity {
		return newError(BufferTooSmall,
			fmt.Sprintf("%s: %d bytes into capacity %d", b.Name, len(buf), b.capacity), nil)
	}
	b.data = append(b.data[:0], buf...)
	return nil
}
