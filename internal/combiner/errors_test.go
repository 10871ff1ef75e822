package combiner

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := NewError(UnableToReadImageFromPath, "a.png", errors.New("no such file"))
	assert.Equal(t, "unable to read image from path (a.png): no such file", err.Error())

	assert.Equal(t, "different image formats", NewError(DifferentImageFormats, "", nil).Error())
}

func TestKindOf(t *testing.T) {
	base := NewError(UnableToParseImage, "a.png", errors.New("bad huffman"))

	assert.Equal(t, UnableToParseImage, KindOf(base))
	assert.Equal(t, UnableToParseImage, KindOf(errors.Wrap(base, "decode first")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestError_IsMatchesKind(t *testing.T) {
	err := errors.Wrap(NewError(BufferTooSmall, "out.png", nil), "commit")

	assert.True(t, errors.Is(err, &Error{Kind: BufferTooSmall}))
	assert.False(t, errors.Is(err, &Error{Kind: UnableToSaveImage}))
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewError(UnableToSaveImage, "out.png", cause)

	assert.True(t, errors.Is(err, cause))
}
