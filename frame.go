package links

import (
	"github.com/pkg/errors"

	"github.com/nextthought/links/mimetype"
)

// FramedMimeType is the content kind of framed links.
const FramedMimeType = mimetype.Prefix + "framedlink"

// FramedLink is a link intended to be launched into an embedded frame of the given size. It
// renders exactly like its embedded Link.
type FramedLink struct {
	*Link

	Height int
	Width  int
}

var ErrInvalidFrameSize = errors.New("links: frame height and width must be positive")

// NewFramed creates a framed link. Both dimensions are required.
func NewFramed(rel string, target any, height, width int, opts ...Option) (*FramedLink, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidFrameSize, "got %dx%d", width, height)
	}
	l, err := New(rel, target, opts...)
	if err != nil {
		return nil, err
	}
	return &FramedLink{
		Link:   l,
		Height: height,
		Width:  width,
	}, nil
}

func (l *FramedLink) MimeType() string {
	return FramedMimeType
}
