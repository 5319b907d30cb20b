// Package imaging turns uploaded pictures into avatar-sized JPEGs.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	// Registered decoders for the upload formats browsers produce.
	_ "image/gif"
	_ "image/png"

	"userapi/config"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	jpegQuality = 90

	// DefaultMaxPixels caps the decoded canvas at 25 megapixels (e.g. 5000x5000).
	DefaultMaxPixels = 25_000_000
)

// ErrUnsupportedImage is returned when the upload cannot be decoded as an image.
var ErrUnsupportedImage = errors.New("unsupported image")

type resizer struct {
	maxPixels int64
}

// NewResizer returns the CatmullRom based ImageResizer, limited to avatar.maxPixels.
func NewResizer(cfg *config.Config) service.ImageResizer {
	if cfg.Avatar == nil || cfg.Avatar.MaxPixels <= 0 {
		return newResizer(DefaultMaxPixels)
	}

	return newResizer(cfg.Avatar.MaxPixels)
}

func newResizer(maxPixels int64) *resizer {
	return &resizer{maxPixels: maxPixels}
}

// Resize scales src to fit inside a size x size box. Smaller images are not enlarged.
func (r *resizer) Resize(src io.Reader, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid avatar size %d", size)
	}

	// Read the header first; the declared canvas is allocated in full by Decode.
	var header bytes.Buffer
	imgCfg, _, err := image.DecodeConfig(io.TeeReader(src, &header))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedImage, err.Error())
	}
	if pixels := int64(imgCfg.Width) * int64(imgCfg.Height); pixels > r.maxPixels {
		return nil, errors.WithStack(domainerrors.ErrImageTooLarge.WithDetails(
			fmt.Sprintf("%dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, r.maxPixels),
		))
	}

	img, _, err := image.Decode(io.MultiReader(&header, src))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedImage, err.Error())
	}

	bounds := img.Bounds()
	width, height := fitInside(bounds.Dx(), bounds.Dy(), size)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, errors.WithStack(err)
	}

	return buf.Bytes(), nil
}

// fitInside returns the largest dimensions within size x size that keep the aspect ratio.
func fitInside(width, height, size int) (int, int) {
	if width <= size && height <= size {
		return width, height
	}

	if width >= height {
		h := height * size / width
		if h < 1 {
			h = 1
		}

		return size, h
	}

	w := width * size / height
	if w < 1 {
		w = 1
	}

	return w, size
}
