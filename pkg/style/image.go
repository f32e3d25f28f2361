package style

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ErrEmptyImage indicates a style image with neither bytes nor a decoded
// bitmap.
var ErrEmptyImage = errors.New("style image has no data")

// Image is a named bitmap registered with the style for use by symbol
// layers and annotations ("icon-image", patterns). PNG is the interchange
// format on the wire.
type Image struct {
	ID string

	// Data is a PNG-encoded bitmap. Takes precedence over Bitmap when set.
	Data []byte

	// Bitmap is a decoded image, re-encoded (and scaled) at serialization.
	Bitmap image.Image

	// SDF marks the image as a signed distance field, allowing the
	// renderer to tint it.
	SDF bool

	// PixelRatio is the density the bitmap was authored for; 0 means 1.
	// Bitmaps (not raw Data) are resampled to the ratio before encoding.
	PixelRatio float64
}

// ToArgs serializes the image. Raw PNG data passes through untouched;
// decoded bitmaps are scaled by PixelRatio with Catmull-Rom resampling and
// PNG-encoded.
func (i *Image) ToArgs() (map[string]any, error) {
	ratio := i.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}

	data := i.Data
	if data == nil {
		if i.Bitmap == nil {
			return nil, fmt.Errorf("%w: %s", ErrEmptyImage, i.ID)
		}
		bitmap := i.Bitmap
		if ratio != 1 {
			bitmap = scaleImage(bitmap, ratio)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, bitmap); err != nil {
			return nil, err
		}
		data = buf.Bytes()
	}

	return map[string]any{
		"id":         i.ID,
		"bytes":      data,
		"sdf":        i.SDF,
		"pixelRatio": ratio,
	}, nil
}

// scaleImage resamples src by the given factor.
func scaleImage(src image.Image, factor float64) image.Image {
	b := src.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
