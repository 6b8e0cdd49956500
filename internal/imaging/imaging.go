// Package imaging normalizes uploaded product photos: it sniffs the
// real format, decodes, downscales oversized images and re-encodes
// everything as JPEG so the catalog serves one predictable format.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxDimension bounds the stored width and height.
const MaxDimension = 1200

// JPEGQuality is the re-encode quality.
const JPEGQuality = 85

// allowedMIME lists accepted input formats, by sniffed type.
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Normalize validates, downscales and re-encodes an uploaded image.
// The client-declared content type is ignored; the bytes decide.
func Normalize(r io.Reader) (data []byte, mime string, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(raw)
	if !allowedMIME[detected] {
		return nil, "", fmt.Errorf("unsupported image format %s (JPEG, PNG or WebP only)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}

	img = fit(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, "", fmt.Errorf("encoding JPEG: %w", err)
	}

	return buf.Bytes(), "image/jpeg", nil
}

// fit scales the image down so neither dimension exceeds maxDim,
// preserving aspect ratio. Images already within bounds pass through.
func fit(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := maxDim, maxDim
	if w > h {
		newH = max(1, h*maxDim/w)
	} else {
		newW = max(1, w*maxDim/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
