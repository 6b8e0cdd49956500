package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(w, h, color.RGBA{255, 0, 0, 255}), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding test jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h, color.RGBA{0, 0, 255, 255})); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeJPEG(t *testing.T) {
	data, mime, err := Normalize(bytes.NewReader(encodeJPEG(t, 100, 100)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", mime)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestNormalizePNGBecomesJPEG(t *testing.T) {
	_, mime, err := Normalize(bytes.NewReader(encodePNG(t, 100, 100)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected re-encode to image/jpeg, got %s", mime)
	}
}

func TestNormalizeDownscales(t *testing.T) {
	data, _, err := Normalize(bytes.NewReader(encodeJPEG(t, 2400, 1600)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %d per side, got %dx%d", MaxDimension, bounds.Dx(), bounds.Dy())
	}
	if bounds.Dx() != MaxDimension {
		t.Errorf("expected width %d for landscape input, got %d", MaxDimension, bounds.Dx())
	}
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	data, _, err := Normalize(bytes.NewReader(encodeJPEG(t, 60, 40)))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 60 || bounds.Dy() != 40 {
		t.Errorf("small image must not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeRejectsNonImage(t *testing.T) {
	if _, _, err := Normalize(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestNormalizeRejectsGIF(t *testing.T) {
	if _, _, err := Normalize(bytes.NewReader([]byte("GIF89a..."))); err == nil {
		t.Error("expected error for GIF input")
	}
}
