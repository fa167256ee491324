package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 0, 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestConvertPngToJpeg(t *testing.T) {
	jpegBytes, err := ConvertPngToJpeg(testPNG(t), 90)
	if err != nil {
		t.Fatalf("ConvertPngToJpeg() error = %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(jpegBytes))
	if err != nil {
		t.Fatalf("output is not valid JPEG: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 16 {
		t.Errorf("unexpected dimensions %v", decoded.Bounds())
	}
}

func TestConvertPngToJpeg_InvalidInput(t *testing.T) {
	_, err := ConvertPngToJpeg([]byte("not a png"), 90)
	if err == nil {
		t.Fatal("expected error for invalid PNG data")
	}
}
