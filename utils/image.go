package utils

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
)

// ConvertPngToJpeg re-encodes a PNG image as JPEG at the given quality
// (1-100). screencap always emits PNG, so this is the only conversion the
// screenshot path needs.
func ConvertPngToJpeg(pngBytes []byte, quality int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return buf.Bytes(), nil
}
