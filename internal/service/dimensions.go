package service

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// imageDimensions reads the pixel size from an image header. It returns nils for
// non-image content and for formats no decoder is registered for.
func imageDimensions(contentType string, data []byte) (width, height *int) {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil
	}
	return &cfg.Width, &cfg.Height
}
