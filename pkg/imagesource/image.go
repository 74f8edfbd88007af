package imagesource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// DefaultMaxBytes caps image reads when no explicit limit is configured.
const DefaultMaxBytes int64 = 10 << 20

// Image is a card image loaded into memory.
type Image struct {
	Path     string
	MIMEType string
	Size     int64
	Data     []byte
}

// Source loads card images by path.
type Source interface {
	// Open reads the image at path. It fails with ErrFileNotFound when the
	// path does not exist, ErrFileTooLarge when it exceeds the size limit and
	// ErrNotImage when the content is not a recognised image format.
	Open(ctx context.Context, path string) (*Image, error)
	// Exists reports whether path refers to a readable file.
	Exists(ctx context.Context, path string) bool
}

var imageMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/heic": true,
	"image/heif": true,
	"image/avif": true,
}

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".heic": "image/heic",
	".heif": "image/heif",
	".avif": "image/avif",
}

// DetectMIMEType sniffs the image type from content. Formats that
// http.DetectContentType does not know (HEIC, AVIF, TIFF) fall back to the
// file extension, but only when sniffing yields the generic octet-stream type.
func DetectMIMEType(path string, data []byte) (string, error) {
	mimeType := http.DetectContentType(data)
	if imageMIMETypes[mimeType] {
		return mimeType, nil
	}
	if mimeType == "application/octet-stream" {
		if byExt, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			return byExt, nil
		}
	}
	return "", fmt.Errorf("%w: detected %s", ErrNotImage, mimeType)
}

// readLimited reads at most maxBytes from r and fails with ErrFileTooLarge if
// more data is available.
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("image exceeds %d bytes limit: %w", maxBytes, ErrFileTooLarge)
	}
	return data, nil
}

func newImage(path string, data []byte) (*Image, error) {
	mimeType, err := DetectMIMEType(path, data)
	if err != nil {
		return nil, err
	}
	return &Image{
		Path:     path,
		MIMEType: mimeType,
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}
