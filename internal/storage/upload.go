package storage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxUploadBytes caps a single image upload at 5MB
const MaxUploadBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ValidateImage checks an uploaded file against the size cap and the
// accepted image content types, returning the extension to store it under.
func ValidateImage(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadBytes {
		return "", fmt.Errorf("file exceeds the %dMB limit", MaxUploadBytes>>20)
	}

	contentType := file.Header.Get("Content-Type")
	if ext, ok := imageExtensions[contentType]; ok {
		return ext, nil
	}

	// Some clients omit the part content type; fall back to the filename
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg":
		return ".jpg", nil
	case ".png":
		return ".png", nil
	case ".webp":
		return ".webp", nil
	case ".gif":
		return ".gif", nil
	}

	return "", fmt.Errorf("unsupported image type %q", contentType)
}
