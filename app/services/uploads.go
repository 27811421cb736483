package services

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// Upload is an incoming file, decoupled from multipart so services can
// be exercised without an HTTP request.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// MaxUploadSize caps any single uploaded file at 5 MiB.
const MaxUploadSize = 5 << 20

var (
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

var proofExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"pdf":  true,
}

// checkUpload validates size and extension and returns the normalized
// lower-case extension without the leading dot.
func checkUpload(u Upload, allowed map[string]bool) (string, error) {
	if u.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(u.Filename)), ".")
	if !allowed[ext] {
		return "", ErrUnsupportedFileType
	}
	return ext, nil
}
