package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// FileConstraints defines validation rules for résumé uploads.
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

var (
	// PDFConstraints is the admin upload rule: PDF only.
	PDFConstraints = FileConstraints{
		AllowedMimeTypes: map[string]bool{
			"application/pdf": true,
		},
		AllowedExtensions: map[string]bool{
			".pdf": true,
		},
		MaxSize: 5 << 20, // 5MB
	}

	// DocumentConstraints is the general resume upload rule: PDF, DOC, DOCX.
	DocumentConstraints = FileConstraints{
		AllowedMimeTypes: map[string]bool{
			"application/pdf":    true,
			"application/msword": true,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		},
		AllowedExtensions: map[string]bool{
			".pdf":  true,
			".doc":  true,
			".docx": true,
		},
		MaxSize: 5 << 20, // 5MB
	}
)

// ValidateFile checks a multipart upload against a constraint set. Both the
// declared content type and the file extension must be allowed.
func ValidateFile(header *multipart.FileHeader, constraints FileConstraints) error {
	if header.Size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return fmt.Errorf("file too large: maximum size is %d MB", maxMB)
	}

	mimeType := header.Header.Get("Content-Type")
	// Strip optional parameters like "; charset=..."
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if !constraints.AllowedMimeTypes[mimeType] {
		return fmt.Errorf("invalid file type: %s", mimeType)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return fmt.Errorf("invalid file extension: %s", ext)
	}

	return nil
}
