package validation

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{contentType},
		},
	}
}

func TestValidateFilePDF(t *testing.T) {
	err := ValidateFile(fileHeader("cv.pdf", "application/pdf", 1024), PDFConstraints)
	assert.NoError(t, err)
}

func TestValidateFileTooLarge(t *testing.T) {
	err := ValidateFile(fileHeader("cv.pdf", "application/pdf", 6<<20), PDFConstraints)
	assert.ErrorContains(t, err, "file too large")
}

func TestValidateFileRejectsWrongType(t *testing.T) {
	err := ValidateFile(fileHeader("cv.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 1024), PDFConstraints)
	assert.ErrorContains(t, err, "invalid file type")
}

func TestValidateFileRejectsMismatchedExtension(t *testing.T) {
	err := ValidateFile(fileHeader("cv.exe", "application/pdf", 1024), PDFConstraints)
	assert.ErrorContains(t, err, "invalid file extension")
}

func TestValidateFileStripsContentTypeParams(t *testing.T) {
	err := ValidateFile(fileHeader("cv.pdf", "application/pdf; charset=binary", 1024), PDFConstraints)
	assert.NoError(t, err)
}

func TestValidateFileDocumentConstraints(t *testing.T) {
	assert.NoError(t, ValidateFile(fileHeader("cv.doc", "application/msword", 1024), DocumentConstraints))
	assert.NoError(t, ValidateFile(fileHeader("cv.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 1024), DocumentConstraints))
	assert.Error(t, ValidateFile(fileHeader("cv.txt", "text/plain", 1024), DocumentConstraints))
}
