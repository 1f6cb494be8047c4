package files

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"sampark/infrastructure/apperrors"
)

// ParseMultipart parses a multipart body capped at maxBytes.
func ParseMultipart(r *http.Request, maxBytes int64) error {
	ct := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return apperrors.Validation("request must be multipart/form-data")
	}
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return apperrors.Validation("invalid multipart body: %v", err)
	}
	return nil
}

// ReadUpload reads the named file field. When imageOnly is set anything
// that does not sniff as an image is rejected.
func ReadUpload(r *http.Request, field string, maxBytes int64, imageOnly bool) (Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return Upload{}, apperrors.Validation("%s is required", field)
		}
		return Upload{}, apperrors.Validation("read %s: %v", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Upload{}, apperrors.Validation("%s is empty", field)
	}
	if int64(len(data)) > maxBytes {
		return Upload{}, apperrors.Validation("%s must be %dMB or less", field, maxBytes>>20)
	}

	mimeType := strings.TrimSpace(header.Header.Get("Content-Type"))
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if imageOnly && !strings.HasPrefix(mimeType, "image/") {
		return Upload{}, apperrors.Validation("%s must be an image file", field)
	}

	fileName := strings.TrimSpace(header.Filename)
	if fileName == "" {
		ext := ""
		if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
			ext = exts[0]
		}
		fileName = field + ext
	} else {
		fileName = filepath.Base(fileName)
	}

	return Upload{Data: data, MIMEType: mimeType, FileName: fileName}, nil
}
