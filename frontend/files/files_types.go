package files

import (
	infrafiles "sampark/infrastructure/files"
)

// UploadResult is the body returned by POST /api/files.
type UploadResult struct {
	FileURL string `json:"file_url"`
}

// ExtractRequest is the body of POST /api/files/extract.
type ExtractRequest struct {
	FileURL    string            `json:"file_url"`
	JSONSchema infrafiles.Schema `json:"json_schema"`
}

// Upload is a file read from a multipart request.
type Upload struct {
	Data     []byte
	MIMEType string
	FileName string
}
