package files

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"sampark/frontend/shared/respond"
	infrafiles "sampark/infrastructure/files"
)

// UploadCommandHandler serves POST /api/files with a multipart "file" field.
func UploadCommandHandler(blobs *infrafiles.Blobs, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))
		if err := ParseMultipart(r, maxBytes); err != nil {
			respond.Error(w, r, err)
			return
		}
		up, err := ReadUpload(r, "file", maxBytes, false)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		blob, err := blobs.Put(up.FileName, up.MIMEType, up.Data)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, UploadResult{FileURL: infrafiles.URL(blob.Key)})
	}
}

// inlineTypes are the uploaded types rendered in the browser. Everything else,
// including SVG, is downloaded.
var inlineTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// ServeQueryHandler serves GET /api/files/{key}.
func ServeQueryHandler(blobs *infrafiles.Blobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blob, err := blobs.Get(chi.URLParam(r, "key"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		if inlineTypes[strings.ToLower(blob.MIMEType)] {
			w.Header().Set("Content-Type", blob.MIMEType)
		} else {
			respond.Attachment(w, "application/octet-stream", blob.FileName)
		}
		w.Header().Set("Content-Security-Policy", "sandbox")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
		w.Header().Set("Cache-Control", "private, max-age=31536000, immutable")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(blob.Data)
	}
}

// ExtractCommandHandler serves POST /api/files/extract. Extraction problems
// are reported in the body with status "error", not as HTTP errors.
func ExtractCommandHandler(blobs *infrafiles.Blobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExtractRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, Extract(blobs, req))
	}
}

// Extract resolves req.FileURL and runs the extractor over it.
func Extract(blobs *infrafiles.Blobs, req ExtractRequest) infrafiles.ExtractResult {
	key, err := infrafiles.KeyFromURL(req.FileURL)
	if err != nil {
		return infrafiles.ExtractResult{Status: infrafiles.StatusError, Details: err.Error()}
	}
	blob, err := blobs.Get(key)
	if err != nil {
		return infrafiles.ExtractResult{Status: infrafiles.StatusError, Details: err.Error()}
	}
	return infrafiles.Extract(blob, req.JSONSchema)
}
