package files

import (
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"

	"sampark/infrastructure/apperrors"
)

// URLPrefix is where stored blobs are served from.
const URLPrefix = "/api/files/"

// Blob is an uploaded file held in memory.
type Blob struct {
	Key        string
	FileName   string
	MIMEType   string
	Data       []byte
	UploadedAt time.Time
}

// Blobs keeps uploads in process memory keyed by their BLAKE2b-256 hash, so
// identical uploads share one key. Nothing is written to disk.
type Blobs struct {
	mu    sync.RWMutex
	blobs map[string]Blob
	now   func() time.Time
}

func NewBlobs() *Blobs {
	return &Blobs{blobs: make(map[string]Blob), now: time.Now}
}

// Put stores data and returns its key.
func (b *Blobs) Put(fileName, mimeType string, data []byte) (Blob, error) {
	if len(data) == 0 {
		return Blob{}, apperrors.Validation("file is empty")
	}
	sum := blake2b.Sum256(data)
	key := hex.EncodeToString(sum[:])

	b.mu.Lock()
	defer b.mu.Unlock()
	if existing, ok := b.blobs[key]; ok {
		return existing, nil
	}
	blob := Blob{
		Key:        key,
		FileName:   fileName,
		MIMEType:   mimeType,
		Data:       append([]byte(nil), data...),
		UploadedAt: b.now(),
	}
	b.blobs[key] = blob
	return blob, nil
}

// Get returns the blob stored under key.
func (b *Blobs) Get(key string) (Blob, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	blob, ok := b.blobs[key]
	if !ok {
		return Blob{}, fmt.Errorf("file %q: %w", key, apperrors.ErrNotFound)
	}
	return blob, nil
}

// URL returns the public URL of a key.
func URL(key string) string {
	return URLPrefix + key
}

// KeyFromURL extracts the key from a URL produced by URL. Absolute URLs are
// accepted as long as their path carries the prefix.
func KeyFromURL(fileURL string) (string, error) {
	idx := strings.Index(fileURL, URLPrefix)
	if idx < 0 {
		return "", apperrors.Validation("file_url %q was not issued by this server", fileURL)
	}
	key := fileURL[idx+len(URLPrefix):]
	if q := strings.IndexAny(key, "?#"); q >= 0 {
		key = key[:q]
	}
	if key == "" {
		return "", apperrors.Validation("file_url %q has no key", fileURL)
	}
	return key, nil
}
