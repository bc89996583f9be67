// Package validate enforces the upload constraints on candidate leaf
// images before a diagnostic session may submit them.
package validate

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxBytes is the upload size ceiling. The bound is inclusive: a file of
// exactly MaxBytes passes.
const MaxBytes = 20 * 1024 * 1024

// Reason explains why a submission was rejected.
type Reason string

const (
	ReasonUnsupportedType Reason = "unsupported-type"
	ReasonTooLarge        Reason = "too-large"
)

// acceptedTypes matches the upload workflow's accept set. GIF is included
// even though the user-facing format hints only list JPG/PNG/WEBP/HEIC.
var acceptedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
	"image/gif":  true,
}

var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
	".gif":  "image/gif",
}

// Result is the outcome of validating one candidate image.
type Result struct {
	Accepted  bool
	MediaType string
	Size      int64
	Reason    Reason
}

// Err renders the rejection as a user-facing error, nil when accepted.
func (r Result) Err() error {
	if r.Accepted {
		return nil
	}
	switch r.Reason {
	case ReasonTooLarge:
		return fmt.Errorf("image exceeds the 20 MB limit (%d bytes)", r.Size)
	default:
		return fmt.Errorf("unsupported image type %q (accepted: JPG, PNG, WEBP, HEIC, GIF)", r.MediaType)
	}
}

// Validate checks a declared media type and byte size against the upload
// constraints. It is synchronous, total, and idempotent: every input maps
// to exactly one of accepted, unsupported-type, or too-large.
func Validate(mediaType string, size int64) Result {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if !acceptedTypes[mediaType] {
		return Result{MediaType: mediaType, Size: size, Reason: ReasonUnsupportedType}
	}
	if size > MaxBytes {
		return Result{MediaType: mediaType, Size: size, Reason: ReasonTooLarge}
	}
	return Result{Accepted: true, MediaType: mediaType, Size: size}
}

// ValidateFile validates an image on disk, inferring the media type from
// the file extension.
func ValidateFile(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat image: %w", err)
	}
	mediaType := extensionTypes[strings.ToLower(filepath.Ext(path))]
	return Validate(mediaType, info.Size()), nil
}

// Preview reads an accepted image and renders it as a base64 data URL for
// local display. Preview failures are soft: callers keep going with an
// empty preview.
func Preview(path, mediaType string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image for preview: %w", err)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
