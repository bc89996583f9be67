package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		size      int64
		accepted  bool
		reason    Reason
	}{
		{
			name:      "jpeg within limit",
			mediaType: "image/jpeg",
			size:      1024,
			accepted:  true,
		},
		{
			name:      "gif is part of the accept set",
			mediaType: "image/gif",
			size:      1024,
			accepted:  true,
		},
		{
			name:      "size exactly at the ceiling passes",
			mediaType: "image/png",
			size:      20 * 1024 * 1024,
			accepted:  true,
		},
		{
			name:      "one byte over the ceiling fails",
			mediaType: "image/png",
			size:      20*1024*1024 + 1,
			accepted:  false,
			reason:    ReasonTooLarge,
		},
		{
			name:      "25 MB png is too large",
			mediaType: "image/png",
			size:      25 * 1000 * 1000,
			accepted:  false,
			reason:    ReasonTooLarge,
		},
		{
			name:      "bmp is unsupported",
			mediaType: "image/bmp",
			size:      1024,
			accepted:  false,
			reason:    ReasonUnsupportedType,
		},
		{
			name:      "empty media type is unsupported",
			mediaType: "",
			size:      1024,
			accepted:  false,
			reason:    ReasonUnsupportedType,
		},
		{
			name:      "unsupported type wins over oversize",
			mediaType: "application/pdf",
			size:      30 * 1024 * 1024,
			accepted:  false,
			reason:    ReasonUnsupportedType,
		},
		{
			name:      "media type is case-insensitive",
			mediaType: "IMAGE/JPEG",
			size:      1024,
			accepted:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.mediaType, tt.size)
			if result.Accepted != tt.accepted {
				t.Errorf("Expected accepted=%v, got %v", tt.accepted, result.Accepted)
			}
			if !tt.accepted && result.Reason != tt.reason {
				t.Errorf("Expected reason %s, got %s", tt.reason, result.Reason)
			}
			if err := result.Err(); (err == nil) != tt.accepted {
				t.Errorf("Err() inconsistent with Accepted: %v", err)
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "leaf.jpg")
	if err := os.WriteFile(path, []byte("not really a jpeg"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if !result.Accepted {
		t.Errorf("Expected jpg file to be accepted, got reason %s", result.Reason)
	}
	if result.MediaType != "image/jpeg" {
		t.Errorf("Expected media type image/jpeg, got %s", result.MediaType)
	}

	if _, err := ValidateFile(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("text"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	result, err = ValidateFile(txt)
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if result.Accepted || result.Reason != ReasonUnsupportedType {
		t.Errorf("Expected unsupported-type for .txt, got %+v", result)
	}
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leaf.png")
	if err := os.WriteFile(path, []byte{0x89, 0x50, 0x4E, 0x47}, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	preview, err := Preview(path, "image/png")
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if !strings.HasPrefix(preview, "data:image/png;base64,") {
		t.Errorf("Expected data URL prefix, got %s", preview)
	}

	if _, err := Preview(filepath.Join(dir, "missing.png"), "image/png"); err == nil {
		t.Error("Expected error for missing file")
	}
}
