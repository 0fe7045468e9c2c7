// Package upload stores athlete photos under the configured upload
// directory. Only the sanitized base name is ever persisted or served.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxPhotoSize caps a photo submission. The original site accepted any size;
// the cap is a deliberate hardening step.
const MaxPhotoSize int64 = 10 << 20 // 10 MB

var allowedExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// SanitizeFilename reduces a client-supplied filename to a flat, safe base
// name: directories stripped, lowercased, spaces collapsed to underscores,
// anything outside [a-z0-9_-] removed, extension preserved. Returns "" when
// the extension is not an allowed image type.
func SanitizeFilename(name string) string {
	// client may send Windows separators or ../ segments
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))

	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExt[ext] {
		return ""
	}

	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Trim(unsafeChars.ReplaceAllString(base, ""), "_-")
	if base == "" {
		base = "photo"
	}
	return base + ext
}

// SavePhoto writes the uploaded file into dir under a sanitized name and
// returns that name for storage in the athlete row.
func SavePhoto(dir string, file multipart.File, header *multipart.FileHeader) (string, error) {
	name := SanitizeFilename(header.Filename)
	if name == "" {
		return "", fmt.Errorf("upload: unsupported file type %q", filepath.Ext(header.Filename))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("upload: prepare dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("upload: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("upload: write file: %w", err)
	}
	return name, nil
}
