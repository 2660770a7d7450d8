// validator.go - Upload validation before any processing happens

package processor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spendlens/spendlens-backend/configs"
)

// ErrInvalidInput marks uploads rejected before processing. The pipeline
// does not proceed past a validation failure.
var ErrInvalidInput = errors.New("invalid input")

// ArtifactKind identifies which extraction path an upload takes.
type ArtifactKind string

const (
	KindImage ArtifactKind = "image"
	KindPDF   ArtifactKind = "pdf"
	KindAudio ArtifactKind = "audio"
)

var extensionKinds = map[string]ArtifactKind{
	".jpg":  KindImage,
	".jpeg": KindImage,
	".png":  KindImage,
	".webp": KindImage,
	".heic": KindImage,
	".pdf":  KindPDF,
	".m4a":  KindAudio,
	".mp3":  KindAudio,
	".wav":  KindAudio,
	".aac":  KindAudio,
	".ogg":  KindAudio,
}

func sizeCeiling(kind ArtifactKind) int64 {
	switch kind {
	case KindPDF:
		return int64(configs.MAX_PDF_MB) << 20
	case KindAudio:
		return int64(configs.MAX_AUDIO_MB) << 20
	default:
		return int64(configs.MAX_IMAGE_MB) << 20
	}
}

// ValidateUpload checks an uploaded artifact against extension, declared
// MIME type and per-type size ceilings. Pure check against filesystem
// metadata; size may be passed in (<=0 means stat the file).
func ValidateUpload(path, declaredMIME string, size int64) (ArtifactKind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, ok := extensionKinds[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported file type %q", ErrInvalidInput, ext)
	}

	if declaredMIME != "" && !mimeMatchesKind(declaredMIME, kind) {
		return "", fmt.Errorf("%w: declared type %q does not match %s upload", ErrInvalidInput, declaredMIME, kind)
	}

	if size <= 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("%w: cannot stat upload: %v", ErrInvalidInput, err)
		}
		size = info.Size()
	}
	if size == 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if max := sizeCeiling(kind); size > max {
		return "", fmt.Errorf("%w: %s exceeds %dMB limit (%.2fMB)",
			ErrInvalidInput, kind, max>>20, float64(size)/(1<<20))
	}

	return kind, nil
}

func mimeMatchesKind(mimeType string, kind ArtifactKind) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	// multipart uploads from mobile clients often arrive as octet-stream
	if mimeType == "application/octet-stream" {
		return true
	}
	switch kind {
	case KindImage:
		return strings.HasPrefix(mimeType, "image/")
	case KindPDF:
		return mimeType == "application/pdf"
	case KindAudio:
		return strings.HasPrefix(mimeType, "audio/") || mimeType == "video/mp4"
	}
	return false
}
