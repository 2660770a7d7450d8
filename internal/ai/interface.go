// interface.go - Inference client interface

package ai

import (
	"context"

	"github.com/spendlens/spendlens-backend/internal/common"
)

// RemoteFile is a handle to a file uploaded to the inference service. It is
// a scoped resource: whoever uploads it owns exactly one release.
type RemoteFile struct {
	Name     string
	URI      string
	MIMEType string
}

// Client is the inference service used by the parser, voice router and
// narrator. It is injected at construction time; a missing credential is a
// factory error, never a nil client checked at call sites.
type Client interface {
	// Name returns the provider name (e.g. "gemini")
	Name() string

	// GenerateText issues a single text-only inference call
	GenerateText(ctx context.Context, prompt string) (string, *common.TokenUsage, error)

	// GenerateWithFile issues a single inference call grounded on an
	// uploaded file (audio for the voice path)
	GenerateWithFile(ctx context.Context, prompt string, file *RemoteFile) (string, *common.TokenUsage, error)

	// UploadFile pushes a local file to the service as a file resource
	UploadFile(ctx context.Context, path, mimeType string) (*RemoteFile, error)

	// DeleteFile releases an uploaded file resource
	DeleteFile(ctx context.Context, file *RemoteFile) error
}
