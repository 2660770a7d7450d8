package ai

import (
	"context"
	"errors"

	"github.com/spendlens/spendlens-backend/internal/common"
)

// stubClient is a scriptable Client for tests. Nil function fields fail the
// call, so each test only wires the paths it expects to be hit.
type stubClient struct {
	generateTextFn     func(ctx context.Context, prompt string) (string, *common.TokenUsage, error)
	generateWithFileFn func(ctx context.Context, prompt string, file *RemoteFile) (string, *common.TokenUsage, error)
	uploadFn           func(ctx context.Context, path, mimeType string) (*RemoteFile, error)
	deleteFn           func(ctx context.Context, file *RemoteFile) error

	textCalls   int
	fileCalls   int
	uploadCalls int
	deleteCalls int
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) GenerateText(ctx context.Context, prompt string) (string, *common.TokenUsage, error) {
	s.textCalls++
	if s.generateTextFn == nil {
		return "", nil, errors.New("unexpected GenerateText call")
	}
	return s.generateTextFn(ctx, prompt)
}

func (s *stubClient) GenerateWithFile(ctx context.Context, prompt string, file *RemoteFile) (string, *common.TokenUsage, error) {
	s.fileCalls++
	if s.generateWithFileFn == nil {
		return "", nil, errors.New("unexpected GenerateWithFile call")
	}
	return s.generateWithFileFn(ctx, prompt, file)
}

func (s *stubClient) UploadFile(ctx context.Context, path, mimeType string) (*RemoteFile, error) {
	s.uploadCalls++
	if s.uploadFn == nil {
		return nil, errors.New("unexpected UploadFile call")
	}
	return s.uploadFn(ctx, path, mimeType)
}

func (s *stubClient) DeleteFile(ctx context.Context, file *RemoteFile) error {
	s.deleteCalls++
	if s.deleteFn == nil {
		return errors.New("unexpected DeleteFile call")
	}
	return s.deleteFn(ctx, file)
}
