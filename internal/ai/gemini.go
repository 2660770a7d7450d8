// gemini.go - Gemini implementation of the inference client

package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/spendlens/spendlens-backend/internal/common"
)

// GeminiClient wraps the Gemini API behind the Client interface. Calls are
// single-shot (the surrounding HTTP layer owns retry policy) and pass
// through a client-side RPM limiter so bursts don't trip the quota.
type GeminiClient struct {
	client     *genai.Client
	model      string
	voiceModel string
	limiter    *rate.Limiter
}

// NewGeminiClient connects to Gemini. A missing API key fails here, at
// construction time.
func NewGeminiClient(ctx context.Context, apiKey, model, voiceModel string, rpm int) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	if rpm <= 0 {
		rpm = 12
	}
	return &GeminiClient{
		client:     client,
		model:      model,
		voiceModel: voiceModel,
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}, nil
}

// Name returns the provider name
func (g *GeminiClient) Name() string { return "gemini" }

// Close releases the underlying connection
func (g *GeminiClient) Close() error { return g.client.Close() }

func (g *GeminiClient) generate(ctx context.Context, modelName string, parts ...genai.Part) (string, *common.TokenUsage, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", nil, err
	}

	model := g.client.GenerativeModel(modelName)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", nil, categorizeAPIError(err)
	}

	text := responseText(resp)
	if text == "" {
		return "", nil, errors.New("gemini: empty response")
	}

	var usage *common.TokenUsage
	if resp.UsageMetadata != nil {
		u := common.CalculateTokenCost(
			int(resp.UsageMetadata.PromptTokenCount),
			int(resp.UsageMetadata.CandidatesTokenCount),
		)
		usage = &u
	}
	return text, usage, nil
}

// GenerateText issues a single text-only inference call
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, *common.TokenUsage, error) {
	return g.generate(ctx, g.model, genai.Text(prompt))
}

// GenerateWithFile issues a single inference call grounded on an uploaded file
func (g *GeminiClient) GenerateWithFile(ctx context.Context, prompt string, file *RemoteFile) (string, *common.TokenUsage, error) {
	return g.generate(ctx, g.voiceModel,
		genai.Text(prompt),
		genai.FileData{MIMEType: file.MIMEType, URI: file.URI},
	)
}

// UploadFile pushes a local file to the Gemini files API
func (g *GeminiClient) UploadFile(ctx context.Context, path, mimeType string) (*RemoteFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to open upload: %w", err)
	}
	defer f.Close()

	uploaded, err := g.client.UploadFile(ctx, "", f, &genai.UploadFileOptions{MIMEType: mimeType})
	if err != nil {
		return nil, categorizeAPIError(err)
	}
	return &RemoteFile{
		Name:     uploaded.Name,
		URI:      uploaded.URI,
		MIMEType: uploaded.MIMEType,
	}, nil
}

// DeleteFile releases an uploaded file resource
func (g *GeminiClient) DeleteFile(ctx context.Context, file *RemoteFile) error {
	if err := g.client.DeleteFile(ctx, file.Name); err != nil {
		return categorizeAPIError(err)
	}
	return nil
}

// responseText concatenates the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
