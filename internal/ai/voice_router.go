// voice_router.go - Routing spoken queries to catalogued application actions

package ai

import (
	"context"
	"strings"
	"time"

	"github.com/spendlens/spendlens-backend/internal/actions"
	"github.com/spendlens/spendlens-backend/internal/common"
	"github.com/spendlens/spendlens-backend/internal/model"
)

// VoiceRouter uploads a validated recording to the inference service and
// routes it against the action catalogue. Routing failures degrade to an
// explicit unknown intent; they are never surfaced as errors.
type VoiceRouter struct {
	client      Client
	catalogJSON string
}

// NewVoiceRouter binds an inference client and the read-only catalogue.
func NewVoiceRouter(client Client, catalog *actions.Catalog) *VoiceRouter {
	return &VoiceRouter{
		client:      client,
		catalogJSON: catalog.PromptJSON(),
	}
}

// rawVoiceResult mirrors the JSON shape demanded by the voice prompt.
type rawVoiceResult struct {
	Transcription string                 `json:"transcription"`
	Confidence    float64                `json:"confidence"`
	Intent        string                 `json:"intent"`
	Endpoint      string                 `json:"endpoint"`
	Method        string                 `json:"method"`
	Parameters    map[string]interface{} `json:"parameters"`
	NaturalQuery  string                 `json:"natural_query"`
	RequiresAuth  bool                   `json:"requires_auth"`
}

// Route transcribes and routes a recording. The uploaded remote file is a
// scoped resource: it is released exactly once on every exit path after a
// successful upload, including the success path.
func (r *VoiceRouter) Route(ctx context.Context, audioPath, mimeType string, reqCtx *common.RequestContext) *model.VoiceIntentResult {
	file, err := r.client.UploadFile(ctx, audioPath, mimeType)
	if err != nil {
		if reqCtx != nil {
			reqCtx.LogError("voice upload failed: %v", err)
		}
		return unknownIntent("")
	}
	defer func() {
		// the release must survive caller cancellation, so it runs on a
		// short detached context rather than the request's
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if derr := r.client.DeleteFile(cleanupCtx, file); derr != nil && reqCtx != nil {
			reqCtx.LogWarning("failed to release uploaded audio %s: %v", file.Name, derr)
		}
	}()

	response, usage, err := r.client.GenerateWithFile(ctx, BuildVoicePrompt(r.catalogJSON), file)
	if reqCtx != nil {
		reqCtx.AddTokens(usage)
	}
	if err != nil {
		if reqCtx != nil {
			reqCtx.LogError("voice inference failed: %v", err)
		}
		return unknownIntent("")
	}

	var raw rawVoiceResult
	if err := ParseWithRecovery(response, &raw); err != nil {
		if reqCtx != nil {
			reqCtx.LogWarning("voice response unparseable: %v", err)
		}
		return unknownIntent("")
	}

	// a usable routing needs at minimum a transcription and a target action
	if strings.TrimSpace(raw.Transcription) == "" || strings.TrimSpace(raw.Intent) == "" || raw.Endpoint == "" {
		return unknownIntent(raw.Transcription)
	}

	method := strings.ToUpper(strings.TrimSpace(raw.Method))
	switch method {
	case "GET", "POST", "PUT", "DELETE":
	default:
		method = "GET"
	}

	params := raw.Parameters
	if params == nil {
		params = map[string]interface{}{}
	}

	return &model.VoiceIntentResult{
		Transcription: raw.Transcription,
		Confidence:    raw.Confidence,
		Intent:        raw.Intent,
		Endpoint:      raw.Endpoint,
		Method:        method,
		Parameters:    params,
		NaturalQuery:  raw.NaturalQuery,
		RequiresAuth:  raw.RequiresAuth,
	}
}

func unknownIntent(transcription string) *model.VoiceIntentResult {
	return &model.VoiceIntentResult{
		Transcription: transcription,
		Intent:        model.IntentUnknown,
		Parameters:    map[string]interface{}{},
	}
}
