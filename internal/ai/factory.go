// factory.go - Inference client construction from configuration

package ai

import (
	"context"
	"log"

	"github.com/spendlens/spendlens-backend/configs"
)

// NewClientFromConfig builds the configured inference client. A missing
// credential fails here, so downstream components always hold a usable
// client and never re-check for one.
func NewClientFromConfig(ctx context.Context) (*GeminiClient, error) {
	log.Printf("Creating Gemini inference client (model: %s, voice model: %s)",
		configs.MODEL_NAME, configs.VOICE_MODEL_NAME)
	return NewGeminiClient(ctx,
		configs.GEMINI_API_KEY,
		configs.MODEL_NAME,
		configs.VOICE_MODEL_NAME,
		configs.GEMINI_RPM,
	)
}
