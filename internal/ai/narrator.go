// narrator.go - Natural-language narration of structured API results

package ai

import (
	"context"
	"encoding/json"

	"github.com/spendlens/spendlens-backend/internal/common"
)

// FallbackReply is returned whenever narration fails; the voice path must
// never show a raw error to the user.
const FallbackReply = "Sorry, I couldn't put together an answer for that right now. Please check the app for the details."

// Narrator converts a structured API result into a short conversational
// sentence for voice replies.
type Narrator struct {
	client Client
}

// NewNarrator returns a narrator bound to an inference client.
func NewNarrator(client Client) *Narrator {
	return &Narrator{client: client}
}

// Narrate produces a 2-4 sentence spoken answer. Any failure degrades to
// the static fallback sentence.
func (n *Narrator) Narrate(ctx context.Context, intent, query string, result interface{}, reqCtx *common.RequestContext) string {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return FallbackReply
	}

	reply, usage, err := n.client.GenerateText(ctx, BuildNarratorPrompt(intent, query, string(resultJSON)))
	if reqCtx != nil {
		reqCtx.AddTokens(usage)
	}
	if err != nil || reply == "" {
		if err != nil && reqCtx != nil {
			reqCtx.LogWarning("narration failed: %v", err)
		}
		return FallbackReply
	}

	return StripCodeFence(reply)
}
