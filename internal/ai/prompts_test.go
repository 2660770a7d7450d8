package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendlens/spendlens-backend/internal/actions"
)

func TestBuildReceiptPrompt(t *testing.T) {
	prompt := BuildReceiptPrompt("FreshMart Milk 60.00")

	assert.Contains(t, prompt, "FreshMart Milk 60.00")
	assert.Contains(t, prompt, `"Groceries"`, "closed category lists are embedded")
	assert.Contains(t, prompt, `"merchant_name"`)
	assert.Contains(t, prompt, "Never invent a category")
}

func TestBuildVoicePrompt(t *testing.T) {
	prompt := BuildVoicePrompt(actions.Default().PromptJSON())

	assert.Contains(t, prompt, "get_balance")
	assert.Contains(t, prompt, `"transcription"`)
	assert.Contains(t, prompt, `use intent "unknown"`)
}

func TestBuildNarratorPrompt(t *testing.T) {
	prompt := BuildNarratorPrompt("get_balance", "what's my balance", `{"balance": 12450}`)

	assert.Contains(t, prompt, "what's my balance")
	assert.Contains(t, prompt, `{"balance": 12450}`)
	assert.Contains(t, prompt, "rupees")
}
