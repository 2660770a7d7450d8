package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendlens/spendlens-backend/internal/common"
)

func TestNarrator_NarratesResult(t *testing.T) {
	client := &stubClient{
		generateTextFn: func(ctx context.Context, prompt string) (string, *common.TokenUsage, error) {
			assert.Contains(t, prompt, `"balance"`)
			return "Your balance is ₹12,450. You're doing fine this month.", &common.TokenUsage{TotalTokens: 40}, nil
		},
	}
	narrator := NewNarrator(client)

	reqCtx := common.NewRequestContext("u1")
	reply := narrator.Narrate(context.Background(), "get_balance", "what's my balance",
		map[string]interface{}{"balance": 12450}, reqCtx)

	assert.Contains(t, reply, "12,450")
	assert.Equal(t, 40, reqCtx.TotalTokens.TotalTokens)
}

func TestNarrator_ServiceFailureFallsBack(t *testing.T) {
	client := &stubClient{
		generateTextFn: func(context.Context, string) (string, *common.TokenUsage, error) {
			return "", nil, errors.New("500 internal error")
		},
	}
	narrator := NewNarrator(client)

	reply := narrator.Narrate(context.Background(), "get_balance", "what's my balance", map[string]interface{}{}, nil)

	assert.Equal(t, FallbackReply, reply)
	assert.Equal(t, 1, client.textCalls, "single shot, no retry")
}

func TestNarrator_EmptyReplyFallsBack(t *testing.T) {
	client := &stubClient{
		generateTextFn: func(context.Context, string) (string, *common.TokenUsage, error) {
			return "", nil, nil
		},
	}
	narrator := NewNarrator(client)

	reply := narrator.Narrate(context.Background(), "list_goals", "how are my goals", []string{}, nil)
	assert.Equal(t, FallbackReply, reply)
}

func TestNarrator_UnmarshalableResultFallsBack(t *testing.T) {
	client := &stubClient{}
	narrator := NewNarrator(client)

	reply := narrator.Narrate(context.Background(), "get_balance", "", map[string]interface{}{"bad": func() {}}, nil)

	assert.Equal(t, FallbackReply, reply)
	assert.Zero(t, client.textCalls)
}

func TestNarrator_StripsCodeFence(t *testing.T) {
	client := &stubClient{
		generateTextFn: func(context.Context, string) (string, *common.TokenUsage, error) {
			return "```\nYou spent ₹3,200 this week.\n```", nil, nil
		},
	}
	narrator := NewNarrator(client)

	reply := narrator.Narrate(context.Background(), "spending_summary", "weekly spend", map[string]interface{}{}, nil)
	assert.Equal(t, "You spent ₹3,200 this week.", reply)
}
