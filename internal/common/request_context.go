// request_context.go - Request tracking and logging

package common

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spendlens/spendlens-backend/configs"
)

// RequestContext tracks a single ingestion request: step timing and
// cumulative inference token spend.
type RequestContext struct {
	RequestID        string
	UserID           string
	StartTime        time.Time
	Steps            []StepLog
	TotalTokens      TokenUsage
	CurrentStep      string
	CurrentStepStart time.Time
}

// StepLog represents a single processing step
type StepLog struct {
	Name      string      `json:"name"`
	StartTime time.Time   `json:"start_time"`
	Duration  int64       `json:"duration_ms"`
	Status    string      `json:"status"` // "success", "failed", "skipped"
	Tokens    *TokenUsage `json:"tokens,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// TokenUsage tracks API token consumption
type TokenUsage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalTokens  int     `json:"total_tokens"`
	CostUSD      float64 `json:"cost_usd"`
	CostINR      float64 `json:"cost_inr"`
}

// NewRequestContext creates a new request tracking context
func NewRequestContext(userID string) *RequestContext {
	reqID := uuid.New().String()

	log.Printf("[%s] request started | user: %s", reqID, userID)

	return &RequestContext{
		RequestID: reqID,
		UserID:    userID,
		StartTime: time.Now(),
		Steps:     []StepLog{},
	}
}

// StartStep begins tracking a new processing step
func (rc *RequestContext) StartStep(stepName string) {
	rc.CurrentStep = stepName
	rc.CurrentStepStart = time.Now()
	log.Printf("[%s] -- %s", rc.RequestID, stepName)
}

// EndStep completes the current step and records timing
func (rc *RequestContext) EndStep(status string, tokens *TokenUsage, err error) {
	duration := time.Since(rc.CurrentStepStart).Milliseconds()

	stepLog := StepLog{
		Name:      rc.CurrentStep,
		StartTime: rc.CurrentStepStart,
		Duration:  duration,
		Status:    status,
		Tokens:    tokens,
	}

	if err != nil {
		stepLog.Error = err.Error()
		log.Printf("[%s] failed: %s (%.2fs) - %v", rc.RequestID, rc.CurrentStep, float64(duration)/1000, err)
	} else {
		msg := fmt.Sprintf("[%s] done: %s (%.2fs)", rc.RequestID, rc.CurrentStep, float64(duration)/1000)
		if tokens != nil {
			msg += fmt.Sprintf(" | tokens: %d in + %d out | cost: ₹%.2f",
				tokens.InputTokens, tokens.OutputTokens, tokens.CostINR)
		}
		log.Print(msg)
	}

	if tokens != nil {
		rc.AddTokens(tokens)
	}

	rc.Steps = append(rc.Steps, stepLog)
	rc.CurrentStep = ""
}

// AddTokens accumulates token usage from an inference call
func (rc *RequestContext) AddTokens(tokens *TokenUsage) {
	if tokens == nil {
		return
	}
	rc.TotalTokens.InputTokens += tokens.InputTokens
	rc.TotalTokens.OutputTokens += tokens.OutputTokens
	rc.TotalTokens.TotalTokens += tokens.TotalTokens
	rc.TotalTokens.CostUSD += tokens.CostUSD
	rc.TotalTokens.CostINR += tokens.CostINR
}

// CalculateTokenCost computes USD and INR cost from token counts
func CalculateTokenCost(inputTokens, outputTokens int) TokenUsage {
	inputCost := float64(inputTokens) * configs.GEMINI_INPUT_PRICE_PER_MILLION / 1_000_000
	outputCost := float64(outputTokens) * configs.GEMINI_OUTPUT_PRICE_PER_MILLION / 1_000_000
	costUSD := inputCost + outputCost

	return TokenUsage{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
		CostUSD:      costUSD,
		CostINR:      costUSD * configs.USD_TO_INR,
	}
}

// GetSummary returns a final summary of the entire request
func (rc *RequestContext) GetSummary() map[string]interface{} {
	totalDuration := time.Since(rc.StartTime).Milliseconds()

	stepBreakdown := make(map[string]int64)
	for _, step := range rc.Steps {
		stepBreakdown[step.Name] = step.Duration
	}

	summary := map[string]interface{}{
		"request_id":        rc.RequestID,
		"total_duration_ms": totalDuration,
		"step_breakdown":    stepBreakdown,
		"total_steps":       len(rc.Steps),
		"token_usage": map[string]interface{}{
			"input_tokens":  rc.TotalTokens.InputTokens,
			"output_tokens": rc.TotalTokens.OutputTokens,
			"total_tokens":  rc.TotalTokens.TotalTokens,
			"cost_usd":      fmt.Sprintf("$%.4f", rc.TotalTokens.CostUSD),
			"cost_inr":      fmt.Sprintf("₹%.2f", rc.TotalTokens.CostINR),
		},
	}

	log.Printf("[%s] summary | %.2fs | steps: %d | tokens: %d | cost: ₹%.2f",
		rc.RequestID, float64(totalDuration)/1000, len(rc.Steps),
		rc.TotalTokens.TotalTokens, rc.TotalTokens.CostINR)

	return summary
}

// LogInfo logs info-level message with request ID prefix
func (rc *RequestContext) LogInfo(format string, args ...interface{}) {
	log.Printf("[%s] %s", rc.RequestID, fmt.Sprintf(format, args...))
}

// LogWarning logs warning-level message with request ID prefix
func (rc *RequestContext) LogWarning(format string, args ...interface{}) {
	log.Printf("[%s] WARN: %s", rc.RequestID, fmt.Sprintf(format, args...))
}

// LogError logs error-level message with request ID prefix
func (rc *RequestContext) LogError(format string, args ...interface{}) {
	log.Printf("[%s] ERROR: %s", rc.RequestID, fmt.Sprintf(format, args...))
}
