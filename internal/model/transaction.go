// Package model holds the value objects produced by the ingestion pipeline.
// All types here are ephemeral: created once per request, never mutated,
// consumed by the caller and discarded.
package model

import "github.com/shopspring/decimal"

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Source records how a transaction entered the system.
type Source string

const (
	SourceScanned  Source = "scanned"
	SourceManual   Source = "manual"
	SourceInferred Source = "inferred"
)

// ConfidenceTier is a coarse classification of extraction trustworthiness.
type ConfidenceTier string

const (
	TierGood ConfidenceTier = "good"
	TierFair ConfidenceTier = "fair"
	TierPoor ConfidenceTier = "poor"
	// TierLow marks fallback-synthesized records.
	TierLow ConfidenceTier = "low"
)

// Provenance describes where a parsed transaction came from.
type Provenance struct {
	Source         Source         `json:"source"`
	ConfidenceTier ConfidenceTier `json:"confidence_tier"`
}

// ParsedTransaction is a single taxonomy-conformant financial record.
// Category is always a member of the taxonomy set matching Type.
type ParsedTransaction struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
	PaymentMethod string          `json:"payment_method"`
	Tags          []string        `json:"tags,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Provenance    Provenance      `json:"provenance"`
}

// ParsedReceipt aggregates the transactions extracted from one artifact.
type ParsedReceipt struct {
	MerchantName   string              `json:"merchant_name"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	Date           string              `json:"date"`
	Time           string              `json:"time"`
	PaymentMethod  string              `json:"payment_method"`
	Transactions   []ParsedTransaction `json:"transactions"`
	ConfidenceTier ConfidenceTier      `json:"confidence_tier"`
	Notes          string              `json:"notes,omitempty"`
}

// IntentUnknown is the routed intent when a voice query cannot be mapped
// to any catalogued action.
const IntentUnknown = "unknown"

// VoiceIntentResult is the outcome of routing a spoken query.
type VoiceIntentResult struct {
	Transcription string                 `json:"transcription"`
	Confidence    float64                `json:"confidence"`
	Intent        string                 `json:"intent"`
	Endpoint      string                 `json:"endpoint"`
	Method        string                 `json:"method"`
	Parameters    map[string]interface{} `json:"parameters"`
	NaturalQuery  string                 `json:"natural_query"`
	RequiresAuth  bool                   `json:"requires_auth"`
}
