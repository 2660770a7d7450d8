// fallback.go - Deterministic single-transaction synthesis when parsing fails

package processor

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendlens/spendlens-backend/internal/model"
	"github.com/spendlens/spendlens-backend/internal/taxonomy"
)

// Amount patterns tried in order; the first match wins. Rupee-prefixed
// forms outrank a bare decimal so "Qty 2 ... ₹80.00" pulls the amount,
// not the quantity.
var fallbackAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)rs\.?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)inr\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`\b([0-9]+\.[0-9]{2})\b`),
}

const fallbackDescriptionLimit = 100

// ExtractAmount pulls the first currency amount from raw text, or zero
// when nothing matches.
func ExtractAmount(rawText string) decimal.Decimal {
	for _, re := range fallbackAmountPatterns {
		if m := re.FindStringSubmatch(rawText); m != nil {
			cleaned := strings.ReplaceAll(m[1], ",", "")
			if amount, err := decimal.NewFromString(cleaned); err == nil {
				return amount
			}
		}
	}
	return decimal.Zero
}

// SynthesizeFallback produces exactly one well-formed transaction from raw
// text. Used only when the structured parser fails outright; it guarantees
// the pipeline never returns nothing.
func SynthesizeFallback(rawText string) model.ParsedTransaction {
	description := strings.TrimSpace(rawText)
	if runes := []rune(description); len(runes) > fallbackDescriptionLimit {
		description = string(runes[:fallbackDescriptionLimit])
	}

	meta := taxonomy.MetadataFor(taxonomy.Other)

	return model.ParsedTransaction{
		Name:        "Scanned transaction",
		Description: description,
		Amount:      ExtractAmount(rawText),
		Type:        model.TypeExpense,
		Category:    taxonomy.Other,
		Icon:        meta.Icon,
		Color:       meta.Color,
		Provenance: model.Provenance{
			Source:         model.SourceScanned,
			ConfidenceTier: model.TierLow,
		},
	}
}

// FallbackReceipt wraps the synthesized transaction in a receipt aggregate
// so callers get the same shape on both paths.
func FallbackReceipt(rawText string) model.ParsedReceipt {
	tx := SynthesizeFallback(rawText)
	return model.ParsedReceipt{
		TotalAmount:    tx.Amount,
		Transactions:   []model.ParsedTransaction{tx},
		ConfidenceTier: model.TierLow,
		Notes:          "Synthesized from raw text after structured parsing failed",
	}
}
