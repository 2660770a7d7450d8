package processor

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens-backend/internal/model"
	"github.com/spendlens/spendlens-backend/internal/taxonomy"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"rupee symbol", "Grand Total ₹1,234.50", "1234.5"},
		{"rs prefix", "total due Rs. 450", "450"},
		{"rs without dot", "rs 99", "99"},
		{"inr prefix", "Amount INR 1,250.50", "1250.5"},
		{"bare decimal", "you paid 99.95 today", "99.95"},
		{"rupee beats bare decimal", "Qty 2.00 units ₹80.00", "80"},
		{"no amount", "thank you for shopping", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tt.expected)
			require.NoError(t, err)
			assert.True(t, ExtractAmount(tt.text).Equal(expected),
				"got %s, want %s", ExtractAmount(tt.text), expected)
		})
	}
}

func TestSynthesizeFallback(t *testing.T) {
	tx := SynthesizeFallback("total due Rs. 450")

	assert.Equal(t, "Scanned transaction", tx.Name)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.Equal(t, taxonomy.Other, tx.Category)
	assert.Equal(t, model.SourceScanned, tx.Provenance.Source)
	assert.Equal(t, model.TierLow, tx.Provenance.ConfidenceTier)
	assert.NotEmpty(t, tx.Icon)
	assert.NotEmpty(t, tx.Color)
}

func TestSynthesizeFallback_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("₹", 300)
	tx := SynthesizeFallback(long)

	assert.Equal(t, 100, len([]rune(tx.Description)))
}

func TestSynthesizeFallback_NoAmountYieldsZero(t *testing.T) {
	tx := SynthesizeFallback("illegible smudge")
	assert.True(t, tx.Amount.IsZero())
}

func TestFallbackReceipt(t *testing.T) {
	receipt := FallbackReceipt("total due Rs. 450")

	require.Len(t, receipt.Transactions, 1)
	assert.True(t, receipt.TotalAmount.Equal(receipt.Transactions[0].Amount))
	assert.Equal(t, model.TierLow, receipt.ConfidenceTier)
	assert.NotEmpty(t, receipt.Notes)
}
