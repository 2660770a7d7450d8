package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendlens/spendlens-backend/internal/model"
)

func TestNormalize_MembersPassThrough(t *testing.T) {
	for _, c := range ExpenseCategories {
		got, ok := Normalize(c, model.TypeExpense)
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	for _, c := range IncomeCategories {
		got, ok := Normalize(c, model.TypeIncome)
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
}

func TestNormalize_CoercesUnknownToOther(t *testing.T) {
	tests := []struct {
		category string
		txType   model.TransactionType
	}{
		{"Subscription", model.TypeExpense},
		{"Crypto Gains", model.TypeIncome},
		{"food & dining", model.TypeExpense}, // case matters, members are exact
		{"", model.TypeExpense},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.category, tt.txType)
		assert.False(t, ok, "category %q should be coerced", tt.category)
		assert.Equal(t, Other, got)
	}
}

func TestNormalize_SetsAreTypeScoped(t *testing.T) {
	// Salary is income-only; as an expense it must coerce
	got, ok := Normalize("Salary", model.TypeExpense)
	assert.False(t, ok)
	assert.Equal(t, Other, got)
}

func TestNormalize_Idempotent(t *testing.T) {
	first, _ := Normalize("Netflix Subscription", model.TypeExpense)
	second, ok := Normalize(first, model.TypeExpense)
	assert.True(t, ok)
	assert.Equal(t, first, second)
}

func TestOtherBelongsToBothSets(t *testing.T) {
	assert.True(t, IsMember(Other, model.TypeIncome))
	assert.True(t, IsMember(Other, model.TypeExpense))
}

func TestMetadataFor_UnknownGetsOtherMetadata(t *testing.T) {
	assert.Equal(t, MetadataFor(Other), MetadataFor("no such category"))
}

func TestMetadataFor_EveryCategoryHasMetadata(t *testing.T) {
	for _, c := range append(append([]string{}, IncomeCategories...), ExpenseCategories...) {
		m := MetadataFor(c)
		assert.NotEmpty(t, m.Icon, "missing icon for %q", c)
		assert.NotEmpty(t, m.Color, "missing colour for %q", c)
	}
}

func TestPromptBlock_ListsBothSets(t *testing.T) {
	block := PromptBlock()
	assert.Contains(t, block, `"Food & Dining"`)
	assert.Contains(t, block, `"Salary"`)
	assert.Contains(t, block, "Never invent a category")
	assert.NotContains(t, block, "Subscription")
}
