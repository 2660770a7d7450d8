package processor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendlens/spendlens-backend/internal/model"
)

func TestAssessQuality_SparsePDFIsPoorButValid(t *testing.T) {
	// a nearly blank statement: three words, synthesized confidence at base
	res := newExtractionResult("Statement page 1", 40, 1)
	qa := AssessQuality(res, PDFThresholds())

	assert.True(t, qa.Valid, "poor extractions still proceed, only flagged")
	assert.Equal(t, model.TierPoor, qa.Tier)
	assert.NotEmpty(t, qa.Warnings)
	assert.True(t, strings.HasPrefix(qa.Warnings[0], "Very little text extracted"))
}

func TestAssessQuality_CleanExtractionIsGood(t *testing.T) {
	words := strings.Repeat("item 120.00 ", 20)
	res := newExtractionResult(strings.TrimSpace(words), 88, 1)
	qa := AssessQuality(res, PDFThresholds())

	assert.True(t, qa.Valid)
	assert.Equal(t, model.TierGood, qa.Tier)
	assert.Empty(t, qa.Warnings)
}

func TestAssessQuality_ModerateConfidenceIsFair(t *testing.T) {
	words := strings.Repeat("word ", 30)
	res := newExtractionResult(strings.TrimSpace(words), 55, 0)
	qa := AssessQuality(res, ImageThresholds())

	assert.Equal(t, model.TierFair, qa.Tier)
	assert.Len(t, qa.Warnings, 1)
	assert.Contains(t, qa.Warnings[0], "Moderate extraction confidence")
}

func TestAssessQuality_LowConfidenceWarning(t *testing.T) {
	words := strings.Repeat("word ", 30)
	res := newExtractionResult(strings.TrimSpace(words), 30, 0)
	qa := AssessQuality(res, ImageThresholds())

	assert.Equal(t, model.TierPoor, qa.Tier)
	assert.Contains(t, qa.Warnings[0], "Low extraction confidence (30%)")
}

func TestAssessQuality_FewWordsIsFair(t *testing.T) {
	res := newExtractionResult("FreshMart Milk 60.00 Bread 40.00 Total 100.00", 85, 0)
	qa := AssessQuality(res, ImageThresholds())

	// 8 words: above poor (5), below fair (10) for images
	assert.Equal(t, model.TierFair, qa.Tier)
	assert.Contains(t, qa.Warnings[0], "Fewer words than expected")
}

func TestAssessQuality_MultiPageWarning(t *testing.T) {
	words := strings.Repeat("line item 45.00 ", 20)
	res := newExtractionResult(strings.TrimSpace(words), 90, 3)
	qa := AssessQuality(res, PDFThresholds())

	assert.Equal(t, model.TierGood, qa.Tier)
	assert.Len(t, qa.Warnings, 1)
	assert.Contains(t, qa.Warnings[0], "Multi-page document (3 pages)")
}

func TestAssessQuality_EmptyExtractionIsInvalid(t *testing.T) {
	qa := AssessQuality(ExtractionResult{}, ImageThresholds())

	assert.False(t, qa.Valid)
	assert.Equal(t, model.TierPoor, qa.Tier)
}
