// quality.go - Extraction quality gate

package processor

import (
	"fmt"

	"github.com/spendlens/spendlens-backend/configs"
	"github.com/spendlens/spendlens-backend/internal/model"
)

// Thresholds are the numeric cutoffs for quality tiers. Images and PDFs
// share the rule shape with slightly different numbers, since PDF text
// layers tend to be denser than OCR output.
type Thresholds struct {
	PoorConfidence int
	FairConfidence int
	PoorWords      int
	FairWords      int
}

// ImageThresholds returns the configured cutoffs for OCR extractions.
func ImageThresholds() Thresholds {
	return Thresholds{
		PoorConfidence: configs.IMAGE_POOR_CONFIDENCE,
		FairConfidence: configs.IMAGE_FAIR_CONFIDENCE,
		PoorWords:      configs.IMAGE_POOR_WORDS,
		FairWords:      configs.IMAGE_FAIR_WORDS,
	}
}

// PDFThresholds returns the configured cutoffs for document extractions.
func PDFThresholds() Thresholds {
	return Thresholds{
		PoorConfidence: configs.PDF_POOR_CONFIDENCE,
		FairConfidence: configs.PDF_FAIR_CONFIDENCE,
		PoorWords:      configs.PDF_POOR_WORDS,
		FairWords:      configs.PDF_FAIR_WORDS,
	}
}

// QualityAssessment classifies an extraction without blocking it. Valid is
// true whenever any text came out, regardless of tier: a poor extraction is
// still attempted downstream, only flagged.
type QualityAssessment struct {
	Valid    bool                 `json:"valid"`
	Tier     model.ConfidenceTier `json:"tier"`
	Warnings []string             `json:"warnings"`
}

// AssessQuality maps an extraction result to a tier and warnings. Pure
// function over its inputs.
func AssessQuality(res ExtractionResult, th Thresholds) QualityAssessment {
	qa := QualityAssessment{
		Valid:    res.Succeeded && res.Text != "",
		Tier:     model.TierGood,
		Warnings: []string{},
	}

	if res.WordCount < th.PoorWords {
		qa.Warnings = append(qa.Warnings,
			"Very little text extracted - the document may be blurry, sparse or unreadable")
	} else if res.WordCount < th.FairWords {
		qa.Warnings = append(qa.Warnings,
			fmt.Sprintf("Fewer words than expected for a bill (%d)", res.WordCount))
	}

	if res.Confidence < th.PoorConfidence {
		qa.Warnings = append(qa.Warnings,
			fmt.Sprintf("Low extraction confidence (%d%%) - results may be inaccurate", res.Confidence))
	} else if res.Confidence < th.FairConfidence {
		qa.Warnings = append(qa.Warnings,
			fmt.Sprintf("Moderate extraction confidence (%d%%)", res.Confidence))
	}

	if res.PageCount > 1 {
		qa.Warnings = append(qa.Warnings,
			fmt.Sprintf("Multi-page document (%d pages) - all pages were combined before parsing", res.PageCount))
	}

	switch {
	case res.Confidence < th.PoorConfidence || res.WordCount < th.PoorWords:
		qa.Tier = model.TierPoor
	case res.Confidence < th.FairConfidence || res.WordCount < th.FairWords:
		qa.Tier = model.TierFair
	}

	return qa
}
