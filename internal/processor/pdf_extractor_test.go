package processor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDocumentText_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, scoreDocumentText(""))
}

func TestScoreDocumentText_ShortPlainTextGetsBase(t *testing.T) {
	// under 50 chars, no bill signals
	assert.Equal(t, 40, scoreDocumentText("hello world"))
}

func TestScoreDocumentText_KeywordAndLengthBonuses(t *testing.T) {
	// one length threshold crossed plus the total/amount/date keyword group
	text := "total charges for the period are listed in the annex below"
	assert.Equal(t, 55, scoreDocumentText(text))
}

func TestScoreDocumentText_RichBillScoresHigh(t *testing.T) {
	var b strings.Builder
	b.WriteString("Invoice No. 2219\nDate: 12/05/2024\n")
	for i := 0; i < 30; i++ {
		b.WriteString("Broadband monthly charge ₹599.00\n")
	}
	b.WriteString("Total Amount Due ₹599.00\n")

	// all three length thresholds plus all four signal groups
	assert.Equal(t, 90, scoreDocumentText(b.String()))
}

func TestScoreDocumentText_MonotonicInSignals(t *testing.T) {
	sparse := scoreDocumentText("some unrelated prose without any financial markers here at all")
	billish := scoreDocumentText("invoice total ₹450.00 dated 01/02/2024 for broadband services rendered")
	assert.Greater(t, billish, sparse)
}
