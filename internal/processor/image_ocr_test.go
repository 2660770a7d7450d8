package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedEngine struct {
	text       string
	confidence float64
}

func (c *cannedEngine) Recognize(context.Context, string) (string, float64, error) {
	return c.text, c.confidence, nil
}

func TestTesseractEngine_BaseArgs(t *testing.T) {
	e := &TesseractEngine{Binary: "tesseract", Lang: "eng"}
	assert.Equal(t, []string{"img.png", "stdout", "-l", "eng"}, e.baseArgs("img.png"))

	e = &TesseractEngine{Binary: "tesseract", Lang: "eng", PSM: 6, OEM: 1, TessdataDir: "/opt/tessdata"}
	assert.Equal(t,
		[]string{"img.png", "stdout", "-l", "eng", "--psm", "6", "--oem", "1", "--tessdata-dir", "/opt/tessdata"},
		e.baseArgs("img.png"))
}

func TestOpticalExtractor_NormalizesAndRounds(t *testing.T) {
	x := &OpticalExtractor{
		Engine:     &cannedEngine{text: "FreshMart\r\nMilk   60.00\n\n\n\nTotal  60.00\n", confidence: 87.6},
		Preprocess: false,
	}

	res, err := x.Extract(context.Background(), "receipt.jpg")
	require.NoError(t, err)

	assert.True(t, res.Succeeded)
	assert.Equal(t, "FreshMart\nMilk 60.00\n\nTotal 60.00", res.Text)
	assert.Equal(t, 88, res.Confidence, "confidence is rounded, not truncated")
	assert.Equal(t, 5, res.WordCount)
	assert.Equal(t, 3, res.LineCount)
}
