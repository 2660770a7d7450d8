// image_ocr.go - Optical text extraction from receipt photos

package processor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spendlens/spendlens-backend/configs"
)

// OCREngine converts an image into raw text plus a 0-100 confidence.
// The pipeline is agnostic to whether the engine is in-process or remote.
type OCREngine interface {
	Recognize(ctx context.Context, imagePath string) (text string, confidence float64, err error)
}

// TesseractEngine drives the tesseract CLI. Text comes from a plain run,
// confidence from a second TSV run (mean word confidence).
type TesseractEngine struct {
	Binary      string
	Lang        string
	TessdataDir string
	PSM         int
	OEM         int
}

// NewTesseractEngine builds an engine from configuration.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{
		Binary:      configs.TESSERACT_BIN,
		Lang:        configs.TESSERACT_LANG,
		TessdataDir: configs.TESSDATA_DIR,
	}
}

func (e *TesseractEngine) baseArgs(imagePath string) []string {
	args := []string{imagePath, "stdout", "-l", e.Lang}
	if e.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.PSM))
	}
	if e.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.OEM))
	}
	if e.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.TessdataDir)
	}
	return args
}

func (e *TesseractEngine) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// Recognize runs OCR and reports mean word confidence. An unreadable image
// is a hard failure; no fallback text is synthesized here.
func (e *TesseractEngine) Recognize(ctx context.Context, imagePath string) (string, float64, error) {
	out, err := e.run(ctx, e.baseArgs(imagePath)...)
	if err != nil {
		return "", 0, err
	}
	text := string(out)

	conf, err := e.tsvConfidence(ctx, imagePath)
	if err != nil {
		// text extraction worked; treat a confidence probe failure as zero signal
		conf = 0
	}
	return text, conf, nil
}

// tsvConfidence runs tesseract in TSV mode and returns the mean word
// confidence in 0..100. The conf column is the second-to-last; -1 rows are
// layout nodes, not words.
func (e *TesseractEngine) tsvConfidence(ctx context.Context, imagePath string) (float64, error) {
	out, err := e.run(ctx, append(e.baseArgs(imagePath), "tsv")...)
	if err != nil {
		return 0, err
	}

	var sum, n float64
	for i, ln := range strings.Split(string(out), "\n") {
		if i == 0 || len(ln) == 0 {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[len(cols)-2]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / n, nil
}

// OpticalExtractor turns a receipt photo into an ExtractionResult.
type OpticalExtractor struct {
	Engine     OCREngine
	Preprocess bool
}

// NewOpticalExtractor wires the configured OCR engine and preprocessing flag.
func NewOpticalExtractor(engine OCREngine) *OpticalExtractor {
	return &OpticalExtractor{
		Engine:     engine,
		Preprocess: configs.ENABLE_IMAGE_PREPROCESSING,
	}
}

// Extract runs optional preprocessing, OCR and text normalization.
// OCR errors surface as hard failures; the caller decides what to do.
func (x *OpticalExtractor) Extract(ctx context.Context, imagePath string) (ExtractionResult, error) {
	ocrPath := imagePath
	if x.Preprocess {
		processed, cleanup, err := PreprocessForOCR(imagePath)
		if err == nil {
			defer cleanup()
			ocrPath = processed
		}
		// preprocessing failure falls back to the original file
	}

	text, confidence, err := x.Engine.Recognize(ctx, ocrPath)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("optical extraction failed: %w", err)
	}

	return newExtractionResult(NormalizeText(text), int(confidence+0.5), 0), nil
}
