// Package pipeline orchestrates the ingestion flow: validate, extract,
// gate, parse, and fall back. It holds no cross-request state; concurrent
// requests share nothing but the injected clients.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/spendlens/spendlens-backend/internal/actions"
	"github.com/spendlens/spendlens-backend/internal/ai"
	"github.com/spendlens/spendlens-backend/internal/common"
	"github.com/spendlens/spendlens-backend/internal/model"
	"github.com/spendlens/spendlens-backend/internal/processor"
)

// ErrWrongArtifact is returned when an upload reaches the wrong path, e.g.
// audio posted to the receipt scanner.
var ErrWrongArtifact = errors.New("artifact type not supported by this endpoint")

// ErrNoTextExtracted means extraction ran but produced no text. This is
// terminal: nothing runs downstream of a failed extraction, not even the
// fallback synthesizer.
var ErrNoTextExtracted = errors.New("no text could be extracted from the upload")

// Pipeline wires the extractors, parser and voice router together.
type Pipeline struct {
	Optical  *processor.OpticalExtractor
	Document *processor.DocumentExtractor
	Parser   *ai.ReceiptParser
	Voice    *ai.VoiceRouter
}

// New builds a pipeline around an inference client and OCR engine.
func New(client ai.Client, engine processor.OCREngine, catalog *actions.Catalog) *Pipeline {
	return &Pipeline{
		Optical:  processor.NewOpticalExtractor(engine),
		Document: processor.NewDocumentExtractor(),
		Parser:   ai.NewReceiptParser(client),
		Voice:    ai.NewVoiceRouter(client, catalog),
	}
}

// ScanResult is the tagged outcome of a receipt scan. When the structured
// parse fails, Success is false and Fallback carries the synthesized
// single-transaction receipt, so a validated scan always yields at least
// one transaction candidate.
type ScanResult struct {
	Success  bool                        `json:"success"`
	Receipt  *model.ParsedReceipt        `json:"receipt,omitempty"`
	Quality  processor.QualityAssessment `json:"quality"`
	Error    string                      `json:"error,omitempty"`
	Fallback *model.ParsedReceipt        `json:"fallback,omitempty"`
}

// Transactions returns whichever transaction set the result carries.
func (r *ScanResult) Transactions() []model.ParsedTransaction {
	if r.Receipt != nil {
		return r.Receipt.Transactions
	}
	if r.Fallback != nil {
		return r.Fallback.Transactions
	}
	return nil
}

// ScanReceipt runs the full receipt path. Only input-invalid and
// extraction-failed conditions return a Go error; inference problems
// degrade to the fallback synthesizer inside a non-nil result.
func (p *Pipeline) ScanReceipt(ctx context.Context, path, declaredMIME string, size int64, reqCtx *common.RequestContext) (*ScanResult, error) {
	reqCtx.StartStep("validate_upload")
	kind, err := processor.ValidateUpload(path, declaredMIME, size)
	if err != nil {
		reqCtx.EndStep("failed", nil, err)
		return nil, err
	}
	if kind == processor.KindAudio {
		err := fmt.Errorf("%w: audio goes to the voice endpoint", ErrWrongArtifact)
		reqCtx.EndStep("failed", nil, err)
		return nil, err
	}
	reqCtx.EndStep("success", nil, nil)

	var (
		extraction processor.ExtractionResult
		thresholds processor.Thresholds
	)
	switch kind {
	case processor.KindPDF:
		reqCtx.StartStep("document_extraction")
		extraction, err = p.Document.Extract(ctx, path)
		thresholds = processor.PDFThresholds()
	default:
		reqCtx.StartStep("optical_extraction")
		extraction, err = p.Optical.Extract(ctx, path)
		thresholds = processor.ImageThresholds()
	}
	if err != nil {
		reqCtx.EndStep("failed", nil, err)
		return nil, err
	}
	if !extraction.Succeeded {
		err := fmt.Errorf("%w: the %s contained no readable text", ErrNoTextExtracted, kind)
		reqCtx.EndStep("failed", nil, err)
		return nil, err
	}
	reqCtx.EndStep("success", nil, nil)

	quality := processor.AssessQuality(extraction, thresholds)
	for _, w := range quality.Warnings {
		reqCtx.LogWarning("quality: %s", w)
	}

	reqCtx.StartStep("structured_parse")
	receipt, parseErr := p.Parser.Parse(ctx, extraction.Text, quality.Tier, reqCtx)
	if parseErr != nil {
		reqCtx.EndStep("failed", nil, parseErr)
		reqCtx.LogWarning("structured parse failed, synthesizing fallback: %v", parseErr)
		fallback := processor.FallbackReceipt(extraction.Text)
		return &ScanResult{
			Success:  false,
			Quality:  quality,
			Error:    parseErr.Error(),
			Fallback: &fallback,
		}, nil
	}
	reqCtx.EndStep("success", nil, nil)

	return &ScanResult{
		Success: true,
		Receipt: receipt,
		Quality: quality,
	}, nil
}

// RouteVoice validates a recording and routes it to an application action.
// Routing never errors past validation; failures come back as the unknown
// intent.
func (p *Pipeline) RouteVoice(ctx context.Context, path, declaredMIME string, size int64, reqCtx *common.RequestContext) (*model.VoiceIntentResult, error) {
	reqCtx.StartStep("validate_upload")
	kind, err := processor.ValidateUpload(path, declaredMIME, size)
	if err != nil {
		reqCtx.EndStep("failed", nil, err)
		return nil, err
	}
	if kind != processor.KindAudio {
		err := fmt.Errorf("%w: voice endpoint accepts audio only", ErrWrongArtifact)
		reqCtx.EndStep("failed", nil, err)
		return nil, err
	}
	reqCtx.EndStep("success", nil, nil)

	reqCtx.StartStep("voice_intent_routing")
	result := p.Voice.Route(ctx, path, declaredMIME, reqCtx)
	reqCtx.EndStep("success", nil, nil)
	return result, nil
}
