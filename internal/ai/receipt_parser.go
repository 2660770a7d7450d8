// receipt_parser.go - Structured parsing of extracted receipt text

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens-backend/internal/common"
	"github.com/spendlens/spendlens-backend/internal/model"
	"github.com/spendlens/spendlens-backend/internal/taxonomy"
)

// minParseLength is the local guard below which no remote call is made.
const minParseLength = 5

var (
	// ErrTextTooShort means the extracted text carries too little signal
	// to be worth an inference call.
	ErrTextTooShort = errors.New("extracted text too short to parse")

	// ErrNoTransactions means the inference response parsed but contained
	// no line items.
	ErrNoTransactions = errors.New("inference response contained no transactions")
)

// ReceiptParser sends extracted text to the inference service with a strict
// output-schema instruction and validates the returned structure. One round
// trip per request; on failure the caller falls back to synthesis.
type ReceiptParser struct {
	client Client
}

// NewReceiptParser returns a parser bound to an inference client.
func NewReceiptParser(client Client) *ReceiptParser {
	return &ReceiptParser{client: client}
}

// rawReceipt mirrors the JSON shape demanded by the prompt. Every field is
// untrusted until validated.
type rawReceipt struct {
	MerchantName  string          `json:"merchant_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	Transactions  []rawLineItem   `json:"transactions"`
}

type rawLineItem struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Tags          []string        `json:"tags"`
	Notes         string          `json:"notes"`
}

// Parse runs one inference round trip over extracted text and returns an
// enriched, taxonomy-conformant receipt. The confidence tier from the
// quality gate is attached as provenance.
func (p *ReceiptParser) Parse(ctx context.Context, text string, tier model.ConfidenceTier, reqCtx *common.RequestContext) (*model.ParsedReceipt, error) {
	if len(strings.TrimSpace(text)) < minParseLength {
		return nil, ErrTextTooShort
	}

	response, usage, err := p.client.GenerateText(ctx, BuildReceiptPrompt(text))
	if reqCtx != nil {
		reqCtx.AddTokens(usage)
	}
	if err != nil {
		return nil, fmt.Errorf("receipt inference failed: %w", err)
	}

	var raw rawReceipt
	if err := ParseWithRecovery(response, &raw); err != nil {
		return nil, fmt.Errorf("receipt response unparseable: %w", err)
	}
	if len(raw.Transactions) == 0 {
		return nil, ErrNoTransactions
	}

	receipt := &model.ParsedReceipt{
		MerchantName:   strings.TrimSpace(raw.MerchantName),
		TotalAmount:    raw.TotalAmount.Abs(),
		Date:           raw.Date,
		Time:           raw.Time,
		PaymentMethod:  raw.PaymentMethod,
		Notes:          raw.Notes,
		ConfidenceTier: tier,
		Transactions:   make([]model.ParsedTransaction, 0, len(raw.Transactions)),
	}

	for _, item := range raw.Transactions {
		receipt.Transactions = append(receipt.Transactions, p.buildTransaction(item, tier, reqCtx))
	}
	return receipt, nil
}

// buildTransaction enforces the taxonomy and attaches static metadata. One
// invalid category never invalidates sibling items.
func (p *ReceiptParser) buildTransaction(item rawLineItem, tier model.ConfidenceTier, reqCtx *common.RequestContext) model.ParsedTransaction {
	txType := model.TypeExpense
	if strings.EqualFold(strings.TrimSpace(item.Type), string(model.TypeIncome)) {
		txType = model.TypeIncome
	}

	category, ok := taxonomy.Normalize(item.Category, txType)
	if !ok && reqCtx != nil {
		reqCtx.LogWarning("category %q is not in the %s taxonomy, coerced to %q", item.Category, txType, category)
	}
	meta := taxonomy.MetadataFor(category)

	name := strings.TrimSpace(item.Name)
	if name == "" {
		name = "Receipt item"
	}

	return model.ParsedTransaction{
		Name:          name,
		Description:   strings.TrimSpace(item.Description),
		Amount:        item.Amount.Abs(),
		Type:          txType,
		Category:      category,
		Icon:          meta.Icon,
		Color:         meta.Color,
		PaymentMethod: item.PaymentMethod,
		Tags:          item.Tags,
		Notes:         item.Notes,
		Provenance: model.Provenance{
			Source:         model.SourceScanned,
			ConfidenceTier: tier,
		},
	}
}
