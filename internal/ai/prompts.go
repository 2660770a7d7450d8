// prompts.go - Prompt builders for the receipt, voice and narration calls

package ai

import (
	"fmt"

	"github.com/spendlens/spendlens-backend/internal/taxonomy"
)

// BuildReceiptPrompt composes the single inference request for structured
// receipt parsing: the raw text, extraction rules, the closed category
// lists and the exact output shape.
func BuildReceiptPrompt(rawText string) string {
	return fmt.Sprintf(`You are a receipt parsing engine for a personal finance tracker used in India.
Extract financial data from the following text, which came from OCR or a PDF text layer and may be noisy.

EXTRACTION RULES:
1. Create one transaction per line item when individual items are listed.
2. If no line items are visible, create exactly one transaction for the whole receipt.
3. Amounts are positive numbers without currency symbols. Currency is INR.
4. Dates use DD/MM/YYYY. If no date is visible, leave it empty.
5. Infer the transaction type: purchases and bills are "expense", credits and payments received are "income".
6. Do not invent items that are not in the text.

%s

Respond with ONLY a JSON object, no markdown fences, no commentary, in exactly this shape:
{
  "merchant_name": "string",
  "total_amount": 0.0,
  "date": "DD/MM/YYYY",
  "time": "HH:MM",
  "payment_method": "string or empty",
  "notes": "string or empty",
  "transactions": [
    {
      "name": "string",
      "description": "string",
      "amount": 0.0,
      "type": "income or expense",
      "category": "one category from the allowed lists",
      "payment_method": "string or empty",
      "tags": ["optional strings"],
      "notes": "string or empty"
    }
  ]
}

RECEIPT TEXT:
%s`, taxonomy.PromptBlock(), rawText)
}

// BuildVoicePrompt composes the single inference request for voice intent
// routing: transcription plus action selection against the catalogue.
func BuildVoicePrompt(catalogJSON string) string {
	return fmt.Sprintf(`You are the voice assistant of a personal finance tracker.
Listen to the attached audio recording and do two things:
1. Transcribe exactly what the user said.
2. Route the request to ONE action from the catalogue below, filling in any parameters mentioned in the speech.

ACTION CATALOGUE (choose intent/endpoint/method from here, never invent endpoints):
%s

%s

If the speech does not match any catalogued action, use intent "unknown" with an empty endpoint.

Respond with ONLY a JSON object, no markdown fences, in exactly this shape:
{
  "transcription": "what the user said",
  "confidence": 0.0,
  "intent": "catalogue intent or unknown",
  "endpoint": "catalogue endpoint or empty",
  "method": "GET, POST, PUT or DELETE",
  "parameters": {},
  "natural_query": "the user's request rephrased as a short query",
  "requires_auth": true
}`, catalogJSON, taxonomy.PromptBlock())
}

// BuildNarratorPrompt composes the request turning a structured API result
// into a short spoken answer.
func BuildNarratorPrompt(intent, query, resultJSON string) string {
	return fmt.Sprintf(`You are the voice of a personal finance tracker. The user asked: %q
The app executed the action %q and produced this result:
%s

Answer the user in 2-4 conversational sentences. Mention concrete numbers
from the result (amounts in rupees). Do not mention JSON, APIs or internal
field names. Respond with the sentences only.`, query, intent, resultJSON)
}
