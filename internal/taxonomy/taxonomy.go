// Package taxonomy is the single source of truth for transaction categories.
// The two category sets are closed: any value outside them is coerced to
// Other. Parser, fallback synthesizer and prompt builders all depend on this
// package rather than carrying their own lists.
package taxonomy

import (
	"encoding/json"
	"strings"

	"github.com/spendlens/spendlens-backend/internal/model"
)

// Other is the sentinel category present in both sets.
const Other = "Other"

// IncomeCategories is the closed set of permissible income categories.
var IncomeCategories = []string{
	"Salary",
	"Business",
	"Freelance",
	"Investments",
	"Rental",
	"Interest",
	"Gifts",
	"Refunds",
	Other,
}

// ExpenseCategories is the closed set of permissible expense categories.
var ExpenseCategories = []string{
	"Food & Dining",
	"Groceries",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Rent",
	"Personal Care",
	Other,
}

var (
	incomeSet  = makeSet(IncomeCategories)
	expenseSet = makeSet(ExpenseCategories)
)

func makeSet(categories []string) map[string]struct{} {
	s := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		s[c] = struct{}{}
	}
	return s
}

// IsMember reports whether category belongs to the set for the given type.
func IsMember(category string, t model.TransactionType) bool {
	if t == model.TypeIncome {
		_, ok := incomeSet[category]
		return ok
	}
	_, ok := expenseSet[category]
	return ok
}

// Normalize coerces a category into the closed set for the given type.
// Members pass through unchanged; anything else becomes Other. The second
// return value is false when a coercion happened, so callers can log it.
// Applying Normalize twice yields the same result as applying it once.
func Normalize(category string, t model.TransactionType) (string, bool) {
	category = strings.TrimSpace(category)
	if IsMember(category, t) {
		return category, true
	}
	return Other, false
}

// Metadata is the static icon/colour pair attached to a category.
type Metadata struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var metadataTable = map[string]Metadata{
	"Salary":            {Icon: "briefcase", Color: "#2E7D32"},
	"Business":          {Icon: "storefront", Color: "#1565C0"},
	"Freelance":         {Icon: "laptop", Color: "#6A1B9A"},
	"Investments":       {Icon: "trending-up", Color: "#00695C"},
	"Rental":            {Icon: "home-city", Color: "#4E342E"},
	"Interest":          {Icon: "bank", Color: "#283593"},
	"Gifts":             {Icon: "gift", Color: "#AD1457"},
	"Refunds":           {Icon: "cash-refund", Color: "#00838F"},
	"Food & Dining":     {Icon: "silverware-fork-knife", Color: "#E64A19"},
	"Groceries":         {Icon: "cart", Color: "#558B2F"},
	"Transportation":    {Icon: "bus", Color: "#0277BD"},
	"Shopping":          {Icon: "shopping", Color: "#C2185B"},
	"Entertainment":     {Icon: "movie", Color: "#7B1FA2"},
	"Bills & Utilities": {Icon: "file-document", Color: "#F9A825"},
	"Healthcare":        {Icon: "hospital-box", Color: "#C62828"},
	"Education":         {Icon: "school", Color: "#303F9F"},
	"Travel":            {Icon: "airplane", Color: "#00ACC1"},
	"Rent":              {Icon: "home", Color: "#5D4037"},
	"Personal Care":     {Icon: "face-man", Color: "#8E24AA"},
	Other:               {Icon: "dots-horizontal", Color: "#616161"},
}

// MetadataFor returns the icon/colour metadata for a category; unknown
// categories get the Other metadata.
func MetadataFor(category string) Metadata {
	if m, ok := metadataTable[category]; ok {
		return m
	}
	return metadataTable[Other]
}

// PromptBlock renders both category lists with example mappings for
// embedding in an inference prompt.
func PromptBlock() string {
	income, _ := json.Marshal(IncomeCategories)
	expense, _ := json.Marshal(ExpenseCategories)

	var b strings.Builder
	b.WriteString("Allowed income categories (closed set, use EXACTLY one of these):\n")
	b.Write(income)
	b.WriteString("\nAllowed expense categories (closed set, use EXACTLY one of these):\n")
	b.Write(expense)
	b.WriteString(`
Example mappings:
- "Monthly pay credited" -> income / "Salary"
- "Chicken Burger" -> expense / "Food & Dining"
- "Uber ride" -> expense / "Transportation"
- "Electricity bill" -> expense / "Bills & Utilities"
- anything that fits no category -> "Other"
Never invent a category outside these lists.`)
	return b.String()
}
