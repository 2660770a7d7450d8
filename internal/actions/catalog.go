// Package actions holds the static catalogue of application actions the
// voice path can route to. Loaded once, treated as read-only configuration.
package actions

import (
	"encoding/json"
	"sync"
)

// Action documents one routable application endpoint.
type Action struct {
	Intent       string            `json:"intent"`
	Description  string            `json:"description"`
	Endpoint     string            `json:"endpoint"`
	Method       string            `json:"method"`
	Parameters   map[string]string `json:"parameters,omitempty"`
	Examples     []string          `json:"examples"`
	RequiresAuth bool              `json:"requires_auth"`
}

// Catalog is an immutable set of actions plus its prompt rendering.
type Catalog struct {
	actions    []Action
	promptJSON string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalogue, constructed once.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog(builtinActions)
	})
	return defaultCatalog
}

// NewCatalog builds a catalogue and pre-renders its prompt JSON.
func NewCatalog(actions []Action) *Catalog {
	rendered, _ := json.MarshalIndent(actions, "", "  ")
	return &Catalog{actions: actions, promptJSON: string(rendered)}
}

// Actions returns the catalogued actions.
func (c *Catalog) Actions() []Action { return c.actions }

// PromptJSON returns the machine-readable catalogue for prompt embedding.
func (c *Catalog) PromptJSON() string { return c.promptJSON }

// Lookup finds an action by intent.
func (c *Catalog) Lookup(intent string) (Action, bool) {
	for _, a := range c.actions {
		if a.Intent == intent {
			return a, true
		}
	}
	return Action{}, false
}

var builtinActions = []Action{
	{
		Intent:       "get_balance",
		Description:  "Current balance across all accounts",
		Endpoint:     "/api/v1/balance",
		Method:       "GET",
		Examples:     []string{"what's my balance", "how much money do I have"},
		RequiresAuth: true,
	},
	{
		Intent:      "list_transactions",
		Description: "List transactions, optionally filtered",
		Endpoint:    "/api/v1/transactions",
		Method:      "GET",
		Parameters: map[string]string{
			"period":   "today|week|month|year",
			"category": "optional category filter",
			"type":     "income|expense",
		},
		Examples:     []string{"show my spending this week", "what did I spend on food this month"},
		RequiresAuth: true,
	},
	{
		Intent:      "add_expense",
		Description: "Record a new expense",
		Endpoint:    "/api/v1/transactions",
		Method:      "POST",
		Parameters: map[string]string{
			"name":     "what was bought",
			"amount":   "amount in rupees",
			"category": "expense category",
		},
		Examples:     []string{"add an expense of 250 rupees for lunch", "I spent 1200 on groceries"},
		RequiresAuth: true,
	},
	{
		Intent:      "add_income",
		Description: "Record a new income entry",
		Endpoint:    "/api/v1/transactions",
		Method:      "POST",
		Parameters: map[string]string{
			"name":     "income source",
			"amount":   "amount in rupees",
			"category": "income category",
		},
		Examples:     []string{"I received 5000 from freelancing"},
		RequiresAuth: true,
	},
	{
		Intent:       "get_budget_status",
		Description:  "How much of each budget is used",
		Endpoint:     "/api/v1/budgets/status",
		Method:       "GET",
		Examples:     []string{"how is my food budget doing", "am I over budget"},
		RequiresAuth: true,
	},
	{
		Intent:      "create_budget",
		Description: "Create a monthly budget for a category",
		Endpoint:    "/api/v1/budgets",
		Method:      "POST",
		Parameters: map[string]string{
			"category": "expense category",
			"amount":   "monthly limit in rupees",
		},
		Examples:     []string{"set a 4000 rupee budget for groceries"},
		RequiresAuth: true,
	},
	{
		Intent:       "list_goals",
		Description:  "List savings goals and their progress",
		Endpoint:     "/api/v1/goals",
		Method:       "GET",
		Examples:     []string{"how are my savings goals", "show my goals"},
		RequiresAuth: true,
	},
	{
		Intent:      "add_goal_contribution",
		Description: "Add money to a savings goal",
		Endpoint:    "/api/v1/goals/contributions",
		Method:      "POST",
		Parameters: map[string]string{
			"goal":   "goal name",
			"amount": "amount in rupees",
		},
		Examples:     []string{"put 2000 towards my vacation fund"},
		RequiresAuth: true,
	},
	{
		Intent:       "list_subscriptions",
		Description:  "List active recurring subscriptions",
		Endpoint:     "/api/v1/subscriptions",
		Method:       "GET",
		Examples:     []string{"what subscriptions am I paying for"},
		RequiresAuth: true,
	},
	{
		Intent:      "spending_summary",
		Description: "Spending summary grouped by category",
		Endpoint:    "/api/v1/reports/spending",
		Method:      "GET",
		Parameters: map[string]string{
			"period": "week|month|year",
		},
		Examples:     []string{"where did my money go this month"},
		RequiresAuth: true,
	},
}
