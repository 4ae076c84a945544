package v1

import (
	"github.com/shopspring/decimal"

	"github.com/tempo-budget/backend/internal/calculator"
)

// BudgetBalances is the computed balance view of a group budget. It is
// recomputed for every request and never persisted.
type BudgetBalances struct {
	Members       []calculator.MemberBalance `json:"members"`                        // Balance per member
	Transfers     []calculator.Transfer      `json:"transfers"`                      // Suggested settlement transfers
	TotalExpenses decimal.Decimal            `json:"totalExpenses" example:"100"`    // Sum of all expenses of the budget
	ShareTotal    decimal.Decimal            `json:"shareTotal" example:"100"`       // Sum of all member share percentages, should be 100
}

type BudgetBalancesResponse struct {
	Data  *BudgetBalances `json:"data"`                                                             // The computed balances
	Error *string         `json:"error" example:"balances are only available for group budgets"`    // The error, if any occurred
}
