// Package calculator implements the pure computations for group
// budgets: member balances, settlement transfers and the projection of
// recurring transactions to the end of the month.
//
// All functions are free of side effects and operate only on the
// snapshot they are passed, they are safe to call concurrently.
package calculator

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType determines whether a record reduces or increases the
// available money.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// MemberShare describes a member of a group budget together with the
// percentage of the total expenses the member is responsible for.
type MemberShare struct {
	UserID       uuid.UUID
	UserName     string
	SharePercent decimal.Decimal
}

// ExpenseRecord is the subset of a transaction that balance
// calculation needs. PaidBy is uuid.Nil when the payment is not
// attributed to anyone.
type ExpenseRecord struct {
	Amount decimal.Decimal
	Type   TransactionType
	PaidBy uuid.UUID
}

// MemberBalance is the calculated balance of one member. It is a
// derived view, never persisted.
type MemberBalance struct {
	UserID       uuid.UUID       `json:"userId" example:"d1b4b4f4-d8b9-4b9e-9f5b-6d1f5b3f7e5a"` // ID of the member's user
	UserName     string          `json:"userName" example:"Ellen"`                              // Display name of the member
	SharePercent decimal.Decimal `json:"sharePercent" example:"60"`                             // Percentage of the total expenses this member is responsible for
	TotalDue     decimal.Decimal `json:"totalDue" example:"60"`                                 // The member's share of the total expenses
	TotalPaid    decimal.Decimal `json:"totalPaid" example:"100"`                               // Sum of the expenses this member paid
	Balance      decimal.Decimal `json:"balance" example:"40"`                                  // TotalPaid minus TotalDue
}

// ComputeBalances returns one balance record per member.
//
// Every expense counts toward the total that the shares are applied
// to. Expenses without a payer, or with a payer that is not in the
// member list, count toward nobody's paid sum. The balances then do
// not sum to zero, the difference is exactly the unattributed amount.
// PlanSettlements tolerates such input.
//
// The result only depends on the arguments, recomputing with identical
// input yields identical output.
func ComputeBalances(members []MemberShare, transactions []ExpenseRecord) []MemberBalance {
	totalExpenses := decimal.Zero
	paidBy := make(map[uuid.UUID]decimal.Decimal, len(members))

	for _, t := range transactions {
		if t.Type != TypeExpense {
			continue
		}

		totalExpenses = totalExpenses.Add(t.Amount)

		if t.PaidBy != uuid.Nil {
			paidBy[t.PaidBy] = paidBy[t.PaidBy].Add(t.Amount)
		}
	}

	balances := make([]MemberBalance, 0, len(members))
	for _, m := range members {
		due := totalExpenses.Mul(m.SharePercent).Div(decimal.NewFromInt(100))
		paid := paidBy[m.UserID]

		balances = append(balances, MemberBalance{
			UserID:       m.UserID,
			UserName:     m.UserName,
			SharePercent: m.SharePercent,
			TotalDue:     due,
			TotalPaid:    paid,
			Balance:      paid.Sub(due),
		})
	}

	return balances
}
