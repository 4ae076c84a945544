package calculator

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// epsilon is one cent. Balances within epsilon of zero count as
// settled.
var epsilon = decimal.New(1, -2)

// Transfer is a suggested peer-to-peer payment. It is a derived view,
// never persisted: the plan is recomputed every time balances are
// requested.
type Transfer struct {
	FromUserID uuid.UUID       `json:"fromUserId" example:"d1b4b4f4-d8b9-4b9e-9f5b-6d1f5b3f7e5a"` // The member that pays
	FromName   string          `json:"fromName" example:"Tom"`                                    // Display name of the paying member
	ToUserID   uuid.UUID       `json:"toUserId" example:"e3a8cf5a-12c4-4a67-bd9e-dfbbd56c2c9f"`   // The member that receives the payment
	ToName     string          `json:"toName" example:"Ellen"`                                    // Display name of the receiving member
	Amount     decimal.Decimal `json:"amount" example:"40"`                                       // The suggested amount, rounded to cents
}

// PlanSettlements produces the transfers that bring every balance to
// zero, using greedy largest-first matching: debtors and creditors are
// sorted by the size of their balance and the largest debtor pays the
// largest creditor first.
//
// This is deliberately not an optimal minimum-transfer solver (that
// problem is NP-hard for more than two parties), the greedy plan is
// deterministic and at most members-1 transfers long in the balanced
// case. Members with equal balances keep their input order.
//
// Amounts are rounded to two decimal places, half away from zero. If
// the balances do not sum to zero (unattributed expenses, see
// ComputeBalances), the plan simply stops when the debtors are
// exhausted and may leave creditor surplus unclaimed.
func PlanSettlements(balances []MemberBalance) []Transfer {
	type party struct {
		userID    uuid.UUID
		name      string
		remaining decimal.Decimal
	}

	var debtors, creditors []*party
	for _, b := range balances {
		switch {
		case b.Balance.LessThan(epsilon.Neg()):
			debtors = append(debtors, &party{b.UserID, b.UserName, b.Balance.Neg()})
		case b.Balance.GreaterThan(epsilon):
			creditors = append(creditors, &party{b.UserID, b.UserName, b.Balance})
		}
	}

	slices.SortStableFunc(debtors, func(a, b *party) int {
		return b.remaining.Cmp(a.remaining)
	})
	slices.SortStableFunc(creditors, func(a, b *party) int {
		return b.remaining.Cmp(a.remaining)
	})

	transfers := make([]Transfer, 0)

	for _, debtor := range debtors {
		for _, creditor := range creditors {
			if debtor.remaining.LessThanOrEqual(epsilon) {
				break
			}

			if creditor.remaining.LessThanOrEqual(epsilon) {
				continue
			}

			amount := decimal.Min(debtor.remaining, creditor.remaining).Round(2)
			if !amount.IsPositive() {
				continue
			}

			transfers = append(transfers, Transfer{
				FromUserID: debtor.userID,
				FromName:   debtor.name,
				ToUserID:   creditor.userID,
				ToName:     creditor.name,
				Amount:     amount,
			})

			debtor.remaining = debtor.remaining.Sub(amount)
			creditor.remaining = creditor.remaining.Sub(amount)
		}
	}

	return transfers
}
