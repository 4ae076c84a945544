package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/tempo-budget/backend/internal/controllers/v1"
	"github.com/tempo-budget/backend/internal/models"
	"github.com/tempo-budget/backend/test"
)

// TestBalances verifies the computed balances and the settlement plan
// for a group budget.
func (suite *TestSuiteStandard) TestBalances() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Flat", BudgetType: models.BudgetTypeGroup})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	ellen := createTestUser(suite.T(), v1.UserEditable{Name: "Ellen"})
	tom := createTestUser(suite.T(), v1.UserEditable{Name: "Tom"})

	_ = createTestMember(suite.T(), v1.MemberEditable{
		BudgetID:     budget.Data.ID,
		UserID:       ellen.Data.ID,
		SharePercent: decimal.NewFromInt(60),
	})
	_ = createTestMember(suite.T(), v1.MemberEditable{
		BudgetID:     budget.Data.ID,
		UserID:       tom.Data.ID,
		SharePercent: decimal.NewFromInt(40),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID:   category.Data.ID,
		Title:        "Weekly shopping",
		Amount:       decimal.NewFromInt(100),
		PaidByUserID: &ellen.Data.ID,
	})

	// Income does not count toward the balances
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Salary",
		Type:       models.TransactionTypeIncome,
		Amount:     decimal.NewFromInt(2000),
	})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Balances, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var balances v1.BudgetBalancesResponse
	test.DecodeResponse(suite.T(), &r, &balances)

	require.NotNil(suite.T(), balances.Data)
	assert.True(suite.T(), balances.Data.TotalExpenses.Equal(decimal.NewFromInt(100)), "Total expenses are %s, expected 100", balances.Data.TotalExpenses)
	assert.True(suite.T(), balances.Data.ShareTotal.Equal(decimal.NewFromInt(100)), "Share total is %s, expected 100", balances.Data.ShareTotal)

	require.Len(suite.T(), balances.Data.Members, 2)

	for _, member := range balances.Data.Members {
		switch member.UserID {
		case ellen.Data.ID:
			assert.Equal(suite.T(), "Ellen", member.UserName)
			assert.True(suite.T(), member.TotalDue.Equal(decimal.NewFromInt(60)), "Ellen is due %s, expected 60", member.TotalDue)
			assert.True(suite.T(), member.TotalPaid.Equal(decimal.NewFromInt(100)), "Ellen paid %s, expected 100", member.TotalPaid)
			assert.True(suite.T(), member.Balance.Equal(decimal.NewFromInt(40)), "Ellen's balance is %s, expected 40", member.Balance)
		case tom.Data.ID:
			assert.Equal(suite.T(), "Tom", member.UserName)
			assert.True(suite.T(), member.TotalDue.Equal(decimal.NewFromInt(40)), "Tom is due %s, expected 40", member.TotalDue)
			assert.True(suite.T(), member.TotalPaid.IsZero(), "Tom paid %s, expected 0", member.TotalPaid)
			assert.True(suite.T(), member.Balance.Equal(decimal.NewFromInt(-40)), "Tom's balance is %s, expected -40", member.Balance)
		default:
			suite.Assert().Fail("Unexpected member in balances", "User ID: %s", member.UserID)
		}
	}

	require.Len(suite.T(), balances.Data.Transfers, 1)

	transfer := balances.Data.Transfers[0]
	assert.Equal(suite.T(), tom.Data.ID, transfer.FromUserID)
	assert.Equal(suite.T(), "Tom", transfer.FromName)
	assert.Equal(suite.T(), ellen.Data.ID, transfer.ToUserID)
	assert.Equal(suite.T(), "Ellen", transfer.ToName)
	assert.True(suite.T(), transfer.Amount.Equal(decimal.NewFromInt(40)), "Transfer amount is %s, expected 40", transfer.Amount)
}

// TestBalancesSettled verifies that no transfers are suggested when
// everyone paid exactly their share.
func (suite *TestSuiteStandard) TestBalancesSettled() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Flat", BudgetType: models.BudgetTypeGroup})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	ellen := createTestUser(suite.T(), v1.UserEditable{Name: "Ellen"})
	tom := createTestUser(suite.T(), v1.UserEditable{Name: "Tom"})

	for _, member := range []struct {
		userID uuid.UUID
		amount int64
	}{
		{ellen.Data.ID, 50},
		{tom.Data.ID, 50},
	} {
		_ = createTestMember(suite.T(), v1.MemberEditable{
			BudgetID:     budget.Data.ID,
			UserID:       member.userID,
			SharePercent: decimal.NewFromInt(50),
		})

		userID := member.userID
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			CategoryID:   category.Data.ID,
			Amount:       decimal.NewFromInt(member.amount),
			PaidByUserID: &userID,
		})
	}

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Balances, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var balances v1.BudgetBalancesResponse
	test.DecodeResponse(suite.T(), &r, &balances)

	require.NotNil(suite.T(), balances.Data)
	assert.Len(suite.T(), balances.Data.Transfers, 0)

	for _, member := range balances.Data.Members {
		assert.True(suite.T(), member.Balance.IsZero(), "Balance of %s is %s, expected 0", member.UserName, member.Balance)
	}
}

func (suite *TestSuiteStandard) TestBalancesFails() {
	personal := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Own things"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Personal budget", personal.Data.ID.String(), http.StatusBadRequest},
		{"Non-existing budget", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "NotAUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s/balances", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var balances v1.BudgetBalancesResponse
			test.DecodeResponse(t, &r, &balances)
			require.NotNil(t, balances.Error)
		})
	}
}

// TestBalancesEmptyGroup verifies that a group budget without members
// and transactions returns an empty balance view.
func (suite *TestSuiteStandard) TestBalancesEmptyGroup() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Empty", BudgetType: models.BudgetTypeGroup})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Balances, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var balances v1.BudgetBalancesResponse
	test.DecodeResponse(suite.T(), &r, &balances)

	require.NotNil(suite.T(), balances.Data)
	assert.Len(suite.T(), balances.Data.Members, 0)
	assert.Len(suite.T(), balances.Data.Transfers, 0)
	assert.True(suite.T(), balances.Data.TotalExpenses.IsZero())
}
