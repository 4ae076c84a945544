package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/tempo-budget/backend/internal/controllers/v1"
	"github.com/tempo-budget/backend/internal/models"
	"github.com/tempo-budget/backend/test"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Weekly groceries",
		Amount:     decimal.NewFromFloat(14.03),
	})

	assert.Equal(suite.T(), "Weekly groceries", transaction.Data.Title)
	assert.Equal(suite.T(), models.TransactionTypeExpense, transaction.Data.Type)

	// The date defaults to the creation time
	assert.False(suite.T(), transaction.Data.Date.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	tests := []struct {
		name   string
		body   v1.TransactionEditable
		status int
	}{
		{"Non-existing category", v1.TransactionEditable{CategoryID: uuid.New(), Amount: decimal.NewFromInt(10)}, http.StatusNotFound},
		{"Negative amount", v1.TransactionEditable{CategoryID: category.Data.ID, Amount: decimal.NewFromInt(-10)}, http.StatusBadRequest},
		{"Invalid type", v1.TransactionEditable{CategoryID: category.Data.ID, Amount: decimal.NewFromInt(10), Type: "transfer"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestTransaction(t, tt.body, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateZeroAmountFails() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{CategoryID: category.Data.ID, Amount: decimal.Zero},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{BudgetType: models.BudgetTypeGroup})
	otherBudget := createTestBudget(suite.T(), v1.BudgetEditable{})

	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})
	otherCategory := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: otherBudget.Data.ID, Name: "Groceries"})

	ellen := createTestUser(suite.T(), v1.UserEditable{Name: "Ellen"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID:   category.Data.ID,
		Title:        "Supermarket",
		Amount:       decimal.NewFromInt(100),
		Date:         time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		PaidByUserID: &ellen.Data.ID,
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Salary",
		Type:       models.TransactionTypeIncome,
		Amount:     decimal.NewFromInt(2000),
		Date:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: otherCategory.Data.ID,
		Title:      "Other budget things",
		Amount:     decimal.NewFromInt(30),
		Date:       time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category", fmt.Sprintf("category=%s", category.Data.ID), 2},
		{"Budget", fmt.Sprintf("budget=%s", budget.Data.ID), 2},
		{"Other budget", fmt.Sprintf("budget=%s", otherBudget.Data.ID), 1},
		{"Type expense", "type=expense", 2},
		{"Type income", "type=income", 1},
		{"Paid by Ellen", fmt.Sprintf("paidBy=%s", ellen.Data.ID), 1},
		{"No payer", "paidBy=", 2},
		{"Title", "title=Supermarket", 1},
		{"From date", "fromDate=2024-05-01", 1},
		{"Until date", "untilDate=2024-04-30", 2},
		{"Date range", "fromDate=2024-04-01&untilDate=2024-04-10", 2},
		{"Limit", "limit=2", 2},
	}

	var re v1.TransactionListResponse
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)
			assert.Equal(t, tt.len, len(re.Data))
		})
	}
}

// TestTransactionsGetSorted verifies that transactions are sorted with
// the most recent date first.
func (suite *TestSuiteStandard) TestTransactionsGetSorted() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	older := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Older",
		Date:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	newer := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Newer",
		Date:       time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)

	require.Len(suite.T(), transactions.Data, 2)
	assert.Equal(suite.T(), newer.Data.Title, transactions.Data[0].Title)
	assert.Equal(suite.T(), older.Data.Title, transactions.Data[1].Title)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Weekly groceries",
		Amount:     decimal.NewFromFloat(14.03),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"title": "Monthly groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updatedTransaction v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &updatedTransaction)

	assert.Equal(suite.T(), "Monthly groceries", updatedTransaction.Data.Title)
	assert.True(suite.T(), updatedTransaction.Data.Amount.Equal(decimal.NewFromFloat(14.03)))
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(10),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"categoryId": uuid.New().String(),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(10),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
