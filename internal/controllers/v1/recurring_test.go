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

func (suite *TestSuiteStandard) TestRecurringTransactionsCreate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Housing"})

	day := 15
	recurring := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Rent",
		Amount:     decimal.NewFromInt(800),
		Frequency:  models.FrequencyMonthly,
		Day:        &day,
		Active:     true,
	})

	assert.Equal(suite.T(), "Rent", recurring.Data.Title)
	assert.Equal(suite.T(), models.FrequencyMonthly, recurring.Data.Frequency)
	require.NotNil(suite.T(), recurring.Data.Day)
	assert.Equal(suite.T(), 15, *recurring.Data.Day)
}

func (suite *TestSuiteStandard) TestRecurringTransactionsCreateFails() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Housing"})

	tests := []struct {
		name   string
		body   v1.RecurringTransactionEditable
		status int
	}{
		{"Non-existing category", v1.RecurringTransactionEditable{CategoryID: uuid.New(), Frequency: models.FrequencyMonthly}, http.StatusNotFound},
		{"Invalid frequency", v1.RecurringTransactionEditable{CategoryID: category.Data.ID, Frequency: "biweekly"}, http.StatusBadRequest},
		{"Negative amount", v1.RecurringTransactionEditable{CategoryID: category.Data.ID, Frequency: models.FrequencyWeekly, Amount: decimal.NewFromInt(-5)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestRecurringTransaction(t, tt.body, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringTransactionsGetFilter() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	otherBudget := createTestBudget(suite.T(), v1.BudgetEditable{})

	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Housing"})
	otherCategory := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: otherBudget.Data.ID, Name: "Housing"})

	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Rent",
		Frequency:  models.FrequencyMonthly,
		Active:     true,
	})

	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Streaming",
		Frequency:  models.FrequencyWeekly,
	})

	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		CategoryID: otherCategory.Data.ID,
		Title:      "Insurance",
		Frequency:  models.FrequencyYearly,
		Active:     true,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category", fmt.Sprintf("category=%s", category.Data.ID), 2},
		{"Budget", fmt.Sprintf("budget=%s", budget.Data.ID), 2},
		{"Other budget", fmt.Sprintf("budget=%s", otherBudget.Data.ID), 1},
		{"Frequency monthly", "frequency=monthly", 1},
		{"Active", "active=true", 2},
		{"Limit", "limit=1", 1},
	}

	var re v1.RecurringTransactionListResponse
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/recurring?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)
			assert.Equal(t, tt.len, len(re.Data))
		})
	}
}

// TestRecurringTransactionsGetSorted verifies that recurring transactions
// are sorted by title.
func (suite *TestSuiteStandard) TestRecurringTransactionsGetSorted() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Housing"})

	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{CategoryID: category.Data.ID, Title: "Streaming"})
	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{CategoryID: category.Data.ID, Title: "Rent"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/recurring", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var recurring v1.RecurringTransactionListResponse
	test.DecodeResponse(suite.T(), &r, &recurring)

	require.Len(suite.T(), recurring.Data, 2)
	assert.Equal(suite.T(), "Rent", recurring.Data[0].Title)
	assert.Equal(suite.T(), "Streaming", recurring.Data[1].Title)
}

func (suite *TestSuiteStandard) TestRecurringTransactionsUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Housing"})

	recurring := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		CategoryID: category.Data.ID,
		Title:      "Rent",
		Active:     true,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, recurring.Data.Links.Self, map[string]any{
		"active": false,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updatedRecurring v1.RecurringTransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &updatedRecurring)

	assert.False(suite.T(), updatedRecurring.Data.Active)
	assert.Equal(suite.T(), "Rent", updatedRecurring.Data.Title)
}

func (suite *TestSuiteStandard) TestRecurringTransactionsDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{BudgetID: budget.Data.ID, Name: "Housing"})

	recurring := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{CategoryID: category.Data.ID, Title: "Rent"})

	recorder := test.Request(suite.T(), http.MethodDelete, recurring.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, recurring.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
