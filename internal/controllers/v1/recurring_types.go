package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
)

type RecurringTransactionEditable struct {
	CategoryID uuid.UUID              `json:"categoryId" example:"3fbdf771-eeb6-4228-b7ce-d4b41e2e5c32"`                       // ID of the category
	Title      string                 `json:"title" example:"Rent" default:""`                                                 // Title of the recurring transaction
	Amount     decimal.Decimal        `json:"amount" example:"50" default:"0" minimum:"0.00000001" multipleOf:"0.00000001"`    // The amount, always positive
	Type       models.TransactionType `json:"type" example:"expense" default:"expense"`                                        // Whether the transaction is an expense or income
	Frequency  models.Frequency       `json:"frequency" example:"monthly"`                                                     // How often the transaction repeats
	Day        *int                   `json:"day" example:"15"`                                                                // Day of the month the transaction is expected on, for the monthly frequency
	Active     bool                   `json:"active" example:"true" default:"false"`                                           // Is the template active?
}

// model returns the database resource for the editable fields
func (editable RecurringTransactionEditable) model() models.RecurringTransaction {
	return models.RecurringTransaction{
		CategoryID: editable.CategoryID,
		Title:      editable.Title,
		Amount:     editable.Amount,
		Type:       editable.Type,
		Frequency:  editable.Frequency,
		Day:        editable.Day,
		Active:     editable.Active,
	}
}

type RecurringTransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/recurring/8cf93bb9-add9-4b89-a4cf-4222ff07bc97"` // The recurring transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3fbdf771-eeb6-4228-b7ce-d4b41e2e5c32"` // The category of the recurring transaction
}

// RecurringTransaction is the API v1 representation of a RecurringTransaction.
type RecurringTransaction struct {
	models.DefaultModel
	RecurringTransactionEditable
	Links RecurringTransactionLinks `json:"links"`
}

func newRecurringTransaction(c *gin.Context, model models.RecurringTransaction) RecurringTransaction {
	url := httputil.RequestPathV1(c)

	return RecurringTransaction{
		DefaultModel: model.DefaultModel,
		RecurringTransactionEditable: RecurringTransactionEditable{
			CategoryID: model.CategoryID,
			Title:      model.Title,
			Amount:     model.Amount,
			Type:       model.Type,
			Frequency:  model.Frequency,
			Day:        model.Day,
			Active:     model.Active,
		},
		Links: RecurringTransactionLinks{
			Self:     fmt.Sprintf("%s/recurring/%s", url, model.ID),
			Category: fmt.Sprintf("%s/categories/%s", url, model.CategoryID),
		},
	}
}

type RecurringTransactionListResponse struct {
	Data       []RecurringTransaction `json:"data"`                                                          // List of recurring transactions
	Error      *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination            `json:"pagination"`                                                    // Pagination information
}

type RecurringTransactionCreateResponse struct {
	Error *string                        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RecurringTransactionResponse `json:"data"`                                                          // List of created recurring transactions
}

func (r *RecurringTransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecurringTransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecurringTransactionResponse struct {
	Data  *RecurringTransaction `json:"data"`                                                          // Data for the recurring transaction
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this recurring transaction
}

type RecurringTransactionQueryFilter struct {
	CategoryID string `form:"category"`                   // By category ID
	BudgetID   string `form:"budget" filterField:"false"` // By budget ID
	Type       string `form:"type"`                       // By transaction type
	Frequency  string `form:"frequency"`                  // By frequency
	Active     bool   `form:"active"`                     // Is the template active?
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first RecurringTransaction returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of RecurringTransactions to return. Defaults to 50.
}

func (f RecurringTransactionQueryFilter) model() (models.RecurringTransaction, error) {
	categoryID, err := parseID(f.CategoryID)
	if err != nil {
		return models.RecurringTransaction{}, err
	}

	return models.RecurringTransaction{
		CategoryID: categoryID,
		Type:       models.TransactionType(f.Type),
		Frequency:  models.Frequency(f.Frequency),
		Active:     f.Active,
	}, nil
}
