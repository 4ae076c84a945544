package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
)

type TransactionEditable struct {
	CategoryID   uuid.UUID              `json:"categoryId" example:"3fbdf771-eeb6-4228-b7ce-d4b41e2e5c32"`                             // ID of the category
	Title        string                 `json:"title" example:"Weekly groceries" default:""`                                           // Title of the transaction
	Note         string                 `json:"note" example:"Bought extra cheese" default:""`                                         // A longer description for the transaction
	Amount       decimal.Decimal        `json:"amount" example:"14.03" default:"0" minimum:"0.00000001" multipleOf:"0.00000001"`       // The amount, always positive
	Type         models.TransactionType `json:"type" example:"expense" default:"expense"`                                              // Whether the transaction is an expense or income
	Date         time.Time              `json:"date" example:"2024-04-10T00:00:00Z"`                                                   // Date of the transaction. Defaults to the creation time.
	PaidByUserID *uuid.UUID             `json:"paidByUserId" example:"d1b4b4f4-d8b9-4b9e-9f5b-6d1f5b3f7e5a"`                           // ID of the user that paid, optional
	Recurring    bool                   `json:"recurring" example:"false" default:"false"`                                             // Was the transaction created from a recurring template?
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		CategoryID:   editable.CategoryID,
		Title:        editable.Title,
		Note:         editable.Note,
		Amount:       editable.Amount,
		Type:         editable.Type,
		Date:         editable.Date,
		PaidByUserID: editable.PaidByUserID,
		Recurring:    editable.Recurring,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3fbdf771-eeb6-4228-b7ce-d4b41e2e5c32"` // The category of the transaction
}

// Transaction is the API v1 representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.RequestPathV1(c)

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			CategoryID:   model.CategoryID,
			Title:        model.Title,
			Note:         model.Note,
			Amount:       model.Amount,
			Type:         model.Type,
			Date:         model.Date,
			PaidByUserID: model.PaidByUserID,
			Recurring:    model.Recurring,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
}

type TransactionQueryFilter struct {
	CategoryID string    `form:"category"`                    // By category ID
	BudgetID   string    `form:"budget" filterField:"false"`  // By budget ID
	Title      string    `form:"title" filterField:"false"`   // Fuzzy filter for the title
	Note       string    `form:"note" filterField:"false"`    // Fuzzy filter for the note
	Type       string    `form:"type"`                        // By transaction type
	PaidBy     string    `form:"paidBy" filterField:"false"`  // By the user that paid
	Recurring  bool      `form:"recurring"`                   // Was the transaction created from a recurring template?
	FromDate   time.Time `form:"fromDate" filterField:"false" time_format:"2006-01-02" time_utc:"1"` // Transactions at or after this date
	UntilDate  time.Time `form:"untilDate" filterField:"false" time_format:"2006-01-02" time_utc:"1"` // Transactions before or at this date
	Offset     uint      `form:"offset" filterField:"false"`  // The offset of the first Transaction returned. Defaults to 0.
	Limit      int       `form:"limit" filterField:"false"`   // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	categoryID, err := parseID(f.CategoryID)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		CategoryID: categoryID,
		Type:       models.TransactionType(f.Type),
		Recurring:  f.Recurring,
	}, nil
}
