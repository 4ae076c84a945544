package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
)

type CategoryEditable struct {
	BudgetID         uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                  // ID of the budget the category belongs to
	Name             string          `json:"name" example:"Groceries" default:""`                                                      // Name of the category
	Note             string          `json:"note" example:"Everything bought at the supermarket" default:""`                           // A longer description for the category
	Amount           decimal.Decimal `json:"amount" example:"450" default:"0" minimum:"0" multipleOf:"0.00000001"`                     // Monthly allocation for the category
	ParentCategoryID *uuid.UUID      `json:"parentCategoryId" example:"3fbdf771-eeb6-4228-b7ce-d4b41e2e5c32"`                          // ID of the parent category, for one level of nesting
	Archived         bool            `json:"archived" example:"true" default:"false"`                                                  // Is the category archived?
}

// model returns the database resource for the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		BudgetID:         editable.BudgetID,
		Name:             editable.Name,
		Note:             editable.Note,
		Amount:           editable.Amount,
		ParentCategoryID: editable.ParentCategoryID,
		Archived:         editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3fbdf771-eeb6-4228-b7ce-d4b41e2e5c32"`                 // The category itself
	Budget       string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                  // The budget
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3fbdf771-eeb6-4228-b7ce-d4b41e2e5c32"` // Transactions in the category
	Recurring    string `json:"recurring" example:"https://example.com/api/v1/recurring?category=3fbdf771-eeb6-4228-b7ce-d4b41e2e5c32"`    // Recurring transactions in the category
}

// Category is the API v1 representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := httputil.RequestPathV1(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			BudgetID:         model.BudgetID,
			Name:             model.Name,
			Note:             model.Note,
			Amount:           model.Amount,
			ParentCategoryID: model.ParentCategoryID,
			Archived:         model.Archived,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/categories/%s", url, model.ID),
			Budget:       fmt.Sprintf("%s/budgets/%s", url, model.BudgetID),
			Transactions: fmt.Sprintf("%s/transactions?category=%s", url, model.ID),
			Recurring:    fmt.Sprintf("%s/recurring?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created categories
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
}

type CategoryQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	Name     string `form:"name" filterField:"false"`   // Fuzzy filter for the category name
	Note     string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Parent   string `form:"parent" filterField:"false"` // By parent category ID
	Archived bool   `form:"archived"`                   // Is the category archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	budgetID, err := parseID(f.BudgetID)
	if err != nil {
		return models.Category{}, err
	}

	return models.Category{
		BudgetID: budgetID,
		Archived: f.Archived,
	}, nil
}
