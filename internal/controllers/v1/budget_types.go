package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
)

type BudgetEditable struct {
	Name       string            `json:"name" example:"Household" default:""`                     // Name of the budget
	Note       string            `json:"note" example:"My personal expenses" default:""`          // A longer description for the budget
	BudgetType models.BudgetType `json:"budgetType" example:"group" default:"personal"`           // Whether the budget is tracked for one person or shared by a group
	Archived   bool              `json:"archived" example:"true" default:"false"`                 // Is the budget archived?
}

// model returns the database resource for the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:       editable.Name,
		Note:       editable.Note,
		BudgetType: editable.BudgetType,
		Archived:   editable.Archived,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`              // The budget itself
	Members      string `json:"members" example:"https://example.com/api/v1/members?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // Members of the budget
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Categories of the budget
	Balances     string `json:"balances" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/balances"` // Member balances and settlement plan
	Month        string `json:"month" example:"https://example.com/api/v1/months?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`       // Monthly statistics for the budget
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := httputil.RequestPathV1(c)

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:       model.Name,
			Note:       model.Note,
			BudgetType: model.BudgetType,
			Archived:   model.Archived,
		},
		Links: BudgetLinks{
			Self:       fmt.Sprintf("%s/budgets/%s", url, model.ID),
			Members:    fmt.Sprintf("%s/members?budget=%s", url, model.ID),
			Categories: fmt.Sprintf("%s/categories?budget=%s", url, model.ID),
			Balances:   fmt.Sprintf("%s/budgets/%s/balances", url, model.ID),
			Month:      fmt.Sprintf("%s/months?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
}

type BudgetQueryFilter struct {
	Name       string `form:"name" filterField:"false"`   // Fuzzy filter for the budget name
	Note       string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	BudgetType string `form:"budgetType"`                 // By the budget type
	Archived   bool   `form:"archived"`                   // Is the budget archived?
	Search     string `form:"search" filterField:"false"` // By string in name or note
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		BudgetType: models.BudgetType(f.BudgetType),
		Archived:   f.Archived,
	}
}
