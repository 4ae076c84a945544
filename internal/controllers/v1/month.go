package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"

	"github.com/tempo-budget/backend/internal/calculator"
	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
	"github.com/tempo-budget/backend/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get data about a month
// @Description	Returns the monthly statistics of a budget: income, spending and allocation per category, plus the projection of recurring transactions when the requested month is the current month.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			budget	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			name	query		string	false	"Glob pattern to filter category names, e.g. Gro*"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	month, budget, nameFilter, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	result := Month{
		ID:    budget.ID,
		Name:  budget.Name,
		Month: month,
	}

	categories, err := budget.Categories(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	// Recurring templates only matter when the requested month is the
	// month we are in right now. For any other month there are no
	// remaining days to project into.
	var templates []calculator.RecurringTemplate
	today := time.Now().In(time.UTC)
	if month.Contains(today) {
		recurring, err := budget.RecurringTransactions(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthResponse{
				Error: &s,
			})
			return
		}

		templates = recurringTemplates(recurring)
	}

	result.Categories = make([]CategoryMonth, 0)

	for _, category := range categories {
		if nameFilter != "" && !glob.Glob(nameFilter, category.Name) {
			continue
		}

		categoryMonth, err := categoryMonth(c, category, month, today, templates)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthResponse{
				Error: &s,
			})
			return
		}

		result.Income = result.Income.Add(categoryMonth.Income)
		result.Spent = result.Spent.Add(categoryMonth.Spent)
		result.Allocated = result.Allocated.Add(categoryMonth.Allocated)
		result.Projected = result.Projected.Add(categoryMonth.Projected)

		result.Categories = append(result.Categories, categoryMonth)
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &result})
}

// categoryMonth calculates the month specific values for a category.
func categoryMonth(c *gin.Context, category models.Category, month types.Month, today time.Time, templates []calculator.RecurringTemplate) (CategoryMonth, error) {
	spent, err := category.Sum(models.DB, models.TransactionTypeExpense, month)
	if err != nil {
		return CategoryMonth{}, err
	}

	income, err := category.Sum(models.DB, models.TransactionTypeIncome, month)
	if err != nil {
		return CategoryMonth{}, err
	}

	projected := spent
	if len(templates) > 0 {
		projected = projected.Add(calculator.ProjectRecurring(
			today,
			[]uuid.UUID{category.ID},
			templates,
			calculator.TypeExpense,
		))
	}

	return CategoryMonth{
		Category:  newCategory(c, category),
		Income:    income,
		Spent:     spent,
		Allocated: category.Amount,
		Projected: projected,
	}, nil
}

// recurringTemplates maps recurring transactions to the calculator input.
func recurringTemplates(recurring []models.RecurringTransaction) []calculator.RecurringTemplate {
	templates := make([]calculator.RecurringTemplate, 0, len(recurring))

	for _, r := range recurring {
		day := 0
		if r.Day != nil {
			day = *r.Day
		}

		templates = append(templates, calculator.RecurringTemplate{
			CategoryID: r.CategoryID,
			Amount:     r.Amount,
			Type:       calculator.TransactionType(r.Type),
			Frequency:  calculator.Frequency(r.Frequency),
			Day:        day,
			Active:     r.Active,
		})
	}

	return templates
}

// parseMonthQuery parses the request query.
//
// It verifies that the requested budget exists and parses the ID to
// return the budget resource itself.
func parseMonthQuery(c *gin.Context) (types.Month, models.Budget, string, error) {
	var query struct {
		QueryMonth
		BudgetID string `form:"budget" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
		Name     string `form:"name" example:"Gro*"`
	}

	if err := c.BindQuery(&query); err != nil {
		return types.Month{}, models.Budget{}, "", httputil.ErrInvalidBody
	}

	if query.Month.IsZero() {
		return types.Month{}, models.Budget{}, "", errMonthNotSetInQuery
	}

	budgetID, err := parseID(query.BudgetID)
	if err != nil {
		return types.Month{}, models.Budget{}, "", err
	}

	budget, err := getModelByID[models.Budget](budgetID)
	if err != nil {
		return types.Month{}, models.Budget{}, "", err
	}

	return types.MonthOf(query.Month), budget, query.Name, nil
}
