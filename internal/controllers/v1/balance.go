package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tempo-budget/backend/internal/calculator"
	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/balances [options]
func OptionsBudgetBalances(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err := getModelByID[models.Budget](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get budget balances
// @Description	Returns the balance of every member of a group budget together with the suggested settlement transfers. The view is computed on every request and never persisted.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetBalancesResponse
// @Failure		400	{object}	BudgetBalancesResponse
// @Failure		404	{object}	BudgetBalancesResponse
// @Failure		500	{object}	BudgetBalancesResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/balances [get]
func GetBudgetBalances(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetBalancesResponse{
			Error: &s,
		})
		return
	}

	budget, err := getModelByID[models.Budget](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetBalancesResponse{
			Error: &s,
		})
		return
	}

	if budget.BudgetType != models.BudgetTypeGroup {
		s := errBudgetNotGroup.Error()
		c.JSON(http.StatusBadRequest, BudgetBalancesResponse{
			Error: &s,
		})
		return
	}

	members, err := budget.Members(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetBalancesResponse{
			Error: &s,
		})
		return
	}

	shares, shareTotal, err := memberShares(members)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetBalancesResponse{
			Error: &s,
		})
		return
	}

	expenses, err := budget.Transactions(models.DB, models.TransactionTypeExpense)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetBalancesResponse{
			Error: &s,
		})
		return
	}

	records := make([]calculator.ExpenseRecord, 0, len(expenses))
	totalExpenses := decimal.Zero
	for _, t := range expenses {
		paidBy := uuid.Nil
		if t.PaidByUserID != nil {
			paidBy = *t.PaidByUserID
		}

		records = append(records, calculator.ExpenseRecord{
			Amount: t.Amount,
			Type:   calculator.TransactionType(t.Type),
			PaidBy: paidBy,
		})
		totalExpenses = totalExpenses.Add(t.Amount)
	}

	balances := calculator.ComputeBalances(shares, records)

	c.JSON(http.StatusOK, BudgetBalancesResponse{
		Data: &BudgetBalances{
			Members:       balances,
			Transfers:     calculator.PlanSettlements(balances),
			TotalExpenses: totalExpenses,
			ShareTotal:    shareTotal,
		},
	})
}

// memberShares resolves the user names for the members of a budget and
// maps them to the calculator input.
func memberShares(members []models.BudgetMember) ([]calculator.MemberShare, decimal.Decimal, error) {
	shares := make([]calculator.MemberShare, 0, len(members))
	shareTotal := decimal.Zero

	for _, m := range members {
		var user models.User
		err := models.DB.First(&user, "id = ?", m.UserID).Error
		if err != nil {
			return nil, decimal.Zero, err
		}

		shares = append(shares, calculator.MemberShare{
			UserID:       m.UserID,
			UserName:     user.Name,
			SharePercent: m.SharePercent,
		})
		shareTotal = shareTotal.Add(m.SharePercent)
	}

	return shares, shareTotal, nil
}
