package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
)

// RegisterRecurringTransactionRoutes registers the routes for recurring
// transactions with the RouterGroup that is passed.
func RegisterRecurringTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringTransactionList)
		r.GET("", GetRecurringTransactions)
		r.POST("", CreateRecurringTransactions)
	}

	// Recurring transaction with ID
	{
		r.OPTIONS("/:id", OptionsRecurringTransactionDetail)
		r.GET("/:id", GetRecurringTransaction)
		r.PATCH("/:id", UpdateRecurringTransaction)
		r.DELETE("/:id", DeleteRecurringTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Router			/v1/recurring [options]
func OptionsRecurringTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/recurring/{id} [options]
func OptionsRecurringTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err := getModelByID[models.RecurringTransaction](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurring transactions
// @Description	Creates new recurring transaction templates
// @Tags			RecurringTransactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	RecurringTransactionCreateResponse
// @Failure		400			{object}	RecurringTransactionCreateResponse
// @Failure		404			{object}	RecurringTransactionCreateResponse
// @Failure		500			{object}	RecurringTransactionCreateResponse
// @Param			recurring	body		[]RecurringTransactionEditable	true	"RecurringTransactions"
// @Router			/v1/recurring [post]
func CreateRecurringTransactions(c *gin.Context) {
	var editables []RecurringTransactionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	finalStatus := http.StatusCreated
	r := RecurringTransactionCreateResponse{}

	for _, editable := range editables {
		recurring := editable.model()

		err := models.DB.Create(&recurring).Error
		if err != nil {
			finalStatus = r.appendError(err, finalStatus)
			continue
		}

		data := newRecurringTransaction(c, recurring)
		r.Data = append(r.Data, RecurringTransactionResponse{Data: &data})
	}

	c.JSON(finalStatus, r)
}

// @Summary		List recurring transactions
// @Description	Returns a list of recurring transaction templates
// @Tags			RecurringTransactions
// @Produce		json
// @Success		200	{object}	RecurringTransactionListResponse
// @Failure		400	{object}	RecurringTransactionListResponse
// @Failure		500	{object}	RecurringTransactionListResponse
// @Router			/v1/recurring [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			frequency	query	string	false	"Filter by frequency"
// @Param			active		query	bool	false	"Is the template active?"
// @Param			offset		query	uint	false	"The offset of the first RecurringTransaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of RecurringTransactions to return. Defaults to 50."
func GetRecurringTransactions(c *gin.Context) {
	var filter RecurringTransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionListResponse{
			Error: &s,
		})
		return
	}

	var recurring []models.RecurringTransaction

	q := models.DB.
		Order("recurring_transactions.title ASC").
		Where(model, queryFields...)

	if slices.Contains(setFields, "BudgetID") {
		budgetID, err := parseID(filter.BudgetID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), RecurringTransactionListResponse{
				Error: &s,
			})
			return
		}

		q = q.
			Joins("JOIN categories ON categories.id = recurring_transactions.category_id AND categories.deleted_at IS NULL").
			Where("categories.budget_id = ?", budgetID)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 templates and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err = query(c, q.Find(&recurring))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = query(c, q.Limit(-1).Offset(-1).Count(&count))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionListResponse{
			Error: &s,
		})
		return
	}

	apiResources := make([]RecurringTransaction, 0)
	for _, r := range recurring {
		apiResources = append(apiResources, newRecurringTransaction(c, r))
	}

	c.JSON(http.StatusOK, RecurringTransactionListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get recurring transaction
// @Description	Returns a specific recurring transaction template
// @Tags			RecurringTransactions
// @Produce		json
// @Success		200	{object}	RecurringTransactionResponse
// @Failure		400	{object}	RecurringTransactionResponse
// @Failure		404	{object}	RecurringTransactionResponse
// @Failure		500	{object}	RecurringTransactionResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/recurring/{id} [get]
func GetRecurringTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &s,
		})
		return
	}

	m, err := getModelByID[models.RecurringTransaction](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &s,
		})
		return
	}

	apiResource := newRecurringTransaction(c, m)
	c.JSON(http.StatusOK, RecurringTransactionResponse{Data: &apiResource})
}

// @Summary		Update recurring transaction
// @Description	Updates an existing recurring transaction template, e.g. to toggle the active flag. Only values to be updated need to be specified.
// @Tags			RecurringTransactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	RecurringTransactionResponse
// @Failure		400			{object}	RecurringTransactionResponse
// @Failure		404			{object}	RecurringTransactionResponse
// @Failure		500			{object}	RecurringTransactionResponse
// @Param			id			path		string							true	"ID formatted as string"
// @Param			recurring	body		RecurringTransactionEditable	true	"RecurringTransaction"
// @Router			/v1/recurring/{id} [patch]
func UpdateRecurringTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &s,
		})
		return
	}

	recurring, err := getModelByID[models.RecurringTransaction](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringTransactionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &s,
		})
		return
	}

	var data RecurringTransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &s,
		})
		return
	}

	err = query(c, models.DB.Model(&recurring).Select("", updateFields...).Updates(data.model()))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &s,
		})
		return
	}

	apiResource := newRecurringTransaction(c, recurring)
	c.JSON(http.StatusOK, RecurringTransactionResponse{Data: &apiResource})
}

// @Summary		Delete recurring transaction
// @Description	Deletes a recurring transaction template
// @Tags			RecurringTransactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/recurring/{id} [delete]
func DeleteRecurringTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	recurring, err := getModelByID[models.RecurringTransaction](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = query(c, models.DB.Delete(&recurring))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
