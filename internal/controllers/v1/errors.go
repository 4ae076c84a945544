package v1

import (
	"errors"
	"net/http"

	"github.com/tempo-budget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errNoResourceID       = errors.New("no resource ID specified")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errBudgetNotGroup     = errors.New("balances are only available for group budgets")
)
