package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tempo-budget/backend/internal/types"
)

type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

// Month contains the monthly statistics of a budget. Projected only
// differs from Spent when the requested month is the current month,
// past and future months have nothing left to project.
type Month struct {
	ID         uuid.UUID       `json:"id" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The ID of the Budget
	Name       string          `json:"name" example:"Household"`                          // The name of the Budget
	Month      types.Month     `json:"month" example:"2024-04-01T00:00:00.000000Z"`       // The month
	Income     decimal.Decimal `json:"income" example:"2317.34"`                          // The total income of the month
	Spent      decimal.Decimal `json:"spent" example:"133.70"`                            // The total amount spent in the month
	Allocated  decimal.Decimal `json:"allocated" example:"1200.50"`                       // The sum of the category allocations
	Projected  decimal.Decimal `json:"projected" example:"183.70"`                        // Spent plus the projection of recurring expenses to the end of the month
	Categories []CategoryMonth `json:"categories"`                                        // Statistics per category
}

// CategoryMonth contains the statistics of one category for a month.
type CategoryMonth struct {
	Category
	Income    decimal.Decimal `json:"income" example:"0"`          // Income in the category for the month
	Spent     decimal.Decimal `json:"spent" example:"100.13"`      // Amount spent in the category for the month
	Allocated decimal.Decimal `json:"allocated" example:"90"`      // The monthly allocation of the category
	Projected decimal.Decimal `json:"projected" example:"150.13"`  // Spent plus the projection of recurring expenses
}
