package calculator

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Frequency determines how often a recurring template repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringTemplate is the subset of a recurring transaction that the
// projection needs. Day is the day of the month the transaction is
// expected on, zero when unset.
type RecurringTemplate struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Type       TransactionType
	Frequency  Frequency
	Day        int
	Active     bool
}

// ProjectRecurring estimates the amount that the active templates for
// the given categories will still post between today and the end of
// today's month.
//
// Occurrence counting per frequency:
//   - monthly: one occurrence if the template day is still ahead
//     (strictly after today) and inside the month. A day that has
//     passed, today itself, or a day outside the month contributes
//     nothing, the projector does not catch up missed occurrences.
//   - weekly: one occurrence per full week remaining.
//   - daily: one occurrence per remaining day.
//   - yearly: never projected, a yearly template is assumed not to be
//     imminent within the remaining days of the month.
//
// Inactive templates and templates of another type or category are
// skipped. There are no error conditions, out-of-range input simply
// contributes zero.
func ProjectRecurring(today time.Time, categoryIDs []uuid.UUID, templates []RecurringTemplate, transactionType TransactionType) decimal.Decimal {
	lastDay := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location()).Day()
	daysRemaining := lastDay - today.Day()

	total := decimal.Zero

	for _, template := range templates {
		if !template.Active || template.Type != transactionType {
			continue
		}

		if !slices.Contains(categoryIDs, template.CategoryID) {
			continue
		}

		var occurrences int
		switch template.Frequency {
		case FrequencyMonthly:
			if template.Day > today.Day() && template.Day <= lastDay {
				occurrences = 1
			}
		case FrequencyWeekly:
			occurrences = daysRemaining / 7
		case FrequencyDaily:
			occurrences = daysRemaining
		case FrequencyYearly:
			// always out of window for the current month
		}

		if occurrences == 0 {
			continue
		}

		total = total.Add(template.Amount.Mul(decimal.NewFromInt(int64(occurrences))))
	}

	return total
}
