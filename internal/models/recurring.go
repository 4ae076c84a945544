package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Frequency determines how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringTransaction is a template for a transaction that repeats
// with a fixed frequency.
//
// Day is the day of the month the transaction is expected on. It is
// only meaningful for the monthly frequency. Values outside of the
// month are tolerated, such a template is never projected.
type RecurringTransaction struct {
	DefaultModel
	Category   Category  `json:"-"`
	CategoryID uuid.UUID
	Title      string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type       TransactionType
	Frequency  Frequency
	Day        *int
	Active     bool
}

var ErrRecurringFrequencyInvalid = errors.New("the frequency must be one of 'daily', 'weekly', 'monthly' and 'yearly'")

func (r *RecurringTransaction) BeforeSave(_ *gorm.DB) error {
	r.Title = strings.TrimSpace(r.Title)

	if r.Type == "" {
		r.Type = TransactionTypeExpense
	}

	if r.Type != TransactionTypeExpense && r.Type != TransactionTypeIncome {
		return ErrTransactionTypeInvalid
	}

	switch r.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
	default:
		return ErrRecurringFrequencyInvalid
	}

	return nil
}

func (r *RecurringTransaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(r.Amount) {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

func (r *RecurringTransaction) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*RecurringTransaction)
	return r.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the recurring transaction before
// committing an update to the database.
func (r *RecurringTransaction) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(RecurringTransaction)

	if tx.Statement.Changed("CategoryID") {
		return r.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources.
func (r *RecurringTransaction) checkIntegrity(tx *gorm.DB, toSave RecurringTransaction) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}
