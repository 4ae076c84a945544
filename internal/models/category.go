package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tempo-budget/backend/internal/types"
)

// Category represents a category of transactions.
//
// Amount is the monthly allocation for the category. Categories can be
// nested one level deep by setting ParentCategoryID.
type Category struct {
	DefaultModel
	Budget           Budget    `json:"-"`
	BudgetID         uuid.UUID `gorm:"uniqueIndex:category_name_budget_id"`
	Name             string    `gorm:"uniqueIndex:category_name_budget_id"`
	Note             string
	Amount           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ParentCategoryID *uuid.UUID
	Archived         bool
}

var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the budget")
	ErrCategoryParentInvalid = errors.New("the parent category must belong to the same budget")
	ErrCategoryParentNested  = errors.New("categories can only be nested one level deep")
)

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the category before
// committing an update to the database.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Category)

	if tx.Statement.Changed("BudgetID") || tx.Statement.Changed("ParentCategoryID") {
		return c.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources.
func (c *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	err := tx.First(&Budget{}, toSave.BudgetID).Error
	if err != nil {
		return err
	}

	if toSave.ParentCategoryID == nil {
		return nil
	}

	var parent Category
	err = tx.First(&parent, *toSave.ParentCategoryID).Error
	if err != nil {
		return err
	}

	if parent.BudgetID != toSave.BudgetID {
		return ErrCategoryParentInvalid
	}

	if parent.ParentCategoryID != nil {
		return ErrCategoryParentNested
	}

	return nil
}

// Sum returns the sum of all transactions of the given type for the
// category in a specific month.
func (c Category) Sum(db *gorm.DB, t TransactionType, month types.Month) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Select("SUM(amount)").
		Where(&Transaction{CategoryID: c.ID, Type: t}).
		Where("date >= date(?) AND date < date(?)", month, month.AddDate(0, 1)).
		Where("deleted_at IS NULL").
		Table("transactions").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !sum.Valid {
		return decimal.NewFromFloat(0), nil
	}

	return sum.Decimal, nil
}

// RecurringTransactions returns the active recurring transactions for the category.
func (c Category) RecurringTransactions(db *gorm.DB) ([]RecurringTransaction, error) {
	var recurring []RecurringTransaction

	err := db.
		Where(&RecurringTransaction{CategoryID: c.ID}).
		Where("active = ?", true).
		Find(&recurring).
		Error
	if err != nil {
		return nil, err
	}

	return recurring, nil
}
