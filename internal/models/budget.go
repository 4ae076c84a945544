package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// BudgetType determines whether a budget is tracked for a single
// user or shared between the members of a group.
type BudgetType string

const (
	BudgetTypePersonal BudgetType = "personal"
	BudgetTypeGroup    BudgetType = "group"
)

// Budget represents a budget
//
// A budget is the highest level of organization, all other
// resources reference it directly or transitively.
type Budget struct {
	DefaultModel
	Name       string
	Note       string
	BudgetType BudgetType
	Archived   bool
}

var ErrBudgetTypeInvalid = errors.New("budget type must be one of 'personal' and 'group'")

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	if b.BudgetType == "" {
		b.BudgetType = BudgetTypePersonal
	}

	if b.BudgetType != BudgetTypePersonal && b.BudgetType != BudgetTypeGroup {
		return ErrBudgetTypeInvalid
	}

	return nil
}

// Members returns the members of the budget.
func (b Budget) Members(db *gorm.DB) ([]BudgetMember, error) {
	var members []BudgetMember

	err := db.
		Where(&BudgetMember{BudgetID: b.ID}).
		Order("created_at ASC").
		Find(&members).
		Error
	if err != nil {
		return nil, err
	}

	return members, nil
}

// Categories returns the categories of the budget.
func (b Budget) Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.
		Where(&Category{BudgetID: b.ID}).
		Order("name ASC").
		Find(&categories).
		Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Transactions returns all transactions of the budget with the given type.
func (b Budget) Transactions(db *gorm.DB, t TransactionType) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Joins("JOIN categories ON transactions.category_id = categories.id AND categories.deleted_at IS NULL").
		Where("categories.budget_id = ?", b.ID).
		Where("transactions.type = ?", t).
		Order("transactions.date ASC").
		Find(&transactions).
		Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// RecurringTransactions returns all active recurring transactions of the budget.
func (b Budget) RecurringTransactions(db *gorm.DB) ([]RecurringTransaction, error) {
	var recurring []RecurringTransaction

	err := db.
		Joins("JOIN categories ON recurring_transactions.category_id = categories.id AND categories.deleted_at IS NULL").
		Where("categories.budget_id = ?", b.ID).
		Where("recurring_transactions.active = ?", true).
		Find(&recurring).
		Error
	if err != nil {
		return nil, err
	}

	return recurring, nil
}
