package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines whether a transaction reduces or
// increases the available money.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single expense or income.
//
// PaidByUserID attributes the payment to a member of a group budget.
// It is optional, expenses without a payer still count toward the
// budget total but toward nobody's paid sum.
type Transaction struct {
	DefaultModel
	Category     Category  `json:"-"`
	CategoryID   uuid.UUID
	Title        string
	Note         string
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type         TransactionType
	Date         time.Time
	PaidByUserID *uuid.UUID
	Recurring    bool // Set when the transaction was materialized from a recurring template
}

var (
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be one of 'expense' and 'income'")
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
)

// BeforeSave sets the timezone for the Date to UTC and verifies the type.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Type == "" {
		t.Type = TransactionTypeExpense
	}

	if t.Type != TransactionTypeExpense && t.Type != TransactionTypeIncome {
		return ErrTransactionTypeInvalid
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the transaction before
// committing an update to the database.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("CategoryID") {
		err := t.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("PaidByUserID") && toSave.PaidByUserID != nil {
		return tx.First(&User{}, *toSave.PaidByUserID).Error
	}

	return nil
}

// checkIntegrity verifies references to other resources.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&Category{}, toSave.CategoryID).Error
	if err != nil {
		return err
	}

	if toSave.PaidByUserID != nil {
		return tx.First(&User{}, *toSave.PaidByUserID).Error
	}

	return nil
}
