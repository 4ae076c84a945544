package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MemberRole determines what a member can do with a budget.
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleMember MemberRole = "member"
)

// BudgetMember represents the membership of a user in a group budget.
//
// SharePercent is the percentage of the total group expenses the member
// is responsible for. The shares of all members of a budget should sum
// to 100, but this is not enforced: balance calculation works with any
// share total, clients are expected to warn about deviations.
type BudgetMember struct {
	DefaultModel
	Budget       Budget    `json:"-"`
	BudgetID     uuid.UUID `gorm:"uniqueIndex:member_budget_user"`
	User         User      `json:"-"`
	UserID       uuid.UUID `gorm:"uniqueIndex:member_budget_user"`
	Role         MemberRole
	SharePercent decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrMemberNotUnique   = errors.New("this user already is a member of the budget")
	ErrMemberRoleInvalid = errors.New("the member role must be one of 'owner' and 'member'")
)

func (m *BudgetMember) BeforeSave(_ *gorm.DB) error {
	if m.Role == "" {
		m.Role = MemberRoleMember
	}

	if m.Role != MemberRoleOwner && m.Role != MemberRoleMember {
		return ErrMemberRoleInvalid
	}

	return nil
}

func (m *BudgetMember) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*BudgetMember)
	return m.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the member before
// committing an update to the database.
func (m *BudgetMember) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(BudgetMember)

	if tx.Statement.Changed("BudgetID") || tx.Statement.Changed("UserID") {
		return m.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources.
func (m *BudgetMember) checkIntegrity(tx *gorm.DB, toSave BudgetMember) error {
	err := tx.First(&Budget{}, toSave.BudgetID).Error
	if err != nil {
		return err
	}

	return tx.First(&User{}, toSave.UserID).Error
}
