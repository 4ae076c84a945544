package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// User represents a person that can own budgets and be a member of
// group budgets.
//
// Authentication is handled outside of this backend, users only exist
// so that members and payer attributions resolve to a name.
type User struct {
	DefaultModel
	Name  string
	Email string `gorm:"uniqueIndex"`
}

var (
	ErrUserEmailNotUnique = errors.New("a user with this email address already exists")
	ErrUserEmailRequired  = errors.New("the user email must be set")
)

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	_ = u.DefaultModel.BeforeCreate(tx)

	if u.Email == "" {
		return ErrUserEmailRequired
	}

	return nil
}

// BeforeUpdate prevents clearing the email address. Partial updates
// that do not touch the email are fine.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Email") {
		toSave := tx.Statement.Dest.(User)
		if strings.TrimSpace(toSave.Email) == "" {
			return ErrUserEmailRequired
		}
	}

	return nil
}
