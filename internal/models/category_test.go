package models_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tempo-budget/backend/internal/models"
	"github.com/tempo-budget/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCategoryNameUniquePerBudget() {
	budget := suite.createTestBudget(models.Budget{})
	other := suite.createTestBudget(models.Budget{})

	_ = suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Groceries"})

	// The same name in another budget is fine
	_ = suite.createTestCategory(models.Category{BudgetID: other.ID, Name: "Groceries"})

	err := models.DB.Create(&models.Category{BudgetID: budget.ID, Name: "Groceries"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryParentSameBudget() {
	budget := suite.createTestBudget(models.Budget{})
	other := suite.createTestBudget(models.Budget{})

	parent := suite.createTestCategory(models.Category{BudgetID: other.ID})

	err := models.DB.Create(&models.Category{BudgetID: budget.ID, Name: "Child", ParentCategoryID: &parent.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryParentInvalid)
}

func (suite *TestSuiteStandard) TestCategoryParentOneLevel() {
	budget := suite.createTestBudget(models.Budget{})

	parent := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Food"})
	child := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Groceries", ParentCategoryID: &parent.ID})

	err := models.DB.Create(&models.Category{BudgetID: budget.ID, Name: "Grandchild", ParentCategoryID: &child.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryParentNested)
}

func (suite *TestSuiteStandard) TestCategorySum() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID})

	april := types.NewMonth(2024, 4)

	_ = suite.createTestTransaction(models.Transaction{
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(14.03),
		Date:       time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(5.97),
		Date:       time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC),
	})

	// Outside of the month
	_ = suite.createTestTransaction(models.Transaction{
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(100),
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	// Income does not count toward the expense sum
	_ = suite.createTestTransaction(models.Transaction{
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(50),
		Type:       models.TransactionTypeIncome,
		Date:       time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
	})

	sum, err := category.Sum(models.DB, models.TransactionTypeExpense, april)
	suite.Require().Nil(err)
	suite.Assert().True(sum.Equal(decimal.NewFromInt(20)), "Expense sum is %s, expected 20", sum)

	income, err := category.Sum(models.DB, models.TransactionTypeIncome, april)
	suite.Require().Nil(err)
	suite.Assert().True(income.Equal(decimal.NewFromInt(50)), "Income sum is %s, expected 50", income)
}

func (suite *TestSuiteStandard) TestCategorySumEmpty() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID})

	sum, err := category.Sum(models.DB, models.TransactionTypeExpense, types.NewMonth(2024, 4))
	suite.Require().Nil(err)
	suite.Assert().True(sum.IsZero())
}
