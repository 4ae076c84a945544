package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
)

type MemberEditable struct {
	BudgetID     uuid.UUID         `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                    // ID of the budget
	UserID       uuid.UUID         `json:"userId" example:"d1b4b4f4-d8b9-4b9e-9f5b-6d1f5b3f7e5a"`                                      // ID of the user
	Role         models.MemberRole `json:"role" example:"owner" default:"member"`                                                      // Role of the member in the budget
	SharePercent decimal.Decimal   `json:"sharePercent" example:"60" default:"0" minimum:"0" maximum:"100" multipleOf:"0.00000001"` // Percentage of the total expenses the member is responsible for
}

// model returns the database resource for the editable fields
func (editable MemberEditable) model() models.BudgetMember {
	return models.BudgetMember{
		BudgetID:     editable.BudgetID,
		UserID:       editable.UserID,
		Role:         editable.Role,
		SharePercent: editable.SharePercent,
	}
}

type MemberLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/members/2c006d11-2b9c-49bb-9af4-a7ade78bd05a"`     // The membership itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // The budget
	User   string `json:"user" example:"https://example.com/api/v1/users/d1b4b4f4-d8b9-4b9e-9f5b-6d1f5b3f7e5a"`       // The user
}

// Member is the API v1 representation of a BudgetMember.
type Member struct {
	models.DefaultModel
	MemberEditable
	Links MemberLinks `json:"links"`
}

func newMember(c *gin.Context, model models.BudgetMember) Member {
	url := httputil.RequestPathV1(c)

	return Member{
		DefaultModel: model.DefaultModel,
		MemberEditable: MemberEditable{
			BudgetID:     model.BudgetID,
			UserID:       model.UserID,
			Role:         model.Role,
			SharePercent: model.SharePercent,
		},
		Links: MemberLinks{
			Self:   fmt.Sprintf("%s/members/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/budgets/%s", url, model.BudgetID),
			User:   fmt.Sprintf("%s/users/%s", url, model.UserID),
		},
	}
}

type MemberListResponse struct {
	Data       []Member    `json:"data"`                                                          // List of members
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MemberCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MemberResponse `json:"data"`                                                          // List of created members
}

func (m *MemberCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MemberResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MemberResponse struct {
	Data  *Member `json:"data"`                                                          // Data for the member
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this member
}

type MemberQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	UserID   string `form:"user"`                       // By user ID
	Role     string `form:"role"`                       // By role
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Member returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Members to return. Defaults to 50.
}

func (f MemberQueryFilter) model() (models.BudgetMember, error) {
	budgetID, err := parseID(f.BudgetID)
	if err != nil {
		return models.BudgetMember{}, err
	}

	userID, err := parseID(f.UserID)
	if err != nil {
		return models.BudgetMember{}, err
	}

	return models.BudgetMember{
		BudgetID: budgetID,
		UserID:   userID,
		Role:     models.MemberRole(f.Role),
	}, nil
}
