package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/tempo-budget/backend/internal/httputil"
	"github.com/tempo-budget/backend/internal/models"
)

type UserEditable struct {
	Name  string `json:"name" example:"Ellen" default:""`           // Display name of the user
	Email string `json:"email" example:"ellen@example.com"`         // Email address, unique across all users
}

// model returns the database resource for the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		Name:  editable.Name,
		Email: editable.Email,
	}
}

type UserLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/users/d1b4b4f4-d8b9-4b9e-9f5b-6d1f5b3f7e5a"`                 // The user itself
	Memberships  string `json:"memberships" example:"https://example.com/api/v1/members?user=d1b4b4f4-d8b9-4b9e-9f5b-6d1f5b3f7e5a"`   // Budget memberships of the user
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?paidBy=d1b4b4f4-d8b9-4b9e-9f5b-6d1f5b3f7e5a"` // Transactions paid by the user
}

// User is the API v1 representation of a User.
type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := httputil.RequestPathV1(c)

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:  model.Name,
			Email: model.Email,
		},
		Links: UserLinks{
			Self:         fmt.Sprintf("%s/users/%s", url, model.ID),
			Memberships:  fmt.Sprintf("%s/members?user=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/transactions?paidBy=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []UserResponse `json:"data"`                                                          // List of created users
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this user
}

type UserQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the user name
	Email  string `form:"email"`                      // By exact email address
	Search string `form:"search" filterField:"false"` // By string in name or email
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		Email: f.Email,
	}
}
