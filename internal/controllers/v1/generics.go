package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tempo-budget/backend/internal/models"
	tempo_uuid "github.com/tempo-budget/backend/internal/uuid"
)

// getModelByID gets a resource of a specified type by its ID.
//
// If the resource does not exist or the ID is the zero UUID, an
// appropriate error is returned.
func getModelByID[T any](id uuid.UUID) (resource T, err error) {
	if id == uuid.Nil {
		return resource, errNoResourceID
	}

	err = models.DB.First(&resource, "id = ?", id).Error
	return resource, err
}

// parseID parses a UUID from a string. The empty string parses to the
// Nil UUID so that unset query parameters do not filter.
func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, tempo_uuid.ErrInvalid
	}

	return id, nil
}

// query executes a query and returns its error.
//
// The database callbacks already translate errors into user facing
// ones, the helper only exists so that the call sites read uniformly.
func query(_ *gin.Context, tx *gorm.DB) error {
	return tx.Error
}
