package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/nsokolova/prediction-service/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for error mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeModel represents the catalog model entity
	EntityTypeModel EntityType = "model"
	// EntityTypePrediction represents the prediction history entity
	EntityTypePrediction EntityType = "prediction"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, entityType EntityType, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.notFoundError(entityType)
	}

	// Check for PostgreSQL specific errors
	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return m.duplicateError(entityType)

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return fmt.Errorf("%w: %s", domainErr.ErrDatabaseConnection, err.Error())

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s", domainErr.ErrDatabaseConnection, err.Error())
	}
}

// IsDuplicateKeyError reports whether the error is a unique constraint violation
func (m *ErrorMapper) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

func (m *ErrorMapper) notFoundError(entityType EntityType) error {
	switch entityType {
	case EntityTypeUser:
		return domainErr.ErrUserNotFound
	case EntityTypeModel:
		return domainErr.ErrModelNotFound
	default:
		return domainErr.ErrInternalServer
	}
}

func (m *ErrorMapper) duplicateError(entityType EntityType) error {
	switch entityType {
	case EntityTypeModel:
		return domainErr.ErrDuplicateModel
	default:
		return domainErr.ErrDuplicateUser
	}
}
