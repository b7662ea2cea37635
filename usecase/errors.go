package usecase

import (
	"errors"
	"fmt"

	"instituteapi/model"
	"instituteapi/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrTwoFactorRequired  = errors.New("two-factor code required")
	ErrInvalidTwoFactor   = errors.New("invalid two-factor code")
)

// ValidationError carries per-field messages and matches ErrValidation
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, model.FieldErrors(e.Fields).Error())
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func validate(v interface{ Validate() error }) error {
	err := v.Validate()
	if err == nil {
		return nil
	}
	var fe model.FieldErrors
	if errors.As(err, &fe) {
		return &ValidationError{Fields: fe}
	}
	return &ValidationError{Fields: map[string]string{"body": err.Error()}}
}

// storeErr translates repository errors into usecase errors
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	}
	return err
}

// ParseID treats a malformed id like a missing document
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}
