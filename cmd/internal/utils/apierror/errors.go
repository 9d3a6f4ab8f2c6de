package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

// CompanyNotFoundError is returned by every lookup scoped to a DUNS number
// without a company, dependent lookups included.
type CompanyNotFoundError struct {
	Message string `json:"message"`
	DUNS    string `json:"duns"`
}

func (e *CompanyNotFoundError) Code() int {
	return http.StatusNotFound
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	DatabaseUnavailable = NewSimple(http.StatusServiceUnavailable, "Database unavailable")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		numeric := isNumeric(fe.Kind())

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required")
		case "min", "gte":
			if numeric {
				problems.Add(field, "Value must be greater than or equal to "+fe.Param())
			} else {
				problems.Add(field, "Value is too short, min: "+fe.Param())
			}
		case "max", "lte":
			if numeric {
				problems.Add(field, "Value must be less than or equal to "+fe.Param())
			} else {
				problems.Add(field, "Value is too long, max: "+fe.Param())
			}
		case "numeric":
			problems.Add(field, "Value must be a number")

		default:
			problems.Add(field, "Invalid value provided")
		}
	}
	return problems
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewCompanyNotFoundError(duns string) *CompanyNotFoundError {
	return &CompanyNotFoundError{
		Message: fmt.Sprintf("Company with DUNS %s not found", duns),
		DUNS:    duns,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
