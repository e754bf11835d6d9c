// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/pantrychef/internal/ingredient"
	"github.com/tomtom215/pantrychef/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed field of a request.
type FieldError struct {
	// Field is the json name of the field.
	Field string
	// Tag is the validation tag that failed, e.g. "max".
	Tag string
	// Param is the tag parameter, e.g. "100" for "max=100".
	Param string
	// Value is the rejected value.
	Value interface{}
	// Message is the client-facing message.
	Message string
}

// RequestValidationError collects every failed field of one request.
type RequestValidationError struct {
	Fields []FieldError
}

// Error joins the field messages.
func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.Fields))
	for i := range ve.Fields {
		messages[i] = ve.Fields[i].Message
	}
	return strings.Join(messages, "; ")
}

// ToAPIError converts the failures into a VALIDATION_ERROR body. A single
// failure puts the field in Details; several are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	apiErr := &models.APIError{Code: models.ErrCodeValidation, Message: "Validation failed"}

	switch len(ve.Fields) {
	case 0:
	case 1:
		f := ve.Fields[0]
		apiErr.Message = f.Message
		apiErr.Details = map[string]interface{}{
			"field": f.Field,
			"tag":   f.Tag,
			"value": f.Value,
		}
	default:
		fields := make([]map[string]interface{}, len(ve.Fields))
		messages := make([]string, len(ve.Fields))
		for i, f := range ve.Fields {
			fields[i] = map[string]interface{}{
				"field":   f.Field,
				"tag":     f.Tag,
				"message": f.Message,
			}
			messages[i] = f.Field + ": " + f.Message
		}
		apiErr.Message = strings.Join(messages, "; ")
		apiErr.Details = map[string]interface{}{"fields": fields}
	}
	return apiErr
}

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}
			return name
		})

		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation("ingredients", validateIngredients)
	})

	return validate
}

// validateIngredients accepts a comma-separated list holding at least one
// ingredient that survives normalization.
func validateIngredients(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return len(ingredient.ParseList(fl.Field().String())) > 0
}

// ValidateStruct validates s and returns nil or the collected failures.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Fields: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	out := &RequestValidationError{Fields: make([]FieldError, len(fieldErrs))}
	for i, fe := range fieldErrs {
		out.Fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe),
		}
	}
	return out
}

// message renders a validator.FieldError for API clients.
func message(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "ingredients":
		return field + " must contain at least one valid ingredient separated by commas"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
