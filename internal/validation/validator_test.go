// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/pantrychef/internal/models"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type searchRequest struct {
	Ingredients string `json:"ingredients" validate:"required,max=200,ingredients"`
	Limit       int    `json:"limit" validate:"min=0,max=100"`
	Offset      int    `json:"offset" validate:"min=0"`
	Sort        string `json:"sort" validate:"omitempty,oneof=score title"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input searchRequest
	}{
		{"single ingredient", searchRequest{Ingredients: "eggs"}},
		{"list with blanks", searchRequest{Ingredients: "eggs, , milk"}},
		{"bounds", searchRequest{Ingredients: "rice", Limit: 100, Offset: 1000}},
		{"optional sort", searchRequest{Ingredients: "rice", Sort: "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     searchRequest
		wantField string
		wantTag   string
	}{
		{"missing ingredients", searchRequest{}, "ingredients", "required"},
		{"only separators", searchRequest{Ingredients: " , ,, "}, "ingredients", "ingredients"},
		{"only punctuation", searchRequest{Ingredients: "!!!, ???"}, "ingredients", "ingredients"},
		{"too long", searchRequest{Ingredients: strings.Repeat("a", 201)}, "ingredients", "max"},
		{"negative limit", searchRequest{Ingredients: "eggs", Limit: -1}, "limit", "min"},
		{"limit above max", searchRequest{Ingredients: "eggs", Limit: 101}, "limit", "max"},
		{"negative offset", searchRequest{Ingredients: "eggs", Offset: -5}, "offset", "min"},
		{"bad sort", searchRequest{Ingredients: "eggs", Sort: "random"}, "sort", "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := err.Fields
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
			if errs[0].Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", errs[0].Tag, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_NonStructInput(t *testing.T) {
	err := ValidateStruct("not a struct")
	if err == nil {
		t.Fatal("expected error for non-struct input")
	}
	if err.Fields[0].Field != "unknown" {
		t.Errorf("Field = %q, want unknown", err.Fields[0].Field)
	}
}

// ===================================================================================================
// ToAPIError Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&searchRequest{Ingredients: "eggs", Limit: 500})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != models.ErrCodeValidation {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "limit must be at most 100" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details == nil || apiErr.Details["field"] != "limit" {
		t.Errorf("Details = %v, want field limit", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&searchRequest{Limit: -1, Offset: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Fields) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(err.Fields))
	}

	apiErr := err.ToAPIError()
	if !strings.Contains(apiErr.Message, "ingredients: ingredients is required") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("Details should contain fields")
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != models.ErrCodeValidation || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty error should have generic message")
	}
}

// ===================================================================================================
// Message Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input searchRequest
		want  string
	}{
		{"required", searchRequest{}, "ingredients is required"},
		{"ingredients", searchRequest{Ingredients: ","}, "ingredients must contain at least one valid ingredient separated by commas"},
		{"string max", searchRequest{Ingredients: strings.Repeat("b", 201)}, "ingredients must be at most 200 characters"},
		{"number min", searchRequest{Ingredients: "eggs", Offset: -1}, "offset must be at least 0"},
		{"oneof", searchRequest{Ingredients: "eggs", Sort: "x"}, "sort must be one of: score title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
