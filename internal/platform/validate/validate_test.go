// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Dune", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_MaxLen counts runes rather than bytes.
*/
func TestValidator_MaxLen(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"under_limit", "Borges", true},
		{"at_limit_multibyte", "Gödel", true},
		{"over_limit", "Dostoyevsky", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MaxLen("last_name", tt.value, 6)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Optional checks that absent optional values are never rejected.
*/
func TestValidator_Optional(t *testing.T) {
	long := "a much longer summary than allowed"

	v := &validate.Validator{}
	v.OptionalMaxLen("summary", nil, 5)
	assert.False(t, v.HasErrors())

	v.OptionalMaxLen("summary", &long, 5)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Min checks the lower bound rule.
*/
func TestValidator_Min(t *testing.T) {
	v := &validate.Validator{}
	v.Min("year", 0, 0).Min("year", 1965, 0)
	assert.False(t, v.HasErrors())

	v.Min("year", -1, 0)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Max checks the upper bound rule.
*/
func TestValidator_Max(t *testing.T) {
	v := &validate.Validator{}
	v.Max("year", math.MaxInt32, math.MaxInt32)
	assert.False(t, v.HasErrors())

	err := v.Max("year", math.MaxInt32+1, math.MaxInt32).Err()
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Must be at most 2147483647", ae.Details[0].Message)
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("first_name", "").                    // Fails
		MaxLen("isbn", "978-0-441-17271-9", 5).        // Fails
		Custom("price", true, "Must not be negative"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Len(t, ae.Details, 3)
	assert.Equal(t, "price", ae.Details[2].Field)
}

/*
TestFieldError builds a single-field validation error.
*/
func TestFieldError(t *testing.T) {
	ae := validate.FieldError("author_id", "Author does not exist")

	assert.Equal(t, 400, ae.HTTPStatus)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "author_id", ae.Details[0].Field)
}
