// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/respond"
)

/*
TestOK wraps payloads in the data envelope.
*/
func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, map[string]string{"title": "Dune"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"title":"Dune"}}`, recorder.Body.String())
}

/*
TestNoContent writes an empty 204.
*/
func TestNoContent(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.NoContent(recorder)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

/*
TestError renders application errors and hides unexpected ones.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{"not_found", apperr.NotFound("Book"), http.StatusNotFound, "NOT_FOUND", "Book not found"},
		{"write_failed", apperr.WriteFailed("Update failed"), http.StatusBadRequest, "WRITE_FAILED", "Update failed"},
		{
			"raw_error",
			errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			http.StatusInternalServerError,
			"INTERNAL_ERROR",
			"Something went wrong on server-side, please contact the administrator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

/*
TestError_Details includes field errors for validation failures.
*/
func TestError_Details(t *testing.T) {
	recorder := httptest.NewRecorder()
	err := apperr.ValidationError("Validation failed", apperr.FieldError{Field: "isbn", Message: "This field is required"})

	respond.Error(recorder, httptest.NewRequest(http.MethodPost, "/", nil), err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t,
		`{"error":"Validation failed","code":"VALIDATION_ERROR","details":[{"field":"isbn","message":"This field is required"}]}`,
		recorder.Body.String(),
	)
}
