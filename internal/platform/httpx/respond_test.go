package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("card %q: %w", "x", ErrNotFound), http.StatusNotFound},
		{ErrValidation, http.StatusBadRequest},
		{fmt.Errorf("growth: %w", ErrUnprocessable), http.StatusUnprocessableEntity},
		{ErrTooManyRequest, http.StatusTooManyRequests},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		RespondError(rr, tc.err)
		assert.Equal(t, tc.status, rr.Code, tc.err.Error())
		assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))

		var problem ProblemDetail
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&problem))
		assert.Equal(t, tc.status, problem.Status)
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, fmt.Errorf("secret"))
	assert.NotContains(t, rr.Body.String(), "secret")
}

func TestFieldProblem(t *testing.T) {
	rr := httptest.NewRecorder()
	FieldProblem(rr, map[string]string{"value": "required"})

	var problem ProblemDetail
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&problem))
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Equal(t, "required", problem.Fields["value"])
}
