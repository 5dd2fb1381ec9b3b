package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrBusiness("missing_title"), http.StatusBadRequest, "missing_title"},
		{ErrBusiness("task_not_found"), http.StatusNotFound, "task_not_found"},
		{fmt.Errorf("wrapped: %w", ErrBusiness("equipment_not_found")), http.StatusNotFound, "equipment_not_found"},
		{ErrBusiness("invalid_state"), http.StatusConflict, "invalid_state"},
		{ErrBusiness("something_new"), http.StatusBadRequest, "something_new"},
		{errors.New("connection refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		status, code := Status(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code)
	}
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("ctx: %w", ErrBusiness("invalid_id"))
	assert.True(t, IsBusiness(err, "invalid_id"))
	assert.False(t, IsBusiness(err, "invalid_date"))
	assert.False(t, IsBusiness(errors.New("invalid_id"), "invalid_id"))

	assert.True(t, errors.Is(err, ErrBusiness("invalid_id")))
	assert.False(t, errors.Is(err, ErrBusiness("invalid_date")))

	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid_id", code)

	_, ok = CodeOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Title is required", Message("missing_title"))
	assert.Equal(t, "unmapped_code", Message("unmapped_code"))
}
