//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		kind   error
		status int
		name   string
	}{
		{errs.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
		{errs.ErrSlotConflict, http.StatusConflict, "slot_conflict"},
		{errs.ErrNotFound, http.StatusNotFound, "not_found"},
		{errs.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
		{errs.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid_transition"},
		{nil, http.StatusInternalServerError, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.status, httperr.StatusOf(c.kind))
			assert.Equal(t, c.name, httperr.KindName(c.kind))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	errTaken := errs.Kind("slot is already booked", errs.ErrSlotConflict)

	run := func(err error) (*httptest.ResponseRecorder, *gin.Context) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		httperr.Abort(c, err)
		return w, c
	}

	t.Run("kinded error keeps its message", func(t *testing.T) {
		w, c := run(errs.Wrap(errTaken, "book appointment"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.True(t, c.IsAborted())
		var body httperr.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "slot_conflict", body.Error.Kind)
		assert.Contains(t, body.Error.Message, "slot is already booked")
		require.Len(t, c.Errors, 1)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		w, _ := run(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}
