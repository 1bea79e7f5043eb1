package httperr

import (
	"net/http"

	"salon-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error to its HTTP status. Kinded errors expose their
// message; anything else is reported as an internal error.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}

	resp := Response{Status: status}
	resp.Error.Message = err.Error()
	resp.Error.Kind = KindName(kind)

	_ = c.Error(gin.Error{Err: err, Type: gin.ErrorTypePublic, Meta: resp})
	c.AbortWithStatusJSON(status, resp)
}

func StatusOf(kind error) int {
	switch kind {
	case errs.ErrInvalidInput:
		return http.StatusBadRequest
	case errs.ErrSlotConflict:
		return http.StatusConflict
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrUnauthorized:
		return http.StatusForbidden
	case errs.ErrInvalidTransition:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func KindName(kind error) string {
	switch kind {
	case errs.ErrInvalidInput:
		return "invalid_input"
	case errs.ErrSlotConflict:
		return "slot_conflict"
	case errs.ErrNotFound:
		return "not_found"
	case errs.ErrUnauthorized:
		return "unauthorized"
	case errs.ErrInvalidTransition:
		return "invalid_transition"
	default:
		return ""
	}
}
