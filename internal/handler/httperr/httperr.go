package httperr

import (
	"net/http"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AvailabilityDetail is attached to 400 responses of rejected bookings.
type AvailabilityDetail struct {
	Available        bool     `json:"available"`
	Message          string   `json:"message"`
	AlternativeSlots []string `json:"alternativeSlots"`
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

// Abort maps a use case error to its HTTP status. Messages of expected
// errors are shown to the client; anything else becomes a generic 500.
func Abort(c *gin.Context, err error) {
	if ue, ok := commands.AsUnavailable(err); ok {
		AbortWithError(c, http.StatusBadRequest, err, ue.Verdict.Message, NewAvailabilityDetail(ue.Verdict.Available, ue.Verdict.Message, ue.Verdict.Alternatives))
		return
	}

	switch {
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errs.Is(err, errs.ErrConflict):
		AbortWithError(c, http.StatusBadRequest, err, "slot already booked", nil)
	case errs.Is(err, errs.ErrInvalidRequest):
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
