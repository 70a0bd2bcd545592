package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the wire shape of every failure: an HTTP status plus a stable
// error code the client can switch on. The wrapped cause is logged, never
// serialized.
type Err struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`

	cause error
}

func (e *Err) Error() string {
	return e.Code
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("code", err.Code),
			zap.Error(err.cause),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrEventNotFound() *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Code:       "event_not_found",
	}
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Code:       "bad_request",
		cause:      err,
	}
}

func ErrEventNotStarted() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Code:       "event_not_started",
	}
}

func ErrEventEnded() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Code:       "event_ended",
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Code:       "unauthorized",
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Code:       "internal_error",
		cause:      err,
	}
}
