package httperr

import (
	"errors"
	"net/http"

	"campus-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, "", msg, detail)
}

type kindMapping struct {
	kind   error
	status int
	code   string
}

// checked in order: NoCandidate before Conflict so the narrower code wins
var kinds = []kindMapping{
	{errs.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrNoCandidate, http.StatusConflict, "NO_CANDIDATE"},
	{errs.ErrAlreadyCanceled, http.StatusConflict, "ALREADY_CANCELED"},
	{errs.ErrConflict, http.StatusConflict, "CONFLICT"},
	{errs.ErrLimitExceeded, http.StatusUnprocessableEntity, "LIMIT_EXCEEDED"},
	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{errs.ErrRetryable, http.StatusServiceUnavailable, "RETRYABLE"},
}

// StatusOf maps an engine error kind to its HTTP status and code.
func StatusOf(err error) (int, string) {
	for _, k := range kinds {
		if errs.Is(err, k.kind) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

// AbortWithKind answers with the status of err's kind. Unclassified errors
// become a 500 with a generic message.
func AbortWithKind(c *gin.Context, err error) {
	status, code := StatusOf(err)
	msg := "Internal server error"
	if status != http.StatusInternalServerError {
		msg = errs.Message(err)
	}
	abort(c, status, err, code, msg, nil)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
