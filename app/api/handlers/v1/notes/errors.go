package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/platform/web/handler"
	"github.com/ribgsilva/burn-note/sys"
	"net/http"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeAlreadyViewed  = "ALREADY_VIEWED"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeLimitReached   = "LIMIT_REACHED"
	CodeInternal       = "INTERNAL"
)

// Unavailable maps the outcomes that carry no content to their error result
func Unavailable(outcome note.Outcome) handler.Result {
	if outcome == note.AlreadyDestroyed {
		return handler.Result{
			Status: http.StatusGone,
			Body:   handler.Error{Code: CodeAlreadyViewed, Message: "note was already viewed"},
		}
	}
	return handler.Result{
		Status: http.StatusNotFound,
		Body:   handler.Error{Code: CodeNotFound, Message: "note not found"},
	}
}

// Internal logs err and hides it from the caller
func Internal(ctx *gin.Context, err error) handler.Result {
	sys.R.Log.Errorw("request", "method", ctx.Request.Method, "route", ctx.FullPath(), "ERROR", err)
	return handler.Result{
		Status: http.StatusInternalServerError,
		Body:   handler.Error{Code: CodeInternal, Message: "internal error"},
	}
}
