package web

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/burn-note/app/api/handlers/v1/notes"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/platform/web/handler"
	"net/http"
)

type page struct {
	Id string
}

// Page renders the reveal button for an unread note. Link previewers may fetch
// it any number of times.
func Page(gate note.Gate) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id := ctx.Param("id")

		outcome, err := gate.Status(ctx, id)
		if err != nil {
			res := notes.Internal(ctx, err)
			res.Template = pageMissing
			res.Body = page{}
			return res
		}

		switch outcome {
		case note.Revealable:
			return handler.Result{Status: http.StatusOK, Template: pageNote, Body: page{Id: id}}
		case note.AlreadyDestroyed:
			return handler.Result{Status: http.StatusGone, Template: pageGone, Body: page{}}
		default:
			return handler.Result{Status: http.StatusNotFound, Template: pageMissing, Body: page{}}
		}
	}
}
