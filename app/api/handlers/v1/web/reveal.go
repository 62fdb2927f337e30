package web

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/burn-note/app/api/handlers/v1/notes"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/platform/web/handler"
	"net/http"
)

type Revealed struct {
	Success bool   `json:"success" example:"true"`
	Content string `json:"content" example:"U2FsdGVkX1+Yk0c3..."`
}

// Reveal godoc
// @Summary Reveal a note from the web page
// @Description Consumes the note, same as GET /notes/{id}. Called by the reveal button of the note page.
// @Tags Web
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} web.Revealed
// @Failure 404 {object} handler.Error
// @Failure 410 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /note/{id}/reveal [post]
func Reveal(gate note.Gate) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		res, err := gate.Evaluate(ctx, ctx.Param("id"))
		switch {
		case err != nil:
			return notes.Internal(ctx, err)
		case res.Outcome != note.Revealable:
			return notes.Unavailable(res.Outcome)
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body:   Revealed{Success: true, Content: res.Content},
			}
		}
	}
}
