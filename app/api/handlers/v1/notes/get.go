package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Read and destroy a note
// @Description Returns the note content once. The note is marked as viewed by this call and its content is scrubbed shortly after.
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Revealed
// @Failure 404 {object} handler.Error
// @Failure 410 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes/{id} [get]
func Get(gate note.Gate) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		res, err := gate.Evaluate(ctx, ctx.Param("id"))
		switch {
		case err != nil:
			return Internal(ctx, err)
		case res.Outcome != note.Revealable:
			return Unavailable(res.Outcome)
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body:   note.Revealed{Content: res.Content, Destroyed: true},
			}
		}
	}
}
