package notes

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/business/v1/usage"
	"github.com/ribgsilva/burn-note/platform/web/handler"
	"net/http"
)

type Creator interface {
	Create(ctx context.Context, newN note.NewNote) (string, error)
}

// Create godoc
// @Summary Create a note
// @Description Stores already encrypted content and returns the id of the single use link
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note"
// @Success 201 {object} note.Created
// @Failure 400 {object} handler.Error
// @Failure 402 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes [post]
func Create(creator Creator) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		var newN note.NewNote
		if err := ctx.ShouldBindJSON(&newN); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Code: CodeInvalidRequest, Message: "malformed body"},
			}
		}

		id, err := creator.Create(ctx, newN)
		switch {
		case errors.Is(err, note.ErrInvalidNote):
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Code: CodeInvalidRequest, Message: err.Error()},
			}
		case errors.Is(err, usage.ErrLimitReached):
			return handler.Result{
				Status: http.StatusPaymentRequired,
				Body:   handler.Error{Code: CodeLimitReached, Message: err.Error()},
			}
		case err != nil:
			return Internal(ctx, err)
		default:
			return handler.Result{
				Status: http.StatusCreated,
				Body:   note.Created{Id: id},
			}
		}
	}
}
