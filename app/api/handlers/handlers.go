package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/burn-note/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/burn-note/app/api/handlers/v1/notes"
	"github.com/ribgsilva/burn-note/app/api/handlers/v1/web"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/platform/web/handler"
)

// Notes is everything the note routes need from the business layer
type Notes interface {
	note.Gate
	notes.Creator
}

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, svc Notes) {
	g := r.Group("/notes", handler.NoStore())
	g.POST("", handler.Wrapper(notes.Create(svc)))
	g.GET("/:id", handler.Wrapper(notes.Get(svc)))
}

// MapWeb registers the two step reveal flow and loads its templates into r
func MapWeb(r *gin.Engine, gate note.Gate) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	g := r.Group("/note", handler.NoStore())
	g.GET("/:id", handler.Wrapper(web.Page(gate)))
	g.POST("/:id/reveal", handler.Wrapper(web.Reveal(gate)))
	return nil
}
