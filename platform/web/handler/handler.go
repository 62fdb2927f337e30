// Package handler adapts result-returning functions to gin handlers.
package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every route function returns. When Template is set the body
// is rendered as HTML with that template, otherwise it is written as JSON.
type Result struct {
	Status   int
	Body     any
	Template string
}

// Error is the JSON body of every failed API call
type Error struct {
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"note not found"`
}

// Wrapper turns a route function into a gin.HandlerFunc
func Wrapper(f func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := f(ctx)

		switch {
		case result.Template != "":
			ctx.HTML(result.Status, result.Template, result.Body)
		case result.Body == nil:
			ctx.Status(result.Status)
		default:
			ctx.JSON(result.Status, result.Body)
		}
	}
}

// NoStore keeps responses out of caches, search indexes and referrer headers
func NoStore() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Cache-Control", "no-store")
		ctx.Header("Pragma", "no-cache")
		ctx.Header("X-Robots-Tag", "noindex, nofollow")
		ctx.Header("Referrer-Policy", "no-referrer")
		ctx.Next()
	}
}
