package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RenderNotFound renders the 404 page. Lookup failures are terminal for a
// request; validation failures are not and re-render their own form instead.
func RenderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "blog/404", gin.H{
		"message": message,
	})
}

// RenderServerError logs the cause and renders the 500 page.
func RenderServerError(c *gin.Context, err error, message string) {
	LogError(err, message)
	c.HTML(http.StatusInternalServerError, "blog/500", gin.H{
		"message": message,
	})
}

// AbsoluteURL rebuilds an absolute URL for path from the inbound request,
// honouring the proxy's X-Forwarded-Proto.
func AbsoluteURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + path
}
