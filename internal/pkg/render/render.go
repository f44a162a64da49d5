package render

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusError is an error carrying the HTTP status the error page should be
// rendered with.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *StatusError {
	return &StatusError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorPage renders the single fixed error view.
func ErrorPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.tmpl", gin.H{
		"Title":   "Error Occured",
		"Message": message,
	})
}

// NotSupported answers verb/path combinations the router does not implement
// with plain text, bypassing the error page.
func NotSupported(c *gin.Context) {
	c.String(http.StatusForbidden, "%s operation not supported on %s",
		c.Request.Method, c.Request.URL.Path)
}
