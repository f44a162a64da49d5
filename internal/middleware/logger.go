package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"invtrack/internal/pkg/render"
)

// ErrorRenderer logs request failures, recovers from panics, and renders the
// fixed error page with the error's status (default 500). Routes that have
// already written a response are left alone.
func ErrorRenderer() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, start, "panic", err.Error(), debug.Stack())

				if !c.Writer.Written() {
					render.ErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		status := http.StatusInternalServerError
		message := last.Error()

		var se *render.StatusError
		if errors.As(last.Err, &se) {
			status = se.Status
			message = se.Message
		}

		logRequestError(c, start, fmt.Sprintf("%v", last.Type), message, nil)

		if !c.Writer.Written() {
			render.ErrorPage(c, status, message)
		}
	}
}

func logRequestError(c *gin.Context, start time.Time, errType string, message string, stack []byte) {
	log.Printf(
		"request_error type=%s status=%d method=%s path=%s query=%s client_ip=%s latency=%s error=%q stack=%s",
		errType,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.Request.URL.RawQuery,
		c.ClientIP(),
		time.Since(start),
		message,
		string(stack),
	)
}
