package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"proyectos-backend/internal/apperrors"
	"proyectos-backend/internal/responses"
)

// ErrorHandling is the single place service errors become wire responses.
// Handlers push errors with c.Error; panics are recovered here too. The
// status classification on the error decides the HTTP status, anything
// unclassified is a 500 with a generic message.
func ErrorHandling() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if ret := recover(); ret != nil {
				err, ok := ret.(error)
				if !ok {
					err = fmt.Errorf("%v", ret)
				}
				respondError(c, err)
				return
			}
			if last := c.Errors.Last(); last != nil {
				respondError(c, last.Err)
			}
		}()
		c.Next()
	}
}

func respondError(c *gin.Context, err error) {
	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"stack":  string(debug.Stack()),
	}).Error(err.Error())

	// A response may already be underway; never write a second one.
	if c.Writer.Written() {
		return
	}

	var se *apperrors.StatusError
	if errors.As(err, &se) {
		responses.Message(c, se.Status, se.Message)
		return
	}
	responses.Message(c, http.StatusInternalServerError, "Internal Server Error")
}
