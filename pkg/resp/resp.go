// Package resp renders every response in the uniform {ok, error, data}
// envelope so clients never see a raw error shape.
package resp

import (
	"errors"
	"net/http"

	"food-ordering-api/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

// Fail maps a service error kind to its HTTP status and writes the
// envelope. Errors that are not an *apperr.Error carry internal detail
// (driver text, stack context) and are replaced by a generic message.
func Fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Something went wrong"

	var e *apperr.Error
	if errors.As(err, &e) {
		msg = e.Message
		switch e.Kind {
		case apperr.NotFound:
			status = http.StatusNotFound
		case apperr.NotAuthorized:
			status = http.StatusForbidden
		case apperr.Validation:
			status = http.StatusBadRequest
		case apperr.InvalidStatus:
			status = http.StatusUnprocessableEntity
		}
	}
	c.JSON(status, gin.H{"ok": false, "error": msg})
}
