package utils

import "github.com/gin-gonic/gin"

// RespondMessage writes a plain {message} body, used for success
// confirmations and not-found responses alike.
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// RespondInternalError logs the real failure server-side and returns a
// generic message so internal detail never leaks to the caller.
func RespondInternalError(c *gin.Context, message string, err error) {
	ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(500, gin.H{"message": message})
}

// RespondInvalidData writes a 400 with the structured field errors
// extracted from a binding failure.
func RespondInvalidData(c *gin.Context, message string, err error) {
	c.JSON(400, gin.H{
		"message": message,
		"errors":  FieldErrors(err),
	})
}
