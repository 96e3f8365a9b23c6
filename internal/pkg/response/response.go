// Package response renders the portal's uniform JSON reply envelope:
// {"success": true, "data": ...} on success, {"success": false,
// "error": {code, message, details}} on failure.
package response

import "github.com/gin-gonic/gin"

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody{Code: code, Message: message},
	})
}

// ErrorWithDetails attaches machine-readable context, such as the set of
// accepted filter values, to an error reply.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody{Code: code, Message: message, Details: details},
	})
}
