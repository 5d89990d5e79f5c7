package util

import "github.com/gin-gonic/gin"

func SuccessResponse(data interface{}, message string) gin.H {
	return gin.H{
		"success": true,
		"data":    data,
		"message": message,
	}
}

func FailedResponse(err error) gin.H {
	return gin.H{
		"success": false,
		"message": err.Error(),
	}
}

// ErrorResponse carries the underlying error text alongside the user-facing
// message, matching the shape persistence failures are reported with.
func ErrorResponse(message string, err error) gin.H {
	return gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	}
}
