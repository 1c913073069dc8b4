// Package response holds the JSON bodies shared by all handlers.
package response

import "github.com/gin-gonic/gin"

// Message writes the standard {"message": ...} body used by both
// confirmations and known failures.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Invalid writes the shape-validation failure body.
func Invalid(c *gin.Context, details interface{}) {
	c.JSON(400, gin.H{"error": "Invalid input", "details": details})
}

// ServerError hides internals behind a generic body.
func ServerError(c *gin.Context) {
	c.JSON(500, gin.H{"message": "Server error"})
}
