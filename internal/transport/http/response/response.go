// Package response holds the wire-level helpers for the JSON API. The
// contract predates this implementation: every non-payload response is a
// bare {"message": ...} object, so no code/data envelope is used.
package response

import "github.com/gin-gonic/gin"

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
