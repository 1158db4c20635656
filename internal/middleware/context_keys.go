package middleware

import "github.com/gin-gonic/gin"

// clientIDKey is the key used to store the authenticated client's id (the token subject).
const clientIDKey = contextKey("clientID")

// GetClientIDFromContext retrieves the authenticated client id from the Gin context.
// It returns the id and a boolean indicating if it was found.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(clientIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	// check in the request context as well
	if id, ok := c.Request.Context().Value(clientIDKey).(string); ok {
		return id, true
	}
	return "", false
}
