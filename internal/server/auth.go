package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type authPayload struct {
	Password string `json:"password" binding:"required"`
}

// handleAuth answers the shared-secret check. Success only signals the
// client to set its locally persisted authenticated flag; no session
// or token is created server-side.
func (h *httpHandler) handleAuth(c *gin.Context) {
	var payload authPayload
	if !bindJSON(c, &payload) {
		return
	}

	if !h.gate.Authenticate(payload.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "incorrect_password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
