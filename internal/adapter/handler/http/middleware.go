package http

import (
	"github.com/gin-gonic/gin"
	"github.com/vendomart/vendordash/internal/core/port"
)

// sessionCheck refuses dashboard calls while no vendor is signed in. The
// platform backend still validates the token itself; this guard only keeps
// unauthenticated requests from leaving the gateway at all.
func sessionCheck(h *Handler, tokens port.TokenStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, err := tokens.Token(); err != nil {
			h.handleAbort(ctx, err)
			return
		}
		ctx.Next()
	}
}
