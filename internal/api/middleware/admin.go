package middleware

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/kelimeavi/wordhunt-api/internal/api/handler/v1/response"
)

const adminTokenHeader = "x-admin-token"

type AdminAuthenticator struct {
	tokenSum [32]byte
}

func NewAdminAuthenticator(token string) *AdminAuthenticator {
	return &AdminAuthenticator{
		tokenSum: sha256.Sum256([]byte(token)),
	}
}

// RequireToken rejects any request whose x-admin-token header does not
// carry the configured secret. Both sides are hashed first so the compare
// is constant-time regardless of length.
func (a *AdminAuthenticator) RequireToken() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gotSum := sha256.Sum256([]byte(ctx.GetHeader(adminTokenHeader)))
		if subtle.ConstantTimeCompare(gotSum[:], a.tokenSum[:]) != 1 {
			response.RenderErr(ctx, response.ErrUnauthorized())
			return
		}

		ctx.Next()
	}
}
