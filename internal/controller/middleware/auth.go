package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/service"
)

const principalKey = "principal"

// Auth resolves the bearer token into a Principal and aborts with 401 when it
// is missing or invalid.
func Auth(tokens service.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}

		principal, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Debug().Err(err).Str("path", ctx.FullPath()).Msg("Token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, ok := PrincipalFrom(ctx)
		if !ok || !principal.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		ctx.Next()
	}
}

func PrincipalFrom(ctx *gin.Context) (service.Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return service.Principal{}, false
	}
	principal, ok := value.(service.Principal)
	return principal, ok
}

func ClientMetaFrom(ctx *gin.Context) service.ClientMeta {
	return service.ClientMeta{
		IPAddress: ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	}
}
