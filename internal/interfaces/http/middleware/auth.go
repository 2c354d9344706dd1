package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/infrastructure/auth"
	"github.com/gazette-press/gazette/internal/shared/constants"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// AuthMiddleware verifies bearer tokens and resolves the claims to a live
// account, so a deleted account's tokens stop working immediately.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	accounts   account.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, accounts account.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		accounts:   accounts,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		acc, err := m.accounts.GetByUUID(c.Request.Context(), claims.AccountUUID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account no longer exists")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAccountID, acc.ID())
		c.Set(constants.ContextKeyAccountUUID, acc.UUID())
		c.Set(constants.ContextKeyRole, acc.Role())

		c.Next()
	}
}
