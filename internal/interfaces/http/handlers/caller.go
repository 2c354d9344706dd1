package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/shared/constants"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// callerFrom rebuilds the authenticated caller from the context values the
// auth middleware stored. The plan stays nil here; use cases that need it
// load it themselves.
func callerFrom(c *gin.Context) (access.Caller, bool) {
	rawID, ok := c.Get(constants.ContextKeyAccountID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return access.Caller{}, false
	}
	accountID, ok := rawID.(uint)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authentication context")
		return access.Caller{}, false
	}

	rawRole, ok := c.Get(constants.ContextKeyRole)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return access.Caller{}, false
	}
	role, ok := rawRole.(account.Role)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authentication context")
		return access.Caller{}, false
	}

	return access.Caller{AccountID: accountID, Role: role}, true
}

// callerUUID returns the authenticated account's UUID.
func callerUUID(c *gin.Context) (string, bool) {
	raw, ok := c.Get(constants.ContextKeyAccountUUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return "", false
	}
	uuid, ok := raw.(string)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authentication context")
		return "", false
	}
	return uuid, true
}
