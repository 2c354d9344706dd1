package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/application/account/usecases"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// AuthHandler exposes registration, login, and token rotation.
type AuthHandler struct {
	registerReaderUC *usecases.RegisterReaderUseCase
	loginUC          *usecases.LoginUseCase
	refreshTokenUC   *usecases.RefreshTokenUseCase
	getAccountUC     *usecases.GetAccountUseCase
	logger           logger.Interface
}

func NewAuthHandler(
	registerReaderUC *usecases.RegisterReaderUseCase,
	loginUC *usecases.LoginUseCase,
	refreshTokenUC *usecases.RefreshTokenUseCase,
	getAccountUC *usecases.GetAccountUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerReaderUC: registerReaderUC,
		loginUC:          loginUC,
		refreshTokenUC:   refreshTokenUC,
		getAccountUC:     getAccountUC,
		logger:           logger,
	}
}

// Register handles POST /auth/register. Self-service registration always
// creates a reader on the starter plan.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.registerReaderUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account registered successfully")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", result)
}

// RefreshToken handles POST /auth/refresh.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.refreshTokenUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", result)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	uuid, ok := callerUUID(c)
	if !ok {
		return
	}

	result, err := h.getAccountUC.Execute(c.Request.Context(), caller, uuid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
