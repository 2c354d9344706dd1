package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/application/account/usecases"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// AccountHandler exposes account administration.
type AccountHandler struct {
	createAccountUC *usecases.CreateAccountUseCase
	getAccountUC    *usecases.GetAccountUseCase
	listAccountsUC  *usecases.ListAccountsUseCase
	updateAccountUC *usecases.UpdateAccountUseCase
	deleteAccountUC *usecases.DeleteAccountUseCase
	logger          logger.Interface
}

func NewAccountHandler(
	createAccountUC *usecases.CreateAccountUseCase,
	getAccountUC *usecases.GetAccountUseCase,
	listAccountsUC *usecases.ListAccountsUseCase,
	updateAccountUC *usecases.UpdateAccountUseCase,
	deleteAccountUC *usecases.DeleteAccountUseCase,
	logger logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		createAccountUC: createAccountUC,
		getAccountUC:    getAccountUC,
		listAccountsUC:  listAccountsUC,
		updateAccountUC: updateAccountUC,
		deleteAccountUC: deleteAccountUC,
		logger:          logger,
	}
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.createAccountUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Get handles GET /accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	result, err := h.getAccountUC.Execute(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /accounts.
func (h *AccountHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req dto.ListAccountsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	result, err := h.listAccountsUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Accounts, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /accounts/:id.
func (h *AccountHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.updateAccountUC.Execute(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account updated successfully", result)
}

// Delete handles DELETE /accounts/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	if err := h.deleteAccountUC.Execute(c.Request.Context(), caller, c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
