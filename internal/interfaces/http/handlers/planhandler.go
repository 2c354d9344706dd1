package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gazette-press/gazette/internal/application/plan/dto"
	"github.com/gazette-press/gazette/internal/application/plan/usecases"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// PlanHandler exposes plan reads and tier changes. There are no create or
// delete routes: plans appear with reader registration and disappear with
// the account.
type PlanHandler struct {
	getPlanUC    *usecases.GetPlanUseCase
	listPlansUC  *usecases.ListPlansUseCase
	updatePlanUC *usecases.UpdatePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	getPlanUC *usecases.GetPlanUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		updatePlanUC: updatePlanUC,
		logger:       logger,
	}
}

// Get handles GET /plans/:id.
func (h *PlanHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /plans.
func (h *PlanHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req dto.ListPlansRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /plans/:id.
func (h *PlanHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}
