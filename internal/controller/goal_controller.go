package controller

import (
	"errors"
	"net/http"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GoalController 处理学业目标的API请求
type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

func (c *GoalController) tracker(ctx *gin.Context) *service.GoalTracker {
	return c.GoalService.Tracker(util.OwnerFromContext(ctx))
}

func (c *GoalController) handleError(ctx *gin.Context, err error) {
	if verr := service.AsValidationError(err); verr != nil {
		util.InvalidFields(ctx, verr)
		return
	}
	if errors.Is(err, util.ErrGoalNotFound) {
		util.NotFound(ctx)
		return
	}
	if errors.Is(err, util.ErrStoreUnavailable) {
		logger.Log.Error("Goal store unavailable", zap.Error(err))
		util.Error(ctx, http.StatusServiceUnavailable, "Goal store unavailable")
		return
	}
	util.LogInternalError(ctx, err)
}

// @Summary 获取所有目标
// @Description 返回目标及进度、状态、剩余时间等派生信息，最新创建的在前
// @Tags 学业目标
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.GoalView}
// @Router /goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	views, err := c.tracker(ctx).Views(ctx.Request.Context())
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, views)
}

// @Summary 创建目标
// @Tags 学业目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param goal body service.CreateGoalRequest true "目标信息"
// @Success 201 {object} util.Response{data=service.GoalView}
// @Failure 400 {object} util.Response
// @Router /goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if verr := service.AsValidationError(err); verr != nil {
			util.InvalidFields(ctx, verr)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	t := c.tracker(ctx)
	goal, err := t.Create(ctx.Request.Context(), req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Created(ctx, t.View(*goal))
}

// @Summary 获取单个目标
// @Tags 学业目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "目标ID"
// @Success 200 {object} util.Response{data=service.GoalView}
// @Failure 404 {object} util.Response
// @Router /goals/{id} [get]
func (c *GoalController) GetGoal(ctx *gin.Context) {
	t := c.tracker(ctx)
	goal, err := t.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, t.View(*goal))
}

// @Summary 更新目标当前值
// @Description 直接替换当前值，不做范围截断；目标不存在时忽略
// @Tags 学业目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "目标ID"
// @Param goal body service.UpdateGoalRequest true "新的当前值"
// @Success 200 {object} util.Response{data=[]service.GoalView}
// @Router /goals/{id} [patch]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	var req service.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t := c.tracker(ctx)
	if _, err := t.UpdateCurrentValue(ctx.Request.Context(), ctx.Param("id"), req.CurrentValue); err != nil {
		c.handleError(ctx, err)
		return
	}

	c.ListGoals(ctx)
}

// @Summary 一键推进目标进度
// @Description completion +10%（不超过100），grade +5（不超过目标），study_hours +1
// @Tags 学业目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "目标ID"
// @Success 200 {object} util.Response{data=[]service.GoalView}
// @Router /goals/{id}/advance [post]
func (c *GoalController) AdvanceGoal(ctx *gin.Context) {
	if _, err := c.tracker(ctx).Advance(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.handleError(ctx, err)
		return
	}

	c.ListGoals(ctx)
}

// @Summary 删除目标
// @Description 目标不存在时忽略
// @Tags 学业目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "目标ID"
// @Success 200 {object} util.Response{data=[]service.GoalView}
// @Router /goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	if _, err := c.tracker(ctx).Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.handleError(ctx, err)
		return
	}

	c.ListGoals(ctx)
}
