package controller

import (
	"errors"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	ScheduleService *service.ScheduleService
}

func NewScheduleController(scheduleService *service.ScheduleService) *ScheduleController {
	return &ScheduleController{ScheduleService: scheduleService}
}

// @Summary 获取学习计划状态
// @Description idle / loading / complete，complete 时附带生成结果
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ScheduleStatus}
// @Router /schedule [get]
func (c *ScheduleController) GetStatus(ctx *gin.Context) {
	util.Success(ctx, c.ScheduleService.Status(util.OwnerFromContext(ctx)))
}

// @Summary 生成学习计划
// @Description 校验表单后调用文本生成服务并等待结果；生成失败时 data.ok 为 false
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param form body model.ScheduleForm true "课程、成绩、截止日期、考试和每日学习时长"
// @Success 200 {object} util.Response{data=model.ScheduleOutcome}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /schedule [post]
func (c *ScheduleController) Generate(ctx *gin.Context) {
	var form model.ScheduleForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.ScheduleService.SubmitForm(ctx.Request.Context(), util.OwnerFromContext(ctx), form)
	switch {
	case err == nil:
		util.Success(ctx, outcome)
	case errors.Is(err, util.ErrNoCourses):
		util.BadRequest(ctx, "Please add at least one course.")
	case errors.Is(err, util.ErrScheduleInFlight):
		util.Conflict(ctx, err.Error())
	default:
		if verr := service.AsValidationError(err); verr != nil {
			util.InvalidFields(ctx, verr)
			return
		}
		util.LogInternalError(ctx, err)
	}
}

// SyncGradesRequest 课程列表变化时由前端提交
type SyncGradesRequest struct {
	Courses []model.CourseEntry `json:"courses"`
	Grades  []model.GradeEntry  `json:"grades"`
}

// @Summary 同步成绩行与课程列表
// @Description 课程列表变化时调用：每门课一行成绩，同名课程保留原成绩
// @Tags 学习计划
// @Accept json
// @Produce json
// @Param body body SyncGradesRequest true "当前课程与成绩"
// @Success 200 {object} util.Response{data=[]model.GradeEntry}
// @Router /schedule/grades/sync [post]
func (c *ScheduleController) SyncGrades(ctx *gin.Context) {
	var req SyncGradesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, service.SyncGrades(req.Courses, req.Grades))
}
