package controller

import (
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	Service     *service.ScheduleService
	Regenerator *service.Regenerator
}

func NewScheduleController(svc *service.ScheduleService, regenerator *service.Regenerator) *ScheduleController {
	return &ScheduleController{Service: svc, Regenerator: regenerator}
}

// @Summary 获取当前课表
// @Tags 课表
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/schedule [get]
func (c *ScheduleController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	blocks, err := c.Service.GetSchedule(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, blocks)
}

// @Summary 手动生成课表
// @Description 同步执行 优先级→时长分配→排块 流水线，与后台自动重建互斥
// @Tags 课表
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/schedule/generate [post]
func (c *ScheduleController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result := c.Regenerator.RegenerateNow(user.UserID)
	util.Success(ctx, result)
}

// @Summary 清空课表
// @Tags 课表
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/schedule [delete]
func (c *ScheduleController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteSchedule(user.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Schedule cleared"})
}
