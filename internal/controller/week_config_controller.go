package controller

import (
	"errors"

	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WeekConfigController struct {
	Service *service.WeekConfigService
}

func NewWeekConfigController(svc *service.WeekConfigService) *WeekConfigController {
	return &WeekConfigController{Service: svc}
}

// @Summary 获取每周空闲时间配置
// @Description 不存在时自动创建默认配置
// @Tags 时间配置
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/week-config [get]
func (c *WeekConfigController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	config, err := c.Service.GetOrCreate(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, config)
}

// @Summary 更新每周空闲时间配置
// @Description 整体替换空闲时间块，并触发课表重建
// @Tags 时间配置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UpdateWeekConfigRequest true "配置信息"
// @Success 200 {object} util.Response
// @Router /api/week-config [put]
func (c *WeekConfigController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateWeekConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	config, err := c.Service.Update(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidWeekday) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, config)
}
