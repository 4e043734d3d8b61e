package controller

import (
	"errors"

	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StreakController struct {
	Service *service.StreakService
}

func NewStreakController(svc *service.StreakService) *StreakController {
	return &StreakController{Service: svc}
}

type recordStreakRequest struct {
	StudyTime float64 `json:"studyTime" binding:"required"` // 分钟
}

// @Summary 获取连续学习记录
// @Tags 学习打卡
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/streak [get]
func (c *StreakController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	streak, err := c.Service.GetStreak(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, streak)
}

// @Summary 记录今日学习
// @Description 学习时间不足 1 分钟不计入打卡
// @Tags 学习打卡
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body recordStreakRequest true "学习时长"
// @Success 200 {object} util.Response
// @Router /api/streak [post]
func (c *StreakController) Record(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req recordStreakRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	streak, err := c.Service.RecordStudyDay(user.UserID, req.StudyTime)
	if err != nil {
		if errors.Is(err, util.ErrStudyTimeTooShort) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, streak)
}
