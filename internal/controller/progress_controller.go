package controller

import (
	"errors"

	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProgressController struct {
	Service *service.ProgressService
}

func NewProgressController(svc *service.ProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

type recordSessionRequest struct {
	MaterialID uint    `json:"materialId" binding:"required"`
	TimeSpent  float64 `json:"timeSpent" binding:"required"` // 分钟
}

// @Summary 记录学习会话
// @Description 更新材料进度、打卡并喂给 AI 模型训练
// @Tags 学习进度
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body recordSessionRequest true "会话信息"
// @Success 200 {object} util.Response
// @Router /api/progress/session [post]
func (c *ProgressController) RecordSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req recordSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.RecordSession(user.UserID, req.MaterialID, req.TimeSpent)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidTimeSpent):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary 获取学习统计
// @Description 总时长、各科目进度和最近 7 天学习时间分布
// @Tags 学习进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress/analytics [get]
func (c *ProgressController) Analytics(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	analytics, err := c.Service.GetAnalytics(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, analytics)
}

// @Summary 获取科目学习进度
// @Tags 学习进度
// @Produce json
// @Security BearerAuth
// @Param subjectId path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/progress/subject/{subjectId} [get]
func (c *ProgressController) SubjectProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	materials, err := c.Service.GetSubjectProgress(user.UserID, util.MustParseUint(ctx.Param("subjectId")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, materials)
}
