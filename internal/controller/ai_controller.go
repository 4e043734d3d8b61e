package controller

import (
	"strconv"

	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	Service *service.AIService
}

func NewAIController(svc *service.AIService) *AIController {
	return &AIController{Service: svc}
}

// @Summary 获取学习洞察报告
// @Description 基于历史学习会话分析最佳时段和难度表现，结果缓存 10 分钟
// @Tags AI预测
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/ai/insights [get]
func (c *AIController) Insights(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	insights, err := c.Service.GetInsights(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, insights)
}

// @Summary 追加训练数据
// @Tags AI预测
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TrainRequest true "学习会话"
// @Success 200 {object} util.Response
// @Router /api/ai/train [post]
func (c *AIController) Train(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TrainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.Service.Train(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message":       "AI model trained",
		"totalSessions": count,
	})
}

// @Summary 预测学习成功率
// @Tags AI预测
// @Produce json
// @Security BearerAuth
// @Param timeOfDay query string true "时间 HH:MM"
// @Param difficulty query int true "难度 1-5"
// @Param dayOfWeek query string true "星期"
// @Success 200 {object} util.Response
// @Router /api/ai/predict [get]
func (c *AIController) Predict(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	timeOfDay := ctx.Query("timeOfDay")
	dayOfWeek := ctx.Query("dayOfWeek")
	difficulty, err := strconv.Atoi(ctx.DefaultQuery("difficulty", "3"))
	if err != nil || difficulty < 1 || difficulty > 5 {
		util.BadRequest(ctx, "difficulty must be between 1 and 5")
		return
	}
	if timeOfDay == "" || dayOfWeek == "" {
		util.BadRequest(ctx, "timeOfDay and dayOfWeek are required")
		return
	}

	prediction, err := c.Service.Predict(user.UserID, timeOfDay, difficulty, dayOfWeek)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, prediction)
}

// @Summary 推荐最佳学习时段
// @Description 对每个科目穷举候选时段，按预测成功率给出推荐
// @Tags AI预测
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/ai/optimize [get]
func (c *AIController) Optimize(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Service.Optimize(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
