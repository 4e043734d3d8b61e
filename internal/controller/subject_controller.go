package controller

import (
	"errors"

	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubjectController struct {
	Service *service.SubjectService
}

func NewSubjectController(svc *service.SubjectService) *SubjectController {
	return &SubjectController{Service: svc}
}

// @Summary 创建科目
// @Tags 科目管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateSubjectRequest true "科目信息"
// @Success 201 {object} util.Response
// @Router /api/subjects [post]
func (c *SubjectController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Service.CreateSubject(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrExamDateNotAfterStart) || errors.Is(err, util.ErrInvalidDifficulty) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, subject)
}

// @Summary 获取科目列表
// @Tags 科目管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/subjects [get]
func (c *SubjectController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	subjects, err := c.Service.GetSubjects(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subjects)
}

// @Summary 获取科目详情
// @Tags 科目管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id} [get]
func (c *SubjectController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	subject, err := c.Service.GetSubject(user.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, subject)
}

// @Summary 更新科目
// @Tags 科目管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "科目ID"
// @Param body body service.UpdateSubjectRequest true "科目信息"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id} [put]
func (c *SubjectController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Service.UpdateSubject(user.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidDifficulty), errors.Is(err, util.ErrExamDateNotAfterStart):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, subject)
}

// @Summary 删除科目
// @Tags 科目管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id} [delete]
func (c *SubjectController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteSubject(user.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Subject deleted"})
}
