package controller

import (
	"errors"

	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MaterialController struct {
	Service *service.MaterialService
}

func NewMaterialController(svc *service.MaterialService) *MaterialController {
	return &MaterialController{Service: svc}
}

// @Summary 创建学习材料
// @Tags 学习材料
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateMaterialRequest true "材料信息"
// @Success 201 {object} util.Response
// @Router /api/materials [post]
func (c *MaterialController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material, err := c.Service.CreateMaterial(user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidMaterialTag):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, material)
}

// @Summary 获取学习材料列表
// @Tags 学习材料
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/materials [get]
func (c *MaterialController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	materials, err := c.Service.GetMaterials(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, materials)
}

// @Summary 更新学习材料
// @Tags 学习材料
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "材料ID"
// @Param body body service.UpdateMaterialRequest true "材料信息"
// @Success 200 {object} util.Response
// @Router /api/materials/{id} [put]
func (c *MaterialController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material, err := c.Service.UpdateMaterial(user.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidMaterialTag):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, material)
}

// @Summary 删除学习材料
// @Tags 学习材料
// @Produce json
// @Security BearerAuth
// @Param id path int true "材料ID"
// @Success 200 {object} util.Response
// @Router /api/materials/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteMaterial(user.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Material deleted"})
}
