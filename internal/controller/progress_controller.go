package controller

import (
	"errors"

	"github.com/WaseemSyawish/lingua/internal/service"
	"github.com/WaseemSyawish/lingua/internal/util"
	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Overview godoc
// @Summary 学习进度
// @Description 返回当前等级统计、概念掌握明细、会话数和连续学习天数
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ProgressOverview} "成功"
// @Failure 404 {object} util.Response "尚未建立技能画像"
// @Router /api/progress [get]
func (c *ProgressController) Overview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.ProgressService.Overview(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "no skill profile yet - complete placement first")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, overview)
}

// AssessLevel godoc
// @Summary 等级评估
// @Description 按当前等级的掌握度统计决定升级、降级或保持，返回决策和依据
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.LevelDecision} "成功"
// @Failure 404 {object} util.Response "尚未建立技能画像"
// @Router /api/progress/assess-level [post]
func (c *ProgressController) AssessLevel(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	decision, err := c.ProgressService.AssessLevel(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "no skill profile yet - complete placement first")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, decision)
}
