package controller

import (
	"errors"

	"github.com/WaseemSyawish/lingua/internal/service"
	"github.com/WaseemSyawish/lingua/internal/util"
	"github.com/gin-gonic/gin"
)

type PlacementController struct {
	AnalysisService *service.AnalysisService
}

func NewPlacementController(analysisService *service.AnalysisService) *PlacementController {
	return &PlacementController{AnalysisService: analysisService}
}

// AnalyzePlacementRequest 定级分析请求
type AnalyzePlacementRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// Analyze godoc
// @Summary 分析定级会话
// @Description 评估定级对话，写入技能画像并结束会话
// @Tags 定级
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AnalyzePlacementRequest true "定级会话ID"
// @Success 200 {object} util.Response{data=service.PlacementResult} "成功"
// @Failure 400 {object} util.Response "不是定级会话"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 500 {object} util.Response "分析失败"
// @Router /api/placement/analyze [post]
func (c *PlacementController) Analyze(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnalyzePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AnalysisService.AnalyzePlacement(ctx.Request.Context(), claims.UserID, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, "placement session not found")
		case errors.Is(err, util.ErrNotPlacementSession):
			util.BadRequest(ctx, "not a placement session")
		case errors.Is(err, util.ErrAnalysisUnparseable), errors.Is(err, util.ErrInvalidLevel):
			util.Error(ctx, 500, "failed to analyze placement")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Skip godoc
// @Summary 跳过定级
// @Description 跳过定级测试，从 A0 开始学习
// @Tags 定级
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.SkillProfile} "成功"
// @Router /api/placement/skip [post]
func (c *PlacementController) Skip(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.AnalysisService.SkipPlacement(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}
