package controller

import (
	"errors"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/service"
	"github.com/WaseemSyawish/lingua/internal/util"
	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService  *service.SessionService
	AnalysisService *service.AnalysisService
}

func NewSessionController(sessionService *service.SessionService, analysisService *service.AnalysisService) *SessionController {
	return &SessionController{
		SessionService:  sessionService,
		AnalysisService: analysisService,
	}
}

// CreateSessionRequest 创建会话请求
type CreateSessionRequest struct {
	SessionType string `json:"sessionType" example:"LESSON"`
}

// Create godoc
// @Summary 创建会话
// @Description 新建一次辅导会话，类型为 LESSON/FREE_CONVERSATION/REVIEW/PLACEMENT
// @Tags 会话
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateSessionRequest true "会话类型"
// @Success 201 {object} util.Response{data=model.ConversationSession} "创建成功"
// @Failure 400 {object} util.Response "会话类型不合法"
// @Router /api/sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.SessionType == "" {
		req.SessionType = string(model.SessionLesson)
	}

	session, err := c.SessionService.Create(claims.UserID, model.SessionType(req.SessionType))
	if err != nil {
		if errors.Is(err, util.ErrInvalidSessionType) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, session)
}

// List godoc
// @Summary 会话列表
// @Description 返回当前用户最近的会话，附带分析摘要
// @Tags 会话
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ConversationSession} "成功"
// @Router /api/sessions [get]
func (c *SessionController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.SessionService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// Get godoc
// @Summary 会话详情
// @Description 返回会话及按时间排序的消息和摘要
// @Tags 会话
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=model.ConversationSession} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/sessions/{id} [get]
func (c *SessionController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.SessionService.Get(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, "session not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, session)
}

// End godoc
// @Summary 结束会话
// @Tags 会话
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=model.ConversationSession} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "会话已结束"
// @Router /api/sessions/{id}/end [post]
func (c *SessionController) End(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.SessionService.End(claims.UserID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, "session not found")
		case errors.Is(err, util.ErrSessionEnded):
			util.PreconditionFailed(ctx, "session has already ended")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, session)
}

// Analyze godoc
// @Summary 分析会话
// @Description 对会话做结构化分析：生成摘要并更新概念掌握度
// @Tags 会话
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionAnalysisResult} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "消息太少"
// @Failure 500 {object} util.Response "分析失败"
// @Router /api/sessions/{id}/analyze [post]
func (c *SessionController) Analyze(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.AnalysisService.AnalyzeSession(ctx.Request.Context(), claims.UserID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, "session not found")
		case errors.Is(err, util.ErrSessionTooShort):
			util.PreconditionFailed(ctx, "session too short to analyze")
		case errors.Is(err, util.ErrAnalysisUnparseable):
			util.Error(ctx, 500, "failed to analyze session")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}
