package controller

import (
	"errors"

	"github.com/WaseemSyawish/lingua/internal/service"
	"github.com/WaseemSyawish/lingua/internal/util"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	TutorService *service.TutorService
}

func NewChatController(tutorService *service.TutorService) *ChatController {
	return &ChatController{TutorService: tutorService}
}

// StreamRequest 一轮对话请求
type StreamRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// Stream godoc
// @Summary 对话（流式）
// @Description 发送一条学员消息，SSE流式返回辅导回复
// @Tags 对话
// @Accept  json
// @Produce  text/event-stream
// @Security ApiKeyAuth
// @Param   request body StreamRequest true "消息内容"
// @Success 200 {string} string "SSE流"
// @Failure 400 {object} util.Response "请求参数错误或会话已结束"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "该会话已有进行中的回合"
// @Router /api/chat/stream [post]
func (c *ChatController) Stream(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StreamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	deltas, done, err := c.TutorService.RespondStream(ctx.Request.Context(), claims.UserID, req.SessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, "session not found")
		case errors.Is(err, util.ErrSessionEnded):
			util.BadRequest(ctx, "session has ended")
		case errors.Is(err, util.ErrSessionBusy):
			util.PreconditionFailed(ctx, "a response is already in progress")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "user not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	// 设置SSE响应头
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	for delta := range deltas {
		ctx.SSEvent("delta", delta)
		ctx.Writer.Flush()
	}

	if err := <-done; err != nil {
		// 不向客户端透出底层错误细节
		ctx.SSEvent("error", "An error occurred while generating a response. Please try again.")
		ctx.Writer.Flush()
		return
	}

	ctx.SSEvent("done", "")
	ctx.Writer.Flush()
}
