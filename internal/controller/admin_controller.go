package controller

import (
	"github.com/WaseemSyawish/lingua/internal/service"
	"github.com/WaseemSyawish/lingua/internal/util"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	ProgressService *service.ProgressService
}

func NewAdminController(progressService *service.ProgressService) *AdminController {
	return &AdminController{ProgressService: progressService}
}

// AssessLevels godoc
// @Summary 批量等级评估
// @Description 对全部学习者执行一次等级评估，调整晋级阈值或批量导入数据后使用
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.BatchAssessment} "成功"
// @Failure 403 {object} util.Response "需要管理员权限"
// @Router /api/admin/assess-levels [post]
func (c *AdminController) AssessLevels(ctx *gin.Context) {
	result, err := c.ProgressService.AssessAllLevels()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
