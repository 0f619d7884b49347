package controller

import (
	"awareness_backend/internal/service"
	"awareness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Service *service.AssessmentService
	Version string
}

func NewHealthController(svc *service.AssessmentService, version string) *HealthController {
	return &HealthController{Service: svc, Version: version}
}

// @Summary 健康检查
// @Description 各领域组件与存储状态，降级时仍返回 200
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response{data=model.HealthReport}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	report := c.Service.Health(ctx.Request.Context())
	util.SuccessWithMessage(ctx, report.Status, report)
}

// @Summary 服务信息
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	domains := c.Service.ListDomains()
	slugs := make([]string, 0, len(domains))
	for _, d := range domains {
		slugs = append(slugs, d.Slug)
	}
	util.Success(ctx, gin.H{
		"message": "Security Awareness Assessment API",
		"version": c.Version,
		"domains": slugs,
		"docs":    "/swagger/index.html",
		"health":  "/health",
	})
}
