package controller

import (
	"errors"

	"awareness_backend/internal/model"
	"awareness_backend/internal/service"
	"awareness_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
	// LeaderboardSize 未指定 limit 时返回的条数
	LeaderboardSize int
}

func NewAssessmentController(svc *service.AssessmentService, leaderboardSize int) *AssessmentController {
	if leaderboardSize <= 0 {
		leaderboardSize = util.DefaultLeaderboardSize
	}
	if leaderboardSize > util.MaxLeaderboardSize {
		leaderboardSize = util.MaxLeaderboardSize
	}
	return &AssessmentController{Service: svc, LeaderboardSize: leaderboardSize}
}

// respondError 业务错误到 HTTP 状态码的映射
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrDomainNotFound):
		util.NotFound(ctx, "Assessment domain not found")
	case errors.Is(err, util.ErrQuestionsUnavailable):
		util.ServiceUnavailable(ctx, "Questions not loaded")
	case errors.Is(err, util.ErrSinkUnavailable):
		util.ServiceUnavailable(ctx, "Database not connected")
	case errors.Is(err, util.ErrLeaderboardDisabled):
		util.ServiceUnavailable(ctx, "Leaderboard not available")
	case errors.Is(err, util.ErrEmailRequired):
		util.BadRequest(ctx, "email query parameter is required")
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 评估领域列表
// @Tags 安全意识评估
// @Produce json
// @Success 200 {object} util.Response{data=[]model.DomainSummary}
// @Router /api/assessments [get]
func (c *AssessmentController) ListDomains(ctx *gin.Context) {
	util.Success(ctx, c.Service.ListDomains())
}

// @Summary 获取题目
// @Tags 安全意识评估
// @Produce json
// @Param domain path string true "领域 slug"
// @Success 200 {object} util.Response{data=[]model.QuestionView}
// @Failure 404 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/assessments/{domain}/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	qs, err := c.Service.Questions(ctx.Param("domain"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary 提交答卷并评估
// @Tags 安全意识评估
// @Accept json
// @Produce json
// @Param domain path string true "领域 slug"
// @Param body body model.AssessmentSubmission true "用户信息与答案"
// @Success 200 {object} util.Response{data=model.AssessmentResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assessments/{domain}/assess [post]
func (c *AssessmentController) Assess(ctx *gin.Context) {
	var sub model.AssessmentSubmission
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}

	result, err := c.Service.Assess(ctx.Request.Context(), ctx.Param("domain"), &sub)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, result.Message, result)
}

// @Summary 排行榜
// @Tags 安全意识评估
// @Produce json
// @Param domain path string true "领域 slug"
// @Param limit query int false "条数，默认取配置 leaderboard.size，最大100"
// @Success 200 {object} util.Response{data=[]model.LeaderboardEntry}
// @Failure 503 {object} util.Response
// @Router /api/assessments/{domain}/leaderboard [get]
func (c *AssessmentController) Leaderboard(ctx *gin.Context) {
	limit := util.ParseLimit(ctx.Query("limit"), c.LeaderboardSize, util.MaxLeaderboardSize)
	entries, err := c.Service.Leaderboard(ctx.Request.Context(), ctx.Param("domain"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary 评估统计
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param domain path string true "领域 slug"
// @Success 200 {object} util.Response{data=model.AssessmentStats}
// @Failure 401 {object} util.Response
// @Router /api/admin/assessments/{domain}/stats [get]
func (c *AssessmentController) Stats(ctx *gin.Context) {
	stats, err := c.Service.Stats(ctx.Request.Context(), ctx.Param("domain"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, stats.Message, stats)
}

// @Summary 作答历史与提升
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param domain path string true "领域 slug"
// @Param email query string true "邮箱"
// @Success 200 {object} util.Response{data=model.AssessmentHistory}
// @Failure 400 {object} util.Response
// @Router /api/admin/assessments/{domain}/history [get]
func (c *AssessmentController) History(ctx *gin.Context) {
	history, err := c.Service.History(ctx.Request.Context(), ctx.Param("domain"), ctx.Query("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, history.Message, history)
}
