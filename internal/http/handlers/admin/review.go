package admin

import (
	"strconv"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ReviewApprovalRequest 评价审核请求
type ReviewApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// AnswerQuestionRequest 回复问题请求
type AnswerQuestionRequest struct {
	Answer  string `json:"answer" binding:"required"`
	Publish *bool  `json:"publish"`
}

// QuestionPublishRequest 问题发布请求
type QuestionPublishRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// GetAdminReviews 评价列表
func (h *Handler) GetAdminReviews(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	approved, ok := handlershared.ParseOptionalBool(c, "is_approved")
	if !ok {
		return
	}
	productID, _ := strconv.ParseUint(c.Query("product_id"), 10, 64)
	rating, _ := strconv.Atoi(c.Query("rating"))
	reviews, total, err := h.ReviewService.ListReviews(repository.ReviewListFilter{
		Page:       page,
		PageSize:   pageSize,
		ProductID:  uint(productID),
		IsApproved: approved,
		Rating:     rating,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, reviews, page, pageSize, total)
}

// SetReviewApproval 审核/取消审核评价
func (h *Handler) SetReviewApproval(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ReviewApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	review, err := h.ReviewService.SetReviewApproved(id, *req.Approved)
	if err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, review)
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ReviewService.DeleteReview(id); err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}

// GetAdminQuestions 问题列表
func (h *Handler) GetAdminQuestions(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	published, ok := handlershared.ParseOptionalBool(c, "is_published")
	if !ok {
		return
	}
	productID, _ := strconv.ParseUint(c.Query("product_id"), 10, 64)
	unanswered, _ := strconv.ParseBool(c.DefaultQuery("unanswered", "false"))
	questions, total, err := h.ReviewService.ListQuestions(repository.QuestionListFilter{
		Page:        page,
		PageSize:    pageSize,
		ProductID:   uint(productID),
		IsPublished: published,
		Unanswered:  unanswered,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, questions, page, pageSize, total)
}

// AnswerQuestion 回复问题，默认同时发布
func (h *Handler) AnswerQuestion(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	question, err := h.ReviewService.AnswerQuestion(id, adminID, req.Answer, boolOrDefault(req.Publish, true))
	if err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, question)
}

// SetQuestionPublished 发布/取消发布问题
func (h *Handler) SetQuestionPublished(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req QuestionPublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	question, err := h.ReviewService.SetQuestionPublished(id, *req.Published)
	if err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, question)
}

// DeleteQuestion 删除问题
func (h *Handler) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ReviewService.DeleteQuestion(id); err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}
