package public

import (
	"strings"

	"github.com/bazaar-next/internal/constants"
	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitReviewRequest 提交评价请求
type SubmitReviewRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"omitempty,email"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"max=200"`
	Comment string `json:"comment" binding:"required"`
	handlershared.CaptchaPayloadRequest
}

// SubmitQuestionRequest 提交问题请求
type SubmitQuestionRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"omitempty,email"`
	Body  string `json:"body" binding:"required"`
	handlershared.CaptchaPayloadRequest
}

var reviewErrorRules = handlershared.ConcatMappedErrors(productLookupErrorRules, handlershared.CatalogErrorRules, handlershared.CommonErrorRules)

// GetProductReviews 已审核评价
func (h *Handler) GetProductReviews(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	reviews, total, err := h.ReviewService.ListApprovedReviews(strings.TrimSpace(c.Param("slug")), page, pageSize)
	if err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.internal")
		return
	}
	handlershared.Page(c, reviews, page, pageSize, total)
}

// SubmitProductReview 提交评价，需审核后展示
func (h *Handler) SubmitProductReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneSubmitReview, req.CaptchaPayloadRequest) {
		return
	}
	review, err := h.ReviewService.SubmitReview(service.SubmitReviewInput{
		ProductSlug: strings.TrimSpace(c.Param("slug")),
		UserID:      handlershared.OptionalUserID(c),
		Name:        req.Name,
		Email:       req.Email,
		Rating:      req.Rating,
		Title:       req.Title,
		Comment:     req.Comment,
	})
	if err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, review)
}

// GetProductQuestions 已发布问答
func (h *Handler) GetProductQuestions(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	questions, total, err := h.ReviewService.ListPublishedQuestions(strings.TrimSpace(c.Param("slug")), page, pageSize)
	if err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.internal")
		return
	}
	handlershared.Page(c, questions, page, pageSize, total)
}

// SubmitProductQuestion 提交问题，回复后发布
func (h *Handler) SubmitProductQuestion(c *gin.Context) {
	var req SubmitQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	if !h.verifyCaptcha(c, constants.CaptchaSceneSubmitQuestion, req.CaptchaPayloadRequest) {
		return
	}
	question, err := h.ReviewService.SubmitQuestion(service.SubmitQuestionInput{
		ProductSlug: strings.TrimSpace(c.Param("slug")),
		UserID:      handlershared.OptionalUserID(c),
		Name:        req.Name,
		Email:       req.Email,
		Body:        req.Body,
	})
	if err != nil {
		respondMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, question)
}
