package service

import (
	"strings"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// ReviewService 商品评价与问答服务
type ReviewService struct {
	reviewRepo   repository.ReviewRepository
	questionRepo repository.QuestionRepository
	productRepo  repository.ProductRepository
}

// NewReviewService 创建评价与问答服务
func NewReviewService(reviewRepo repository.ReviewRepository, questionRepo repository.QuestionRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		questionRepo: questionRepo,
		productRepo:  productRepo,
	}
}

// SubmitReviewInput 顾客提交评价
type SubmitReviewInput struct {
	ProductSlug string
	UserID      *uint
	Name        string
	Email       string
	Rating      int
	Title       string
	Comment     string
}

// SubmitQuestionInput 顾客提交问题
type SubmitQuestionInput struct {
	ProductSlug string
	UserID      *uint
	Name        string
	Email       string
	Body        string
}

// ListApprovedReviews 前台已审核评价
func (s *ReviewService) ListApprovedReviews(productSlug string, page, pageSize int) ([]models.Review, int64, error) {
	product, err := s.resolveProduct(productSlug)
	if err != nil {
		return nil, 0, err
	}
	approved := true
	return s.reviewRepo.List(repository.ReviewListFilter{
		Page:       page,
		PageSize:   pageSize,
		ProductID:  product.ID,
		IsApproved: &approved,
	})
}

// SubmitReview 提交评价，默认待审核
func (s *ReviewService) SubmitReview(input SubmitReviewInput) (*models.Review, error) {
	if input.Rating < constants.ReviewRatingMin || input.Rating > constants.ReviewRatingMax {
		return nil, ErrInvalidRating
	}
	name := strings.TrimSpace(input.Name)
	comment := strings.TrimSpace(input.Comment)
	if name == "" || comment == "" {
		return nil, ErrInvalidInput
	}
	product, err := s.resolveProduct(input.ProductSlug)
	if err != nil {
		return nil, err
	}
	review := &models.Review{
		ProductID:  product.ID,
		UserID:     input.UserID,
		Name:       name,
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Rating:     input.Rating,
		Title:      strings.TrimSpace(input.Title),
		Comment:    comment,
		IsApproved: false,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews 后台评价列表
func (s *ReviewService) ListReviews(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.reviewRepo.List(filter)
}

// SetReviewApproved 审核/取消审核评价
func (s *ReviewService) SetReviewApproved(id uint, approved bool) (*models.Review, error) {
	review, err := s.getReview(id)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.SetApproved(id, approved); err != nil {
		return nil, err
	}
	review.IsApproved = approved
	return review, nil
}

// DeleteReview 删除评价
func (s *ReviewService) DeleteReview(id uint) error {
	if _, err := s.getReview(id); err != nil {
		return err
	}
	return s.reviewRepo.Delete(id)
}

// ListPublishedQuestions 前台已公开问答（含回答）
func (s *ReviewService) ListPublishedQuestions(productSlug string, page, pageSize int) ([]models.Question, int64, error) {
	product, err := s.resolveProduct(productSlug)
	if err != nil {
		return nil, 0, err
	}
	published := true
	return s.questionRepo.List(repository.QuestionListFilter{
		Page:        page,
		PageSize:    pageSize,
		ProductID:   product.ID,
		IsPublished: &published,
	})
}

// SubmitQuestion 提交问题，默认不公开
func (s *ReviewService) SubmitQuestion(input SubmitQuestionInput) (*models.Question, error) {
	name := strings.TrimSpace(input.Name)
	body := strings.TrimSpace(input.Body)
	if name == "" || body == "" {
		return nil, ErrInvalidInput
	}
	product, err := s.resolveProduct(input.ProductSlug)
	if err != nil {
		return nil, err
	}
	question := &models.Question{
		ProductID:   product.ID,
		UserID:      input.UserID,
		Name:        name,
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Body:        body,
		IsPublished: false,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

// ListQuestions 后台问答列表
func (s *ReviewService) ListQuestions(filter repository.QuestionListFilter) ([]models.Question, int64, error) {
	return s.questionRepo.List(filter)
}

// AnswerQuestion 管理员回答问题，publish 为真时同时公开
func (s *ReviewService) AnswerQuestion(questionID, adminID uint, body string, publish bool) (*models.Question, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.getQuestion(questionID); err != nil {
		return nil, err
	}
	answer := &models.Answer{QuestionID: questionID, Body: body}
	if adminID > 0 {
		answer.AdminID = &adminID
	}
	if err := s.questionRepo.CreateAnswer(answer); err != nil {
		return nil, err
	}
	if publish {
		if err := s.questionRepo.SetPublished(questionID, true); err != nil {
			return nil, err
		}
	}
	return s.getQuestion(questionID)
}

// SetQuestionPublished 公开/隐藏问题
func (s *ReviewService) SetQuestionPublished(id uint, published bool) (*models.Question, error) {
	question, err := s.getQuestion(id)
	if err != nil {
		return nil, err
	}
	if err := s.questionRepo.SetPublished(id, published); err != nil {
		return nil, err
	}
	question.IsPublished = published
	return question, nil
}

// DeleteQuestion 删除问题及其回答
func (s *ReviewService) DeleteQuestion(id uint) error {
	if _, err := s.getQuestion(id); err != nil {
		return err
	}
	return s.questionRepo.Delete(id)
}

func (s *ReviewService) resolveProduct(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.ToLower(strings.TrimSpace(slug)), true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ReviewService) getReview(id uint) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	return review, nil
}

func (s *ReviewService) getQuestion(id uint) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	return question, nil
}
