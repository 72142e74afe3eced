package repository

import (
	"errors"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// QuestionRepository 商品问答数据访问接口
type QuestionRepository interface {
	List(filter QuestionListFilter) ([]models.Question, int64, error)
	GetByID(id uint) (*models.Question, error)
	Create(question *models.Question) error
	SetPublished(id uint, published bool) error
	Delete(id uint) error
	CreateAnswer(answer *models.Answer) error
}

// GormQuestionRepository GORM 实现
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository 创建问答仓库
func NewQuestionRepository(db *gorm.DB) *GormQuestionRepository {
	return &GormQuestionRepository{db: db}
}

func preloadAnswers(query *gorm.DB) *gorm.DB {
	return query.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// List 问题列表
func (r *GormQuestionRepository) List(filter QuestionListFilter) ([]models.Question, int64, error) {
	query := preloadAnswers(r.db.Model(&models.Question{}))
	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	} else {
		query = query.Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "slug")
		})
	}
	query = applyActiveFilter(query, "is_published", filter.IsPublished)
	if filter.Unanswered {
		query = query.Where("NOT EXISTS (SELECT 1 FROM answers a WHERE a.question_id = questions.id)")
	}
	return countAndFind[models.Question](query, filter.Page, filter.PageSize, "created_at DESC, id DESC")
}

// GetByID 根据 ID 获取问题（含回答）
func (r *GormQuestionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := preloadAnswers(r.db).First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// Create 创建问题
func (r *GormQuestionRepository) Create(question *models.Question) error {
	return r.db.Omit("Product", "Answers").Create(question).Error
}

// SetPublished 设置公开状态
func (r *GormQuestionRepository) SetPublished(id uint, published bool) error {
	return r.db.Model(&models.Question{}).Where("id = ?", id).Update("is_published", published).Error
}

// Delete 删除问题及其回答
func (r *GormQuestionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, id).Error
	})
}

// CreateAnswer 创建回答
func (r *GormQuestionRepository) CreateAnswer(answer *models.Answer) error {
	return r.db.Create(answer).Error
}
