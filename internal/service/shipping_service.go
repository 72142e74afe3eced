package service

import (
	"strings"

	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/pricing"
	"github.com/bazaar-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ShippingService 配送方式服务
type ShippingService struct {
	repo repository.ShippingMethodRepository
}

// NewShippingService 创建配送方式服务
func NewShippingService(repo repository.ShippingMethodRepository) *ShippingService {
	return &ShippingService{repo: repo}
}

// ShippingMethodInput 创建/更新配送方式输入
type ShippingMethodInput struct {
	Name          string
	Description   string
	Cost          decimal.Decimal
	MinOrderValue *decimal.Decimal
	MaxOrderValue *decimal.Decimal
	EstimatedDays string
	SortOrder     int
	IsActive      bool
}

// ListAvailable 返回金额区间覆盖小计的启用配送方式（已按权重排序）
func (s *ShippingService) ListAvailable(subtotal decimal.Decimal) ([]models.ShippingMethod, error) {
	methods, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	result := make([]models.ShippingMethod, 0, len(methods))
	for _, method := range methods {
		if shippingMethodAdmits(&method, subtotal) {
			result = append(result, method)
		}
	}
	return result, nil
}

// Resolve 解析结算使用的配送方式，id 为 0 时返回 nil
func (s *ShippingService) Resolve(id uint, subtotal decimal.Decimal) (*models.ShippingMethod, error) {
	if id == 0 {
		return nil, nil
	}
	method, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil || !method.IsActive {
		return nil, ErrShippingMethodNotFound
	}
	if !shippingMethodAdmits(method, subtotal) {
		return nil, ErrShippingNotAvailable
	}
	return method, nil
}

// HasActive 是否存在启用的配送方式
func (s *ShippingService) HasActive() (bool, error) {
	count, err := s.repo.CountActive()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List 后台配送方式列表
func (s *ShippingService) List(filter repository.ShippingMethodListFilter) ([]models.ShippingMethod, int64, error) {
	return s.repo.List(filter)
}

// Get 获取配送方式
func (s *ShippingService) Get(id uint) (*models.ShippingMethod, error) {
	method, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrShippingMethodNotFound
	}
	return method, nil
}

// Create 创建配送方式
func (s *ShippingService) Create(input ShippingMethodInput) (*models.ShippingMethod, error) {
	method := &models.ShippingMethod{}
	if err := applyShippingMethodInput(method, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(method); err != nil {
		return nil, err
	}
	return method, nil
}

// Update 更新配送方式
func (s *ShippingService) Update(id uint, input ShippingMethodInput) (*models.ShippingMethod, error) {
	method, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := applyShippingMethodInput(method, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(method); err != nil {
		return nil, err
	}
	return method, nil
}

// Delete 删除配送方式；历史订单保留名称快照
func (s *ShippingService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func applyShippingMethodInput(method *models.ShippingMethod, input ShippingMethodInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Cost.IsNegative() {
		return ErrInvalidInput
	}
	if input.MinOrderValue != nil && input.MinOrderValue.IsNegative() {
		return ErrInvalidInput
	}
	if input.MaxOrderValue != nil && input.MaxOrderValue.IsNegative() {
		return ErrInvalidInput
	}
	if input.MinOrderValue != nil && input.MaxOrderValue != nil && input.MaxOrderValue.LessThan(*input.MinOrderValue) {
		return ErrInvalidInput
	}
	method.Name = name
	method.Description = strings.TrimSpace(input.Description)
	method.Cost = models.NewMoneyFromDecimal(input.Cost)
	method.MinOrderValue = nil
	if input.MinOrderValue != nil {
		method.MinOrderValue = models.MoneyPtr(*input.MinOrderValue)
	}
	method.MaxOrderValue = nil
	if input.MaxOrderValue != nil {
		method.MaxOrderValue = models.MoneyPtr(*input.MaxOrderValue)
	}
	method.EstimatedDays = strings.TrimSpace(input.EstimatedDays)
	method.SortOrder = input.SortOrder
	method.IsActive = input.IsActive
	return nil
}

func shippingMethodAdmits(method *models.ShippingMethod, subtotal decimal.Decimal) bool {
	var minOrder, maxOrder *decimal.Decimal
	if method.MinOrderValue != nil {
		value := method.MinOrderValue.Decimal
		minOrder = &value
	}
	if method.MaxOrderValue != nil {
		value := method.MaxOrderValue.Decimal
		maxOrder = &value
	}
	return pricing.ShippingAvailable(minOrder, maxOrder, pricing.Round(subtotal))
}
