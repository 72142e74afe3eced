package service

import (
	"strings"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务（含规格维护与前台详情聚合）
type ProductService struct {
	repo         repository.ProductRepository
	variantRepo  repository.ProductVariantRepository
	categoryRepo repository.CategoryRepository
	subRepo      repository.SubCategoryRepository
	reviewRepo   repository.ReviewRepository
	questionRepo repository.QuestionRepository
}

// NewProductService 创建商品服务
func NewProductService(
	repo repository.ProductRepository,
	variantRepo repository.ProductVariantRepository,
	categoryRepo repository.CategoryRepository,
	subRepo repository.SubCategoryRepository,
	reviewRepo repository.ReviewRepository,
	questionRepo repository.QuestionRepository,
) *ProductService {
	return &ProductService{
		repo:         repo,
		variantRepo:  variantRepo,
		categoryRepo: categoryRepo,
		subRepo:      subRepo,
		reviewRepo:   reviewRepo,
		questionRepo: questionRepo,
	}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	CategoryID    uint
	SubCategoryID *uint
	Name          string
	Slug          string
	Description   string
	Brand         string
	Price         decimal.Decimal
	ComparePrice  *decimal.Decimal
	Images        []string
	Tags          []string
	Stock         int
	IsActive      bool
	IsFeatured    bool
	IsNewArrival  bool
	IsBestSeller  bool
	SortOrder     int
	Variants      []VariantInput
}

// VariantInput 创建/更新规格输入
type VariantInput struct {
	Name         string
	SKU          string
	Price        decimal.Decimal
	ComparePrice *decimal.Decimal
	Stock        int
	Attributes   map[string]interface{}
	Image        string
	IsActive     bool
	SortOrder    int
}

// PublicProductQuery 前台商品列表查询（分类以 slug 传入）
type PublicProductQuery struct {
	Page            int
	PageSize        int
	CategorySlug    string
	SubCategorySlug string
	Search          string
	MinPrice        *float64
	MaxPrice        *float64
	Featured        bool
	NewArrival      bool
	BestSeller      bool
	Sort            string
}

// ProductDetail 前台商品详情
type ProductDetail struct {
	*models.Product
	ReviewSummary repository.ReviewSummary `json:"review_summary"`
	Questions     []models.Question        `json:"questions"`
}

// publicDetailQuestionLimit 详情页内嵌问答条数
const publicDetailQuestionLimit = 10

// ListPublic 前台商品列表
func (s *ProductService) ListPublic(query PublicProductQuery) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         query.Page,
		PageSize:     query.PageSize,
		Search:       strings.TrimSpace(query.Search),
		MinPrice:     query.MinPrice,
		MaxPrice:     query.MaxPrice,
		Featured:     query.Featured,
		NewArrival:   query.NewArrival,
		BestSeller:   query.BestSeller,
		OnlyActive:   true,
		Sort:         normalizeProductSort(query.Sort),
		WithCategory: true,
	}
	if slug := strings.TrimSpace(query.CategorySlug); slug != "" {
		category, err := s.categoryRepo.GetBySlug(strings.ToLower(slug), true)
		if err != nil {
			return nil, 0, err
		}
		if category == nil {
			return []models.Product{}, 0, nil
		}
		filter.CategoryID = category.ID
	}
	if slug := strings.TrimSpace(query.SubCategorySlug); slug != "" {
		sub, err := s.subRepo.GetBySlug(strings.ToLower(slug))
		if err != nil {
			return nil, 0, err
		}
		if sub == nil || !sub.IsActive {
			return []models.Product{}, 0, nil
		}
		filter.SubCategoryID = sub.ID
	}
	return s.repo.List(filter)
}

// GetPublicDetail 前台商品详情：启用规格、分类、评价汇总与公开问答
func (s *ProductService) GetPublicDetail(slug string) (*ProductDetail, error) {
	product, err := s.GetPublicBySlug(slug)
	if err != nil {
		return nil, err
	}
	summary, err := s.reviewRepo.SummaryByProduct(product.ID)
	if err != nil {
		return nil, err
	}
	published := true
	questions, _, err := s.questionRepo.List(repository.QuestionListFilter{
		Page:        1,
		PageSize:    publicDetailQuestionLimit,
		ProductID:   product.ID,
		IsPublished: &published,
	})
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: product, ReviewSummary: summary, Questions: questions}, nil
}

// GetPublicBySlug 获取上架商品
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(strings.ToLower(strings.TrimSpace(slug)), true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListAdmin 后台商品列表
func (s *ProductService) ListAdmin(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyActive = false
	filter.WithCategory = true
	filter.Sort = normalizeProductSort(filter.Sort)
	return s.repo.List(filter)
}

// GetAdminByID 后台商品详情（含全部规格）
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品，可同时创建规格
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	product := &models.Product{}
	if err := s.applyProductInput(product, 0, input); err != nil {
		return nil, err
	}
	variants := make([]models.ProductVariant, 0, len(input.Variants))
	seenSKU := make(map[string]struct{})
	for _, variantInput := range input.Variants {
		variant := models.ProductVariant{}
		if err := s.applyVariantInput(&variant, 0, variantInput); err != nil {
			return nil, err
		}
		if variant.SKU != nil {
			if _, ok := seenSKU[*variant.SKU]; ok {
				return nil, ErrSKUExists
			}
			seenSKU[*variant.SKU] = struct{}{}
		}
		variants = append(variants, variant)
	}
	product.Variants = variants
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return product, nil
}

// Update 更新商品基础字段，规格通过规格接口单独维护
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyProductInput(product, id, input); err != nil {
		return nil, err
	}
	product.Category = nil
	product.SubCategory = nil
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return s.GetAdminByID(id)
}

// Delete 删除商品及其规格
func (s *ProductService) Delete(id uint) error {
	if _, err := s.GetAdminByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	invalidatePublicCache()
	return nil
}

// CreateVariant 为商品新增规格
func (s *ProductService) CreateVariant(productID uint, input VariantInput) (*models.ProductVariant, error) {
	if _, err := s.GetAdminByID(productID); err != nil {
		return nil, err
	}
	variant := &models.ProductVariant{ProductID: productID}
	if err := s.applyVariantInput(variant, 0, input); err != nil {
		return nil, err
	}
	if err := s.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return variant, nil
}

// UpdateVariant 更新规格
func (s *ProductService) UpdateVariant(productID, variantID uint, input VariantInput) (*models.ProductVariant, error) {
	variant, err := s.getProductVariant(productID, variantID)
	if err != nil {
		return nil, err
	}
	if err := s.applyVariantInput(variant, variantID, input); err != nil {
		return nil, err
	}
	if err := s.variantRepo.Update(variant); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return variant, nil
}

// DeleteVariant 删除规格
func (s *ProductService) DeleteVariant(productID, variantID uint) error {
	if _, err := s.getProductVariant(productID, variantID); err != nil {
		return err
	}
	if err := s.variantRepo.Delete(variantID); err != nil {
		return err
	}
	invalidatePublicCache()
	return nil
}

func (s *ProductService) getProductVariant(productID, variantID uint) (*models.ProductVariant, error) {
	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil || variant.ProductID != productID {
		return nil, ErrVariantNotFound
	}
	return variant, nil
}

func (s *ProductService) applyProductInput(product *models.Product, excludeID uint, input ProductInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.CategoryID == 0 || input.Stock < 0 {
		return ErrInvalidInput
	}
	price := input.Price.Round(2)
	if price.IsNegative() {
		return ErrInvalidInput
	}
	if input.ComparePrice != nil && input.ComparePrice.IsNegative() {
		return ErrInvalidInput
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	var subCategoryID *uint
	if input.SubCategoryID != nil && *input.SubCategoryID > 0 {
		sub, err := s.subRepo.GetByID(*input.SubCategoryID)
		if err != nil {
			return err
		}
		if sub == nil {
			return ErrSubCategoryNotFound
		}
		if sub.CategoryID != input.CategoryID {
			return ErrSubCategoryMismatch
		}
		id := sub.ID
		subCategoryID = &id
	}
	slug, err := resolveSlug(input.Slug, name)
	if err != nil {
		return err
	}
	count, err := s.repo.CountBySlug(slug, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}

	product.CategoryID = input.CategoryID
	product.SubCategoryID = subCategoryID
	product.Name = name
	product.Slug = slug
	product.Description = input.Description
	product.Brand = strings.TrimSpace(input.Brand)
	product.Price = models.NewMoneyFromDecimal(price)
	product.ComparePrice = nil
	if input.ComparePrice != nil {
		product.ComparePrice = models.MoneyPtr(*input.ComparePrice)
	}
	product.Images = normalizeStringList(input.Images)
	product.Tags = normalizeStringList(input.Tags)
	product.Stock = input.Stock
	product.IsActive = input.IsActive
	product.IsFeatured = input.IsFeatured
	product.IsNewArrival = input.IsNewArrival
	product.IsBestSeller = input.IsBestSeller
	product.SortOrder = input.SortOrder
	return nil
}

func (s *ProductService) applyVariantInput(variant *models.ProductVariant, excludeID uint, input VariantInput) error {
	name := strings.TrimSpace(input.Name)
	price := input.Price.Round(2)
	if name == "" || price.IsNegative() || input.Stock < 0 {
		return ErrInvalidInput
	}
	var sku *string
	if code := strings.ToUpper(strings.TrimSpace(input.SKU)); code != "" {
		count, err := s.variantRepo.CountBySKU(code, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSKUExists
		}
		sku = &code
	}
	variant.Name = name
	variant.SKU = sku
	variant.Price = models.NewMoneyFromDecimal(price)
	variant.ComparePrice = nil
	if input.ComparePrice != nil {
		variant.ComparePrice = models.MoneyPtr(*input.ComparePrice)
	}
	variant.Stock = input.Stock
	variant.Attributes = models.JSON(input.Attributes)
	variant.Image = strings.TrimSpace(input.Image)
	variant.IsActive = input.IsActive
	variant.SortOrder = input.SortOrder
	return nil
}

func normalizeProductSort(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case constants.ProductSortPriceAsc:
		return constants.ProductSortPriceAsc
	case constants.ProductSortPriceDesc:
		return constants.ProductSortPriceDesc
	case constants.ProductSortName:
		return constants.ProductSortName
	default:
		return constants.ProductSortNewest
	}
}

func normalizeStringList(values []string) models.StringArray {
	result := make(models.StringArray, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
