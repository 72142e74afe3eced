package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	CategoryID    uint
	SubCategoryID uint
	Search        string
	MinPrice      *float64
	MaxPrice      *float64
	Featured      bool
	NewArrival    bool
	BestSeller    bool
	IsActive      *bool
	OnlyActive    bool
	Sort          string
	WithCategory  bool
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page      int
	PageSize  int
	Search    string
	IsActive  *bool
	WithChild bool
}

// SubCategoryListFilter 查询子分类列表的过滤条件
type SubCategoryListFilter struct {
	Page       int
	PageSize   int
	CategoryID uint
	Search     string
	IsActive   *bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page          int
	PageSize      int
	UserID        uint
	Status        string
	PaymentStatus string
	OrderNumber   string
	Email         string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// CouponListFilter 查询优惠券列表的过滤条件
type CouponListFilter struct {
	Page     int
	PageSize int
	Code     string
	IsActive *bool
}

// ShippingMethodListFilter 查询配送方式列表的过滤条件
type ShippingMethodListFilter struct {
	Page     int
	PageSize int
	IsActive *bool
}

// ReviewListFilter 查询评价列表的过滤条件
type ReviewListFilter struct {
	Page       int
	PageSize   int
	ProductID  uint
	IsApproved *bool
	Rating     int
}

// QuestionListFilter 查询问答列表的过滤条件
type QuestionListFilter struct {
	Page        int
	PageSize    int
	ProductID   uint
	IsPublished *bool
	Unanswered  bool
}

// BannerListFilter 查询 Banner 列表的过滤条件
type BannerListFilter struct {
	Page      int
	PageSize  int
	Search    string
	IsActive  *bool
	OnlyValid bool
}

// ContentListFilter CMS 通用列表过滤条件（中部横幅、特色卡片、区块、社交链接等）
type ContentListFilter struct {
	Page     int
	PageSize int
	IsActive *bool
	Position string
}

// UserListFilter 查询顾客列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Status   string
}
