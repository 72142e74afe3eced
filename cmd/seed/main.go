package main

import (
	"time"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

type seedSubCategory struct {
	Name string
	Slug string
}

type seedCategory struct {
	Name string
	Slug string
	Subs []seedSubCategory
}

type seedVariant struct {
	Name  string
	SKU   string
	Price string
}

type seedProduct struct {
	Name         string
	Slug         string
	Category     string
	SubCategory  string
	Brand        string
	Price        string
	ComparePrice string
	Featured     bool
	NewArrival   bool
	BestSeller   bool
	Variants     []seedVariant
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		categoryIDs, subCategoryIDs, err := seedCategories(tx)
		if err != nil {
			return err
		}
		if err := seedProducts(tx, categoryIDs, subCategoryIDs); err != nil {
			return err
		}
		if err := seedShippingMethods(tx); err != nil {
			return err
		}
		return seedCoupons(tx)
	})
	if err != nil {
		stdLog.Fatalf("Seed failed: %v", err)
	}
	logger.Infow("seed_completed")
}

func seedCategories(tx *gorm.DB) (map[string]uint, map[string]uint, error) {
	categories := []seedCategory{
		{Name: "Men's Fashion", Slug: "mens-fashion", Subs: []seedSubCategory{
			{Name: "Panjabi", Slug: "panjabi"},
			{Name: "T-Shirts", Slug: "t-shirts"},
		}},
		{Name: "Women's Fashion", Slug: "womens-fashion", Subs: []seedSubCategory{
			{Name: "Saree", Slug: "saree"},
			{Name: "Salwar Kameez", Slug: "salwar-kameez"},
		}},
		{Name: "Electronics", Slug: "electronics", Subs: []seedSubCategory{
			{Name: "Mobile Accessories", Slug: "mobile-accessories"},
		}},
	}

	categoryIDs := map[string]uint{}
	subCategoryIDs := map[string]uint{}
	for i, item := range categories {
		category := models.Category{Name: item.Name, Slug: item.Slug, SortOrder: i, IsActive: true}
		if err := tx.Where("slug = ?", item.Slug).FirstOrCreate(&category).Error; err != nil {
			return nil, nil, err
		}
		categoryIDs[item.Slug] = category.ID
		for j, sub := range item.Subs {
			subCategory := models.SubCategory{CategoryID: category.ID, Name: sub.Name, Slug: sub.Slug, SortOrder: j, IsActive: true}
			if err := tx.Where("slug = ?", sub.Slug).FirstOrCreate(&subCategory).Error; err != nil {
				return nil, nil, err
			}
			subCategoryIDs[sub.Slug] = subCategory.ID
		}
		logger.Infow("seed_category_ready", "slug", item.Slug, "subcategories", len(item.Subs))
	}
	return categoryIDs, subCategoryIDs, nil
}

func seedProducts(tx *gorm.DB, categoryIDs, subCategoryIDs map[string]uint) error {
	products := []seedProduct{
		{
			Name: "Cotton Panjabi", Slug: "cotton-panjabi", Category: "mens-fashion", SubCategory: "panjabi",
			Brand: "Deshi Threads", Price: "1850", ComparePrice: "2200", Featured: true, BestSeller: true,
			Variants: []seedVariant{
				{Name: "White / M", SKU: "PNJ-WHT-M", Price: "1850"},
				{Name: "White / L", SKU: "PNJ-WHT-L", Price: "1850"},
				{Name: "Navy / XL", SKU: "PNJ-NVY-XL", Price: "1950"},
			},
		},
		{
			Name: "Graphic T-Shirt", Slug: "graphic-t-shirt", Category: "mens-fashion", SubCategory: "t-shirts",
			Brand: "Dhaka Tees", Price: "650", NewArrival: true,
		},
		{
			Name: "Jamdani Saree", Slug: "jamdani-saree", Category: "womens-fashion", SubCategory: "saree",
			Brand: "Rupshi Loom", Price: "8500", ComparePrice: "9500", Featured: true,
		},
		{
			Name: "20W Fast Charger", Slug: "20w-fast-charger", Category: "electronics", SubCategory: "mobile-accessories",
			Brand: "VoltBD", Price: "1250", BestSeller: true,
		},
	}

	for i, item := range products {
		categoryID, ok := categoryIDs[item.Category]
		if !ok {
			continue
		}
		product := models.Product{
			CategoryID:   categoryID,
			Name:         item.Name,
			Slug:         item.Slug,
			Brand:        item.Brand,
			Price:        models.MustMoney(item.Price),
			Stock:        50,
			IsActive:     true,
			IsFeatured:   item.Featured,
			IsNewArrival: item.NewArrival,
			IsBestSeller: item.BestSeller,
			SortOrder:    i,
		}
		if subID, ok := subCategoryIDs[item.SubCategory]; ok {
			product.SubCategoryID = &subID
		}
		if item.ComparePrice != "" {
			compare := models.MustMoney(item.ComparePrice)
			product.ComparePrice = &compare
		}
		if err := tx.Where("slug = ?", item.Slug).FirstOrCreate(&product).Error; err != nil {
			return err
		}
		for j, v := range item.Variants {
			sku := v.SKU
			variant := models.ProductVariant{
				ProductID: product.ID,
				Name:      v.Name,
				SKU:       &sku,
				Price:     models.MustMoney(v.Price),
				Stock:     20,
				IsActive:  true,
				SortOrder: j,
			}
			if err := tx.Where("sku = ?", sku).FirstOrCreate(&variant).Error; err != nil {
				return err
			}
		}
		logger.Infow("seed_product_ready", "slug", item.Slug, "variants", len(item.Variants))
	}
	return nil
}

func seedShippingMethods(tx *gorm.DB) error {
	freeFrom := models.MustMoney("5000")
	insideMax := models.MustMoney("4999.99")
	methods := []models.ShippingMethod{
		{Name: "Inside Dhaka", Cost: models.MustMoney("60"), MaxOrderValue: &insideMax, EstimatedDays: "1-2 days", SortOrder: 0, IsActive: true},
		{Name: "Outside Dhaka", Cost: models.MustMoney("120"), MaxOrderValue: &insideMax, EstimatedDays: "3-5 days", SortOrder: 1, IsActive: true},
		{Name: "Free Delivery", Cost: models.MustMoney("0"), MinOrderValue: &freeFrom, EstimatedDays: "2-4 days", SortOrder: 2, IsActive: true},
	}
	for _, method := range methods {
		method := method
		if err := tx.Where("name = ?", method.Name).FirstOrCreate(&method).Error; err != nil {
			return err
		}
	}
	logger.Infow("seed_shipping_methods_ready", "count", len(methods))
	return nil
}

func seedCoupons(tx *gorm.DB) error {
	now := time.Now()
	maxDiscount := models.MustMoney("500")
	limit := 100
	coupons := []models.Coupon{
		{
			Code:        "WELCOME10",
			Description: "10% off your first order",
			Type:        constants.CouponTypePercentage,
			Value:       models.MustMoney("10"),
			MinPurchase: models.MustMoney("1000"),
			MaxDiscount: &maxDiscount,
			UsageLimit:  &limit,
			ValidFrom:   now,
			ValidTo:     now.AddDate(0, 3, 0),
			Active:      true,
		},
		{
			Code:        "EID200",
			Description: "Flat 200 off on orders above 2000",
			Type:        constants.CouponTypeFixed,
			Value:       models.MustMoney("200"),
			MinPurchase: models.MustMoney("2000"),
			ValidFrom:   now,
			ValidTo:     now.AddDate(0, 1, 0),
			Active:      true,
		},
	}
	for _, coupon := range coupons {
		coupon := coupon
		if err := tx.Where("code = ?", coupon.Code).FirstOrCreate(&coupon).Error; err != nil {
			return err
		}
	}
	logger.Infow("seed_coupons_ready", "count", len(coupons))
	return nil
}
