package repository

import (
	"testing"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
)

func TestProductListFiltersAndSort(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	sarees := createTestCategory(t, db, "sarees")
	shoes := createTestCategory(t, db, "shoes")

	createTestProduct(t, db, sarees.ID, "jamdani-saree", "4500")
	createTestProduct(t, db, sarees.ID, "cotton-saree", "1200")
	createTestProduct(t, db, shoes.ID, "leather-sandal", "900")
	hidden := createTestProduct(t, db, sarees.ID, "hidden-saree", "100")
	if err := db.Model(hidden).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	products, total, err := repo.List(ProductListFilter{
		CategoryID: sarees.ID,
		OnlyActive: true,
		Sort:       constants.ProductSortPriceAsc,
		Page:       1,
		PageSize:   10,
	})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("want 2 active sarees got total=%d len=%d", total, len(products))
	}
	if products[0].Slug != "cotton-saree" {
		t.Fatalf("price_asc should list cotton-saree first, got %s", products[0].Slug)
	}

	minPrice := 1000.0
	products, total, err = repo.List(ProductListFilter{OnlyActive: true, MinPrice: &minPrice})
	if err != nil {
		t.Fatalf("list by min price failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("min price filter want 2 got %d", total)
	}
	for _, p := range products {
		if p.Slug == "leather-sandal" {
			t.Fatalf("leather-sandal should be filtered by min price")
		}
	}
}

func TestProductListSearchIsCaseInsensitive(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "sarees")
	product := createTestProduct(t, db, category.ID, "jamdani-saree", "4500")
	if err := db.Model(product).Update("name", "Dhakai Jamdani Saree").Error; err != nil {
		t.Fatalf("rename product failed: %v", err)
	}

	_, total, err := repo.List(ProductListFilter{Search: "JAMDANI", OnlyActive: true})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("search want 1 got %d", total)
	}
}

func TestProductGetBySlugLoadsActiveVariantsOnly(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "panjabi")
	product := createTestProduct(t, db, category.ID, "eid-panjabi", "2500")

	variants := []models.ProductVariant{
		{ProductID: product.ID, Name: "M", Price: models.MustMoney("2500"), IsActive: true},
		{ProductID: product.ID, Name: "XL", Price: models.MustMoney("2700"), IsActive: true},
	}
	if err := db.Create(&variants).Error; err != nil {
		t.Fatalf("create variants failed: %v", err)
	}
	if err := db.Model(&variants[1]).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate variant failed: %v", err)
	}

	got, err := repo.GetBySlug("eid-panjabi", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got == nil {
		t.Fatalf("product should exist")
	}
	if len(got.Variants) != 1 || got.Variants[0].Name != "M" {
		t.Fatalf("want only active variant M, got %+v", got.Variants)
	}
	if got.Category == nil || got.Category.Slug != "panjabi" {
		t.Fatalf("category should be preloaded")
	}

	missing, err := repo.GetBySlug("does-not-exist", true)
	if err != nil || missing != nil {
		t.Fatalf("missing slug should return nil,nil got %v,%v", missing, err)
	}
}

func TestProductCountBySlugExcludesSelf(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "bags")
	product := createTestProduct(t, db, category.ID, "jute-bag", "350")

	count, err := repo.CountBySlug("jute-bag", product.ID)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("self should be excluded, got %d", count)
	}
	count, err = repo.CountBySlug("jute-bag", 0)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("want 1 got %d", count)
	}
}
