package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

func TestMenuItemParentValidation(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewMenuItemService(repository.NewMenuItemRepository(db))

	shop, err := svc.Create(MenuItemInput{Label: "Shop", URL: "/shop", IsActive: true})
	if err != nil {
		t.Fatalf("create root failed: %v", err)
	}
	men, err := svc.Create(MenuItemInput{Label: "Men", URL: "/category/men", ParentID: uintPtr(shop.ID), IsActive: true})
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}
	if _, err := svc.Create(MenuItemInput{Label: "Ghost", URL: "/x", ParentID: uintPtr(999)}); !errors.Is(err, ErrMenuParentInvalid) {
		t.Fatalf("expected ErrMenuParentInvalid for missing parent, got %v", err)
	}
	if _, err := svc.Update(shop.ID, MenuItemInput{Label: "Shop", URL: "/shop", ParentID: uintPtr(men.ID)}); !errors.Is(err, ErrMenuParentInvalid) {
		t.Fatalf("expected ErrMenuParentInvalid for cycle, got %v", err)
	}
	if _, err := svc.Update(shop.ID, MenuItemInput{Label: "Shop", URL: "/shop", ParentID: uintPtr(shop.ID)}); !errors.Is(err, ErrMenuParentInvalid) {
		t.Fatalf("expected ErrMenuParentInvalid for self parent, got %v", err)
	}
	if err := svc.Delete(shop.ID); !errors.Is(err, ErrMenuItemHasChildren) {
		t.Fatalf("expected ErrMenuItemHasChildren, got %v", err)
	}
	if err := svc.Delete(men.ID); err != nil {
		t.Fatalf("delete leaf failed: %v", err)
	}
	if err := svc.Delete(shop.ID); err != nil {
		t.Fatalf("delete root failed: %v", err)
	}
}

func TestBuildMenuTreeOrdersAndAttachesOrphans(t *testing.T) {
	root := uint(1)
	missing := uint(42)
	tree := BuildMenuTree([]models.MenuItem{
		{ID: 3, Label: "Women", ParentID: &root, SortOrder: 2},
		{ID: 1, Label: "Shop", SortOrder: 1},
		{ID: 2, Label: "Men", ParentID: &root, SortOrder: 1},
		{ID: 4, Label: "Sale", SortOrder: 0},
		{ID: 5, Label: "Orphan", ParentID: &missing, SortOrder: 5},
	})
	if len(tree) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(tree))
	}
	if tree[0].Label != "Sale" || tree[1].Label != "Shop" || tree[2].Label != "Orphan" {
		t.Fatalf("unexpected root order: %s, %s, %s", tree[0].Label, tree[1].Label, tree[2].Label)
	}
	children := tree[1].Children
	if len(children) != 2 || children[0].Label != "Men" || children[1].Label != "Women" {
		t.Fatalf("unexpected children: %+v", children)
	}
}

func TestPruneInactiveMenuDropsSubtree(t *testing.T) {
	tree := []models.MenuItem{
		{ID: 1, Label: "Shop", IsActive: true, Children: []models.MenuItem{
			{ID: 2, Label: "Men", IsActive: false, Children: []models.MenuItem{{ID: 4, Label: "Panjabi", IsActive: true}}},
			{ID: 3, Label: "Women", IsActive: true},
		}},
		{ID: 5, Label: "Hidden", IsActive: false},
	}
	pruned := pruneInactiveMenu(tree)
	if len(pruned) != 1 || len(pruned[0].Children) != 1 || pruned[0].Children[0].Label != "Women" {
		t.Fatalf("unexpected pruned tree: %+v", pruned)
	}
}

func TestProductSectionValidation(t *testing.T) {
	db := openServiceTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	svc := NewProductSectionService(repository.NewProductSectionRepository(db), categoryRepo)

	if _, err := svc.Create(ProductSectionInput{Title: "Odd", Type: "random"}); !errors.Is(err, ErrSectionTypeInvalid) {
		t.Fatalf("expected ErrSectionTypeInvalid, got %v", err)
	}
	if _, err := svc.Create(ProductSectionInput{Title: "By category", Type: constants.SectionTypeCategory}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("category section without category should fail, got %v", err)
	}
	if _, err := svc.Create(ProductSectionInput{Title: "Picks", Type: constants.SectionTypeCustom}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("custom section without products should fail, got %v", err)
	}

	section, err := svc.Create(ProductSectionInput{
		Title:      "Staff Picks",
		Type:       "custom",
		ProductIDs: []uint{3, 1, 3, 0, 2},
		ItemLimit:  500,
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("create section failed: %v", err)
	}
	if section.Slug != "staff-picks" || section.Type != constants.SectionTypeCustom {
		t.Fatalf("unexpected section: %+v", section)
	}
	if section.ItemLimit != constants.SectionItemLimitMax {
		t.Fatalf("item limit should clamp to %d, got %d", constants.SectionItemLimitMax, section.ItemLimit)
	}
	if len(section.ProductIDs) != 3 || section.ProductIDs[0] != 3 || section.ProductIDs[2] != 2 {
		t.Fatalf("unexpected product ids: %v", section.ProductIDs)
	}
	if _, err := svc.Create(ProductSectionInput{Title: "Staff Picks", Type: constants.SectionTypeFeatured}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestSettingDefaultsAndUpdate(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	basic, err := svc.GetBasic()
	if err != nil {
		t.Fatalf("get basic failed: %v", err)
	}
	if basic.SiteName != defaultStoreName || basic.Currency != constants.SiteCurrencyDefault || basic.CurrencySymbol != constants.SiteCurrencySymbolDefault {
		t.Fatalf("unexpected defaults: %+v", basic)
	}
	footer, err := svc.GetFooter()
	if err != nil {
		t.Fatalf("get footer failed: %v", err)
	}
	if !footer.ShowSocialLinks || !footer.ShowPaymentIcons {
		t.Fatalf("footer toggles should default on: %+v", footer)
	}

	if _, err := svc.Update(constants.SettingKeyBasic, []byte(`{"site_name":"  Dhaka Mart ","currency":"bdt"}`)); err != nil {
		t.Fatalf("update basic failed: %v", err)
	}
	basic, err = svc.GetBasic()
	if err != nil {
		t.Fatalf("get basic failed: %v", err)
	}
	if basic.SiteName != "Dhaka Mart" || basic.Currency != "BDT" {
		t.Fatalf("unexpected stored settings: %+v", basic)
	}
	if _, err := svc.Update("payments", []byte(`{}`)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown key, got %v", err)
	}
	if _, err := svc.Update(constants.SettingKeyContact, []byte(`not-json`)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Update(constants.SettingKeyContact, []byte(`{"phone":" 01712345678 "}`)); err != nil {
		t.Fatalf("update contact failed: %v", err)
	}

	snapshot, err := svc.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if snapshot.Basic.SiteName != "Dhaka Mart" || snapshot.Contact.Phone != "01712345678" {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if !snapshot.Footer.ShowSocialLinks {
		t.Fatalf("missing footer should fall back to defaults: %+v", snapshot.Footer)
	}
}

func TestStorefrontHomeResolvesSections(t *testing.T) {
	f := newStoreFixture(t)
	first := f.createProduct(t, "first", "100", true)
	second := f.createProduct(t, "second", "200", true)
	hidden := f.createProduct(t, "hidden", "300", false)
	if err := f.db.Model(second).Update("is_featured", true).Error; err != nil {
		t.Fatalf("flag product failed: %v", err)
	}

	sections := []models.ProductSection{
		{Title: "Featured", Slug: "featured", Type: constants.SectionTypeFeatured, ItemLimit: 8, IsActive: true, SortOrder: 1},
		{Title: "Picks", Slug: "picks", Type: constants.SectionTypeCustom, ProductIDs: models.UintArray{hidden.ID, second.ID, first.ID}, ItemLimit: 8, IsActive: true, SortOrder: 2},
		{Title: "Fashion", Slug: "fashion", Type: constants.SectionTypeCategory, CategoryID: uintPtr(f.category.ID), ItemLimit: 1, IsActive: true, SortOrder: 3},
	}
	for i := range sections {
		if err := f.db.Create(&sections[i]).Error; err != nil {
			t.Fatalf("create section failed: %v", err)
		}
	}

	storefront := NewStorefrontService(StorefrontDeps{
		SettingService: NewSettingService(repository.NewSettingRepository(f.db)),
		BannerService:  NewBannerService(repository.NewBannerRepository(f.db)),
		CategoryRepo:   repository.NewCategoryRepository(f.db),
		ProductRepo:    repository.NewProductRepository(f.db),
		MidBannerRepo:  repository.NewMidBannerRepository(f.db),
		FeatureRepo:    repository.NewFeatureCardRepository(f.db),
		SocialRepo:     repository.NewSocialLinkRepository(f.db),
		MenuRepo:       repository.NewMenuItemRepository(f.db),
		SectionRepo:    repository.NewProductSectionRepository(f.db),
		FooterRepo:     repository.NewFooterRepository(f.db),
	})
	home, err := storefront.Home(context.Background())
	if err != nil {
		t.Fatalf("load home failed: %v", err)
	}
	if len(home.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(home.Sections))
	}
	featured := home.Sections[0].Products
	if len(featured) != 1 || featured[0].ID != second.ID {
		t.Fatalf("unexpected featured products: %+v", featured)
	}
	picks := home.Sections[1].Products
	if len(picks) != 2 || picks[0].ID != second.ID || picks[1].ID != first.ID {
		t.Fatalf("custom section should keep configured order without inactive products: %+v", picks)
	}
	if len(home.Sections[2].Products) != 1 {
		t.Fatalf("category section should honor item limit, got %d", len(home.Sections[2].Products))
	}

	config, err := storefront.SiteConfig(context.Background())
	if err != nil {
		t.Fatalf("load site config failed: %v", err)
	}
	if config.Basic.SiteName != defaultStoreName {
		t.Fatalf("unexpected site name: %s", config.Basic.SiteName)
	}
}
