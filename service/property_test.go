package service

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"

	"Immob/dao"
	"Immob/dao/cache"
	"Immob/models"
	"Immob/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPropertyID = "0b0f6a2e-9c1d-4f4a-8e53-0e9a2d1c7b11"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "immob.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		&models.User{}, &models.UserProfile{}, &models.PasswordResetToken{},
		&models.PropertyCategory{}, &models.PropertyType{}, &models.Location{},
		&models.Property{}, &models.PropertyImage{}, &models.SearchHistory{},
		&models.Favorite{}, &models.Review{}, &models.ReviewLike{}, &models.ReviewImage{},
		&models.Notification{}, &models.ApplicationFeedback{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestCache(t *testing.T) *cache.ResponseStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return cache.NewResponseStorage(rds)
}

func newPropertyService(t *testing.T, db *gorm.DB) *PropertyService {
	t.Helper()
	return &PropertyService{
		PropertyRepo: dao.NewPropertyDAO(db),
		CategoryRepo: dao.NewPropertyCategoryDAO(db),
		TypeRepo:     dao.NewPropertyTypeDAO(db),
		LocationRepo: dao.NewLocationDAO(db),
		ImageRepo:    dao.NewPropertyImageDAO(db),
		SearchRepo:   dao.NewSearchHistoryDAO(db),
		Cache:        newTestCache(t),
	}
}

func seedTaxonomy(t *testing.T, db *gorm.DB) (*models.PropertyType, *models.Location) {
	t.Helper()
	cat := &models.PropertyCategory{Name: "Résidentiel"}
	if err := db.Create(cat).Error; err != nil {
		t.Fatal(err)
	}
	pt := &models.PropertyType{Name: "Villa", CategoryID: cat.ID}
	if err := db.Create(pt).Error; err != nil {
		t.Fatal(err)
	}
	loc := &models.Location{Name: "Bastos", Region: "centre", City: "Yaoundé", Address: "Rue 1.839"}
	if err := db.Create(loc).Error; err != nil {
		t.Fatal(err)
	}
	return pt, loc
}

func seedListing(t *testing.T, db *gorm.DB, pt *models.PropertyType, loc *models.Location) *models.Property {
	t.Helper()
	item := &models.Property{
		ID:             testPropertyID,
		Title:          "Villa à Bastos",
		Description:    "Grande villa avec jardin",
		PropertyTypeID: pt.ID,
		LocationID:     loc.ID,
		Status:         models.PropertyStatusForSale,
		Price:          75000000,
		Currency:       "XAF",
		Area:           320,
		OwnerID:        1,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatal(err)
	}
	return item
}

// Every detail request bumps views_count, cache hit or not.
func TestGetDetailCountsViewsThroughCache(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pt, loc := seedTaxonomy(t, db)
	seedListing(t, db, pt, loc)

	svc := newPropertyService(t, db)

	for i := 0; i < 3; i++ {
		if _, err := svc.GetDetail(ctx, testPropertyID); err != nil {
			t.Fatalf("get detail %d: %v", i, err)
		}
	}

	item, err := svc.PropertyRepo.FindById(ctx, testPropertyID)
	if err != nil {
		t.Fatal(err)
	}
	if item.ViewsCount != 3 {
		t.Fatalf("views_count = %d, want 3", item.ViewsCount)
	}

	// The second and third responses were cache hits: the cached document
	// still carries the count from the first miss.
	if _, ok := svc.Cache.Get(ctx, cache.PrefixPropertyDetail+":"+testPropertyID); !ok {
		t.Fatal("detail should be cached after first request")
	}
}

func TestCreateInvalidatesListCache(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pt, loc := seedTaxonomy(t, db)
	seedListing(t, db, pt, loc)

	svc := newPropertyService(t, db)

	params := url.Values{}
	if _, err := svc.List(ctx, &types.PropertyListQuery{}, params, 0); err != nil {
		t.Fatalf("prime list cache: %v", err)
	}
	listKey := svc.Cache.Key(cache.PrefixPropertyList, params)
	if _, ok := svc.Cache.Get(ctx, listKey); !ok {
		t.Fatal("list should be cached after first request")
	}

	req := &types.CreatePropertyRequest{
		Title:          "Appartement au Lac",
		Description:    "Deux chambres",
		PropertyTypeID: pt.ID,
		LocationID:     loc.ID,
		Status:         models.PropertyStatusForRent,
		Price:          250000,
		Area:           80,
	}
	if _, err := svc.Create(ctx, 1, req); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, ok := svc.Cache.Get(ctx, listKey); ok {
		t.Fatal("list cache survived a property write")
	}

	resp, err := svc.List(ctx, &types.PropertyListQuery{}, params, 0)
	if err != nil {
		t.Fatalf("list after create: %v", err)
	}
	list, ok := resp.(*types.PropertyListResponse)
	if !ok {
		t.Fatalf("expected fresh listing, got cached %T", resp)
	}
	if list.Count != 2 {
		t.Fatalf("count = %d, want 2", list.Count)
	}
}

func TestCreateSetsPublishedAt(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pt, loc := seedTaxonomy(t, db)

	svc := newPropertyService(t, db)

	live, err := svc.Create(ctx, 1, &types.CreatePropertyRequest{
		Title:          "Studio meublé",
		Description:    "Proche du centre",
		PropertyTypeID: pt.ID,
		LocationID:     loc.ID,
		Status:         models.PropertyStatusForRent,
		Price:          150000,
		Area:           35,
	})
	if err != nil {
		t.Fatalf("create published: %v", err)
	}
	if live.PublishedAt == nil {
		t.Fatal("published listing should carry published_at")
	}

	draft, err := svc.Create(ctx, 1, &types.CreatePropertyRequest{
		Title:          "Terrain à viabiliser",
		Description:    "Hors marché pour l'instant",
		PropertyTypeID: pt.ID,
		LocationID:     loc.ID,
		Price:          5000000,
		Area:           1000,
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if draft.Status != models.PropertyStatusPending || draft.PublishedAt != nil {
		t.Fatalf("draft should be pending without published_at, got %s %v", draft.Status, draft.PublishedAt)
	}
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pt, loc := seedTaxonomy(t, db)
	seedListing(t, db, pt, loc) // owned by user 1

	svc := newPropertyService(t, db)

	title := "Titre détourné"
	_, err := svc.Update(ctx, 2, false, testPropertyID, &types.UpdatePropertyRequest{Title: &title})
	if err == nil {
		t.Fatal("non-owner update should fail")
	}

	// Admin override is allowed.
	if _, err := svc.Update(ctx, 2, true, testPropertyID, &types.UpdatePropertyRequest{Title: &title}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}
