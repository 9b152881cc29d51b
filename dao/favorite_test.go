package dao

import (
	"context"
	"sync"
	"testing"

	"Immob/models"
)

const testPropertyID = "0b0f6a2e-9c1d-4f4a-8e53-0e9a2d1c7b11"

func TestFavoriteToggle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProperty(t, db, testPropertyID, 1)

	favorites := NewFavoriteDAO(db)
	properties := NewPropertyDAO(db)

	added, fav, err := favorites.Toggle(ctx, 42, testPropertyID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !added {
		t.Fatal("first toggle should add")
	}
	if fav == nil || fav.UserID != 42 {
		t.Fatalf("expected created favorite for user 42, got %+v", fav)
	}

	item, err := properties.FindById(ctx, testPropertyID)
	if err != nil {
		t.Fatalf("find property: %v", err)
	}
	if item.FavoritesCount != 1 {
		t.Fatalf("favorites_count = %d, want 1", item.FavoritesCount)
	}

	added, fav, err = favorites.Toggle(ctx, 42, testPropertyID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if added || fav != nil {
		t.Fatal("second toggle should remove without a favorite payload")
	}

	item, _ = properties.FindById(ctx, testPropertyID)
	if item.FavoritesCount != 0 {
		t.Fatalf("favorites_count = %d, want 0", item.FavoritesCount)
	}
}

func TestFavoriteToggleManyUsers(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProperty(t, db, testPropertyID, 1)

	favorites := NewFavoriteDAO(db)
	properties := NewPropertyDAO(db)

	for uid := int64(1); uid <= 5; uid++ {
		if _, _, err := favorites.Toggle(ctx, uid, testPropertyID); err != nil {
			t.Fatalf("toggle user %d: %v", uid, err)
		}
	}

	item, _ := properties.FindById(ctx, testPropertyID)
	if item.FavoritesCount != 5 {
		t.Fatalf("favorites_count = %d, want 5", item.FavoritesCount)
	}

	count, err := favorites.QueryCount(ctx, "property_id = ?", testPropertyID)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if uint64(count) != item.FavoritesCount {
		t.Fatalf("counter %d does not match row count %d", item.FavoritesCount, count)
	}
}

// Concurrent toggles for distinct users must leave the counter equal to the
// favorites row count.
func TestFavoriteToggleConcurrent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProperty(t, db, testPropertyID, 1)

	favorites := NewFavoriteDAO(db)
	properties := NewPropertyDAO(db)

	var wg sync.WaitGroup
	for uid := int64(1); uid <= 8; uid++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			if _, _, err := favorites.Toggle(ctx, uid, testPropertyID); err != nil {
				t.Errorf("toggle user %d: %v", uid, err)
			}
		}(uid)
	}
	wg.Wait()

	item, _ := properties.FindById(ctx, testPropertyID)
	count, _ := favorites.QueryCount(ctx, "property_id = ?", testPropertyID)
	if uint64(count) != item.FavoritesCount {
		t.Fatalf("counter %d does not match row count %d", item.FavoritesCount, count)
	}
}

func TestFavoriteDeleteOwned(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProperty(t, db, testPropertyID, 1)

	favorites := NewFavoriteDAO(db)
	properties := NewPropertyDAO(db)

	_, fav, err := favorites.Toggle(ctx, 7, testPropertyID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// Someone else's id must not delete the row.
	if _, err := favorites.DeleteOwned(ctx, fav.ID, 99); err == nil {
		t.Fatal("expected error deleting another user's favorite")
	}

	if _, err := favorites.DeleteOwned(ctx, fav.ID, 7); err != nil {
		t.Fatalf("delete owned: %v", err)
	}
	item, _ := properties.FindById(ctx, testPropertyID)
	if item.FavoritesCount != 0 {
		t.Fatalf("favorites_count = %d after delete, want 0", item.FavoritesCount)
	}
}

func TestRecountFavoritesSelfHeals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProperty(t, db, testPropertyID, 1)

	favorites := NewFavoriteDAO(db)
	properties := NewPropertyDAO(db)

	if _, _, err := favorites.Toggle(ctx, 1, testPropertyID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// Simulate drift from an out-of-band delete.
	if err := db.Model(&models.Property{}).Where("id = ?", testPropertyID).
		Update("favorites_count", 100).Error; err != nil {
		t.Fatalf("inject drift: %v", err)
	}

	if err := properties.RecountFavorites(ctx, nil, testPropertyID); err != nil {
		t.Fatalf("recount: %v", err)
	}
	item, _ := properties.FindById(ctx, testPropertyID)
	if item.FavoritesCount != 1 {
		t.Fatalf("favorites_count = %d after recount, want 1", item.FavoritesCount)
	}
}
