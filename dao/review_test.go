package dao

import (
	"context"
	"errors"
	"testing"

	"Immob/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedReview(t *testing.T, db *gorm.DB, userID int64, propertyID string, rating uint8) *models.Review {
	t.Helper()
	item := &models.Review{
		ID:         uuid.NewString(),
		UserID:     userID,
		PropertyID: propertyID,
		Rating:     rating,
		Title:      "Très bon quartier",
		Comment:    "Calme et bien desservi",
		IsApproved: true,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return item
}

func TestReviewDuplicatePerProperty(t *testing.T) {
	db := newTestDB(t)
	seedProperty(t, db, testPropertyID, 1)
	seedReview(t, db, 42, testPropertyID, 4)

	dup := &models.Review{
		ID:         uuid.NewString(),
		UserID:     42,
		PropertyID: testPropertyID,
		Rating:     5,
		Title:      "Deuxième avis",
		IsApproved: true,
	}
	err := NewReviewDAO(db).Create(context.Background(), dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}
}

func TestReviewLikeToggle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProperty(t, db, testPropertyID, 1)
	rev := seedReview(t, db, 1, testPropertyID, 5)

	likes := NewReviewLikeDAO(db)
	reviews := NewReviewDAO(db)

	liked, err := likes.Toggle(ctx, 42, rev.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !liked {
		t.Fatal("first toggle should like")
	}

	item, _ := reviews.FindById(ctx, rev.ID)
	if item.LikesCount != 1 {
		t.Fatalf("likes_count = %d, want 1", item.LikesCount)
	}

	liked, err = likes.Toggle(ctx, 42, rev.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if liked {
		t.Fatal("second toggle should unlike")
	}
	item, _ = reviews.FindById(ctx, rev.ID)
	if item.LikesCount != 0 {
		t.Fatalf("likes_count = %d, want 0", item.LikesCount)
	}
}

func TestReviewListApprovedOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProperty(t, db, testPropertyID, 1)
	seedReview(t, db, 1, testPropertyID, 5)

	hidden := &models.Review{
		ID:         uuid.NewString(),
		UserID:     2,
		PropertyID: testPropertyID,
		Rating:     1,
		Title:      "En attente de modération",
		IsApproved: false,
	}
	if err := db.Create(hidden).Error; err != nil {
		t.Fatalf("seed unapproved: %v", err)
	}

	items, total, err := NewReviewDAO(db).List(ctx, &ReviewFilter{PropertyID: testPropertyID}, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("got %d reviews (total %d), want 1", len(items), total)
	}
	if !items[0].IsApproved {
		t.Fatal("unapproved review leaked into the listing")
	}
}

func TestReviewStatsDistribution(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProperty(t, db, testPropertyID, 1)
	seedReview(t, db, 1, testPropertyID, 5)
	seedReview(t, db, 2, testPropertyID, 5)
	seedReview(t, db, 3, testPropertyID, 3)

	stats, err := NewReviewDAO(db).Stats(ctx, testPropertyID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalReviews != 3 {
		t.Fatalf("total = %d, want 3", stats.TotalReviews)
	}
	if stats.RatingDistribution[5] != 2 || stats.RatingDistribution[3] != 1 {
		t.Fatalf("distribution %v unexpected", stats.RatingDistribution)
	}
	want := (5.0 + 5.0 + 3.0) / 3.0
	if stats.AvgRating < want-0.01 || stats.AvgRating > want+0.01 {
		t.Fatalf("avg = %f, want %f", stats.AvgRating, want)
	}
}
