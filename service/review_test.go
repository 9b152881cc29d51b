package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"Immob/dao"
	"Immob/pkg/response"
	"Immob/types"
)

func TestReviewCreateDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pt, loc := seedTaxonomy(t, db)
	seedListing(t, db, pt, loc)

	svc := &ReviewService{
		ReviewRepo:   dao.NewReviewDAO(db),
		LikeRepo:     dao.NewReviewLikeDAO(db),
		PropertyRepo: dao.NewPropertyDAO(db),
		Cache:        newTestCache(t),
	}

	req := &types.CreateReviewRequest{
		PropertyID: testPropertyID,
		Rating:     4,
		Title:      "Bon rapport qualité prix",
		Comment:    "Je recommande",
	}
	if _, err := svc.Create(ctx, 42, req); err != nil {
		t.Fatalf("first review: %v", err)
	}

	_, err := svc.Create(ctx, 42, req)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusConflict {
		t.Fatalf("expected 409 conflict, got %v", err)
	}

	// Another user can still review the same property.
	if _, err := svc.Create(ctx, 43, req); err != nil {
		t.Fatalf("second user review: %v", err)
	}
}

func TestReviewToggleLikeResponses(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pt, loc := seedTaxonomy(t, db)
	seedListing(t, db, pt, loc)

	svc := &ReviewService{
		ReviewRepo:   dao.NewReviewDAO(db),
		LikeRepo:     dao.NewReviewLikeDAO(db),
		PropertyRepo: dao.NewPropertyDAO(db),
		Cache:        newTestCache(t),
	}

	rev, err := svc.Create(ctx, 1, &types.CreateReviewRequest{
		PropertyID: testPropertyID,
		Rating:     5,
		Title:      "Excellent",
		Comment:    "Rien à redire",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	resp, err := svc.ToggleLike(ctx, 42, rev.ID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if !resp.IsLiked {
		t.Fatal("first toggle should like")
	}

	resp, err = svc.ToggleLike(ctx, 42, rev.ID)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if resp.IsLiked {
		t.Fatal("second toggle should unlike")
	}
}

func TestReviewUpdateMarksEdited(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pt, loc := seedTaxonomy(t, db)
	seedListing(t, db, pt, loc)

	svc := &ReviewService{
		ReviewRepo:   dao.NewReviewDAO(db),
		LikeRepo:     dao.NewReviewLikeDAO(db),
		PropertyRepo: dao.NewPropertyDAO(db),
		Cache:        newTestCache(t),
	}

	rev, err := svc.Create(ctx, 1, &types.CreateReviewRequest{
		PropertyID: testPropertyID,
		Rating:     3,
		Title:      "Correct",
		Comment:    "Sans plus",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rev.IsEdited {
		t.Fatal("fresh review must not be flagged edited")
	}

	title := "Correct finalement"
	updated, err := svc.Update(ctx, 1, false, rev.ID, &types.UpdateReviewRequest{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsEdited {
		t.Fatal("updated review should be flagged edited")
	}
	if updated.Title != title {
		t.Fatalf("title = %q, want %q", updated.Title, title)
	}
}
