package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"Immob/dao"
	"Immob/dao/cache"
	"Immob/models"
	"Immob/pkg/response"
	"Immob/pkg/secure"
	"Immob/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	List(ctx context.Context, q *types.ReviewListQuery, params url.Values) (any, error)
	Create(ctx context.Context, userID int64, req *types.CreateReviewRequest) (*models.Review, error)
	Update(ctx context.Context, userID int64, isAdmin bool, id string, req *types.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, userID int64, isAdmin bool, id string) error
	ToggleLike(ctx context.Context, userID int64, reviewID string) (*types.ToggleLikeResponse, error)
	MyReviews(ctx context.Context, userID int64) (any, error)
	PropertyStats(ctx context.Context, propertyID string) (any, error)
}

type ReviewService struct {
	ReviewRepo   *dao.ReviewDAO
	LikeRepo     *dao.ReviewLikeDAO
	PropertyRepo *dao.PropertyDAO
	Cache        *cache.ResponseStorage
}

func (s *ReviewService) List(ctx context.Context, q *types.ReviewListQuery, params url.Values) (any, error) {
	key := s.Cache.Key(cache.PrefixReviewList, params)
	if data, ok := s.Cache.Get(ctx, key); ok {
		return json.RawMessage(data), nil
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	filter := &dao.ReviewFilter{
		PropertyID: q.Property,
		UserID:     q.User,
		MinRating:  q.MinRating,
	}
	items, total, err := s.ReviewRepo.List(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.ReviewListResponse{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  items,
	}
	s.Cache.Set(ctx, key, resp, cache.TTLReviews)
	return resp, nil
}

func (s *ReviewService) Create(ctx context.Context, userID int64, req *types.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.PropertyRepo.FindById(ctx, req.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "property not found")
		}
		return nil, err
	}

	item := &models.Review{
		ID:         uuid.NewString(),
		UserID:     userID,
		PropertyID: req.PropertyID,
		Rating:     req.Rating,
		Title:      secure.Sanitize(req.Title),
		Comment:    secure.Sanitize(req.Comment),
		IsApproved: true,
	}
	if err := s.ReviewRepo.Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusConflict, "you have already reviewed this property")
		}
		return nil, err
	}
	s.invalidate(ctx, userID, req.PropertyID)
	return item, nil
}

func (s *ReviewService) Update(ctx context.Context, userID int64, isAdmin bool, id string, req *types.UpdateReviewRequest) (*models.Review, error) {
	item, err := s.ownedReview(ctx, userID, isAdmin, id)
	if err != nil {
		return nil, err
	}

	data := map[string]any{"is_edited": true}
	if req.Rating != nil {
		data["rating"] = *req.Rating
	}
	if req.Title != nil {
		data["title"] = secure.Sanitize(*req.Title)
	}
	if req.Comment != nil {
		data["comment"] = secure.Sanitize(*req.Comment)
	}
	if _, err := s.ReviewRepo.UpdateById(ctx, id, data); err != nil {
		return nil, err
	}
	s.invalidate(ctx, item.UserID, item.PropertyID)

	return s.ReviewRepo.FindById(ctx, id)
}

func (s *ReviewService) Delete(ctx context.Context, userID int64, isAdmin bool, id string) error {
	item, err := s.ownedReview(ctx, userID, isAdmin, id)
	if err != nil {
		return err
	}
	if _, err := s.ReviewRepo.DeleteById(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, item.UserID, item.PropertyID)
	return nil
}

func (s *ReviewService) ToggleLike(ctx context.Context, userID int64, reviewID string) (*types.ToggleLikeResponse, error) {
	item, err := s.ReviewRepo.FindById(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "review not found")
		}
		return nil, err
	}

	liked, err := s.LikeRepo.Toggle(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, item.UserID, item.PropertyID)

	msg := "review unliked"
	if liked {
		msg = "review liked"
	}
	return &types.ToggleLikeResponse{Message: msg, IsLiked: liked}, nil
}

func (s *ReviewService) MyReviews(ctx context.Context, userID int64) (any, error) {
	key := myReviewsKey(userID)
	if data, ok := s.Cache.Get(ctx, key); ok {
		return json.RawMessage(data), nil
	}

	items, err := s.ReviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &types.ReviewListResponse{
		Count:    int64(len(items)),
		Page:     1,
		PageSize: len(items),
		Results:  items,
	}
	s.Cache.Set(ctx, key, resp, cache.TTLMyReviews)
	return resp, nil
}

func (s *ReviewService) PropertyStats(ctx context.Context, propertyID string) (any, error) {
	key := cache.PrefixReviewStats + ":" + propertyID
	if data, ok := s.Cache.Get(ctx, key); ok {
		return json.RawMessage(data), nil
	}

	if _, err := s.PropertyRepo.FindById(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "property not found")
		}
		return nil, err
	}
	stats, err := s.ReviewRepo.Stats(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, stats, cache.TTLReviewStats)
	return stats, nil
}

func (s *ReviewService) ownedReview(ctx context.Context, userID int64, isAdmin bool, id string) (*models.Review, error) {
	item, err := s.ReviewRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "review not found")
		}
		return nil, err
	}
	if item.UserID != userID && !isAdmin {
		return nil, response.NewError(http.StatusForbidden, "you do not own this review")
	}
	return item, nil
}

func (s *ReviewService) invalidate(ctx context.Context, authorID int64, propertyID string) {
	s.Cache.DeletePrefix(ctx, cache.PrefixReviewList)
	s.Cache.Delete(ctx,
		cache.PrefixReviewStats+":"+propertyID,
		myReviewsKey(authorID),
	)
}

func myReviewsKey(userID int64) string {
	return fmt.Sprintf("%s:%d", cache.PrefixMyReviews, userID)
}
