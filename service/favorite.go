package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"Immob/dao"
	"Immob/dao/cache"
	"Immob/pkg/response"
	"Immob/types"

	"gorm.io/gorm"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	Toggle(ctx context.Context, userID int64, propertyID string) (*types.ToggleFavoriteResponse, error)
	Check(ctx context.Context, userID int64, propertyID string) (*types.FavoriteCheckResponse, error)
	List(ctx context.Context, userID int64) (any, error)
	Delete(ctx context.Context, userID int64, favoriteID uint64) error
}

type FavoriteService struct {
	FavoriteRepo *dao.FavoriteDAO
	PropertyRepo *dao.PropertyDAO
	Cache        *cache.ResponseStorage
}

func (s *FavoriteService) Toggle(ctx context.Context, userID int64, propertyID string) (*types.ToggleFavoriteResponse, error) {
	if _, err := s.PropertyRepo.FindById(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "property not found")
		}
		return nil, err
	}

	added, fav, err := s.FavoriteRepo.Toggle(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID, propertyID)

	if added {
		return &types.ToggleFavoriteResponse{
			Message:     "property added to favorites",
			IsFavorited: true,
			Favorite:    fav,
		}, nil
	}
	return &types.ToggleFavoriteResponse{
		Message:     "property removed from favorites",
		IsFavorited: false,
	}, nil
}

func (s *FavoriteService) Check(ctx context.Context, userID int64, propertyID string) (*types.FavoriteCheckResponse, error) {
	favorited, err := s.FavoriteRepo.IsFavorited(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	return &types.FavoriteCheckResponse{IsFavorited: favorited}, nil
}

func (s *FavoriteService) List(ctx context.Context, userID int64) (any, error) {
	key := favoritesKey(userID)
	if data, ok := s.Cache.Get(ctx, key); ok {
		return json.RawMessage(data), nil
	}

	items, err := s.FavoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &types.FavoriteListResponse{Count: int64(len(items)), Results: items}
	s.Cache.Set(ctx, key, resp, cache.TTLPropertyList)
	return resp, nil
}

func (s *FavoriteService) Delete(ctx context.Context, userID int64, favoriteID uint64) error {
	fav, err := s.FavoriteRepo.FindById(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "favorite not found")
		}
		return err
	}
	if fav.UserID != userID {
		return response.NewError(http.StatusNotFound, "favorite not found")
	}

	if _, err := s.FavoriteRepo.DeleteOwned(ctx, favoriteID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "favorite not found")
		}
		return err
	}
	s.invalidate(ctx, userID, fav.PropertyID)
	return nil
}

// invalidate drops the user's favorites list plus the property caches whose
// favorites_count just changed.
func (s *FavoriteService) invalidate(ctx context.Context, userID int64, propertyID string) {
	s.Cache.Delete(ctx,
		favoritesKey(userID),
		cache.PrefixPropertyDetail+":"+propertyID,
	)
	s.Cache.DeletePrefix(ctx, cache.PrefixPropertyList)
}

func favoritesKey(userID int64) string {
	return fmt.Sprintf("%s:%d", cache.PrefixFavoritesList, userID)
}
