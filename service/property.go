package service

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"Immob/dao"
	"Immob/dao/cache"
	"Immob/models"
	"Immob/pkg/log"
	"Immob/pkg/response"
	"Immob/pkg/secure"
	"Immob/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultPageSize = 20

var _ IPropertyService = (*PropertyService)(nil)

type IPropertyService interface {
	List(ctx context.Context, q *types.PropertyListQuery, params url.Values, userID int64) (any, error)
	GetDetail(ctx context.Context, id string) (any, error)
	Create(ctx context.Context, userID int64, req *types.CreatePropertyRequest) (*models.Property, error)
	Update(ctx context.Context, userID int64, isAdmin bool, id string, req *types.UpdatePropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, userID int64, isAdmin bool, id string) error
	Featured(ctx context.Context) (any, error)
	Stats(ctx context.Context) (any, error)
	Categories(ctx context.Context) (any, error)
	SearchSuggestions(ctx context.Context) (any, error)
	UploadImage(ctx context.Context, userID int64, isAdmin bool, propertyID string, req *types.UploadImageRequest, header *multipart.FileHeader) (*models.PropertyImage, error)
}

type PropertyService struct {
	PropertyRepo *dao.PropertyDAO
	CategoryRepo *dao.PropertyCategoryDAO
	TypeRepo     *dao.PropertyTypeDAO
	LocationRepo *dao.LocationDAO
	ImageRepo    *dao.PropertyImageDAO
	SearchRepo   *dao.SearchHistoryDAO
	Cache        *cache.ResponseStorage
	Oss          IOssService
}

// List serves the public listing page, cached per normalized query string.
func (s *PropertyService) List(ctx context.Context, q *types.PropertyListQuery, params url.Values, userID int64) (any, error) {
	key := s.Cache.Key(cache.PrefixPropertyList, params)
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

	filter := &dao.PropertyFilter{
		Status:       q.Status,
		Verified:     q.Verified,
		Featured:     q.Featured,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		MinArea:      q.MinArea,
		MaxArea:      q.MaxArea,
		MinBedrooms:  q.MinBedrooms,
		MaxBedrooms:  q.MaxBedrooms,
		MinBathrooms: q.MinBathrooms,
		MaxBathrooms: q.MaxBathrooms,
		City:         q.Location,
		Region:       q.Region,
		PropertyType: q.PropertyType,
		HasPool:      q.HasPool,
		HasGarage:    q.HasGarage,
		HasSecurity:  q.HasSecurity,
		HasAc:        q.HasAc,
		Search:       q.Q,
	}
	items, total, err := s.PropertyRepo.List(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.PropertyListResponse{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  items,
	}
	s.Cache.Set(ctx, key, resp, cache.TTLPropertyList)

	if q.Q != "" && userID != 0 {
		s.recordSearch(userID, q.Q, params, total)
	}
	return resp, nil
}

func (s *PropertyService) recordSearch(userID int64, query string, params url.Values, results int64) {
	filters, _ := json.Marshal(params)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		entry := &models.SearchHistory{
			UserID:       userID,
			Query:        query,
			Filters:      string(filters),
			ResultsCount: uint64(results),
		}
		if err := s.SearchRepo.Create(ctx, entry); err != nil {
			log.L.Warn("record search history failed", zap.Int64("user_id", userID), zap.Error(err))
		}
	}()
}

// GetDetail bumps views_count on every request, then serves the cached
// document. The counter write is never gated by the cache, so views keep
// accumulating while the cached payload shows a stale count until expiry.
func (s *PropertyService) GetDetail(ctx context.Context, id string) (any, error) {
	if err := s.PropertyRepo.IncrViews(ctx, id); err != nil {
		log.L.Warn("increment views failed", zap.String("property_id", id), zap.Error(err))
	}

	key := cache.PrefixPropertyDetail + ":" + id
	if data, ok := s.Cache.Get(ctx, key); ok {
		return json.RawMessage(data), nil
	}

	item, err := s.PropertyRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "property not found")
		}
		return nil, err
	}
	s.Cache.Set(ctx, key, item, cache.TTLPropertyDetail)
	return item, nil
}

func (s *PropertyService) Create(ctx context.Context, userID int64, req *types.CreatePropertyRequest) (*models.Property, error) {
	if _, err := s.TypeRepo.FindById(ctx, req.PropertyTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusBadRequest, "unknown property type")
		}
		return nil, err
	}

	locationID := req.LocationID
	if locationID == 0 {
		if req.Location == nil {
			return nil, response.NewError(http.StatusBadRequest, "location_id or location is required")
		}
		loc := &models.Location{
			Name:      secure.Sanitize(req.Location.Name),
			Region:    req.Location.Region,
			City:      secure.Sanitize(req.Location.City),
			Quarter:   secure.Sanitize(req.Location.Quarter),
			Address:   secure.Sanitize(req.Location.Address),
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
		loc, err := s.LocationRepo.GetOrCreate(ctx, loc)
		if err != nil {
			return nil, err
		}
		locationID = loc.ID
	} else if _, err := s.LocationRepo.FindById(ctx, locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusBadRequest, "unknown location")
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.PropertyStatusPending
	}
	item := &models.Property{
		ID:             uuid.NewString(),
		Title:          secure.Sanitize(req.Title),
		Description:    secure.Sanitize(req.Description),
		PropertyTypeID: req.PropertyTypeID,
		LocationID:     locationID,
		Status:         status,
		Price:          req.Price,
		Currency:       req.Currency,
		Area:           req.Area,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		ParkingSpaces:  req.ParkingSpaces,
		HasKitchen:     boolOr(req.HasKitchen, true),
		HasLivingRoom:  boolOr(req.HasLivingRoom, true),
		HasDiningRoom:  req.HasDiningRoom,
		HasBalcony:     req.HasBalcony,
		HasGarden:      req.HasGarden,
		HasPool:        req.HasPool,
		HasGarage:      req.HasGarage,
		HasSecurity:    req.HasSecurity,
		HasInternet:    req.HasInternet,
		HasAc:          req.HasAc,
		OwnerID:        userID,
		AgentID:        req.AgentID,
	}
	if item.Currency == "" {
		item.Currency = "XAF"
	}
	if item.Published() {
		now := time.Now()
		item.PublishedAt = &now
	}

	if err := s.PropertyRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return item, nil
}

func (s *PropertyService) Update(ctx context.Context, userID int64, isAdmin bool, id string, req *types.UpdatePropertyRequest) (*models.Property, error) {
	item, err := s.ownedProperty(ctx, userID, isAdmin, id)
	if err != nil {
		return nil, err
	}

	data := map[string]any{}
	if req.Title != nil {
		data["title"] = secure.Sanitize(*req.Title)
	}
	if req.Description != nil {
		data["description"] = secure.Sanitize(*req.Description)
	}
	if req.Status != nil {
		data["status"] = *req.Status
		wasPublished := item.Published()
		item.Status = *req.Status
		if item.Published() && !wasPublished && item.PublishedAt == nil {
			data["published_at"] = time.Now()
		}
	}
	if req.Price != nil {
		data["price"] = *req.Price
	}
	if req.Currency != nil {
		data["currency"] = *req.Currency
	}
	if req.Area != nil {
		data["area"] = *req.Area
	}
	if req.Bedrooms != nil {
		data["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		data["bathrooms"] = *req.Bathrooms
	}
	if req.ParkingSpaces != nil {
		data["parking_spaces"] = *req.ParkingSpaces
	}
	if req.IsFeatured != nil && isAdmin {
		data["is_featured"] = *req.IsFeatured
	}
	if req.HasPool != nil {
		data["has_pool"] = *req.HasPool
	}
	if req.HasGarage != nil {
		data["has_garage"] = *req.HasGarage
	}
	if req.HasSecurity != nil {
		data["has_security"] = *req.HasSecurity
	}
	if req.HasAc != nil {
		data["has_ac"] = *req.HasAc
	}

	if len(data) > 0 {
		if _, err := s.PropertyRepo.UpdateById(ctx, id, data); err != nil {
			return nil, err
		}
	}
	s.invalidateListings(ctx)
	s.Cache.Delete(ctx, cache.PrefixPropertyDetail+":"+id)

	return s.PropertyRepo.GetDetail(ctx, id)
}

func (s *PropertyService) Delete(ctx context.Context, userID int64, isAdmin bool, id string) error {
	if _, err := s.ownedProperty(ctx, userID, isAdmin, id); err != nil {
		return err
	}
	if _, err := s.PropertyRepo.DeleteById(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	s.Cache.Delete(ctx, cache.PrefixPropertyDetail+":"+id)
	return nil
}

func (s *PropertyService) Featured(ctx context.Context) (any, error) {
	if data, ok := s.Cache.Get(ctx, cache.PrefixPropertyFeatured); ok {
		return json.RawMessage(data), nil
	}
	items, err := s.PropertyRepo.Featured(ctx, 8)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, cache.PrefixPropertyFeatured, items, cache.TTLFeatured)
	return items, nil
}

func (s *PropertyService) Stats(ctx context.Context) (any, error) {
	if data, ok := s.Cache.Get(ctx, cache.PrefixPropertyStats); ok {
		return json.RawMessage(data), nil
	}
	stats, err := s.PropertyRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	topTypes, err := s.PropertyRepo.TopPropertyTypes(ctx, 5)
	if err != nil {
		return nil, err
	}
	resp := &types.PropertyStatsResponse{
		TotalProperties:    stats.TotalProperties,
		ForSale:            stats.ForSale,
		ForRent:            stats.ForRent,
		FeaturedProperties: stats.FeaturedProperties,
		VerifiedProperties: stats.VerifiedProperties,
		TotalViews:         stats.TotalViews,
		AvgPriceForSale:    stats.AvgPriceForSale,
		AvgPriceForRent:    stats.AvgPriceForRent,
		TopPropertyTypes:   topTypes,
	}
	s.Cache.Set(ctx, cache.PrefixPropertyStats, resp, cache.TTLStats)
	return resp, nil
}

func (s *PropertyService) Categories(ctx context.Context) (any, error) {
	if data, ok := s.Cache.Get(ctx, cache.PrefixCategories); ok {
		return json.RawMessage(data), nil
	}
	rows, err := s.CategoryRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, cache.PrefixCategories, rows, cache.TTLCategories)
	return rows, nil
}

func (s *PropertyService) SearchSuggestions(ctx context.Context) (any, error) {
	if data, ok := s.Cache.Get(ctx, cache.PrefixSearchSuggestions); ok {
		return json.RawMessage(data), nil
	}
	terms, err := s.SearchRepo.TopTerms(ctx, 10)
	if err != nil {
		return nil, err
	}
	cities, err := s.PropertyRepo.DistinctCities(ctx, 10)
	if err != nil {
		return nil, err
	}
	resp := &types.SearchSuggestionsResponse{
		SearchTerms:   make([]string, 0, len(terms)),
		PopularCities: cities,
	}
	for _, t := range terms {
		resp.SearchTerms = append(resp.SearchTerms, t.Query)
	}
	s.Cache.Set(ctx, cache.PrefixSearchSuggestions, resp, cache.TTLSearchSuggestions)
	return resp, nil
}

func (s *PropertyService) UploadImage(ctx context.Context, userID int64, isAdmin bool, propertyID string, req *types.UploadImageRequest, header *multipart.FileHeader) (*models.PropertyImage, error) {
	if _, err := s.ownedProperty(ctx, userID, isAdmin, propertyID); err != nil {
		return nil, err
	}

	imageURL, err := s.Oss.UploadImage(ctx, "property", header)
	if err != nil {
		return nil, err
	}

	img := &models.PropertyImage{
		PropertyID: propertyID,
		URL:        imageURL,
		Caption:    secure.Sanitize(req.Caption),
		IsPrimary:  req.IsPrimary,
		Order:      req.Order,
	}
	if err := s.ImageRepo.CreateImage(ctx, img); err != nil {
		return nil, err
	}
	s.Cache.Delete(ctx, cache.PrefixPropertyDetail+":"+propertyID)
	s.Cache.DeletePrefix(ctx, cache.PrefixPropertyList)
	return img, nil
}

// ownedProperty loads the listing and enforces owner-or-admin access.
func (s *PropertyService) ownedProperty(ctx context.Context, userID int64, isAdmin bool, id string) (*models.Property, error) {
	item, err := s.PropertyRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "property not found")
		}
		return nil, err
	}
	if item.OwnerID != userID && !isAdmin {
		return nil, response.NewError(http.StatusForbidden, "you do not own this property")
	}
	return item, nil
}

// invalidateListings drops every cache family derived from the properties
// table. Invalidation runs after the database commit and is best effort.
func (s *PropertyService) invalidateListings(ctx context.Context) {
	s.Cache.DeletePrefix(ctx, cache.PrefixPropertyList)
	s.Cache.Delete(ctx,
		cache.PrefixPropertyStats,
		cache.PrefixPropertyFeatured,
		cache.PrefixCategories,
		cache.PrefixSearchSuggestions,
	)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
