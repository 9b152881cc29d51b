package types

import "Immob/models"

type ToggleFavoriteRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid4"`
}

// ToggleFavoriteResponse mirrors the historical response shape: the add
// branch carries the created favorite, the remove branch only the flag.
type ToggleFavoriteResponse struct {
	Message     string           `json:"message"`
	IsFavorited bool             `json:"is_favorited"`
	Favorite    *models.Favorite `json:"favorite,omitempty"`
}

type FavoriteCheckResponse struct {
	IsFavorited bool `json:"is_favorited"`
}

type FavoriteListResponse struct {
	Count   int64              `json:"count"`
	Results []*models.Favorite `json:"results"`
}
