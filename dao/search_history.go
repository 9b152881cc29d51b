package dao

import (
	"context"

	"Immob/models"

	"gorm.io/gorm"
)

type SearchTermCount struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type SearchHistoryDAO struct {
	Repo[models.SearchHistory]
}

func NewSearchHistoryDAO(db *gorm.DB) *SearchHistoryDAO {
	return &SearchHistoryDAO{Repo: NewRepo[models.SearchHistory](db)}
}

func (d *SearchHistoryDAO) TopTerms(ctx context.Context, limit int) ([]SearchTermCount, error) {
	var rows []SearchTermCount
	err := d.Db.WithContext(ctx).Model(&models.SearchHistory{}).
		Select("query, COUNT(*) AS count").
		Group("query").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
