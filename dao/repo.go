package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo generic DAO base. Per-entity DAOs embed it and add their own queries.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

func (r Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	var items []*T
	if err := r.Db.WithContext(ctx).Scopes(scopes...).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var m T
	err := r.Db.WithContext(ctx).Model(&m).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r Repo[T]) QueryCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	var m T
	err := r.Db.WithContext(ctx).Model(&m).Where(where, args...).Count(&count).Error
	return count, err
}

func (r Repo[T]) UpdateById(ctx context.Context, id any, data map[string]any) (int64, error) {
	var m T
	res := r.Db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(data)
	return res.RowsAffected, res.Error
}

func (r Repo[T]) DeleteById(ctx context.Context, id any) (int64, error) {
	var m T
	res := r.Db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	return res.RowsAffected, res.Error
}
