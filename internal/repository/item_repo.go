package repository

import (
	"Curatia/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ItemRepo interface {
	GetItem(ctx context.Context, id uint64) (*model.Item, error)
}

type itemRepoImpl struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepo {
	return &itemRepoImpl{db: db}
}

func (r *itemRepoImpl) GetItem(ctx context.Context, id uint64) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).Preload("List").Where("is_deleted = 0").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
