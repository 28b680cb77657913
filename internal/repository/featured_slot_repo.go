package repository

import (
	"Curatia/internal/model"
	"context"

	"gorm.io/gorm"
)

type FeaturedSlotRepo interface {
	GetRecentSlots(ctx context.Context, n int) ([]*model.FeaturedSlot, error)
}

type featuredSlotRepoImpl struct {
	db *gorm.DB
}

func NewFeaturedSlotRepository(db *gorm.DB) FeaturedSlotRepo {
	return &featuredSlotRepoImpl{db: db}
}

// GetRecentSlots 取最近 n 期投放，按开始时间升序返回（最近一期在末位）
func (r *featuredSlotRepoImpl) GetRecentSlots(ctx context.Context, n int) ([]*model.FeaturedSlot, error) {
	var slots []*model.FeaturedSlot
	err := r.db.WithContext(ctx).
		Order("start_at DESC").Limit(n).Find(&slots).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
		slots[i], slots[j] = slots[j], slots[i]
	}
	return slots, nil
}
