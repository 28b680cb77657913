package repository

import (
	"Curatia/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// 允许原子增减的计数列
var counterColumns = map[string]bool{
	"saves_count":    true,
	"likes_count":    true,
	"comments_count": true,
	"views_count":    true,
}

type ListRepo interface {
	GetList(ctx context.Context, id uint64) (*model.List, error)
	GetListByIds(ctx context.Context, ids []uint64) ([]*model.List, error)
	GetRankCandidates(ctx context.Context, categoryID uint64, limit int) ([]*model.List, error)
	UpdateTrendFields(ctx context.Context, id uint64, score float64, badge string) error
	IncrementCounter(ctx context.Context, id uint64, column string, delta int) error
	TouchLastSaveAt(ctx context.Context, id uint64, at time.Time) error
}

type listRepoImpl struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) ListRepo {
	return &listRepoImpl{db: db}
}

func (r *listRepoImpl) GetList(ctx context.Context, id uint64) (*model.List, error) {
	var list model.List
	err := r.db.WithContext(ctx).Preload("Category").Where("is_deleted = 0").First(&list, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *listRepoImpl) GetListByIds(ctx context.Context, ids []uint64) ([]*model.List, error) {
	var lists []*model.List
	err := r.db.WithContext(ctx).Preload("Category").
		Where("id IN ? AND is_deleted = 0", ids).Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// GetRankCandidates 取参与热度排名的候选清单。categoryID 为 0 时不限分类
func (r *listRepoImpl) GetRankCandidates(ctx context.Context, categoryID uint64, limit int) ([]*model.List, error) {
	query := r.db.WithContext(ctx).Preload("Category").Where("is_deleted = 0")
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var lists []*model.List
	err := query.Order("last_save_at DESC").Limit(limit).Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// IncrementCounter 数据库层的原子计数增减，绝不读回再写
func (r *listRepoImpl) IncrementCounter(ctx context.Context, id uint64, column string, delta int) error {
	if !counterColumns[column] {
		return fmt.Errorf("column %s is not a counter", column)
	}
	return r.db.WithContext(ctx).Model(&model.List{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

// TouchLastSaveAt 只允许向前推进 last_save_at，乱序消息不回拨
func (r *listRepoImpl) TouchLastSaveAt(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.List{}).
		Where("id = ? AND (last_save_at IS NULL OR last_save_at < ?)", id, at).
		UpdateColumn("last_save_at", at).Error
}

// UpdateTrendFields 回写派生的热度分与徽章。二者只是缓存，真值永远可由计数重算
func (r *listRepoImpl) UpdateTrendFields(ctx context.Context, id uint64, score float64, badge string) error {
	return r.db.WithContext(ctx).Model(&model.List{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"trend_score": score,
			"trend_badge": badge,
		}).Error
}
