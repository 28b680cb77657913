package repository

import (
	"Curatia/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ModerationRepo interface {
	GetByItemID(ctx context.Context, itemID uint64) (*model.ItemModeration, error)
	EnsureRecord(ctx context.Context, itemID uint64) error
	IncrementFlagScore(ctx context.Context, itemID uint64, delta float64) (float64, error)
	SetFlagScoreAndStatus(ctx context.Context, itemID uint64, score float64, status string) error
	UpdateStatus(ctx context.Context, itemID uint64, status string) error
}

type moderationRepoImpl struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepo {
	return &moderationRepoImpl{db: db}
}

func (r *moderationRepoImpl) GetByItemID(ctx context.Context, itemID uint64) (*model.ItemModeration, error) {
	var record model.ItemModeration
	err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// EnsureRecord 首次举报时惰性建档；已存在时不做任何修改
func (r *moderationRepoImpl) EnsureRecord(ctx context.Context, itemID uint64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}},
		DoNothing: true,
	}).Create(&model.ItemModeration{
		ItemID:    itemID,
		Status:    "NORMAL",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}).Error
}

// IncrementFlagScore 数据库层原子自增并读回最新值，并发举报不会丢更新。
// 自增与状态回写不要求同一事务：状态永远可由最新分值重新派生
func (r *moderationRepoImpl) IncrementFlagScore(ctx context.Context, itemID uint64, delta float64) (float64, error) {
	err := r.db.WithContext(ctx).Model(&model.ItemModeration{}).
		Where("item_id = ?", itemID).
		UpdateColumn("flag_score", gorm.Expr("flag_score + ?", delta)).Error
	if err != nil {
		return 0, err
	}

	record, err := r.GetByItemID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if record == nil {
		return 0, gorm.ErrRecordNotFound
	}
	return record.FlagScore, nil
}

// SetFlagScoreAndStatus 全量重算路径：唯一允许分值下降的写入口
func (r *moderationRepoImpl) SetFlagScoreAndStatus(ctx context.Context, itemID uint64, score float64, status string) error {
	return r.db.WithContext(ctx).Model(&model.ItemModeration{}).
		Where("item_id = ?", itemID).
		Updates(map[string]interface{}{
			"flag_score": score,
			"status":     status,
		}).Error
}

func (r *moderationRepoImpl) UpdateStatus(ctx context.Context, itemID uint64, status string) error {
	return r.db.WithContext(ctx).Model(&model.ItemModeration{}).
		Where("item_id = ?", itemID).
		UpdateColumn("status", status).Error
}
