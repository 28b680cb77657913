package repository

import (
	"Curatia/internal/engine"
	"Curatia/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CuratorRepo interface {
	AggregateLifetimeStats(ctx context.Context, userID uint64) (engine.CuratorStats, error)
	GetProfile(ctx context.Context, userID uint64) (*model.CuratorProfile, error)
	UpsertProfile(ctx context.Context, profile *model.CuratorProfile) error
	GetLeaderboard(ctx context.Context, limit int) ([]*model.CuratorProfile, error)
}

type curatorRepoImpl struct {
	db *gorm.DB
}

func NewCuratorRepository(db *gorm.DB) CuratorRepo {
	return &curatorRepoImpl{db: db}
}

// AggregateLifetimeStats 汇出用户的终身活动统计，策展分的唯一数据源
func (r *curatorRepoImpl) AggregateLifetimeStats(ctx context.Context, userID uint64) (engine.CuratorStats, error) {
	var stats engine.CuratorStats

	var listsCount int64
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Where("user_id = ? AND is_deleted = 0", userID).Count(&listsCount).Error
	if err != nil {
		return stats, err
	}

	var approvedCount int64
	err = r.db.WithContext(ctx).Model(&model.Item{}).
		Joins("JOIN lists ON lists.id = items.list_id").
		Where("lists.user_id = ? AND items.status = 1 AND items.is_deleted = 0", userID).
		Count(&approvedCount).Error
	if err != nil {
		return stats, err
	}

	var savedCount int64
	err = r.db.WithContext(ctx).Model(&model.ListSave{}).
		Joins("JOIN lists ON lists.id = list_saves.list_id").
		Where("lists.user_id = ? AND lists.is_deleted = 0", userID).
		Count(&savedCount).Error
	if err != nil {
		return stats, err
	}

	var viralCount int64
	err = r.db.WithContext(ctx).Model(&model.List{}).
		Where("user_id = ? AND trend_badge = ? AND is_deleted = 0", userID, engine.BadgeViral).
		Count(&viralCount).Error
	if err != nil {
		return stats, err
	}

	var avgLikes *float64
	err = r.db.WithContext(ctx).Model(&model.List{}).
		Select("AVG(likes_count)").
		Where("user_id = ? AND is_deleted = 0", userID).
		Scan(&avgLikes).Error
	if err != nil {
		return stats, err
	}

	stats.ListsCount = int(listsCount)
	stats.ApprovedItemsCount = int(approvedCount)
	stats.SavedCount = int(savedCount)
	stats.ViralListsCount = int(viralCount)
	if avgLikes != nil {
		stats.AvgLikesPerList = *avgLikes
	}
	return stats, nil
}

func (r *curatorRepoImpl) GetProfile(ctx context.Context, userID uint64) (*model.CuratorProfile, error) {
	var profile model.CuratorProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *curatorRepoImpl) UpsertProfile(ctx context.Context, profile *model.CuratorProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"lists_count",
			"approved_items_count",
			"saved_count",
			"viral_lists_count",
			"avg_likes_per_list",
			"score",
			"level",
		}),
	}).Create(profile).Error
}

func (r *curatorRepoImpl) GetLeaderboard(ctx context.Context, limit int) ([]*model.CuratorProfile, error) {
	var profiles []*model.CuratorProfile
	err := r.db.WithContext(ctx).
		Order("score DESC, user_id").Limit(limit).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
