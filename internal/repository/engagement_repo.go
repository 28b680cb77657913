package repository

import (
	"Curatia/internal/engine"
	"Curatia/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// EngagementRepo 指标聚合器：按主体与时间截点计算纯窗口计数，不含任何业务逻辑
type EngagementRepo interface {
	GetWindowedMetrics(ctx context.Context, list *model.List, now time.Time) (engine.WindowedMetrics, error)
	GetSaveCountSince(ctx context.Context, listID uint64, since time.Time) (int64, error)
	GetLikeCountSince(ctx context.Context, listID uint64, since time.Time) (int64, error)
	GetCommentCountSince(ctx context.Context, listID uint64, since time.Time) (int64, error)
	GetViewCountSince(ctx context.Context, listID uint64, since time.Time) (int64, error)
	GetLastSaveAt(ctx context.Context, listID uint64) (*time.Time, error)
}

type engagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepo {
	return &engagementRepoImpl{db: db}
}

// GetWindowedMetrics 汇出 24h/7d 窗口内的全部原始计数与年龄、收藏间隔
func (r *engagementRepoImpl) GetWindowedMetrics(ctx context.Context, list *model.List, now time.Time) (engine.WindowedMetrics, error) {
	dayAgo := now.Add(-24 * time.Hour)
	weekAgo := now.AddDate(0, 0, -7)

	m := engine.WindowedMetrics{CreatedAt: list.CreatedAt}

	saves24h, err := r.GetSaveCountSince(ctx, list.ID, dayAgo)
	if err != nil {
		return m, err
	}
	saves7d, err := r.GetSaveCountSince(ctx, list.ID, weekAgo)
	if err != nil {
		return m, err
	}
	likes7d, err := r.GetLikeCountSince(ctx, list.ID, weekAgo)
	if err != nil {
		return m, err
	}
	comments7d, err := r.GetCommentCountSince(ctx, list.ID, weekAgo)
	if err != nil {
		return m, err
	}
	views7d, err := r.GetViewCountSince(ctx, list.ID, weekAgo)
	if err != nil {
		return m, err
	}

	m.Saves24h = int(saves24h)
	m.Saves7d = int(saves7d)
	m.Likes7d = int(likes7d)
	m.Comments7d = int(comments7d)
	m.Views7d = int(views7d)

	if age := now.Sub(list.CreatedAt); age > 0 {
		m.AgeDays = age.Hours() / 24
	}

	if list.LastSaveAt != nil {
		m.LastSaveAt = *list.LastSaveAt
		if gap := now.Sub(*list.LastSaveAt); gap > 0 {
			m.DaysSinceLastSave = gap.Hours() / 24
		}
	}
	return m, nil
}

func (r *engagementRepoImpl) GetSaveCountSince(ctx context.Context, listID uint64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ListSave{}).
		Where("list_id = ? AND created_at >= ?", listID, since).Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) GetLikeCountSince(ctx context.Context, listID uint64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ListLike{}).
		Where("list_id = ? AND created_at >= ?", listID, since).Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) GetCommentCountSince(ctx context.Context, listID uint64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ListComment{}).
		Where("list_id = ? AND created_at >= ? AND is_deleted = 0", listID, since).Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) GetViewCountSince(ctx context.Context, listID uint64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ListView{}).
		Where("list_id = ? AND viewed_at >= ?", listID, since).Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) GetLastSaveAt(ctx context.Context, listID uint64) (*time.Time, error) {
	var save model.ListSave
	err := r.db.WithContext(ctx).Where("list_id = ?", listID).
		Order("created_at DESC").Limit(1).Take(&save).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &save.CreatedAt, nil
}
