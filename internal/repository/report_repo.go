package repository

import (
	"Curatia/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ReportRepo interface {
	CreateReport(ctx context.Context, report *model.ItemReport) error
	GetReport(ctx context.Context, id uint64) (*model.ItemReport, error)
	HasUnresolvedReport(ctx context.Context, reporterID, itemID uint64) (bool, error)
	SumUnresolvedWeight(ctx context.Context, itemID uint64) (float64, error)
	GetUnresolvedByItem(ctx context.Context, itemID uint64) ([]*model.ItemReport, error)
	MarkResolved(ctx context.Context, id uint64) error
}

type reportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepo {
	return &reportRepoImpl{db: db}
}

func (r *reportRepoImpl) CreateReport(ctx context.Context, report *model.ItemReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepoImpl) GetReport(ctx context.Context, id uint64) (*model.ItemReport, error) {
	var report model.ItemReport
	err := r.db.WithContext(ctx).First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// HasUnresolvedReport 同一举报人对同一条目最多一条未了结举报
func (r *reportRepoImpl) HasUnresolvedReport(ctx context.Context, reporterID, itemID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ItemReport{}).
		Where("reporter_id = ? AND item_id = ? AND resolved = 0", reporterID, itemID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SumUnresolvedWeight 未了结举报的快照权重之和，全量重算 flag_score 的数据源
func (r *reportRepoImpl) SumUnresolvedWeight(ctx context.Context, itemID uint64) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).Model(&model.ItemReport{}).
		Select("SUM(weight_snapshot)").
		Where("item_id = ? AND resolved = 0", itemID).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *reportRepoImpl) GetUnresolvedByItem(ctx context.Context, itemID uint64) ([]*model.ItemReport, error) {
	var reports []*model.ItemReport
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND resolved = 0", itemID).
		Order("created_at").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepoImpl) MarkResolved(ctx context.Context, id uint64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.ItemReport{}).
		Where("id = ? AND resolved = 0", id).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolved_at": now,
		}).Error
}
