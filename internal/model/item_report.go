package model

import (
	"time"
)

// ItemReport 单条举报。weight_snapshot 在创建时冻结，举报人信任度的后续变化不回溯，
// 保证审核历史可审计、可复算
type ItemReport struct {
	ID             uint64     `gorm:"primaryKey"`
	ItemID         uint64     `gorm:"not null;index:idx_item_id" json:"itemId"`
	ReporterID     uint64     `gorm:"not null;index:idx_reporter_id" json:"reporterId"`
	Reason         string     `gorm:"type:varchar(30);not null" json:"reason"`
	WeightSnapshot float64    `gorm:"not null" json:"weightSnapshot"`
	Resolved       bool       `gorm:"type:tinyint(1);not null;default:0" json:"resolved"`
	ResolvedAt     *time.Time `json:"resolvedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (ItemReport) TableName() string {
	return "item_reports"
}
