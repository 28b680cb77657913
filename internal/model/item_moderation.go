package model

import (
	"time"
)

// ItemModeration 条目的审核累计状态。首次被举报时惰性创建，只重置不删除。
// 不变式：status 永远等于按 flag_score 过阈值表的结果
type ItemModeration struct {
	ID        uint64    `gorm:"primaryKey"`
	ItemID    uint64    `gorm:"not null;uniqueIndex:idx_item_id" json:"itemId"`
	FlagScore float64   `gorm:"not null;default:0" json:"flagScore"`
	Status    string    `gorm:"type:varchar(20);not null;default:'NORMAL'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ItemModeration) TableName() string {
	return "item_moderations"
}
