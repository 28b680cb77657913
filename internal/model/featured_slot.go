package model

import (
	"time"
)

// FeaturedSlot 首页精选位投放记录，轮换公平性分析的只读输入
type FeaturedSlot struct {
	ID         uint64    `gorm:"primaryKey"`
	ListID     uint64    `gorm:"not null;index:idx_list_id" json:"listId"`
	CategoryID uint64    `gorm:"not null;index:idx_category_id" json:"categoryId"`
	StartAt    time.Time `gorm:"not null;index:idx_start_at" json:"startAt"`
	EndAt      time.Time `gorm:"not null" json:"endAt"`
	CreatedAt  time.Time `json:"createdAt"`

	List     List     `gorm:"foreignKey:ListID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (FeaturedSlot) TableName() string {
	return "featured_slots"
}
