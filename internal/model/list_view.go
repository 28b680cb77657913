package model

import (
	"time"
)

type ListView struct {
	ID       uint64    `gorm:"primaryKey"`
	ListID   uint64    `gorm:"not null;index:idx_list_viewed" json:"listId"`
	UserID   uint64    `gorm:"not null" json:"userId"`
	ViewedAt time.Time `gorm:"index:idx_list_viewed" json:"viewedAt"`
}

func (ListView) TableName() string {
	return "list_views"
}
