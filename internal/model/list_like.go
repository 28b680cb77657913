package model

import (
	"time"
)

type ListLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	ListID    uint64    `gorm:"primaryKey;index:idx_list_id" json:"listId"`
	CreatedAt time.Time `gorm:"index:idx_list_created" json:"createdAt"`
}

func (ListLike) TableName() string {
	return "list_likes"
}
