package model

import (
	"time"
)

type ListComment struct {
	ID        uint64    `gorm:"primaryKey"`
	ListID    uint64    `gorm:"not null;index:idx_list_created" json:"listId"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    int8      `gorm:"not null;default:1" json:"status"`
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt time.Time `gorm:"index:idx_list_created" json:"createdAt"`
}

func (ListComment) TableName() string {
	return "list_comments"
}
