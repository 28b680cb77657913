package model

import (
	"time"
)

type Item struct {
	ID        uint64    `gorm:"primaryKey"`
	ListID    uint64    `gorm:"not null;index:idx_list_id" json:"listId"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Note      string    `gorm:"type:text" json:"note"`
	Status    int8      `gorm:"not null;default:0" json:"status"` // 0:待审核, 1:已通过, 2:已拒绝
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	List List `gorm:"foreignKey:ListID;references:ID"`
}

func (Item) TableName() string {
	return "items"
}
