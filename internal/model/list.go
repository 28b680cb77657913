package model

import (
	"time"
)

type List struct {
	ID            uint64     `gorm:"primaryKey"`
	UserID        uint64     `gorm:"not null;index:idx_user_id" json:"userId"`
	CategoryID    uint64     `gorm:"not null;index:idx_category_id" json:"categoryId"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	SavesCount    int        `gorm:"not null;default:0" json:"savesCount"`
	LikesCount    int        `gorm:"not null;default:0" json:"likesCount"`
	CommentsCount int        `gorm:"not null;default:0" json:"commentsCount"`
	ViewsCount    int        `gorm:"not null;default:0" json:"viewsCount"`
	TrendScore    float64    `gorm:"not null;default:0" json:"trendScore"`
	TrendBadge    string     `gorm:"type:varchar(20);not null;default:'none'" json:"trendBadge"`
	LastSaveAt    *time.Time `json:"lastSaveAt"`
	IsDeleted     bool       `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	// 关联关系
	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
	Items    []Item   `gorm:"foreignKey:ListID;references:ID"`
}

func (List) TableName() string {
	return "lists"
}
