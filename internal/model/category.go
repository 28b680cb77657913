package model

import (
	"time"
)

type Category struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex:idx_name" json:"name"`
	// 运营配置的热度权重系数，取值固定在 0.8 / 1.0 / 1.2 / 1.4
	Weight    float64   `gorm:"not null;default:1.0" json:"weight"`
	IsActive  bool      `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Category) TableName() string {
	return "categories"
}
