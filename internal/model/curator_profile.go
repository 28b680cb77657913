package model

import (
	"time"
)

// CuratorProfile 用户的策展人档案快照。
// 不变式：level 永远等于按 score 过策展人阈值表的结果
type CuratorProfile struct {
	ID                 uint64    `gorm:"primaryKey"`
	UserID             uint64    `gorm:"not null;uniqueIndex:idx_user_id" json:"userId"`
	ListsCount         int       `gorm:"not null;default:0" json:"listsCount"`
	ApprovedItemsCount int       `gorm:"not null;default:0" json:"approvedItemsCount"`
	SavedCount         int       `gorm:"not null;default:0" json:"savedCount"`
	ViralListsCount    int       `gorm:"not null;default:0" json:"viralListsCount"`
	AvgLikesPerList    float64   `gorm:"not null;default:0" json:"avgLikesPerList"`
	Score              int       `gorm:"not null;default:0" json:"score"`
	Level              string    `gorm:"type:varchar(30);not null;default:'NEWCOMER'" json:"level"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (CuratorProfile) TableName() string {
	return "curator_profiles"
}
