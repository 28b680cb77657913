package dto

import "time"

// ItemDTO 条目明细响应，审核状态为读取时按分值现算的结果
type ItemDTO struct {
	ID               uint64    `json:"id"`
	ListID           uint64    `json:"list_id"`
	Title            string    `json:"title"`
	Note             string    `json:"note"`
	Status           int8      `json:"status"`
	ModerationStatus string    `json:"moderation_status"`
	CreatedAt        time.Time `json:"createdAt"`
}
