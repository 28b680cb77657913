package dto

// ReportItemDTO 举报请求体
type ReportItemDTO struct {
	Reason string `json:"reason" binding:"required" validate:"oneof=spam incorrect_info copyright offensive harmful"`
}

// ReportResultDTO 举报受理结果
type ReportResultDTO struct {
	ItemID uint64 `json:"item_id"`
	Status string `json:"status"`
}

// ModerationStateDTO 条目审核状态明细
type ModerationStateDTO struct {
	ItemID       uint64   `json:"item_id"`
	FlagScore    float64  `json:"flag_score"`
	Status       string   `json:"status"`
	NextStatus   *string  `json:"next_status"`
	ToNextStatus *float64 `json:"to_next_status"`
}
