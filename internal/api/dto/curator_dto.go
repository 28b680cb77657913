package dto

// CuratorProgressDTO 策展人进度响应
type CuratorProgressDTO struct {
	UserID       uint64  `json:"user_id"`
	Score        int     `json:"score"`
	Level        string  `json:"level"`
	NextLevel    *string `json:"next_level"`
	PointsToNext *int    `json:"points_to_next"`
}

// CuratorRankDTO 策展人排行榜项
type CuratorRankDTO struct {
	Rank            int    `json:"rank"`
	UserID          uint64 `json:"user_id"`
	Score           int    `json:"score"`
	Level           string `json:"level"`
	ListsCount      int    `json:"lists_count"`
	ViralListsCount int    `json:"viral_lists_count"`
}
