package dto

// TrendingListDTO 热度榜单项响应
type TrendingListDTO struct {
	ListID       uint64  `json:"list_id"`
	Title        string  `json:"title"`
	CategoryID   uint64  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	OwnerID      uint64  `json:"owner_id"`
	Rank         int     `json:"rank"`
	TrendScore   float64 `json:"trend_score"`
	TrendBadge   string  `json:"trend_badge"`
	SavesCount   int     `json:"saves_count"`
	LikesCount   int     `json:"likes_count"`
}

// ListScoreDTO 榜单主人视角的完整得分拆解
type ListScoreDTO struct {
	ListID            uint64             `json:"list_id"`
	Score             float64            `json:"score"`
	ScoreWithVelocity float64            `json:"score_with_velocity"`
	SaveVelocity      float64            `json:"save_velocity"`
	Badge             string             `json:"badge"`
	NextBadge         *string            `json:"next_badge"`
	ToNextBadge       *float64           `json:"to_next_badge"`
	Breakdown         map[string]float64 `json:"breakdown"`
	Warnings          []string           `json:"warnings,omitempty"`
}
