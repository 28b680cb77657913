package engine

import "math"

// 策展人等级（七档，升序）
const (
	LevelNewcomer       = "NEWCOMER"
	LevelExplorer       = "EXPLORER"
	LevelActiveCurator  = "ACTIVE_CURATOR"
	LevelSkilledCurator = "SKILLED_CURATOR"
	LevelTastemaker     = "TASTEMAKER"
	LevelExpertCurator  = "EXPERT_CURATOR"
	LevelEliteCurator   = "ELITE_CURATOR"
)

// 各项终身统计的线性权重
const (
	curatorListWeight     = 10
	curatorAvgLikeWeight  = 5
	curatorApprovedWeight = 3
	curatorSavedWeight    = 2
	curatorViralWeight    = 30
)

// CuratorStats 用户的终身活动统计
type CuratorStats struct {
	ListsCount         int
	ApprovedItemsCount int
	SavedCount         int
	ViralListsCount    int
	AvgLikesPerList    float64
}

// CuratorProgress 策展人进度：当前分数、等级及到下一级的距离
type CuratorProgress struct {
	Score        int     `json:"score"`
	Level        string  `json:"level"`
	NextLevel    *string `json:"nextLevel"`
	PointsToNext *int    `json:"pointsToNext"`
}

// ComputeCuratorScore 终身统计 → 策展分。同样的输入永远得到同样的分数
//
// score = lists×10 + round(avgLikesPerList)×5 + approvedItems×3 + saved×2 + viral×30
func ComputeCuratorScore(stats CuratorStats) int {
	score := stats.ListsCount*curatorListWeight +
		int(math.Round(stats.AvgLikesPerList))*curatorAvgLikeWeight +
		stats.ApprovedItemsCount*curatorApprovedWeight +
		stats.SavedCount*curatorSavedWeight +
		stats.ViralListsCount*curatorViralWeight
	if score < 0 {
		return 0
	}
	return score
}

// ComputeCuratorProgress 分数过策展人阈值表得到等级与升级进度
func ComputeCuratorProgress(stats CuratorStats) CuratorProgress {
	score := ComputeCuratorScore(stats)
	progress := CuratorProgress{
		Score: score,
		Level: Classify(float64(score), CuratorLevels),
	}

	if next := NextTier(float64(score), CuratorLevels); next != nil {
		progress.NextLevel = &next.Key
		points := int(next.Min) - score
		progress.PointsToNext = &points
	}
	return progress
}
