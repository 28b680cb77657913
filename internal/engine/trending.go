package engine

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// 热度徽章
const (
	BadgeNone  = "none"
	BadgeHot   = "hot"
	BadgeViral = "viral"
)

const (
	WeightSave    = 4.0
	WeightComment = 3.0
	WeightLike    = 2.0

	// 近期收藏加成倍数
	RecentSaveMultiplier = 5.0

	// 速度加成倍数（仅速度变体使用）
	VelocityMultiplier = 2.0
)

// WindowedMetrics 单个榜单主体在时间窗口内的原始计数，由聚合层按需计算，不落库
type WindowedMetrics struct {
	Saves24h          int
	Saves7d           int
	Likes7d           int
	Comments7d        int
	Views7d           int
	AgeDays           float64
	DaysSinceLastSave float64
	LastSaveAt        time.Time
	CreatedAt         time.Time
}

// ScoreResult 热度分结果：总分、逐项贡献、异常输入告警
type ScoreResult struct {
	Score     float64            `json:"score"`
	Breakdown map[string]float64 `json:"breakdown"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// SaveVelocity 衰减修正后的收藏速率。Saves7d 为 0 时恒为 0，避免除零
func SaveVelocity(m WindowedMetrics) float64 {
	if m.Saves7d <= 0 {
		return 0
	}
	return float64(m.Saves7d) / math.Max(1, m.DaysSinceLastSave)
}

// ComputeTrendScore 把窗口计数折算成单一热度分
//
// score = categoryWeight × (saves7d×4 + comments7d×3 + likes7d×2 + recentSaveBoost)
// recentSaveBoost = saves7d × 5（沿用线上口径：7 天收藏既参与基础加权和又参与加成）
//
// 负数计数钳位为 0 并追加告警；任何输入都不会返回错误，坏行只影响自身排名
func ComputeTrendScore(m WindowedMetrics, categoryWeight float64) ScoreResult {
	res := ScoreResult{Breakdown: make(map[string]float64)}

	if categoryWeight <= 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("invalid category weight %.2f, fallback to 1.0", categoryWeight))
		categoryWeight = 1.0
	}

	saves := clampCount(&res, "saves7d", m.Saves7d)
	comments := clampCount(&res, "comments7d", m.Comments7d)
	likes := clampCount(&res, "likes7d", m.Likes7d)

	saveTerm := saves * WeightSave
	commentTerm := comments * WeightComment
	likeTerm := likes * WeightLike
	boostTerm := saves * RecentSaveMultiplier

	res.Breakdown["saves"] = saveTerm * categoryWeight
	res.Breakdown["comments"] = commentTerm * categoryWeight
	res.Breakdown["likes"] = likeTerm * categoryWeight
	res.Breakdown["recent_save_boost"] = boostTerm * categoryWeight

	res.Score = categoryWeight * (saveTerm + commentTerm + likeTerm + boostTerm)
	return res
}

// ComputeTrendScoreWithVelocity 在基础分之上叠加收藏速度项，奖励加速而非存量
func ComputeTrendScoreWithVelocity(m WindowedMetrics, categoryWeight float64) ScoreResult {
	res := ComputeTrendScore(m, categoryWeight)

	if m.DaysSinceLastSave < 0 {
		res.Warnings = append(res.Warnings, "negative daysSinceLastSave clamped to 0")
		m.DaysSinceLastSave = 0
	}

	velocity := SaveVelocity(m)
	velocityTerm := velocity * VelocityMultiplier
	res.Breakdown["save_velocity"] = velocityTerm
	res.Score += velocityTerm
	return res
}

// RankedSubject 参与排序的主体
type RankedSubject struct {
	ID         uint64
	Score      float64
	LastSaveAt time.Time
	CreatedAt  time.Time
}

// SortRanked 按 (score, lastSaveAt, createdAt) 降序排序，保证并列时结果稳定
func SortRanked(subjects []RankedSubject) {
	sort.SliceStable(subjects, func(i, j int) bool {
		if subjects[i].Score != subjects[j].Score {
			return subjects[i].Score > subjects[j].Score
		}
		if !subjects[i].LastSaveAt.Equal(subjects[j].LastSaveAt) {
			return subjects[i].LastSaveAt.After(subjects[j].LastSaveAt)
		}
		return subjects[i].CreatedAt.After(subjects[j].CreatedAt)
	})
}

func clampCount(res *ScoreResult, name string, v int) float64 {
	if v < 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("negative %s (%d) clamped to 0", name, v))
		return 0
	}
	return float64(v)
}
