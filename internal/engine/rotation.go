package engine

import (
	"fmt"
	"sort"
	"time"
)

// 轮换修正值的各条规则，彼此独立、可叠加
const (
	OverexposedPenalty  = -0.3 // 窗口内出现 ≥2 次
	NoveltyBoost        = 0.3  // 窗口内未出现
	ImmediateRepeatCost = -0.2 // 占据最近一期
)

// DefaultRotationWindow 默认只看最近 4 期
const DefaultRotationWindow = 4

// SlotPlacement 一次精选位投放记录
type SlotPlacement struct {
	SlotID     uint64
	CategoryID uint64
	StartAt    time.Time
	EndAt      time.Time
}

// RotationStat 单个分类在本次分析中的曝光统计，每次分析全量重算，不持久化
type RotationStat struct {
	Count            int     `json:"count"`
	InMostRecentSlot bool    `json:"inMostRecentSlot"`
	Modifier         float64 `json:"modifier"`
}

// RotationResult 轮换公平性分析结果
type RotationResult struct {
	PerCategory         map[uint64]RotationStat `json:"perCategory"`
	SuggestedCategoryID *uint64                 `json:"suggestedCategoryId"`
	Explanation         string                  `json:"explanation"`
}

// AnalyzeRotation 统计每个活跃分类在最近 windowSize 期精选位中的曝光，
// 输出有界修正值（经验范围 [-0.5, +0.3]）与下一期建议分类。
// recent 按时间升序传入，最近一期在末位。无历史时建议为空而非报错
func AnalyzeRotation(recent []SlotPlacement, activeCategories []uint64, windowSize int) RotationResult {
	res := RotationResult{PerCategory: make(map[uint64]RotationStat, len(activeCategories))}

	if windowSize <= 0 {
		windowSize = DefaultRotationWindow
	}
	if len(recent) > windowSize {
		recent = recent[len(recent)-windowSize:]
	}

	if len(recent) == 0 {
		for _, cid := range activeCategories {
			res.PerCategory[cid] = RotationStat{Modifier: NoveltyBoost}
		}
		res.Explanation = "no placement history yet, any active category is a fair pick"
		return res
	}

	mostRecent := recent[len(recent)-1].CategoryID

	counts := make(map[uint64]int, len(recent))
	for _, p := range recent {
		counts[p.CategoryID]++
	}

	for _, cid := range activeCategories {
		stat := RotationStat{
			Count:            counts[cid],
			InMostRecentSlot: cid == mostRecent,
		}
		if stat.Count >= 2 {
			stat.Modifier += OverexposedPenalty
		}
		if stat.Count == 0 {
			stat.Modifier += NoveltyBoost
		}
		if stat.InMostRecentSlot {
			stat.Modifier += ImmediateRepeatCost
		}
		res.PerCategory[cid] = stat
	}

	// 候选：窗口内曝光 ≤1 的分类，取修正值最高者；并列时取分类 ID 最小者，保证结果确定
	sorted := make([]uint64, 0, len(activeCategories))
	sorted = append(sorted, activeCategories...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var best *uint64
	var bestModifier float64
	for _, cid := range sorted {
		stat := res.PerCategory[cid]
		if stat.Count > 1 {
			continue
		}
		if best == nil || stat.Modifier > bestModifier {
			c := cid
			best = &c
			bestModifier = stat.Modifier
		}
	}

	res.SuggestedCategoryID = best
	if best != nil {
		res.Explanation = fmt.Sprintf(
			"category %d has %d placement(s) in the last %d slots (modifier %+.1f)",
			*best, res.PerCategory[*best].Count, len(recent), bestModifier)
	} else {
		res.Explanation = "every active category is overexposed in the current window"
	}
	return res
}
