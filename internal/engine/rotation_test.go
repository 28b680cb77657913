package engine

import (
	"reflect"
	"testing"
	"time"
)

func placements(categoryIDs ...uint64) []SlotPlacement {
	base := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	out := make([]SlotPlacement, 0, len(categoryIDs))
	for i, cid := range categoryIDs {
		start := base.AddDate(0, 0, 7*i)
		out = append(out, SlotPlacement{
			SlotID:     uint64(i + 1),
			CategoryID: cid,
			StartAt:    start,
			EndAt:      start.AddDate(0, 0, 7),
		})
	}
	return out
}

func TestAnalyzeRotationBoundaryScenario(t *testing.T) {
	// 历史 [A, B, A, C]，最近一期在末位；活跃分类 {A, B, C, D}
	const (
		a uint64 = 1
		b uint64 = 2
		c uint64 = 3
		d uint64 = 4
	)
	res := AnalyzeRotation(placements(a, b, a, c), []uint64{a, b, c, d}, 4)

	want := map[uint64]RotationStat{
		a: {Count: 2, InMostRecentSlot: false, Modifier: -0.3},
		b: {Count: 1, InMostRecentSlot: false, Modifier: 0},
		c: {Count: 1, InMostRecentSlot: true, Modifier: -0.2},
		d: {Count: 0, InMostRecentSlot: false, Modifier: 0.3},
	}
	if !reflect.DeepEqual(res.PerCategory, want) {
		t.Fatalf("perCategory = %+v, want %+v", res.PerCategory, want)
	}
	if res.SuggestedCategoryID == nil || *res.SuggestedCategoryID != d {
		t.Fatalf("suggested = %v, want %d", res.SuggestedCategoryID, d)
	}
}

func TestAnalyzeRotationIdempotent(t *testing.T) {
	history := placements(1, 2, 1, 3)
	active := []uint64{1, 2, 3, 4}

	first := AnalyzeRotation(history, active, 4)
	second := AnalyzeRotation(history, active, 4)

	if !reflect.DeepEqual(first.PerCategory, second.PerCategory) {
		t.Fatal("perCategory differs between identical runs")
	}
	if *first.SuggestedCategoryID != *second.SuggestedCategoryID {
		t.Fatal("suggestion differs between identical runs")
	}
}

func TestAnalyzeRotationEmptyHistory(t *testing.T) {
	res := AnalyzeRotation(nil, []uint64{1, 2}, 4)

	if res.SuggestedCategoryID != nil {
		t.Fatalf("suggested = %v, want nil", res.SuggestedCategoryID)
	}
	if res.Explanation == "" {
		t.Fatal("empty history should carry an explanation")
	}
	for cid, stat := range res.PerCategory {
		if stat.Modifier != NoveltyBoost {
			t.Errorf("category %d modifier = %v, want novelty boost", cid, stat.Modifier)
		}
	}
}

func TestAnalyzeRotationWindowTruncation(t *testing.T) {
	// 超出窗口的早期投放不参与统计
	history := placements(5, 5, 5, 1, 2, 3, 4)

	res := AnalyzeRotation(history, []uint64{1, 2, 3, 4, 5}, 4)

	if stat := res.PerCategory[5]; stat.Count != 0 || stat.Modifier != NoveltyBoost {
		t.Fatalf("category 5 stat = %+v, want fully aged out", stat)
	}
}

func TestAnalyzeRotationTieBreakByCategoryID(t *testing.T) {
	// 7 与 9 都未曝光且修正值相同，取 ID 较小者
	res := AnalyzeRotation(placements(1, 2, 1, 2), []uint64{1, 2, 7, 9}, 4)

	if res.SuggestedCategoryID == nil || *res.SuggestedCategoryID != 7 {
		t.Fatalf("suggested = %v, want 7", res.SuggestedCategoryID)
	}
}

func TestAnalyzeRotationAllOverexposed(t *testing.T) {
	res := AnalyzeRotation(placements(1, 2, 1, 2), []uint64{1, 2}, 4)

	if res.SuggestedCategoryID != nil {
		t.Fatalf("suggested = %v, want nil when all overexposed", res.SuggestedCategoryID)
	}
}

func TestRotationModifierBounds(t *testing.T) {
	// 规则叠加后的修正值必须落在 [-0.5, +0.3]
	res := AnalyzeRotation(placements(1, 1, 2, 1), []uint64{1, 2, 3}, 4)

	for cid, stat := range res.PerCategory {
		if stat.Modifier < -0.5 || stat.Modifier > 0.3 {
			t.Errorf("category %d modifier %v out of bounds", cid, stat.Modifier)
		}
	}
	// 分类 1：曝光 3 次且占据最近一期 → -0.5
	if got := res.PerCategory[1].Modifier; got != -0.5 {
		t.Fatalf("category 1 modifier = %v, want -0.5", got)
	}
}
