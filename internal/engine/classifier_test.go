package engine

import "testing"

func TestClassifyTrendingBadges(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, BadgeNone},
		{49.99, BadgeNone},
		{50, BadgeHot},
		{199.99, BadgeHot},
		{200, BadgeViral},
		{100000, BadgeViral},
	}
	for _, tt := range tests {
		if got := Classify(tt.value, TrendingBadges); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestClassifyModerationBoundaries(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, StatusNormal},
		{2.99, StatusNormal},
		{3, StatusSoftFlag},
		{4.99, StatusSoftFlag},
		{5, StatusUnderReview},
		{7.99, StatusUnderReview},
		{8, StatusHidden},
	}
	for _, tt := range tests {
		if got := Classify(tt.value, ModerationStatuses); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestClassifyBelowLowestThreshold(t *testing.T) {
	if got := Classify(-5, ModerationStatuses); got != StatusNormal {
		t.Errorf("Classify(-5) = %s, want %s", got, StatusNormal)
	}
}

func TestNextTier(t *testing.T) {
	next := NextTier(0, TrendingBadges)
	if next == nil || next.Key != BadgeHot {
		t.Fatalf("NextTier(0) = %v, want hot", next)
	}

	next = NextTier(120, TrendingBadges)
	if next == nil || next.Key != BadgeViral {
		t.Fatalf("NextTier(120) = %v, want viral", next)
	}

	if next = NextTier(500, TrendingBadges); next != nil {
		t.Fatalf("NextTier at top tier = %v, want nil", next)
	}
}

func TestDistanceToNext(t *testing.T) {
	d := DistanceToNext(165, CuratorLevels)
	if d == nil || *d != 135 {
		t.Fatalf("DistanceToNext(165) = %v, want 135", d)
	}

	if d = DistanceToNext(1200, CuratorLevels); d != nil {
		t.Fatalf("DistanceToNext at top level = %v, want nil", d)
	}
}

func TestCuratorLevelTable(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, LevelNewcomer},
		{49, LevelNewcomer},
		{50, LevelExplorer},
		{165, LevelActiveCurator},
		{300, LevelSkilledCurator},
		{799, LevelTastemaker},
		{800, LevelExpertCurator},
		{1200, LevelEliteCurator},
	}
	for _, tt := range tests {
		if got := Classify(tt.value, CuratorLevels); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}
