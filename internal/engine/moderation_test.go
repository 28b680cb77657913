package engine

import "testing"

func TestReportWeight(t *testing.T) {
	tests := []struct {
		reason string
		trust  float64
		want   float64
	}{
		{ReasonOffensive, 1.5, 3.0},
		{ReasonIncorrectInfo, 0.7, 0.7},
		{ReasonHarmful, 2.0, 6.0},
		{ReasonSpam, 1.0, 1.0},
		{"unknown_reason", 1.0, 1.0},
		{ReasonSpam, -1, 0},
	}
	for _, tt := range tests {
		if got := ReportWeight(tt.reason, tt.trust); got != tt.want {
			t.Errorf("ReportWeight(%s, %v) = %v, want %v", tt.reason, tt.trust, got, tt.want)
		}
	}
}

func TestReportWeightRounding(t *testing.T) {
	// 1 × 0.333 = 0.333 → 0.33
	if got := ReportWeight(ReasonSpam, 0.333); got != 0.33 {
		t.Fatalf("got %v, want 0.33", got)
	}
}

func TestTrustWeightSteps(t *testing.T) {
	tests := []struct {
		level string
		want  float64
	}{
		{LevelNewcomer, 0.7},
		{LevelExplorer, 0.7},
		{LevelActiveCurator, 1.0},
		{LevelSkilledCurator, 1.0},
		{LevelTastemaker, 1.5},
		{LevelExpertCurator, 1.5},
		{LevelEliteCurator, 2.0},
		{"", 0.7}, // 匿名/未知等级按最低档处理
	}
	for _, tt := range tests {
		if got := TrustWeight(tt.level); got != tt.want {
			t.Errorf("TrustWeight(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, StatusNormal},
		{2.99, StatusNormal},
		{3, StatusSoftFlag},
		{4.5, StatusSoftFlag},
		{5, StatusUnderReview},
		{7.99, StatusUnderReview},
		{8, StatusHidden},
		{-1, StatusNormal},
	}
	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.want {
			t.Errorf("StatusForScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestValidReason(t *testing.T) {
	for _, r := range []string{ReasonSpam, ReasonIncorrectInfo, ReasonCopyright, ReasonOffensive, ReasonHarmful} {
		if !ValidReason(r) {
			t.Errorf("ValidReason(%s) = false", r)
		}
	}
	if ValidReason("rude") {
		t.Error("ValidReason(rude) = true, want false")
	}
}

func TestCanView(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		viewerID    uint64
		ownerID     uint64
		viewerRoles []string
		want        bool
	}{
		{"normal visible to anyone", StatusNormal, 0, 1, nil, true},
		{"under review still visible", StatusUnderReview, 99, 1, nil, true},
		{"hidden invisible to stranger", StatusHidden, 99, 1, nil, false},
		{"hidden invisible to anonymous", StatusHidden, 0, 1, nil, false},
		{"hidden visible to owner", StatusHidden, 1, 1, nil, true},
		{"hidden visible to admin", StatusHidden, 99, 1, []string{"ADMIN"}, true},
		{"hidden invisible to auditor", StatusHidden, 99, 1, []string{"AUDIT"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanView(tt.status, tt.viewerID, tt.ownerID, tt.viewerRoles); got != tt.want {
				t.Errorf("CanView = %v, want %v", got, tt.want)
			}
		})
	}
}
