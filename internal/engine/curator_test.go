package engine

import "testing"

func TestComputeCuratorScore(t *testing.T) {
	stats := CuratorStats{
		ListsCount:         3,
		AvgLikesPerList:    10,
		ApprovedItemsCount: 5,
		SavedCount:         20,
		ViralListsCount:    1,
	}

	// 30 + 50 + 15 + 40 + 30 = 165
	if got := ComputeCuratorScore(stats); got != 165 {
		t.Fatalf("score = %d, want 165", got)
	}
}

func TestComputeCuratorScoreClampedAtZero(t *testing.T) {
	if got := ComputeCuratorScore(CuratorStats{ListsCount: -10}); got != 0 {
		t.Fatalf("score = %d, want 0", got)
	}
}

func TestComputeCuratorScoreRoundsAvgLikes(t *testing.T) {
	a := ComputeCuratorScore(CuratorStats{AvgLikesPerList: 2.4})
	b := ComputeCuratorScore(CuratorStats{AvgLikesPerList: 2.5})

	if a != 10 || b != 15 {
		t.Fatalf("got %d / %d, want 10 / 15", a, b)
	}
}

func TestComputeCuratorProgress(t *testing.T) {
	stats := CuratorStats{
		ListsCount:         3,
		AvgLikesPerList:    10,
		ApprovedItemsCount: 5,
		SavedCount:         20,
		ViralListsCount:    1,
	}

	progress := ComputeCuratorProgress(stats)

	if progress.Score != 165 {
		t.Fatalf("score = %d, want 165", progress.Score)
	}
	if progress.Level != LevelActiveCurator {
		t.Fatalf("level = %s, want %s", progress.Level, LevelActiveCurator)
	}
	if progress.NextLevel == nil || *progress.NextLevel != LevelSkilledCurator {
		t.Fatalf("nextLevel = %v, want %s", progress.NextLevel, LevelSkilledCurator)
	}
	if progress.PointsToNext == nil || *progress.PointsToNext != 135 {
		t.Fatalf("pointsToNext = %v, want 135", progress.PointsToNext)
	}
}

func TestComputeCuratorProgressTopLevel(t *testing.T) {
	progress := ComputeCuratorProgress(CuratorStats{ViralListsCount: 100})

	if progress.Level != LevelEliteCurator {
		t.Fatalf("level = %s, want %s", progress.Level, LevelEliteCurator)
	}
	if progress.NextLevel != nil || progress.PointsToNext != nil {
		t.Fatal("top level should have no next level")
	}
}

func TestComputeCuratorProgressDeterministic(t *testing.T) {
	stats := CuratorStats{ListsCount: 7, AvgLikesPerList: 3.3, SavedCount: 12}

	first := ComputeCuratorProgress(stats)
	second := ComputeCuratorProgress(stats)

	if first.Score != second.Score || first.Level != second.Level {
		t.Fatal("progress differs between identical inputs")
	}
}
