package service

import (
	"Curatia/internal/api/dto"
	"Curatia/internal/engine"
	"Curatia/internal/model"
	"context"
	"errors"
	"testing"
	"time"
)

func newTrendingFixture() (*fakeListRepo, *fakeEngagementRepo, *fakeNotifier, TrendingService) {
	listRepo := &fakeListRepo{lists: map[uint64]*model.List{
		10: {
			ID:         10,
			UserID:     7,
			CategoryID: 1,
			Title:      "周末探店清单",
			CreatedAt:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Category:   model.Category{ID: 1, Name: "美食", Weight: 1.0},
		},
	}}
	engagementRepo := &fakeEngagementRepo{metrics: map[uint64]engine.WindowedMetrics{
		10: {Saves7d: 10, Likes7d: 6, Comments7d: 4, DaysSinceLastSave: 1},
	}}
	notifier := &fakeNotifier{}
	svc := NewTrendingService(listRepo, &fakeCategoryRepo{}, engagementRepo, notifier)
	return listRepo, engagementRepo, notifier, svc
}

func TestGetListScoreOwnerOnly(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newTrendingFixture()

	if _, err := svc.GetListScore(ctx, 10, 42); !errors.Is(err, UnauthorizedError) {
		t.Fatalf("expected UnauthorizedError for non-owner, got %v", err)
	}
	if _, err := svc.GetListScore(ctx, 999, 7); !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}

	// 1.0 × (10×4 + 4×3 + 6×2 + 10×5) = 114；速度项 10/1×2 = 20
	res, err := svc.GetListScore(ctx, 10, 7)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Score != 114 {
		t.Fatalf("expected base score 114, got %v", res.Score)
	}
	if res.SaveVelocity != 10 {
		t.Fatalf("expected save velocity 10, got %v", res.SaveVelocity)
	}
	if res.ScoreWithVelocity != 134 {
		t.Fatalf("expected velocity score 134, got %v", res.ScoreWithVelocity)
	}
	if res.Badge != engine.BadgeHot {
		t.Fatalf("expected hot badge, got %s", res.Badge)
	}
	if res.NextBadge == nil || *res.NextBadge != engine.BadgeViral {
		t.Fatalf("expected next badge viral, got %v", res.NextBadge)
	}
	if _, ok := res.Breakdown["save_velocity"]; !ok {
		t.Fatal("expected save_velocity term in breakdown")
	}
}

func TestRefreshListTrend(t *testing.T) {
	ctx := context.Background()
	listRepo, engagementRepo, notifier, svc := newTrendingFixture()

	prev, next, ownerID, err := svc.RefreshListTrend(ctx, 10)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if prev != engine.BadgeNone || next != engine.BadgeHot {
		t.Fatalf("expected none→hot, got %s→%s", prev, next)
	}
	if ownerID != 7 {
		t.Fatalf("expected owner 7, got %d", ownerID)
	}
	if listRepo.lists[10].TrendScore != 114 || listRepo.lists[10].TrendBadge != engine.BadgeHot {
		t.Fatalf("expected trend fields persisted, got %+v", listRepo.lists[10])
	}
	if len(notifier.events) != 1 || notifier.events[0].kind != "badge" {
		t.Fatalf("expected one badge notification, got %+v", notifier.events)
	}

	// 互动归零后刷新：徽章回落并再次通知
	engagementRepo.metrics[10] = engine.WindowedMetrics{}
	prev, next, _, err = svc.RefreshListTrend(ctx, 10)
	if err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if prev != engine.BadgeHot || next != engine.BadgeNone {
		t.Fatalf("expected hot→none, got %s→%s", prev, next)
	}
}

func TestPageSlice(t *testing.T) {
	ranked := make([]dto.TrendingListDTO, 0, 5)
	for i := 1; i <= 5; i++ {
		ranked = append(ranked, dto.TrendingListDTO{ListID: uint64(i)})
	}

	cases := []struct {
		page, pageSize int
		wantIDs        []uint64
	}{
		{1, 2, []uint64{1, 2}},
		{2, 2, []uint64{3, 4}},
		{3, 2, []uint64{5}},
		{4, 2, []uint64{}},
	}
	for _, c := range cases {
		got := pageSlice(ranked, c.page, c.pageSize)
		if len(got) != len(c.wantIDs) {
			t.Fatalf("page %d: expected %d items, got %d", c.page, len(c.wantIDs), len(got))
		}
		for i, id := range c.wantIDs {
			if got[i].ListID != id {
				t.Fatalf("page %d item %d: expected %d, got %d", c.page, i, id, got[i].ListID)
			}
		}
	}
}
