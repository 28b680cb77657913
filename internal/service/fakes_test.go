package service

import (
	"Curatia/internal/engine"
	"Curatia/internal/model"
	"context"
	"fmt"
	"time"
)

// 内存版仓储，测试用

type fakeItemRepo struct {
	items map[uint64]*model.Item
}

func (f *fakeItemRepo) GetItem(_ context.Context, id uint64) (*model.Item, error) {
	return f.items[id], nil
}

type fakeReportRepo struct {
	nextID  uint64
	reports []*model.ItemReport
}

func (f *fakeReportRepo) CreateReport(_ context.Context, report *model.ItemReport) error {
	f.nextID++
	report.ID = f.nextID
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeReportRepo) GetReport(_ context.Context, id uint64) (*model.ItemReport, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) HasUnresolvedReport(_ context.Context, reporterID, itemID uint64) (bool, error) {
	for _, r := range f.reports {
		if r.ReporterID == reporterID && r.ItemID == itemID && !r.Resolved {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReportRepo) SumUnresolvedWeight(_ context.Context, itemID uint64) (float64, error) {
	var sum float64
	for _, r := range f.reports {
		if r.ItemID == itemID && !r.Resolved {
			sum += r.WeightSnapshot
		}
	}
	return sum, nil
}

func (f *fakeReportRepo) GetUnresolvedByItem(_ context.Context, itemID uint64) ([]*model.ItemReport, error) {
	var out []*model.ItemReport
	for _, r := range f.reports {
		if r.ItemID == itemID && !r.Resolved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) MarkResolved(_ context.Context, id uint64) error {
	for _, r := range f.reports {
		if r.ID == id {
			r.Resolved = true
			now := time.Now()
			r.ResolvedAt = &now
		}
	}
	return nil
}

type fakeModerationRepo struct {
	records map[uint64]*model.ItemModeration
}

func newFakeModerationRepo() *fakeModerationRepo {
	return &fakeModerationRepo{records: make(map[uint64]*model.ItemModeration)}
}

func (f *fakeModerationRepo) GetByItemID(_ context.Context, itemID uint64) (*model.ItemModeration, error) {
	return f.records[itemID], nil
}

func (f *fakeModerationRepo) EnsureRecord(_ context.Context, itemID uint64) error {
	if _, ok := f.records[itemID]; !ok {
		f.records[itemID] = &model.ItemModeration{ItemID: itemID, Status: engine.StatusNormal}
	}
	return nil
}

func (f *fakeModerationRepo) IncrementFlagScore(_ context.Context, itemID uint64, delta float64) (float64, error) {
	record, ok := f.records[itemID]
	if !ok {
		return 0, fmt.Errorf("no moderation record for item %d", itemID)
	}
	record.FlagScore += delta
	return record.FlagScore, nil
}

func (f *fakeModerationRepo) SetFlagScoreAndStatus(_ context.Context, itemID uint64, score float64, status string) error {
	record, ok := f.records[itemID]
	if !ok {
		record = &model.ItemModeration{ItemID: itemID}
		f.records[itemID] = record
	}
	record.FlagScore = score
	record.Status = status
	return nil
}

func (f *fakeModerationRepo) UpdateStatus(_ context.Context, itemID uint64, status string) error {
	if record, ok := f.records[itemID]; ok {
		record.Status = status
	}
	return nil
}

type fakeCuratorRepo struct {
	stats    map[uint64]engine.CuratorStats
	profiles map[uint64]*model.CuratorProfile
}

func newFakeCuratorRepo() *fakeCuratorRepo {
	return &fakeCuratorRepo{
		stats:    make(map[uint64]engine.CuratorStats),
		profiles: make(map[uint64]*model.CuratorProfile),
	}
}

func (f *fakeCuratorRepo) AggregateLifetimeStats(_ context.Context, userID uint64) (engine.CuratorStats, error) {
	return f.stats[userID], nil
}

func (f *fakeCuratorRepo) GetProfile(_ context.Context, userID uint64) (*model.CuratorProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeCuratorRepo) UpsertProfile(_ context.Context, profile *model.CuratorProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeCuratorRepo) GetLeaderboard(_ context.Context, limit int) ([]*model.CuratorProfile, error) {
	var out []*model.CuratorProfile
	for _, p := range f.profiles {
		out = append(out, p)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Score > out[i].Score {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeListRepo struct {
	lists map[uint64]*model.List
}

func (f *fakeListRepo) GetList(_ context.Context, id uint64) (*model.List, error) {
	return f.lists[id], nil
}

func (f *fakeListRepo) GetListByIds(_ context.Context, ids []uint64) ([]*model.List, error) {
	var out []*model.List
	for _, id := range ids {
		if l, ok := f.lists[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListRepo) GetRankCandidates(_ context.Context, categoryID uint64, limit int) ([]*model.List, error) {
	var out []*model.List
	for _, l := range f.lists {
		if categoryID == 0 || l.CategoryID == categoryID {
			out = append(out, l)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeListRepo) UpdateTrendFields(_ context.Context, id uint64, score float64, badge string) error {
	if l, ok := f.lists[id]; ok {
		l.TrendScore = score
		l.TrendBadge = badge
	}
	return nil
}

func (f *fakeListRepo) IncrementCounter(_ context.Context, id uint64, column string, delta int) error {
	l, ok := f.lists[id]
	if !ok {
		return nil
	}
	switch column {
	case "saves_count":
		l.SavesCount += delta
	case "likes_count":
		l.LikesCount += delta
	case "comments_count":
		l.CommentsCount += delta
	case "views_count":
		l.ViewsCount += delta
	}
	return nil
}

func (f *fakeListRepo) TouchLastSaveAt(_ context.Context, id uint64, at time.Time) error {
	if l, ok := f.lists[id]; ok {
		if l.LastSaveAt == nil || l.LastSaveAt.Before(at) {
			l.LastSaveAt = &at
		}
	}
	return nil
}

type fakeEngagementRepo struct {
	metrics map[uint64]engine.WindowedMetrics
}

func (f *fakeEngagementRepo) GetWindowedMetrics(_ context.Context, list *model.List, _ time.Time) (engine.WindowedMetrics, error) {
	return f.metrics[list.ID], nil
}

func (f *fakeEngagementRepo) GetSaveCountSince(_ context.Context, listID uint64, _ time.Time) (int64, error) {
	return int64(f.metrics[listID].Saves7d), nil
}

func (f *fakeEngagementRepo) GetLikeCountSince(_ context.Context, listID uint64, _ time.Time) (int64, error) {
	return int64(f.metrics[listID].Likes7d), nil
}

func (f *fakeEngagementRepo) GetCommentCountSince(_ context.Context, listID uint64, _ time.Time) (int64, error) {
	return int64(f.metrics[listID].Comments7d), nil
}

func (f *fakeEngagementRepo) GetViewCountSince(_ context.Context, listID uint64, _ time.Time) (int64, error) {
	return int64(f.metrics[listID].Views7d), nil
}

func (f *fakeEngagementRepo) GetLastSaveAt(_ context.Context, listID uint64) (*time.Time, error) {
	t := f.metrics[listID].LastSaveAt
	if t.IsZero() {
		return nil, nil
	}
	return &t, nil
}

type fakeSlotRepo struct {
	slots []*model.FeaturedSlot
}

func (f *fakeSlotRepo) GetRecentSlots(_ context.Context, n int) ([]*model.FeaturedSlot, error) {
	if len(f.slots) > n {
		return f.slots[len(f.slots)-n:], nil
	}
	return f.slots, nil
}

type fakeCategoryRepo struct {
	categories []*model.Category
}

func (f *fakeCategoryRepo) GetCategory(_ context.Context, id uint64) (*model.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetActiveCategories(_ context.Context) ([]*model.Category, error) {
	var out []*model.Category
	for _, c := range f.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

type notifyEvent struct {
	kind string
	from string
	to   string
}

type fakeNotifier struct {
	events []notifyEvent
}

func (f *fakeNotifier) NotifyModerationTransition(_ context.Context, _, _ uint64, from, to string) {
	f.events = append(f.events, notifyEvent{kind: "moderation", from: from, to: to})
}

func (f *fakeNotifier) NotifyLevelUp(_ context.Context, _ uint64, from, to string) {
	f.events = append(f.events, notifyEvent{kind: "level", from: from, to: to})
}

func (f *fakeNotifier) NotifyBadgeChange(_ context.Context, _, _ uint64, from, to string) {
	f.events = append(f.events, notifyEvent{kind: "badge", from: from, to: to})
}
