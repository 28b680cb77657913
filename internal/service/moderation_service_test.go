package service

import (
	"Curatia/internal/engine"
	"Curatia/internal/model"
	"context"
	"errors"
	"testing"
)

func newModerationFixture() (*fakeItemRepo, *fakeReportRepo, *fakeModerationRepo, *fakeCuratorRepo, *fakeNotifier, ModerationService) {
	itemRepo := &fakeItemRepo{items: map[uint64]*model.Item{
		1: {ID: 1, ListID: 10, Title: "老城咖啡馆", List: model.List{ID: 10, UserID: 7}},
	}}
	reportRepo := &fakeReportRepo{}
	moderationRepo := newFakeModerationRepo()
	curatorRepo := newFakeCuratorRepo()
	notifier := &fakeNotifier{}
	svc := NewModerationService(itemRepo, reportRepo, moderationRepo, curatorRepo, notifier)
	return itemRepo, reportRepo, moderationRepo, curatorRepo, notifier, svc
}

func TestReportAccumulationRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, reportRepo, moderationRepo, curatorRepo, notifier, svc := newModerationFixture()

	// 三个举报人：copyright×1.0=2.0, spam×1.5=1.5, spam×1.0=1.0
	curatorRepo.profiles[101] = &model.CuratorProfile{UserID: 101, Level: engine.LevelActiveCurator}
	curatorRepo.profiles[102] = &model.CuratorProfile{UserID: 102, Level: engine.LevelTastemaker}
	curatorRepo.profiles[103] = &model.CuratorProfile{UserID: 103, Level: engine.LevelActiveCurator}

	status, err := svc.ReportItem(ctx, 101, 1, engine.ReasonCopyright)
	if err != nil {
		t.Fatalf("report 1: %v", err)
	}
	if status != engine.StatusNormal {
		t.Fatalf("after 2.0 expected NORMAL, got %s", status)
	}

	status, err = svc.ReportItem(ctx, 102, 1, engine.ReasonSpam)
	if err != nil {
		t.Fatalf("report 2: %v", err)
	}
	if status != engine.StatusSoftFlag {
		t.Fatalf("after 3.5 expected SOFT_FLAG, got %s", status)
	}

	status, err = svc.ReportItem(ctx, 103, 1, engine.ReasonSpam)
	if err != nil {
		t.Fatalf("report 3: %v", err)
	}
	if status != engine.StatusSoftFlag {
		t.Fatalf("after 4.5 expected SOFT_FLAG, got %s", status)
	}

	record := moderationRepo.records[1]
	if record.FlagScore != 4.5 {
		t.Fatalf("expected flag score 4.5, got %v", record.FlagScore)
	}

	// 逐条了结，分值只会通过全量重算下降
	for _, report := range reportRepo.reports {
		if err = svc.ResolveReport(ctx, report.ID); err != nil {
			t.Fatalf("resolve %d: %v", report.ID, err)
		}
	}

	record = moderationRepo.records[1]
	if record.FlagScore != 0 || record.Status != engine.StatusNormal {
		t.Fatalf("after resolving all reports expected 0/NORMAL, got %v/%s", record.FlagScore, record.Status)
	}

	// 至少出现一次 NORMAL→SOFT_FLAG 与一次 SOFT_FLAG→NORMAL 的跃迁通知
	var up, down bool
	for _, e := range notifier.events {
		if e.kind == "moderation" && e.from == engine.StatusNormal && e.to == engine.StatusSoftFlag {
			up = true
		}
		if e.kind == "moderation" && e.from == engine.StatusSoftFlag && e.to == engine.StatusNormal {
			down = true
		}
	}
	if !up || !down {
		t.Fatalf("expected both transitions notified, got %+v", notifier.events)
	}
}

func TestReportValidation(t *testing.T) {
	ctx := context.Background()
	_, _, _, _, _, svc := newModerationFixture()

	if _, err := svc.ReportItem(ctx, 101, 1, "i_dislike_it"); !errors.Is(err, ErrReportReasonInvalid) {
		t.Fatalf("expected ErrReportReasonInvalid, got %v", err)
	}
	if _, err := svc.ReportItem(ctx, 101, 999, engine.ReasonSpam); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	if _, err := svc.ReportItem(ctx, 101, 1, engine.ReasonSpam); err != nil {
		t.Fatalf("first report: %v", err)
	}
	if _, err := svc.ReportItem(ctx, 101, 1, engine.ReasonOffensive); !errors.Is(err, ErrReportDuplicate) {
		t.Fatalf("expected ErrReportDuplicate on second unresolved report, got %v", err)
	}
}

func TestResolveReportTwice(t *testing.T) {
	ctx := context.Background()
	_, reportRepo, _, _, _, svc := newModerationFixture()

	if _, err := svc.ReportItem(ctx, 101, 1, engine.ReasonSpam); err != nil {
		t.Fatalf("report: %v", err)
	}
	id := reportRepo.reports[0].ID
	if err := svc.ResolveReport(ctx, id); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if err := svc.ResolveReport(ctx, id); !errors.Is(err, ErrReportResolved) {
		t.Fatalf("expected ErrReportResolved, got %v", err)
	}
	if err := svc.ResolveReport(ctx, 999); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestGetModerationStateSelfHeals(t *testing.T) {
	ctx := context.Background()
	_, _, moderationRepo, _, _, svc := newModerationFixture()

	// 存量状态与分值脱节时，读取路径就地修正
	moderationRepo.records[1] = &model.ItemModeration{ItemID: 1, FlagScore: 6, Status: engine.StatusNormal}

	state, err := svc.GetModerationState(ctx, 1)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.Status != engine.StatusUnderReview {
		t.Fatalf("expected derived UNDER_REVIEW, got %s", state.Status)
	}
	if moderationRepo.records[1].Status != engine.StatusUnderReview {
		t.Fatalf("expected stored status healed, got %s", moderationRepo.records[1].Status)
	}
	if state.NextStatus == nil || *state.NextStatus != engine.StatusHidden {
		t.Fatalf("expected next status HIDDEN, got %v", state.NextStatus)
	}
	if state.ToNextStatus == nil || *state.ToNextStatus != 2 {
		t.Fatalf("expected 2 points to HIDDEN, got %v", state.ToNextStatus)
	}
}

func TestHiddenItemVisibility(t *testing.T) {
	ctx := context.Background()
	_, _, moderationRepo, _, _, svc := newModerationFixture()

	moderationRepo.records[1] = &model.ItemModeration{ItemID: 1, FlagScore: 8, Status: engine.StatusHidden}

	cases := []struct {
		name     string
		viewerID uint64
		roles    []string
		visible  bool
	}{
		{"stranger", 42, nil, false},
		{"anonymous", 0, nil, false},
		{"owner", 7, nil, true},
		{"admin", 42, []string{"ADMIN"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			item, err := svc.GetVisibleItem(ctx, 1, c.viewerID, c.roles)
			if c.visible {
				if err != nil {
					t.Fatalf("expected visible, got %v", err)
				}
				if item.ModerationStatus != engine.StatusHidden {
					t.Fatalf("expected HIDDEN status on dto, got %s", item.ModerationStatus)
				}
			} else if !errors.Is(err, ErrItemNotFound) {
				t.Fatalf("expected ErrItemNotFound for hidden item, got %v", err)
			}
		})
	}
}

func TestReporterWithoutProfileGetsLowestTrust(t *testing.T) {
	ctx := context.Background()
	_, reportRepo, _, _, _, svc := newModerationFixture()

	// 无档案按最低信任档 0.7：harmful 3×0.7=2.1
	if _, err := svc.ReportItem(ctx, 555, 1, engine.ReasonHarmful); err != nil {
		t.Fatalf("report: %v", err)
	}
	if got := reportRepo.reports[0].WeightSnapshot; got != 2.1 {
		t.Fatalf("expected weight snapshot 2.1, got %v", got)
	}
}
