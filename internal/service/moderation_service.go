package service

import (
	"Curatia/internal/api/dto"
	"Curatia/internal/engine"
	"Curatia/internal/model"
	"Curatia/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type ModerationService interface {
	// ReportItem 提交一条加权举报并返回条目的最新审核状态
	ReportItem(ctx context.Context, reporterID, itemID uint64, reason string) (string, error)
	// ResolveReport 了结一条举报并全量重算条目分值（唯一的降分路径）
	ResolveReport(ctx context.Context, reportID uint64) error
	// RecomputeFromUnresolved 按未了结举报的快照权重之和重算 flag_score 与状态
	RecomputeFromUnresolved(ctx context.Context, itemID uint64) (string, error)
	// GetModerationState 读取并自愈条目的审核状态
	GetModerationState(ctx context.Context, itemID uint64) (*dto.ModerationStateDTO, error)
	// GetVisibleItem 按可见性规则读取条目：HIDDEN 对外等同不存在
	GetVisibleItem(ctx context.Context, itemID, viewerID uint64, viewerRoles []string) (*dto.ItemDTO, error)
}

type moderationServiceImpl struct {
	itemRepo       repository.ItemRepo
	reportRepo     repository.ReportRepo
	moderationRepo repository.ModerationRepo
	curatorRepo    repository.CuratorRepo
	notifier       Notifier
}

func NewModerationService(
	itemRepo repository.ItemRepo,
	reportRepo repository.ReportRepo,
	moderationRepo repository.ModerationRepo,
	curatorRepo repository.CuratorRepo,
	notifier Notifier,
) ModerationService {
	return &moderationServiceImpl{
		itemRepo:       itemRepo,
		reportRepo:     reportRepo,
		moderationRepo: moderationRepo,
		curatorRepo:    curatorRepo,
		notifier:       notifier,
	}
}

func (s *moderationServiceImpl) ReportItem(ctx context.Context, reporterID, itemID uint64, reason string) (string, error) {
	if !engine.ValidReason(reason) {
		return "", ErrReportReasonInvalid
	}

	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", ErrItemNotFound
	}

	exists, err := s.reportRepo.HasUnresolvedReport(ctx, reporterID, itemID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrReportDuplicate
	}

	weight := engine.ReportWeight(reason, s.reporterTrust(ctx, reporterID))

	err = s.reportRepo.CreateReport(ctx, &model.ItemReport{
		ItemID:         itemID,
		ReporterID:     reporterID,
		Reason:         reason,
		WeightSnapshot: weight,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		return "", err
	}

	if err = s.moderationRepo.EnsureRecord(ctx, itemID); err != nil {
		return "", err
	}

	prev, err := s.moderationRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return "", err
	}
	prevStatus := engine.StatusNormal
	if prev != nil {
		prevStatus = prev.Status
	}

	// 原子自增后按最新分值重新派生状态，状态永远不独立写入
	newScore, err := s.moderationRepo.IncrementFlagScore(ctx, itemID, weight)
	if err != nil {
		return "", err
	}
	newStatus := engine.StatusForScore(newScore)

	if newStatus != prevStatus {
		if err = s.moderationRepo.UpdateStatus(ctx, itemID, newStatus); err != nil {
			return "", err
		}
		s.notifier.NotifyModerationTransition(ctx, item.List.UserID, itemID, prevStatus, newStatus)
	}

	return newStatus, nil
}

func (s *moderationServiceImpl) ResolveReport(ctx context.Context, reportID uint64) error {
	report, err := s.reportRepo.GetReport(ctx, reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrReportNotFound
	}
	if report.Resolved {
		return ErrReportResolved
	}

	if err = s.reportRepo.MarkResolved(ctx, reportID); err != nil {
		return err
	}

	_, err = s.RecomputeFromUnresolved(ctx, report.ItemID)
	return err
}

func (s *moderationServiceImpl) RecomputeFromUnresolved(ctx context.Context, itemID uint64) (string, error) {
	sum, err := s.reportRepo.SumUnresolvedWeight(ctx, itemID)
	if err != nil {
		return "", err
	}

	prev, err := s.moderationRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return "", err
	}
	prevStatus := engine.StatusNormal
	if prev != nil {
		prevStatus = prev.Status
	}

	newStatus := engine.StatusForScore(sum)
	if err = s.moderationRepo.SetFlagScoreAndStatus(ctx, itemID, sum, newStatus); err != nil {
		return "", err
	}

	if newStatus != prevStatus {
		item, err := s.itemRepo.GetItem(ctx, itemID)
		if err == nil && item != nil {
			s.notifier.NotifyModerationTransition(ctx, item.List.UserID, itemID, prevStatus, newStatus)
		}
	}

	return newStatus, nil
}

func (s *moderationServiceImpl) GetModerationState(ctx context.Context, itemID uint64) (*dto.ModerationStateDTO, error) {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	record, err := s.moderationRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	state := &dto.ModerationStateDTO{
		ItemID: itemID,
		Status: engine.StatusNormal,
	}
	if record != nil {
		state.FlagScore = record.FlagScore
		state.Status = engine.StatusForScore(record.FlagScore)

		// 读到的存量状态与分值不一致时就地修正，不信任存量字段
		if record.Status != state.Status {
			log.WarnContext(ctx, "moderation status self-healed",
				"item_id", itemID, "stored", record.Status, "derived", state.Status)
			if err = s.moderationRepo.UpdateStatus(ctx, itemID, state.Status); err != nil {
				return nil, err
			}
		}
	}

	if next := engine.NextTier(state.FlagScore, engine.ModerationStatuses); next != nil {
		state.NextStatus = &next.Key
		d := next.Min - state.FlagScore
		state.ToNextStatus = &d
	}
	return state, nil
}

func (s *moderationServiceImpl) GetVisibleItem(ctx context.Context, itemID, viewerID uint64, viewerRoles []string) (*dto.ItemDTO, error) {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	status := engine.StatusNormal
	record, err := s.moderationRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		status = engine.StatusForScore(record.FlagScore)
	}

	if !engine.CanView(status, viewerID, item.List.UserID, viewerRoles) {
		return nil, ErrItemNotFound
	}

	var res dto.ItemDTO
	if err = copier.Copy(&res, item); err != nil {
		return nil, err
	}
	res.ModerationStatus = status
	return &res, nil
}

// reporterTrust 举报人信任权重，取自其策展人等级；无档案按最低档
func (s *moderationServiceImpl) reporterTrust(ctx context.Context, reporterID uint64) float64 {
	profile, err := s.curatorRepo.GetProfile(ctx, reporterID)
	if err != nil || profile == nil {
		return engine.TrustWeight(engine.LevelNewcomer)
	}
	return engine.TrustWeight(profile.Level)
}
