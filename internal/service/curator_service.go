package service

import (
	"Curatia/internal/api/dto"
	"Curatia/internal/engine"
	"Curatia/internal/model"
	"Curatia/internal/pkg/consts"
	"Curatia/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type CuratorService interface {
	// GetCuratorProgress 读取策展人进度；无档案时现算一份并落库
	GetCuratorProgress(ctx context.Context, userID uint64) (*dto.CuratorProgressDTO, error)
	// SyncCuratorProfile 按终身统计重算档案快照并回写，返回新旧等级
	SyncCuratorProfile(ctx context.Context, userID uint64) (prevLevel, newLevel string, err error)
	// GetLeaderboard 策展分排行榜
	GetLeaderboard(ctx context.Context) ([]dto.CuratorRankDTO, error)
}

type curatorServiceImpl struct {
	curatorRepo repository.CuratorRepo
	notifier    Notifier
}

func NewCuratorService(curatorRepo repository.CuratorRepo, notifier Notifier) CuratorService {
	return &curatorServiceImpl{curatorRepo: curatorRepo, notifier: notifier}
}

func (s *curatorServiceImpl) GetCuratorProgress(ctx context.Context, userID uint64) (*dto.CuratorProgressDTO, error) {
	profile, err := s.curatorRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		if _, _, err = s.SyncCuratorProfile(ctx, userID); err != nil {
			return nil, err
		}
		if profile, err = s.curatorRepo.GetProfile(ctx, userID); err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, UnExpectedError
		}
	}

	res := &dto.CuratorProgressDTO{
		UserID: userID,
		Score:  profile.Score,
		Level:  profile.Level,
	}
	if next := engine.NextTier(float64(profile.Score), engine.CuratorLevels); next != nil {
		res.NextLevel = &next.Key
		points := int(next.Min) - profile.Score
		res.PointsToNext = &points
	}
	return res, nil
}

func (s *curatorServiceImpl) SyncCuratorProfile(ctx context.Context, userID uint64) (string, string, error) {
	stats, err := s.curatorRepo.AggregateLifetimeStats(ctx, userID)
	if err != nil {
		return "", "", err
	}
	progress := engine.ComputeCuratorProgress(stats)

	prevLevel := engine.LevelNewcomer
	if prev, err := s.curatorRepo.GetProfile(ctx, userID); err != nil {
		return "", "", err
	} else if prev != nil {
		prevLevel = prev.Level
	}

	err = s.curatorRepo.UpsertProfile(ctx, &model.CuratorProfile{
		UserID:             userID,
		ListsCount:         stats.ListsCount,
		ApprovedItemsCount: stats.ApprovedItemsCount,
		SavedCount:         stats.SavedCount,
		ViralListsCount:    stats.ViralListsCount,
		AvgLikesPerList:    stats.AvgLikesPerList,
		Score:              progress.Score,
		Level:              progress.Level,
	})
	if err != nil {
		return "", "", err
	}

	if progress.Level != prevLevel {
		s.notifier.NotifyLevelUp(ctx, userID, prevLevel, progress.Level)
	}
	return prevLevel, progress.Level, nil
}

func (s *curatorServiceImpl) GetLeaderboard(ctx context.Context) ([]dto.CuratorRankDTO, error) {
	profiles, err := s.curatorRepo.GetLeaderboard(ctx, consts.LeaderboardSize)
	if err != nil {
		return nil, err
	}

	ranks := make([]dto.CuratorRankDTO, 0, len(profiles))
	for i, profile := range profiles {
		var item dto.CuratorRankDTO
		if err = copier.Copy(&item, profile); err != nil {
			return nil, err
		}
		item.Rank = i + 1
		ranks = append(ranks, item)
	}
	return ranks, nil
}
