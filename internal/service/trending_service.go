package service

import (
	"Curatia/internal/api/dto"
	"Curatia/internal/engine"
	"Curatia/internal/pkg/consts"
	"Curatia/internal/pkg/redis"
	"Curatia/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

type TrendingService interface {
	// GetTrendingLists 分类热榜，短缓存兜底数据库
	GetTrendingLists(ctx context.Context, categoryID uint64, page, pageSize int) ([]dto.TrendingListDTO, error)
	// GetListScore 向榜单主人返回含速度项的完整得分拆解
	GetListScore(ctx context.Context, listID, viewerID uint64) (*dto.ListScoreDTO, error)
	// RefreshListTrend 重算单个榜单的趋势分与徽章并落库，返回新旧徽章与榜单主人
	RefreshListTrend(ctx context.Context, listID uint64) (prevBadge, newBadge string, ownerID uint64, err error)
}

type trendingServiceImpl struct {
	listRepo       repository.ListRepo
	categoryRepo   repository.CategoryRepo
	engagementRepo repository.EngagementRepo
	notifier       Notifier
}

func NewTrendingService(
	listRepo repository.ListRepo,
	categoryRepo repository.CategoryRepo,
	engagementRepo repository.EngagementRepo,
	notifier Notifier,
) TrendingService {
	return &trendingServiceImpl{
		listRepo:       listRepo,
		categoryRepo:   categoryRepo,
		engagementRepo: engagementRepo,
		notifier:       notifier,
	}
}

func (s *trendingServiceImpl) GetTrendingLists(ctx context.Context, categoryID uint64, page, pageSize int) ([]dto.TrendingListDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > consts.TrendingPageSize {
		pageSize = consts.TrendingPageSize
	}

	cacheKey := consts.TrendingRankKey + strconv.FormatUint(categoryID, 10)
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		var ranked []dto.TrendingListDTO
		if err = json.Unmarshal([]byte(cached), &ranked); err == nil {
			return pageSlice(ranked, page, pageSize), nil
		}
		log.WarnContext(ctx, "trending cache decode failed", "key", cacheKey, "err", err)
	}

	ranked, err := s.rankCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(ranked); err == nil {
		if err = redis.SetWithExpiration(ctx, cacheKey, string(payload), consts.TrendingCacheSeconds*time.Second); err != nil {
			log.WarnContext(ctx, "trending cache write failed", "key", cacheKey, "err", err)
		}
	}

	return pageSlice(ranked, page, pageSize), nil
}

// rankCategory 取候选榜单，逐个按加权互动计算趋势分后降序排序
func (s *trendingServiceImpl) rankCategory(ctx context.Context, categoryID uint64) ([]dto.TrendingListDTO, error) {
	if categoryID != 0 {
		category, err := s.categoryRepo.GetCategory(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	lists, err := s.listRepo.GetRankCandidates(ctx, categoryID, consts.TrendingCandidateLimit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	subjects := make([]engine.RankedSubject, 0, len(lists))
	byID := make(map[uint64]int, len(lists))
	for i, list := range lists {
		metrics, err := s.engagementRepo.GetWindowedMetrics(ctx, list, now)
		if err != nil {
			return nil, err
		}
		result := engine.ComputeTrendScore(metrics, list.Category.Weight)
		for _, w := range result.Warnings {
			log.WarnContext(ctx, "trend score warning", "list_id", list.ID, "warning", w)
		}
		subjects = append(subjects, engine.RankedSubject{
			ID:         list.ID,
			Score:      result.Score,
			LastSaveAt: metrics.LastSaveAt,
			CreatedAt:  list.CreatedAt,
		})
		byID[list.ID] = i
	}
	engine.SortRanked(subjects)

	ranked := make([]dto.TrendingListDTO, 0, len(subjects))
	for rank, subject := range subjects {
		list := lists[byID[subject.ID]]
		ranked = append(ranked, dto.TrendingListDTO{
			ListID:       list.ID,
			Title:        list.Title,
			CategoryID:   list.CategoryID,
			CategoryName: list.Category.Name,
			OwnerID:      list.UserID,
			Rank:         rank + 1,
			TrendScore:   subject.Score,
			TrendBadge:   engine.Classify(subject.Score, engine.TrendingBadges),
			SavesCount:   list.SavesCount,
			LikesCount:   list.LikesCount,
		})
	}
	return ranked, nil
}

func (s *trendingServiceImpl) GetListScore(ctx context.Context, listID, viewerID uint64) (*dto.ListScoreDTO, error) {
	list, err := s.listRepo.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	if list.UserID != viewerID {
		return nil, UnauthorizedError
	}

	metrics, err := s.engagementRepo.GetWindowedMetrics(ctx, list, time.Now())
	if err != nil {
		return nil, err
	}

	base := engine.ComputeTrendScore(metrics, list.Category.Weight)
	withVelocity := engine.ComputeTrendScoreWithVelocity(metrics, list.Category.Weight)

	res := &dto.ListScoreDTO{
		ListID:            listID,
		Score:             base.Score,
		ScoreWithVelocity: withVelocity.Score,
		SaveVelocity:      engine.SaveVelocity(metrics),
		Badge:             engine.Classify(base.Score, engine.TrendingBadges),
		Breakdown:         withVelocity.Breakdown,
		Warnings:          base.Warnings,
	}
	if next := engine.NextTier(base.Score, engine.TrendingBadges); next != nil {
		res.NextBadge = &next.Key
		d := next.Min - base.Score
		res.ToNextBadge = &d
	}
	return res, nil
}

func (s *trendingServiceImpl) RefreshListTrend(ctx context.Context, listID uint64) (string, string, uint64, error) {
	list, err := s.listRepo.GetList(ctx, listID)
	if err != nil {
		return "", "", 0, err
	}
	if list == nil {
		return "", "", 0, ErrListNotFound
	}

	metrics, err := s.engagementRepo.GetWindowedMetrics(ctx, list, time.Now())
	if err != nil {
		return "", "", 0, err
	}

	result := engine.ComputeTrendScore(metrics, list.Category.Weight)
	newBadge := engine.Classify(result.Score, engine.TrendingBadges)
	prevBadge := list.TrendBadge
	if prevBadge == "" {
		prevBadge = engine.BadgeNone
	}

	if err = s.listRepo.UpdateTrendFields(ctx, listID, result.Score, newBadge); err != nil {
		return "", "", 0, err
	}

	if newBadge != prevBadge {
		s.notifier.NotifyBadgeChange(ctx, list.UserID, listID, prevBadge, newBadge)
	}
	return prevBadge, newBadge, list.UserID, nil
}

func pageSlice(ranked []dto.TrendingListDTO, page, pageSize int) []dto.TrendingListDTO {
	start := (page - 1) * pageSize
	if start >= len(ranked) {
		return []dto.TrendingListDTO{}
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end]
}
