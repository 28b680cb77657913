package job

import (
	"Curatia/internal/pkg/consts"
	"Curatia/internal/pkg/logger"
	"Curatia/internal/pkg/redis"
	"Curatia/internal/pkg/util"
	"Curatia/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

type TrendingRefreshJob struct {
	trendingSvc service.TrendingService
}

func NewTrendingRefreshJob(trendingSvc service.TrendingService) *TrendingRefreshJob {
	return &TrendingRefreshJob{
		trendingSvc: trendingSvc,
	}
}

// Run 把脏清单集合改名成处理中集合后逐个重算热度分。
// 改名保证同一批脏数据只被一个实例消费，期间新增的脏标记落在新集合里
func (s *TrendingRefreshJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.ListDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.ListDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get list dirty set error", "err", err)
		return
	}

	listIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert list set to int slice error", "err", err)
		return
	}

	log.InfoContext(ctx, "start refreshing list trend scores", "count", len(listIDs))

	successCount := 0
	for _, listID := range listIDs {
		prevBadge, newBadge, ownerID, err := s.trendingSvc.RefreshListTrend(ctx, listID)
		if err != nil {
			log.ErrorContext(ctx, "refresh list trend error", "listID", listID, "err", err)
			continue
		}
		if prevBadge != newBadge {
			log.InfoContext(ctx, "list badge changed", "listID", listID, "from", prevBadge, "to", newBadge)
			// 徽章变动会影响主人的爆款数，标记其画像待重算
			if err = redis.SAdd(ctx, consts.CuratorDirtyKey, ownerID); err != nil {
				log.ErrorContext(ctx, "mark curator dirty error", "ownerID", ownerID, "err", err)
			}
		}
		successCount++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "err", err)
	}

	log.InfoContext(ctx, "list trend refresh finished", "success", successCount, "total", len(listIDs))
}
