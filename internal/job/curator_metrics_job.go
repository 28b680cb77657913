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

type CuratorMetricsJob struct {
	curatorSvc service.CuratorService
}

func NewCuratorMetricsJob(curatorSvc service.CuratorService) *CuratorMetricsJob {
	return &CuratorMetricsJob{
		curatorSvc: curatorSvc,
	}
}

// Run 重算所有被标脏用户的策展人档案快照
func (s *CuratorMetricsJob) Run() {
	traceID := "job-curator-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.CuratorDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.CuratorDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get curator dirty set error", "err", err)
		return
	}

	userIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert curator set to int slice error", "err", err)
		return
	}

	log.InfoContext(ctx, "start syncing curator profiles", "count", len(userIDs))

	successCount := 0
	for _, userID := range userIDs {
		prevLevel, newLevel, err := s.curatorSvc.SyncCuratorProfile(ctx, userID)
		if err != nil {
			log.ErrorContext(ctx, "sync curator profile error", "userID", userID, "err", err)
			continue
		}
		if prevLevel != newLevel {
			log.InfoContext(ctx, "curator level changed", "userID", userID, "from", prevLevel, "to", newLevel)
		}
		successCount++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "err", err)
	}

	log.InfoContext(ctx, "curator profile sync finished", "success", successCount, "total", len(userIDs))
}
