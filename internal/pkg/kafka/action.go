package kafka

import (
	"Curatia/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
)

// ActionParams 一次互动事件落到缓存层的动作描述
type ActionParams struct {
	TargetID       uint64
	CountKeyPrefix string
	DirtyKey       string
	IsIncrement    bool
	NotifyFunc     func()
}

// ExecAction 维护互动计数缓存并把目标标脏，等待定时任务重算。
// 缓存操作失败只记日志：计数真值在数据库行里，缓存可以随时重建
func ExecAction(ctx context.Context, p ActionParams) {
	key := p.CountKeyPrefix + strconv.FormatUint(p.TargetID, 10)

	var err error
	if p.IsIncrement {
		err = redis.Incr(ctx, key)
	} else {
		err = redis.Decr(ctx, key)
	}
	if err != nil {
		log.WarnContext(ctx, "engagement count cache update failed", "key", key, "err", err)
	}

	if err = redis.SAdd(ctx, p.DirtyKey, strconv.FormatUint(p.TargetID, 10)); err != nil {
		log.WarnContext(ctx, "dirty mark failed", "key", p.DirtyKey, "err", err)
	}

	if p.NotifyFunc != nil {
		p.NotifyFunc()
	}
}
