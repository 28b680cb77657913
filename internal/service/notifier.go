package service

import (
	"context"
	log "log/slog"
)

// Notifier 通知投递是外部协作方，引擎只负责判定"值得通知的状态跃迁发生了"
type Notifier interface {
	NotifyModerationTransition(ctx context.Context, ownerID, itemID uint64, fromStatus, toStatus string)
	NotifyLevelUp(ctx context.Context, userID uint64, fromLevel, toLevel string)
	NotifyBadgeChange(ctx context.Context, ownerID, listID uint64, fromBadge, toBadge string)
}

type logNotifier struct{}

// NewLogNotifier 仅落日志的通知实现，真实投递由下游消费日志流或替换本实现
func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) NotifyModerationTransition(ctx context.Context, ownerID, itemID uint64, fromStatus, toStatus string) {
	log.InfoContext(ctx, "moderation status transition",
		"owner_id", ownerID, "item_id", itemID, "from", fromStatus, "to", toStatus)
}

func (n *logNotifier) NotifyLevelUp(ctx context.Context, userID uint64, fromLevel, toLevel string) {
	log.InfoContext(ctx, "curator level transition",
		"user_id", userID, "from", fromLevel, "to", toLevel)
}

func (n *logNotifier) NotifyBadgeChange(ctx context.Context, ownerID, listID uint64, fromBadge, toBadge string) {
	log.InfoContext(ctx, "trend badge transition",
		"owner_id", ownerID, "list_id", listID, "from", fromBadge, "to", toBadge)
}
