package kafka

import (
	"Curatia/internal/pkg/consts"
	"Curatia/internal/pkg/redis"
	"Curatia/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
)

type SavesHandler struct {
	listRepo repository.ListRepo
}

func NewSavesHandler(listRepo repository.ListRepo) *SavesHandler {
	return &SavesHandler{
		listRepo: listRepo,
	}
}

func (s *SavesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("list save consumer setup")
	return nil
}

func (s *SavesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("list save consumer cleanup")
	return nil
}

func (s *SavesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-save consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-save process batch error", "err", err)
		return err
	}
	return nil
}

func (s *SavesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	// 1. 解析 Canal 消息
	canalMsg, err := ToCanalMessage(msg, "list_saves")
	if err != nil {
		return err
	}

	// 2. 收藏是物理增删，只关心 INSERT / DELETE
	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

// handleInsert 处理新增收藏：计数 +1、推进 last_save_at、标脏
func (s *SavesHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]
	listID := StrToUint64(row["list_id"])

	if err := s.listRepo.IncrementCounter(ctx, listID, "saves_count", 1); err != nil {
		return err
	}
	if savedAt, ok := parseCanalTime(row["created_at"]); ok {
		if err := s.listRepo.TouchLastSaveAt(ctx, listID, savedAt); err != nil {
			return err
		}
	}

	ExecAction(ctx, ActionParams{
		TargetID:       listID,
		CountKeyPrefix: consts.ListSaveCountKey,
		DirtyKey:       consts.ListDirtyKey,
		IsIncrement:    true,
	})
	s.markOwnerDirty(ctx, listID)

	log.InfoContext(ctx, "list save inserted", "listID", listID)
	return nil
}

// handleDelete 处理取消收藏：计数 -1、标脏
func (s *SavesHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	listID := StrToUint64(msg.Data[0]["list_id"])

	if err := s.listRepo.IncrementCounter(ctx, listID, "saves_count", -1); err != nil {
		return err
	}

	ExecAction(ctx, ActionParams{
		TargetID:       listID,
		CountKeyPrefix: consts.ListSaveCountKey,
		DirtyKey:       consts.ListDirtyKey,
		IsIncrement:    false,
	})
	s.markOwnerDirty(ctx, listID)

	log.InfoContext(ctx, "list unsave processed", "listID", listID)
	return nil
}

// markOwnerDirty 收藏变化影响清单主人的策展分，把主人标脏等待档案重算
func (s *SavesHandler) markOwnerDirty(ctx context.Context, listID uint64) {
	list, err := s.listRepo.GetList(ctx, listID)
	if err != nil || list == nil {
		log.WarnContext(ctx, "failed to get list for curator dirty mark", "listID", listID)
		return
	}
	if err := redis.SAdd(ctx, consts.CuratorDirtyKey, strconv.FormatUint(list.UserID, 10)); err != nil {
		log.WarnContext(ctx, "curator dirty mark failed", "userID", list.UserID, "err", err)
	}
}

// parseCanalTime Canal 行数据里的 datetime 是本地时区字符串
func parseCanalTime(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
