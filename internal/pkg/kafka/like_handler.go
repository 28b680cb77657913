package kafka

import (
	"Curatia/internal/pkg/consts"
	"Curatia/internal/pkg/redis"
	"Curatia/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
)

type LikesHandler struct {
	listRepo repository.ListRepo
}

func NewLikesHandler(listRepo repository.ListRepo) *LikesHandler {
	return &LikesHandler{
		listRepo: listRepo,
	}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("list like consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("list like consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-like consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-like process batch error", "err", err)
		return err
	}
	return nil
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "list_likes")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT:
		return s.apply(ctx, canalMsg, 1)
	case DELETE:
		return s.apply(ctx, canalMsg, -1)
	default:
		return nil
	}
}

// apply 点赞增删是对称的，只差计数方向
func (s *LikesHandler) apply(ctx context.Context, msg *CanalMessage, delta int) error {
	listID := StrToUint64(msg.Data[0]["list_id"])

	if err := s.listRepo.IncrementCounter(ctx, listID, "likes_count", delta); err != nil {
		return err
	}

	ExecAction(ctx, ActionParams{
		TargetID:       listID,
		CountKeyPrefix: consts.ListLikeCountKey,
		DirtyKey:       consts.ListDirtyKey,
		IsIncrement:    delta > 0,
	})

	// 平均点赞数进策展分，主人也要标脏
	if list, err := s.listRepo.GetList(ctx, listID); err == nil && list != nil {
		if err := redis.SAdd(ctx, consts.CuratorDirtyKey, strconv.FormatUint(list.UserID, 10)); err != nil {
			log.WarnContext(ctx, "curator dirty mark failed", "userID", list.UserID, "err", err)
		}
	}

	log.InfoContext(ctx, "list like processed", "listID", listID, "delta", delta)
	return nil
}
