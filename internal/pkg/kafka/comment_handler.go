package kafka

import (
	"Curatia/internal/pkg/consts"
	"Curatia/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

type CommentsHandler struct {
	listRepo repository.ListRepo
}

func NewCommentsHandler(listRepo repository.ListRepo) *CommentsHandler {
	return &CommentsHandler{
		listRepo: listRepo,
	}
}

func (s *CommentsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("list comment consumer setup")
	return nil
}

func (s *CommentsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("list comment consumer cleanup")
	return nil
}

func (s *CommentsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-comment consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-comment process batch error", "err", err)
		return err
	}
	return nil
}

func (s *CommentsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "list_comments")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT:
		return s.apply(ctx, canalMsg, 1)
	case UPDATE:
		// 评论走软删除，is_deleted 翻转才影响计数
		return s.handleUpdate(ctx, canalMsg)
	default:
		return nil
	}
}

func (s *CommentsHandler) handleUpdate(ctx context.Context, msg *CanalMessage) error {
	if len(msg.Old) == 0 {
		return nil
	}
	before, after := msg.Old[0], msg.Data[0]
	if _, changed := before["is_deleted"]; !changed {
		return nil
	}

	if after["is_deleted"] == "1" {
		return s.apply(ctx, msg, -1)
	}
	return s.apply(ctx, msg, 1)
}

func (s *CommentsHandler) apply(ctx context.Context, msg *CanalMessage, delta int) error {
	listID := StrToUint64(msg.Data[0]["list_id"])

	if err := s.listRepo.IncrementCounter(ctx, listID, "comments_count", delta); err != nil {
		return err
	}

	ExecAction(ctx, ActionParams{
		TargetID:       listID,
		CountKeyPrefix: consts.ListCommentCountKey,
		DirtyKey:       consts.ListDirtyKey,
		IsIncrement:    delta > 0,
	})

	log.InfoContext(ctx, "list comment processed", "listID", listID, "delta", delta)
	return nil
}
