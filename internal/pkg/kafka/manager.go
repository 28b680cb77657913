package kafka

import (
	"Curatia/internal/api/config"
	"Curatia/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	savesConsumer sarama.ConsumerGroup
	savesHandler  sarama.ConsumerGroupHandler

	likesConsumer sarama.ConsumerGroup
	likesHandler  sarama.ConsumerGroupHandler

	commentsConsumer sarama.ConsumerGroup
	commentsHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	listRepo repository.ListRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	savesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaSaveConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	savesHandler := NewSavesHandler(listRepo)

	likesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaLikeConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	likesHandler := NewLikesHandler(listRepo)

	commentsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCommentConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	commentsHandler := NewCommentsHandler(listRepo)

	return &ConsumerManager{
		savesConsumer:    savesConsumer,
		savesHandler:     savesHandler,
		likesConsumer:    likesConsumer,
		likesHandler:     likesHandler,
		commentsConsumer: commentsConsumer,
		commentsHandler:  commentsHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	// 启动 Save Consumer
	go func() {
		topic := cfg.KafkaSaveConsumer.Topic
		log.Info("Save consumer started", "topic", topic)
		for {
			if err := m.savesConsumer.Consume(ctx, []string{topic}, m.savesHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Like Consumer
	go func() {
		topic := cfg.KafkaLikeConsumer.Topic
		log.Info("Like consumer started", "topic", topic)
		for {
			if err := m.likesConsumer.Consume(ctx, []string{topic}, m.likesHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Comment Consumer
	go func() {
		topic := cfg.KafkaCommentConsumer.Topic
		log.Info("Comment consumer started", "topic", topic)
		for {
			if err := m.commentsConsumer.Consume(ctx, []string{topic}, m.commentsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.savesConsumer.Close(); err != nil {
		log.Error("Failed to close save consumer", "err", err)
	}
	if err := m.likesConsumer.Close(); err != nil {
		log.Error("Failed to close like consumer", "err", err)
	}
	if err := m.commentsConsumer.Close(); err != nil {
		log.Error("Failed to close comment consumer", "err", err)
	}

	return nil
}
