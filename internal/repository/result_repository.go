package repository

import (
	"context"
	"fmt"
	"log/slog"

	"ozzus/scicalc/internal/domain"
)

type ResultRepository interface {
	SendResult(ctx context.Context, result domain.CalculationResult) error
}

// ResultPublisher is satisfied by kafka.Producer.
type ResultPublisher interface {
	PublishEvent(ctx context.Context, key string, event interface{}) error
	Topic() string
}

type KafkaResultRepository struct {
	resultsProducer ResultPublisher
	log             *slog.Logger
}

func NewKafkaResultRepository(resultsProducer ResultPublisher, log *slog.Logger) ResultRepository {
	return &KafkaResultRepository{
		resultsProducer: resultsProducer,
		log:             log,
	}
}

func (r *KafkaResultRepository) SendResult(ctx context.Context, result domain.CalculationResult) error {
	if err := r.resultsProducer.PublishEvent(ctx, result.CalculationID, result); err != nil {
		return fmt.Errorf("failed to publish result: %w", err)
	}

	r.log.Debug("sent calculation result",
		"calculation_id", result.CalculationID,
		"topic", r.resultsProducer.Topic(),
		"status", result.Status,
	)
	return nil
}
