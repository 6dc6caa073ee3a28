package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ozzus/scicalc/internal/domain"
	"ozzus/scicalc/internal/lib/logger/sl"

	kafkago "github.com/segmentio/kafka-go"

	repokafka "ozzus/scicalc/internal/repository/kafka"
)

const (
	maxBatchSize     = 100
	fetchTimeout     = 5 * time.Second
	commitTimeout    = 5 * time.Second
	maxCommitRetries = 3
)

type RequestRepository interface {
	FetchRequests(ctx context.Context) ([]domain.Calculation, error)
	AckRequest(ctx context.Context, calculationID string) error
	NackRequest(calculationID string)
}

// MessageReader is satisfied by kafka.Consumer.
type MessageReader interface {
	ReadEvent(ctx context.Context, v interface{}) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type KafkaRequestRepository struct {
	consumer   MessageReader
	log        *slog.Logger
	retryDelay time.Duration

	mu sync.Mutex
	// Requests sharing an ID are acked and nacked together.
	messages map[string][]kafkago.Message
}

func NewKafkaRequestRepository(consumer MessageReader, log *slog.Logger) *KafkaRequestRepository {
	return &KafkaRequestRepository{
		consumer:   consumer,
		log:        log,
		retryDelay: 200 * time.Millisecond,
		messages:   make(map[string][]kafkago.Message),
	}
}

// FetchRequests reads up to maxBatchSize requests, waiting at most five
// seconds for the batch to fill. Messages that are not valid JSON are
// committed and skipped.
func (r *KafkaRequestRepository) FetchRequests(ctx context.Context) ([]domain.Calculation, error) {
	var requests []domain.Calculation

	timeoutCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	for len(requests) < maxBatchSize {
		if err := timeoutCtx.Err(); err != nil {
			break
		}

		var calc domain.Calculation
		msg, err := r.consumer.ReadEvent(timeoutCtx, &calc)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			if errors.Is(err, context.Canceled) {
				return requests, nil
			}
			if errors.Is(err, repokafka.ErrMalformedMessage) {
				r.log.Warn("skipping malformed calculation request",
					"partition", msg.Partition,
					"offset", msg.Offset,
					sl.Err(err),
				)
				r.commit(ctx, msg)
				continue
			}

			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		if calc.ID == "" {
			calc.ID = fmt.Sprintf("%s-%d-%d", msg.Topic, msg.Partition, msg.Offset)
		}

		r.mu.Lock()
		r.messages[calc.ID] = append(r.messages[calc.ID], msg)
		r.mu.Unlock()

		requests = append(requests, calc)
	}

	return requests, nil
}

func (r *KafkaRequestRepository) AckRequest(ctx context.Context, calculationID string) error {
	r.mu.Lock()
	msgs, ok := r.messages[calculationID]
	r.mu.Unlock()

	if !ok {
		return nil
	}

	var lastErr error

	for attempt := 0; attempt < maxCommitRetries; attempt++ {
		timeout := commitTimeout
		if deadline, ok := ctx.Deadline(); ok {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return ctx.Err()
			}
			if remaining < timeout {
				timeout = remaining
			}
		}

		commitCtx, cancel := context.WithTimeout(context.Background(), timeout)
		err := r.consumer.CommitMessages(commitCtx, msgs...)
		cancel()

		if err == nil {
			r.mu.Lock()
			delete(r.messages, calculationID)
			r.mu.Unlock()
			return nil
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}

		time.Sleep(time.Duration(attempt+1) * r.retryDelay)
	}

	return fmt.Errorf("failed to commit message: %w", lastErr)
}

func (r *KafkaRequestRepository) NackRequest(calculationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.messages, calculationID)
}

func (r *KafkaRequestRepository) commit(ctx context.Context, msg kafkago.Message) {
	commitCtx, cancel := context.WithTimeout(ctx, commitTimeout)
	defer cancel()

	if err := r.consumer.CommitMessages(commitCtx, msg); err != nil {
		r.log.Error("failed to commit skipped message", "offset", msg.Offset, sl.Err(err))
	}
}
