package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"ozzus/scicalc/internal/calculator"
	"ozzus/scicalc/internal/domain"
	"ozzus/scicalc/internal/lib/logger/sl"
	"ozzus/scicalc/internal/repository"

	"github.com/google/uuid"
)

var ErrWorkerNotConfigured = errors.New("calculation worker is not configured")

type Calculator interface {
	Calculate(op domain.Operation, operands ...any) (float64, error)
}

type CalculationService struct {
	calc         Calculator
	requestRepo  repository.RequestRepository
	resultRepo   repository.ResultRepository
	log          *slog.Logger
	serviceID    string
	pollInterval time.Duration
	isRunning    atomic.Bool
	processed    atomic.Int64
	failed       atomic.Int64
}

type Config struct {
	ServiceID    string
	PollInterval time.Duration
}

// NewCalculationService builds the service. requestRepo and resultRepo may be
// nil when only synchronous evaluation (HTTP, CLI) is needed.
func NewCalculationService(
	calc Calculator,
	requestRepo repository.RequestRepository,
	resultRepo repository.ResultRepository,
	log *slog.Logger,
	config Config,
) *CalculationService {
	if config.PollInterval == 0 {
		config.PollInterval = 5 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}

	return &CalculationService{
		calc:         calc,
		requestRepo:  requestRepo,
		resultRepo:   resultRepo,
		log:          log.With(slog.String("service_id", config.ServiceID)),
		serviceID:    config.ServiceID,
		pollInterval: config.PollInterval,
	}
}

// Evaluate runs one calculation and describes the outcome. The returned
// error is the calculator error, if any; the result records it as well.
func (s *CalculationService) Evaluate(calc domain.Calculation) (domain.CalculationResult, error) {
	if calc.ID == "" {
		calc.ID = uuid.NewString()
	}

	result := domain.CalculationResult{
		CalculationID: calc.ID,
		Operation:     calc.Operation,
		Operands:      calc.Operands,
	}

	value, err := s.calc.Calculate(calc.Operation, calc.Operands...)
	result.Timestamp = time.Now()

	if err != nil {
		s.failed.Add(1)
		result.Status = domain.StatusFailed
		result.ErrorKind = string(calculator.KindOf(err))
		result.Error = err.Error()
		return result, err
	}

	s.processed.Add(1)
	result.Status = domain.StatusSuccess
	result.ResultText = strconv.FormatFloat(value, 'g', -1, 64)
	if !math.IsInf(value, 0) && !math.IsNaN(value) {
		result.Result = &value
	}

	return result, nil
}

func (s *CalculationService) WorkerConfigured() bool {
	return s.requestRepo != nil && s.resultRepo != nil
}

// Start polls the request repository until ctx is cancelled.
func (s *CalculationService) Start(ctx context.Context) error {
	if !s.WorkerConfigured() {
		return ErrWorkerNotConfigured
	}

	s.isRunning.Store(true)
	defer s.isRunning.Store(false)

	s.log.Info("calculation worker started", "poll_interval", s.pollInterval)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.processRequests(ctx); err != nil {
				s.log.Error("failed to process requests", sl.Err(err))
			}
		case <-ctx.Done():
			s.log.Info("calculation worker stopped")
			return nil
		}
	}
}

func (s *CalculationService) processRequests(ctx context.Context) error {
	s.log.Debug("fetching calculation requests")

	requests, err := s.requestRepo.FetchRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch requests: %w", err)
	}

	if len(requests) == 0 {
		return nil
	}

	s.log.Info("found requests to process", "request_count", len(requests))

	var processedCount, skippedCount int

	for _, req := range requests {
		if s.tryProcessRequest(ctx, req) {
			if err := s.requestRepo.AckRequest(ctx, req.ID); err != nil {
				s.log.Error("failed to ack request", "calculation_id", req.ID, sl.Err(err))
			}
			processedCount++
			continue
		}

		s.requestRepo.NackRequest(req.ID)
		skippedCount++
	}

	s.log.Info("requests processing summary",
		"total", len(requests),
		"processed", processedCount,
		"skipped", skippedCount,
	)

	return nil
}

// tryProcessRequest reports whether the request was handled and its result
// delivered. Calculator errors still count as handled: the failure is the
// result.
func (s *CalculationService) tryProcessRequest(ctx context.Context, req domain.Calculation) bool {
	result, err := s.Evaluate(req)
	if err != nil {
		s.log.Warn("calculation failed",
			"calculation_id", result.CalculationID,
			"operation", req.Operation,
			"error_kind", result.ErrorKind,
			sl.Err(err),
		)
	}

	if err := s.resultRepo.SendResult(ctx, result); err != nil {
		s.log.Error("failed to send result", "calculation_id", result.CalculationID, sl.Err(err))
		return false
	}

	return true
}

func (s *CalculationService) HealthCheck(_ context.Context) error {
	if s.WorkerConfigured() && !s.isRunning.Load() {
		return fmt.Errorf("calculation worker is not running")
	}

	return nil
}

func (s *CalculationService) GetStatus() map[string]interface{} {
	status := "RUNNING"
	switch {
	case !s.WorkerConfigured():
		status = "RUNNING_NO_WORKER"
	case !s.isRunning.Load():
		status = "STOPPED"
	}

	return map[string]interface{}{
		"service_id":        s.serviceID,
		"worker_configured": s.WorkerConfigured(),
		"worker_running":    s.isRunning.Load(),
		"poll_interval":     s.pollInterval.String(),
		"processed":         s.processed.Load(),
		"failed":            s.failed.Load(),
		"status":            status,
	}
}
