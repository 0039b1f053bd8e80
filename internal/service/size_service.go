package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/logx"
	"github.com/yusufkecer/unshakn-backend/internal/metrics"
	"github.com/yusufkecer/unshakn-backend/internal/sizing"
)

type EstimateRecorder interface {
	Create(ctx context.Context, e *domain.SizeEstimate) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.SizeEstimate, error)
}

const (
	DefaultEstimateListLimit = 50
	MaxEstimateListLimit     = 500
)

// SizeService wraps the estimator with the storefront's loading delay,
// metrics and the estimate log.
type SizeService struct {
	estimator *sizing.Estimator
	recorder  EstimateRecorder
	metrics   *metrics.Metrics
	delay     time.Duration
	now       func() time.Time
}

func NewSizeService(
	estimator *sizing.Estimator,
	recorder EstimateRecorder,
	m *metrics.Metrics,
	delay time.Duration,
) *SizeService {
	return &SizeService{
		estimator: estimator,
		recorder:  recorder,
		metrics:   m,
		delay:     delay,
		now:       time.Now,
	}
}

// Estimate waits for the configured delay, then returns the estimator's
// recommendation. The only error is ctx ending before the delay elapses.
func (s *SizeService) Estimate(ctx context.Context, height, weight float64) (domain.SizeRecommendation, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return domain.SizeRecommendation{}, ctx.Err()
		case <-t.C:
		}
	}

	rec := s.estimator.Estimate(height, weight)
	s.metrics.ObserveEstimate(rec)

	entry := &domain.SizeEstimate{
		RequestID: logx.TraceIDFromContext(ctx),
		Height:    height,
		Weight:    weight,
		BMI:       sizing.BMI(height, weight),
		Size:      rec.Size,
		BodyType:  rec.BodyType,
		Matched:   rec.Matched,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.recorder.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.metrics.EstimateLogErrors.Inc()
		logx.FromContext(ctx).Warn("failed to record size estimate", logx.Error(err))
	} else {
		logx.FromContext(ctx).Debug("size estimated",
			slog.String("size", string(rec.Size)),
			slog.String("body_type", string(rec.BodyType)),
			slog.Bool("matched", rec.Matched),
		)
	}

	return rec, nil
}

func (s *SizeService) Chart() []domain.SizeRule {
	return s.estimator.Rules()
}

func (s *SizeService) FitTips() map[domain.BodyType]string {
	tips := make(map[domain.BodyType]string, len(domain.BodyTypes))
	for _, bt := range domain.BodyTypes {
		tips[bt] = s.estimator.FitTip(bt)
	}
	return tips
}

// RecentEstimates lists the newest log entries; limit is clamped to
// [1, MaxEstimateListLimit] with DefaultEstimateListLimit for zero.
func (s *SizeService) RecentEstimates(ctx context.Context, limit int) ([]domain.SizeEstimate, error) {
	switch {
	case limit <= 0:
		limit = DefaultEstimateListLimit
	case limit > MaxEstimateListLimit:
		limit = MaxEstimateListLimit
	}
	return s.recorder.ListRecent(ctx, limit)
}
