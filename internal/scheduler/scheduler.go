package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sentimentBatchSize = 100

type TenancyService interface {
	SweepOverduePayments(ctx context.Context) (int, error)
}

type RatingService interface {
	RecomputeAllLandlordRatings(ctx context.Context) (int, error)
	RecomputeAllPropertyRatings(ctx context.Context) (int, error)
	ScoreUnratedComments(ctx context.Context, limit int) (int, error)
}

// Scheduler runs the periodic maintenance jobs: flagging overdue rent,
// refreshing the derived ratings and scoring comment sentiment.
type Scheduler struct {
	cron           *cron.Cron
	tenancyService TenancyService
	ratingService  RatingService
}

func New(tenancyService TenancyService, ratingService RatingService) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		tenancyService: tenancyService,
		ratingService:  ratingService,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	jobs := []struct {
		spec string
		name string
		run  func(context.Context)
	}{
		{"@hourly", "overdue rent sweep", s.sweepOverdue},
		{"0 2 * * *", "rating refresh", s.refreshRatings},
		{"*/15 * * * *", "sentiment scoring", s.scoreSentiments},
	}

	for _, j := range jobs {
		job := j
		if _, err := s.cron.AddFunc(job.spec, func() { job.run(ctx) }); err != nil {
			return err
		}
	}

	s.cron.Start()
	zap.L().Info("scheduler started", zap.Int("jobs", len(jobs)))

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
	}()
	return nil
}

func (s *Scheduler) sweepOverdue(ctx context.Context) {
	n, err := s.tenancyService.SweepOverduePayments(ctx)
	if err != nil {
		zap.L().Error("overdue rent sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		zap.L().Info("rent payments marked overdue", zap.Int("count", n))
	}
}

func (s *Scheduler) refreshRatings(ctx context.Context) {
	landlords, err := s.ratingService.RecomputeAllLandlordRatings(ctx)
	if err != nil {
		zap.L().Error("landlord rating refresh failed", zap.Error(err))
	}
	properties, err := s.ratingService.RecomputeAllPropertyRatings(ctx)
	if err != nil {
		zap.L().Error("property rating refresh failed", zap.Error(err))
	}
	zap.L().Info("ratings refreshed", zap.Int("landlords", landlords), zap.Int("properties", properties))
}

func (s *Scheduler) scoreSentiments(ctx context.Context) {
	n, err := s.ratingService.ScoreUnratedComments(ctx, sentimentBatchSize)
	if err != nil {
		zap.L().Error("sentiment scoring failed", zap.Error(err))
		return
	}
	if n > 0 {
		zap.L().Info("comments scored", zap.Int("count", n))
	}
}
