package ratingservice

import (
	"context"
	"errors"
	"math"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/metrics"
)

var (
	ErrSelfRating      = errors.New("can't rate yourself")
	ErrNotTenant       = errors.New("target user is not a tenant")
	ErrAlreadyReviewed = errors.New("property already reviewed by this tenant")
)

type Repo interface {
	CreateReview(ctx context.Context, rev *domain.Review) (*domain.Review, error)
	ListReviewsByProperty(ctx context.Context, propertyID int) ([]domain.Review, error)
	AverageReviewRating(ctx context.Context, propertyID int) (*float64, error)
	AverageLandlordReviewRating(ctx context.Context, landlordID int) (*float64, error)
	AverageCommentSentiment(ctx context.Context, propertyID int) (*float64, error)
	ListUnratedComments(ctx context.Context, limit int) ([]domain.Comment, error)
	SetCommentAIRating(ctx context.Context, commentID int, rating float64) error
	CreateTenantRating(ctx context.Context, tr *domain.TenantRating) (*domain.TenantRating, error)
	ListTenantRatings(ctx context.Context, tenantID int) ([]domain.TenantRating, error)
	AverageTenantRating(ctx context.Context, tenantID int) (*float64, error)
}

type ProfileRepo interface {
	GetLandlordProfile(ctx context.Context, userID int) (*domain.LandlordProfile, error)
	UpdateLandlordScores(ctx context.Context, userID int, rating, completeness float64) error
	UpdateTenantRating(ctx context.Context, userID int, rating float64) error
	ListLandlordUserIDs(ctx context.Context) ([]int, error)
}

type PropertyRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Property, error)
	ListIDs(ctx context.Context) ([]int, error)
	UpdateOverallRating(ctx context.Context, id int, rating float64) error
}

type Sentiment interface {
	RateSentiment(ctx context.Context, text string) (float64, error)
}

type Service struct {
	ratingRepo   Repo
	profileRepo  ProfileRepo
	propertyRepo PropertyRepo
	sentiment    Sentiment
}

func New(ratingRepo Repo, profileRepo ProfileRepo, propertyRepo PropertyRepo, sentiment Sentiment) *Service {
	return &Service{
		ratingRepo:   ratingRepo,
		profileRepo:  profileRepo,
		propertyRepo: propertyRepo,
		sentiment:    sentiment,
	}
}

// RateTenant stores the landlord's rating and refreshes the tenant's
// average. The (landlord, tenant) pair is unique, a second attempt
// surfaces ratingrepo.ErrDuplicateRating.
func (s *Service) RateTenant(ctx context.Context, landlordID, tenantID, rating int, comment string) (*domain.TenantRating, error) {
	if landlordID == tenantID {
		return nil, ErrSelfRating
	}

	tr := &domain.TenantRating{
		LandlordID: landlordID,
		TenantID:   tenantID,
		Rating:     rating,
		Comment:    comment,
	}
	created, err := s.ratingRepo.CreateTenantRating(ctx, tr)
	if err != nil {
		return nil, err
	}

	if err := s.RecomputeTenantRating(ctx, tenantID); err != nil {
		zap.L().Error("can't refresh tenant rating", zap.Int("tenant_id", tenantID), zap.Error(err))
	}
	return created, nil
}

// RecomputeTenantRating persists the mean of all ratings for the tenant,
// rounded to 2 decimals. A tenant with no ratings keeps 0.00.
func (s *Service) RecomputeTenantRating(ctx context.Context, tenantID int) error {
	avg, err := s.ratingRepo.AverageTenantRating(ctx, tenantID)
	if err != nil {
		return err
	}
	rating := 0.0
	if avg != nil {
		rating = round(*avg, 2)
	}
	if err := s.profileRepo.UpdateTenantRating(ctx, tenantID, rating); err != nil {
		return err
	}
	metrics.RatingRecomputed("tenant")
	return nil
}

func (s *Service) ListTenantRatings(ctx context.Context, tenantID int) ([]domain.TenantRating, error) {
	return s.ratingRepo.ListTenantRatings(ctx, tenantID)
}

// Completeness weights of the optional landlord-profile fields. The
// percentage of filled weight becomes a rating bonus of at most 1 point.
var completenessWeights = []struct {
	weight float64
	filled func(*domain.LandlordProfile) bool
}{
	{1.0, func(p *domain.LandlordProfile) bool { return p.IsPhoneVerified }},
	{0.8, func(p *domain.LandlordProfile) bool { return p.IsVerified }},
	{0.8, func(p *domain.LandlordProfile) bool { return p.IsProfileComplete }},
	{0.7, func(p *domain.LandlordProfile) bool { return p.IDNumber != "" }},
	{0.7, func(p *domain.LandlordProfile) bool { return p.IDImage != "" }},
	{0.7, func(p *domain.LandlordProfile) bool { return p.ProofOfResidence != "" }},
	{0.6, func(p *domain.LandlordProfile) bool { return p.Phone != "" }},
	{0.5, func(p *domain.LandlordProfile) bool { return p.EmergencyContactName != "" }},
	{0.5, func(p *domain.LandlordProfile) bool { return p.EmergencyContactPhone != "" }},
	{0.5, func(p *domain.LandlordProfile) bool { return p.ProfileImage != "" }},
	{0.4, func(p *domain.LandlordProfile) bool { return p.AlternatePhone != "" }},
	{0.4, func(p *domain.LandlordProfile) bool { return p.DateOfBirth != nil }},
	{0.3, func(p *domain.LandlordProfile) bool { return p.MaritalStatus != "" }},
	{0.2, func(p *domain.LandlordProfile) bool { return p.AdditionalNotes != "" }},
}

// ProfileCompleteness returns the weighted percentage of populated
// landlord-profile fields.
func ProfileCompleteness(p *domain.LandlordProfile) float64 {
	var filled, total float64
	for _, w := range completenessWeights {
		total += w.weight
		if w.filled(p) {
			filled += w.weight
		}
	}
	return filled / total * 100
}

// RecomputeLandlordRating derives the landlord's rating from reviews of
// their properties plus a profile-completeness bonus:
//
//	bonus  = completeness_pct / 100        (max 1 point)
//	rating = min(5.0, round(review_mean + bonus, 1))
func (s *Service) RecomputeLandlordRating(ctx context.Context, landlordID int) error {
	profile, err := s.profileRepo.GetLandlordProfile(ctx, landlordID)
	if err != nil {
		return err
	}
	if profile == nil {
		return errors.New("landlord profile not found")
	}

	avg, err := s.ratingRepo.AverageLandlordReviewRating(ctx, landlordID)
	if err != nil {
		return err
	}

	base := 0.0
	if avg != nil {
		base = *avg
	}
	completeness := ProfileCompleteness(profile)
	bonus := completeness / 100
	rating := math.Min(5.0, round(base+bonus, 1))

	if err := s.profileRepo.UpdateLandlordScores(ctx, landlordID, rating, round(completeness, 1)); err != nil {
		return err
	}
	metrics.RatingRecomputed("landlord")
	return nil
}

// RecomputeAllLandlordRatings refreshes every landlord account and
// returns how many succeeded. Failures are per-landlord, the batch
// continues.
func (s *Service) RecomputeAllLandlordRatings(ctx context.Context) (int, error) {
	ids, err := s.profileRepo.ListLandlordUserIDs(ctx)
	if err != nil {
		return 0, err
	}

	var (
		g       errgroup.Group
		updated atomic.Int64
	)
	g.SetLimit(10)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := s.RecomputeLandlordRating(ctx, id); err != nil {
				zap.L().Error("can't recompute landlord rating", zap.Int("landlord_id", id), zap.Error(err))
				return nil
			}
			updated.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(updated.Load()), err
	}
	return int(updated.Load()), nil
}

// CreateReview stores a tenant's 1-5 review of a property and refreshes
// the dependent property and landlord ratings.
func (s *Service) CreateReview(ctx context.Context, reviewerID, propertyID, rating int, comment string) (*domain.Review, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.New("property not found")
	}

	rev := &domain.Review{
		ReviewerID: reviewerID,
		ReviewedID: property.OwnerID,
		PropertyID: propertyID,
		Rating:     rating,
		Comment:    comment,
	}
	created, err := s.ratingRepo.CreateReview(ctx, rev)
	if err != nil {
		return nil, err
	}

	if err := s.RecomputeLandlordRating(ctx, property.OwnerID); err != nil {
		zap.L().Error("can't refresh landlord rating", zap.Int("landlord_id", property.OwnerID), zap.Error(err))
	}
	if err := s.RecomputePropertyRating(ctx, propertyID); err != nil {
		zap.L().Error("can't refresh property rating", zap.Int("property_id", propertyID), zap.Error(err))
	}
	return created, nil
}

func (s *Service) ListReviews(ctx context.Context, propertyID int) ([]domain.Review, error) {
	return s.ratingRepo.ListReviewsByProperty(ctx, propertyID)
}

// blendPropertyRating weighs review average 0.5, comment sentiment 0.3
// and the owning landlord's rating 0.2. Missing components are dropped
// and the remaining weights renormalized; an unrated landlord (score 0)
// counts as missing. When the landlord score is the only signal its
// weight stays capped at 0.3 so an empty property is never carried to a
// full rating by its owner's profile.
func blendPropertyRating(reviewAvg, commentAvg *float64, landlordRating float64) float64 {
	const (
		reviewWeight   = 0.5
		commentWeight  = 0.3
		landlordWeight = 0.2
		landlordCap    = 0.3
	)

	hasLandlord := landlordRating > 0

	if reviewAvg == nil && commentAvg == nil {
		if !hasLandlord {
			return 0
		}
		return round(landlordRating*landlordCap, 1)
	}

	var sum, totalWeight float64
	if reviewAvg != nil {
		sum += *reviewAvg * reviewWeight
		totalWeight += reviewWeight
	}
	if commentAvg != nil {
		sum += *commentAvg * commentWeight
		totalWeight += commentWeight
	}
	if hasLandlord {
		sum += landlordRating * landlordWeight
		totalWeight += landlordWeight
	}

	return math.Max(0, round(sum/totalWeight, 1))
}

// ComputePropertyRating derives the blended overall rating from the
// current review, sentiment and landlord rows without persisting it.
func (s *Service) ComputePropertyRating(ctx context.Context, propertyID int) (float64, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return 0, err
	}
	if property == nil {
		return 0, errors.New("property not found")
	}

	reviewAvg, err := s.ratingRepo.AverageReviewRating(ctx, propertyID)
	if err != nil {
		return 0, err
	}
	commentAvg, err := s.ratingRepo.AverageCommentSentiment(ctx, propertyID)
	if err != nil {
		return 0, err
	}

	landlordRating := 0.0
	profile, err := s.profileRepo.GetLandlordProfile(ctx, property.OwnerID)
	if err != nil {
		return 0, err
	}
	if profile != nil {
		landlordRating = profile.CurrentRating
	}

	return blendPropertyRating(reviewAvg, commentAvg, landlordRating), nil
}

// RecomputePropertyRating persists the blended overall rating.
func (s *Service) RecomputePropertyRating(ctx context.Context, propertyID int) error {
	rating, err := s.ComputePropertyRating(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := s.propertyRepo.UpdateOverallRating(ctx, propertyID, rating); err != nil {
		return err
	}
	metrics.RatingRecomputed("property")
	return nil
}

// RecomputeAllPropertyRatings refreshes every property and returns how
// many succeeded, skipping per-property failures.
func (s *Service) RecomputeAllPropertyRatings(ctx context.Context) (int, error) {
	ids, err := s.propertyRepo.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	var (
		g       errgroup.Group
		updated atomic.Int64
	)
	g.SetLimit(10)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := s.RecomputePropertyRating(ctx, id); err != nil {
				zap.L().Error("can't recompute property rating", zap.Int("property_id", id), zap.Error(err))
				return nil
			}
			updated.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(updated.Load()), err
	}
	return int(updated.Load()), nil
}

// ScoreUnratedComments sends every unscored comment to the sentiment
// classifier. A comment whose call or parse fails is skipped and stays
// unscored for the next run.
func (s *Service) ScoreUnratedComments(ctx context.Context, limit int) (int, error) {
	comments, err := s.ratingRepo.ListUnratedComments(ctx, limit)
	if err != nil {
		return 0, err
	}

	var (
		g      errgroup.Group
		scored = make(chan int, len(comments))
	)
	g.SetLimit(5)
	for _, c := range comments {
		c := c
		g.Go(func() error {
			rating, err := s.sentiment.RateSentiment(ctx, c.Content)
			if err != nil {
				zap.L().Warn("sentiment scoring failed", zap.Int("comment_id", c.ID), zap.Error(err))
				return nil
			}
			if err := s.ratingRepo.SetCommentAIRating(ctx, c.ID, rating); err != nil {
				return nil
			}
			scored <- c.PropertyID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	close(scored)

	// refresh each affected property once
	affected := make(map[int]struct{})
	count := 0
	for propertyID := range scored {
		count++
		affected[propertyID] = struct{}{}
	}
	for propertyID := range affected {
		if err := s.RecomputePropertyRating(ctx, propertyID); err != nil {
			zap.L().Error("can't refresh property rating", zap.Int("property_id", propertyID), zap.Error(err))
		}
	}
	return count, nil
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
