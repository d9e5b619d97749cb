package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/metrics"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/models"
)

const (
	programCatalogCacheKey = "catalog:programs"
	programCatalogCacheTTL = 5 * time.Minute
)

type programCatalog interface {
	ListAll(ctx context.Context) ([]models.Program, error)
}

type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

// catalogCache is satisfied by cache.Cache; a nil cache degrades to direct
// catalog reads.
type catalogCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RecommendationService struct {
	programRepo programCatalog
	profileRepo profileReader
	cache       catalogCache
	logger      *zap.Logger
}

func NewRecommendationService(
	programRepo programCatalog,
	profileRepo profileReader,
	cache catalogCache,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		programRepo: programRepo,
		profileRepo: profileRepo,
		cache:       cache,
		logger:      logger,
	}
}

// NewRecommendationServiceWithoutCache builds the service with no catalog
// cache; every suggestion request reads the catalog from the store.
func NewRecommendationServiceWithoutCache(
	programRepo programCatalog,
	profileRepo profileReader,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		programRepo: programRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// SuggestForUser fetches the caller's profile and the program catalog, then
// delegates ranking to SuggestPrograms. A missing profile is valid input and
// selects the documented no-profile fallback.
func (s *RecommendationService) SuggestForUser(ctx context.Context, userID int64, limit int) ([]models.ProgramSuggestion, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		profile = nil
	}

	programs, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := SuggestPrograms(profile, programs, limit)
	metrics.SuggestionsServed.Inc()
	return suggestions, nil
}

// InvalidateCatalog drops the cached catalog after a program write.
func (s *RecommendationService) InvalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, programCatalogCacheKey); err != nil {
		s.logger.Warn("program catalog cache invalidation failed", zap.Error(err))
	}
}

func (s *RecommendationService) loadCatalog(ctx context.Context) ([]models.Program, error) {
	if s.cache != nil {
		var cached []models.Program
		if err := s.cache.Get(ctx, programCatalogCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	programs, err := s.programRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, programCatalogCacheKey, programs, programCatalogCacheTTL); err != nil {
			s.logger.Warn("program catalog cache write failed", zap.Error(err))
		}
	}
	return programs, nil
}
