package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/events"
	"github.com/spec-kit/fotos-express/internal/repository"
	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

// CatalogService manages zones, businesses and activities.
type CatalogService struct {
	zones       repository.ZoneRepository
	businesses  repository.BusinessRepository
	activities  repository.ActivityRepository
	denormalize *Denormalizer
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// CatalogDependencies bundles repositories.
type CatalogDependencies struct {
	ZoneRepo     repository.ZoneRepository
	BusinessRepo repository.BusinessRepository
	ActivityRepo repository.ActivityRepository
	Denormalizer *Denormalizer
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewCatalogService creates the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		zones:       deps.ZoneRepo,
		businesses:  deps.BusinessRepo,
		activities:  deps.ActivityRepo,
		denormalize: deps.Denormalizer,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
	}
}

// ListZones returns every zone, or only active ones.
func (s *CatalogService) ListZones(ctx context.Context, activeOnly bool) ([]domain.Zone, error) {
	return s.zones.List(ctx, repository.ZoneFilter{ActiveOnly: activeOnly})
}

// CreateZone stores a new zone with a generated id.
func (s *CatalogService) CreateZone(ctx context.Context, zone *domain.Zone) (*domain.Zone, error) {
	if err := s.zones.Create(ctx, zone); err != nil {
		return nil, apperrors.MapError(err)
	}
	return zone, nil
}

// UpdateZone replaces the fields present in patch.
func (s *CatalogService) UpdateZone(ctx context.Context, id string, patch repository.Patch) (*domain.Zone, error) {
	return s.zones.Update(ctx, id, patch)
}

// DeleteZone removes a zone. Clients registered in it keep the dangling reference.
func (s *CatalogService) DeleteZone(ctx context.Context, id string) error {
	return s.zones.Delete(ctx, id)
}

// ListBusinesses returns every business, or only active ones.
func (s *CatalogService) ListBusinesses(ctx context.Context, activeOnly bool) ([]domain.Business, error) {
	return s.businesses.List(ctx, repository.BusinessFilter{ActiveOnly: activeOnly})
}

// CreateBusiness stores a new business with a generated id.
func (s *CatalogService) CreateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	if err := s.businesses.Create(ctx, business); err != nil {
		return nil, apperrors.MapError(err)
	}
	return business, nil
}

// UpdateBusiness replaces the fields present in patch.
func (s *CatalogService) UpdateBusiness(ctx context.Context, id string, patch repository.Patch) (*domain.Business, error) {
	return s.businesses.Update(ctx, id, patch)
}

// DeleteBusiness removes the business and then its activities. The two writes
// are not atomic; a failure after the first leaves orphaned activities.
func (s *CatalogService) DeleteBusiness(ctx context.Context, id string) error {
	if err := s.businesses.Delete(ctx, id); err != nil {
		return err
	}
	removed, err := s.activities.DeleteByBusiness(ctx, id)
	if err != nil {
		s.logger.Error("cascade delete of activities failed",
			zap.String("business_id", id),
			zap.Error(err))
		return apperrors.MapError(err)
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventBusinessDeleted, id, "", events.BusinessDeletedPayload{ActivitiesDeleted: removed}))
	return nil
}

// ActivityQuery narrows activity listings.
type ActivityQuery struct {
	ActiveOnly bool
	BusinessID string
}

// ListActivities returns activities with their business name.
func (s *CatalogService) ListActivities(ctx context.Context, query ActivityQuery) ([]ActivityView, error) {
	items, err := s.activities.List(ctx, repository.ActivityFilter{ActiveOnly: query.ActiveOnly, BusinessID: query.BusinessID})
	if err != nil {
		return nil, err
	}
	return s.denormalize.Activities(ctx, items)
}

// CreateActivity stores an activity under an existing business.
func (s *CatalogService) CreateActivity(ctx context.Context, activity *domain.Activity) (*ActivityView, error) {
	business, err := s.businesses.GetByID(ctx, activity.BusinessID)
	if err != nil {
		return nil, err
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &ActivityView{Activity: *activity, BusinessName: business.Name}, nil
}

// UpdateActivity replaces the fields present in patch. negocioId is not re-validated.
func (s *CatalogService) UpdateActivity(ctx context.Context, id string, patch repository.Patch) (*ActivityView, error) {
	activity, err := s.activities.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return s.activityView(ctx, activity)
}

// DeleteActivity removes an activity.
func (s *CatalogService) DeleteActivity(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

func (s *CatalogService) activityView(ctx context.Context, activity *domain.Activity) (*ActivityView, error) {
	views, err := s.denormalize.Activities(ctx, []domain.Activity{*activity})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
