package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/events"
	"github.com/spec-kit/fotos-express/internal/repository"
	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

// ClientService manages ambulant and activity client leads.
type ClientService struct {
	ambulant    repository.AmbulantClientRepository
	attendees   repository.ActivityClientRepository
	zones       repository.ZoneRepository
	businesses  repository.BusinessRepository
	activities  repository.ActivityRepository
	denormalize *Denormalizer
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	now         func() time.Time
}

// ClientDependencies bundles repositories.
type ClientDependencies struct {
	AmbulantClientRepo repository.AmbulantClientRepository
	ActivityClientRepo repository.ActivityClientRepository
	ZoneRepo           repository.ZoneRepository
	BusinessRepo       repository.BusinessRepository
	ActivityRepo       repository.ActivityRepository
	Denormalizer       *Denormalizer
	Dispatcher         events.Dispatcher
	Logger             *zap.Logger
	Clock              func() time.Time
}

// NewClientService creates the service.
func NewClientService(deps ClientDependencies) *ClientService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &ClientService{
		ambulant:    deps.AmbulantClientRepo,
		attendees:   deps.ActivityClientRepo,
		zones:       deps.ZoneRepo,
		businesses:  deps.BusinessRepo,
		activities:  deps.ActivityRepo,
		denormalize: deps.Denormalizer,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
		now:         clock,
	}
}

// PhotoDelivery marks a client as served.
type PhotoDelivery struct {
	Photos  []string
	StaffID string
}

func (p PhotoDelivery) patch() repository.Patch {
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	return repository.Patch{
		"status":        domain.ClientStatusServed,
		"atendidoPorId": p.StaffID,
		"fotosSubidas":  photos,
	}
}

func (s *ClientService) today() string {
	return s.now().UTC().Format(domain.RegistrationDateLayout)
}

// ListAmbulantClients returns ambulant clients, optionally for one zone.
func (s *ClientService) ListAmbulantClients(ctx context.Context, zoneID string) ([]AmbulantClientView, error) {
	items, err := s.ambulant.List(ctx, repository.AmbulantClientFilter{ZoneID: zoneID})
	if err != nil {
		return nil, err
	}
	return s.denormalize.AmbulantClients(ctx, items)
}

// GetAmbulantClient fetches one client by id.
func (s *ClientService) GetAmbulantClient(ctx context.Context, id string) (*AmbulantClientView, error) {
	client, err := s.ambulant.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.ambulantView(ctx, client)
}

// FindAmbulantClientByPhone returns the first client registered with phone.
func (s *ClientService) FindAmbulantClientByPhone(ctx context.Context, phone string) (*AmbulantClientView, error) {
	client, err := s.ambulant.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return s.ambulantView(ctx, client)
}

// CreateAmbulantClient registers a lead in an existing zone.
func (s *ClientService) CreateAmbulantClient(ctx context.Context, client *domain.AmbulantClient) (*AmbulantClientView, error) {
	zone, err := s.zones.GetByID(ctx, client.ZoneID)
	if err != nil {
		return nil, err
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusWaiting
	}
	client.RegisteredAt = s.today()
	if err := s.ambulant.Create(ctx, client); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &AmbulantClientView{AmbulantClient: *client, ZoneName: zone.Name}, nil
}

// UpdateAmbulantClient replaces the fields present in patch.
func (s *ClientService) UpdateAmbulantClient(ctx context.Context, id string, patch repository.Patch) (*AmbulantClientView, error) {
	client, err := s.ambulant.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return s.ambulantView(ctx, client)
}

// DeliverAmbulantPhotos records uploaded photos and marks the client served.
func (s *ClientService) DeliverAmbulantPhotos(ctx context.Context, id string, delivery PhotoDelivery) (*AmbulantClientView, error) {
	client, err := s.ambulant.Update(ctx, id, delivery.patch())
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventClientServed, id, delivery.StaffID,
		events.ClientServedPayload{Kind: "ambulant", PhotoCount: len(delivery.Photos)}))
	return s.ambulantView(ctx, client)
}

// DeleteAmbulantClient removes a client.
func (s *ClientService) DeleteAmbulantClient(ctx context.Context, id string) error {
	return s.ambulant.Delete(ctx, id)
}

// ActivityClientQuery narrows activity client listings and phone lookups.
type ActivityClientQuery struct {
	BusinessID string
	ActivityID string
}

func (q ActivityClientQuery) filter() repository.ActivityClientFilter {
	return repository.ActivityClientFilter{BusinessID: q.BusinessID, ActivityID: q.ActivityID}
}

// ListActivityClients returns activity clients, optionally for one activity.
func (s *ClientService) ListActivityClients(ctx context.Context, query ActivityClientQuery) ([]ActivityClientView, error) {
	items, err := s.attendees.List(ctx, query.filter())
	if err != nil {
		return nil, err
	}
	return s.denormalize.ActivityClients(ctx, items)
}

// GetActivityClient fetches one client by id.
func (s *ClientService) GetActivityClient(ctx context.Context, id string) (*ActivityClientView, error) {
	client, err := s.attendees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.activityClientView(ctx, client)
}

// FindActivityClientByPhone returns the first client with phone, optionally
// scoped to a business and activity.
func (s *ClientService) FindActivityClientByPhone(ctx context.Context, phone string, scope ActivityClientQuery) (*ActivityClientView, error) {
	client, err := s.attendees.FindByPhone(ctx, phone, scope.filter())
	if err != nil {
		return nil, err
	}
	return s.activityClientView(ctx, client)
}

// CreateActivityClient registers a lead at an existing business and activity.
func (s *ClientService) CreateActivityClient(ctx context.Context, client *domain.ActivityClient) (*ActivityClientView, error) {
	business, err := s.businesses.GetByID(ctx, client.BusinessID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activities.GetByID(ctx, client.ActivityID)
	if err != nil {
		return nil, err
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusWaiting
	}
	client.RegisteredAt = s.today()
	if err := s.attendees.Create(ctx, client); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &ActivityClientView{ActivityClient: *client, BusinessName: business.Name, ActivityName: activity.Name}, nil
}

// UpdateActivityClient replaces the fields present in patch.
func (s *ClientService) UpdateActivityClient(ctx context.Context, id string, patch repository.Patch) (*ActivityClientView, error) {
	client, err := s.attendees.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return s.activityClientView(ctx, client)
}

// DeliverActivityPhotos records uploaded photos and marks the client served.
func (s *ClientService) DeliverActivityPhotos(ctx context.Context, id string, delivery PhotoDelivery) (*ActivityClientView, error) {
	client, err := s.attendees.Update(ctx, id, delivery.patch())
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventClientServed, id, delivery.StaffID,
		events.ClientServedPayload{Kind: "activity", PhotoCount: len(delivery.Photos)}))
	return s.activityClientView(ctx, client)
}

// DeleteActivityClient removes a client.
func (s *ClientService) DeleteActivityClient(ctx context.Context, id string) error {
	return s.attendees.Delete(ctx, id)
}

func (s *ClientService) ambulantView(ctx context.Context, client *domain.AmbulantClient) (*AmbulantClientView, error) {
	views, err := s.denormalize.AmbulantClients(ctx, []domain.AmbulantClient{*client})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *ClientService) activityClientView(ctx context.Context, client *domain.ActivityClient) (*ActivityClientView, error) {
	views, err := s.denormalize.ActivityClients(ctx, []domain.ActivityClient{*client})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
