package service

import (
	"context"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/repository"
)

// AssignmentService maintains which staff serve each zone and activity and
// derives each photographer's client queue from it.
type AssignmentService struct {
	zones       repository.ZoneRepository
	activities  repository.ActivityRepository
	ambulant    repository.AmbulantClientRepository
	attendees   repository.ActivityClientRepository
	denormalize *Denormalizer
}

// AssignmentDependencies bundles repositories.
type AssignmentDependencies struct {
	ZoneRepo           repository.ZoneRepository
	ActivityRepo       repository.ActivityRepository
	AmbulantClientRepo repository.AmbulantClientRepository
	ActivityClientRepo repository.ActivityClientRepository
	Denormalizer       *Denormalizer
}

// NewAssignmentService creates the service.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	return &AssignmentService{
		zones:       deps.ZoneRepo,
		activities:  deps.ActivityRepo,
		ambulant:    deps.AmbulantClientRepo,
		attendees:   deps.ActivityClientRepo,
		denormalize: deps.Denormalizer,
	}
}

// StaffQueue is every client a photographer is currently allowed to serve.
type StaffQueue struct {
	AmbulantClients []AmbulantClientView `json:"clientesAmbulantes"`
	ActivityClients []ActivityClientView `json:"clientesActividades"`
}

func assignmentPatch(staffIDs []string) repository.Patch {
	if staffIDs == nil {
		staffIDs = []string{}
	}
	return repository.Patch{"fotografosAsignados": staffIDs}
}

// AssignZone replaces the zone's staff list. Ids are stored as given.
func (s *AssignmentService) AssignZone(ctx context.Context, zoneID string, staffIDs []string) (*domain.Zone, error) {
	return s.zones.Update(ctx, zoneID, assignmentPatch(staffIDs))
}

// AssignActivity replaces the activity's staff list. Ids are stored as given.
func (s *AssignmentService) AssignActivity(ctx context.Context, activityID string, staffIDs []string) (*ActivityView, error) {
	activity, err := s.activities.Update(ctx, activityID, assignmentPatch(staffIDs))
	if err != nil {
		return nil, err
	}
	views, err := s.denormalize.Activities(ctx, []domain.Activity{*activity})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// AssignedZones lists the active zones naming staffID.
func (s *AssignmentService) AssignedZones(ctx context.Context, staffID string) ([]domain.Zone, error) {
	if staffID == "" {
		return []domain.Zone{}, nil
	}
	return s.zones.List(ctx, repository.ZoneFilter{ActiveOnly: true, StaffID: staffID})
}

// AssignedActivities lists the active activities naming staffID.
func (s *AssignmentService) AssignedActivities(ctx context.Context, staffID string) ([]ActivityView, error) {
	if staffID == "" {
		return []ActivityView{}, nil
	}
	items, err := s.activities.List(ctx, repository.ActivityFilter{ActiveOnly: true, StaffID: staffID})
	if err != nil {
		return nil, err
	}
	return s.denormalize.Activities(ctx, items)
}

// AmbulantClientsForStaff returns the clients of every active zone naming staffID.
// An unassigned staff id yields an empty list.
func (s *AssignmentService) AmbulantClientsForStaff(ctx context.Context, staffID string) ([]AmbulantClientView, error) {
	zones, err := s.AssignedZones(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return []AmbulantClientView{}, nil
	}
	ids := make([]string, len(zones))
	for i, z := range zones {
		ids[i] = z.ID
	}
	clients, err := s.ambulant.List(ctx, repository.AmbulantClientFilter{ZoneIDs: ids})
	if err != nil {
		return nil, err
	}
	return s.denormalize.AmbulantClients(ctx, clients)
}

// ActivityClientsForStaff returns the clients of every active activity naming staffID.
func (s *AssignmentService) ActivityClientsForStaff(ctx context.Context, staffID string) ([]ActivityClientView, error) {
	if staffID == "" {
		return []ActivityClientView{}, nil
	}
	activities, err := s.activities.List(ctx, repository.ActivityFilter{ActiveOnly: true, StaffID: staffID})
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return []ActivityClientView{}, nil
	}
	ids := make([]string, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
	}
	clients, err := s.attendees.List(ctx, repository.ActivityClientFilter{ActivityIDs: ids})
	if err != nil {
		return nil, err
	}
	return s.denormalize.ActivityClients(ctx, clients)
}

// ClientsForStaff combines both queues.
func (s *AssignmentService) ClientsForStaff(ctx context.Context, staffID string) (*StaffQueue, error) {
	ambulant, err := s.AmbulantClientsForStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	attendees, err := s.ActivityClientsForStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return &StaffQueue{AmbulantClients: ambulant, ActivityClients: attendees}, nil
}
