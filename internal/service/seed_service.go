package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/auth"
	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/repository"
)

// SeedService replaces all collections with demo data.
type SeedService struct {
	repos  *repository.Repositories
	logger *zap.Logger
	now    func() time.Time
}

// NewSeedService creates the service.
func NewSeedService(repos *repository.Repositories, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{repos: repos, logger: logger, now: time.Now}
}

// SeedResult summarizes a seed run.
type SeedResult struct {
	Message string         `json:"message"`
	Counts  map[string]int `json:"counts"`
}

type clearer interface {
	Clear(ctx context.Context) error
}

// Seed clears every collection and inserts the demo dataset.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	r := s.repos
	for _, c := range []clearer{
		r.Zones, r.Businesses, r.Activities, r.AmbulantClients,
		r.ActivityClients, r.ServiceRequests, r.StaffApplications, r.StaffUsers,
	} {
		if err := c.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear: %w", err)
		}
	}

	counts := map[string]int{}
	now := s.now().UTC()

	for _, u := range seedStaffUsers(now) {
		user := u
		if err := r.StaffUsers.Insert(ctx, &user); err != nil {
			return nil, err
		}
		counts["staffUsers"]++
	}
	for _, z := range seedZones() {
		zone := z
		if err := r.Zones.Insert(ctx, &zone); err != nil {
			return nil, err
		}
		counts["zones"]++
	}
	for _, b := range seedBusinesses() {
		business := b
		if err := r.Businesses.Insert(ctx, &business); err != nil {
			return nil, err
		}
		counts["businesses"]++
	}
	for _, a := range seedActivities() {
		activity := a
		if err := r.Activities.Insert(ctx, &activity); err != nil {
			return nil, err
		}
		counts["activities"]++
	}
	for _, c := range seedAmbulantClients() {
		client := c
		if err := r.AmbulantClients.Insert(ctx, &client); err != nil {
			return nil, err
		}
		counts["ambulantClients"]++
	}
	for _, c := range seedActivityClients() {
		client := c
		if err := r.ActivityClients.Insert(ctx, &client); err != nil {
			return nil, err
		}
		counts["activityClients"]++
	}
	request := seedServiceRequest()
	if err := r.ServiceRequests.Insert(ctx, &request); err != nil {
		return nil, err
	}
	counts["serviceRequests"]++
	application := seedApplication()
	if err := r.StaffApplications.Insert(ctx, &application); err != nil {
		return nil, err
	}
	counts["staffApplications"]++

	s.logger.Info("demo data seeded", zap.Any("counts", counts))
	return &SeedResult{Message: "Data seeded successfully", Counts: counts}, nil
}

func seedStaffUsers(now time.Time) []domain.StaffUser {
	staffHash := auth.LegacyDigest("Fotosexpress@")
	ziuHash := auth.LegacyDigest("Fotosexpresspr01@")
	return []domain.StaffUser{
		{
			ID:           "SU001",
			Email:        "staff@fotosexpress.com",
			Name:         "Staff Fotos Express",
			Phone:        "787-000-0001",
			IsActive:     true,
			CreatedAt:    now,
			ActivatedAt:  &now,
			PasswordHash: &staffHash,
		},
		{
			ID:           "SU002",
			Email:        "ziu@fotosexpresspr.com",
			Name:         "Ziu",
			Phone:        "787-000-0002",
			IsActive:     true,
			CreatedAt:    now,
			ActivatedAt:  &now,
			PasswordHash: &ziuHash,
		},
	}
}

func seedZones() []domain.Zone {
	return []domain.Zone{
		{ID: "Z01", Name: "Isabela", Description: "Playa Jobos y alrededores", Active: true, AssignedStaff: []string{"SU002"}},
		{ID: "Z02", Name: "Viejo San Juan", Description: "Paseo de la Princesa", Active: true, AssignedStaff: []string{"SU001"}},
		{ID: "Z03", Name: "Rincón", Description: "Temporada de invierno", Active: false, AssignedStaff: []string{}},
	}
}

func seedBusinesses() []domain.Business {
	return []domain.Business{
		{ID: "N01", Name: "Hotel El Conquistador", Address: "Fajardo, PR", Phone: "787-863-1000", Active: true},
		{ID: "N02", Name: "Castillo Serrallés", Address: "Ponce, PR", Phone: "787-259-1774", Active: true},
	}
}

func seedActivities() []domain.Activity {
	return []domain.Activity{
		{ID: "A01", Name: "Noche de gala", BusinessID: "N01", Description: "Cena anual", Date: "2025-03-15", Active: true, AssignedStaff: []string{"SU002"}},
		{ID: "A02", Name: "Tour del castillo", BusinessID: "N02", Date: "2025-04-02", Active: true, AssignedStaff: []string{}},
	}
}

func seedAmbulantClients() []domain.AmbulantClient {
	return []domain.AmbulantClient{
		{
			ID:               "CA01",
			Name:             "Carla Rivera",
			Phone:            "3234764379",
			Instagram:        "@carla.riv",
			AcceptsMarketing: true,
			ZoneID:           "Z01",
			Status:           domain.ClientStatusServed,
			ServedBy:         "SU002",
			UploadedPhotos: []string{
				"https://picsum.photos/id/10/800/1000",
				"https://picsum.photos/id/11/800/1000",
				"https://picsum.photos/id/12/800/1000",
			},
			RegisteredAt: "2025-02-10",
		},
		{
			ID:           "CA02",
			Name:         "Marcos Soto",
			Phone:        "7875550123",
			Instagram:    "@marcos_pro",
			ZoneID:       "Z01",
			Status:       domain.ClientStatusWaiting,
			RegisteredAt: "2025-02-12",
		},
		{
			ID:           "CA03",
			Name:         "Lucía Ortiz",
			Phone:        "7875550199",
			ZoneID:       "Z02",
			Status:       domain.ClientStatusWaiting,
			RegisteredAt: "2025-02-14",
		},
	}
}

func seedActivityClients() []domain.ActivityClient {
	return []domain.ActivityClient{
		{
			ID:           "CN01",
			Name:         "Andrés Colón",
			Phone:        "7875551010",
			BusinessID:   "N01",
			ActivityID:   "A01",
			Status:       domain.ClientStatusWaiting,
			RegisteredAt: "2025-03-15",
		},
	}
}

func seedServiceRequest() domain.ServiceRequest {
	return domain.ServiceRequest{
		ID:   "SR01",
		Type: "boda",
		Details: domain.ServiceRequestDetails{
			Location:    "exterior",
			Description: "Boda en la playa Isabela",
			EventDate:   "2025-05-20",
			Hours:       6,
			Headcount:   100,
		},
		Contact: domain.ServiceRequestContact{
			Name:  "Valeria Martinez",
			Phone: "787-111-2222",
			Email: "valeria@email.com",
		},
		Status:      domain.ServiceRequestPending,
		RequestedAt: "2025-02-01",
	}
}

func seedApplication() domain.StaffApplication {
	return domain.StaffApplication{
		ID:              "P01",
		Name:            "Javier Rodriguez",
		Email:           "javier@cam.pr",
		Phone:           "787-999-8888",
		Experience:      "5 años en eventos sociales y bodas.",
		Equipment:       "Sony A7IV, Sigma 24-70mm",
		Specialties:     []string{"Evento"},
		ReferencePhotos: []string{},
		Status:          domain.ApplicationPending,
		SubmittedAt:     "2025-02-05",
	}
}
