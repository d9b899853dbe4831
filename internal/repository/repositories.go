package repository

import "github.com/spec-kit/fotos-express/internal/persistence"

// Repositories groups every collection repository over one store.
type Repositories struct {
	Zones             ZoneRepository
	Businesses        BusinessRepository
	Activities        ActivityRepository
	AmbulantClients   AmbulantClientRepository
	ActivityClients   ActivityClientRepository
	ServiceRequests   ServiceRequestRepository
	StaffApplications StaffApplicationRepository
	StaffUsers        StaffUserRepository
}

// NewRepositories wires all repositories to store.
func NewRepositories(store persistence.DocumentStore) *Repositories {
	return &Repositories{
		Zones:             NewZoneRepository(store),
		Businesses:        NewBusinessRepository(store),
		Activities:        NewActivityRepository(store),
		AmbulantClients:   NewAmbulantClientRepository(store),
		ActivityClients:   NewActivityClientRepository(store),
		ServiceRequests:   NewServiceRequestRepository(store),
		StaffApplications: NewStaffApplicationRepository(store),
		StaffUsers:        NewStaffUserRepository(store),
	}
}
