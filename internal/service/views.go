package service

import (
	"time"

	"github.com/spec-kit/fotos-express/internal/domain"
)

// UnknownName stands in for a reference that no longer resolves.
const UnknownName = "N/A"

// ActivityView is an activity with its business name attached.
type ActivityView struct {
	domain.Activity
	BusinessName string `json:"negocioNombre"`
}

// AmbulantClientView is an ambulant client with its zone name attached.
type AmbulantClientView struct {
	domain.AmbulantClient
	ZoneName string `json:"zonaNombre"`
}

// ActivityClientView is an activity client with business and activity names attached.
type ActivityClientView struct {
	domain.ActivityClient
	BusinessName string `json:"negocioNombre"`
	ActivityName string `json:"actividadNombre"`
}

// StaffProfile is the public shape of a staff account. Digests and activation
// tokens are never part of it.
type StaffProfile struct {
	ID                 string         `json:"id"`
	Email              string         `json:"email"`
	Name               string         `json:"nombre"`
	Phone              string         `json:"telefono"`
	IsActive           bool           `json:"isActive"`
	TokenExpiry        *time.Time     `json:"tokenExpiry,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	ActivatedAt        *time.Time     `json:"activatedAt,omitempty"`
	PasswordChangedAt  *time.Time     `json:"passwordChangedAt,omitempty"`
	ApplicationID      *string        `json:"applicationId,omitempty"`
	AssignedZones      []domain.Zone  `json:"zonasAsignadas"`
	AssignedActivities []ActivityView `json:"actividadesAsignadas"`
}

func newStaffProfile(user *domain.StaffUser, zones []domain.Zone, activities []ActivityView) StaffProfile {
	if zones == nil {
		zones = []domain.Zone{}
	}
	if activities == nil {
		activities = []ActivityView{}
	}
	return StaffProfile{
		ID:                 user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Phone:              user.Phone,
		IsActive:           user.IsActive,
		TokenExpiry:        user.TokenExpiry,
		CreatedAt:          user.CreatedAt,
		ActivatedAt:        user.ActivatedAt,
		PasswordChangedAt:  user.PasswordChangedAt,
		ApplicationID:      user.ApplicationID,
		AssignedZones:      zones,
		AssignedActivities: activities,
	}
}
