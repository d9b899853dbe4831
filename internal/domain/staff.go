package domain

import "time"

// ApplicationStatus is the review state of a staff application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pendiente"
	ApplicationApproved ApplicationStatus = "aprobado"
	ApplicationRejected ApplicationStatus = "rechazado"
)

// StaffApplication is a prospective photographer's submission.
type StaffApplication struct {
	ID              string            `json:"id"`
	Name            string            `json:"nombre"`
	Email           string            `json:"email"`
	Phone           string            `json:"telefono"`
	Experience      string            `json:"experiencia"`
	Equipment       string            `json:"equipo"`
	Specialties     []string          `json:"especialidades"`
	ReferencePhotos []string          `json:"fotosReferencia"`
	Status          ApplicationStatus `json:"status"`
	SubmittedAt     string            `json:"fechaSolicitud,omitempty"`
}

// StaffUser is a photographer account. PasswordHash stays nil and IsActive
// false until the activation token is redeemed.
type StaffUser struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"nombre"`
	Phone             string     `json:"telefono"`
	PasswordHash      *string    `json:"passwordHash"`
	IsActive          bool       `json:"isActive"`
	ActivationToken   *string    `json:"activationToken"`
	TokenExpiry       *time.Time `json:"tokenExpiry"`
	CreatedAt         time.Time  `json:"createdAt"`
	ActivatedAt       *time.Time `json:"activatedAt,omitempty"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt,omitempty"`
	ApplicationID     *string    `json:"applicationId"`
}
