package dto

import "github.com/spec-kit/fotos-express/internal/domain"

// ServiceDetails mirrors domain.ServiceRequestDetails on the wire.
type ServiceDetails struct {
	Locacion    string `json:"locacion" validate:"required"`
	Descripcion string `json:"descripcion"`
	FechaEvento string `json:"fechaEvento"`
	Horas       int    `json:"horas" validate:"gte=0"`
	Personas    int    `json:"personas" validate:"gte=0"`
}

func (d ServiceDetails) toDomain() domain.ServiceRequestDetails {
	return domain.ServiceRequestDetails{
		Location:    d.Locacion,
		Description: d.Descripcion,
		EventDate:   d.FechaEvento,
		Hours:       d.Horas,
		Headcount:   d.Personas,
	}
}

// ServiceContact mirrors domain.ServiceRequestContact on the wire.
type ServiceContact struct {
	Nombre   string `json:"nombre" validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (c ServiceContact) toDomain() domain.ServiceRequestContact {
	return domain.ServiceRequestContact{Name: c.Nombre, Phone: c.Telefono, Email: c.Email}
}

// ServiceRequestRequest payload for POST /services.
type ServiceRequestRequest struct {
	ID                  string         `json:"id"`
	Tipo                string         `json:"tipo" validate:"required"`
	Detalles            ServiceDetails `json:"detalles"`
	Contacto            ServiceContact `json:"contacto"`
	CotizacionEstimada  *float64       `json:"cotizacionEstimada" validate:"omitempty,gte=0"`
	FotografoAsignadoID string         `json:"fotografoAsignadoId"`
	Status              string         `json:"status" validate:"omitempty,oneof=pendiente cotizado asignado"`
	FechaSolicitud      string         `json:"fechaSolicitud"`
}

// ToDomain builds the request draft.
func (r ServiceRequestRequest) ToDomain() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		Type:            r.Tipo,
		Details:         r.Detalles.toDomain(),
		Contact:         r.Contacto.toDomain(),
		EstimatedQuote:  r.CotizacionEstimada,
		AssignedStaffID: r.FotografoAsignadoID,
		Status:          domain.ServiceRequestStatus(r.Status),
		RequestedAt:     r.FechaSolicitud,
	}
}

// ServiceRequestUpdateRequest payload for PUT /services/:id. Nested objects
// replace the stored ones wholesale.
type ServiceRequestUpdateRequest struct {
	ID                  string          `json:"id"`
	Tipo                *string         `json:"tipo" validate:"omitempty,min=1"`
	Detalles            *ServiceDetails `json:"detalles"`
	Contacto            *ServiceContact `json:"contacto"`
	CotizacionEstimada  *float64        `json:"cotizacionEstimada" validate:"omitempty,gte=0"`
	FotografoAsignadoID *string         `json:"fotografoAsignadoId"`
	Status              *string         `json:"status" validate:"omitempty,oneof=pendiente cotizado asignado"`
	FechaSolicitud      *string         `json:"fechaSolicitud"`
}

// Patch lists the fields present in the request.
func (r ServiceRequestUpdateRequest) Patch() map[string]any {
	p := patch{}.
		str("tipo", r.Tipo).
		str("fotografoAsignadoId", r.FotografoAsignadoID).
		str("status", r.Status).
		str("fechaSolicitud", r.FechaSolicitud)
	if r.Detalles != nil {
		p["detalles"] = r.Detalles.toDomain()
	}
	if r.Contacto != nil {
		p["contacto"] = r.Contacto.toDomain()
	}
	if r.CotizacionEstimada != nil {
		p["cotizacionEstimada"] = *r.CotizacionEstimada
	}
	return p
}

// StaffApplicationRequest payload for POST /staff. id and status are ignored;
// new applications always start pending.
type StaffApplicationRequest struct {
	ID              string   `json:"id"`
	Nombre          string   `json:"nombre" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Telefono        string   `json:"telefono" validate:"required"`
	Experiencia     string   `json:"experiencia"`
	Equipo          string   `json:"equipo"`
	Especialidades  []string `json:"especialidades"`
	FotosReferencia []string `json:"fotosReferencia"`
	Status          string   `json:"status"`
}

// ToDomain builds the application draft.
func (r StaffApplicationRequest) ToDomain() *domain.StaffApplication {
	return &domain.StaffApplication{
		Name:            r.Nombre,
		Email:           r.Email,
		Phone:           r.Telefono,
		Experience:      r.Experiencia,
		Equipment:       r.Equipo,
		Specialties:     orEmpty(r.Especialidades),
		ReferencePhotos: orEmpty(r.FotosReferencia),
	}
}
