package dto

import "github.com/spec-kit/fotos-express/internal/domain"

// AmbulantClientRequest payload for POST /ambulant-clients.
type AmbulantClientRequest struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre" validate:"required"`
	Telefono         string `json:"telefono" validate:"required"`
	Instagram        string `json:"instagram"`
	AceptaPublicidad bool   `json:"aceptaPublicidad"`
	FotoReferencia   string `json:"fotoReferencia"`
	ZonaID           string `json:"zonaId" validate:"required"`
	Status           string `json:"status" validate:"omitempty,oneof=esperando_fotos atendido"`
}

// ToDomain builds the client draft.
func (r AmbulantClientRequest) ToDomain() *domain.AmbulantClient {
	return &domain.AmbulantClient{
		Name:             r.Nombre,
		Phone:            r.Telefono,
		Instagram:        r.Instagram,
		AcceptsMarketing: r.AceptaPublicidad,
		ReferencePhoto:   r.FotoReferencia,
		ZoneID:           r.ZonaID,
		Status:           domain.ClientStatus(r.Status),
	}
}

// AmbulantClientUpdateRequest payload for PUT /ambulant-clients/:id.
type AmbulantClientUpdateRequest struct {
	ID               string    `json:"id"`
	Nombre           *string   `json:"nombre" validate:"omitempty,min=1"`
	Telefono         *string   `json:"telefono" validate:"omitempty,min=1"`
	Instagram        *string   `json:"instagram"`
	AceptaPublicidad *bool     `json:"aceptaPublicidad"`
	FotoReferencia   *string   `json:"fotoReferencia"`
	ZonaID           *string   `json:"zonaId" validate:"omitempty,min=1"`
	Status           *string   `json:"status" validate:"omitempty,oneof=esperando_fotos atendido"`
	AtendidoPorID    *string   `json:"atendidoPorId"`
	FotosSubidas     *[]string `json:"fotosSubidas"`
	ZonaNombre       string    `json:"zonaNombre"`
	FechaRegistro    string    `json:"fechaRegistro"`
}

// Patch lists the fields present in the request. fechaRegistro is immutable.
func (r AmbulantClientUpdateRequest) Patch() map[string]any {
	return patch{}.
		str("nombre", r.Nombre).
		str("telefono", r.Telefono).
		str("instagram", r.Instagram).
		boolean("aceptaPublicidad", r.AceptaPublicidad).
		str("fotoReferencia", r.FotoReferencia).
		str("zonaId", r.ZonaID).
		str("status", r.Status).
		str("atendidoPorId", r.AtendidoPorID).
		list("fotosSubidas", r.FotosSubidas)
}

// ActivityClientRequest payload for POST /activity-clients.
type ActivityClientRequest struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre" validate:"required"`
	Telefono       string `json:"telefono" validate:"required"`
	NegocioID      string `json:"negocioId" validate:"required"`
	ActividadID    string `json:"actividadId" validate:"required"`
	FotoReferencia string `json:"fotoReferencia"`
	Status         string `json:"status" validate:"omitempty,oneof=esperando_fotos atendido"`
}

// ToDomain builds the client draft.
func (r ActivityClientRequest) ToDomain() *domain.ActivityClient {
	return &domain.ActivityClient{
		Name:           r.Nombre,
		Phone:          r.Telefono,
		BusinessID:     r.NegocioID,
		ActivityID:     r.ActividadID,
		ReferencePhoto: r.FotoReferencia,
		Status:         domain.ClientStatus(r.Status),
	}
}

// ActivityClientUpdateRequest payload for PUT /activity-clients/:id.
type ActivityClientUpdateRequest struct {
	ID              string    `json:"id"`
	Nombre          *string   `json:"nombre" validate:"omitempty,min=1"`
	Telefono        *string   `json:"telefono" validate:"omitempty,min=1"`
	NegocioID       *string   `json:"negocioId" validate:"omitempty,min=1"`
	ActividadID     *string   `json:"actividadId" validate:"omitempty,min=1"`
	FotoReferencia  *string   `json:"fotoReferencia"`
	Status          *string   `json:"status" validate:"omitempty,oneof=esperando_fotos atendido"`
	AtendidoPorID   *string   `json:"atendidoPorId"`
	FotosSubidas    *[]string `json:"fotosSubidas"`
	NegocioNombre   string    `json:"negocioNombre"`
	ActividadNombre string    `json:"actividadNombre"`
	FechaRegistro   string    `json:"fechaRegistro"`
}

// Patch lists the fields present in the request.
func (r ActivityClientUpdateRequest) Patch() map[string]any {
	return patch{}.
		str("nombre", r.Nombre).
		str("telefono", r.Telefono).
		str("negocioId", r.NegocioID).
		str("actividadId", r.ActividadID).
		str("fotoReferencia", r.FotoReferencia).
		str("status", r.Status).
		str("atendidoPorId", r.AtendidoPorID).
		list("fotosSubidas", r.FotosSubidas)
}

// PhotoUploadRequest payload for the photos endpoints of both client kinds.
type PhotoUploadRequest struct {
	Fotos       []string `json:"fotos" validate:"required,dive,required"`
	FotografoID string   `json:"fotografoId" validate:"required"`
}
