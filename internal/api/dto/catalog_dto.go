package dto

import "github.com/spec-kit/fotos-express/internal/domain"

// ZoneRequest payload for POST /zones. A supplied id is ignored.
type ZoneRequest struct {
	ID                  string   `json:"id"`
	Nombre              string   `json:"nombre" validate:"required"`
	Descripcion         string   `json:"descripcion"`
	Activa              *bool    `json:"activa"`
	FotografosAsignados []string `json:"fotografosAsignados"`
}

// ToDomain builds the zone draft. Zones are active unless stated otherwise.
func (r ZoneRequest) ToDomain() *domain.Zone {
	return &domain.Zone{
		Name:          r.Nombre,
		Description:   r.Descripcion,
		Active:        boolOr(r.Activa, true),
		AssignedStaff: orEmpty(r.FotografosAsignados),
	}
}

// ZoneUpdateRequest payload for PUT /zones/:id.
type ZoneUpdateRequest struct {
	ID                  string    `json:"id"`
	Nombre              *string   `json:"nombre" validate:"omitempty,min=1"`
	Descripcion         *string   `json:"descripcion"`
	Activa              *bool     `json:"activa"`
	FotografosAsignados *[]string `json:"fotografosAsignados"`
}

// Patch lists the fields present in the request.
func (r ZoneUpdateRequest) Patch() map[string]any {
	return patch{}.
		str("nombre", r.Nombre).
		str("descripcion", r.Descripcion).
		boolean("activa", r.Activa).
		list("fotografosAsignados", r.FotografosAsignados)
}

// AssignStaffRequest payload for PUT /zones/:id/staff and /activities/:id/staff.
type AssignStaffRequest struct {
	StaffIDs []string `json:"staffIds" validate:"required"`
}

// BusinessRequest payload for POST /businesses.
type BusinessRequest struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre" validate:"required"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Activo    *bool  `json:"activo"`
}

// ToDomain builds the business draft.
func (r BusinessRequest) ToDomain() *domain.Business {
	return &domain.Business{
		Name:    r.Nombre,
		Address: r.Direccion,
		Phone:   r.Telefono,
		Active:  boolOr(r.Activo, true),
	}
}

// BusinessUpdateRequest payload for PUT /businesses/:id.
type BusinessUpdateRequest struct {
	ID        string  `json:"id"`
	Nombre    *string `json:"nombre" validate:"omitempty,min=1"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Activo    *bool   `json:"activo"`
}

// Patch lists the fields present in the request.
func (r BusinessUpdateRequest) Patch() map[string]any {
	return patch{}.
		str("nombre", r.Nombre).
		str("direccion", r.Direccion).
		str("telefono", r.Telefono).
		boolean("activo", r.Activo)
}

// ActivityRequest payload for POST /activities.
type ActivityRequest struct {
	ID                  string   `json:"id"`
	Nombre              string   `json:"nombre" validate:"required"`
	NegocioID           string   `json:"negocioId" validate:"required"`
	Descripcion         string   `json:"descripcion"`
	Fecha               string   `json:"fecha"`
	Activa              *bool    `json:"activa"`
	FotografosAsignados []string `json:"fotografosAsignados"`
	// negocioNombre is computed on read; clients echoing it back are tolerated.
	NegocioNombre string `json:"negocioNombre"`
}

// ToDomain builds the activity draft.
func (r ActivityRequest) ToDomain() *domain.Activity {
	return &domain.Activity{
		Name:          r.Nombre,
		BusinessID:    r.NegocioID,
		Description:   r.Descripcion,
		Date:          r.Fecha,
		Active:        boolOr(r.Activa, true),
		AssignedStaff: orEmpty(r.FotografosAsignados),
	}
}

// ActivityUpdateRequest payload for PUT /activities/:id.
type ActivityUpdateRequest struct {
	ID                  string    `json:"id"`
	Nombre              *string   `json:"nombre" validate:"omitempty,min=1"`
	NegocioID           *string   `json:"negocioId" validate:"omitempty,min=1"`
	Descripcion         *string   `json:"descripcion"`
	Fecha               *string   `json:"fecha"`
	Activa              *bool     `json:"activa"`
	FotografosAsignados *[]string `json:"fotografosAsignados"`
	NegocioNombre       string    `json:"negocioNombre"`
}

// Patch lists the fields present in the request.
func (r ActivityUpdateRequest) Patch() map[string]any {
	return patch{}.
		str("nombre", r.Nombre).
		str("negocioId", r.NegocioID).
		str("descripcion", r.Descripcion).
		str("fecha", r.Fecha).
		boolean("activa", r.Activa).
		list("fotografosAsignados", r.FotografosAsignados)
}
