package domain

// Zone is a walk-up area where ambulant clients register.
type Zone struct {
	ID            string   `json:"id"`
	Name          string   `json:"nombre"`
	Description   string   `json:"descripcion,omitempty"`
	Active        bool     `json:"activa"`
	AssignedStaff []string `json:"fotografosAsignados"`
}

// Business is a partner venue hosting activities.
type Business struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Address string `json:"direccion,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Active  bool   `json:"activo"`
}

// Activity is an event hosted by a business.
type Activity struct {
	ID            string   `json:"id"`
	Name          string   `json:"nombre"`
	BusinessID    string   `json:"negocioId"`
	Description   string   `json:"descripcion,omitempty"`
	Date          string   `json:"fecha,omitempty"`
	Active        bool     `json:"activa"`
	AssignedStaff []string `json:"fotografosAsignados"`
}
