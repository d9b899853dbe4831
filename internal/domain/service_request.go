package domain

// ServiceRequestStatus enumerates quote lifecycle labels. Transitions are not enforced.
type ServiceRequestStatus string

const (
	ServiceRequestPending  ServiceRequestStatus = "pendiente"
	ServiceRequestQuoted   ServiceRequestStatus = "cotizado"
	ServiceRequestAssigned ServiceRequestStatus = "asignado"
)

// ServiceRequestDetails describes the event to quote.
type ServiceRequestDetails struct {
	Location    string `json:"locacion"`
	Description string `json:"descripcion"`
	EventDate   string `json:"fechaEvento"`
	Hours       int    `json:"horas"`
	Headcount   int    `json:"personas"`
}

// ServiceRequestContact is the requester.
type ServiceRequestContact struct {
	Name  string `json:"nombre"`
	Phone string `json:"telefono"`
	Email string `json:"email"`
}

// ServiceRequest is a direct quote request.
type ServiceRequest struct {
	ID              string                `json:"id"`
	Type            string                `json:"tipo"`
	Details         ServiceRequestDetails `json:"detalles"`
	Contact         ServiceRequestContact `json:"contacto"`
	EstimatedQuote  *float64              `json:"cotizacionEstimada,omitempty"`
	AssignedStaffID string                `json:"fotografoAsignadoId,omitempty"`
	Status          ServiceRequestStatus  `json:"status"`
	RequestedAt     string                `json:"fechaSolicitud,omitempty"`
}
