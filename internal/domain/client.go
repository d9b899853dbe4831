package domain

// ClientStatus tracks whether a lead has received photos.
type ClientStatus string

const (
	ClientStatusWaiting ClientStatus = "esperando_fotos"
	ClientStatusServed  ClientStatus = "atendido"
)

// Valid reports whether s is a known status.
func (s ClientStatus) Valid() bool {
	return s == ClientStatusWaiting || s == ClientStatusServed
}

// AmbulantClient is a lead registered in a zone.
type AmbulantClient struct {
	ID               string       `json:"id"`
	Name             string       `json:"nombre"`
	Phone            string       `json:"telefono"`
	Instagram        string       `json:"instagram,omitempty"`
	AcceptsMarketing bool         `json:"aceptaPublicidad"`
	ReferencePhoto   string       `json:"fotoReferencia,omitempty"`
	ZoneID           string       `json:"zonaId"`
	Status           ClientStatus `json:"status"`
	ServedBy         string       `json:"atendidoPorId,omitempty"`
	UploadedPhotos   []string     `json:"fotosSubidas,omitempty"`
	RegisteredAt     string       `json:"fechaRegistro"`
}

// ActivityClient is a lead registered at a business activity.
type ActivityClient struct {
	ID             string       `json:"id"`
	Name           string       `json:"nombre"`
	Phone          string       `json:"telefono"`
	BusinessID     string       `json:"negocioId"`
	ActivityID     string       `json:"actividadId"`
	ReferencePhoto string       `json:"fotoReferencia,omitempty"`
	Status         ClientStatus `json:"status"`
	ServedBy       string       `json:"atendidoPorId,omitempty"`
	UploadedPhotos []string     `json:"fotosSubidas,omitempty"`
	RegisteredAt   string       `json:"fechaRegistro"`
}

// RegistrationDateLayout formats fechaRegistro.
const RegistrationDateLayout = "2006-01-02"
