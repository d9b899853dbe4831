package notification

import (
	"bytes"
	"html/template"
)

var activationTemplate = template.Must(template.New("activation").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #111;">Bienvenido a Fotos Express, {{.Name}}</h1>
  <p>Tu solicitud como fotógrafo fue aprobada. Activa tu cuenta y crea tu contraseña:</p>
  <p><a href="{{.Link}}" style="background: #111; color: #fff; padding: 12px 24px; text-decoration: none;">Activar cuenta</a></p>
  <p>Este enlace vence el {{.Expires}}.</p>
</div>`))

// ActivationEmail renders the account activation message.
func ActivationEmail(to, name, link, expires string) (Email, error) {
	var buf bytes.Buffer
	err := activationTemplate.Execute(&buf, struct {
		Name, Link, Expires string
	}{Name: name, Link: link, Expires: expires})
	if err != nil {
		return Email{}, err
	}
	return Email{
		To:      to,
		Subject: "Activa tu cuenta de Fotos Express",
		HTML:    buf.String(),
	}, nil
}
