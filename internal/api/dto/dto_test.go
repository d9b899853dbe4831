package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

func TestDecode_RejectsUnknownFields(t *testing.T) {
	var req ZoneRequest
	err := Decode([]byte(`{"nombre":"Isabela","color":"azul"}`), &req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	assert.Contains(t, err.Error(), "color")
}

func TestDecode_IgnoresSuppliedID(t *testing.T) {
	var req ZoneRequest
	require.NoError(t, Decode([]byte(`{"id":"Z999","nombre":"Isabela"}`), &req))

	zone := req.ToDomain()
	assert.Empty(t, zone.ID)
	assert.True(t, zone.Active)
	assert.Equal(t, []string{}, zone.AssignedStaff)
}

func TestDecode_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		dst  any
		want string
	}{
		{name: "empty body", body: ``, dst: &ZoneRequest{}, want: "body is required"},
		{name: "missing required", body: `{"descripcion":"x"}`, dst: &ZoneRequest{}, want: "nombre"},
		{name: "bad status", body: `{"nombre":"a","telefono":"1","zonaId":"Z1","status":"perdido"}`, dst: &AmbulantClientRequest{}, want: "status"},
		{name: "bad email", body: `{"nombre":"a","email":"nope","telefono":"1"}`, dst: &StaffApplicationRequest{}, want: "email"},
		{name: "nested contact", body: `{"tipo":"boda","detalles":{"locacion":"x"},"contacto":{"nombre":"v"}}`, dst: &ServiceRequestRequest{}, want: "telefono"},
		{name: "empty photo entry", body: `{"fotos":[""],"fotografoId":"SU1"}`, dst: &PhotoUploadRequest{}, want: "fotos"},
		{name: "trailing data", body: `{"nombre":"a"} {}`, dst: &ZoneRequest{}, want: "trailing"},
		{name: "wrong type", body: `{"nombre":5}`, dst: &ZoneRequest{}, want: "invalid payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode([]byte(tt.body), tt.dst)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAssignStaffRequest_EmptyListAllowed(t *testing.T) {
	var req AssignStaffRequest
	require.NoError(t, Decode([]byte(`{"staffIds":[]}`), &req))
	assert.NotNil(t, req.StaffIDs)
	assert.Empty(t, req.StaffIDs)

	err := Decode([]byte(`{}`), &AssignStaffRequest{})
	assert.Error(t, err)
}

func TestUpdatePatches_OnlyPresentFields(t *testing.T) {
	var zone ZoneUpdateRequest
	require.NoError(t, Decode([]byte(`{"activa":false}`), &zone))
	assert.Equal(t, map[string]any{"activa": false}, zone.Patch())

	var client AmbulantClientUpdateRequest
	require.NoError(t, Decode([]byte(`{"id":"CA1","zonaNombre":"x","fotosSubidas":null,"nombre":"Ana"}`), &client))
	assert.Equal(t, map[string]any{"nombre": "Ana"}, client.Patch())

	var service ServiceRequestUpdateRequest
	require.NoError(t, Decode([]byte(`{"detalles":{"locacion":"interior"},"cotizacionEstimada":350}`), &service))
	p := service.Patch()
	assert.Len(t, p, 2)
	assert.Equal(t, 350.0, p["cotizacionEstimada"])
	assert.Contains(t, p, "detalles")
}
