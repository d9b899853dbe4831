package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatches(t *testing.T) {
	doc := map[string]any{
		"id":                  "Z1",
		"activa":              true,
		"horas":               float64(6),
		"fotografosAsignados": []any{"SU1", "SU2"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty filter", filter: All(), want: true},
		{name: "bool equality", filter: Where("activa", true), want: true},
		{name: "int equality against decoded float", filter: Where("horas", 6), want: true},
		{name: "missing field", filter: Where("nombre", "x"), want: false},
		{name: "array contains", filter: All().HasElement("fotografosAsignados", "SU2"), want: true},
		{name: "array lacks", filter: All().HasElement("fotografosAsignados", "SU3"), want: false},
		{name: "contains on scalar", filter: All().HasElement("id", "Z1"), want: false},
		{name: "in set", filter: All().AnyOf("id", []string{"Z0", "Z1"}), want: true},
		{name: "empty in set", filter: All().AnyOf("id", []string{}), want: false},
		{name: "conjunction", filter: Where("activa", true).HasElement("fotografosAsignados", "SU1"), want: true},
		{name: "conjunction fails", filter: Where("activa", false).HasElement("fotografosAsignados", "SU1"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(doc))
		})
	}
}

func TestFilterBuildersDoNotAlias(t *testing.T) {
	base := Where("activa", true)
	derived := base.And("id", "Z1")

	assert.Len(t, base.Equals, 1)
	assert.Len(t, derived.Equals, 2)
}

func TestPgWhere(t *testing.T) {
	where, args, err := pgWhere(CollectionZones, Where("activa", true).HasElement("fotografosAsignados", "SU1").AnyOf("id", []string{"Z1"}))
	require.NoError(t, err)

	assert.Equal(t, "collection=$1 AND body @> $2::jsonb AND body->>($3::text) = ANY($4::text[])", where)
	require.Len(t, args, 4)
	assert.Equal(t, CollectionZones, args[0])
	assert.JSONEq(t, `{"activa":true,"fotografosAsignados":["SU1"]}`, args[1].(string))
	assert.Equal(t, "id", args[2])
	assert.Equal(t, []string{"Z1"}, args[3])
}

func TestMongoFilter(t *testing.T) {
	f := mongoFilter(Where("activa", true).HasElement("fotografosAsignados", "SU1").AnyOf("id", nil))

	assert.Equal(t, true, f["activa"])
	assert.Equal(t, "SU1", f["fotografosAsignados"])
	assert.NotNil(t, f["id"])
}
