package util

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	prefixes := []string{PrefixZone, PrefixBusiness, PrefixActivity, PrefixAmbulantClient,
		PrefixActivityClient, PrefixServiceRequest, PrefixStaffApplication, PrefixStaffUser}

	for _, prefix := range prefixes {
		id, err := NewID(prefix)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile("^"+prefix+"[0-9A-F]{8}$"), id)
	}

	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		id, err := NewID(PrefixZone)
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 495)
}

func TestToDomainError(t *testing.T) {
	t.Run("passes through domain errors", func(t *testing.T) {
		err := NewExpired("activation token expired")
		de := ToDomainError(err)
		assert.Equal(t, CodeExpired, de.Code)
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	})

	t.Run("wraps unknown errors as internal", func(t *testing.T) {
		de := ToDomainError(errors.New("boom"))
		assert.Equal(t, CodeInternal, de.Code)
		assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
		assert.Equal(t, "internal server error: boom", de.Error())
	})

	t.Run("conflict maps to bad request", func(t *testing.T) {
		de := ToDomainError(NewConflict("user exists", nil))
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
		assert.True(t, IsCode(de, CodeConflict))
	})

	assert.Nil(t, ToDomainError(nil))
}
