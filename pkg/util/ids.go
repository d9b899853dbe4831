package util

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Entity id prefixes.
const (
	PrefixZone             = "Z"
	PrefixBusiness         = "N"
	PrefixActivity         = "A"
	PrefixAmbulantClient   = "CA"
	PrefixActivityClient   = "CN"
	PrefixServiceRequest   = "SR"
	PrefixStaffApplication = "P"
	PrefixStaffUser        = "SU"
)

// NewID returns prefix followed by 8 uppercase hex characters, e.g. "Z3F9A01BC".
// Collisions are possible in principle; storage enforces uniqueness on insert.
func NewID(prefix string) (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return prefix + strings.ToUpper(hex.EncodeToString(b)), nil
}
