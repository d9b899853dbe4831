package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode strictly parses body into dst and runs its validate tags. Unknown
// fields are rejected.
func Decode(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return apperrors.NewValidationError("request body is required", nil)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("invalid payload: %s", err.Error()), nil)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("invalid payload: trailing data", nil)
	}
	return Validate(dst)
}

// Validate runs the validate tags on v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	fields := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	first := verrs[0]
	return apperrors.NewValidationError(fmt.Sprintf("field %s failed %s validation", first.Field(), first.Tag()), map[string]any{"fields": fields})
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// patch collects only the fields a request actually carried.
type patch map[string]any

func (p patch) str(key string, v *string) patch {
	if v != nil {
		p[key] = *v
	}
	return p
}

func (p patch) boolean(key string, v *bool) patch {
	if v != nil {
		p[key] = *v
	}
	return p
}

func (p patch) list(key string, v *[]string) patch {
	if v != nil {
		p[key] = orEmpty(*v)
	}
	return p
}
