package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pawelWritesCode/dsnutils/pkg/validator"
)

// ErrConfiguration tells that schema engine selection is invalid.
// It surfaces during construction, before any document is validated.
var ErrConfiguration = errors.New("schema engine configuration error")

const (
	// EngineXG selects github.com/xeipuuv/gojsonschema under the hood. Covers JSON schema draft v4, v6 & v7.
	EngineXG Engine = "gojsonschema"

	// EngineQI selects github.com/qri-io/jsonschema under the hood. Covers JSON schema draft 7 & 2019-09.
	EngineQI Engine = "qri"
)

// Engine points at JSON schema implementation used under the hood.
// It is selected once during construction - call sites never branch on it.
type Engine string

// EngineFromString turns name into Engine or fails with ErrConfiguration.
func EngineFromString(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case EngineXG:
		return EngineXG, nil
	case EngineQI:
		return EngineQI, nil
	}

	return "", fmt.Errorf("%w: unsupported engine %s, supported are: %s, %s", ErrConfiguration, name, EngineXG, EngineQI)
}

// NewRawValidator returns validator of schemas passed as string for given engine.
func NewRawValidator(e Engine) (validator.SchemaValidator, error) {
	switch e {
	case EngineXG:
		return NewJSONSchemaRawXGValidator(), nil
	case EngineQI:
		return NewJSONSchemaRawQIValidator(), nil
	}

	return nil, fmt.Errorf("%w: unsupported engine %s, supported are: %s, %s", ErrConfiguration, e, EngineXG, EngineQI)
}

// NewReferenceValidator returns validator of schemas passed as URL or OS path for given engine.
// schemasDir is directory against which relative paths are resolved.
func NewReferenceValidator(e Engine, schemasDir string) (validator.SchemaValidator, error) {
	switch e {
	case EngineXG:
		return NewDefaultJSONSchemaReferenceXGValidator(schemasDir), nil
	case EngineQI:
		return NewDefaultJSONSchemaReferenceQIValidator(schemasDir), nil
	}

	return nil, fmt.Errorf("%w: unsupported engine %s, supported are: %s, %s", ErrConfiguration, e, EngineXG, EngineQI)
}
