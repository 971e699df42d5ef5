package schema

import (
	"encoding/json"
	"fmt"
)

const (
	// KindString describes textual field.
	KindString Kind = "string"

	// KindInteger describes integral field.
	KindInteger Kind = "integer"

	// KindNumber describes numeric field.
	KindNumber Kind = "number"

	// KindBoolean describes logical field.
	KindBoolean Kind = "boolean"
)

// Kind represents semantic type of field in field specification.
type Kind string

// FieldSpec describes single field of model schema: its name, semantic type and constraints.
// Same FieldSpec produces field definition behaving identically under every supported engine.
type FieldSpec struct {
	// Name is field name.
	Name string

	// Kind is field semantic type.
	Kind Kind

	// Required tells whether field must be present in document.
	Required bool

	// MinLength constrains minimal length of KindString field.
	MinLength *int

	// MaxLength constrains maximal length of KindString field.
	MaxLength *int

	// Pattern constrains KindString field with regular expression.
	Pattern string

	// Minimum constrains minimal value of KindInteger/KindNumber field.
	Minimum *float64

	// Maximum constrains maximal value of KindInteger/KindNumber field.
	Maximum *float64

	// Enum constrains field to fixed set of values.
	Enum []any
}

// BuildDocument turns field specifications into JSON schema document (draft-07)
// understandable by every supported engine.
func BuildDocument(title string, fields []FieldSpec) (string, error) {
	properties := map[string]any{}
	var required []string

	for _, field := range fields {
		if field.Name == "" {
			return "", fmt.Errorf("%w: field specification with empty name", ErrConfiguration)
		}

		property, err := field.definition()
		if err != nil {
			return "", err
		}

		properties[field.Name] = property

		if field.Required {
			required = append(required, field.Name)
		}
	}

	document := map[string]any{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"title":      title,
		"type":       "object",
		"properties": properties,
	}

	if len(required) > 0 {
		document["required"] = required
	}

	documentBytes, err := json.Marshal(document)
	if err != nil {
		return "", err
	}

	return string(documentBytes), nil
}

// DSNFields returns field specifications describing serialized DSN document.
func DSNFields() []FieldSpec {
	minPort := 1.0
	maxPort := 65535.0
	minLen := 1

	return []FieldSpec{
		{Name: "scheme", Kind: KindString, Required: true, MinLength: &minLen},
		{Name: "user", Kind: KindString, Required: true},
		{Name: "password", Kind: KindString},
		{Name: "host", Kind: KindString, Required: true, MinLength: &minLen},
		{Name: "port", Kind: KindInteger, Required: true, Minimum: &minPort, Maximum: &maxPort},
		{Name: "database", Kind: KindString, Required: true, MinLength: &minLen},
	}
}

// definition turns single field specification into schema property definition.
func (f FieldSpec) definition() (map[string]any, error) {
	switch f.Kind {
	case KindString, KindInteger, KindNumber, KindBoolean:
	default:
		return nil, fmt.Errorf("%w: unknown kind %s of field %s", ErrConfiguration, f.Kind, f.Name)
	}

	property := map[string]any{"type": string(f.Kind)}

	if f.MinLength != nil {
		property["minLength"] = *f.MinLength
	}

	if f.MaxLength != nil {
		property["maxLength"] = *f.MaxLength
	}

	if f.Pattern != "" {
		property["pattern"] = f.Pattern
	}

	if f.Minimum != nil {
		property["minimum"] = *f.Minimum
	}

	if f.Maximum != nil {
		property["maximum"] = *f.Maximum
	}

	if len(f.Enum) > 0 {
		property["enum"] = f.Enum
	}

	return property, nil
}
