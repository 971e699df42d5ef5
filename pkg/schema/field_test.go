package schema

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestBuildDocument(t *testing.T) {
	minLen := 1
	minPort := 1.0

	document, err := BuildDocument("connection target", []FieldSpec{
		{Name: "host", Kind: KindString, Required: true, MinLength: &minLen, Pattern: "^[^/]+$"},
		{Name: "port", Kind: KindInteger, Minimum: &minPort},
		{Name: "secure", Kind: KindBoolean},
		{Name: "scheme", Kind: KindString, Enum: []any{"postgresql", "mysql"}},
	})
	if err != nil {
		t.Fatalf("BuildDocument() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(document), &decoded); err != nil {
		t.Fatalf("BuildDocument() returned invalid JSON, err: %v", err)
	}

	if decoded["$schema"] != "http://json-schema.org/draft-07/schema#" {
		t.Errorf("document should declare draft-07, got %v", decoded["$schema"])
	}

	if decoded["title"] != "connection target" {
		t.Errorf("document title = %v", decoded["title"])
	}

	properties, ok := decoded["properties"].(map[string]any)
	if !ok {
		t.Fatalf("document has no properties object")
	}

	for _, name := range []string{"host", "port", "secure", "scheme"} {
		if _, found := properties[name]; !found {
			t.Errorf("document misses %s property", name)
		}
	}

	required, ok := decoded["required"].([]any)
	if !ok || len(required) != 1 || required[0] != "host" {
		t.Errorf("document required = %v, want [host]", decoded["required"])
	}
}

func TestBuildDocument_UnknownKind(t *testing.T) {
	_, err := BuildDocument("broken", []FieldSpec{{Name: "field", Kind: Kind("decimal")}})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("BuildDocument() error = %v, want ErrConfiguration", err)
	}
}

func TestBuildDocument_EmptyFieldName(t *testing.T) {
	_, err := BuildDocument("broken", []FieldSpec{{Kind: KindString}})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("BuildDocument() error = %v, want ErrConfiguration", err)
	}
}
