// Package schema holds services that allows to validate JSON document against a schema
// no matter which JSON schema implementation is installed underneath.
//
// Package supports two engines with incompatible APIs behind one validator interface:
//
//	EngineXG - github.com/xeipuuv/gojsonschema, covers drafts v4, v6 & v7,
//	EngineQI - github.com/qri-io/jsonschema, covers draft 7 & 2019-09,
//
// Engine is selected once, during construction. Unsupported engine surfaces
// as ErrConfiguration from constructor, never from Validate call.
//
// Schemas may be authored in JSON or YAML - YAML documents are converted to JSON
// before they reach the engine.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/qri-io/jsonschema"
	jschema "github.com/xeipuuv/gojsonschema"

	"github.com/pawelWritesCode/dsnutils/pkg/format"
	"github.com/pawelWritesCode/dsnutils/pkg/netutils"
	"github.com/pawelWritesCode/dsnutils/pkg/osutils"
	v "github.com/pawelWritesCode/dsnutils/pkg/validator"
)

// JSONSchemaReferenceXGValidator is entity that has ability to validate data against JSON schema passed as reference.
// xeipuuv/gojsonschema is used under the hood.
type JSONSchemaReferenceXGValidator struct {
	fileValidator v.Validator
	urlValidator  v.Validator

	// schemasDir represents absolute path to JSON schemas directory.
	schemasDir string
}

// JSONSchemaReferenceQIValidator is entity that has ability to validate data against JSON schema passed as reference.
// qri-io/jsonschema is used under the hood.
type JSONSchemaReferenceQIValidator struct {
	fileValidator v.Validator
	urlValidator  v.Validator

	// schemasDir represents absolute path to JSON schemas directory.
	schemasDir string
}

// JSONSchemaRawXGValidator is entity that has ability to validate data against JSON schema passed as string.
// xeipuuv/gojsonschema is used under the hood
type JSONSchemaRawXGValidator struct{}

// JSONSchemaRawQIValidator is entity that has ability to validate data against JSON schema passed as string
// qri-io/jsonschema is used under the hood
type JSONSchemaRawQIValidator struct{}

// NewDefaultJSONSchemaReferenceXGValidator creates new JSONSchemaReferenceXGValidator with fixed services
func NewDefaultJSONSchemaReferenceXGValidator(schemasDir string) JSONSchemaReferenceXGValidator {
	return NewJSONSchemaReferenceXGValidator(schemasDir, osutils.NewFileValidator(), netutils.NewURLValidator())
}

// NewJSONSchemaReferenceXGValidator creates new JSONSchemaReferenceXGValidator with provided services
func NewJSONSchemaReferenceXGValidator(schemasDir string, fileValidator v.Validator, urlValidator v.Validator) JSONSchemaReferenceXGValidator {
	return JSONSchemaReferenceXGValidator{
		fileValidator: fileValidator,
		urlValidator:  urlValidator,
		schemasDir:    schemasDir,
	}
}

// NewDefaultJSONSchemaReferenceQIValidator creates new JSONSchemaReferenceQIValidator with fixed services
func NewDefaultJSONSchemaReferenceQIValidator(schemasDir string) JSONSchemaReferenceQIValidator {
	return NewJSONSchemaReferenceQIValidator(schemasDir, osutils.NewFileValidator(), netutils.NewURLValidator())
}

// NewJSONSchemaReferenceQIValidator creates new JSONSchemaReferenceQIValidator with provided services
func NewJSONSchemaReferenceQIValidator(schemasDir string, fileValidator v.Validator, urlValidator v.Validator) JSONSchemaReferenceQIValidator {
	return JSONSchemaReferenceQIValidator{
		fileValidator: fileValidator,
		urlValidator:  urlValidator,
		schemasDir:    schemasDir,
	}
}

// NewJSONSchemaRawXGValidator creates new JSONSchemaRawXGValidator
func NewJSONSchemaRawXGValidator() JSONSchemaRawXGValidator {
	return JSONSchemaRawXGValidator{}
}

// NewJSONSchemaRawQIValidator creates new JSONSchemaRawQIValidator
func NewJSONSchemaRawQIValidator() JSONSchemaRawQIValidator {
	return JSONSchemaRawQIValidator{}
}

// Validate validates document against JSON schema located in schemaPath.
// schemaPath may be URL or relative/full path to json schema on user OS
// according to xeipuuv/gojsonschema library it covers JSON Schema, draft v4 v6 & v7
func (jsv JSONSchemaReferenceXGValidator) Validate(document, schemaPath string) error {
	source, err := getSource(jsv.urlValidator, jsv.fileValidator, jsv.schemasDir, schemaPath)
	if err != nil {
		return err
	}

	result, err := jschema.Validate(jschema.NewReferenceLoader(source), jschema.NewStringLoader(document))
	if err != nil {
		return err
	}

	if !result.Valid() {
		errSum := ""
		for _, err := range result.Errors() {
			errSum += err.String()
		}

		return errors.New(errSum)
	}

	return nil
}

// Validate validates document against JSON schema located in schemaPath.
// schemaPath may be URL or relative/full path to json schema on user OS
// according to qri-io/jsonschema library it covers https://json-schema.org drafts 7 & 2019-09
func (jsv JSONSchemaReferenceQIValidator) Validate(document, schemaPath string) error {
	source, err := getSource(jsv.urlValidator, jsv.fileValidator, jsv.schemasDir, schemaPath)
	if err != nil {
		return err
	}

	schemaBytes, err := loadSource(source)
	if err != nil {
		return err
	}

	return NewJSONSchemaRawQIValidator().Validate(document, string(schemaBytes))
}

// Validate validates document against jsonSchema.
// according to xeipuuv/gojsonschema library it covers JSON Schema, draft v4 v6 & v7
func (j JSONSchemaRawXGValidator) Validate(document, jsonSchema string) error {
	normalizedSchema, err := normalizeSchemaDocument(jsonSchema)
	if err != nil {
		return err
	}

	result, err := jschema.Validate(jschema.NewStringLoader(normalizedSchema), jschema.NewStringLoader(document))
	if err != nil {
		return err
	}

	if !result.Valid() {
		errSum := ""
		for _, err := range result.Errors() {
			errSum += err.String()
		}

		return errors.New(errSum)
	}

	return nil
}

// Validate validates document against json schema.
// according to qri-io/jsonschema library it covers https://json-schema.org drafts 7 & 2019-09
func (j JSONSchemaRawQIValidator) Validate(document, jsonSchema string) error {
	normalizedSchema, err := normalizeSchemaDocument(jsonSchema)
	if err != nil {
		return err
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(normalizedSchema), rs); err != nil {
		return err
	}

	errs, err := rs.ValidateBytes(context.Background(), []byte(document))
	if err != nil {
		return err
	}

	var errStr string
	if len(errs) > 0 {
		for _, e := range errs {
			errStr += e.Error() + " "
		}

		err = errors.New(errStr)
	}

	return err
}

// normalizeSchemaDocument accepts schema in JSON or YAML format and returns its JSON form.
func normalizeSchemaDocument(schema string) (string, error) {
	if format.IsJSON([]byte(schema)) {
		return schema, nil
	}

	if format.IsYAML([]byte(schema)) {
		jsonBytes, err := yaml.YAMLToJSON([]byte(schema))
		if err != nil {
			return "", fmt.Errorf("could not convert YAML schema to JSON, err: %w", err)
		}

		return string(jsonBytes), nil
	}

	return "", errors.New("schema document is neither JSON nor YAML")
}

// getSource accepts rawSource, validate it and returns valid source
// available sources are: file system os path and URL
func getSource(urlValidator, fileValidator v.Validator, schemasDir, rawSource string) (string, error) {
	if rawSource == "" {
		return rawSource, errors.New("provided rawSource should not be empty string")
	}

	errURL := urlValidator.Validate(rawSource)
	if errURL == nil { // is valid URL
		return rawSource, nil
	}

	var pth string

	if path.IsAbs(rawSource) { // rawSource is valid absolute path
		pth = rawSource
	} else {
		pth = path.Clean(path.Join(schemasDir, rawSource))
	}

	errPath := fileValidator.Validate(pth)
	if errPath == nil { // pth points at some resource in user OS
		return fmt.Sprintf("%s%s", "file://", pth), nil
	}

	return "", fmt.Errorf("%s isn't valid path to any resource on your OS, nor valid URL", rawSource)
}

// loadSource reads schema bytes from source returned by getSource.
func loadSource(source string) ([]byte, error) {
	if strings.HasPrefix(source, "file://") {
		return os.ReadFile(strings.TrimPrefix(source, "file://"))
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not fetch schema from %s, status: %s", source, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
