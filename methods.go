package dsnutils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pawelWritesCode/dsnutils/pkg/dsn"
	"github.com/pawelWritesCode/dsnutils/pkg/mathutils"
	"github.com/pawelWritesCode/dsnutils/pkg/osutils"
	"github.com/pawelWritesCode/dsnutils/pkg/stringutils"
	"github.com/pawelWritesCode/dsnutils/pkg/types"
)

// LoadDSN parses connection string and preserves obtained DSN value in cache under cacheKey.
// rawTemplate may contain template values and may be reference to file with connection string,
// for example: file:///run/secrets/postgres_dsn
func (dbCtx *DBContext) LoadDSN(backend dsn.Backend, rawTemplate, cacheKey string) error {
	raw, err := dbCtx.TemplateEngine.Replace(rawTemplate, dbCtx.Cache.All())
	if err != nil {
		return fmt.Errorf("template engine has problem with connection string, err: %w", err)
	}

	fileReference, found := dbCtx.fileRecognizer.Recognize(raw)
	if found {
		if fileReference.Reference.Type != osutils.ReferenceTypeOSPath {
			return fmt.Errorf("%s does not point at any file in your local OS", raw)
		}

		rawBytes, err := os.ReadFile(fileReference.Reference.Value)
		if err != nil {
			return fmt.Errorf("could not read connection string from file, err: %w", err)
		}

		raw = strings.TrimSpace(string(rawBytes))
	}

	d, err := dsn.Parse(raw, backend)
	if err != nil {
		return err
	}

	dbCtx.Cache.Save(cacheKey, d)

	if dbCtx.Debugger.IsOn() {
		dbCtx.Debugger.Print(fmt.Sprintf("%s DSN preserved under %s key: %s", backend, cacheKey, d.Redacted()))
	}

	return nil
}

// LoadDSNFromEnv works as LoadDSN, but connection string comes from environment variable envVar,
// for example osutils.EnvPostgresDSN or osutils.EnvMySQLDSN.
func (dbCtx *DBContext) LoadDSNFromEnv(backend dsn.Backend, envVar, cacheKey string) error {
	raw, err := osutils.EnvValue(envVar)
	if err != nil {
		return err
	}

	d, err := dsn.Parse(raw, backend)
	if err != nil {
		return fmt.Errorf("connection string from %s is invalid, err: %w", envVar, err)
	}

	dbCtx.Cache.Save(cacheKey, d)

	if dbCtx.Debugger.IsOn() {
		dbCtx.Debugger.Print(fmt.Sprintf("%s DSN preserved under %s key: %s", backend, cacheKey, d.Redacted()))
	}

	return nil
}

// AssertBackendIsReachable checks whether database behind DSN preserved under cacheKey accepts connections.
// Single connection is opened and released right away.
func (dbCtx *DBContext) AssertBackendIsReachable(cacheKey string) error {
	d, err := dbCtx.getPreservedDSN(cacheKey)
	if err != nil {
		return err
	}

	return dbCtx.Checker.Check(context.Background(), d)
}

// AssertBackendIsNotReachable checks whether database behind DSN preserved under cacheKey refuses connections.
func (dbCtx *DBContext) AssertBackendIsNotReachable(cacheKey string) error {
	d, err := dbCtx.getPreservedDSN(cacheKey)
	if err != nil {
		return err
	}

	if err := dbCtx.Checker.Check(context.Background(), d); err == nil {
		return fmt.Errorf("%w: backend %s at %s:%d is reachable, expected not to be", ErrExpectation, d.Backend, d.Host, d.Port)
	}

	return nil
}

// AssertComponentIs checks whether component of DSN preserved under cacheKey
// has value matching valueTemplate. expr should obtain component from JSON document
// with DSN components, for example: host, port, database.
func (dbCtx *DBContext) AssertComponentIs(cacheKey, expr, valueTemplate string) error {
	value, err := dbCtx.TemplateEngine.Replace(valueTemplate, dbCtx.Cache.All())
	if err != nil {
		return fmt.Errorf("template engine has problem with expected value, err: %w", err)
	}

	node, err := dbCtx.getDSNComponent(cacheKey, expr)
	if err != nil {
		return err
	}

	if nodeValue := fmt.Sprintf("%v", node); nodeValue != value {
		return fmt.Errorf("%w: component %s has value %s, expected %s", ErrExpectation, expr, nodeValue, value)
	}

	return nil
}

// AssertComponentIsType checks whether component of DSN preserved under cacheKey has given JSON data type.
func (dbCtx *DBContext) AssertComponentIsType(cacheKey, expr string, inType types.DataType) error {
	node, err := dbCtx.getDSNComponent(cacheKey, expr)
	if err != nil {
		return err
	}

	if obtained := dbCtx.TypeMappers.JSON.Map(node); obtained != inType {
		return fmt.Errorf("%w: component %s has type %s, expected %s", ErrExpectation, expr, obtained, inType)
	}

	return nil
}

// SaveComponent preserves component of DSN saved under cacheKey in cache under newCacheKey.
func (dbCtx *DBContext) SaveComponent(cacheKey, expr, newCacheKey string) error {
	node, err := dbCtx.getDSNComponent(cacheKey, expr)
	if err != nil {
		return err
	}

	dbCtx.Cache.Save(newCacheKey, node)

	return nil
}

// Save preserves value computed from valueTemplate in cache under cacheKey.
func (dbCtx *DBContext) Save(valueTemplate, cacheKey string) error {
	value, err := dbCtx.TemplateEngine.Replace(valueTemplate, dbCtx.Cache.All())
	if err != nil {
		return fmt.Errorf("template engine has problem with provided value, err: %w", err)
	}

	dbCtx.Cache.Save(cacheKey, value)

	return nil
}

// AssertDSNMatchesSchemaByString validates components of DSN preserved under cacheKey
// against schema passed as string. Schema may be in JSON or YAML format.
func (dbCtx *DBContext) AssertDSNMatchesSchemaByString(cacheKey, schemaTemplate string) error {
	jsonSchema, err := dbCtx.TemplateEngine.Replace(schemaTemplate, dbCtx.Cache.All())
	if err != nil {
		return fmt.Errorf("template engine has problem with provided schema, err: %w", err)
	}

	document, err := dbCtx.getDSNDocument(cacheKey)
	if err != nil {
		return err
	}

	return dbCtx.SchemaValidators.StringValidator.Validate(string(document), jsonSchema)
}

// AssertDSNMatchesSchemaByReference validates components of DSN preserved under cacheKey
// against schema located under referenceTemplate, which may be URL or relative/full OS path.
func (dbCtx *DBContext) AssertDSNMatchesSchemaByReference(cacheKey, referenceTemplate string) error {
	reference, err := dbCtx.TemplateEngine.Replace(referenceTemplate, dbCtx.Cache.All())
	if err != nil {
		return fmt.Errorf("template engine has problem with provided reference, err: %w", err)
	}

	document, err := dbCtx.getDSNDocument(cacheKey)
	if err != nil {
		return err
	}

	return dbCtx.SchemaValidators.ReferenceValidator.Validate(string(document), reference)
}

// GenerateRandomInt generates random integer from provided range and preserves it in cache under cacheKey.
func (dbCtx *DBContext) GenerateRandomInt(from, to int, cacheKey string) error {
	randomInteger, err := mathutils.RandomInt(from, to)
	if err != nil {
		return err
	}

	dbCtx.Cache.Save(cacheKey, randomInteger)

	return nil
}

// GeneratorRandomRunes returns generator of random strings from given charset,
// useful for generating database names, users or passwords in test fixtures.
func (dbCtx *DBContext) GeneratorRandomRunes(charset string) func(from, to int, cacheKey string) error {
	return func(from, to int, cacheKey string) error {
		randomLength, err := mathutils.RandomInt(from, to)
		if err != nil {
			return err
		}

		dbCtx.Cache.Save(cacheKey, string(stringutils.RunesFromCharset(randomLength, []rune(charset))))

		return nil
	}
}

// DebugPrintDSN prints DSN preserved under cacheKey with masked password.
func (dbCtx *DBContext) DebugPrintDSN(cacheKey string) error {
	d, err := dbCtx.getPreservedDSN(cacheKey)
	if err != nil {
		return err
	}

	dbCtx.Debugger.Print(d.Redacted())

	return nil
}

// DebugStart starts debugging mode.
func (dbCtx *DBContext) DebugStart() error {
	dbCtx.Debugger.TurnOn()

	return nil
}

// DebugStop stops debugging mode.
func (dbCtx *DBContext) DebugStop() error {
	dbCtx.Debugger.TurnOff()

	return nil
}

// getPreservedDSN returns DSN value preserved in cache under cacheKey.
func (dbCtx *DBContext) getPreservedDSN(cacheKey string) (dsn.DSN, error) {
	dsnInterface, err := dbCtx.Cache.GetSaved(cacheKey)
	if err != nil {
		return dsn.DSN{}, err
	}

	d, ok := dsnInterface.(dsn.DSN)
	if !ok {
		return dsn.DSN{}, fmt.Errorf("%w: value under key %s in cache doesn't contain dsn.DSN", ErrPreservedData, cacheKey)
	}

	return d, nil
}

// getDSNDocument returns JSON document with components of DSN preserved under cacheKey.
func (dbCtx *DBContext) getDSNDocument(cacheKey string) ([]byte, error) {
	d, err := dbCtx.getPreservedDSN(cacheKey)
	if err != nil {
		return nil, err
	}

	document, err := d.Document()
	if err != nil {
		return nil, fmt.Errorf("%w: could not serialize DSN components, err: %s", ErrJson, err.Error())
	}

	return document, nil
}

// getDSNComponent obtains single component from DSN preserved under cacheKey according to expr.
func (dbCtx *DBContext) getDSNComponent(cacheKey, expr string) (any, error) {
	document, err := dbCtx.getDSNDocument(cacheKey)
	if err != nil {
		return nil, err
	}

	node, err := dbCtx.PathFinders.JSON.Find(expr, document)
	if err != nil {
		return nil, err
	}

	return node, nil
}
