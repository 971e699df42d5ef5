package dsnutils

import (
	"github.com/pawelWritesCode/dsnutils/pkg/cache"
	"github.com/pawelWritesCode/dsnutils/pkg/dbctx"
	"github.com/pawelWritesCode/dsnutils/pkg/debugger"
	"github.com/pawelWritesCode/dsnutils/pkg/osutils"
	"github.com/pawelWritesCode/dsnutils/pkg/pathfinder"
	"github.com/pawelWritesCode/dsnutils/pkg/schema"
	"github.com/pawelWritesCode/dsnutils/pkg/serializer"
	"github.com/pawelWritesCode/dsnutils/pkg/template"
	"github.com/pawelWritesCode/dsnutils/pkg/types"
	"github.com/pawelWritesCode/dsnutils/pkg/validator"
)

// DBContext holds utility services for working with database connection strings (DSNs).
type DBContext struct {
	// Debugger represents debugger.
	Debugger debuggable

	// Cache is storage for data. Parsed DSN values live here under caller-chosen keys.
	Cache cacheable

	// Checker is service that has ability to confirm reachability of database behind DSN.
	Checker connectivityChecker

	// TemplateEngine is entity that has ability to work with template values.
	TemplateEngine templateEngine

	// SchemaValidators holds validators available to validate data against schemas.
	SchemaValidators SchemaValidators

	// PathFinders are entities that has ability to obtain data from different data formats.
	PathFinders PathFinders

	// Serializers are entities that has ability to serialize and deserialize data in particular format.
	Serializers Serializers

	// TypeMappers are entities that has ability to map underlying data type into different format data type.
	TypeMappers TypeMappers

	// fileRecognizer is entity that has ability to recognize file reference.
	fileRecognizer fileRecognizer
}

// Serializers is container for entities that know how to serialize and deserialize data.
type Serializers struct {
	// JSON is entity that has ability to serialize and deserialize JSON bytes.
	JSON serializable

	// YAML is entity that has ability to serialize and deserialize YAML bytes.
	YAML serializable
}

// SchemaValidators is container for JSON schema validators.
type SchemaValidators struct {
	// StringValidator represents entity that has ability to validate document against string of containing schema.
	StringValidator validator.SchemaValidator

	// ReferenceValidator represents entity that has ability to validate document against string with reference
	// to schema, which may be URL or relative/full OS path for example.
	ReferenceValidator validator.SchemaValidator
}

// PathFinders is container for different data types pathfinders.
type PathFinders struct {
	// JSON is entity that has ability to obtain data from bytes in JSON format.
	JSON pathFinder

	// YAML is entity that has ability to obtain data from bytes in YAML format.
	YAML pathFinder
}

// TypeMappers is container for different data format mappers
type TypeMappers struct {
	// JSON is entity that has ability to map underlying data type into JSON data type
	JSON typeMapper

	// YAML is entity that has ability to map underlying data type into YAML data type
	YAML typeMapper

	// GO is entity that has ability to map underlying data type into GO-like data type
	GO typeMapper
}

// NewDefaultDBContext returns *DBContext with default services and schema.EngineXG validators.
// jsonSchemaDir may be empty string or valid full path to directory with JSON schemas.
func NewDefaultDBContext(isDebug bool, jsonSchemaDir string) *DBContext {
	defaultCache := cache.NewConcurrentCache()

	jsonSchemaValidators := SchemaValidators{
		StringValidator:    schema.NewJSONSchemaRawXGValidator(),
		ReferenceValidator: schema.NewDefaultJSONSchemaReferenceXGValidator(jsonSchemaDir),
	}

	pathFinders := PathFinders{
		JSON: pathfinder.NewDynamicJSONPathFinder(
			pathfinder.NewGJSONFinder(),
			pathfinder.NewOliveagleJSONFinder(),
			pathfinder.NewAntchfxJSONQueryFinder(),
		),
		YAML: pathfinder.NewGoccyGoYamlFinder(),
	}

	serializers := Serializers{
		JSON: serializer.NewJSONFormatter(),
		YAML: serializer.NewYAMLFormatter(),
	}

	typeMappers := TypeMappers{
		JSON: types.NewJSONTypeMapper(),
		YAML: types.NewYAMLTypeMapper(),
		GO:   types.NewGoTypeMapper(),
	}

	defaultDebugger := debugger.NewDefault(isDebug)

	return NewDBContext(dbctx.NewSQLChecker(), defaultCache, jsonSchemaValidators, pathFinders, serializers, typeMappers, defaultDebugger)
}

// NewDBContextForEngine works as NewDefaultDBContext, but schema validators are built for given engine name.
// Unsupported engine name surfaces as schema.ErrConfiguration here, before any document is validated.
func NewDBContextForEngine(engineName string, isDebug bool, jsonSchemaDir string) (*DBContext, error) {
	engine, err := schema.EngineFromString(engineName)
	if err != nil {
		return nil, err
	}

	stringValidator, err := schema.NewRawValidator(engine)
	if err != nil {
		return nil, err
	}

	referenceValidator, err := schema.NewReferenceValidator(engine, jsonSchemaDir)
	if err != nil {
		return nil, err
	}

	dbCtx := NewDefaultDBContext(isDebug, jsonSchemaDir)
	dbCtx.SetSchemaStringValidator(stringValidator)
	dbCtx.SetSchemaReferenceValidator(referenceValidator)

	return dbCtx, nil
}

// NewDBContext returns *DBContext
func NewDBContext(ch connectivityChecker, c cacheable, jv SchemaValidators, p PathFinders, s Serializers, t TypeMappers, d debuggable) *DBContext {
	return &DBContext{
		Debugger:         d,
		Cache:            c,
		Checker:          ch,
		TemplateEngine:   template.New(),
		SchemaValidators: jv,
		PathFinders:      p,
		Serializers:      s,
		TypeMappers:      t,
		fileRecognizer:   osutils.NewOSFileRecognizer("file://", osutils.NewFileValidator()),
	}
}

// ResetState resets state of DBContext to initial.
func (dbCtx *DBContext) ResetState(isDebug bool) {
	dbCtx.Cache.Reset()
	dbCtx.Debugger.Reset(isDebug)
}

// SetDebugger sets new debugger for DBContext.
func (dbCtx *DBContext) SetDebugger(d debuggable) {
	dbCtx.Debugger = d
}

// SetCache sets new cacheable for DBContext.
func (dbCtx *DBContext) SetCache(c cacheable) {
	dbCtx.Cache = c
}

// SetConnectivityChecker sets new connectivity checker for DBContext.
func (dbCtx *DBContext) SetConnectivityChecker(ch connectivityChecker) {
	dbCtx.Checker = ch
}

// SetTemplateEngine sets new template Engine for DBContext.
func (dbCtx *DBContext) SetTemplateEngine(t templateEngine) {
	dbCtx.TemplateEngine = t
}

// SetSchemaStringValidator sets new schema StringValidator for DBContext.
func (dbCtx *DBContext) SetSchemaStringValidator(j validator.SchemaValidator) {
	dbCtx.SchemaValidators.StringValidator = j
}

// SetSchemaReferenceValidator sets new schema ReferenceValidator for DBContext.
func (dbCtx *DBContext) SetSchemaReferenceValidator(j validator.SchemaValidator) {
	dbCtx.SchemaValidators.ReferenceValidator = j
}

// SetJSONPathFinder sets new JSON pathfinder for DBContext.
func (dbCtx *DBContext) SetJSONPathFinder(r pathFinder) {
	dbCtx.PathFinders.JSON = r
}

// SetYAMLPathFinder sets new YAML pathfinder for DBContext.
func (dbCtx *DBContext) SetYAMLPathFinder(r pathFinder) {
	dbCtx.PathFinders.YAML = r
}

// SetJSONSerializer sets new JSON serializer for DBContext.
func (dbCtx *DBContext) SetJSONSerializer(jf serializable) {
	dbCtx.Serializers.JSON = jf
}

// SetYAMLSerializer sets new YAML serializer for DBContext.
func (dbCtx *DBContext) SetYAMLSerializer(yd serializable) {
	dbCtx.Serializers.YAML = yd
}

// SetJSONTypeMapper sets new type mapper for JSON.
func (dbCtx *DBContext) SetJSONTypeMapper(c typeMapper) {
	dbCtx.TypeMappers.JSON = c
}

// SetYAMLTypeMapper sets new type mapper for YAML.
func (dbCtx *DBContext) SetYAMLTypeMapper(c typeMapper) {
	dbCtx.TypeMappers.YAML = c
}

// SetGoTypeMapper sets new type mapper for Go.
func (dbCtx *DBContext) SetGoTypeMapper(c typeMapper) {
	dbCtx.TypeMappers.GO = c
}
