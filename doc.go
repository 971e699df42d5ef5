// Package dsnutils provides DBContext struct with methods that may be used for testing
// database connection strings (DSNs) against live SQL backends.
//
// DBContext may be initialized by three ways:
//
// First, returns *DBContext with default services and default schema engine:
//	func NewDefaultDBContext(isDebug bool, jsonSchemaDir string) *DBContext
//
// Second, returns *DBContext with schema validators built for named engine:
//	func NewDBContextForEngine(engineName string, isDebug bool, jsonSchemaDir string) (*DBContext, error)
//
// Third, more customisable returns *DBContext with provided services:
//	func NewDBContext(ch connectivityChecker, c cacheable, jv SchemaValidators, p PathFinders, s Serializers, t TypeMappers, d debuggable) *DBContext
//
// No matter which way you choose, you can inject your custom services afterwards with one of available setters:
//	func (dbCtx *DBContext) SetDebugger(d debuggable)
//	func (dbCtx *DBContext) SetCache(c cacheable)
//	func (dbCtx *DBContext) SetConnectivityChecker(ch connectivityChecker)
//	func (dbCtx *DBContext) SetTemplateEngine(t templateEngine)
//	func (dbCtx *DBContext) SetSchemaStringValidator(j validator.SchemaValidator)
//	func (dbCtx *DBContext) SetSchemaReferenceValidator(j validator.SchemaValidator)
//	func (dbCtx *DBContext) SetJSONPathFinder(r pathFinder)
//	func (dbCtx *DBContext) SetYAMLPathFinder(r pathFinder)
//	func (dbCtx *DBContext) SetJSONSerializer(jf serializable)
//	func (dbCtx *DBContext) SetYAMLSerializer(yd serializable)
//	func (dbCtx *DBContext) SetJSONTypeMapper(c typeMapper)
//	func (dbCtx *DBContext) SetYAMLTypeMapper(c typeMapper)
//	func (dbCtx *DBContext) SetGoTypeMapper(c typeMapper)
//
// Those services will be used in utility methods.
// For example, if you want to use your own connectivity checker, create your own struct,
// implement Check(ctx context.Context, d dsn.DSN) error method on it,
// and then inject it with "func (dbCtx *DBContext) SetConnectivityChecker(ch connectivityChecker)" method.
//
// Testing DSNs usually consist the following aspects:
//
// * Loading connection strings:
//
//	func (dbCtx *DBContext) LoadDSN(backend dsn.Backend, rawTemplate, cacheKey string) error
//	func (dbCtx *DBContext) LoadDSNFromEnv(backend dsn.Backend, envVar, cacheKey string) error
//
// * Assertions:
//
//	func (dbCtx *DBContext) AssertBackendIsReachable(cacheKey string) error
//	func (dbCtx *DBContext) AssertBackendIsNotReachable(cacheKey string) error
//	func (dbCtx *DBContext) AssertComponentIs(cacheKey, expr, valueTemplate string) error
//	func (dbCtx *DBContext) AssertComponentIsType(cacheKey, expr string, inType types.DataType) error
//	func (dbCtx *DBContext) AssertDSNMatchesSchemaByString(cacheKey, schemaTemplate string) error
//	func (dbCtx *DBContext) AssertDSNMatchesSchemaByReference(cacheKey, referenceTemplate string) error
//
// * Preserving data:
//
//	func (dbCtx *DBContext) SaveComponent(cacheKey, expr, newCacheKey string) error
//	func (dbCtx *DBContext) Save(valueTemplate, cacheKey string) error
//
// * Data generation:
//
//	func (dbCtx *DBContext) GenerateRandomInt(from, to int, cacheKey string) error
//	func (dbCtx *DBContext) GeneratorRandomRunes(charset string) func(from, to int, cacheKey string) error
//
// * Debugging:
//
//	func (dbCtx *DBContext) DebugPrintDSN(cacheKey string) error
//	func (dbCtx *DBContext) DebugStart() error
//	func (dbCtx *DBContext) DebugStop() error
package dsnutils
