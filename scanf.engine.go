package scanf

import (
	"go.uber.org/zap"

	"github.com/RaggaMufia/go-scanf/internal"
)

// Engine is the main entry point for the scanf system. It owns the
// compiled-pattern cache and the configuration; there is no hidden
// process-wide state, so callers that need isolated caches simply
// create separate engines.
type Engine struct {
	cache  *PatternCache
	config *engineConfig
	logger *zap.Logger
}

// New creates a new scanf Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug(LogMsgEngineCreated,
		zap.Int(LogFieldCacheSize, config.cacheSize),
	)

	return &Engine{
		cache:  NewPatternCache(config.cacheSize),
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Compile translates a text format into a Pattern, bypassing the
// cache. The returned Pattern can be applied to any number of inputs.
func (e *Engine) Compile(format string) (*Pattern, error) {
	return e.compile(KindText, format, nil)
}

// CompileBytes translates a byte-sequence format into a Pattern whose
// s and c conversions preserve the byte domain.
func (e *Engine) CompileBytes(format []byte) (*Pattern, error) {
	return e.compile(KindBytes, string(format), format)
}

func (e *Engine) compile(kind ValueKind, format string, raw []byte) (*Pattern, error) {
	e.logger.Debug(LogMsgCompileStart,
		zap.String(LogFieldFormat, format),
		zap.String(LogFieldKind, kind.String()),
	)

	p, err := compilePattern(format, raw, kind, e.config.strict)
	if err != nil {
		return nil, err
	}

	e.logger.Debug(LogMsgCompileEnd,
		zap.String(LogFieldFormat, format),
		zap.String(LogFieldExpr, p.ExprString()),
		zap.String(LogFieldResult, p.Kind().String()),
		zap.Int(LogFieldCaptures, p.CaptureCount()),
	)
	return p, nil
}

// Scan compiles format through the cache and extracts from input. A
// nil Result with nil error means the input did not conform to the
// format.
func (e *Engine) Scan(format, input string) (*Result, error) {
	p, err := e.cached(KindText, format, nil)
	if err != nil {
		return nil, err
	}
	return p.Extract(input)
}

// ScanBytes is Scan for byte-sequence formats and input.
func (e *Engine) ScanBytes(format, input []byte) (*Result, error) {
	p, err := e.cached(KindBytes, string(format), format)
	if err != nil {
		return nil, err
	}
	return p.ExtractBytes(input)
}

// CompileCached returns the cached Pattern for a text format,
// compiling on a miss.
func (e *Engine) CompileCached(format string) (*Pattern, error) {
	return e.cached(KindText, format, nil)
}

// CompileBytesCached returns the cached Pattern for a byte format.
func (e *Engine) CompileBytesCached(format []byte) (*Pattern, error) {
	return e.cached(KindBytes, string(format), format)
}

func (e *Engine) cached(kind ValueKind, format string, raw []byte) (*Pattern, error) {
	return e.cache.getOrCompile(kind, format, func() (*Pattern, error) {
		e.logger.Debug(LogMsgCacheMiss,
			zap.String(LogFieldFormat, format),
			zap.String(LogFieldKind, kind.String()),
		)
		return e.compile(kind, format, raw)
	})
}

// PurgeCache clears the compiled-pattern cache.
func (e *Engine) PurgeCache() {
	e.cache.Purge()
	e.logger.Debug(LogMsgCachePurged)
}

// CacheStats returns a snapshot of the pattern cache counters.
func (e *Engine) CacheStats() PatternCacheStats {
	return e.cache.Stats()
}

// Strict reports whether the engine rejects unrecognized directives.
func (e *Engine) Strict() bool {
	return e.config.strict
}

// Conversions returns the conversion letters the directive grammar
// accepts, for documentation and CLI help.
func Conversions() string {
	return internal.ConversionLetters
}
