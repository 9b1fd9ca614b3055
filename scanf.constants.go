package scanf

// Default engine settings
const (
	// DefaultCacheSize is the pattern cache capacity used when no
	// WithCacheSize option is given.
	DefaultCacheSize = 128
)

// ValueKind distinguishes text-string formats from byte-sequence
// formats. The two must never conflate in the cache even when they
// render identically, because s/c extraction preserves the domain.
type ValueKind int

const (
	KindText ValueKind = iota
	KindBytes
)

// String returns the kind name for logs and cache keys.
func (k ValueKind) String() string {
	if k == KindBytes {
		return "bytes"
	}
	return "text"
}

// ResultKind says whether a compiled pattern yields positional values
// or a named mapping. It is fixed per pattern at compile time.
type ResultKind int

const (
	ResultKindPositional ResultKind = iota
	ResultKindNamed
)

// String returns the result kind name.
func (k ResultKind) String() string {
	if k == ResultKindNamed {
		return "named"
	}
	return "positional"
}

// Log message constants
const (
	LogMsgEngineCreated  = "engine created"
	LogMsgCompileStart   = "compiling format"
	LogMsgCompileEnd     = "format compiled"
	LogMsgCacheHit       = "pattern cache hit"
	LogMsgCacheMiss      = "pattern cache miss"
	LogMsgCacheEvict     = "pattern cache eviction"
	LogMsgCachePurged    = "pattern cache purged"
	LogMsgCatalogLoaded  = "format catalog loaded"
	LogMsgFormatRegister = "format registered"
)

// Log field names
const (
	LogFieldFormat    = "format"
	LogFieldExpr      = "expr"
	LogFieldKind      = "value_kind"
	LogFieldResult    = "result_kind"
	LogFieldCaptures  = "capture_count"
	LogFieldCacheSize = "cache_size"
	LogFieldEntries   = "entry_count"
	LogFieldName      = "format_name"
	LogFieldPath      = "path"
)

// Metadata keys attached to errors
const (
	MetaKeyFormat     = "format"
	MetaKeyConversion = "conversion"
	MetaKeyValue      = "value"
	MetaKeyKey        = "key"
	MetaKeyName       = "name"
	MetaKeyKind       = "value_kind"
)
