package scanf

import (
	"errors"

	"github.com/itsatony/go-cuserr"

	"github.com/RaggaMufia/go-scanf/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Compile errors
	ErrMsgCompileFailed    = "format compilation failed"
	ErrMsgMixedCapture     = "format mixes keyed and positional captures"
	ErrMsgDuplicateKey     = "format reuses a capture key"
	ErrMsgUnsupportedConv  = "format contains an unsupported conversion"
	ErrMsgInvalidExpr      = "derived pattern rejected by the matching engine"
	ErrMsgEmptyFormat      = "format cannot be empty"
	ErrMsgWrongKindExtract = "input kind does not match the pattern's value kind"

	// Extraction errors
	ErrMsgCastFailed    = "captured value failed its typed conversion"
	ErrMsgUnsafeLiteral = "matched text is not a safe literal"

	// Catalog errors
	ErrMsgCatalogRead      = "failed to read format catalog"
	ErrMsgCatalogParse     = "failed to parse format catalog"
	ErrMsgFormatExists     = "format name already registered"
	ErrMsgFormatNotFound   = "format name not registered"
	ErrMsgFormatNameEmpty  = "format name cannot be empty"

	// Store errors
	ErrMsgStoreClosed       = "format store is closed"
	ErrMsgStoreNotFound     = "stored format not found"
	ErrMsgStoreConnString   = "connection string cannot be empty"
	ErrMsgStoreOpenFailed   = "failed to open format store"
	ErrMsgStoreQueryFailed  = "format store query failed"
	ErrMsgStoreMigrate      = "format store migration failed"
)

// Error code constants for categorization
const (
	ErrCodeCompile = "SCANF_COMPILE"
	ErrCodeCast    = "SCANF_CAST"
	ErrCodeLiteral = "SCANF_LITERAL"
	ErrCodeCatalog = "SCANF_CATALOG"
	ErrCodeStore   = "SCANF_STORE"
)

// NewCompileError wraps a translator failure with the offending format.
func NewCompileError(format string, kind ValueKind, cause error) error {
	msg := ErrMsgCompileFailed
	switch {
	case IsMixedCaptureError(cause):
		msg = ErrMsgMixedCapture
	case IsUnsupportedConversionError(cause):
		msg = ErrMsgUnsupportedConv
	}
	var dup *internal.DuplicateKeyError
	if errors.As(cause, &dup) {
		return cuserr.WrapStdError(cause, ErrCodeCompile, ErrMsgDuplicateKey).
			WithMetadata(MetaKeyFormat, format).
			WithMetadata(MetaKeyKey, dup.Key).
			WithMetadata(MetaKeyKind, kind.String())
	}
	return cuserr.WrapStdError(cause, ErrCodeCompile, msg).
		WithMetadata(MetaKeyFormat, format).
		WithMetadata(MetaKeyKind, kind.String())
}

// NewExprError reports a derived pattern the matching engine rejected.
func NewExprError(format string, expr string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeCompile, ErrMsgInvalidExpr).
		WithMetadata(MetaKeyFormat, format).
		WithMetadata(MetaKeyValue, expr)
}

// NewCastError wraps a typed-conversion failure during extraction.
func NewCastError(cause error) error {
	var lit *internal.UnsafeLiteralError
	if errors.As(cause, &lit) {
		return cuserr.WrapStdError(cause, ErrCodeLiteral, ErrMsgUnsafeLiteral)
	}
	var ce *internal.CastError
	if errors.As(cause, &ce) {
		return cuserr.WrapStdError(cause, ErrCodeCast, ErrMsgCastFailed).
			WithMetadata(MetaKeyConversion, string(ce.Conv)).
			WithMetadata(MetaKeyValue, ce.Value)
	}
	return cuserr.WrapStdError(cause, ErrCodeCast, ErrMsgCastFailed)
}

// NewFormatExistsError creates a catalog name collision error.
func NewFormatExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeCatalog, ErrMsgFormatExists).
		WithMetadata(MetaKeyName, name)
}

// NewFormatNotFoundError creates a catalog lookup failure.
func NewFormatNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyName, ErrMsgFormatNotFound).
		WithMetadata(MetaKeyName, name)
}

// NewEmptyFormatNameError creates an empty catalog name error.
func NewEmptyFormatNameError() error {
	return cuserr.NewValidationError(ErrCodeCatalog, ErrMsgFormatNameEmpty)
}

// NewCatalogReadError wraps a catalog file read failure.
func NewCatalogReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeCatalog, ErrMsgCatalogRead).
		WithMetadata(LogFieldPath, path)
}

// NewCatalogParseError wraps a catalog YAML decode failure.
func NewCatalogParseError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeCatalog, ErrMsgCatalogParse).
		WithMetadata(LogFieldPath, path)
}

// NewStoreClosedError creates an error for operations on a closed store.
func NewStoreClosedError() error {
	return cuserr.NewValidationError(ErrCodeStore, ErrMsgStoreClosed)
}

// NewStoreNotFoundError creates a store lookup failure.
func NewStoreNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyName, ErrMsgStoreNotFound).
		WithMetadata(MetaKeyName, name)
}

// NewStoreError wraps a storage backend failure.
func NewStoreError(msg string, cause error) error {
	if cause == nil {
		return cuserr.NewValidationError(ErrCodeStore, msg)
	}
	return cuserr.WrapStdError(cause, ErrCodeStore, msg)
}

// IsMixedCaptureError reports whether err is the keyed/positional
// mixing compile failure.
func IsMixedCaptureError(err error) bool {
	var target *internal.MixedCaptureError
	return errors.As(err, &target)
}

// IsUnsupportedConversionError reports a strict-grammar rejection of
// an unrecognized directive.
func IsUnsupportedConversionError(err error) bool {
	var target *internal.UnsupportedConversionError
	return errors.As(err, &target)
}

// IsCastError reports whether err is a typed-conversion failure.
func IsCastError(err error) bool {
	var target *internal.CastError
	return errors.As(err, &target)
}

// IsUnsafeLiteralError reports whether err is a %r literal rejection.
func IsUnsafeLiteralError(err error) bool {
	var target *internal.UnsafeLiteralError
	return errors.As(err, &target)
}
