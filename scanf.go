// Package scanf compiles C-scanf-style format strings into typed
// extraction patterns for text and byte input.
//
// A format such as "%d %s" is translated into an anchored regular
// expression with capture annotations, memoized in a bounded cache,
// and applied to input strings to yield typed values:
//
//	engine := scanf.MustNew()
//	result, err := engine.Scan("%d %s", "42 answers")
//	// result.Values(): []any{int64(42), "answers"}
//
// # Directive Syntax
//
// A directive is % followed by an optional key, skip flag, width and
// length modifier, then one conversion letter:
//
//	%[(name)][*][width][length]conversion
//
// Conversions: d (decimal), u (unsigned digits), o (octal), x/X (hex),
// i (base auto-detected), e/E/f/F/g/G (float, including NaN and Inf
// spellings), s (non-whitespace run), c (exact characters, keeps
// whitespace), r (safe literal value). %% matches a literal percent.
// Length modifiers (h, hh, l, ll, j, z, t, L) are accepted and
// ignored. Anything else after a % falls through as literal text
// unless the engine is built with WithStrictFormats.
//
// # Keyed Captures
//
// Directives may name their capture; the result then becomes a
// mapping instead of a tuple, and every non-skip directive must be
// keyed:
//
//	result, _ := engine.Scan("%(x)d,%(y)d", "3,4")
//	// result.Named(): map[string]any{"x": int64(3), "y": int64(4)}
//
// # Whitespace
//
// Literal whitespace in the format matches one-or-more whitespace
// characters in the input, and every directive except %c skips
// leading whitespace, so matches tolerate irregular spacing the way
// scanf does.
//
// # Matching Policy
//
// Matches are anchored at the start of the input only; trailing input
// is ignored. A non-conforming input is not an error; Scan and
// Extract return a nil Result.
//
// # Compiled Patterns and Caching
//
// Engine.Compile returns an immutable Pattern that can be shared
// across goroutines. Engine.Scan routes through a bounded
// compiled-pattern cache keyed by (value kind, format); byte and text
// formats never collide even when textually identical.
//
// # Named Format Catalogs
//
// Frequently used formats can be registered under names, or loaded
// from a YAML catalog file, and optionally persisted through a
// FormatStore (in-memory or PostgreSQL):
//
//	catalog := scanf.NewCatalog(engine)
//	_ = catalog.Register("point", "%(x)d,%(y)d", "cartesian point")
//	p, _ := catalog.Lookup("point")
package scanf
