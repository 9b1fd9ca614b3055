package scanf

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/itsatony/go-cuserr"

	"github.com/RaggaMufia/go-scanf/internal"
)

// Pattern is a compiled scanf format: the derived regular expression,
// the result kind, and the cast plan. It is immutable after
// compilation and safe for concurrent use without locking.
type Pattern struct {
	format      string
	formatBytes []byte // original bytes for KindBytes patterns
	kind        ValueKind
	resultKind  ResultKind
	re          *regexp.Regexp
	casts       []internal.Cast
	groupIdx    map[string]int // capture key -> submatch index (named only)
}

// compilePattern translates a format and hands the derived expression
// to the matching engine. Byte formats go through a Latin-1 decode so
// every format byte becomes exactly one pattern character; the same
// decode is applied to byte input at extraction time, which keeps
// literal bytes, widths, and %c counting bytes rather than runes.
func compilePattern(format string, formatBytes []byte, kind ValueKind, strict bool) (*Pattern, error) {
	src := format
	if kind == KindBytes {
		src = latin1String(formatBytes)
	}
	tr, err := internal.Translate(src, strict)
	if err != nil {
		return nil, NewCompileError(format, kind, err)
	}

	re, err := regexp.Compile(tr.Expr)
	if err != nil {
		return nil, NewExprError(format, tr.Expr, err)
	}

	p := &Pattern{
		format:      format,
		formatBytes: formatBytes,
		kind:        kind,
		resultKind:  ResultKindPositional,
		re:          re,
		casts:       tr.Casts,
	}
	if tr.Shape == internal.ShapeNamed {
		p.resultKind = ResultKindNamed
		p.groupIdx = make(map[string]int, len(tr.Casts))
		for _, c := range tr.Casts {
			p.groupIdx[c.Key] = re.SubexpIndex(c.Key)
		}
	}
	return p, nil
}

// Format returns the original format string the pattern was compiled
// from. For byte-sequence patterns this is the byte format rendered as
// a string; use FormatBytes for the raw form.
func (p *Pattern) Format() string {
	return p.format
}

// FormatBytes returns the original byte format, or nil for text
// patterns.
func (p *Pattern) FormatBytes() []byte {
	if p.formatBytes == nil {
		return nil
	}
	return bytes.Clone(p.formatBytes)
}

// ExprString returns the regular expression derived from the format.
func (p *Pattern) ExprString() string {
	return p.re.String()
}

// Kind returns whether extraction yields positional or named results.
func (p *Pattern) Kind() ResultKind {
	return p.resultKind
}

// ValueKind returns whether the pattern was compiled for text or byte
// input.
func (p *Pattern) ValueKind() ValueKind {
	return p.kind
}

// CaptureCount returns the number of capturing directives.
func (p *Pattern) CaptureCount() int {
	return len(p.casts)
}

// CastStep is one entry of a pattern's cast plan: the conversion
// letter applied to a capture, with its key for named patterns.
type CastStep struct {
	Key  string `json:"key,omitempty"`
	Conv string `json:"conv"`
}

// CastPlan returns the ordered cast plan derived from the format.
func (p *Pattern) CastPlan() []CastStep {
	plan := make([]CastStep, len(p.casts))
	for i, c := range p.casts {
		plan[i] = CastStep{Key: c.Key, Conv: string(c.Conv)}
	}
	return plan
}

// Extract matches the pattern against the start of input and applies
// the cast plan. A nil Result with a nil error means the input did not
// conform to the format; a cast failure is a real error.
func (p *Pattern) Extract(input string) (*Result, error) {
	if p.kind != KindText {
		return nil, cuserr.NewValidationError(ErrCodeCast, ErrMsgWrongKindExtract).
			WithMetadata(MetaKeyKind, p.kind.String())
	}

	m := p.re.FindStringSubmatch(input)
	if m == nil {
		return nil, nil
	}

	if p.resultKind == ResultKindNamed {
		named := make(map[string]any, len(p.casts))
		for _, c := range p.casts {
			v, err := internal.ApplyCast(c.Conv, m[p.groupIdx[c.Key]])
			if err != nil {
				return nil, NewCastError(err)
			}
			named[c.Key] = v
		}
		return &Result{kind: ResultKindNamed, named: named}, nil
	}

	values := make([]any, len(p.casts))
	for i, c := range p.casts {
		v, err := internal.ApplyCast(c.Conv, m[i+1])
		if err != nil {
			return nil, NewCastError(err)
		}
		values[i] = v
	}
	return &Result{kind: ResultKindPositional, values: values}, nil
}

// ExtractBytes is Extract for byte-sequence patterns. Input is
// matched through the same Latin-1 decode the format was compiled
// with, so matching is one byte per character. The s and c
// conversions yield []byte so the input domain is preserved; all
// other conversions behave as in Extract.
func (p *Pattern) ExtractBytes(input []byte) (*Result, error) {
	if p.kind != KindBytes {
		return nil, cuserr.NewValidationError(ErrCodeCast, ErrMsgWrongKindExtract).
			WithMetadata(MetaKeyKind, p.kind.String())
	}

	m := p.re.FindStringSubmatch(latin1String(input))
	if m == nil {
		return nil, nil
	}

	if p.resultKind == ResultKindNamed {
		named := make(map[string]any, len(p.casts))
		for _, c := range p.casts {
			v, err := castBytes(c.Conv, m[p.groupIdx[c.Key]])
			if err != nil {
				return nil, NewCastError(err)
			}
			named[c.Key] = v
		}
		return &Result{kind: ResultKindNamed, named: named}, nil
	}

	values := make([]any, len(p.casts))
	for i, c := range p.casts {
		v, err := castBytes(c.Conv, m[i+1])
		if err != nil {
			return nil, NewCastError(err)
		}
		values[i] = v
	}
	return &Result{kind: ResultKindPositional, values: values}, nil
}

// castBytes keeps raw-span conversions in the byte domain and routes
// everything else through the shared cast dispatch. Numeric spans only
// ever match ASCII, so the Latin-1 substring is already a plain
// string for them.
func castBytes(conv byte, sub string) (any, error) {
	if conv == 's' || conv == 'c' {
		return latin1Bytes(sub), nil
	}
	return internal.ApplyCast(conv, sub)
}

// latin1String maps each byte to the rune of the same value. Every
// byte of a format or input becomes exactly one character, so width
// bounds and literal bytes count bytes regardless of encoding.
func latin1String(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// latin1Bytes inverts latin1String. Every rune in s is below 0x100.
func latin1Bytes(s string) []byte {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = append(b, byte(r))
	}
	return b
}

// Result holds the typed values from one successful extraction. It is
// exactly one kind for its lifetime, decided when the pattern was
// compiled.
type Result struct {
	kind   ResultKind
	values []any
	named  map[string]any
}

// Kind returns whether the result is positional or named.
func (r *Result) Kind() ResultKind {
	return r.kind
}

// Values returns the ordered values of a positional result. It is nil
// for named results; a directive-free format yields an empty,
// non-nil slice.
func (r *Result) Values() []any {
	return r.values
}

// Named returns the key -> value mapping of a named result, nil for
// positional results.
func (r *Result) Named() map[string]any {
	return r.named
}

// Len returns the number of extracted values.
func (r *Result) Len() int {
	if r.kind == ResultKindNamed {
		return len(r.named)
	}
	return len(r.values)
}
