package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ResultShape says whether extraction yields an ordered tuple of
// values or a key → value mapping. The shape is fixed at compile time
// by whether any directive carried a %(name) key.
type ResultShape int

const (
	ShapePositional ResultShape = iota
	ShapeNamed
)

// String returns the shape name for logs and CLI output.
func (s ResultShape) String() string {
	if s == ShapeNamed {
		return "named"
	}
	return "positional"
}

// Cast records the typed conversion for one capture group, in capture
// order. Key is empty for positional shapes.
type Cast struct {
	Key  string
	Conv byte // lowercased conversion letter
}

// Translation is the output of compiling one format string: the
// assembled regular expression source (start-anchored) plus the cast
// plan derived from the directive walk.
type Translation struct {
	Expr  string
	Shape ResultShape
	Casts []Cast
}

// Base sub-expressions per conversion. Repetition for u/s/c/r is
// appended separately because it depends on the width.
const (
	exprDecimal = `[-+]?[0-9]+`
	exprOctal   = `[-+]?[0-7]+`
	exprHex     = `[-+]?(?:0[xX])?[0-9A-Fa-f]+`
	exprAuto    = `[-+]?(?:(?:0[xX][0-9A-Fa-f]+)|(?:0[0-7]+)|(?:[0-9]+))`
	exprFloat   = `(?:[-+]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?)` +
		`|(?:[-+]?[nN][aA][nN])` +
		`|(?:[-+]?[iI][nN][fF](?:[iI][nN][iI][tT][yY])?)`

	exprLeadingWS = `\s*`
	exprSomeWS    = `\s+`
	exprAnchor    = `\A`
)

// MixedCaptureError reports a format that combines %(name) captures
// with bare positional captures.
type MixedCaptureError struct {
	Format string
}

func (e *MixedCaptureError) Error() string {
	return ErrMsgMixedCapture
}

// DuplicateKeyError reports a %(name) key used more than once.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMsgDuplicateKey, e.Key)
}

// UnsupportedConversionError reports a stray % sequence under the
// strict grammar. The permissive grammar lets it fall through as
// literal text instead.
type UnsupportedConversionError struct {
	Literal string
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMsgUnsupportedConversion, e.Literal)
}

// Translator error messages
const (
	ErrMsgMixedCapture          = "cannot mix keyed and positional captures in one format"
	ErrMsgDuplicateKey          = "capture key used more than once"
	ErrMsgUnsupportedConversion = "unrecognized directive in strict format"
)

// Translate compiles a scanf format string into a Translation. With
// strict set, literal spans containing a % fail instead of matching
// themselves.
func Translate(format string, strict bool) (*Translation, error) {
	dirs := FindDirectives(format)

	var expr strings.Builder
	expr.WriteString(exprAnchor)

	var casts []Cast
	keyed, bare := 0, 0
	seen := make(map[string]struct{})

	end := 0
	for _, d := range dirs {
		gap, err := translateGap(format[end:d.Start], strict)
		if err != nil {
			return nil, err
		}
		expr.WriteString(gap)
		expr.WriteString(translateDirective(d))
		end = d.End

		if d.Escape || d.Skip {
			continue
		}
		if d.Key != "" {
			if _, dup := seen[d.Key]; dup {
				return nil, &DuplicateKeyError{Key: d.Key}
			}
			seen[d.Key] = struct{}{}
			keyed++
		} else {
			bare++
		}
		casts = append(casts, Cast{Key: d.Key, Conv: d.CastConv()})
	}

	// Trailing literal span after the last directive.
	gap, err := translateGap(format[end:], strict)
	if err != nil {
		return nil, err
	}
	expr.WriteString(gap)

	if keyed > 0 && bare > 0 {
		return nil, &MixedCaptureError{Format: format}
	}

	shape := ShapePositional
	if keyed > 0 {
		shape = ShapeNamed
	}
	return &Translation{
		Expr:  expr.String(),
		Shape: shape,
		Casts: casts,
	}, nil
}

// translateGap converts a literal span between directives into a
// pattern fragment. Whitespace runs collapse to \s+ so the match
// tolerates irregular spacing, while literal text must appear as-is.
func translateGap(span string, strict bool) (string, error) {
	if span == "" {
		return "", nil
	}
	if strict {
		if i := strings.IndexByte(span, '%'); i >= 0 {
			return "", &UnsupportedConversionError{Literal: snippet(span[i:])}
		}
	}
	if strings.TrimSpace(span) == "" {
		return exprSomeWS, nil
	}

	// Preserve leading/trailing whitespace as empty edge pieces so the
	// joined expression still demands whitespace there.
	var pieces []string
	if strings.TrimLeft(span, spaceCutset) != span {
		pieces = append(pieces, "")
	}
	for _, word := range strings.Fields(span) {
		pieces = append(pieces, regexp.QuoteMeta(word))
	}
	if strings.TrimRight(span, spaceCutset) != span {
		pieces = append(pieces, "")
	}
	return strings.Join(pieces, exprSomeWS), nil
}

const spaceCutset = " \t\n\v\f\r"

// snippet bounds error metadata to a short prefix of the span.
func snippet(s string) string {
	const max = 16
	if len(s) > max {
		return s[:max]
	}
	return s
}

// translateDirective converts one directive into its pattern fragment:
// base character class, width-dependent repetition, capture wrapping,
// and the implicit leading-whitespace matcher (except %c, which must
// be able to capture whitespace itself).
func translateDirective(d Directive) string {
	if d.Escape {
		return "%"
	}

	frag := basePattern(d.CastConv(), d.Width)

	switch {
	case d.Skip:
		frag = "(?:" + frag + ")"
	case d.Key != "":
		frag = "(?P<" + d.Key + ">" + frag + ")"
	default:
		frag = "(" + frag + ")"
	}

	if d.CastConv() != 'c' {
		frag = exprLeadingWS + frag
	}
	return frag
}

// basePattern returns the sub-expression for one conversion with its
// repetition resolved. Widths bound the maximum repetition ({1,n}),
// never an exact count; %c alone is exact ({n}) and %r stays
// non-greedy.
func basePattern(conv byte, width int) string {
	switch conv {
	case 'd':
		return exprDecimal
	case 'o':
		return exprOctal
	case 'x':
		return exprHex
	case 'i':
		return exprAuto
	case 'e', 'f', 'g':
		return exprFloat
	case 'u':
		return `[0-9]` + boundedRep(width)
	case 's':
		return `\S` + boundedRep(width)
	case 'c':
		if width > 0 {
			return `.{` + strconv.Itoa(width) + `}`
		}
		return `.`
	case 'r':
		if width > 0 {
			return `.{1,` + strconv.Itoa(width) + `}?`
		}
		return `.*?`
	default:
		// Unreachable: the grammar only matches known letters.
		return regexp.QuoteMeta(string(conv))
	}
}

// boundedRep renders the repetition suffix for width-capped classes.
func boundedRep(width int) string {
	if width > 0 {
		return `{1,` + strconv.Itoa(width) + `}`
	}
	return `+`
}
