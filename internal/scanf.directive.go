package internal

import (
	"regexp"
	"strconv"
)

// Conversion letters accepted by the directive grammar.
// x/X share one pattern and one cast; e/E/f/F/g/G all parse as float.
const ConversionLetters = "duioxXeEfFgGcrs"

// directiveExpr recognizes one format directive: the %% escape, or
// % followed by an optional (name) key, an optional * skip flag, an
// optional decimal width, an optional length modifier (consumed and
// ignored) and exactly one conversion letter. Anything that does not
// match falls through as literal text.
const directiveExpr = `(?P<escape>%%)|(?:%(?:\((?P<key>\w+)\))?(?P<skip>\*)?(?P<width>[0-9]+)?(?:h{1,2}|l{1,2}|j|z|t|L)?(?P<spec>[` + ConversionLetters + `]))`

var directiveRe = regexp.MustCompile(directiveExpr)

// Submatch indices into directiveRe, fixed by the group order above.
var (
	idxEscape = directiveRe.SubexpIndex("escape")
	idxKey    = directiveRe.SubexpIndex("key")
	idxSkip   = directiveRe.SubexpIndex("skip")
	idxWidth  = directiveRe.SubexpIndex("width")
	idxSpec   = directiveRe.SubexpIndex("spec")
)

// Directive is one recognized format specifier occurrence.
type Directive struct {
	Escape bool   // literal %% escape
	Key    string // capture name from %(name), empty if unkeyed
	Skip   bool   // * flag: match but do not capture
	Width  int    // 0 means no width given
	Conv   byte   // conversion letter as written (case preserved)

	// Start and End are byte offsets of the directive in the format
	// string, used by the compiler to slice out the literal gaps.
	Start int
	End   int
}

// IsCapture reports whether this directive produces a capture group.
func (d Directive) IsCapture() bool {
	return !d.Escape && !d.Skip
}

// CastConv returns the lowercased conversion letter used for cast
// lookup. x/X and the float family collapse onto shared casts.
func (d Directive) CastConv() byte {
	c := d.Conv
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

// FindDirectives scans a format string and returns all directive
// occurrences in order. Malformed directives are not matched and are
// left for the caller to treat as literal text.
func FindDirectives(format string) []Directive {
	locs := directiveRe.FindAllStringSubmatchIndex(format, -1)
	if locs == nil {
		return nil
	}

	dirs := make([]Directive, 0, len(locs))
	for _, m := range locs {
		d := Directive{Start: m[0], End: m[1]}

		if m[2*idxEscape] >= 0 {
			d.Escape = true
			dirs = append(dirs, d)
			continue
		}
		if m[2*idxKey] >= 0 {
			d.Key = format[m[2*idxKey]:m[2*idxKey+1]]
		}
		d.Skip = m[2*idxSkip] >= 0
		if m[2*idxWidth] >= 0 {
			// The group is all digits; ignore the impossible error.
			w, err := strconv.Atoi(format[m[2*idxWidth]:m[2*idxWidth+1]])
			if err == nil {
				d.Width = w
			}
		}
		d.Conv = format[m[2*idxSpec]]
		dirs = append(dirs, d)
	}
	return dirs
}
