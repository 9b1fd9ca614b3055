package internal

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTranslate(t *testing.T, format string) *Translation {
	t.Helper()
	tr, err := Translate(format, false)
	require.NoError(t, err)
	// Every derived expression must be accepted by the engine.
	_, err = regexp.Compile(tr.Expr)
	require.NoError(t, err, "expr %q", tr.Expr)
	return tr
}

func TestTranslate_PlainLiteral(t *testing.T) {
	tr := mustTranslate(t, "hello")
	assert.Equal(t, `\Ahello`, tr.Expr)
	assert.Equal(t, ShapePositional, tr.Shape)
	assert.Empty(t, tr.Casts)
}

func TestTranslate_WhitespaceCollapses(t *testing.T) {
	tr := mustTranslate(t, "a   b")
	assert.Equal(t, `\Aa\s+b`, tr.Expr)
}

func TestTranslate_EdgeWhitespacePreserved(t *testing.T) {
	tr := mustTranslate(t, " x ")
	assert.Equal(t, `\A\s+x\s+`, tr.Expr)
}

func TestTranslate_LiteralMetacharsQuoted(t *testing.T) {
	tr := mustTranslate(t, ".*$ @ %d")
	re := regexp.MustCompile(tr.Expr)
	assert.NotNil(t, re.FindStringSubmatch(".*$ @ 9"))
	assert.Nil(t, re.FindStringSubmatch("ab$ @ 9"))
}

func TestTranslate_DecimalDirective(t *testing.T) {
	tr := mustTranslate(t, "%d")
	assert.Equal(t, `\A\s*([-+]?[0-9]+)`, tr.Expr)
	require.Len(t, tr.Casts, 1)
	assert.Equal(t, byte('d'), tr.Casts[0].Conv)
}

func TestTranslate_SkipIsNonCapturing(t *testing.T) {
	tr := mustTranslate(t, "%*d %s")
	assert.Equal(t, `\A\s*(?:[-+]?[0-9]+)\s+\s*(\S+)`, tr.Expr)
	require.Len(t, tr.Casts, 1)
	assert.Equal(t, byte('s'), tr.Casts[0].Conv)
}

func TestTranslate_NamedCapture(t *testing.T) {
	tr := mustTranslate(t, "%(num)d")
	assert.Equal(t, `\A\s*(?P<num>[-+]?[0-9]+)`, tr.Expr)
	assert.Equal(t, ShapeNamed, tr.Shape)
	require.Len(t, tr.Casts, 1)
	assert.Equal(t, "num", tr.Casts[0].Key)
}

func TestTranslate_CharNoLeadingWhitespace(t *testing.T) {
	tr := mustTranslate(t, "%c")
	assert.Equal(t, `\A(.)`, tr.Expr)

	tr = mustTranslate(t, "%3c")
	assert.Equal(t, `\A(.{3})`, tr.Expr)
}

func TestTranslate_WidthBoundsMaximum(t *testing.T) {
	tr := mustTranslate(t, "%5u")
	assert.Equal(t, `\A\s*([0-9]{1,5})`, tr.Expr)

	tr = mustTranslate(t, "%5s")
	assert.Equal(t, `\A\s*(\S{1,5})`, tr.Expr)
}

func TestTranslate_LiteralConversionNonGreedy(t *testing.T) {
	tr := mustTranslate(t, "%r!")
	assert.Equal(t, `\A\s*(.*?)!`, tr.Expr)

	tr = mustTranslate(t, "%4r!")
	assert.Equal(t, `\A\s*(.{1,4}?)!`, tr.Expr)
}

func TestTranslate_EscapeDirective(t *testing.T) {
	tr := mustTranslate(t, "100%% sure")
	assert.Equal(t, `\A100%\s+sure`, tr.Expr)
	assert.Empty(t, tr.Casts)
}

func TestTranslate_CaseInsensitiveCasts(t *testing.T) {
	tr := mustTranslate(t, "%X %G")
	require.Len(t, tr.Casts, 2)
	assert.Equal(t, byte('x'), tr.Casts[0].Conv)
	assert.Equal(t, byte('g'), tr.Casts[1].Conv)
}

func TestTranslate_MixedCaptureFails(t *testing.T) {
	_, err := Translate("%(x)d %d", false)
	require.Error(t, err)
	var mixed *MixedCaptureError
	assert.ErrorAs(t, err, &mixed)
}

func TestTranslate_SkipDoesNotForceMode(t *testing.T) {
	// A skip directive is neither keyed nor positional.
	tr := mustTranslate(t, "%(x)d %*d")
	assert.Equal(t, ShapeNamed, tr.Shape)
	require.Len(t, tr.Casts, 1)
}

func TestTranslate_DuplicateKeyFails(t *testing.T) {
	_, err := Translate("%(a)d %(a)d", false)
	require.Error(t, err)
	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Key)
}

func TestTranslate_StrictRejectsStrayPercent(t *testing.T) {
	_, err := Translate("50% off", true)
	require.Error(t, err)
	var unsupported *UnsupportedConversionError
	assert.ErrorAs(t, err, &unsupported)

	// Recognized directives and escapes still pass.
	_, err = Translate("%d is 100%%", true)
	assert.NoError(t, err)
}

func TestTranslate_PermissivePercentIsLiteral(t *testing.T) {
	tr := mustTranslate(t, "50% off")
	re := regexp.MustCompile(tr.Expr)
	assert.NotNil(t, re.FindStringSubmatch("50% off"))
}

func TestTranslate_FloatMatchesSpellings(t *testing.T) {
	tr := mustTranslate(t, "%f")
	re := regexp.MustCompile(tr.Expr)

	for _, input := range []string{
		"1.0", "-1.0", ".1e20", "-.1e20", "12345.2345e2",
		"NaN", "-NaN", "Inf", "-Inf", "Infinity", "+inf", "3",
	} {
		m := re.FindStringSubmatch(input)
		require.NotNil(t, m, "input %q", input)
		assert.Equal(t, input, m[1], "input %q", input)
	}
}
