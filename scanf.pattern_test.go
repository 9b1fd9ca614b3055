package scanf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScan(t *testing.T, format, input string) *Result {
	t.Helper()
	result, err := MustNew().Scan(format, input)
	require.NoError(t, err)
	require.NotNil(t, result, "scan(%q, %q) did not match", format, input)
	return result
}

func TestScan_NoDirectives(t *testing.T) {
	result := mustScan(t, "just a literal", "just a literal")
	assert.Equal(t, ResultKindPositional, result.Kind())
	assert.NotNil(t, result.Values())
	assert.Empty(t, result.Values())
}

func TestScan_AnchoredStartOnly(t *testing.T) {
	engine := MustNew()

	// Trailing input is ignored; the match is anchored at the start.
	result, err := engine.Scan("abc", "abcdef")
	require.NoError(t, err)
	assert.NotNil(t, result)

	// But the format must match from the very beginning.
	result, err = engine.Scan("abc", "xabc")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestScan_SignedDecimal(t *testing.T) {
	result := mustScan(t, "%d", "42")
	assert.Equal(t, []any{int64(42)}, result.Values())

	result = mustScan(t, "%d", "-7")
	assert.Equal(t, []any{int64(-7)}, result.Values())
}

func TestScan_WhitespaceTolerance(t *testing.T) {
	result := mustScan(t, "%s middle %s end", "a    middle   b end")
	assert.Equal(t, []any{"a", "b"}, result.Values())

	result = mustScan(t, "%s middle %s end", " smog        middle \tbleck         end")
	assert.Equal(t, []any{"smog", "bleck"}, result.Values())
}

func TestScan_NamedCaptures(t *testing.T) {
	result := mustScan(t, "%(x)d,%(y)d", "3,4")
	assert.Equal(t, ResultKindNamed, result.Kind())
	assert.Equal(t, map[string]any{"x": int64(3), "y": int64(4)}, result.Named())
	assert.Nil(t, result.Values())
	assert.Equal(t, 2, result.Len())
}

func TestCompile_MixedCapturesFail(t *testing.T) {
	_, err := MustNew().Compile("%(x)d %d")
	require.Error(t, err)
	assert.True(t, IsMixedCaptureError(err))
}

func TestScan_FloatEdgeCases(t *testing.T) {
	result := mustScan(t, "%f", "NaN")
	assert.True(t, math.IsNaN(result.Values()[0].(float64)))

	result = mustScan(t, "%f", "-Inf")
	assert.True(t, math.IsInf(result.Values()[0].(float64), -1))

	result = mustScan(t, "floats: %f %f %f %f", "floats: -1.0 -.1e20 -NaN -Inf")
	require.Equal(t, 4, result.Len())
	assert.Equal(t, -1.0, result.Values()[0])

	result = mustScan(t, "exp float %(float)f", "exp float 12345.2345e2")
	assert.InDelta(t, 1234523.45, result.Named()["float"].(float64), 1e-9)
}

func TestScan_WidthBoundedChar(t *testing.T) {
	result := mustScan(t, "%3c", "abcdef")
	assert.Equal(t, []any{"abc"}, result.Values())
}

func TestScan_CharCapturesWhitespace(t *testing.T) {
	// %c must not skip leading whitespace.
	result := mustScan(t, "%c", " x")
	assert.Equal(t, []any{" "}, result.Values())

	result = mustScan(t, "%(c)7c middle %(s)s end %(i)i", "asdfghj middle str end 123")
	assert.Equal(t, "asdfghj", result.Named()["c"])
	assert.Equal(t, "str", result.Named()["s"])
	assert.Equal(t, int64(123), result.Named()["i"])
}

func TestScan_IntegerBases(t *testing.T) {
	result := mustScan(t, "%o %x %i %i %i", "17 0x1A 42 017 0x10")
	assert.Equal(t, []any{int64(15), int64(26), int64(42), int64(15), int64(16)}, result.Values())
}

func TestScan_SkipDirective(t *testing.T) {
	result := mustScan(t, "%*d %s", "99 token")
	assert.Equal(t, []any{"token"}, result.Values())
}

func TestScan_EscapeDirective(t *testing.T) {
	result := mustScan(t, "100%% of %d", "100% of 3")
	assert.Equal(t, []any{int64(3)}, result.Values())
}

func TestScan_WidthCapsNumericMaximum(t *testing.T) {
	// Width is an upper bound for %u, not an exact count.
	result := mustScan(t, "%5u", "123456789")
	assert.Equal(t, []any{int64(12345)}, result.Values())

	result = mustScan(t, "%5u", "12")
	assert.Equal(t, []any{int64(12)}, result.Values())
}

func TestScan_LiteralConversion(t *testing.T) {
	result := mustScan(t, "value: %r end", "value: [1, 'two', true] end")
	assert.Equal(t, []any{[]any{int64(1), "two", true}}, result.Values())

	result = mustScan(t, "%r!", "42!")
	assert.Equal(t, []any{int64(42)}, result.Values())
}

func TestScan_LiteralConversionUnsafe(t *testing.T) {
	_, err := MustNew().Scan("value: %r end", "value: purge() end")
	require.Error(t, err)
	assert.True(t, IsUnsafeLiteralError(err))
}

func TestScan_CastErrorIsHardError(t *testing.T) {
	// The pattern matches, but the cast overflows: error, not no-match.
	result, err := MustNew().Scan("%d", "99999999999999999999")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsCastError(err))
}

func TestScan_NoMatchIsNotAnError(t *testing.T) {
	result, err := MustNew().Scan("%d", "not a number")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestScanBytes_PreservesDomain(t *testing.T) {
	engine := MustNew()

	result, err := engine.ScanBytes([]byte("%s: bytes format"), []byte("happy: bytes format"))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []byte("happy"), result.Values()[0])

	// Numeric casts behave identically in both domains.
	result, err = engine.ScanBytes([]byte("floats: %f %f"), []byte("floats: 1.0 .1e20"))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1.0, result.Values()[0])
}

func TestScanBytes_NonASCIIFormatByte(t *testing.T) {
	engine := MustNew()

	// A lone high byte in the format is one literal byte, not an
	// encoding error and not a multi-byte character.
	p, err := engine.CompileBytes([]byte{0xE9, ' ', '%', 'd'})
	require.NoError(t, err)

	result, err := p.ExtractBytes([]byte{0xE9, ' ', '4', '2'})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(42), result.Values()[0])

	// A different high byte does not match the literal.
	result, err = p.ExtractBytes([]byte{0xEA, ' ', '4', '2'})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestScanBytes_WidthCountsBytes(t *testing.T) {
	engine := MustNew()

	p, err := engine.CompileBytes([]byte("%3c"))
	require.NoError(t, err)

	// Multi-byte encoded input: the capture is the first 3 bytes,
	// not the first 3 runes.
	input := []byte("日本語x")
	result, err := p.ExtractBytes(input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, input[:3], result.Values()[0])

	// The same width against text input captures 3 runes.
	pt, err := engine.Compile("%3c")
	require.NoError(t, err)
	tr, err := pt.Extract("日本語x")
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, "日本語", tr.Values()[0])
}

func TestScanBytes_HighByteCapture(t *testing.T) {
	engine := MustNew()

	result, err := engine.ScanBytes([]byte("tag=%2c"), []byte{'t', 'a', 'g', '=', 0xDE, 0xAD})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []byte{0xDE, 0xAD}, result.Values()[0])
}

func TestExtract_KindMismatchFails(t *testing.T) {
	engine := MustNew()

	p, err := engine.Compile("%d")
	require.NoError(t, err)
	_, err = p.ExtractBytes([]byte("42"))
	require.Error(t, err)

	pb, err := engine.CompileBytes([]byte("%d"))
	require.NoError(t, err)
	_, err = pb.Extract("42")
	require.Error(t, err)
}

func TestPattern_Accessors(t *testing.T) {
	p, err := MustNew().Compile("%(x)d,%(y)d")
	require.NoError(t, err)

	assert.Equal(t, "%(x)d,%(y)d", p.Format())
	assert.Equal(t, ResultKindNamed, p.Kind())
	assert.Equal(t, KindText, p.ValueKind())
	assert.Equal(t, 2, p.CaptureCount())
	assert.Contains(t, p.ExprString(), "(?P<x>")
	assert.Nil(t, p.FormatBytes())
	assert.Equal(t, []CastStep{{Key: "x", Conv: "d"}, {Key: "y", Conv: "d"}}, p.CastPlan())
}

func TestPattern_Reusable(t *testing.T) {
	p, err := MustNew().Compile("%d")
	require.NoError(t, err)

	for _, input := range []string{"1", "2", "3"} {
		result, err := p.Extract(input)
		require.NoError(t, err)
		require.NotNil(t, result)
	}
}

func TestCompile_DuplicateKeyFails(t *testing.T) {
	_, err := MustNew().Compile("%(a)d %(a)d")
	require.Error(t, err)
}
