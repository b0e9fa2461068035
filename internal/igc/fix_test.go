package igc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFix(t *testing.T) {
	rec, err := Parse("B1101355206343N00006198WA0058800558", Schemas{})
	require.NoError(t, err)

	fix, ok := rec.(*Fix)
	require.True(t, ok)

	assert.Equal(t, Time{Hours: 11, Minutes: 1, Seconds: 35}, fix.Time)
	assert.Equal(t, Coordinate{Degrees: 52, MilliMinutes: 6343, Hemisphere: North}, fix.Lat)
	assert.Equal(t, Coordinate{Degrees: 0, MilliMinutes: 6198, Hemisphere: West}, fix.Lon)
	assert.Equal(t, Valid3DFix, fix.Validity)
	assert.Equal(t, 588, fix.PressureAlt)
	assert.Equal(t, 558, fix.GNSSAlt)
	assert.Empty(t, fix.Extensions)
	assert.Empty(t, fix.Raw)
	assert.Empty(t, fix.Unused)
}

func TestDecodeFixNegativeAltitude(t *testing.T) {
	fix, err := decodeFix("B0941145152265N00032642WA00115-0116", nil)
	require.NoError(t, err)
	assert.Equal(t, 115, fix.PressureAlt)
	assert.Equal(t, -116, fix.GNSSAlt)
}

func TestDecodeFixNavWarning(t *testing.T) {
	fix, err := decodeFix("B0941145152265N00032642WV0000000000", nil)
	require.NoError(t, err)
	assert.Equal(t, NavWarning, fix.Validity)
}

func TestDecodeFixTooShort(t *testing.T) {
	// One character below the 35-column fixed portion.
	rec, err := Parse("B1101355206343N00006198WA005880055", Schemas{})
	assert.Nil(t, rec)

	var lenErr *WrongLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 35, lenErr.Expected)
	assert.Equal(t, 34, lenErr.Actual)
	assert.Equal(t, KindFix, lenErr.Kind)
}

func TestDecodeFixFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{name: "bad time", line: "B2561355206343N00006198WA0058800558", field: "time"},
		{name: "bad latitude", line: "B1101359206343N00006198WA0058800558", field: "latitude"},
		{name: "bad longitude", line: "B1101355206343N18106198WA0058800558", field: "longitude"},
		{name: "bad validity flag", line: "B1101355206343N00006198WX0058800558", field: "fix validity"},
		{name: "bad pressure altitude", line: "B1101355206343N00006198WA005x800558", field: "pressure altitude"},
		{name: "bad gnss altitude", line: "B1101355206343N00006198WA00588005x8", field: "gnss altitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.line, Schemas{})
			assert.Nil(t, rec)

			var fieldErr *InvalidFieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, KindFix, fieldErr.Kind)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestDecodeFixWithSchema(t *testing.T) {
	irec, err := decodeFixExtensions("I033638FXA3941ENL4246TAS")
	require.NoError(t, err)
	schema, err := NewFixSchema(irec)
	require.NoError(t, err)

	// 35 fixed columns + 11 extension characters covering columns 36-46.
	line := "B1101355206343N00006198WA0058800558" + "00204912345"
	fix, err := decodeFix(line, schema)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"FXA": "002",
		"ENL": "049",
		"TAS": "12345",
	}, fix.Extensions)
	assert.Equal(t, "00204912345", fix.Raw)
	assert.Empty(t, fix.Unused)
}

func TestDecodeFixStaleSchema(t *testing.T) {
	irec, err := decodeFixExtensions("I013638FXA")
	require.NoError(t, err)
	schema, err := NewFixSchema(irec)
	require.NoError(t, err)

	// The line carries more extension bytes than the schema declares; the
	// excess is surfaced as unused trailing data, not an error.
	line := "B1101355206343N00006198WA0058800558" + "002EXTRA"
	fix, err := decodeFix(line, schema)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"FXA": "002"}, fix.Extensions)
	assert.Equal(t, "EXTRA", fix.Unused)
}

func TestDecodeFixSchemaBeyondLine(t *testing.T) {
	irec, err := decodeFixExtensions("I033638FXA3941ENL4246TAS")
	require.NoError(t, err)
	schema, err := NewFixSchema(irec)
	require.NoError(t, err)

	// Line ends inside the declared TAS range.
	line := "B1101355206343N00006198WA0058800558" + "002049123"
	fix, err := decodeFix(line, schema)
	assert.Nil(t, fix)

	var fieldErr *InvalidFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "TAS", fieldErr.Field)
}

func TestFixRoundTrip(t *testing.T) {
	lines := []string{
		"B1101355206343N00006198WA0058800558",
		"B0941145152265N00032642WA00115-0116FooExtensionString",
		"B2359595959999S17959999EV0000000000",
	}

	for _, line := range lines {
		rec, err := Parse(line, Schemas{})
		require.NoError(t, err, "line %q", line)
		assert.Equal(t, line, rec.String())

		again, err := Parse(rec.String(), Schemas{})
		require.NoError(t, err)
		assert.Equal(t, rec, again)
	}
}
