package igc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind RecordKind
	}{
		{name: "A record", line: "ACAMWatFoo", kind: KindManufacturer},
		{name: "B record", line: "B1101355206343N00006198WA0058800558", kind: KindFix},
		{name: "C declaration", line: "C230718092044000000000204Foo task", kind: KindTask},
		{name: "C turnpoint", line: "C5156040N00038120WLBZ-Leighton Buzzard NE", kind: KindTask},
		{name: "E record", line: "E120515PEVText", kind: KindEvent},
		{name: "F record", line: "F095212AABBCCDDEE", kind: KindSatellites},
		{name: "G record", line: "Gdeadbeef0123456789", kind: KindSecurity},
		{name: "H record", line: "HFGIDGLIDERID:D-KOOL", kind: KindHeader},
		{name: "I record", line: "I033638FXA3941ENL4246TAS", kind: KindFixExtensions},
		{name: "J record", line: "J010812HDT", kind: KindDataExtensions},
		{name: "K record", line: "K09521412345", kind: KindExtensionData},
		{name: "L record", line: "LCU::HiddenComment", kind: KindComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.line, Schemas{})
			require.NoError(t, err)
			assert.Equal(t, tt.kind, rec.Kind())
		})
	}
}

func TestParseUnrecognizedRecordType(t *testing.T) {
	for _, line := range []string{"Z12345", "D1ABCD", "X", "b000000"} {
		rec, err := Parse(line, Schemas{})
		assert.Nil(t, rec, "no partial record for %q", line)

		var unrecErr *UnrecognizedRecordTypeError
		require.ErrorAs(t, err, &unrecErr, "line %q", line)
		assert.Equal(t, line[0], unrecErr.Char)
	}
}

func TestParseEmptyLine(t *testing.T) {
	rec, err := Parse("", Schemas{})
	assert.Nil(t, rec)

	var unrecErr *UnrecognizedRecordTypeError
	require.ErrorAs(t, err, &unrecErr)
	assert.Equal(t, byte(0), unrecErr.Char)
}

// A short flight log decoded sequentially, the way a caller threads schemas
// through Parse.
func TestParseSequence(t *testing.T) {
	lines := []string{
		"ALXV6M2FLIGHT:1",
		"HFDTE230718",
		"I023638FXA3940SIU",
		"B1101355206343N00006198WA005880058812300",
		"J010812HDT",
		"K09521412345",
		"LPLTthermal over the ridge",
		"GA1B2C3D4E5F",
	}

	var sch Schemas
	kinds := make([]RecordKind, 0, len(lines))
	for _, line := range lines {
		rec, err := Parse(line, sch)
		require.NoError(t, err, "line %q", line)
		kinds = append(kinds, rec.Kind())

		switch r := rec.(type) {
		case *FixExtensions:
			s, err := NewFixSchema(r)
			require.NoError(t, err)
			sch.Fix = s
		case *DataExtensions:
			s, err := NewDataSchema(r)
			require.NoError(t, err)
			sch.Data = s
		case *Fix:
			assert.Equal(t, map[string]string{"FXA": "123", "SIU": "00"}, r.Extensions)
		case *ExtensionData:
			assert.Equal(t, map[string]string{"HDT": "12345"}, r.Extensions)
		}
	}

	assert.Equal(t, []RecordKind{
		KindManufacturer, KindHeader, KindFixExtensions, KindFix,
		KindDataExtensions, KindExtensionData, KindComment, KindSecurity,
	}, kinds)
}

func TestRecordKindString(t *testing.T) {
	assert.Equal(t, "B", KindFix.String())
	assert.Equal(t, "K", KindExtensionData.String())
	assert.Equal(t, "?", RecordKind(42).String())
}

func TestParseDateHelper(t *testing.T) {
	d, err := ParseDate("230718")
	require.NoError(t, err)
	assert.Equal(t, Date{Day: 23, Month: 7, Year: 18}, d)

	_, err = ParseDate("999999")
	assert.Error(t, err)
}

func TestParseTimeHelper(t *testing.T) {
	tm, err := ParseTime("095212")
	require.NoError(t, err)
	assert.Equal(t, Time{Hours: 9, Minutes: 52, Seconds: 12}, tm)
}
