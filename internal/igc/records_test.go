package igc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecorderInfo(t *testing.T) {
	rec, err := Parse("ACAMWatFoo", Schemas{})
	require.NoError(t, err)

	info, ok := rec.(*RecorderInfo)
	require.True(t, ok)
	assert.Equal(t, CambridgeAeroInstruments, info.Manufacturer)
	assert.True(t, info.Manufacturer.Known())
	assert.Equal(t, "Cambridge Aero Instruments", info.Manufacturer.Name())
	assert.Equal(t, "Wat", info.UniqueID)
	assert.Equal(t, "Foo", info.Extra)
}

func TestDecodeRecorderInfoUnknownManufacturer(t *testing.T) {
	rec, err := Parse("AXYZ123", Schemas{})
	require.NoError(t, err)

	info := rec.(*RecorderInfo)
	assert.Equal(t, Manufacturer("XYZ"), info.Manufacturer)
	assert.False(t, info.Manufacturer.Known())
	assert.Equal(t, "XYZ", info.Manufacturer.Name())
	assert.Empty(t, info.Extra)
}

func TestDecodeRecorderInfoTooShort(t *testing.T) {
	rec, err := Parse("ACAMWa", Schemas{})
	assert.Nil(t, rec)

	var lenErr *WrongLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 7, lenErr.Expected)
	assert.Equal(t, 6, lenErr.Actual)
}

func TestManufacturerTable(t *testing.T) {
	known := []Manufacturer{
		Aircotec, CambridgeAeroInstruments, ClearNavInstruments, DataSwan,
		EWAvionics, Filser, Flarm, Flytech, Garrecht, IMIGlidingEquipment,
		Logstream, LXNavigation, LXNav, Naviter, NewTechnologies,
		NielsenKellerman, Peschges, PressFinishElectronics, PrintTechnik,
		Scheffel, StreamlineDataInstruments, TriadisEngineering, Zander,
	}
	for _, m := range known {
		assert.True(t, m.Known(), "code %s", m)
		assert.Len(t, string(m), 3, "code %s", m)
		assert.NotEqual(t, string(m), m.Name(), "code %s", m)
	}
}

func TestDecodeEvent(t *testing.T) {
	rec, err := Parse("E120515PEVText", Schemas{})
	require.NoError(t, err)

	ev, ok := rec.(*Event)
	require.True(t, ok)
	assert.Equal(t, Time{Hours: 12, Minutes: 5, Seconds: 15}, ev.Time)
	assert.Equal(t, "PEV", ev.Code)
	assert.Equal(t, "Text", ev.Text)
}

func TestDecodeEventWithoutText(t *testing.T) {
	rec, err := Parse("E120515PEV", Schemas{})
	require.NoError(t, err)
	assert.Empty(t, rec.(*Event).Text)
}

func TestDecodeEventTooShort(t *testing.T) {
	rec, err := Parse("E120515PE", Schemas{})
	assert.Nil(t, rec)

	var lenErr *WrongLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 10, lenErr.Expected)
	assert.Equal(t, 9, lenErr.Actual)
}

func TestDecodeSatellites(t *testing.T) {
	rec, err := Parse("F095212AABBCCDDEE", Schemas{})
	require.NoError(t, err)

	sat, ok := rec.(*Satellites)
	require.True(t, ok)
	assert.Equal(t, Time{Hours: 9, Minutes: 52, Seconds: 12}, sat.Time)
	assert.Equal(t, []string{"AA", "BB", "CC", "DD", "EE"}, sat.IDs)
}

func TestDecodeSatellitesErrors(t *testing.T) {
	t.Run("no satellite ids", func(t *testing.T) {
		_, err := Parse("F095212", Schemas{})
		var lenErr *WrongLengthError
		assert.ErrorAs(t, err, &lenErr)
	})

	t.Run("odd id characters", func(t *testing.T) {
		_, err := Parse("F095212AAB", Schemas{})
		var fieldErr *InvalidFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "satellite ids", fieldErr.Field)
	})
}

func TestDecodeSecurity(t *testing.T) {
	rec, err := Parse("G5C1A2B3D4E5F60718293A4B5", Schemas{})
	require.NoError(t, err)

	sec, ok := rec.(*Security)
	require.True(t, ok)
	assert.Equal(t, "5C1A2B3D4E5F60718293A4B5", sec.Digest)
}

func TestDecodeSecurityMalformed(t *testing.T) {
	for _, line := range []string{"G", "GNOTHEX!", "Gzz"} {
		rec, err := Parse(line, Schemas{})
		assert.Nil(t, rec, "line %q", line)

		var checksumErr *InvalidChecksumError
		require.ErrorAs(t, err, &checksumErr, "line %q", line)
		assert.Equal(t, line[1:], checksumErr.Raw)
	}
}

func TestDecodeComment(t *testing.T) {
	rec, err := Parse("LFoo the bar", Schemas{})
	require.NoError(t, err)
	assert.Equal(t, &Comment{Text: "Foo the bar"}, rec)

	empty, err := Parse("L", Schemas{})
	require.NoError(t, err)
	assert.Empty(t, empty.(*Comment).Text)
}

func TestSimpleRecordRoundTrips(t *testing.T) {
	for _, line := range []string{
		"ACAMWatFoo",
		"ALXV6M2",
		"E120515PEVText",
		"F095212AABBCCDDEE",
		"G5C1A2B3D4E5F",
		"LFoo the bar",
		"L",
	} {
		rec, err := Parse(line, Schemas{})
		require.NoError(t, err, "line %q", line)
		assert.Equal(t, line, rec.String())

		again, err := Parse(rec.String(), Schemas{})
		require.NoError(t, err)
		assert.Equal(t, rec, again)
	}
}
