package igc

import "fmt"

// FixValidity is the 'A'/'V' flag on a B record: a 3D fix versus a
// navigation warning (2D fix or dead reckoning).
type FixValidity byte

const (
	Valid3DFix FixValidity = 'A'
	NavWarning FixValidity = 'V'
)

func (v FixValidity) String() string {
	return string(v)
}

func (v FixValidity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(v) + `"`), nil
}

// Fix is a decoded B record: one recorded position and altitude sample.
//
// B record layout (1-indexed columns):
//
//	1      'B'
//	2-7    time HHMMSS
//	8-15   latitude DDMMmmmN/S
//	16-24  longitude DDDMMmmmE/W
//	25     fix validity 'A' or 'V'
//	26-30  pressure altitude, metres
//	31-35  GNSS altitude, metres
//	36-    extension data per the active I record schema
type Fix struct {
	Time        Time        `json:"time"`
	Lat         Coordinate  `json:"lat"`
	Lon         Coordinate  `json:"lon"`
	Validity    FixValidity `json:"validity"`
	PressureAlt int         `json:"pressure_alt"`
	GNSSAlt     int         `json:"gnss_alt"`

	// Extensions maps each declared mnemonic to its raw slice of the line.
	// Empty when no I record preceded this line.
	Extensions map[string]string `json:"extensions,omitempty"`

	// Raw holds every character past column 35, uninterpreted.
	Raw string `json:"raw,omitempty"`

	// Unused holds trailing characters past the last schema-declared column.
	// Nonempty only when the line outruns a stale or short schema; this is a
	// condition for the caller to note, not a decode failure.
	Unused string `json:"unused,omitempty"`
}

func (r *Fix) Kind() RecordKind { return KindFix }

// String renders the fix in its exact IGC line form.
func (r *Fix) String() string {
	return fmt.Sprintf("B%s%s%s%c%05d%05d%s",
		r.Time, r.Lat, r.Lon, r.Validity, r.PressureAlt, r.GNSSAlt, r.Raw)
}

func decodeFix(line string, schema *Schema) (*Fix, error) {
	if len(line) < fixBaseLength {
		return nil, &WrongLengthError{Kind: KindFix, Expected: fixBaseLength, Actual: len(line)}
	}

	t, err := decodeTime(KindFix, line[1:7])
	if err != nil {
		return nil, err
	}
	lat, err := decodeLatitude(KindFix, line[7:15])
	if err != nil {
		return nil, err
	}
	lon, err := decodeLongitude(KindFix, line[15:24])
	if err != nil {
		return nil, err
	}

	var validity FixValidity
	switch line[24] {
	case 'A':
		validity = Valid3DFix
	case 'V':
		validity = NavWarning
	default:
		return nil, &InvalidFieldError{Kind: KindFix, Field: "fix validity", Raw: line[24:25], Reason: "must be A or V"}
	}

	pressureAlt, err := decodeAltitude(KindFix, "pressure altitude", line[25:30])
	if err != nil {
		return nil, err
	}
	gnssAlt, err := decodeAltitude(KindFix, "gnss altitude", line[30:35])
	if err != nil {
		return nil, err
	}

	rec := &Fix{
		Time:        t,
		Lat:         lat,
		Lon:         lon,
		Validity:    validity,
		PressureAlt: pressureAlt,
		GNSSAlt:     gnssAlt,
		Raw:         line[fixBaseLength:],
	}

	if schema != nil {
		values, unused, err := schema.apply(line)
		if err != nil {
			return nil, err
		}
		rec.Extensions = values
		rec.Unused = unused
	}
	return rec, nil
}
