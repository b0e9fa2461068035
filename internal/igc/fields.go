package igc

import "fmt"

// Direction is the hemisphere letter attached to a coordinate.
type Direction byte

const (
	North Direction = 'N'
	South Direction = 'S'
	East  Direction = 'E'
	West  Direction = 'W'
)

func (d Direction) String() string {
	return string(d)
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(d) + `"`), nil
}

// Time is a UTC time of day with second precision. The IGC format mandates
// UTC everywhere, so no timezone is carried.
type Time struct {
	Hours   uint8 `json:"hours"`
	Minutes uint8 `json:"minutes"`
	Seconds uint8 `json:"seconds"`
}

// SecondsSinceMidnight returns the number of seconds elapsed since 00:00:00.
func (t Time) SecondsSinceMidnight() int {
	return (int(t.Hours)*60+int(t.Minutes))*60 + int(t.Seconds)
}

func (t Time) String() string {
	return fmt.Sprintf("%02d%02d%02d", t.Hours, t.Minutes, t.Seconds)
}

// Date is a Gregorian calendar day. Year carries only the least significant
// two digits; resolving the century is up to the caller.
type Date struct {
	Day   uint8 `json:"day"`
	Month uint8 `json:"month"`
	Year  uint8 `json:"year"`
}

// IsZero reports whether the date is the all-zero placeholder used by task
// declarations without a fixed flight date.
func (d Date) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

func (d Date) String() string {
	return fmt.Sprintf("%02d%02d%02d", d.Day, d.Month, d.Year)
}

// Coordinate is a latitude or longitude exactly as encoded in an IGC file:
// whole degrees plus thousandths of a minute, with the hemisphere kept
// separate from the magnitude. No floating point is involved until the
// caller asks for decimal degrees.
type Coordinate struct {
	Degrees      uint16    `json:"degrees"`
	MilliMinutes uint16    `json:"milli_minutes"`
	Hemisphere   Direction `json:"hemisphere"`
}

// DecimalDegrees converts the coordinate to signed decimal degrees.
// South and West are negative.
func (c Coordinate) DecimalDegrees() float64 {
	v := float64(c.Degrees) + float64(c.MilliMinutes)/60000
	if c.Hemisphere == South || c.Hemisphere == West {
		v = -v
	}
	return v
}

func (c Coordinate) isLatitude() bool {
	return c.Hemisphere == North || c.Hemisphere == South
}

func (c Coordinate) String() string {
	if c.isLatitude() {
		return fmt.Sprintf("%02d%05d%c", c.Degrees, c.MilliMinutes, c.Hemisphere)
	}
	return fmt.Sprintf("%03d%05d%c", c.Degrees, c.MilliMinutes, c.Hemisphere)
}

// parseDigits converts a run of ASCII digits to an int. Unlike strconv.Atoi
// it rejects signs and whitespace, which must not appear inside fixed-width
// numeric columns.
func parseDigits(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// decodeTime decodes a 6-character "HHMMSS" field.
func decodeTime(kind RecordKind, raw string) (Time, error) {
	if len(raw) != 6 {
		return Time{}, &InvalidFieldError{Kind: kind, Field: "time", Raw: raw, Reason: "expected 6 characters"}
	}
	h, ok1 := parseDigits(raw[0:2])
	m, ok2 := parseDigits(raw[2:4])
	s, ok3 := parseDigits(raw[4:6])
	if !ok1 || !ok2 || !ok3 {
		return Time{}, &InvalidFieldError{Kind: kind, Field: "time", Raw: raw, Reason: "non-digit character"}
	}
	if h > 23 || m > 59 || s > 59 {
		return Time{}, &InvalidFieldError{Kind: kind, Field: "time", Raw: raw, Reason: "value out of range"}
	}
	return Time{Hours: uint8(h), Minutes: uint8(m), Seconds: uint8(s)}, nil
}

// decodeDate decodes a 6-character "DDMMYY" field.
func decodeDate(kind RecordKind, raw string) (Date, error) {
	if len(raw) != 6 {
		return Date{}, &InvalidFieldError{Kind: kind, Field: "date", Raw: raw, Reason: "expected 6 characters"}
	}
	day, ok1 := parseDigits(raw[0:2])
	month, ok2 := parseDigits(raw[2:4])
	year, ok3 := parseDigits(raw[4:6])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, &InvalidFieldError{Kind: kind, Field: "date", Raw: raw, Reason: "non-digit character"}
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return Date{}, &InvalidFieldError{Kind: kind, Field: "date", Raw: raw, Reason: "value out of range"}
	}
	return Date{Day: uint8(day), Month: uint8(month), Year: uint8(year)}, nil
}

// decodeLatitude decodes an 8-character "DDMMmmmH" field, where H is N or S.
func decodeLatitude(kind RecordKind, raw string) (Coordinate, error) {
	if len(raw) != 8 {
		return Coordinate{}, &InvalidFieldError{Kind: kind, Field: "latitude", Raw: raw, Reason: "expected 8 characters"}
	}
	deg, ok1 := parseDigits(raw[0:2])
	mmm, ok2 := parseDigits(raw[2:7])
	if !ok1 || !ok2 {
		return Coordinate{}, &InvalidFieldError{Kind: kind, Field: "latitude", Raw: raw, Reason: "non-digit character"}
	}
	var hemi Direction
	switch raw[7] {
	case 'N':
		hemi = North
	case 'S':
		hemi = South
	default:
		return Coordinate{}, &InvalidFieldError{Kind: kind, Field: "latitude", Raw: raw, Reason: "hemisphere must be N or S"}
	}
	if deg > 90 || mmm > 59999 || (deg == 90 && mmm > 0) {
		return Coordinate{}, &InvalidFieldError{Kind: kind, Field: "latitude", Raw: raw, Reason: "value out of range"}
	}
	return Coordinate{Degrees: uint16(deg), MilliMinutes: uint16(mmm), Hemisphere: hemi}, nil
}

// decodeLongitude decodes a 9-character "DDDMMmmmH" field, where H is E or W.
func decodeLongitude(kind RecordKind, raw string) (Coordinate, error) {
	if len(raw) != 9 {
		return Coordinate{}, &InvalidFieldError{Kind: kind, Field: "longitude", Raw: raw, Reason: "expected 9 characters"}
	}
	deg, ok1 := parseDigits(raw[0:3])
	mmm, ok2 := parseDigits(raw[3:8])
	if !ok1 || !ok2 {
		return Coordinate{}, &InvalidFieldError{Kind: kind, Field: "longitude", Raw: raw, Reason: "non-digit character"}
	}
	var hemi Direction
	switch raw[8] {
	case 'E':
		hemi = East
	case 'W':
		hemi = West
	default:
		return Coordinate{}, &InvalidFieldError{Kind: kind, Field: "longitude", Raw: raw, Reason: "hemisphere must be E or W"}
	}
	if deg > 180 || mmm > 59999 || (deg == 180 && mmm > 0) {
		return Coordinate{}, &InvalidFieldError{Kind: kind, Field: "longitude", Raw: raw, Reason: "value out of range"}
	}
	return Coordinate{Degrees: uint16(deg), MilliMinutes: uint16(mmm), Hemisphere: hemi}, nil
}

// decodeAltitude decodes a 5-character altitude field in metres. A leading
// '-' is permitted, trading one digit of magnitude for the sign.
func decodeAltitude(kind RecordKind, field, raw string) (int, error) {
	if len(raw) != 5 {
		return 0, &InvalidFieldError{Kind: kind, Field: field, Raw: raw, Reason: "expected 5 characters"}
	}
	digits := raw
	negative := false
	if raw[0] == '-' {
		negative = true
		digits = raw[1:]
	}
	n, ok := parseDigits(digits)
	if !ok {
		return 0, &InvalidFieldError{Kind: kind, Field: field, Raw: raw, Reason: "non-digit character"}
	}
	if negative {
		n = -n
	}
	return n, nil
}

// decodeHexDigest checks that raw is a nonempty well-formed hex string.
// The digest is not verified against any file content; that requires the
// whole file and is the caller's concern.
func decodeHexDigest(raw string) (string, error) {
	if raw == "" {
		return "", &InvalidChecksumError{Raw: raw}
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return "", &InvalidChecksumError{Raw: raw}
		}
	}
	return raw, nil
}
