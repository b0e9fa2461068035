// Package igc decodes IGC flight-recorder log lines into typed records.
//
// The package is a pure decoding core: every function maps one newline-stripped
// line of IGC text (plus, for B and K records, the extension schemas declared
// by earlier I/J records) to a typed record or a typed error. No I/O is
// performed, no state is retained between calls, and every call is safe to
// issue from concurrent goroutines.
package igc

// RecordKind identifies one of the eleven IGC record kinds.
type RecordKind uint8

const (
	KindManufacturer   RecordKind = iota // A - recorder manufacturer and ID
	KindFix                              // B - position fix
	KindTask                             // C - task declaration / turnpoint
	KindEvent                            // E - pilot or recorder event
	KindSatellites                       // F - satellite constellation
	KindSecurity                         // G - security digest
	KindHeader                           // H - file header line
	KindFixExtensions                    // I - B record extension definitions
	KindDataExtensions                   // J - K record extension definitions
	KindExtensionData                    // K - extension data sample
	KindComment                          // L - free-form comment
)

var kindNames = [...]string{
	KindManufacturer:   "A",
	KindFix:            "B",
	KindTask:           "C",
	KindEvent:          "E",
	KindSatellites:     "F",
	KindSecurity:       "G",
	KindHeader:         "H",
	KindFixExtensions:  "I",
	KindDataExtensions: "J",
	KindExtensionData:  "K",
	KindComment:        "L",
}

func (k RecordKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Record is the closed set of decoded IGC records. Every implementation is
// an immutable value constructed only by a successful decode, and renders
// itself back to its exact IGC line form via String.
type Record interface {
	Kind() RecordKind
	String() string
}

// Schemas carries the extension schemas currently in effect. The zero value
// means no I or J record has been seen yet, which is legal: B and K records
// then decode with empty extension mappings.
//
// The caller owns this value and threads it through Parse calls, superseding
// the matching schema whenever a new I or J record decodes. Keeping the
// schema caller-owned (rather than module state) is what makes parallel
// decoding of independent files trivial.
type Schemas struct {
	Fix  *Schema // from the latest I record, applied to B records
	Data *Schema // from the latest J record, applied to K records
}

// Parse classifies a single IGC line by its leading character and decodes it
// into a typed record. The call is atomic: it returns either a fully decoded
// record or an error naming the offending field, never both.
func Parse(line string, sch Schemas) (Record, error) {
	if line == "" {
		return nil, &UnrecognizedRecordTypeError{}
	}

	switch line[0] {
	case 'A':
		return decodeRecorderInfo(line)
	case 'B':
		return decodeFix(line, sch.Fix)
	case 'C':
		return decodeTask(line)
	case 'E':
		return decodeEvent(line)
	case 'F':
		return decodeSatellites(line)
	case 'G':
		return decodeSecurity(line)
	case 'H':
		return decodeHeader(line)
	case 'I':
		return decodeFixExtensions(line)
	case 'J':
		return decodeDataExtensions(line)
	case 'K':
		return decodeExtensionData(line, sch.Data)
	case 'L':
		return decodeComment(line)
	default:
		return nil, &UnrecognizedRecordTypeError{Char: line[0]}
	}
}

// ParseTime decodes a 6-character "HHMMSS" field on its own. Useful for
// callers digging values out of header or extension data.
func ParseTime(raw string) (Time, error) {
	return decodeTime(KindHeader, raw)
}

// ParseDate decodes a 6-character "DDMMYY" field on its own, as found in the
// data of an HFDTE header.
func ParseDate(raw string) (Date, error) {
	return decodeDate(KindHeader, raw)
}
