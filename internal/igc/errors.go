package igc

import "fmt"

// UnrecognizedRecordTypeError reports a line whose leading character does not
// match any known IGC record kind.
type UnrecognizedRecordTypeError struct {
	Char byte
}

func (e *UnrecognizedRecordTypeError) Error() string {
	if e.Char == 0 {
		return "unrecognized record type: empty line"
	}
	return fmt.Sprintf("unrecognized record type %q", string(e.Char))
}

// WrongLengthError reports a line that is too short for the fixed-width
// portion of its record kind.
type WrongLengthError struct {
	Kind     RecordKind
	Expected int
	Actual   int
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("%s record: wrong length: expected %d characters, got %d",
		e.Kind, e.Expected, e.Actual)
}

// InvalidFieldError reports a column range that does not parse as its
// declared type or range. Raw holds the offending slice of the input line.
type InvalidFieldError struct {
	Kind   RecordKind
	Field  string
	Raw    string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s record: invalid %s %q: %s", e.Kind, e.Field, e.Raw, e.Reason)
}

// InvalidChecksumError reports a security record whose digest is not a
// well-formed hex string.
type InvalidChecksumError struct {
	Raw string
}

func (e *InvalidChecksumError) Error() string {
	return fmt.Sprintf("security record: malformed hex digest %q", e.Raw)
}

// SchemaMismatchError reports an I or J record whose declared descriptor
// count does not match the descriptors present before the line ends.
type SchemaMismatchError struct {
	DeclaredCount int
	ParsedCount   int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("extension definition: declared %d descriptors, found %d",
		e.DeclaredCount, e.ParsedCount)
}
