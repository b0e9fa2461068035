package igc

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// descriptorLength is the width of one I/J extension descriptor:
	// two start-column digits, two end-column digits, three mnemonic chars.
	descriptorLength = 7

	// maxLineColumns bounds the columns an extension may address.
	maxLineColumns = 99

	fixBaseLength  = 35 // fixed-width portion of a B record
	dataBaseLength = 7  // fixed-width portion of a K record
)

// FieldDef describes one extension field appended to B or K records.
// Start and End are 1-indexed inclusive column numbers, exactly as declared
// by the I or J record.
type FieldDef struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Mnemonic string `json:"mnemonic"`
}

func (d FieldDef) String() string {
	return fmt.Sprintf("%02d%02d%s", d.Start, d.End, d.Mnemonic)
}

// FixExtensions is a decoded I record: the extension fields that subsequent
// B records carry past column 35.
type FixExtensions struct {
	Defs []FieldDef `json:"defs"`
}

func (r *FixExtensions) Kind() RecordKind { return KindFixExtensions }

func (r *FixExtensions) String() string {
	return encodeExtensionDefs('I', r.Defs)
}

// DataExtensions is a decoded J record: the extension fields that subsequent
// K records carry past column 7.
type DataExtensions struct {
	Defs []FieldDef `json:"defs"`
}

func (r *DataExtensions) Kind() RecordKind { return KindDataExtensions }

func (r *DataExtensions) String() string {
	return encodeExtensionDefs('J', r.Defs)
}

func decodeFixExtensions(line string) (*FixExtensions, error) {
	defs, err := decodeExtensionDefs(KindFixExtensions, line)
	if err != nil {
		return nil, err
	}
	return &FixExtensions{Defs: defs}, nil
}

func decodeDataExtensions(line string) (*DataExtensions, error) {
	defs, err := decodeExtensionDefs(KindDataExtensions, line)
	if err != nil {
		return nil, err
	}
	return &DataExtensions{Defs: defs}, nil
}

// decodeExtensionDefs parses the shared I/J layout: a 2-digit descriptor
// count followed by that many 7-character descriptors. The declared count
// bounds consumption, so trailing characters past the last declared
// descriptor are ignored rather than rejected.
func decodeExtensionDefs(kind RecordKind, line string) ([]FieldDef, error) {
	if len(line) < 3 {
		return nil, &WrongLengthError{Kind: kind, Expected: 3, Actual: len(line)}
	}

	count, ok := parseDigits(line[1:3])
	if !ok {
		return nil, &InvalidFieldError{Kind: kind, Field: "descriptor count", Raw: line[1:3], Reason: "non-digit character"}
	}

	avail := (len(line) - 3) / descriptorLength
	if avail < count {
		return nil, &SchemaMismatchError{DeclaredCount: count, ParsedCount: avail}
	}

	defs := make([]FieldDef, 0, count)
	for i := 0; i < count; i++ {
		raw := line[3+i*descriptorLength : 3+(i+1)*descriptorLength]

		start, ok1 := parseDigits(raw[0:2])
		end, ok2 := parseDigits(raw[2:4])
		if !ok1 || !ok2 {
			return nil, &InvalidFieldError{Kind: kind, Field: "descriptor range", Raw: raw, Reason: "non-digit character"}
		}
		if end < start {
			return nil, &InvalidFieldError{Kind: kind, Field: "descriptor range", Raw: raw, Reason: "end column before start column"}
		}

		defs = append(defs, FieldDef{Start: start, End: end, Mnemonic: raw[4:7]})
	}

	return defs, nil
}

func encodeExtensionDefs(letter byte, defs []FieldDef) string {
	var b strings.Builder
	b.WriteByte(letter)
	fmt.Fprintf(&b, "%02d", len(defs))
	for _, d := range defs {
		b.WriteString(d.String())
	}
	return b.String()
}

// Schema is the set of extension field descriptors currently in effect for
// decoding B or K records. It is built once from a decoded I or J record and
// reused for every subsequent B or K line until a new I/J record supersedes
// it. A Schema is immutable after construction; the decoders only read it.
type Schema struct {
	kind    RecordKind // record kind the schema applies to
	baseLen int
	maxEnd  int
	defs    []FieldDef
	index   map[string]int
}

// NewFixSchema builds the schema a decoded I record declares for B records.
func NewFixSchema(r *FixExtensions) (*Schema, error) {
	return newSchema(KindFix, fixBaseLength, r.Defs)
}

// NewDataSchema builds the schema a decoded J record declares for K records.
func NewDataSchema(r *DataExtensions) (*Schema, error) {
	return newSchema(KindExtensionData, dataBaseLength, r.Defs)
}

func newSchema(kind RecordKind, baseLen int, defs []FieldDef) (*Schema, error) {
	s := &Schema{
		kind:    kind,
		baseLen: baseLen,
		maxEnd:  baseLen,
		defs:    append([]FieldDef(nil), defs...),
		index:   make(map[string]int, len(defs)),
	}

	for i, d := range s.defs {
		if d.Start <= baseLen {
			return nil, &InvalidFieldError{
				Kind: kind, Field: d.Mnemonic, Raw: d.String(),
				Reason: fmt.Sprintf("start column inside the fixed portion (first %d columns)", baseLen),
			}
		}
		if d.End > maxLineColumns {
			return nil, &InvalidFieldError{
				Kind: kind, Field: d.Mnemonic, Raw: d.String(),
				Reason: fmt.Sprintf("end column beyond column %d", maxLineColumns),
			}
		}
		if _, dup := s.index[d.Mnemonic]; dup {
			return nil, &InvalidFieldError{
				Kind: kind, Field: d.Mnemonic, Raw: d.String(),
				Reason: "duplicate mnemonic",
			}
		}
		s.index[d.Mnemonic] = i
		if d.End > s.maxEnd {
			s.maxEnd = d.End
		}
	}

	// Overlap check on a copy sorted by start column.
	sorted := append([]FieldDef(nil), s.defs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start <= sorted[i-1].End {
			return nil, &InvalidFieldError{
				Kind: kind, Field: sorted[i].Mnemonic, Raw: sorted[i].String(),
				Reason: fmt.Sprintf("range overlaps %s", sorted[i-1].Mnemonic),
			}
		}
	}

	return s, nil
}

// Fields returns the descriptors in their declared order.
func (s *Schema) Fields() []FieldDef {
	return s.defs
}

// Lookup returns the descriptor for a mnemonic, if declared.
func (s *Schema) Lookup(mnemonic string) (FieldDef, bool) {
	i, ok := s.index[mnemonic]
	if !ok {
		return FieldDef{}, false
	}
	return s.defs[i], true
}

// apply slices every declared extension out of line. The second return value
// is any trailing data past the last declared column: recorders sometimes
// over-allocate line length, so that is surfaced to the caller rather than
// rejected. A line too short for a declared range is an error.
func (s *Schema) apply(line string) (map[string]string, string, error) {
	values := make(map[string]string, len(s.defs))
	for _, d := range s.defs {
		if d.End > len(line) {
			return nil, "", &InvalidFieldError{
				Kind: s.kind, Field: d.Mnemonic, Raw: line,
				Reason: fmt.Sprintf("line too short for declared columns %d-%d", d.Start, d.End),
			}
		}
		values[d.Mnemonic] = line[d.Start-1 : d.End]
	}

	unused := ""
	if len(line) > s.maxEnd {
		unused = line[s.maxEnd:]
	}
	return values, unused, nil
}

// ExtensionData is a decoded K record: a timestamped sample of the extension
// fields declared by the most recent J record.
type ExtensionData struct {
	Time Time `json:"time"`

	// Extensions maps each declared mnemonic to its raw slice of the line.
	// Empty when no J record preceded this line.
	Extensions map[string]string `json:"extensions,omitempty"`

	// Raw holds every character past the fixed portion, uninterpreted.
	Raw string `json:"raw,omitempty"`

	// Unused holds trailing characters past the last schema-declared column.
	Unused string `json:"unused,omitempty"`
}

func (r *ExtensionData) Kind() RecordKind { return KindExtensionData }

func (r *ExtensionData) String() string {
	return "K" + r.Time.String() + r.Raw
}

func decodeExtensionData(line string, schema *Schema) (*ExtensionData, error) {
	if len(line) < dataBaseLength+1 {
		return nil, &WrongLengthError{Kind: KindExtensionData, Expected: dataBaseLength + 1, Actual: len(line)}
	}

	t, err := decodeTime(KindExtensionData, line[1:7])
	if err != nil {
		return nil, err
	}

	rec := &ExtensionData{Time: t, Raw: line[dataBaseLength:]}
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
