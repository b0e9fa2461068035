package igc

import "strings"

// DataSource identifies which party supplied a header line.
type DataSource byte

const (
	SourceRecorder DataSource = 'F' // the flight recorder itself
	SourceObserver DataSource = 'O' // an official observer
	SourcePilot    DataSource = 'P' // entered by the pilot
)

func (s DataSource) String() string {
	return string(s)
}

func (s DataSource) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(s) + `"`), nil
}

// Header is a decoded H record: one key/value line of file metadata, such
// as the flight date, pilot name or glider type.
type Header struct {
	Source   DataSource `json:"source"`
	Mnemonic string     `json:"mnemonic"` // 3-character subtype code, e.g. "DTE", "GID"

	// FriendlyName is the human-readable field label preceding the colon,
	// when the line carries one ("HFGIDGLIDERID:D-KOOL" -> "GLIDERID").
	FriendlyName string `json:"friendly_name,omitempty"`

	Data string `json:"data"`
}

func (r *Header) Kind() RecordKind { return KindHeader }

func (r *Header) String() string {
	if r.FriendlyName != "" {
		return "H" + r.Source.String() + r.Mnemonic + r.FriendlyName + ":" + r.Data
	}
	return "H" + r.Source.String() + r.Mnemonic + r.Data
}

func decodeHeader(line string) (*Header, error) {
	const headerMin = 6
	if len(line) < headerMin {
		return nil, &WrongLengthError{Kind: KindHeader, Expected: headerMin, Actual: len(line)}
	}

	rec := &Header{
		Source:   DataSource(line[1]),
		Mnemonic: line[2:5],
	}

	rest := line[5:]
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		rec.FriendlyName = rest[:i]
		rec.Data = rest[i+1:]
	} else {
		rec.Data = rest
	}
	return rec, nil
}
