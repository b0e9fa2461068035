package igc

// RecorderInfo is a decoded A record, identifying the flight recorder unit
// that produced the file. Always the first line of a conforming file.
type RecorderInfo struct {
	Manufacturer Manufacturer `json:"manufacturer"`
	UniqueID     string       `json:"unique_id"` // 3-character serial within the manufacturer
	Extra        string       `json:"extra,omitempty"`
}

func (r *RecorderInfo) Kind() RecordKind { return KindManufacturer }

func (r *RecorderInfo) String() string {
	return "A" + string(r.Manufacturer) + r.UniqueID + r.Extra
}

func decodeRecorderInfo(line string) (*RecorderInfo, error) {
	const recorderInfoMin = 7
	if len(line) < recorderInfoMin {
		return nil, &WrongLengthError{Kind: KindManufacturer, Expected: recorderInfoMin, Actual: len(line)}
	}

	return &RecorderInfo{
		Manufacturer: Manufacturer(line[1:4]),
		UniqueID:     line[4:7],
		Extra:        line[7:],
	}, nil
}

// Event is a decoded E record: an occurrence logged during the flight, such
// as a pilot-initiated event (PEV) or a low-voltage warning. An official
// event is paired with the B record sharing its timestamp.
type Event struct {
	Time Time   `json:"time"`
	Code string `json:"code"` // 3-character event mnemonic
	Text string `json:"text,omitempty"`
}

func (r *Event) Kind() RecordKind { return KindEvent }

func (r *Event) String() string {
	return "E" + r.Time.String() + r.Code + r.Text
}

func decodeEvent(line string) (*Event, error) {
	const eventMin = 10
	if len(line) < eventMin {
		return nil, &WrongLengthError{Kind: KindEvent, Expected: eventMin, Actual: len(line)}
	}

	t, err := decodeTime(KindEvent, line[1:7])
	if err != nil {
		return nil, err
	}

	return &Event{Time: t, Code: line[7:10], Text: line[10:]}, nil
}

// Satellites is a decoded F record: the constellation in use from the given
// time onward, as a list of two-character satellite IDs.
type Satellites struct {
	Time Time     `json:"time"`
	IDs  []string `json:"ids"`
}

func (r *Satellites) Kind() RecordKind { return KindSatellites }

func (r *Satellites) String() string {
	s := "F" + r.Time.String()
	for _, id := range r.IDs {
		s += id
	}
	return s
}

func decodeSatellites(line string) (*Satellites, error) {
	const satellitesMin = 9 // time plus at least one ID
	if len(line) < satellitesMin {
		return nil, &WrongLengthError{Kind: KindSatellites, Expected: satellitesMin, Actual: len(line)}
	}

	t, err := decodeTime(KindSatellites, line[1:7])
	if err != nil {
		return nil, err
	}

	raw := line[7:]
	if len(raw)%2 != 0 {
		return nil, &InvalidFieldError{Kind: KindSatellites, Field: "satellite ids", Raw: raw, Reason: "odd number of characters"}
	}

	ids := make([]string, 0, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		ids = append(ids, raw[i:i+2])
	}
	return &Satellites{Time: t, IDs: ids}, nil
}

// Security is a decoded G record: the digest the recorder appends so that
// tampering with the file can be detected. Only the well-formedness of the
// hex string is checked here; verifying the digest against the preceding
// lines needs the whole file and is the caller's concern.
type Security struct {
	Digest string `json:"digest"`
}

func (r *Security) Kind() RecordKind { return KindSecurity }

func (r *Security) String() string {
	return "G" + r.Digest
}

func decodeSecurity(line string) (*Security, error) {
	digest, err := decodeHexDigest(line[1:])
	if err != nil {
		return nil, err
	}
	return &Security{Digest: digest}, nil
}

// Comment is a decoded L record: free-form text with no structured fields.
type Comment struct {
	Text string `json:"text"`
}

func (r *Comment) Kind() RecordKind { return KindComment }

func (r *Comment) String() string {
	return "L" + r.Text
}

func decodeComment(line string) (*Comment, error) {
	return &Comment{Text: line[1:]}, nil
}
