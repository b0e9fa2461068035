package igc

import "fmt"

// TaskDeclaration is the first shape of C record: the task header carrying
// the declaration timestamp and the number of turnpoint lines that follow.
// A conforming file holds the declaration immediately followed by
// turnpoint count + 4 TaskPoint records (takeoff, start, finish, landing
// surround the actual turnpoints).
type TaskDeclaration struct {
	Date           Date   `json:"date"`
	Time           Time   `json:"time"`
	FlightDate     Date   `json:"flight_date"`
	TaskID         uint16 `json:"task_id"`
	TurnpointCount uint8  `json:"turnpoint_count"`
	Name           string `json:"name,omitempty"`
}

func (r *TaskDeclaration) Kind() RecordKind { return KindTask }

func (r *TaskDeclaration) String() string {
	return fmt.Sprintf("C%s%s%s%04d%02d%s",
		r.Date, r.Time, r.FlightDate, r.TaskID, r.TurnpointCount, r.Name)
}

// TaskPoint is the second shape of C record: one start / turn / finish
// point of a declared task.
type TaskPoint struct {
	Lat  Coordinate `json:"lat"`
	Lon  Coordinate `json:"lon"`
	Name string     `json:"name,omitempty"`
}

func (r *TaskPoint) Kind() RecordKind { return KindTask }

func (r *TaskPoint) String() string {
	return "C" + r.Lat.String() + r.Lon.String() + r.Name
}

// decodeTask dispatches between the two C record shapes. In a turnpoint the
// 9th character is the N/S of the latitude; in a declaration it is a digit
// of the declaration time.
func decodeTask(line string) (Record, error) {
	const turnpointMin = 18
	if len(line) < turnpointMin {
		return nil, &WrongLengthError{Kind: KindTask, Expected: turnpointMin, Actual: len(line)}
	}

	if line[8] == 'N' || line[8] == 'S' {
		return decodeTaskPoint(line)
	}
	return decodeTaskDeclaration(line)
}

func decodeTaskDeclaration(line string) (*TaskDeclaration, error) {
	const declarationMin = 25
	if len(line) < declarationMin {
		return nil, &WrongLengthError{Kind: KindTask, Expected: declarationMin, Actual: len(line)}
	}

	date, err := decodeDate(KindTask, line[1:7])
	if err != nil {
		return nil, err
	}
	t, err := decodeTime(KindTask, line[7:13])
	if err != nil {
		return nil, err
	}

	// The flight date slot is all zeros when the task is not tied to a
	// particular day, so the usual day/month bounds do not apply to it.
	var flightDate Date
	if line[13:19] != "000000" {
		flightDate, err = decodeDate(KindTask, line[13:19])
		if err != nil {
			return nil, err
		}
	}

	taskID, ok := parseDigits(line[19:23])
	if !ok {
		return nil, &InvalidFieldError{Kind: KindTask, Field: "task id", Raw: line[19:23], Reason: "non-digit character"}
	}
	count, ok := parseDigits(line[23:25])
	if !ok {
		return nil, &InvalidFieldError{Kind: KindTask, Field: "turnpoint count", Raw: line[23:25], Reason: "non-digit character"}
	}

	return &TaskDeclaration{
		Date:           date,
		Time:           t,
		FlightDate:     flightDate,
		TaskID:         uint16(taskID),
		TurnpointCount: uint8(count),
		Name:           line[declarationMin:],
	}, nil
}

func decodeTaskPoint(line string) (*TaskPoint, error) {
	lat, err := decodeLatitude(KindTask, line[1:9])
	if err != nil {
		return nil, err
	}
	lon, err := decodeLongitude(KindTask, line[9:18])
	if err != nil {
		return nil, err
	}

	return &TaskPoint{Lat: lat, Lon: lon, Name: line[18:]}, nil
}
