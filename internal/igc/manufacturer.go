package igc

// Manufacturer is the three-letter code identifying a flight recorder
// manufacturer, as approved by the FAI. Unknown codes are carried verbatim.
type Manufacturer string

const (
	Aircotec                  Manufacturer = "ACT"
	CambridgeAeroInstruments  Manufacturer = "CAM"
	ClearNavInstruments       Manufacturer = "CNI"
	DataSwan                  Manufacturer = "DSX"
	EWAvionics                Manufacturer = "EWA"
	Filser                    Manufacturer = "FIL"
	Flarm                     Manufacturer = "FLA"
	Flytech                   Manufacturer = "FLY"
	Garrecht                  Manufacturer = "GCS"
	IMIGlidingEquipment       Manufacturer = "IMI"
	Logstream                 Manufacturer = "LGS"
	LXNavigation              Manufacturer = "LXN"
	LXNav                     Manufacturer = "LXV"
	Naviter                   Manufacturer = "NAV"
	NewTechnologies           Manufacturer = "NTE"
	NielsenKellerman          Manufacturer = "NKL"
	Peschges                  Manufacturer = "PES"
	PressFinishElectronics    Manufacturer = "PFE"
	PrintTechnik              Manufacturer = "PRT"
	Scheffel                  Manufacturer = "SCH"
	StreamlineDataInstruments Manufacturer = "SDI"
	TriadisEngineering        Manufacturer = "TRI"
	Zander                    Manufacturer = "ZAN"
)

var manufacturerNames = map[Manufacturer]string{
	Aircotec:                  "Aircotec",
	CambridgeAeroInstruments:  "Cambridge Aero Instruments",
	ClearNavInstruments:       "ClearNav Instruments",
	DataSwan:                  "DataSwan",
	EWAvionics:                "EW Avionics",
	Filser:                    "Filser",
	Flarm:                     "Flarm",
	Flytech:                   "Flytech",
	Garrecht:                  "Garrecht",
	IMIGlidingEquipment:       "IMI Gliding Equipment",
	Logstream:                 "Logstream",
	LXNavigation:              "LX Navigation",
	LXNav:                     "LXNav",
	Naviter:                   "Naviter",
	NewTechnologies:           "New Technologies",
	NielsenKellerman:          "Nielsen-Kellerman",
	Peschges:                  "Peschges",
	PressFinishElectronics:    "Press Finish Electronics",
	PrintTechnik:              "Print-Technik",
	Scheffel:                  "Scheffel",
	StreamlineDataInstruments: "Streamline Data Instruments",
	TriadisEngineering:        "Triadis Engineering",
	Zander:                    "Zander",
}

// Known reports whether the code belongs to an approved manufacturer.
func (m Manufacturer) Known() bool {
	_, ok := manufacturerNames[m]
	return ok
}

// Name returns the manufacturer's full name, or the raw code when unknown.
func (m Manufacturer) Name() string {
	if name, ok := manufacturerNames[m]; ok {
		return name
	}
	return string(m)
}
