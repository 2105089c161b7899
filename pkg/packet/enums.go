/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package packet

// enum8 reads one byte and rejects values above max with ErrMalformedField
func enum8(d *decoder, field string, max uint8) uint8 {
	v := d.u8()
	if d.err == nil && v > max {
		d.setErr(ErrMalformedField{Field: field, Value: int64(v)})
	}
	return v
}

// enumI8 reads one signed byte and rejects values outside [min, max]
func enumI8(d *decoder, field string, min, max int8) int8 {
	v := d.i8()
	if d.err == nil && (v < min || v > max) {
		d.setErr(ErrMalformedField{Field: field, Value: int64(v)})
	}
	return v
}

// readBool reads one byte and rejects anything but 0 or 1
func readBool(d *decoder, field string) bool {
	return enum8(d, field, 1) == 1
}

type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherLightCloud
	WeatherOvercast
	WeatherLightRain
	WeatherHeavyRain
	WeatherStorm
)

func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "Clear"
	case WeatherLightCloud:
		return "Light Cloud"
	case WeatherOvercast:
		return "Overcast"
	case WeatherLightRain:
		return "Light Rain"
	case WeatherHeavyRain:
		return "Heavy Rain"
	case WeatherStorm:
		return "Storm"
	}
	return "[N/A]"
}

type SessionType uint8

const (
	SessionUnknown SessionType = iota
	SessionP1
	SessionP2
	SessionP3
	SessionShortP
	SessionQ1
	SessionQ2
	SessionQ3
	SessionShortQ
	SessionOSQ
	SessionR
	SessionR2
	SessionTimeTrial
)

type TrackID int8

const (
	TrackUnknown TrackID = iota - 1
	TrackMelbourne
	TrackPaulRicard
	TrackShanghai
	TrackSakhir
	TrackCatalunya
	TrackMonaco
	TrackMontreal
	TrackSilverstone
	TrackHockenheim
	TrackHungaroring
	TrackSpa
	TrackMonza
	TrackSingapore
	TrackSuzuka
	TrackAbuDhabi
	TrackTexas
	TrackBrazil
	TrackAustria
	TrackSochi
	TrackMexico
	TrackBaku
	TrackSakhirShort
	TrackSilverstoneShort
	TrackTexasShort
	TrackSuzukaShort
	TrackHanoi
	TrackZandvoort
)

var trackNames = map[TrackID]string{
	TrackMelbourne:        "Melbourne",
	TrackPaulRicard:       "Paul Ricard",
	TrackShanghai:         "Shanghai",
	TrackSakhir:           "Sakhir",
	TrackCatalunya:        "Catalunya",
	TrackMonaco:           "Monaco",
	TrackMontreal:         "Montreal",
	TrackSilverstone:      "Silverstone",
	TrackHockenheim:       "Hockenheim",
	TrackHungaroring:      "Hungaroring",
	TrackSpa:              "Spa",
	TrackMonza:            "Monza",
	TrackSingapore:        "Singapore",
	TrackSuzuka:           "Suzuka",
	TrackAbuDhabi:         "Abu Dhabi",
	TrackTexas:            "Texas",
	TrackBrazil:           "Brazil",
	TrackAustria:          "Austria",
	TrackSochi:            "Sochi",
	TrackMexico:           "Mexico",
	TrackBaku:             "Baku",
	TrackSakhirShort:      "Sakhir Short",
	TrackSilverstoneShort: "Silverstone Short",
	TrackTexasShort:       "Texas Short",
	TrackSuzukaShort:      "Suzuka Short",
	TrackHanoi:            "Hanoi",
	TrackZandvoort:        "Zandvoort",
}

func (t TrackID) String() string {
	if name, ok := trackNames[t]; ok {
		return name
	}
	return "[N/A]"
}

type Formula uint8

const (
	FormulaF1Modern Formula = iota
	FormulaF1Classic
	FormulaF2
	FormulaF1Generic
)

type SafetyCar uint8

const (
	SafetyCarNone SafetyCar = iota
	SafetyCarFull
	SafetyCarVirtual
)

type NetworkGame uint8

const (
	NetworkGameOffline NetworkGame = iota
	NetworkGameOnline
)

// ZoneFlag is the flag waved in a marshal zone.
// -1 = invalid/unknown, 0 = none, 1 = green, 2 = blue, 3 = yellow, 4 = red
type ZoneFlag int8

const (
	FlagUnknown ZoneFlag = iota - 1
	FlagNone
	FlagGreen
	FlagBlue
	FlagYellow
	FlagRed
)

type PitStatus uint8

const (
	PitStatusNone PitStatus = iota
	PitStatusPitting
	PitStatusPitArea
)

type DriverStatus uint8

const (
	DriverStatusGarage DriverStatus = iota
	DriverStatusFlyingLap
	DriverStatusInLap
	DriverStatusOutLap
	DriverStatusOnTrack
)

type ResultStatus uint8

const (
	ResultStatusInvalid ResultStatus = iota
	ResultStatusInactive
	ResultStatusActive
	ResultStatusFinished
	ResultStatusDisqualified
	ResultStatusNotClassified
	ResultStatusRetired
)

type SurfaceType uint8

const (
	SurfaceTarmac SurfaceType = iota
	SurfaceRumbleStrip
	SurfaceConcrete
	SurfaceRock
	SurfaceGravel
	SurfaceMud
	SurfaceSand
	SurfaceGrass
	SurfaceWater
	SurfaceCobblestone
	SurfaceMetal
	SurfaceRidged
	SurfaceUnknown
)

// MFDPanel is the multi-function display panel that is open, 255 when closed
type MFDPanel uint8

const (
	MFDPanelCarSetup MFDPanel = iota
	MFDPanelPits
	MFDPanelDamage
	MFDPanelEngine
	MFDPanelTemperatures
	MFDPanelClosed MFDPanel = 255
)

func decodeMFDPanel(d *decoder, field string) MFDPanel {
	v := d.u8()
	if d.err == nil && v > uint8(MFDPanelTemperatures) && v != uint8(MFDPanelClosed) {
		d.setErr(ErrMalformedField{Field: field, Value: int64(v)})
	}
	return MFDPanel(v)
}

type TractionControl uint8

const (
	TractionControlOff TractionControl = iota
	TractionControlLow
	TractionControlHigh
)

type FuelMix uint8

const (
	FuelMixLean FuelMix = iota
	FuelMixStandard
	FuelMixRich
	FuelMixMax
)

func (f FuelMix) String() string {
	switch f {
	case FuelMixLean:
		return "Lean"
	case FuelMixStandard:
		return "Standard"
	case FuelMixRich:
		return "Rich"
	case FuelMixMax:
		return "Max"
	}
	return "[N/A]"
}

// DRSStatus reports whether DRS is allowed. -1 = unknown
type DRSStatus int8

const (
	DRSUnknown DRSStatus = iota - 1
	DRSNotAllowed
	DRSAllowed
)

func (s DRSStatus) String() string {
	switch s {
	case DRSNotAllowed:
		return "Not Allowed"
	case DRSAllowed:
		return "Allowed"
	}
	return "Unknown"
}

type ERSDeployMode uint8

const (
	ERSDeployNone ERSDeployMode = iota
	ERSDeployMedium
	ERSDeployOvertake
	ERSDeployHotlap
)

func (m ERSDeployMode) String() string {
	switch m {
	case ERSDeployNone:
		return "None"
	case ERSDeployMedium:
		return "Medium"
	case ERSDeployOvertake:
		return "Overtake"
	case ERSDeployHotlap:
		return "Hotlap"
	}
	return "[N/A]"
}

// TyreCompound is the physical compound fitted to the car.
// 0 and 255 mean unknown.
type TyreCompound uint8

const (
	TyreCompoundInter        TyreCompound = 7
	TyreCompoundWet          TyreCompound = 8
	TyreCompoundF1ClassicDry TyreCompound = 9
	TyreCompoundF1ClassicWet TyreCompound = 10
	TyreCompoundF2SuperSoft  TyreCompound = 11
	TyreCompoundF2Soft       TyreCompound = 12
	TyreCompoundF2Medium     TyreCompound = 13
	TyreCompoundF2Hard       TyreCompound = 14
	TyreCompoundF2Wet        TyreCompound = 15
	TyreCompoundC5           TyreCompound = 16
	TyreCompoundC4           TyreCompound = 17
	TyreCompoundC3           TyreCompound = 18
	TyreCompoundC2           TyreCompound = 19
	TyreCompoundC1           TyreCompound = 20
)

func decodeTyreCompound(d *decoder, field string) TyreCompound {
	v := d.u8()
	if d.err == nil && !(v >= 7 && v <= 20 || v == 0 || v == 255) {
		d.setErr(ErrMalformedField{Field: field, Value: int64(v)})
	}
	return TyreCompound(v)
}

// VisualTyreCompound is the compound shown on the tyre wall, which the
// game decouples from the physical one. 0 means unknown.
type VisualTyreCompound uint8

const (
	VisualTyreInter        VisualTyreCompound = 7
	VisualTyreWet          VisualTyreCompound = 8
	VisualTyreF1ClassicDry VisualTyreCompound = 9
	VisualTyreF1ClassicWet VisualTyreCompound = 10
	VisualTyreF2SuperSoft  VisualTyreCompound = 11
	VisualTyreF2Soft       VisualTyreCompound = 12
	VisualTyreF2Medium     VisualTyreCompound = 13
	VisualTyreF2Hard       VisualTyreCompound = 14
	VisualTyreF2Wet        VisualTyreCompound = 15
	VisualTyreSoft         VisualTyreCompound = 16
	VisualTyreMedium       VisualTyreCompound = 17
	VisualTyreHard         VisualTyreCompound = 18
)

func decodeVisualTyreCompound(d *decoder, field string) VisualTyreCompound {
	v := d.u8()
	if d.err == nil && !(v >= 7 && v <= 18 || v == 0) {
		d.setErr(ErrMalformedField{Field: field, Value: int64(v)})
	}
	return VisualTyreCompound(v)
}

func (c VisualTyreCompound) String() string {
	switch c {
	case VisualTyreSoft, VisualTyreF2SuperSoft, VisualTyreF2Soft:
		return "Soft"
	case VisualTyreMedium, VisualTyreF2Medium:
		return "Medium"
	case VisualTyreHard, VisualTyreF2Hard:
		return "Hard"
	case VisualTyreInter:
		return "Inter"
	case VisualTyreWet, VisualTyreF1ClassicWet, VisualTyreF2Wet:
		return "Wet"
	case VisualTyreF1ClassicDry:
		return "Dry"
	}
	return "[N/A]"
}

type ReadyStatus uint8

const (
	ReadyStatusNotReady ReadyStatus = iota
	ReadyStatusReady
	ReadyStatusSpectating
)

// YourTelemetry is the player's UDP visibility setting
type YourTelemetry uint8

const (
	TelemetryRestricted YourTelemetry = iota
	TelemetryPublic
)

// TeamID identifies a team. 255 is the player-created MyTeam entry.
type TeamID uint8

const TeamMyTeam TeamID = 255

var teamNames = map[TeamID]string{
	0:   "Mercedes",
	1:   "Ferrari",
	2:   "Red Bull Racing",
	3:   "Williams",
	4:   "Racing Point",
	5:   "Renault",
	6:   "Alpha Tauri",
	7:   "Haas",
	8:   "McLaren",
	9:   "Alfa Romeo",
	10:  "McLaren 1988",
	11:  "McLaren 1991",
	12:  "Williams 1992",
	13:  "Ferrari 1995",
	14:  "Williams 1996",
	15:  "McLaren 1998",
	16:  "Ferrari 2002",
	17:  "Ferrari 2004",
	18:  "Renault 2006",
	19:  "Ferrari 2007",
	20:  "McLaren 2008",
	21:  "Red Bull 2010",
	22:  "Ferrari 1976",
	23:  "ART Grand Prix",
	24:  "Campos Vexatec Racing",
	25:  "Carlin",
	26:  "Charouz Racing System",
	27:  "DAMS",
	28:  "Russian Time",
	29:  "MP Motorsport",
	30:  "Pertamina",
	31:  "McLaren 1990",
	32:  "Trident",
	33:  "BWT Arden",
	34:  "McLaren 1976",
	35:  "Lotus 1972",
	36:  "Ferrari 1979",
	37:  "McLaren 1982",
	38:  "Williams 2003",
	39:  "Brawn 2009",
	40:  "Lotus 1978",
	41:  "F1 Generic Car",
	42:  "ART GP 2019",
	43:  "Campos 2019",
	44:  "Carlin 2019",
	45:  "Sauber Junior Charouz 2019",
	46:  "DAMS 2019",
	47:  "Uni-Virtuosi 2019",
	48:  "MP Motorsport 2019",
	49:  "Prema 2019",
	50:  "Trident 2019",
	51:  "Arden 2019",
	53:  "Benetton 1994",
	54:  "Benetton 1995",
	55:  "Ferrari 2000",
	56:  "Jordan 1991",
	255: "MyTeam",
}

func decodeTeam(d *decoder, field string) TeamID {
	v := d.u8()
	if d.err == nil {
		if _, ok := teamNames[TeamID(v)]; !ok {
			d.setErr(ErrMalformedField{Field: field, Value: int64(v)})
		}
	}
	return TeamID(v)
}

func (t TeamID) String() string {
	if name, ok := teamNames[t]; ok {
		return name
	}
	return "[N/A]"
}

// DriverID identifies an AI driver. Values of 100 and above are human
// players, which the game numbers dynamically.
type DriverID uint8

var driverNames = map[DriverID]string{
	0:  "Carlos Sainz",
	1:  "Daniil Kvyat",
	2:  "Daniel Ricciardo",
	6:  "Kimi Raikkonen",
	7:  "Lewis Hamilton",
	9:  "Max Verstappen",
	10: "Nico Hulkenburg",
	11: "Kevin Magnussen",
	12: "Romain Grosjean",
	13: "Sebastian Vettel",
	14: "Sergio Perez",
	15: "Valtteri Bottas",
	17: "Esteban Ocon",
	19: "Lance Stroll",
	20: "Arron Barnes",
	21: "Martin Giles",
	22: "Alex Murray",
	23: "Lucas Roth",
	24: "Igor Correia",
	25: "Sophie Levasseur",
	26: "Jonas Schiffer",
	27: "Alain Forest",
	28: "Jay Letourneau",
	29: "Esto Saari",
	30: "Yasar Atiyeh",
	31: "Callisto Calabresi",
	32: "Naota Izum",
	33: "Howard Clarke",
	34: "Wilhelm Kaufmann",
	35: "Marie Laursen",
	36: "Flavio Nieves",
	37: "Peter Belousov",
	38: "Klimek Michalski",
	39: "Santiago Moreno",
	40: "Benjamin Coppens",
	41: "Noah Visser",
	42: "Gert Waldmuller",
	43: "Julian Quesada",
	44: "Daniel Jones",
	45: "Artem Markelov",
	46: "Tadasuke Makino",
	47: "Sean Gelael",
	48: "Nyck De Vries",
	49: "Jack Aitken",
	50: "George Russell",
	51: "Maximilian Gunther",
	52: "Nirei Fukuzumi",
	53: "Luca Ghiotto",
	54: "Lando Norris",
	55: "Sergio Sette Camara",
	56: "Louis Deletraz",
	57: "Antonio Fuoco",
	58: "Charles Leclerc",
	59: "Pierre Gasly",
	62: "Alexander Albon",
	63: "Nicholas Latifi",
	64: "Dorian Boccolacci",
	65: "Niko Kari",
	66: "Roberto Merhi",
	67: "Arjun Maini",
	68: "Alessio Lorandi",
	69: "Ruben Meijer",
	70: "Rashid Nair",
	71: "Jack Tremblay",
	74: "Antonio Giovinazzi",
	75: "Robert Kubica",
	78: "Nobuharu Matsushita",
	79: "Nikita Mazepin",
	80: "Guanya Zhou",
	81: "Mick Schumacher",
	82: "Callum Ilott",
	83: "Juan Manuel Correa",
	84: "Jordan King",
	85: "Mahaveer Raghunathan",
	86: "Tatiana Calderon",
	87: "Anthoine Hubert",
	88: "Guiliano Alesi",
	89: "Ralph Boschung",
}

// Player reports whether the driver is a human player
func (id DriverID) Player() bool {
	return id >= 100
}

func decodeDriver(d *decoder, field string) DriverID {
	v := d.u8()
	if d.err == nil && v < 100 {
		if _, ok := driverNames[DriverID(v)]; !ok {
			d.setErr(ErrMalformedField{Field: field, Value: int64(v)})
		}
	}
	return DriverID(v)
}

func (id DriverID) String() string {
	if id.Player() {
		return "Player"
	}
	if name, ok := driverNames[id]; ok {
		return name
	}
	return "[N/A]"
}

// NationalityID identifies a driver's nationality. 0 and 255 mean not set.
type NationalityID uint8

var nationalityNames = map[NationalityID]string{
	1:  "American",
	2:  "Argentinean",
	3:  "Australian",
	4:  "Austrian",
	5:  "Azerbaijani",
	6:  "Bahraini",
	7:  "Belgian",
	8:  "Bolivian",
	9:  "Brazilian",
	10: "British",
	11: "Bulgarian",
	12: "Cameroonian",
	13: "Canadian",
	14: "Chilean",
	15: "Chinese",
	16: "Colombian",
	17: "Costa Rican",
	18: "Croatian",
	19: "Cypriot",
	20: "Czech",
	21: "Danish",
	22: "Dutch",
	23: "Ecuadorian",
	24: "English",
	25: "Emirian",
	26: "Estonian",
	27: "Finnish",
	28: "French",
	29: "German",
	30: "Ghanaian",
	31: "Greek",
	32: "Guatemalan",
	33: "Honduran",
	34: "Hong Konger",
	35: "Hungarian",
	36: "Icelander",
	37: "Indian",
	38: "Indonesian",
	39: "Irish",
	40: "Israeli",
	41: "Italian",
	42: "Jamaican",
	43: "Japanese",
	44: "Jordanian",
	45: "Kuwaiti",
	46: "Latvian",
	47: "Lebanese",
	48: "Lithuanian",
	49: "Luxembourger",
	50: "Malaysian",
	51: "Maltese",
	52: "Mexican",
	53: "Monegasque",
	54: "New Zealander",
	55: "Nicaraguan",
	56: "North Korean",
	57: "Northern Irish",
	58: "Norwegian",
	59: "Omani",
	60: "Pakistani",
	61: "Panamanian",
	62: "Paraguayan",
	63: "Peruvian",
	64: "Polish",
	65: "Portuguese",
	66: "Qatari",
	67: "Romanian",
	68: "Russian",
	69: "Salvadoran",
	70: "Saudi",
	71: "Scottish",
	72: "Serbian",
	73: "Singaporean",
	74: "Slovakian",
	75: "Slovenian",
	76: "South Korean",
	77: "South African",
	78: "Spanish",
	79: "Swedish",
	80: "Swiss",
	81: "Thai",
	82: "Turkish",
	83: "Uruguayan",
	84: "Ukrainian",
	85: "Venezuelan",
	86: "Welsh",
	87: "Barbadian",
	88: "Vietnamese",
}

func decodeNationality(d *decoder, field string) NationalityID {
	v := d.u8()
	if d.err == nil && v != 0 && v != 255 {
		if _, ok := nationalityNames[NationalityID(v)]; !ok {
			d.setErr(ErrMalformedField{Field: field, Value: int64(v)})
		}
	}
	return NationalityID(v)
}

func (id NationalityID) String() string {
	if name, ok := nationalityNames[id]; ok {
		return name
	}
	return "Invalid"
}
