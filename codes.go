package nmea

import "fmt"

// FrameKind is given by the first character of a sentence.
type FrameKind uint8

const (
	// Parametric sentences start with '$' and carry conventional fields.
	Parametric FrameKind = iota
	// Encapsulated sentences start with '!' and carry encoded payloads.
	Encapsulated
)

// FixQuality is the GGA quality indicator.
type FixQuality uint8

const (
	QualityNoFix FixQuality = iota
	QualityAutonomousGNSSFix
	QualityDifferentialGNSSFix
	QualityPPSFix
	QualityRTKFixed
	QualityRTKFloat
	QualityDeadReckoning
	QualityManualInput
	QualitySimulator
)

// FixMode is the single-letter positioning mode indicator used by GLL,
// GNS, RMC and VTG.
type FixMode uint8

const (
	ModeNoFix FixMode = iota
	ModeAutonomous
	ModeDifferential
	ModeRTKFixed
	ModeRTKFloat
	ModeDeadReckoning
	ModeManualInput
	ModeSimulator
	ModePrecise
)

// Status is the data validity flag.
type Status uint8

const (
	StatusInvalid Status = iota
	StatusValid
)

// OperationMode tells whether the receiver may switch between 2D and 3D.
type OperationMode uint8

const (
	OperationManual OperationMode = iota
	OperationAutomatic
)

// NavigationMode is the fix dimensionality reported in GSA.
type NavigationMode uint8

const (
	NavigationNoFix NavigationMode = iota
	Navigation2D
	Navigation3D
)

// NavigationalStatus is the integrity indication of RMC and GNS.
type NavigationalStatus uint8

const (
	NavStatusSafe NavigationalStatus = iota
	NavStatusCaution
	NavStatusUnsafe
	NavStatusNotValid
)

// ComputationMethod tells how GRS range residuals were computed.
type ComputationMethod uint8

const (
	// ResidualsUsedInGGA: residuals were used to calculate the GGA position.
	ResidualsUsedInGGA ComputationMethod = iota
	// ResidualsAfterGGA: residuals were recomputed after the GGA position.
	ResidualsAfterGGA
)

// MessageLevel is the severity of a TXT transmission.
type MessageLevel uint8

const (
	LevelError MessageLevel = iota
	LevelWarning
	LevelNotice
	LevelUser
)

type NorthSouth uint8

const (
	North NorthSouth = iota
	South
)

type EastWest uint8

const (
	East EastWest = iota
	West
)

// CourseUnit is the reference of a VTG course.
type CourseUnit uint8

const (
	CourseTrue CourseUnit = iota
	CourseMagnetic
)

// SpeedUnit is the unit of a VTG speed.
type SpeedUnit uint8

const (
	SpeedKnots SpeedUnit = iota
	SpeedKilometersPerHour
)

// DistanceUnit is the unit of a VLW distance.
type DistanceUnit uint8

const (
	DistanceNauticalMiles DistanceUnit = iota
)

var (
	frameKindNames   = []string{"Parametric", "Encapsulated"}
	fixQualityNames  = []string{"NoFix", "AutonomousGNSSFix", "DifferentialGNSSFix", "PPSFix", "RTKFixed", "RTKFloat", "DeadReckoning", "ManualInput", "Simulator"}
	fixModeNames     = []string{"NoFix", "Autonomous", "Differential", "RTKFixed", "RTKFloat", "DeadReckoning", "ManualInput", "Simulator", "Precise"}
	statusNames      = []string{"Invalid", "Valid"}
	operationNames   = []string{"Manual", "Automatic"}
	navigationNames  = []string{"NoFix", "2D", "3D"}
	navStatusNames   = []string{"Safe", "Caution", "Unsafe", "NotValid"}
	computationNames = []string{"UsedInGGA", "AfterGGA"}
	levelNames       = []string{"Error", "Warning", "Notice", "User"}
	northSouthNames  = []string{"North", "South"}
	eastWestNames    = []string{"East", "West"}
	courseUnitNames  = []string{"True", "Magnetic"}
	speedUnitNames   = []string{"Knots", "KilometersPerHour"}
	distUnitNames    = []string{"NauticalMiles"}
)

func enumName(names []string, v uint8, typ string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

func (k FrameKind) String() string          { return enumName(frameKindNames, uint8(k), "FrameKind") }
func (q FixQuality) String() string         { return enumName(fixQualityNames, uint8(q), "FixQuality") }
func (m FixMode) String() string            { return enumName(fixModeNames, uint8(m), "FixMode") }
func (s Status) String() string             { return enumName(statusNames, uint8(s), "Status") }
func (m OperationMode) String() string      { return enumName(operationNames, uint8(m), "OperationMode") }
func (m NavigationMode) String() string     { return enumName(navigationNames, uint8(m), "NavigationMode") }
func (s NavigationalStatus) String() string { return enumName(navStatusNames, uint8(s), "NavigationalStatus") }
func (m ComputationMethod) String() string  { return enumName(computationNames, uint8(m), "ComputationMethod") }
func (l MessageLevel) String() string       { return enumName(levelNames, uint8(l), "MessageLevel") }
func (d NorthSouth) String() string         { return enumName(northSouthNames, uint8(d), "NorthSouth") }
func (d EastWest) String() string           { return enumName(eastWestNames, uint8(d), "EastWest") }
func (u CourseUnit) String() string         { return enumName(courseUnitNames, uint8(u), "CourseUnit") }
func (u SpeedUnit) String() string          { return enumName(speedUnitNames, uint8(u), "SpeedUnit") }
func (u DistanceUnit) String() string       { return enumName(distUnitNames, uint8(u), "DistanceUnit") }

func (k FrameKind) MarshalText() ([]byte, error)          { return []byte(k.String()), nil }
func (q FixQuality) MarshalText() ([]byte, error)         { return []byte(q.String()), nil }
func (m FixMode) MarshalText() ([]byte, error)            { return []byte(m.String()), nil }
func (s Status) MarshalText() ([]byte, error)             { return []byte(s.String()), nil }
func (m OperationMode) MarshalText() ([]byte, error)      { return []byte(m.String()), nil }
func (m NavigationMode) MarshalText() ([]byte, error)     { return []byte(m.String()), nil }
func (s NavigationalStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (m ComputationMethod) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (l MessageLevel) MarshalText() ([]byte, error)       { return []byte(l.String()), nil }
func (d NorthSouth) MarshalText() ([]byte, error)         { return []byte(d.String()), nil }
func (d EastWest) MarshalText() ([]byte, error)           { return []byte(d.String()), nil }
func (u CourseUnit) MarshalText() ([]byte, error)         { return []byte(u.String()), nil }
func (u SpeedUnit) MarshalText() ([]byte, error)          { return []byte(u.String()), nil }
func (u DistanceUnit) MarshalText() ([]byte, error)       { return []byte(u.String()), nil }

// Wire representations. Every table is exhaustive for its field; a
// character not listed is ErrInvalidEnumField.
var (
	fixQualityCodes = map[string]FixQuality{
		"0": QualityNoFix,
		"1": QualityAutonomousGNSSFix,
		"2": QualityDifferentialGNSSFix,
		"3": QualityPPSFix,
		"4": QualityRTKFixed,
		"5": QualityRTKFloat,
		"6": QualityDeadReckoning,
		"7": QualityManualInput,
		"8": QualitySimulator,
	}
	fixModeCodes = map[string]FixMode{
		"N": ModeNoFix,
		"A": ModeAutonomous,
		"D": ModeDifferential,
		"R": ModeRTKFixed,
		"F": ModeRTKFloat,
		"E": ModeDeadReckoning,
		"M": ModeManualInput,
		"S": ModeSimulator,
		"P": ModePrecise,
	}
	statusCodes = map[string]Status{
		"V": StatusInvalid,
		"A": StatusValid,
	}
	operationCodes = map[string]OperationMode{
		"M": OperationManual,
		"A": OperationAutomatic,
	}
	navigationCodes = map[string]NavigationMode{
		"1": NavigationNoFix,
		"2": Navigation2D,
		"3": Navigation3D,
	}
	navStatusCodes = map[string]NavigationalStatus{
		"S": NavStatusSafe,
		"C": NavStatusCaution,
		"U": NavStatusUnsafe,
		"V": NavStatusNotValid,
	}
	computationCodes = map[string]ComputationMethod{
		"0": ResidualsUsedInGGA,
		"1": ResidualsAfterGGA,
	}
	levelCodes = map[string]MessageLevel{
		"00": LevelError,
		"01": LevelWarning,
		"02": LevelNotice,
		"07": LevelUser,
	}
	northSouthCodes = map[string]NorthSouth{
		"N": North,
		"S": South,
	}
	eastWestCodes = map[string]EastWest{
		"E": East,
		"W": West,
	}
	courseUnitCodes = map[string]CourseUnit{
		"T": CourseTrue,
		"M": CourseMagnetic,
	}
	speedUnitCodes = map[string]SpeedUnit{
		"N": SpeedKnots,
		"K": SpeedKilometersPerHour,
	}
	distUnitCodes = map[string]DistanceUnit{
		"N": DistanceNauticalMiles,
	}
)
