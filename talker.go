package nmea

import "fmt"

// Talker identifies the kind of equipment that sent a sentence.
type Talker uint8

const (
	TalkerIndependentAISBaseStation Talker = iota
	TalkerDependentAISBaseStation
	TalkerMobileAISStation
	TalkerAISAidToNavigation
	TalkerAISReceivingStation
	TalkerAISLimitedBaseStation
	TalkerAISTransmittingStation
	TalkerAISRepeaterStation
	TalkerAISBaseStation
	TalkerAISShoreStation
	TalkerAutopilotGeneral
	TalkerAutopilotMagnetic
	TalkerBridgeNavigationalWatchAlarm
	TalkerBeiDou
	TalkerComputerProgrammedCalculator
	TalkerDigitalSelectiveCalling
	TalkerComputerMemoryData
	TalkerCommunicationsSatellite
	TalkerRadioTelephoneMFHF
	TalkerRadioTelephoneVHF
	TalkerScanningReceiver
	TalkerDecca
	TalkerDirectionFinder
	TalkerSpeedLogWaterMagnetic
	TalkerDuplexRepeaterStation
	TalkerECDIS
	TalkerEPIRB
	TalkerEngineRoomMonitoring
	TalkerGalileo
	TalkerNavIC
	TalkerGLONASS
	TalkerGNSS
	TalkerGPS
	TalkerQZSS
	TalkerHeadingMagneticCompass
	TalkerHeadingNorthSeekingGyro
	TalkerHeadingNonNorthSeekingGyro
	TalkerIntegratedInstrumentation
	TalkerIntegratedNavigation
	TalkerLoranA
	TalkerLoranC
	TalkerMicrowavePositioning
	TalkerNavigationLightController
	TalkerOmega
	TalkerDistressAlarmSystem
	TalkerRadar
	TalkerSounderDepth
	TalkerElectronicPositioning
	TalkerSounderScanning
	TalkerTurnRateIndicator
	TalkerTransit
	TalkerUser0
	TalkerUser1
	TalkerUser2
	TalkerUser3
	TalkerUser4
	TalkerUser5
	TalkerUser6
	TalkerUser7
	TalkerUser8
	TalkerUser9
	TalkerMicroprocessorController
	TalkerVelocitySensorDoppler
	TalkerSpeedLogWaterMechanical
	TalkerWeatherInstruments
	TalkerTransducerTemperature
	TalkerTransducerDisplacement
	TalkerTransducerFrequency
	TalkerTransducerLevel
	TalkerTransducerPressure
	TalkerTransducerFlowRate
	TalkerTransducerTachometer
	TalkerTransducerVolume
	TalkerTransducer
	TalkerAtomicClock
	TalkerChronometer
	TalkerQuartzClock
	TalkerRadioUpdateClock

	numTalkers
)

var talkerCodes = map[string]Talker{
	"AB": TalkerIndependentAISBaseStation,
	"AD": TalkerDependentAISBaseStation,
	"AI": TalkerMobileAISStation,
	"AN": TalkerAISAidToNavigation,
	"AR": TalkerAISReceivingStation,
	"AS": TalkerAISLimitedBaseStation,
	"AT": TalkerAISTransmittingStation,
	"AX": TalkerAISRepeaterStation,
	"BS": TalkerAISBaseStation,
	"SA": TalkerAISShoreStation,
	"AG": TalkerAutopilotGeneral,
	"AP": TalkerAutopilotMagnetic,
	"BN": TalkerBridgeNavigationalWatchAlarm,
	"BD": TalkerBeiDou,
	"GB": TalkerBeiDou,
	"CC": TalkerComputerProgrammedCalculator,
	"CD": TalkerDigitalSelectiveCalling,
	"CM": TalkerComputerMemoryData,
	"CS": TalkerCommunicationsSatellite,
	"CT": TalkerRadioTelephoneMFHF,
	"CV": TalkerRadioTelephoneVHF,
	"CX": TalkerScanningReceiver,
	"DE": TalkerDecca,
	"DF": TalkerDirectionFinder,
	"DM": TalkerSpeedLogWaterMagnetic,
	"DU": TalkerDuplexRepeaterStation,
	"EC": TalkerECDIS,
	"EP": TalkerEPIRB,
	"ER": TalkerEngineRoomMonitoring,
	"GA": TalkerGalileo,
	"GI": TalkerNavIC,
	"GL": TalkerGLONASS,
	"GN": TalkerGNSS,
	"GP": TalkerGPS,
	"GQ": TalkerQZSS,
	"QZ": TalkerQZSS,
	"HC": TalkerHeadingMagneticCompass,
	"HE": TalkerHeadingNorthSeekingGyro,
	"HN": TalkerHeadingNonNorthSeekingGyro,
	"II": TalkerIntegratedInstrumentation,
	"IN": TalkerIntegratedNavigation,
	"LA": TalkerLoranA,
	"LC": TalkerLoranC,
	"MP": TalkerMicrowavePositioning,
	"NL": TalkerNavigationLightController,
	"OM": TalkerOmega,
	"OS": TalkerDistressAlarmSystem,
	"RA": TalkerRadar,
	"SD": TalkerSounderDepth,
	"SN": TalkerElectronicPositioning,
	"SS": TalkerSounderScanning,
	"TI": TalkerTurnRateIndicator,
	"TR": TalkerTransit,
	"U0": TalkerUser0,
	"U1": TalkerUser1,
	"U2": TalkerUser2,
	"U3": TalkerUser3,
	"U4": TalkerUser4,
	"U5": TalkerUser5,
	"U6": TalkerUser6,
	"U7": TalkerUser7,
	"U8": TalkerUser8,
	"U9": TalkerUser9,
	"UP": TalkerMicroprocessorController,
	"VD": TalkerVelocitySensorDoppler,
	"VW": TalkerSpeedLogWaterMechanical,
	"WI": TalkerWeatherInstruments,
	"YC": TalkerTransducerTemperature,
	"YD": TalkerTransducerDisplacement,
	"YF": TalkerTransducerFrequency,
	"YL": TalkerTransducerLevel,
	"YP": TalkerTransducerPressure,
	"YR": TalkerTransducerFlowRate,
	"YT": TalkerTransducerTachometer,
	"YV": TalkerTransducerVolume,
	"YX": TalkerTransducer,
	"ZA": TalkerAtomicClock,
	"ZC": TalkerChronometer,
	"ZQ": TalkerQuartzClock,
	"ZV": TalkerRadioUpdateClock,
}

var talkerNames = [numTalkers]string{
	TalkerIndependentAISBaseStation:    "IndependentAISBaseStation",
	TalkerDependentAISBaseStation:      "DependentAISBaseStation",
	TalkerMobileAISStation:             "MobileAISStation",
	TalkerAISAidToNavigation:           "AISAidToNavigation",
	TalkerAISReceivingStation:          "AISReceivingStation",
	TalkerAISLimitedBaseStation:        "AISLimitedBaseStation",
	TalkerAISTransmittingStation:       "AISTransmittingStation",
	TalkerAISRepeaterStation:           "AISRepeaterStation",
	TalkerAISBaseStation:               "AISBaseStation",
	TalkerAISShoreStation:              "AISShoreStation",
	TalkerAutopilotGeneral:             "AutopilotGeneral",
	TalkerAutopilotMagnetic:            "AutopilotMagnetic",
	TalkerBridgeNavigationalWatchAlarm: "BridgeNavigationalWatchAlarm",
	TalkerBeiDou:                       "BeiDou",
	TalkerComputerProgrammedCalculator: "ComputerProgrammedCalculator",
	TalkerDigitalSelectiveCalling:      "DigitalSelectiveCalling",
	TalkerComputerMemoryData:           "ComputerMemoryData",
	TalkerCommunicationsSatellite:      "CommunicationsSatellite",
	TalkerRadioTelephoneMFHF:           "RadioTelephoneMFHF",
	TalkerRadioTelephoneVHF:            "RadioTelephoneVHF",
	TalkerScanningReceiver:             "ScanningReceiver",
	TalkerDecca:                        "Decca",
	TalkerDirectionFinder:              "DirectionFinder",
	TalkerSpeedLogWaterMagnetic:        "SpeedLogWaterMagnetic",
	TalkerDuplexRepeaterStation:        "DuplexRepeaterStation",
	TalkerECDIS:                        "ECDIS",
	TalkerEPIRB:                        "EPIRB",
	TalkerEngineRoomMonitoring:         "EngineRoomMonitoring",
	TalkerGalileo:                      "Galileo",
	TalkerNavIC:                        "NavIC",
	TalkerGLONASS:                      "GLONASS",
	TalkerGNSS:                         "GNSS",
	TalkerGPS:                          "GPS",
	TalkerQZSS:                         "QZSS",
	TalkerHeadingMagneticCompass:       "HeadingMagneticCompass",
	TalkerHeadingNorthSeekingGyro:      "HeadingNorthSeekingGyro",
	TalkerHeadingNonNorthSeekingGyro:   "HeadingNonNorthSeekingGyro",
	TalkerIntegratedInstrumentation:    "IntegratedInstrumentation",
	TalkerIntegratedNavigation:         "IntegratedNavigation",
	TalkerLoranA:                       "LoranA",
	TalkerLoranC:                       "LoranC",
	TalkerMicrowavePositioning:         "MicrowavePositioning",
	TalkerNavigationLightController:    "NavigationLightController",
	TalkerOmega:                        "Omega",
	TalkerDistressAlarmSystem:          "DistressAlarmSystem",
	TalkerRadar:                        "Radar",
	TalkerSounderDepth:                 "SounderDepth",
	TalkerElectronicPositioning:        "ElectronicPositioning",
	TalkerSounderScanning:              "SounderScanning",
	TalkerTurnRateIndicator:            "TurnRateIndicator",
	TalkerTransit:                      "Transit",
	TalkerUser0:                        "User0",
	TalkerUser1:                        "User1",
	TalkerUser2:                        "User2",
	TalkerUser3:                        "User3",
	TalkerUser4:                        "User4",
	TalkerUser5:                        "User5",
	TalkerUser6:                        "User6",
	TalkerUser7:                        "User7",
	TalkerUser8:                        "User8",
	TalkerUser9:                        "User9",
	TalkerMicroprocessorController:     "MicroprocessorController",
	TalkerVelocitySensorDoppler:        "VelocitySensorDoppler",
	TalkerSpeedLogWaterMechanical:      "SpeedLogWaterMechanical",
	TalkerWeatherInstruments:           "WeatherInstruments",
	TalkerTransducerTemperature:        "TransducerTemperature",
	TalkerTransducerDisplacement:       "TransducerDisplacement",
	TalkerTransducerFrequency:          "TransducerFrequency",
	TalkerTransducerLevel:              "TransducerLevel",
	TalkerTransducerPressure:           "TransducerPressure",
	TalkerTransducerFlowRate:           "TransducerFlowRate",
	TalkerTransducerTachometer:         "TransducerTachometer",
	TalkerTransducerVolume:             "TransducerVolume",
	TalkerTransducer:                   "Transducer",
	TalkerAtomicClock:                  "AtomicClock",
	TalkerChronometer:                  "Chronometer",
	TalkerQuartzClock:                  "QuartzClock",
	TalkerRadioUpdateClock:             "RadioUpdateClock",
}

func (t Talker) String() string {
	if t < numTalkers {
		return talkerNames[t]
	}
	return fmt.Sprintf("Talker(%d)", t)
}

func (t Talker) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// LookupTalker returns the talker for a two-letter code.
func LookupTalker(code string) (Talker, bool) {
	t, ok := talkerCodes[code]
	return t, ok
}
