package codes

import (
	"fmt"
)

// PIDCode selects a live data channel for ServiceShowCurrent (mode 0x01) and
// ServiceShowFreeze (mode 0x02).
type PIDCode byte

// Standard PIDs (SAE J1979). 0x4F and 0x50 are not catalogued, see PendingPIDCodes for 0x54 onwards.
const (
	PIDSupported01To20           PIDCode = 0x00
	PIDMonitorStatusSinceCleared PIDCode = 0x01
	PIDFreezeDTC                 PIDCode = 0x02
	PIDFuelSystemStatus          PIDCode = 0x03
	PIDCalculatedEngineLoad      PIDCode = 0x04
	PIDEngineCoolantTemp         PIDCode = 0x05
	PIDShortFuelTrimBank1        PIDCode = 0x06
	PIDLongFuelTrimBank1         PIDCode = 0x07
	PIDShortFuelTrimBank2        PIDCode = 0x08
	PIDLongFuelTrimBank2         PIDCode = 0x09
	PIDFuelPressure              PIDCode = 0x0A
	PIDIntakeManifoldPressure    PIDCode = 0x0B
	PIDEngineRPM                 PIDCode = 0x0C
	PIDVehicleSpeed              PIDCode = 0x0D
	PIDTimingAdvance             PIDCode = 0x0E
	PIDIntakeAirTemp             PIDCode = 0x0F
	PIDMAFRate                   PIDCode = 0x10
	PIDThrottlePosition          PIDCode = 0x11
	PIDSecondaryAirStatus        PIDCode = 0x12
	PIDO2SensorsPresent          PIDCode = 0x13
	PIDO2SensorB1S1              PIDCode = 0x14
	PIDO2SensorB1S2              PIDCode = 0x15
	PIDO2SensorB1S3              PIDCode = 0x16
	PIDO2SensorB1S4              PIDCode = 0x17
	PIDO2SensorB2S1              PIDCode = 0x18
	PIDO2SensorB2S2              PIDCode = 0x19
	PIDO2SensorB2S3              PIDCode = 0x1A
	PIDO2SensorB2S4              PIDCode = 0x1B
	PIDOBDStandard               PIDCode = 0x1C
	PIDO2SensorsPresent4Banks    PIDCode = 0x1D
	PIDAuxInputStatus            PIDCode = 0x1E
	PIDRunTimeSinceStart         PIDCode = 0x1F
	PIDSupported21To40           PIDCode = 0x20
	PIDDistanceWithMIL           PIDCode = 0x21
	PIDFuelRailPressure          PIDCode = 0x22
	PIDFuelRailGaugePressure     PIDCode = 0x23
	PIDO2Sensor1Lambda           PIDCode = 0x24
	PIDO2Sensor2Lambda           PIDCode = 0x25
	PIDO2Sensor3Lambda           PIDCode = 0x26
	PIDO2Sensor4Lambda           PIDCode = 0x27
	PIDO2Sensor5Lambda           PIDCode = 0x28
	PIDO2Sensor6Lambda           PIDCode = 0x29
	PIDO2Sensor7Lambda           PIDCode = 0x2A
	PIDO2Sensor8Lambda           PIDCode = 0x2B
	PIDCommandedEGR              PIDCode = 0x2C
	PIDEGRError                  PIDCode = 0x2D
	PIDCommandedEvapPurge        PIDCode = 0x2E
	PIDFuelTankLevel             PIDCode = 0x2F
	PIDWarmUpsSinceCleared       PIDCode = 0x30
	PIDDistanceSinceCleared      PIDCode = 0x31
	PIDEvapVaporPressure         PIDCode = 0x32
	PIDBarometricPressure        PIDCode = 0x33
	PIDO2Sensor1Current          PIDCode = 0x34
	PIDO2Sensor2Current          PIDCode = 0x35
	PIDO2Sensor3Current          PIDCode = 0x36
	PIDO2Sensor4Current          PIDCode = 0x37
	PIDO2Sensor5Current          PIDCode = 0x38
	PIDO2Sensor6Current          PIDCode = 0x39
	PIDO2Sensor7Current          PIDCode = 0x3A
	PIDO2Sensor8Current          PIDCode = 0x3B
	PIDCatalystTempB1S1          PIDCode = 0x3C
	PIDCatalystTempB1S2          PIDCode = 0x3D
	PIDCatalystTempB2S1          PIDCode = 0x3E
	PIDCatalystTempB2S2          PIDCode = 0x3F
	PIDSupported41To60           PIDCode = 0x40
	PIDMonitorStatusThisCycle    PIDCode = 0x41
	PIDControlModuleVoltage      PIDCode = 0x42
	PIDAbsoluteLoad              PIDCode = 0x43
	PIDCommandedEquivalenceRatio PIDCode = 0x44
	PIDRelativeThrottlePosition  PIDCode = 0x45
	PIDAmbientAirTemp            PIDCode = 0x46
	PIDAbsoluteThrottlePositionB PIDCode = 0x47
	PIDAbsoluteThrottlePositionC PIDCode = 0x48
	PIDAcceleratorPedalPositionD PIDCode = 0x49
	PIDAcceleratorPedalPositionE PIDCode = 0x4A
	PIDAcceleratorPedalPositionF PIDCode = 0x4B
	PIDCommandedThrottleActuator PIDCode = 0x4C
	PIDTimeRunWithMIL            PIDCode = 0x4D
	PIDTimeSinceCleared          PIDCode = 0x4E
	PIDFuelType                  PIDCode = 0x51
	PIDEthanolFuelPercent        PIDCode = 0x52
	PIDAbsoluteEvapVaporPressure PIDCode = 0x53
)

var pidCodeNames = map[PIDCode]string{
	PIDSupported01To20:           "PID_SUPPORTED1",
	PIDMonitorStatusSinceCleared: "PID_MON_STATUS_SINCE_CLEARED",
	PIDFreezeDTC:                 "PID_FREEZE_DTC",
	PIDFuelSystemStatus:          "PID_FUEL_SYS_STATUS",
	PIDCalculatedEngineLoad:      "PID_CALC_ENGINE_LOAD",
	PIDEngineCoolantTemp:         "PID_ENGINE_COOLANT_TEMP",
	PIDShortFuelTrimBank1:        "PID_SHORT_FUEL_TRIM1",
	PIDLongFuelTrimBank1:         "PID_LONG_FUEL_TRIM1",
	PIDShortFuelTrimBank2:        "PID_SHORT_FUEL_TRIM2",
	PIDLongFuelTrimBank2:         "PID_LONG_FUEL_TRIM2",
	PIDFuelPressure:              "PID_FUEL_PRESSURE",
	PIDIntakeManifoldPressure:    "PID_INTAKE_MAP",
	PIDEngineRPM:                 "PID_ENGINE_RPM",
	PIDVehicleSpeed:              "PID_VEHICLE_SPEED",
	PIDTimingAdvance:             "PID_TIMING_ADV",
	PIDIntakeAirTemp:             "PID_INTAKE_AIR_TEMP",
	PIDMAFRate:                   "PID_MAF_RATE",
	PIDThrottlePosition:          "PID_THROTTLE_POS",
	PIDSecondaryAirStatus:        "PID_SEC_AIR_STATUS",
	PIDO2SensorsPresent:          "PID_O2_SENSORS",
	PIDO2SensorB1S1:              "PID_O2SENSOR_B1S1",
	PIDO2SensorB1S2:              "PID_O2SENSOR_B1S2",
	PIDO2SensorB1S3:              "PID_O2SENSOR_B1S3",
	PIDO2SensorB1S4:              "PID_O2SENSOR_B1S4",
	PIDO2SensorB2S1:              "PID_O2SENSOR_B2S1",
	PIDO2SensorB2S2:              "PID_O2SENSOR_B2S2",
	PIDO2SensorB2S3:              "PID_O2SENSOR_B2S3",
	PIDO2SensorB2S4:              "PID_O2SENSOR_B2S4",
	PIDOBDStandard:               "PID_ODB2_VER",
	PIDO2SensorsPresent4Banks:    "PID_O2SENSORS_BITFIELD",
	PIDAuxInputStatus:            "PID_AUX_INPUT",
	PIDRunTimeSinceStart:         "PID_TIME_SINCE_START",
	PIDSupported21To40:           "PID_SUPPORTED2",
	PIDDistanceWithMIL:           "PID_MIL_DISTANCE",
	PIDFuelRailPressure:          "PID_FUEL_RAIL_PRESSURE",
	PIDFuelRailGaugePressure:     "PID_FUEL_RAIL_DIESEL",
	PIDO2Sensor1Lambda:           "PID_O2S1_LAMDBA",
	PIDO2Sensor2Lambda:           "PID_O2S2_LAMDBA",
	PIDO2Sensor3Lambda:           "PID_O2S3_LAMDBA",
	PIDO2Sensor4Lambda:           "PID_O2S4_LAMDBA",
	PIDO2Sensor5Lambda:           "PID_O2S5_LAMDBA",
	PIDO2Sensor6Lambda:           "PID_O2S6_LAMDBA",
	PIDO2Sensor7Lambda:           "PID_O2S7_LAMDBA",
	PIDO2Sensor8Lambda:           "PID_O2S8_LAMDBA",
	PIDCommandedEGR:              "PID_CMD_EGR",
	PIDEGRError:                  "PID_EGR_ERR",
	PIDCommandedEvapPurge:        "PID_CMD_EVAP",
	PIDFuelTankLevel:             "PID_FUEL_LEVEL",
	PIDWarmUpsSinceCleared:       "PID_WARMUPS_SINCE_CLEAR",
	PIDDistanceSinceCleared:      "PID_DISTANCE_SINCE_CLEAR",
	PIDEvapVaporPressure:         "PID_EVAP_PRESSURE",
	PIDBarometricPressure:        "PID_ATMOS_PRESSURE",
	PIDO2Sensor1Current:          "PID_O2S1_CURRENT",
	PIDO2Sensor2Current:          "PID_O2S2_CURRENT",
	PIDO2Sensor3Current:          "PID_O2S3_CURRENT",
	PIDO2Sensor4Current:          "PID_O2S4_CURRENT",
	PIDO2Sensor5Current:          "PID_O2S5_CURRENT",
	PIDO2Sensor6Current:          "PID_O2S6_CURRENT",
	PIDO2Sensor7Current:          "PID_O2S7_CURRENT",
	PIDO2Sensor8Current:          "PID_O2S8_CURRENT",
	PIDCatalystTempB1S1:          "PID_CAT_TEMP_B1S1",
	PIDCatalystTempB1S2:          "PID_CAT_TEMP_B1S2",
	PIDCatalystTempB2S1:          "PID_CAT_TEMP_B2S1",
	PIDCatalystTempB2S2:          "PID_CAT_TEMP_B2S2",
	PIDSupported41To60:           "PID_SUPPORTED3",
	PIDMonitorStatusThisCycle:    "PID_MONITOR_STATUS",
	PIDControlModuleVoltage:      "PID_CTRL_VOLTS",
	PIDAbsoluteLoad:              "PID_ABS_LOAD",
	PIDCommandedEquivalenceRatio: "PID_CMD_EQUIV",
	PIDRelativeThrottlePosition:  "PID_REL_THROTTLE",
	PIDAmbientAirTemp:            "PID_AMB_TEMP",
	PIDAbsoluteThrottlePositionB: "PID_ABS_THROTTLE_B",
	PIDAbsoluteThrottlePositionC: "PID_ABS_THROTTLE_C",
	PIDAcceleratorPedalPositionD: "PID_ABS_THROTTLE_D",
	PIDAcceleratorPedalPositionE: "PID_ABS_THROTTLE_E",
	PIDAcceleratorPedalPositionF: "PID_ABS_THROTTLE_F",
	PIDCommandedThrottleActuator: "PID_CMD_THROTTLE_ACTUATOR",
	PIDTimeRunWithMIL:            "PID_TIME_RUN_MIL",
	PIDTimeSinceCleared:          "PID_TIME_SINCE_DTC_CLEAR",
	PIDFuelType:                  "PID_FUEL_TYPE",
	PIDEthanolFuelPercent:        "PID_ETHANOL_FUEL_PERC",
	PIDAbsoluteEvapVaporPressure: "PID_ABS_EVAP_PRESS",
}

var pidCodeLabels = map[PIDCode]string{
	PIDSupported01To20:           "PIDs Supported [01 - 20]",
	PIDMonitorStatusSinceCleared: "Monitor Status Since DTCs Cleared",
	PIDFreezeDTC:                 "DTC That Caused Freeze Frame",
	PIDFuelSystemStatus:          "Fuel System Status",
	PIDCalculatedEngineLoad:      "Calculated Engine Load",
	PIDEngineCoolantTemp:         "Engine Coolant Temperature",
	PIDShortFuelTrimBank1:        "Short Term Fuel Trim (Bank 1)",
	PIDLongFuelTrimBank1:         "Long Term Fuel Trim (Bank 1)",
	PIDShortFuelTrimBank2:        "Short Term Fuel Trim (Bank 2)",
	PIDLongFuelTrimBank2:         "Long Term Fuel Trim (Bank 2)",
	PIDFuelPressure:              "Fuel Pressure",
	PIDIntakeManifoldPressure:    "Intake Manifold Absolute Pressure",
	PIDEngineRPM:                 "Engine RPM",
	PIDVehicleSpeed:              "Vehicle Speed",
	PIDTimingAdvance:             "Timing Advance",
	PIDIntakeAirTemp:             "Intake Air Temperature",
	PIDMAFRate:                   "Mass Air Flow Rate",
	PIDThrottlePosition:          "Throttle Position",
	PIDSecondaryAirStatus:        "Commanded Secondary Air Status",
	PIDO2SensorsPresent:          "Oxygen Sensors Present (2 Banks)",
	PIDO2SensorB1S1:              "Oxygen Sensor 1 (Bank 1)",
	PIDO2SensorB1S2:              "Oxygen Sensor 2 (Bank 1)",
	PIDO2SensorB1S3:              "Oxygen Sensor 3 (Bank 1)",
	PIDO2SensorB1S4:              "Oxygen Sensor 4 (Bank 1)",
	PIDO2SensorB2S1:              "Oxygen Sensor 1 (Bank 2)",
	PIDO2SensorB2S2:              "Oxygen Sensor 2 (Bank 2)",
	PIDO2SensorB2S3:              "Oxygen Sensor 3 (Bank 2)",
	PIDO2SensorB2S4:              "Oxygen Sensor 4 (Bank 2)",
	PIDOBDStandard:               "OBD Standards This Vehicle Conforms To",
	PIDO2SensorsPresent4Banks:    "Oxygen Sensors Present (4 Banks)",
	PIDAuxInputStatus:            "Auxiliary Input Status",
	PIDRunTimeSinceStart:         "Run Time Since Engine Start",
	PIDSupported21To40:           "PIDs Supported [21 - 40]",
	PIDDistanceWithMIL:           "Distance Traveled With MIL On",
	PIDFuelRailPressure:          "Fuel Rail Pressure (Relative To Manifold Vacuum)",
	PIDFuelRailGaugePressure:     "Fuel Rail Gauge Pressure (Diesel, Direct Injection)",
	PIDO2Sensor1Lambda:           "Oxygen Sensor 1 Equivalence Ratio (Voltage)",
	PIDO2Sensor2Lambda:           "Oxygen Sensor 2 Equivalence Ratio (Voltage)",
	PIDO2Sensor3Lambda:           "Oxygen Sensor 3 Equivalence Ratio (Voltage)",
	PIDO2Sensor4Lambda:           "Oxygen Sensor 4 Equivalence Ratio (Voltage)",
	PIDO2Sensor5Lambda:           "Oxygen Sensor 5 Equivalence Ratio (Voltage)",
	PIDO2Sensor6Lambda:           "Oxygen Sensor 6 Equivalence Ratio (Voltage)",
	PIDO2Sensor7Lambda:           "Oxygen Sensor 7 Equivalence Ratio (Voltage)",
	PIDO2Sensor8Lambda:           "Oxygen Sensor 8 Equivalence Ratio (Voltage)",
	PIDCommandedEGR:              "Commanded EGR",
	PIDEGRError:                  "EGR Error",
	PIDCommandedEvapPurge:        "Commanded Evaporative Purge",
	PIDFuelTankLevel:             "Fuel Tank Level Input",
	PIDWarmUpsSinceCleared:       "Warm-ups Since Codes Cleared",
	PIDDistanceSinceCleared:      "Distance Traveled Since Codes Cleared",
	PIDEvapVaporPressure:         "Evap. System Vapor Pressure",
	PIDBarometricPressure:        "Absolute Barometric Pressure",
	PIDO2Sensor1Current:          "Oxygen Sensor 1 Equivalence Ratio (Current)",
	PIDO2Sensor2Current:          "Oxygen Sensor 2 Equivalence Ratio (Current)",
	PIDO2Sensor3Current:          "Oxygen Sensor 3 Equivalence Ratio (Current)",
	PIDO2Sensor4Current:          "Oxygen Sensor 4 Equivalence Ratio (Current)",
	PIDO2Sensor5Current:          "Oxygen Sensor 5 Equivalence Ratio (Current)",
	PIDO2Sensor6Current:          "Oxygen Sensor 6 Equivalence Ratio (Current)",
	PIDO2Sensor7Current:          "Oxygen Sensor 7 Equivalence Ratio (Current)",
	PIDO2Sensor8Current:          "Oxygen Sensor 8 Equivalence Ratio (Current)",
	PIDCatalystTempB1S1:          "Catalyst Temperature (Bank 1, Sensor 1)",
	PIDCatalystTempB1S2:          "Catalyst Temperature (Bank 1, Sensor 2)",
	PIDCatalystTempB2S1:          "Catalyst Temperature (Bank 2, Sensor 1)",
	PIDCatalystTempB2S2:          "Catalyst Temperature (Bank 2, Sensor 2)",
	PIDSupported41To60:           "PIDs Supported [41 - 60]",
	PIDMonitorStatusThisCycle:    "Monitor Status This Drive Cycle",
	PIDControlModuleVoltage:      "Control Module Voltage",
	PIDAbsoluteLoad:              "Absolute Load Value",
	PIDCommandedEquivalenceRatio: "Commanded Air-Fuel Equivalence Ratio",
	PIDRelativeThrottlePosition:  "Relative Throttle Position",
	PIDAmbientAirTemp:            "Ambient Air Temperature",
	PIDAbsoluteThrottlePositionB: "Absolute Throttle Position B",
	PIDAbsoluteThrottlePositionC: "Absolute Throttle Position C",
	PIDAcceleratorPedalPositionD: "Accelerator Pedal Position D",
	PIDAcceleratorPedalPositionE: "Accelerator Pedal Position E",
	PIDAcceleratorPedalPositionF: "Accelerator Pedal Position F",
	PIDCommandedThrottleActuator: "Commanded Throttle Actuator",
	PIDTimeRunWithMIL:            "Time Run With MIL On",
	PIDTimeSinceCleared:          "Time Since Trouble Codes Cleared",
	PIDFuelType:                  "Fuel Type",
	PIDEthanolFuelPercent:        "Ethanol Fuel Percentage",
	PIDAbsoluteEvapVaporPressure: "Absolute Evap System Vapor Pressure",
}

var pidCodesByName = invert(pidCodeNames)

// PIDCodeValue returns the PID for a symbolic name such as "PID_ENGINE_RPM".
func PIDCodeValue(name string) (PIDCode, error) {
	if c, ok := pidCodesByName[normalizeName(name)]; ok {
		return c, nil
	}
	return 0, &UnknownCodeError{Namespace: NamespacePID, Name: name}
}

func LookupPIDCode(b byte) (PIDCode, bool) {
	c := PIDCode(b)
	_, ok := pidCodeNames[c]
	return c, ok
}

// NameForPIDCode returns Unknown for backlog PIDs too: they have a description but no symbol.
func NameForPIDCode(b byte) string {
	if name, ok := pidCodeNames[PIDCode(b)]; ok {
		return name
	}
	return Unknown
}

func AllPIDCodes() []PIDCode {
	return sortedKeys(pidCodeNames)
}

func (c PIDCode) IsKnown() bool {
	_, ok := pidCodeNames[c]
	return ok
}

// IsSupportedRange reports whether c is one of the "PIDs supported" bitmap requests (0x00, 0x20, ... 0xE0).
func (c PIDCode) IsSupportedRange() bool {
	return c%0x20 == 0
}

func (c PIDCode) String() string {
	if name, ok := pidCodeNames[c]; ok {
		return name
	}
	return unknownString(byte(c))
}

func (c PIDCode) Label() string {
	if label, ok := pidCodeLabels[c]; ok {
		return label
	}
	if desc, ok := pendingPIDs[byte(c)]; ok {
		return desc
	}
	return fmt.Sprintf("0x%02X", byte(c))
}
