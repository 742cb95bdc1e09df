package uds

import (
	"fmt"
)

// NRC is the negative response code in the third byte of a 0x7F response.
type NRC byte

// UDS Negative Response Code (NRC) constants (ISO 14229-1 Annex A)
const (
	NRCGeneralReject                             NRC = 0x10
	NRCServiceNotSupported                       NRC = 0x11
	NRCSubFunctionNotSupported                   NRC = 0x12
	NRCIncorrectMessageLengthOrInvalidFormat     NRC = 0x13
	NRCResponseTooLong                           NRC = 0x14
	NRCBusyRepeatRequest                         NRC = 0x21
	NRCConditionsNotCorrect                      NRC = 0x22
	NRCRequestSequenceError                      NRC = 0x24
	NRCNoResponseFromSubnetComponent             NRC = 0x25
	NRCFailurePreventsExecutionOfRequestedAction NRC = 0x26
	NRCRequestOutOfRange                         NRC = 0x31
	NRCSecurityAccessDenied                      NRC = 0x33
	NRCInvalidKey                                NRC = 0x35
	NRCExceededNumberOfAttempts                  NRC = 0x36
	NRCRequiredTimeDelayNotExpired               NRC = 0x37
	NRCUploadDownloadNotAccepted                 NRC = 0x70
	NRCTransferDataSuspended                     NRC = 0x71
	NRCGeneralProgrammingFailure                 NRC = 0x72
	NRCWrongBlockSequenceCounter                 NRC = 0x73
	NRCRequestCorrectlyReceivedResponsePending   NRC = 0x78
	NRCSubFunctionNotSupportedInActiveSession    NRC = 0x7E
	NRCServiceNotSupportedInActiveSession        NRC = 0x7F
	NRCVehicleSpeedTooHigh                       NRC = 0x81
	NRCRPMTooHigh                                NRC = 0x82
	NRCRPMTooLow                                 NRC = 0x83
	NRCEngineIsRunning                           NRC = 0x84
	NRCEngineIsNotRunning                        NRC = 0x85
	NRCEngineRunTimeTooLow                       NRC = 0x86
	NRCTemperatureTooHigh                        NRC = 0x87
	NRCTemperatureTooLow                         NRC = 0x88
	NRCThrottlePedalTooHigh                      NRC = 0x89
	NRCThrottlePedalTooLow                       NRC = 0x8A
	NRCTransmissionRangeNotInNeutral             NRC = 0x8B
	NRCTransmissionRangeNotInGear                NRC = 0x8C
	NRCBrakeSwitchNotClosed                      NRC = 0x8D
	NRCShifterLeverNotInPark                     NRC = 0x8F
	NRCTorqueConverterClutchLocked               NRC = 0x90
	NRCVoltageTooHigh                            NRC = 0x91
	NRCVoltageTooLow                             NRC = 0x92
)

// Map of NRC codes to their names.
var nrcNames = map[NRC]string{
	NRCGeneralReject:                             "General Reject",
	NRCServiceNotSupported:                       "Service Not Supported",
	NRCSubFunctionNotSupported:                   "SubFunction Not Supported",
	NRCIncorrectMessageLengthOrInvalidFormat:     "Incorrect Message Length or Invalid Format",
	NRCResponseTooLong:                           "Response Too Long",
	NRCBusyRepeatRequest:                         "Busy Repeat Request",
	NRCConditionsNotCorrect:                      "Conditions Not Correct",
	NRCRequestSequenceError:                      "Request Sequence Error",
	NRCNoResponseFromSubnetComponent:             "No Response From Subnet Component",
	NRCFailurePreventsExecutionOfRequestedAction: "Failure Prevents Execution of Requested Action",
	NRCRequestOutOfRange:                         "Request Out of Range",
	NRCSecurityAccessDenied:                      "Security Access Denied",
	NRCInvalidKey:                                "Invalid Key",
	NRCExceededNumberOfAttempts:                  "Exceeded Number of Attempts",
	NRCRequiredTimeDelayNotExpired:               "Required Time Delay Not Expired",
	NRCUploadDownloadNotAccepted:                 "Upload/Download Not Accepted",
	NRCTransferDataSuspended:                     "Transfer Data Suspended",
	NRCGeneralProgrammingFailure:                 "General Programming Failure",
	NRCWrongBlockSequenceCounter:                 "Wrong Block Sequence Counter",
	NRCRequestCorrectlyReceivedResponsePending:   "Request Correctly Received - Response Pending",
	NRCSubFunctionNotSupportedInActiveSession:    "SubFunction Not Supported in Active Session",
	NRCServiceNotSupportedInActiveSession:        "Service Not Supported in Active Session",
	NRCVehicleSpeedTooHigh:                       "Vehicle Speed Too High",
	NRCRPMTooHigh:                                "RPM Too High",
	NRCRPMTooLow:                                 "RPM Too Low",
	NRCEngineIsRunning:                           "Engine is Running",
	NRCEngineIsNotRunning:                        "Engine is Not Running",
	NRCEngineRunTimeTooLow:                       "Engine Run Time Too Low",
	NRCTemperatureTooHigh:                        "Temperature Too High",
	NRCTemperatureTooLow:                         "Temperature Too Low",
	NRCThrottlePedalTooHigh:                      "Throttle Pedal Too High",
	NRCThrottlePedalTooLow:                       "Throttle Pedal Too Low",
	NRCTransmissionRangeNotInNeutral:             "Transmission Range Not In Neutral",
	NRCTransmissionRangeNotInGear:                "Transmission Range Not In Gear",
	NRCBrakeSwitchNotClosed:                      "Brake Switch Not Closed",
	NRCShifterLeverNotInPark:                     "Shifter Lever Not In Park",
	NRCTorqueConverterClutchLocked:               "Torque Converter Clutch Locked",
	NRCVoltageTooHigh:                            "Voltage Too High",
	NRCVoltageTooLow:                             "Voltage Too Low",
}

func (n NRC) Label() string {
	if name, ok := nrcNames[n]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", byte(n))
}

// IsResponsePending reports whether the ECU asked the tester to keep waiting (0x78).
func (n NRC) IsResponsePending() bool {
	return n == NRCRequestCorrectlyReceivedResponsePending
}

func (m *Message) NRCLabel() string {
	if m.NRC == nil {
		return "N/A"
	}
	return m.NRC.Label()
}
