package codes

import (
	"fmt"
)

// ServiceCode is the one byte service identifier (SID) at the start of a diagnostic request.
type ServiceCode byte

// OBD-II modes (SAE J1979)
const (
	ServiceShowCurrent    ServiceCode = 0x01
	ServiceShowFreeze     ServiceCode = 0x02
	ServiceShowStoredDTC  ServiceCode = 0x03
	ServiceClearDTC       ServiceCode = 0x04
	ServiceTestO2         ServiceCode = 0x05
	ServiceTestResults    ServiceCode = 0x06
	ServiceShowPendingDTC ServiceCode = 0x07
	ServiceControlDevices ServiceCode = 0x08
	ServiceVehicleInfo    ServiceCode = 0x09
	ServicePermanentDTC   ServiceCode = 0x0A
)

// UDS services (ISO 14229)
const (
	ServiceDiagnosticSessionControl       ServiceCode = 0x10
	ServiceECUReset                       ServiceCode = 0x11
	ServiceClearDiagnosticInformation     ServiceCode = 0x14
	ServiceReadDTCInformation             ServiceCode = 0x19
	ServiceReturnToNormal                 ServiceCode = 0x20
	ServiceReadDataByIdentifier           ServiceCode = 0x22
	ServiceReadMemoryByAddress            ServiceCode = 0x23
	ServiceReadScalingDataByIdentifier    ServiceCode = 0x24
	ServiceSecurityAccess                 ServiceCode = 0x27
	ServiceCommunicationControl           ServiceCode = 0x28
	ServiceReadDataByPeriodicIdentifier   ServiceCode = 0x2A
	ServiceDynamicallyDefineDataID        ServiceCode = 0x2C
	ServiceDefinePIDByAddress             ServiceCode = 0x2D
	ServiceWriteDataByIdentifier          ServiceCode = 0x2E
	ServiceInputOutputControlByIdentifier ServiceCode = 0x2F
	ServiceRoutineControl                 ServiceCode = 0x31
	ServiceRequestDownload                ServiceCode = 0x34
	ServiceRequestUpload                  ServiceCode = 0x35
	ServiceTransferData                   ServiceCode = 0x36
	ServiceRequestTransferExit            ServiceCode = 0x37
	ServiceRequestFileTransfer            ServiceCode = 0x38
	ServiceWriteMemoryByAddress           ServiceCode = 0x3D
	ServiceTesterPresent                  ServiceCode = 0x3E
	ServiceNegativeResponse               ServiceCode = 0x7F
	ServiceAccessTimingParameters         ServiceCode = 0x83
	ServiceSecuredDataTransmission        ServiceCode = 0x84
	ServiceControlDTCSetting              ServiceCode = 0x85
	ServiceResponseOnEvent                ServiceCode = 0x86
	ServiceLinkControl                    ServiceCode = 0x87
)

// GM LAN extensions (GMW3110)
const (
	ServiceGMLANReadFailureRecord     ServiceCode = 0x12
	ServiceGMLANReadDiagnosticID      ServiceCode = 0x1A
	ServiceGMLANWriteDID              ServiceCode = 0x3B
	ServiceGMLANReportProgrammedState ServiceCode = 0xA2
	ServiceGMLANEnterProgrammingMode  ServiceCode = 0xA5
	ServiceGMLANCheckCodes            ServiceCode = 0xA9
	ServiceGMLANReadDataByPacketID    ServiceCode = 0xAA
	ServiceGMLANDeviceControl         ServiceCode = 0xAE
)

var serviceCodeNames = map[ServiceCode]string{
	ServiceShowCurrent:    "OBDII_SHOW_CURRENT",
	ServiceShowFreeze:     "OBDII_SHOW_FREEZE",
	ServiceShowStoredDTC:  "OBDII_SHOW_STORED_DTC",
	ServiceClearDTC:       "OBDII_CLEAR_DTC",
	ServiceTestO2:         "OBDII_TEST_O2",
	ServiceTestResults:    "OBDII_TEST_RESULTS",
	ServiceShowPendingDTC: "OBDII_SHOW_PENDING_DTC",
	ServiceControlDevices: "OBDII_CONTROL_DEVICES",
	ServiceVehicleInfo:    "OBDII_VEHICLE_INFO",
	ServicePermanentDTC:   "OBDII_PERM_DTC",

	ServiceDiagnosticSessionControl:       "UDS_DIAG_CTRL",
	ServiceECUReset:                       "UDS_ECU_RESET",
	ServiceGMLANReadFailureRecord:         "UDS_GMLAN_READ_FAILURE_REC",
	ServiceClearDiagnosticInformation:     "UDS_CLEAR_DIAG",
	ServiceReadDTCInformation:             "UDS_READ_DTC",
	ServiceGMLANReadDiagnosticID:          "UDS_GMLAN_READ_DIAG_ID",
	ServiceReturnToNormal:                 "UDS_RETURN_TO_NORMAL",
	ServiceReadDataByIdentifier:           "UDS_READ_BY_ID",
	ServiceReadMemoryByAddress:            "UDS_READ_BY_ADDR",
	ServiceReadScalingDataByIdentifier:    "UDS_READ_SCALING_ID",
	ServiceSecurityAccess:                 "UDS_SECURITY_ACCESS",
	ServiceCommunicationControl:           "UDS_COMM_CTRL",
	ServiceReadDataByPeriodicIdentifier:   "UDS_READ_ID_PERIODIC",
	ServiceDynamicallyDefineDataID:        "UDS_DYNAMIC_DATA_DEF",
	ServiceDefinePIDByAddress:             "UDS_DEFINE_PID_BY_ADDR",
	ServiceWriteDataByIdentifier:          "UDS_WRITE_BY_ID",
	ServiceInputOutputControlByIdentifier: "UDS_IO_CTRL",
	ServiceRoutineControl:                 "UDS_ROUTINE_CTRL",
	ServiceRequestDownload:                "UDS_REQ_DOWNLOAD",
	ServiceRequestUpload:                  "UDS_REQ_UPLOAD",
	ServiceTransferData:                   "UDS_TRANSFER_DATA",
	ServiceRequestTransferExit:            "UDS_REQ_TRANS_EXIT",
	ServiceRequestFileTransfer:            "UDS_REQ_FILE_TRANS",
	ServiceGMLANWriteDID:                  "UDS_GMLAN_WRITE_DID",
	ServiceWriteMemoryByAddress:           "UDS_WRITE_BY_ADDR",
	ServiceTesterPresent:                  "UDS_TESTER_PRESENT",
	ServiceNegativeResponse:               "UDS_NEG_RESP",
	ServiceAccessTimingParameters:         "UDS_ACCESS_TIMING",
	ServiceSecuredDataTransmission:        "UDS_SECURED_DATA_TRANS",
	ServiceControlDTCSetting:              "UDS_CTRL_DTC_SETTINGS",
	ServiceResponseOnEvent:                "UDS_RESP_ON_EVENT",
	ServiceLinkControl:                    "UDS_RESP_LINK_CTRL",
	ServiceGMLANReportProgrammedState:     "UDS_GMLAN_REPORT_PROG_STATE",
	ServiceGMLANEnterProgrammingMode:      "UDS_GMLAN_ENTER_PROG_MODE",
	ServiceGMLANCheckCodes:                "UDS_GMLAN_CHECK_CODES",
	ServiceGMLANReadDataByPacketID:        "UDS_GMLAN_READ_DPID",
	ServiceGMLANDeviceControl:             "UDS_GMLAN_DEVICE_CTRL",
}

// Map of service IDs to their human readable names.
var serviceCodeLabels = map[ServiceCode]string{
	ServiceShowCurrent:    "Show Current Data",
	ServiceShowFreeze:     "Show Freeze Frame Data",
	ServiceShowStoredDTC:  "Show Stored DTCs",
	ServiceClearDTC:       "Clear DTCs",
	ServiceTestO2:         "Oxygen Sensor Test Results",
	ServiceTestResults:    "On-Board Monitoring Test Results",
	ServiceShowPendingDTC: "Show Pending DTCs",
	ServiceControlDevices: "Control On-Board System",
	ServiceVehicleInfo:    "Request Vehicle Information",
	ServicePermanentDTC:   "Permanent DTCs",

	ServiceDiagnosticSessionControl:       "Diagnostic Session Control",
	ServiceECUReset:                       "ECU Reset",
	ServiceGMLANReadFailureRecord:         "Read Failure Record Data",
	ServiceClearDiagnosticInformation:     "Clear Diagnostic Information",
	ServiceReadDTCInformation:             "Read DTC Information",
	ServiceGMLANReadDiagnosticID:          "Read Diagnostic Identifier",
	ServiceReturnToNormal:                 "Return To Normal Mode",
	ServiceReadDataByIdentifier:           "Read Data By Identifier",
	ServiceReadMemoryByAddress:            "Read Memory By Address",
	ServiceReadScalingDataByIdentifier:    "Read Scaling Data By Identifier",
	ServiceSecurityAccess:                 "Security Access",
	ServiceCommunicationControl:           "Communication Control",
	ServiceReadDataByPeriodicIdentifier:   "Read Data By Periodic Identifier",
	ServiceDynamicallyDefineDataID:        "Dynamically Define Data Identifier",
	ServiceDefinePIDByAddress:             "Define PID By Memory Address",
	ServiceWriteDataByIdentifier:          "Write Data By Identifier",
	ServiceInputOutputControlByIdentifier: "Input Output Control By Identifier",
	ServiceRoutineControl:                 "Routine Control",
	ServiceRequestDownload:                "Request Download",
	ServiceRequestUpload:                  "Request Upload",
	ServiceTransferData:                   "Transfer Data",
	ServiceRequestTransferExit:            "Request Transfer Exit",
	ServiceRequestFileTransfer:            "Request File Transfer",
	ServiceGMLANWriteDID:                  "Write Data By Identifier (GMLAN)",
	ServiceWriteMemoryByAddress:           "Write Memory By Address",
	ServiceTesterPresent:                  "Tester Present",
	ServiceNegativeResponse:               "Negative Response",
	ServiceAccessTimingParameters:         "Access Timing Parameters",
	ServiceSecuredDataTransmission:        "Secured Data Transmission",
	ServiceControlDTCSetting:              "Control DTC Setting",
	ServiceResponseOnEvent:                "Response On Event",
	ServiceLinkControl:                    "Link Control",
	ServiceGMLANReportProgrammedState:     "Report Programmed State",
	ServiceGMLANEnterProgrammingMode:      "Programming Mode",
	ServiceGMLANCheckCodes:                "Check Codes",
	ServiceGMLANReadDataByPacketID:        "Read Data By Packet Identifier",
	ServiceGMLANDeviceControl:             "Device Control",
}

var serviceCodesByName = invert(serviceCodeNames)

// ServiceCodeValue returns the service code for a symbolic name such as "UDS_SECURITY_ACCESS".
func ServiceCodeValue(name string) (ServiceCode, error) {
	if c, ok := serviceCodesByName[normalizeName(name)]; ok {
		return c, nil
	}
	return 0, &UnknownCodeError{Namespace: NamespaceService, Name: name}
}

// LookupServiceCode reports whether b is a catalogued service code.
func LookupServiceCode(b byte) (ServiceCode, bool) {
	c := ServiceCode(b)
	_, ok := serviceCodeNames[c]
	return c, ok
}

// NameForServiceCode never fails: unrecognised bytes map to Unknown.
func NameForServiceCode(b byte) string {
	if name, ok := serviceCodeNames[ServiceCode(b)]; ok {
		return name
	}
	return Unknown
}

// AllServiceCodes returns every catalogued service code in ascending order.
func AllServiceCodes() []ServiceCode {
	return sortedKeys(serviceCodeNames)
}

// IsKnown reports whether c is part of the catalogued set.
func (c ServiceCode) IsKnown() bool {
	_, ok := serviceCodeNames[c]
	return ok
}

func (c ServiceCode) String() string {
	if name, ok := serviceCodeNames[c]; ok {
		return name
	}
	return unknownString(byte(c))
}

func (c ServiceCode) Label() string {
	if label, ok := serviceCodeLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("0x%02X", byte(c))
}

// PositiveResponse returns the SID an ECU answers with when the request succeeds.
func (c ServiceCode) PositiveResponse() byte {
	return byte(c) + PositiveResponseOffset
}
