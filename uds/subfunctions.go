package uds

import (
	"fmt"

	"diagcodes/codes"
)

// Bit 7 of a UDS sub-function asks the ECU to suppress its positive response.
const SuppressPositiveResponseBit byte = 0x80

// UDS Subfunction constants for Diagnostic Session Control
const (
	SubfunctionDefaultSession                byte = 0x01
	SubfunctionProgrammingSession            byte = 0x02
	SubfunctionExtendedDiagnosticSession     byte = 0x03
	SubfunctionSafetySystemDiagnosticSession byte = 0x04
)

// UDS Subfunction constants for ECU Reset
const (
	SubfunctionHardReset     byte = 0x01
	SubfunctionKeyOffOnReset byte = 0x02
	SubfunctionSoftReset     byte = 0x03
)

// UDS Subfunction constants for Security Access
const (
	SubfunctionRequestSeed byte = 0x01
	SubfunctionSendKey     byte = 0x02
	// Odd values request a seed, the following even value sends the key for that level
)

// UDS Subfunction constants for Routine Control
const (
	SubfunctionStartRoutine          byte = 0x01
	SubfunctionStopRoutine           byte = 0x02
	SubfunctionRequestRoutineResults byte = 0x03
)

// UDS Subfunction constants for Communication Control
const (
	SubfunctionEnableRxAndTx        byte = 0x00
	SubfunctionEnableRxAndDisableTx byte = 0x01
	SubfunctionDisableRxAndEnableTx byte = 0x02
	SubfunctionDisableRxAndTx       byte = 0x03
)

// UDS Subfunction constants for Control DTC Setting
const (
	SubfunctionDTCSettingOn  byte = 0x01
	SubfunctionDTCSettingOff byte = 0x02
)

// UDS Subfunction constants for Tester Present
const (
	SubfunctionZeroSubfunction byte = 0x00
)

// GMLAN Subfunction constants for Programming Mode ($A5)
const (
	SubfunctionRequestProgrammingMode          byte = 0x01
	SubfunctionRequestProgrammingModeHighSpeed byte = 0x02
	SubfunctionEnableProgrammingMode           byte = 0x03
)

// Map of UDS subfunctions (for specific service IDs) to their names.
var subfunctionNames = map[codes.ServiceCode]map[byte]string{
	codes.ServiceDiagnosticSessionControl: {
		SubfunctionDefaultSession:                "Default Session",
		SubfunctionProgrammingSession:            "Programming Session",
		SubfunctionExtendedDiagnosticSession:     "Extended Diagnostic Session",
		SubfunctionSafetySystemDiagnosticSession: "Safety System Diagnostic Session",
	},
	codes.ServiceECUReset: {
		SubfunctionHardReset:     "Hard Reset",
		SubfunctionKeyOffOnReset: "Key Off On Reset",
		SubfunctionSoftReset:     "Soft Reset",
	},
	codes.ServiceRoutineControl: {
		SubfunctionStartRoutine:          "Start Routine",
		SubfunctionStopRoutine:           "Stop Routine",
		SubfunctionRequestRoutineResults: "Request Routine Results",
	},
	codes.ServiceCommunicationControl: {
		SubfunctionEnableRxAndTx:        "Enable Rx and Tx",
		SubfunctionEnableRxAndDisableTx: "Enable Rx and Disable Tx",
		SubfunctionDisableRxAndEnableTx: "Disable Rx and Enable Tx",
		SubfunctionDisableRxAndTx:       "Disable Rx and Tx",
	},
	codes.ServiceControlDTCSetting: {
		SubfunctionDTCSettingOn:  "DTC Setting On",
		SubfunctionDTCSettingOff: "DTC Setting Off",
	},
	codes.ServiceTesterPresent: {
		SubfunctionZeroSubfunction: "Zero Sub-function",
	},
	codes.ServiceGMLANEnterProgrammingMode: {
		SubfunctionRequestProgrammingMode:          "Request Programming Mode",
		SubfunctionRequestProgrammingModeHighSpeed: "Request Programming Mode (High Speed)",
		SubfunctionEnableProgrammingMode:           "Enable Programming Mode",
	},
}

// SubfunctionLabel names the second byte: a PID for modes 0x01/0x02, a vehicle info code for
// mode 0x09, otherwise the UDS sub-function of the service.
func (m *Message) SubfunctionLabel() string {
	if m.Subfunction == nil {
		return "N/A"
	}
	sub := *m.Subfunction
	switch m.ServiceID {
	case codes.ServiceShowCurrent, codes.ServiceShowFreeze:
		return codes.PIDCode(sub).Label()
	case codes.ServiceVehicleInfo:
		return codes.VehicleInfoCode(sub).Label()
	case codes.ServiceSecurityAccess:
		return securityAccessLabel(sub &^ SuppressPositiveResponseBit)
	}
	if subMap, exists := subfunctionNames[m.ServiceID]; exists {
		if subName, found := subMap[sub&^SuppressPositiveResponseBit]; found {
			return subName
		}
	}
	return fmt.Sprintf("0x%02X", sub)
}

func securityAccessLabel(sub byte) string {
	if sub < SubfunctionRequestSeed || sub > 0x7E {
		return fmt.Sprintf("0x%02X", sub)
	}
	level := (sub + 1) / 2
	if sub%2 == 1 {
		return fmt.Sprintf("Request Seed (Level %d)", level)
	}
	return fmt.Sprintf("Send Key (Level %d)", level)
}
