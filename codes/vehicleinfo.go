package codes

import (
	"fmt"
)

// VehicleInfoCode selects the item requested with ServiceVehicleInfo (mode 0x09).
type VehicleInfoCode byte

const (
	VehicleInfoSupportedPIDs          VehicleInfoCode = 0x00
	VehicleInfoVINMessageCount        VehicleInfoCode = 0x01
	VehicleInfoVIN                    VehicleInfoCode = 0x02
	VehicleInfoCalibrationCount       VehicleInfoCode = 0x03
	VehicleInfoCalibrationID          VehicleInfoCode = 0x04
	VehicleInfoCalibrationVerifyCount VehicleInfoCode = 0x05
	VehicleInfoCalibrationVerify      VehicleInfoCode = 0x06
	VehicleInfoInUsePerfTrackCount    VehicleInfoCode = 0x07
	VehicleInfoInUsePerfTrackSpark    VehicleInfoCode = 0x08
	VehicleInfoECUNameCount           VehicleInfoCode = 0x09
	VehicleInfoECUName                VehicleInfoCode = 0x0A
	VehicleInfoInUsePerfTrackCompress VehicleInfoCode = 0x0B
)

var vehicleInfoCodeNames = map[VehicleInfoCode]string{
	VehicleInfoSupportedPIDs:          "VI_SUPPORTED_PIDS",
	VehicleInfoVINMessageCount:        "VI_VIN_MSG_COUNT",
	VehicleInfoVIN:                    "VI_VIN",
	VehicleInfoCalibrationCount:       "VI_CALIB_COUNT",
	VehicleInfoCalibrationID:          "VI_CALIB_ID",
	VehicleInfoCalibrationVerifyCount: "VI_CALIB_VERIFY_COUNT",
	VehicleInfoCalibrationVerify:      "VI_CALIB_VERIFY",
	VehicleInfoInUsePerfTrackCount:    "VI_INUSE_PERF_TRACK_COUNT",
	VehicleInfoInUsePerfTrackSpark:    "VI_INUSE_PERF_TRACK_GAS",
	VehicleInfoECUNameCount:           "VI_ECU_NAME_COUNT",
	VehicleInfoECUName:                "VI_ECU_NAME",
	VehicleInfoInUsePerfTrackCompress: "VI_INUSE_PERF_TRACK_DIESEL",
}

var vehicleInfoCodeLabels = map[VehicleInfoCode]string{
	VehicleInfoSupportedPIDs:          "Supported Vehicle Info Types [01 - 20]",
	VehicleInfoVINMessageCount:        "VIN Message Count",
	VehicleInfoVIN:                    "Vehicle Identification Number",
	VehicleInfoCalibrationCount:       "Calibration ID Message Count",
	VehicleInfoCalibrationID:          "Calibration ID",
	VehicleInfoCalibrationVerifyCount: "Calibration Verification Number Message Count",
	VehicleInfoCalibrationVerify:      "Calibration Verification Numbers",
	VehicleInfoInUsePerfTrackCount:    "In-use Performance Tracking Message Count",
	VehicleInfoInUsePerfTrackSpark:    "In-use Performance Tracking (Spark Ignition)",
	VehicleInfoECUNameCount:           "ECU Name Message Count",
	VehicleInfoECUName:                "ECU Name",
	VehicleInfoInUsePerfTrackCompress: "In-use Performance Tracking (Compression Ignition)",
}

var vehicleInfoCodesByName = invert(vehicleInfoCodeNames)

// VehicleInfoCodeValue returns the vehicle info code for a symbolic name such as "VI_VIN".
func VehicleInfoCodeValue(name string) (VehicleInfoCode, error) {
	if c, ok := vehicleInfoCodesByName[normalizeName(name)]; ok {
		return c, nil
	}
	return 0, &UnknownCodeError{Namespace: NamespaceVehicleInfo, Name: name}
}

func LookupVehicleInfoCode(b byte) (VehicleInfoCode, bool) {
	c := VehicleInfoCode(b)
	_, ok := vehicleInfoCodeNames[c]
	return c, ok
}

func NameForVehicleInfoCode(b byte) string {
	if name, ok := vehicleInfoCodeNames[VehicleInfoCode(b)]; ok {
		return name
	}
	return Unknown
}

func AllVehicleInfoCodes() []VehicleInfoCode {
	return sortedKeys(vehicleInfoCodeNames)
}

func (c VehicleInfoCode) IsKnown() bool {
	_, ok := vehicleInfoCodeNames[c]
	return ok
}

func (c VehicleInfoCode) String() string {
	if name, ok := vehicleInfoCodeNames[c]; ok {
		return name
	}
	return unknownString(byte(c))
}

func (c VehicleInfoCode) Label() string {
	if label, ok := vehicleInfoCodeLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("0x%02X", byte(c))
}
