package codes

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireValues(t *testing.T) {
	assert.Equal(t, byte(0x27), byte(ServiceSecurityAccess))
	assert.Equal(t, byte(0x0D), byte(PIDVehicleSpeed))
	assert.Equal(t, byte(0x02), byte(VehicleInfoVIN))
	assert.Equal(t, byte(0x0C), byte(PIDEngineRPM))
	assert.Equal(t, byte(0xAE), byte(ServiceGMLANDeviceControl))
	assert.Equal(t, byte(0x53), byte(PIDAbsoluteEvapVaporPressure))
}

var serviceValueTests = []struct {
	name string
	want byte
}{
	{"OBDII_SHOW_CURRENT", 0x01},
	{"OBDII_SHOW_FREEZE", 0x02},
	{"OBDII_SHOW_STORED_DTC", 0x03},
	{"OBDII_CLEAR_DTC", 0x04},
	{"OBDII_TEST_O2", 0x05},
	{"OBDII_TEST_RESULTS", 0x06},
	{"OBDII_SHOW_PENDING_DTC", 0x07},
	{"OBDII_CONTROL_DEVICES", 0x08},
	{"OBDII_VEHICLE_INFO", 0x09},
	{"OBDII_PERM_DTC", 0x0A},
	{"UDS_DIAG_CTRL", 0x10},
	{"UDS_ECU_RESET", 0x11},
	{"UDS_GMLAN_READ_FAILURE_REC", 0x12},
	{"UDS_CLEAR_DIAG", 0x14},
	{"UDS_READ_DTC", 0x19},
	{"UDS_GMLAN_READ_DIAG_ID", 0x1A},
	{"UDS_RETURN_TO_NORMAL", 0x20},
	{"UDS_READ_BY_ID", 0x22},
	{"UDS_READ_BY_ADDR", 0x23},
	{"UDS_READ_SCALING_ID", 0x24},
	{"UDS_SECURITY_ACCESS", 0x27},
	{"UDS_COMM_CTRL", 0x28},
	{"UDS_READ_ID_PERIODIC", 0x2A},
	{"UDS_DYNAMIC_DATA_DEF", 0x2C},
	{"UDS_DEFINE_PID_BY_ADDR", 0x2D},
	{"UDS_WRITE_BY_ID", 0x2E},
	{"UDS_IO_CTRL", 0x2F},
	{"UDS_ROUTINE_CTRL", 0x31},
	{"UDS_REQ_DOWNLOAD", 0x34},
	{"UDS_REQ_UPLOAD", 0x35},
	{"UDS_TRANSFER_DATA", 0x36},
	{"UDS_REQ_TRANS_EXIT", 0x37},
	{"UDS_REQ_FILE_TRANS", 0x38},
	{"UDS_GMLAN_WRITE_DID", 0x3B},
	{"UDS_WRITE_BY_ADDR", 0x3D},
	{"UDS_TESTER_PRESENT", 0x3E},
	{"UDS_NEG_RESP", 0x7F},
	{"UDS_ACCESS_TIMING", 0x83},
	{"UDS_SECURED_DATA_TRANS", 0x84},
	{"UDS_CTRL_DTC_SETTINGS", 0x85},
	{"UDS_RESP_ON_EVENT", 0x86},
	{"UDS_RESP_LINK_CTRL", 0x87},
	{"UDS_GMLAN_REPORT_PROG_STATE", 0xA2},
	{"UDS_GMLAN_ENTER_PROG_MODE", 0xA5},
	{"UDS_GMLAN_CHECK_CODES", 0xA9},
	{"UDS_GMLAN_READ_DPID", 0xAA},
	{"UDS_GMLAN_DEVICE_CTRL", 0xAE},
}

func TestServiceCodeValue(t *testing.T) {
	for _, tt := range serviceValueTests {
		c, err := ServiceCodeValue(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, byte(c), tt.name)
	}
	assert.Len(t, AllServiceCodes(), len(serviceValueTests))
}

func TestVehicleInfoCodeValue(t *testing.T) {
	names := []string{
		"VI_SUPPORTED_PIDS", "VI_VIN_MSG_COUNT", "VI_VIN", "VI_CALIB_COUNT", "VI_CALIB_ID",
		"VI_CALIB_VERIFY_COUNT", "VI_CALIB_VERIFY", "VI_INUSE_PERF_TRACK_COUNT",
		"VI_INUSE_PERF_TRACK_GAS", "VI_ECU_NAME_COUNT", "VI_ECU_NAME", "VI_INUSE_PERF_TRACK_DIESEL",
	}
	for i, name := range names {
		c, err := VehicleInfoCodeValue(name)
		require.NoError(t, err, name)
		assert.Equal(t, byte(i), byte(c), name)
	}
	assert.Len(t, AllVehicleInfoCodes(), len(names))
}

var pidValueTests = []struct {
	name string
	want byte
}{
	{"PID_SUPPORTED1", 0x00},
	{"PID_MON_STATUS_SINCE_CLEARED", 0x01},
	{"PID_FREEZE_DTC", 0x02},
	{"PID_FUEL_SYS_STATUS", 0x03},
	{"PID_CALC_ENGINE_LOAD", 0x04},
	{"PID_ENGINE_COOLANT_TEMP", 0x05},
	{"PID_SHORT_FUEL_TRIM1", 0x06},
	{"PID_LONG_FUEL_TRIM1", 0x07},
	{"PID_SHORT_FUEL_TRIM2", 0x08},
	{"PID_LONG_FUEL_TRIM2", 0x09},
	{"PID_FUEL_PRESSURE", 0x0A},
	{"PID_INTAKE_MAP", 0x0B},
	{"PID_ENGINE_RPM", 0x0C},
	{"PID_VEHICLE_SPEED", 0x0D},
	{"PID_TIMING_ADV", 0x0E},
	{"PID_INTAKE_AIR_TEMP", 0x0F},
	{"PID_MAF_RATE", 0x10},
	{"PID_THROTTLE_POS", 0x11},
	{"PID_SEC_AIR_STATUS", 0x12},
	{"PID_O2_SENSORS", 0x13},
	{"PID_O2SENSOR_B1S1", 0x14},
	{"PID_O2SENSOR_B1S2", 0x15},
	{"PID_O2SENSOR_B1S3", 0x16},
	{"PID_O2SENSOR_B1S4", 0x17},
	{"PID_O2SENSOR_B2S1", 0x18},
	{"PID_O2SENSOR_B2S2", 0x19},
	{"PID_O2SENSOR_B2S3", 0x1A},
	{"PID_O2SENSOR_B2S4", 0x1B},
	{"PID_ODB2_VER", 0x1C},
	{"PID_O2SENSORS_BITFIELD", 0x1D},
	{"PID_AUX_INPUT", 0x1E},
	{"PID_TIME_SINCE_START", 0x1F},
	{"PID_SUPPORTED2", 0x20},
	{"PID_MIL_DISTANCE", 0x21},
	{"PID_FUEL_RAIL_PRESSURE", 0x22},
	{"PID_FUEL_RAIL_DIESEL", 0x23},
	{"PID_O2S1_LAMDBA", 0x24},
	{"PID_O2S2_LAMDBA", 0x25},
	{"PID_O2S3_LAMDBA", 0x26},
	{"PID_O2S4_LAMDBA", 0x27},
	{"PID_O2S5_LAMDBA", 0x28},
	{"PID_O2S6_LAMDBA", 0x29},
	{"PID_O2S7_LAMDBA", 0x2A},
	{"PID_O2S8_LAMDBA", 0x2B},
	{"PID_CMD_EGR", 0x2C},
	{"PID_EGR_ERR", 0x2D},
	{"PID_CMD_EVAP", 0x2E},
	{"PID_FUEL_LEVEL", 0x2F},
	{"PID_WARMUPS_SINCE_CLEAR", 0x30},
	{"PID_DISTANCE_SINCE_CLEAR", 0x31},
	{"PID_EVAP_PRESSURE", 0x32},
	{"PID_ATMOS_PRESSURE", 0x33},
	{"PID_O2S1_CURRENT", 0x34},
	{"PID_O2S2_CURRENT", 0x35},
	{"PID_O2S3_CURRENT", 0x36},
	{"PID_O2S4_CURRENT", 0x37},
	{"PID_O2S5_CURRENT", 0x38},
	{"PID_O2S6_CURRENT", 0x39},
	{"PID_O2S7_CURRENT", 0x3A},
	{"PID_O2S8_CURRENT", 0x3B},
	{"PID_CAT_TEMP_B1S1", 0x3C},
	{"PID_CAT_TEMP_B1S2", 0x3D},
	{"PID_CAT_TEMP_B2S1", 0x3E},
	{"PID_CAT_TEMP_B2S2", 0x3F},
	{"PID_SUPPORTED3", 0x40},
	{"PID_MONITOR_STATUS", 0x41},
	{"PID_CTRL_VOLTS", 0x42},
	{"PID_ABS_LOAD", 0x43},
	{"PID_CMD_EQUIV", 0x44},
	{"PID_REL_THROTTLE", 0x45},
	{"PID_AMB_TEMP", 0x46},
	{"PID_ABS_THROTTLE_B", 0x47},
	{"PID_ABS_THROTTLE_C", 0x48},
	{"PID_ABS_THROTTLE_D", 0x49},
	{"PID_ABS_THROTTLE_E", 0x4A},
	{"PID_ABS_THROTTLE_F", 0x4B},
	{"PID_CMD_THROTTLE_ACTUATOR", 0x4C},
	{"PID_TIME_RUN_MIL", 0x4D},
	{"PID_TIME_SINCE_DTC_CLEAR", 0x4E},
	{"PID_FUEL_TYPE", 0x51},
	{"PID_ETHANOL_FUEL_PERC", 0x52},
	{"PID_ABS_EVAP_PRESS", 0x53},
}

func TestPIDCodeValue(t *testing.T) {
	for _, tt := range pidValueTests {
		c, err := PIDCodeValue(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, byte(c), tt.name)
	}
	// 0x00-0x4E contiguous plus 0x51-0x53
	assert.Len(t, AllPIDCodes(), len(pidValueTests))
	assert.Len(t, pidValueTests, 0x4F+3)
}

func TestValueIsCaseInsensitive(t *testing.T) {
	c, err := ServiceCodeValue(" uds_tester_present ")
	require.NoError(t, err)
	assert.Equal(t, ServiceTesterPresent, c)
}

func TestUnknownName(t *testing.T) {
	_, err := ServiceCodeValue("UDS_MAKE_COFFEE")
	require.Error(t, err)

	var unknown *UnknownCodeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, NamespaceService, unknown.Namespace)
	assert.Equal(t, "UDS_MAKE_COFFEE", unknown.Name)

	// a PID name is not a service name
	_, err = ServiceCodeValue("PID_ENGINE_RPM")
	require.ErrorAs(t, err, &unknown)

	_, err = VehicleInfoCodeValue("UDS_SECURITY_ACCESS")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, NamespaceVehicleInfo, unknown.Namespace)

	_, err = PIDCodeValue("VI_VIN")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, NamespacePID, unknown.Namespace)
}

func TestRoundTrip(t *testing.T) {
	for _, c := range AllServiceCodes() {
		name := NameForServiceCode(byte(c))
		back, err := ServiceCodeValue(name)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
	for _, c := range AllVehicleInfoCodes() {
		name := NameForVehicleInfoCode(byte(c))
		back, err := VehicleInfoCodeValue(name)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
	for _, c := range AllPIDCodes() {
		name := NameForPIDCode(byte(c))
		back, err := PIDCodeValue(name)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestNamesAreUnique(t *testing.T) {
	assert.Len(t, serviceCodesByName, len(serviceCodeNames))
	assert.Len(t, vehicleInfoCodesByName, len(vehicleInfoCodeNames))
	assert.Len(t, pidCodesByName, len(pidCodeNames))
}

func TestEveryCodeHasALabel(t *testing.T) {
	for c := range serviceCodeNames {
		assert.Contains(t, serviceCodeLabels, c)
	}
	for c := range vehicleInfoCodeNames {
		assert.Contains(t, vehicleInfoCodeLabels, c)
	}
	for c := range pidCodeNames {
		assert.Contains(t, pidCodeLabels, c)
	}
}

func TestReverseLookupNeverFails(t *testing.T) {
	assert.Equal(t, Unknown, NameForServiceCode(0xFF))
	assert.Equal(t, Unknown, NameForServiceCode(0x00))
	assert.Equal(t, Unknown, NameForVehicleInfoCode(0x0C))
	assert.Equal(t, Unknown, NameForPIDCode(0x4F))
	assert.Equal(t, Unknown, NameForPIDCode(0x5C))

	for b := 0; b <= 0xFF; b++ {
		assert.NotPanics(t, func() {
			NameForServiceCode(byte(b))
			NameForVehicleInfoCode(byte(b))
			NameForPIDCode(byte(b))
		})
	}

	_, ok := LookupServiceCode(0xFF)
	assert.False(t, ok)
	c, ok := LookupServiceCode(0x3E)
	assert.True(t, ok)
	assert.Equal(t, ServiceTesterPresent, c)

	_, ok = LookupVehicleInfoCode(0x0C)
	assert.False(t, ok)
	vi, ok := LookupVehicleInfoCode(0x02)
	assert.True(t, ok)
	assert.Equal(t, VehicleInfoVIN, vi)

	for _, b := range []byte{0x4F, 0x50, 0x5C, 0xFF} {
		pid, ok := LookupPIDCode(b)
		assert.False(t, ok, "0x%02X", b)
		assert.Equal(t, PIDCode(b), pid)
	}
	pid, ok := LookupPIDCode(0x0C)
	assert.True(t, ok)
	assert.Equal(t, PIDEngineRPM, pid)
}

func TestStringAndLabel(t *testing.T) {
	assert.Equal(t, "UDS_SECURITY_ACCESS", ServiceSecurityAccess.String())
	assert.Equal(t, "Security Access", ServiceSecurityAccess.Label())
	assert.Equal(t, "UNKNOWN(0xFF)", ServiceCode(0xFF).String())
	assert.Equal(t, "0xFF", ServiceCode(0xFF).Label())

	assert.Equal(t, "VI_VIN", VehicleInfoVIN.String())
	assert.Equal(t, "Vehicle Identification Number", VehicleInfoVIN.Label())

	assert.Equal(t, "PID_ENGINE_RPM", PIDEngineRPM.String())
	assert.Equal(t, "Engine RPM", PIDEngineRPM.Label())
	assert.Equal(t, "UNKNOWN(0x5C)", PIDCode(0x5C).String())
	assert.Equal(t, "Engine oil temperature", PIDCode(0x5C).Label())
}

func TestPositiveResponse(t *testing.T) {
	assert.Equal(t, byte(0x67), ServiceSecurityAccess.PositiveResponse())
	assert.Equal(t, byte(0x41), ServiceShowCurrent.PositiveResponse())
}

func TestPendingPIDs(t *testing.T) {
	pending := PendingPIDCodes()
	require.Len(t, pending, len(pendingPIDs))
	assert.True(t, slices.IsSorted(pending))
	assert.Equal(t, byte(0x54), pending[0])
	assert.Equal(t, byte(0xC0), pending[len(pending)-1])
	for _, b := range pending {
		assert.False(t, PIDCode(b).IsKnown(), "pending PID 0x%02X is catalogued", b)
		_, ok := PIDDescription(b)
		assert.True(t, ok, "pending PID 0x%02X has no description", b)
	}

	desc, ok := PIDDescription(0x0C)
	assert.True(t, ok)
	assert.Equal(t, "Engine RPM", desc)

	desc, ok = PIDDescription(0xA0)
	assert.True(t, ok)
	assert.Equal(t, "PIDs supported [A1 - C0]", desc)

	_, ok = PIDDescription(0xFE)
	assert.False(t, ok)
	_, ok = PIDDescription(0x4F)
	assert.False(t, ok)
}

func TestPendingPIDCodesReturnsCopy(t *testing.T) {
	pending := PendingPIDCodes()
	pending[0] = 0x4F

	assert.Equal(t, byte(0x54), PendingPIDCodes()[0])
	assert.Len(t, PendingPIDCodes(), len(pendingPIDs))
	_, ok := PIDDescription(0x4F)
	assert.False(t, ok)
	assert.Equal(t, "Engine oil temperature", PIDCode(0x5C).Label())
}

func TestIsSupportedRange(t *testing.T) {
	assert.True(t, PIDSupported01To20.IsSupportedRange())
	assert.True(t, PIDSupported21To40.IsSupportedRange())
	assert.True(t, PIDSupported41To60.IsSupportedRange())
	assert.False(t, PIDEngineRPM.IsSupportedRange())
}

func TestNamespaceLookups(t *testing.T) {
	ns, err := ParseNamespace("VI")
	require.NoError(t, err)
	assert.Equal(t, NamespaceVehicleInfo, ns)

	_, err = ParseNamespace("dtc")
	var unknownNS *UnknownNamespaceError
	require.ErrorAs(t, err, &unknownNS)

	v, err := Value(NamespacePID, "PID_VEHICLE_SPEED")
	require.NoError(t, err)
	assert.Equal(t, byte(0x0D), v)

	// 0x0D is a valid PID but not a valid service
	name, err := Name(NamespaceService, 0x0D)
	require.NoError(t, err)
	assert.Equal(t, Unknown, name)

	name, err = Name(NamespacePID, 0x0D)
	require.NoError(t, err)
	assert.Equal(t, "PID_VEHICLE_SPEED", name)

	_, err = Value(Namespace("dtc"), "P0300")
	require.ErrorAs(t, err, &unknownNS)
	_, err = Name(Namespace("dtc"), 0x01)
	require.ErrorAs(t, err, &unknownNS)

	entries, err := Entries(NamespaceVehicleInfo)
	require.NoError(t, err)
	require.Len(t, entries, 12)
	assert.Equal(t, Entry{Namespace: NamespaceVehicleInfo, Value: 0x02, Name: "VI_VIN", Label: "Vehicle Identification Number"}, entries[2])
}

func TestAllCodesAreSorted(t *testing.T) {
	all := AllServiceCodes()
	for i := 1; i < len(all); i++ {
		assert.Less(t, byte(all[i-1]), byte(all[i]))
	}
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := 0; b <= 0xFF; b++ {
				NameForServiceCode(byte(b))
				_, _ = PIDDescription(byte(b))
			}
			_, _ = ServiceCodeValue("UDS_SECURITY_ACCESS")
		}()
	}
	wg.Wait()
}
