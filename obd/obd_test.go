package obd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diagcodes/codes"
)

func TestNewCurrentDataRequest(t *testing.T) {
	payload, err := NewCurrentDataRequest(codes.PIDEngineRPM, codes.PIDVehicleSpeed)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x0C, 0x0D}, payload)

	_, err = NewCurrentDataRequest()
	assert.ErrorIs(t, err, errorNoPIDs)

	_, err = NewCurrentDataRequest(0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07)
	assert.ErrorIs(t, err, errorTooManyPIDs)
}

func TestNewFreezeFrameRequest(t *testing.T) {
	assert.Equal(t, []byte{0x02, 0x05, 0x00}, NewFreezeFrameRequest(codes.PIDEngineCoolantTemp, 0))
}

func TestNewVehicleInfoRequest(t *testing.T) {
	assert.Equal(t, []byte{0x09, 0x02}, NewVehicleInfoRequest(codes.VehicleInfoVIN))
}

func TestParseResponseHeader(t *testing.T) {
	h, err := ParseResponseHeader([]byte{0x41, 0x0D, 0x32})
	require.NoError(t, err)
	assert.Equal(t, codes.ServiceShowCurrent, h.Service)
	assert.True(t, h.HasSubcode)
	assert.Equal(t, codes.PIDVehicleSpeed, h.PID)
	assert.Equal(t, []byte{0x32}, h.Data)

	h, err = ParseResponseHeader([]byte{0x49, 0x0A, 0x01, 'E', 'C', 'M'})
	require.NoError(t, err)
	assert.Equal(t, codes.ServiceVehicleInfo, h.Service)
	assert.Equal(t, codes.VehicleInfoECUName, h.VehicleInfo)
	assert.Equal(t, []byte{0x01, 'E', 'C', 'M'}, h.Data)

	h, err = ParseResponseHeader([]byte{0x44})
	require.NoError(t, err)
	assert.Equal(t, codes.ServiceClearDTC, h.Service)
	assert.False(t, h.HasSubcode)
	assert.Empty(t, h.Data)
}

func TestParseResponseHeaderErrors(t *testing.T) {
	_, err := ParseResponseHeader(nil)
	assert.ErrorIs(t, err, errorShortResponse)

	_, err = ParseResponseHeader([]byte{0x41})
	assert.ErrorIs(t, err, errorShortResponse)

	_, err = ParseResponseHeader([]byte{0x7F, 0x01, 0x12})
	require.ErrorIs(t, err, errorNegativeResponse)
	assert.Contains(t, err.Error(), "OBDII_SHOW_CURRENT")

	_, err = ParseResponseHeader([]byte{0x01, 0x0C})
	assert.Error(t, err)
}

func TestDecodeSupportedPIDs(t *testing.T) {
	// BE 1F A8 13 is the classic example from SAE J1979
	supported, err := DecodeSupportedPIDs(codes.PIDSupported01To20, []byte{0xBE, 0x1F, 0xA8, 0x13})
	require.NoError(t, err)
	assert.Equal(t, []codes.PIDCode{
		0x01, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x0C, 0x0D, 0x0E, 0x0F, 0x10,
		0x11, 0x13, 0x15,
		0x1C, 0x1F, 0x20,
	}, supported)
	assert.True(t, HasNextRange(codes.PIDSupported01To20, supported))

	supported, err = DecodeSupportedPIDs(codes.PIDSupported41To60, []byte{0x80, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []codes.PIDCode{codes.PIDMonitorStatusThisCycle}, supported)
	assert.False(t, HasNextRange(codes.PIDSupported41To60, supported))

	supported, err = DecodeSupportedPIDs(0xE0, []byte{0x00, 0x00, 0x00, 0x03})
	require.NoError(t, err)
	assert.Equal(t, []codes.PIDCode{0xFF}, supported)
	assert.False(t, HasNextRange(0xE0, supported))
}

func TestDecodeSupportedPIDsErrors(t *testing.T) {
	_, err := DecodeSupportedPIDs(codes.PIDEngineRPM, []byte{0, 0, 0, 0})
	assert.ErrorIs(t, err, errorNotSupportedRange)

	_, err = DecodeSupportedPIDs(codes.PIDSupported01To20, []byte{0, 0})
	assert.ErrorIs(t, err, errorBitmapLength)
}
