// Package obd builds and inspects SAE J1979 payloads using the typed codes registry.
// Payloads exclude the ISO-TP PCI byte.
package obd

import (
	"errors"
	"fmt"

	"diagcodes/codes"
)

// MaxPIDsPerRequest is the J1979 limit on PIDs in a single mode 0x01 request.
const MaxPIDsPerRequest = 6

var (
	errorNoPIDs            = errors.New("at least one pid is required")
	errorTooManyPIDs       = fmt.Errorf("at most %d pids can be requested at once", MaxPIDsPerRequest)
	errorShortResponse     = errors.New("response is too short")
	errorNegativeResponse  = errors.New("negative response")
	errorNotSupportedRange = errors.New("pid is not a supported pids request")
	errorBitmapLength      = errors.New("supported pids bitmap must be 4 bytes")
)

// NewCurrentDataRequest returns a mode 0x01 request payload for pids.
func NewCurrentDataRequest(pids ...codes.PIDCode) ([]byte, error) {
	if len(pids) == 0 {
		return nil, errorNoPIDs
	}
	if len(pids) > MaxPIDsPerRequest {
		return nil, errorTooManyPIDs
	}
	payload := make([]byte, 0, len(pids)+1)
	payload = append(payload, byte(codes.ServiceShowCurrent))
	for _, pid := range pids {
		payload = append(payload, byte(pid))
	}
	return payload, nil
}

// NewFreezeFrameRequest returns a mode 0x02 request payload for pid in freeze frame frame.
func NewFreezeFrameRequest(pid codes.PIDCode, frame byte) []byte {
	return []byte{byte(codes.ServiceShowFreeze), byte(pid), frame}
}

// NewVehicleInfoRequest returns a mode 0x09 request payload.
func NewVehicleInfoRequest(info codes.VehicleInfoCode) []byte {
	return []byte{byte(codes.ServiceVehicleInfo), byte(info)}
}

// Header is the decoded start of a positive OBD-II response.
type Header struct {
	Service     codes.ServiceCode
	PID         codes.PIDCode         // modes 0x01 and 0x02
	VehicleInfo codes.VehicleInfoCode // mode 0x09
	HasSubcode  bool
	Data        []byte
}

// ParseResponseHeader reads the service and, for modes 0x01, 0x02 and 0x09, the typed sub-code
// from a positive response. Unknown services and sub-codes are returned as-is.
func ParseResponseHeader(payload []byte) (Header, error) {
	if len(payload) == 0 {
		return Header{}, errorShortResponse
	}
	if payload[0] == codes.NegativeResponseByte {
		if len(payload) >= 3 {
			return Header{}, fmt.Errorf("%w to %s: 0x%02X", errorNegativeResponse, codes.ServiceCode(payload[1]), payload[2])
		}
		return Header{}, errorNegativeResponse
	}
	if payload[0] < codes.PositiveResponseOffset {
		return Header{}, fmt.Errorf("0x%02X is not a positive response", payload[0])
	}

	h := Header{Service: codes.ServiceCode(payload[0] - codes.PositiveResponseOffset)}
	rest := payload[1:]
	switch h.Service {
	case codes.ServiceShowCurrent, codes.ServiceShowFreeze:
		if len(rest) == 0 {
			return Header{}, fmt.Errorf("%w: %s without pid", errorShortResponse, h.Service)
		}
		h.PID, h.HasSubcode = codes.PIDCode(rest[0]), true
		rest = rest[1:]
	case codes.ServiceVehicleInfo:
		if len(rest) == 0 {
			return Header{}, fmt.Errorf("%w: %s without info type", errorShortResponse, h.Service)
		}
		h.VehicleInfo, h.HasSubcode = codes.VehicleInfoCode(rest[0]), true
		rest = rest[1:]
	}
	h.Data = rest
	return h, nil
}

// DecodeSupportedPIDs expands the 4 byte bitmap returned for a "PIDs supported" request.
// Bit 7 of the first byte is base+1, bit 0 of the last byte is base+0x20.
func DecodeSupportedPIDs(base codes.PIDCode, bitmap []byte) ([]codes.PIDCode, error) {
	if !base.IsSupportedRange() {
		return nil, fmt.Errorf("%w: %s", errorNotSupportedRange, base)
	}
	if len(bitmap) != 4 {
		return nil, errorBitmapLength
	}
	var supported []codes.PIDCode
	for i, b := range bitmap {
		for bit := 0; bit < 8; bit++ {
			offset := i*8 + bit + 1
			if b&(0x80>>bit) == 0 || int(base)+offset > 0xFF {
				continue
			}
			supported = append(supported, base+codes.PIDCode(offset))
		}
	}
	return supported, nil
}

// HasNextRange reports whether the last PID of a supported bitmap announces the next range.
func HasNextRange(base codes.PIDCode, supported []codes.PIDCode) bool {
	if int(base)+0x20 > 0xFF {
		return false
	}
	next := base + 0x20
	for _, pid := range supported {
		if pid == next {
			return true
		}
	}
	return false
}
