package canbus

import (
	"errors"
	"fmt"
	"strings"

	"go.einride.tech/can"
)

// ISO-TP protocol control information frame types (upper nibble of the first data byte)
const (
	PCIFrameTypeSF byte = 0x0
	PCIFrameTypeFF byte = 0x1
	PCIFrameTypeCF byte = 0x2
	PCIFrameTypeFC byte = 0x3
)

var (
	errorExtendedID      = errors.New("29-bit identifiers are not supported")
	errorInvalidFrame    = errors.New("invalid frame")
	errorRemoteFrame     = errors.New("remote frames carry no payload")
	errorEmptyFrame      = errors.New("frame has no data")
	errorNotSingleFrame  = errors.New("only single frames can be decoded")
	errorInvalidSFLength = errors.New("single frame length does not fit the frame")
)

// Frame represents a CAN bus data frame with an 11-bit identifier.
type Frame struct {
	ID   uint16   // CAN identifier
	DLC  uint8    // Data Length Code (0-8)
	Data [8]uint8 // Data payload
}

// ParseFrame reads a candump style "7E8#0441055A" frame.
func ParseFrame(in string) (*Frame, error) {
	var f can.Frame
	if err := f.UnmarshalString(strings.ToUpper(strings.TrimSpace(in))); err != nil {
		return nil, fmt.Errorf("parsing frame %q: %w", in, err)
	}
	if f.IsExtended {
		return nil, errorExtendedID
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w %q: %w", errorInvalidFrame, in, err)
	}
	if f.IsRemote {
		return nil, errorRemoteFrame
	}
	frame := &Frame{ID: uint16(f.ID), DLC: f.Length}
	copy(frame.Data[:], f.Data[:f.Length])
	return frame, nil
}

// FrameType returns the PCI frame type of the first data byte.
func (f *Frame) FrameType() (byte, error) {
	if f.DLC == 0 {
		return 0, errorEmptyFrame
	}
	return (f.Data[0] & 0xF0) >> 4, nil
}

// SingleFramePayload returns the diagnostic payload of a single frame, PCI byte removed.
func (f *Frame) SingleFramePayload() ([]byte, error) {
	pciFrameType, err := f.FrameType()
	if err != nil {
		return nil, err
	}
	if pciFrameType != PCIFrameTypeSF {
		return nil, fmt.Errorf("%w: pci type 0x%X", errorNotSingleFrame, pciFrameType)
	}
	// Lower nibble of the PCI byte is the payload length
	dataLength := f.Data[0] & 0x0F
	if dataLength == 0 || dataLength > f.DLC-1 {
		return nil, errorInvalidSFLength
	}
	data := make([]byte, dataLength)
	copy(data, f.Data[1:dataLength+1])
	return data, nil
}

// String method to provide a human-readable representation of the CAN Frame.
func (f *Frame) String() string {
	formattedData := make([]string, f.DLC)
	for i := 0; i < int(f.DLC); i++ {
		formattedData[i] = fmt.Sprintf("0x%02X", f.Data[i])
	}
	return fmt.Sprintf("ID: 0x%X, DLC: %d, Data: %s", f.ID, f.DLC, strings.Join(formattedData, " "))
}
