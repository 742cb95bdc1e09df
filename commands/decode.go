package commands

import (
	"errors"
	"fmt"
	"io"

	"diagcodes/canbus"
	"diagcodes/logging"
	"diagcodes/uds"
	"diagcodes/utils"
)

var errorNothingToDecode = errors.New("either a frame or a payload is required")

type DecodeOptions struct {
	Frame    string // candump style frame, "7E8#037F2735"
	Payload  string // hex payload without PCI byte, "7F2735"
	SenderID string // used with Payload
}

// RunDecode decodes one frame or payload and prints the message line.
func RunDecode(opts DecodeOptions, w io.Writer, l *logging.Logger) error {
	var (
		senderID uint16
		payload  []byte
		frame    *canbus.Frame
		err      error
	)

	switch {
	case opts.Frame != "":
		frame, err = canbus.ParseFrame(opts.Frame)
		if err != nil {
			return err
		}
		l.WriteLog(fmt.Sprintf("RECEIVED: %s", frame.String()), logging.LogLevelDebug)
		payload, err = frame.SingleFramePayload()
		if err != nil {
			return err
		}
		senderID = frame.ID
	case opts.Payload != "":
		senderID, err = utils.ParseCANID(opts.SenderID)
		if err != nil {
			return err
		}
		payload, err = utils.HexStringToBytes(opts.Payload)
		if err != nil {
			return err
		}
	default:
		return errorNothingToDecode
	}

	m, err := uds.RawDataToMessage(senderID, payload)
	if err != nil {
		return fmt.Errorf("decoding % X from 0x%03X: %w", payload, senderID, err)
	}
	l.Zerolog().Debug().
		Str("service", m.ServiceID.String()).
		Bool("request", m.IsRequest()).
		Bool("negative", m.IsNegative()).
		Msg("decoded message")

	_, err = fmt.Fprintln(w, m.String())
	return err
}
