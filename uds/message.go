package uds

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"diagcodes/codes"
)

// 11-bit OBD-II CAN identifiers (ISO 15765-4)
const (
	FunctionalRequestID uint16 = 0x7DF
	TesterID            uint16 = 0x7E0
	ECUID               uint16 = 0x7E8
	lastTesterID        uint16 = 0x7E7
	lastECUID           uint16 = 0x7EF
)

var (
	errorEmptyPayload            = errors.New("empty payload")
	errorNotAResponse            = errors.New("first byte is not a response service id")
	errorTruncatedNegativeReply  = errors.New("negative response is shorter than 3 bytes")
	errorMissingNegativeResponse = errors.New("negative response has no NRC")
)

// Message represents a full diagnostic message with an optional Subfunction and NRC.
type Message struct {
	SenderID    uint16            // The ID of the sender (CAN ID)
	ServiceID   codes.ServiceCode // Request SID, also for responses
	Subfunction *byte             // Optional Subfunction, PID or vehicle info code (nil if not applicable)
	NRC         *NRC              // Negative Response Code, set on negative responses only
	Data        []byte            // Remaining bytes after ServiceID, Subfunction and NRC
	IsSuccess   *bool             // nil for requests
}

// IsRequestID reports whether id is a tester to ECU identifier, functional or physical.
func IsRequestID(id uint16) bool {
	return id == FunctionalRequestID || (id >= TesterID && id <= lastTesterID)
}

// RawDataToMessage decodes a payload (PCI already stripped) sent by senderID. Payloads from tester
// identifiers decode as requests, everything else as positive or negative responses.
// Service bytes outside the registry still decode; their labels fall back to hex.
func RawDataToMessage(senderID uint16, rawData []byte) (*Message, error) {
	if len(rawData) == 0 {
		return nil, errorEmptyPayload
	}

	if IsRequestID(senderID) {
		m := &Message{SenderID: senderID, ServiceID: codes.ServiceCode(rawData[0])}
		m.Subfunction, m.Data = splitSubfunction(rawData[1:])
		return m, nil
	}

	if rawData[0] == codes.NegativeResponseByte {
		if len(rawData) < 3 {
			return nil, errorTruncatedNegativeReply
		}
		isSuccess := false
		nrc := NRC(rawData[2])
		return &Message{
			SenderID:  senderID,
			ServiceID: codes.ServiceCode(rawData[1]),
			NRC:       &nrc,
			Data:      rawData[3:],
			IsSuccess: &isSuccess,
		}, nil
	}

	if rawData[0] < codes.PositiveResponseOffset {
		return nil, fmt.Errorf("%w: 0x%02X", errorNotAResponse, rawData[0])
	}

	isSuccess := true
	m := &Message{
		SenderID:  senderID,
		ServiceID: codes.ServiceCode(rawData[0] - codes.PositiveResponseOffset),
		IsSuccess: &isSuccess,
	}
	m.Subfunction, m.Data = splitSubfunction(rawData[1:])
	return m, nil
}

func splitSubfunction(rest []byte) (*byte, []byte) {
	if len(rest) == 0 {
		return nil, []byte{}
	}
	sub := rest[0]
	return &sub, rest[1:]
}

// IsNegative reports whether m is a negative response.
func (m *Message) IsNegative() bool {
	return m.IsSuccess != nil && !*m.IsSuccess
}

// IsRequest reports whether m is an outgoing request.
func (m *Message) IsRequest() bool {
	return m.IsSuccess == nil
}

// ToRawData is the inverse of RawDataToMessage.
func (m *Message) ToRawData() ([]byte, error) {
	var rawData []byte
	if m.IsSuccess == nil {
		rawData = append(rawData, byte(m.ServiceID))
		if m.Subfunction != nil {
			rawData = append(rawData, *m.Subfunction)
		}
		return append(rawData, m.Data...), nil
	}

	if *m.IsSuccess {
		// The first byte is the original Service ID plus the positive response offset (0x40).
		rawData = append(rawData, m.ServiceID.PositiveResponse())
		if m.Subfunction != nil {
			rawData = append(rawData, *m.Subfunction)
		}
		return append(rawData, m.Data...), nil
	}

	if m.NRC == nil {
		return nil, errorMissingNegativeResponse
	}
	rawData = append(rawData, codes.NegativeResponseByte, byte(m.ServiceID), byte(*m.NRC))
	return append(rawData, m.Data...), nil
}

func (m *Message) ServiceLabel() string {
	return m.ServiceID.Label()
}

func (m *Message) String() string {
	dataStr := ""
	for i := 0; i < len(m.Data); i++ {
		dataStr += fmt.Sprintf("0x%02X ", m.Data[i])
	}
	dataStr = strings.TrimSpace(dataStr)
	if m.IsSuccess == nil {
		return fmt.Sprintf("Request from: %s Service: %s Subfunction: %s ASCII: %s Data: %s", m.SenderLabel(), m.ServiceLabel(), m.SubfunctionLabel(), m.ASCIIRepresentation(), dataStr)
	}
	if *m.IsSuccess {
		return fmt.Sprintf("Response from: %s (+) Service: %s Subfunction: %s ASCII: %s Data: %s", m.SenderLabel(), m.ServiceLabel(), m.SubfunctionLabel(), m.ASCIIRepresentation(), dataStr)
	}
	return fmt.Sprintf("Response from: %s (-) Service: %s NRC: %s", m.SenderLabel(), m.ServiceLabel(), m.NRCLabel())
}

// ASCIIRepresentation returns the alphanumeric ASCII string representation of the message data.
func (m *Message) ASCIIRepresentation() string {
	var sb strings.Builder
	for _, b := range m.Data {
		char := rune(b)
		if char < unicode.MaxASCII && (unicode.IsLetter(char) || unicode.IsDigit(char)) {
			sb.WriteRune(char)
		}
	}
	return sb.String()
}

func (m *Message) SenderLabel() string {
	switch {
	case m.SenderID == FunctionalRequestID:
		return "Broadcast"
	case m.SenderID == TesterID:
		return "Tester"
	case m.SenderID == ECUID:
		return "ECU"
	case m.SenderID > TesterID && m.SenderID <= lastTesterID:
		return fmt.Sprintf("Tester (ECU %d)", m.SenderID-TesterID+1)
	case m.SenderID > ECUID && m.SenderID <= lastECUID:
		return fmt.Sprintf("ECU %d", m.SenderID-ECUID+1)
	default:
		return fmt.Sprintf("0x%03X", m.SenderID)
	}
}
