package websocket

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	opContinuation byte = 0x0
	opText         byte = 0x1
	opBinary       byte = 0x2
	opClose        byte = 0x8
	opPing         byte = 0x9
	opPong         byte = 0xa
)

const maxMessageSize = 64 << 10

var (
	errConnectionClosed = errors.New("connection closed by peer")
	errMessageTooLarge  = errors.New("message is too large")
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	mask    []byte // only clients mask their frames
	payload []byte
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is shared by requests and responses. Cell is a pointer so that
// an absent cell can be told apart from cell 0.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
	Error  string         `json:"error,omitempty"`
	Code   string         `json:"code,omitempty"`
}

// connection is one upgraded client. Writes may come from the fan-out of
// other players' moves, so they are serialized.
type connection struct {
	mu    sync.Mutex
	conn  net.Conn
	bufrw *bufio.ReadWriter

	// set by the read loop only
	playerID string
}

func newConnection(conn net.Conn, bufrw *bufio.ReadWriter) *connection {
	return &connection{
		conn:  conn,
		bufrw: bufrw,
	}
}

func (that *connection) sendMessage(action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{
		Action:  action,
		Payload: payloadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return that.writeFrame(frame{
		isFin:   true,
		opCode:  opText,
		payload: responseBytes,
	})
}

func (that *connection) writeFrame(f frame) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := writeFrame(that.bufrw.Writer, f); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

// readMessage returns the next complete data message. Control frames are
// answered on the way.
func (that *connection) readMessage() ([]byte, error) {
	var message []byte

	for {
		f, err := readFrame(that.bufrw.Reader)
		if err != nil {
			return nil, err
		}

		switch f.opCode {
		case opClose:
			// echo the status code back, the peer closes the TCP connection
			_ = that.writeFrame(frame{isFin: true, opCode: opClose, payload: f.payload})
			return nil, errConnectionClosed
		case opPing:
			if err = that.writeFrame(frame{isFin: true, opCode: opPong, payload: f.payload}); err != nil {
				return nil, err
			}
			continue
		case opPong:
			continue
		}

		if len(message)+len(f.payload) > maxMessageSize {
			return nil, errMessageTooLarge
		}

		message = append(message, f.payload...)
		if f.isFin {
			return message, nil
		}
	}
}

func writeFrame(writer *bufio.Writer, f frame) error {
	header := make([]byte, 2, 14)
	header[0] = f.opCode
	if f.isFin {
		header[0] |= 0x80
	}

	length := len(f.payload)

	switch {
	case length < 126:
		header[1] = byte(length)
	case length < 1<<16:
		header[1] = 126
		header = binary.BigEndian.AppendUint16(header, uint16(length))
	default:
		header[1] = 127
		header = binary.BigEndian.AppendUint64(header, uint64(length))
	}

	payload := f.payload
	if f.mask != nil {
		header[1] |= 0x80
		header = append(header, f.mask...)
		payload = applyMask(append([]byte(nil), f.payload...), f.mask)
	}

	if _, err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := writer.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

func readFrame(reader *bufio.Reader) (frame, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(reader, header); err != nil {
		return frame{}, fmt.Errorf("failed to read header: %w", err)
	}

	f := frame{
		isFin:  header[0]&0x80 != 0,
		opCode: header[0] & 0x0f,
	}

	size, err := readPayloadLength(reader, header[1]&0x7f)
	if err != nil {
		return frame{}, err
	}

	if size > maxMessageSize {
		return frame{}, errMessageTooLarge
	}

	if header[1]&0x80 != 0 {
		f.mask = make([]byte, 4)
		if _, err = io.ReadFull(reader, f.mask); err != nil {
			return frame{}, fmt.Errorf("failed to read mask: %w", err)
		}
	}

	f.payload = make([]byte, size)
	if _, err = io.ReadFull(reader, f.payload); err != nil {
		return frame{}, fmt.Errorf("failed to read payload: %w", err)
	}

	if f.mask != nil {
		applyMask(f.payload, f.mask)
	}

	return f, nil
}

func readPayloadLength(reader *bufio.Reader, payloadLen byte) (uint64, error) {
	switch payloadLen {
	case 126:
		length := make([]byte, 2)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}
		return uint64(binary.BigEndian.Uint16(length)), nil
	case 127:
		length := make([]byte, 8)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}
		return binary.BigEndian.Uint64(length), nil
	default:
		return uint64(payloadLen), nil
	}
}

func applyMask(payload, mask []byte) []byte {
	for i := range payload {
		payload[i] ^= mask[i%4]
	}

	return payload
}
