package ipc

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteMessage frames payload under the given type and writes it to w
// in one call. A short write or I/O failure abandons the exchange; the
// writer's framing state is then indeterminate and the connection must
// not be reused.
func WriteMessage(w io.Writer, t MessageType, payload []byte) error {
	frame := EncodeFrame(t, payload)
	n, err := w.Write(frame)
	if err != nil {
		return fmt.Errorf("ipc: write %s: %w", t, err)
	}
	if n != len(frame) {
		return fmt.Errorf("ipc: write %s: %w", t, io.ErrShortWrite)
	}
	return nil
}

// WriteMessageJSON marshals v and writes it as the payload of a frame.
// Marshal failures surface as a SerializationError before any bytes are
// written, so the connection stays clean.
func WriteMessageJSON(w io.Writer, t MessageType, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return &SerializationError{Type: t, Err: err}
	}
	return WriteMessage(w, t, payload)
}

// ReadMessage reads exactly one frame from r: the fixed-size header,
// then exactly the declared number of payload bytes. It never reads
// past the frame. A connection that closes mid-frame yields
// io.ErrUnexpectedEOF, distinct from the FramingError raised for bad
// magic bytes.
func ReadMessage(r io.Reader) (code uint32, payload []byte, err error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF {
			return 0, nil, fmt.Errorf("ipc: read header: %w", io.ErrUnexpectedEOF)
		}
		return 0, nil, fmt.Errorf("ipc: read header: %w", err)
	}

	length, code, err := DecodeHeader(header)
	if err != nil {
		return 0, nil, err
	}

	payload = make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		// The header promised more bytes than arrived; EOF here is
		// always mid-frame.
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, nil, fmt.Errorf("ipc: read %d-byte payload: %w", length, err)
	}
	return code, payload, nil
}

// Exchange performs one request/response round trip: write the frame,
// then read the matching reply. A write failure short-circuits the
// read. A read failure after a successful write still surfaces, but the
// window manager may already have acted on the request; delivery is
// at-most-once and nothing is retried here.
//
// Unsolicited event frames that arrive before the reply are discarded.
// Connections with active subscriptions should be drained by an event
// listener instead of issuing exchanges.
func Exchange(rw io.ReadWriter, t MessageType, payload []byte) ([]byte, error) {
	if err := WriteMessage(rw, t, payload); err != nil {
		return nil, err
	}
	for {
		code, body, err := ReadMessage(rw)
		if err != nil {
			return nil, err
		}
		if IsEvent(code) {
			continue
		}
		if code != uint32(t) {
			return nil, fmt.Errorf("ipc: reply type %d does not answer %s, connection desynchronized", code, t)
		}
		return body, nil
	}
}
