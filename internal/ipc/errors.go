package ipc

import "fmt"

// FramingError reports a header whose magic bytes do not match the
// protocol constant. The connection is desynchronized; re-reading
// cannot recover it and the caller must discard the connection.
type FramingError struct {
	Header []byte
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("ipc: bad magic %q (want %q), connection desynchronized", e.Header, magic)
}

// SerializationError reports a payload that could not be JSON-encoded.
// It is raised before any bytes reach the wire, so the connection stays
// usable and the caller may retry with corrected input.
type SerializationError struct {
	Type MessageType
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("ipc: encode %s payload: %v", e.Type, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DecodeError reports a reply payload that did not match the expected
// shape. The frame itself was read completely, so the connection
// remains positioned at the next frame boundary and stays usable.
type DecodeError struct {
	Type MessageType
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ipc: decode %s reply: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
