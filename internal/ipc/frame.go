package ipc

import "encoding/binary"

// Wire layout: 6 magic bytes, 4-byte little-endian payload length,
// 4-byte little-endian type code, then exactly length payload bytes.
const (
	magic      = "i3-ipc"
	magicLen   = len(magic)
	headerLen  = magicLen + 8
	lenOffset  = magicLen
	typeOffset = magicLen + 4
)

// EncodeFrame serializes one complete frame. No length cap is enforced
// here; the transport imposes its own limits.
func EncodeFrame(t MessageType, payload []byte) []byte {
	buf := make([]byte, headerLen+len(payload))
	copy(buf, magic)
	binary.LittleEndian.PutUint32(buf[lenOffset:], uint32(len(payload)))
	binary.LittleEndian.PutUint32(buf[typeOffset:], uint32(t))
	copy(buf[headerLen:], payload)
	return buf
}

// DecodeHeader validates a complete fixed-size header and returns the
// declared payload length and raw type code. The caller accumulates the
// header bytes; no partial state is kept here.
func DecodeHeader(header []byte) (payloadLen, code uint32, err error) {
	if len(header) < headerLen {
		return 0, 0, &FramingError{Header: append([]byte(nil), header...)}
	}
	if string(header[:magicLen]) != magic {
		return 0, 0, &FramingError{Header: append([]byte(nil), header[:magicLen]...)}
	}
	payloadLen = binary.LittleEndian.Uint32(header[lenOffset:typeOffset])
	code = binary.LittleEndian.Uint32(header[typeOffset:headerLen])
	return payloadLen, code, nil
}
