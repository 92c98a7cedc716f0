package ipc_test

import (
	"bytes"
	"errors"
	"testing"

	"i3ctl/internal/ipc"
)

func TestEncodeFrameRunCommand(t *testing.T) {
	frame := ipc.EncodeFrame(ipc.RunCommand, []byte("exec firefox"))

	want := append([]byte("i3-ipc"),
		0x0c, 0x00, 0x00, 0x00, // length 12
		0x00, 0x00, 0x00, 0x00, // run_command
	)
	want = append(want, []byte("exec firefox")...)
	if !bytes.Equal(frame, want) {
		t.Fatalf("frame mismatch:\n got %x\nwant %x", frame, want)
	}

	length, code, err := ipc.DecodeHeader(frame)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if length != 12 || code != uint32(ipc.RunCommand) {
		t.Fatalf("decoded (length=%d, code=%d), want (12, 0)", length, code)
	}
	if got := string(frame[14 : 14+length]); got != "exec firefox" {
		t.Fatalf("payload %q, want %q", got, "exec firefox")
	}
}

func TestFrameRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		msgType ipc.MessageType
		payload []byte
	}{
		{"empty payload", ipc.GetWorkspaces, nil},
		{"text payload", ipc.RunCommand, []byte("workspace 3")},
		{"json payload", ipc.Subscribe, []byte(`["workspace","window"]`)},
		{"binary payload", ipc.SendTick, []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large payload", ipc.GetTree, bytes.Repeat([]byte("x"), 1<<16)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frame := ipc.EncodeFrame(tc.msgType, tc.payload)

			length, code, err := ipc.DecodeHeader(frame)
			if err != nil {
				t.Fatalf("DecodeHeader: %v", err)
			}
			if code != uint32(tc.msgType) {
				t.Fatalf("code %d, want %d", code, tc.msgType)
			}
			if int(length) != len(tc.payload) {
				t.Fatalf("declared length %d, want %d", length, len(tc.payload))
			}
			if len(frame) != 14+len(tc.payload) {
				t.Fatalf("frame size %d, want %d", len(frame), 14+len(tc.payload))
			}
			if !bytes.Equal(frame[14:], tc.payload) {
				t.Fatal("payload bytes not preserved")
			}
		})
	}
}

func TestDecodeHeaderBadMagic(t *testing.T) {
	frame := ipc.EncodeFrame(ipc.RunCommand, []byte("exec firefox"))
	frame[0] = 'X' // "X3-ipc"

	_, _, err := ipc.DecodeHeader(frame)
	var framing *ipc.FramingError
	if !errors.As(err, &framing) {
		t.Fatalf("expected FramingError, got %v", err)
	}
	if string(framing.Header) != "X3-ipc" {
		t.Fatalf("FramingError carries %q, want %q", framing.Header, "X3-ipc")
	}
}

func TestDecodeHeaderTooShort(t *testing.T) {
	_, _, err := ipc.DecodeHeader([]byte("i3-ipc\x01"))
	var framing *ipc.FramingError
	if !errors.As(err, &framing) {
		t.Fatalf("expected FramingError for short header, got %v", err)
	}
}
