package frontpanel

import (
	"encoding/binary"

	"vkpad/hal"
	"vkpad/sdr/touch"
)

// Message kinds sent from the input task to the UI task.
const (
	MsgPress uint16 = iota + 1
	MsgKey
)

func encodePress(p touch.Press) []byte {
	var b [5]byte
	binary.LittleEndian.PutUint16(b[0:], uint16(p.X))
	binary.LittleEndian.PutUint16(b[2:], uint16(p.Y))
	if p.Long {
		b[4] = 1
	}
	return b[:]
}

func decodePress(b []byte) (touch.Press, bool) {
	if len(b) != 5 {
		return touch.Press{}, false
	}
	return touch.Press{
		X:    int16(binary.LittleEndian.Uint16(b[0:])),
		Y:    int16(binary.LittleEndian.Uint16(b[2:])),
		Long: b[4] != 0,
	}, true
}

func encodeKey(code hal.KeyCode) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(code))
	return b[:]
}

func decodeKey(b []byte) (hal.KeyCode, bool) {
	if len(b) != 2 {
		return hal.KeyUnknown, false
	}
	return hal.KeyCode(binary.LittleEndian.Uint16(b)), true
}
