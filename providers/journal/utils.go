package journal

import (
	"encoding/binary"

	"lukechampine.com/uint128"
)

func readByte(data []byte) (byte, []byte) {
	return data[0], data[1:]
}

func readUint16(data []byte) (uint16, []byte) {
	return binary.BigEndian.Uint16(data), data[2:]
}

func readUint64(data []byte) (uint64, []byte) {
	return binary.BigEndian.Uint64(data), data[8:]
}

func readUint128(data []byte) (uint128.Uint128, []byte) {
	return uint128.FromBytesBE(data[:16]), data[16:]
}

func appendUint16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

func appendUint64(dst []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, v)
}

func appendUint128(dst []byte, v uint128.Uint128) []byte {
	var b [16]byte
	v.PutBytesBE(b[:])
	return append(dst, b[:]...)
}
