package journal

import (
	"lukechampine.com/uint128"
)

// AppendInsertMessage appends length prefixed insert message to dst.
func AppendInsertMessage(dst []byte, key uint128.Uint128, value uint64) []byte {
	dst = appendUint16(dst, insertMessageSize)
	dst = append(dst, MessageTypeInsert)
	dst = appendUint128(dst, key)
	return appendUint64(dst, value)
}

// AppendDeleteMessage appends length prefixed delete message to dst.
func AppendDeleteMessage(dst []byte, key uint128.Uint128) []byte {
	dst = appendUint16(dst, deleteMessageSize)
	dst = append(dst, MessageTypeDelete)
	return appendUint128(dst, key)
}

// AppendFindMessage appends length prefixed find message to dst.
func AppendFindMessage(dst []byte, key uint128.Uint128) []byte {
	dst = appendUint16(dst, findMessageSize)
	dst = append(dst, MessageTypeFind)
	return appendUint128(dst, key)
}

// AppendClearMessage appends length prefixed clear message to dst.
func AppendClearMessage(dst []byte) []byte {
	dst = appendUint16(dst, clearMessageSize)
	return append(dst, MessageTypeClear)
}

// AppendRawMessage appends arbitrary message data with length prefix to dst.
func AppendRawMessage(dst []byte, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst, ErrorInvalidMessageSize
	}
	if len(data) > MaxMessageSize {
		return dst, ErrorMessageTooLarge
	}
	dst = appendUint16(dst, uint16(len(data)))
	return append(dst, data...), nil
}
