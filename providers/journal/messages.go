package journal

import (
	"lukechampine.com/uint128"
)

// Message types are the first byte of every journal message.
const (
	MessageTypeInsert byte = 'I'
	MessageTypeDelete byte = 'D'
	MessageTypeFind   byte = 'F'
	MessageTypeClear  byte = 'C'
)

// Sizes of known messages not including the length prefix.
const (
	insertMessageSize = 1 + 16 + 8
	deleteMessageSize = 1 + 16
	findMessageSize   = 1 + 16
	clearMessageSize  = 1
)

// MaxMessageSize is the largest message representable with 2 bytes length prefix.
const MaxMessageSize = 1<<16 - 1

type InsertMessage struct {
	Type  byte
	Key   uint128.Uint128
	Value uint64
}

type DeleteMessage struct {
	Type byte
	Key  uint128.Uint128
}

type FindMessage struct {
	Type byte
	Key  uint128.Uint128
}

type ClearMessage struct {
	Type byte
}

type UnknownMessage struct {
	Type byte
	Data []byte
}
