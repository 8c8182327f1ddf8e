package journal

import (
	"fmt"
)

func unmarshalInsertMessage(data []byte) (msg InsertMessage, err error) {
	if len(data) != insertMessageSize {
		err = fmt.Errorf("%w: type 'I' (InsertMessage) has %d bytes", ErrorInvalidMessageSize, len(data))
		return
	}
	msg.Type, data = readByte(data)
	msg.Key, data = readUint128(data)
	msg.Value, _ = readUint64(data)
	return
}

func unmarshalDeleteMessage(data []byte) (msg DeleteMessage, err error) {
	if len(data) != deleteMessageSize {
		err = fmt.Errorf("%w: type 'D' (DeleteMessage) has %d bytes", ErrorInvalidMessageSize, len(data))
		return
	}
	msg.Type, data = readByte(data)
	msg.Key, _ = readUint128(data)
	return
}

func unmarshalFindMessage(data []byte) (msg FindMessage, err error) {
	if len(data) != findMessageSize {
		err = fmt.Errorf("%w: type 'F' (FindMessage) has %d bytes", ErrorInvalidMessageSize, len(data))
		return
	}
	msg.Type, data = readByte(data)
	msg.Key, _ = readUint128(data)
	return
}

func unmarshalClearMessage(data []byte) (msg ClearMessage, err error) {
	if len(data) != clearMessageSize {
		err = fmt.Errorf("%w: type 'C' (ClearMessage) has %d bytes", ErrorInvalidMessageSize, len(data))
		return
	}
	msg.Type, _ = readByte(data)
	return
}

func unmarshalUnknownMessage(data []byte) (msg UnknownMessage, err error) {
	if len(data) < 1 {
		err = fmt.Errorf("%w: unknown message is empty", ErrorInvalidMessageSize)
		return
	}
	msg.Type, _ = readByte(data)
	// Processor reuses its buffers
	msg.Data = append([]byte(nil), data...)
	return
}
