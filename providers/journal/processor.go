package journal

import (
	"fmt"
	"io"
)

// Processor decodes a stream of length prefixed journal messages and dispatches them to the handler.
// Messages and their length prefixes may be split between chunks arbitrarily.
type Processor struct {
	handler        Handler
	unmarshalFuncs [256]func([]byte) error
	msgLength      int
	cache          []byte
	processed      int
}

func NewProcessor(handler Handler) *Processor {
	processor := &Processor{
		handler: handler,
		cache:   make([]byte, 0, MaxMessageSize+2),
	}
	processor.initialize()
	return processor
}

// Processed returns amount of messages dispatched so far.
func (p *Processor) Processed() int {
	return p.processed
}

// Process reads the whole stream. A message truncated by the end of the stream is reported as io.ErrUnexpectedEOF.
func (p *Processor) Process(reader io.Reader) (err error) {
	chunk := make([]byte, 1024*1024)
	for readBytes := 0; err != io.EOF; {
		// Read chunk bytes
		readBytes, err = reader.Read(chunk)
		if err != nil && err != io.EOF {
			return err
		}
		// Process the chunk
		if err := p.ProcessChunk(chunk[:readBytes]); err != nil {
			return err
		}
	}
	if p.msgLength > 0 || len(p.cache) > 0 {
		return fmt.Errorf("journal ends inside message %d: %w", p.processed+1, io.ErrUnexpectedEOF)
	}
	return nil
}

// ProcessChunk consumes next part of the stream.
func (p *Processor) ProcessChunk(chunk []byte) (err error) {

	for offset, size := 0, len(chunk); offset < size; {

		if p.msgLength == 0 {
			remaining := size - offset

			// Collect message size into the cache
			if len(p.cache) == 1 || (len(p.cache) == 0 && remaining < 2) {
				p.cache = append(p.cache, chunk[offset])
				offset++
				if len(p.cache) < 2 {
					continue
				}
			}

			// Read a new message size
			var msgLength uint16
			if len(p.cache) == 0 {
				// Read the message size directly from the input buffer
				msgLength, _ = readUint16(chunk[offset : offset+2])
				offset += 2
			} else {
				// Read the message size from the cache
				msgLength, _ = readUint16(p.cache[:2])
				// Clear the cache
				p.cache = p.cache[:0]
			}
			if msgLength == 0 {
				return fmt.Errorf("%w: message %d is empty", ErrorInvalidMessageSize, p.processed+1)
			}
			p.msgLength = int(msgLength)
			continue
		}

		remaining := size - offset

		// Complete or place the message into the cache
		if len(p.cache) > 0 {
			tail := min(p.msgLength-len(p.cache), remaining)
			p.cache = append(p.cache, chunk[offset:offset+tail]...)
			offset += tail
			if p.msgLength > len(p.cache) {
				continue
			}
		} else if p.msgLength > remaining {
			p.cache = append(p.cache, chunk[offset:offset+remaining]...)
			offset += remaining
			continue
		}

		// Process the current message
		if len(p.cache) == 0 {
			// Process the current message directly from the input buffer
			err = p.dispatch(chunk[offset : offset+p.msgLength])
			offset += p.msgLength
		} else {
			// Process the current message from the cache
			err = p.dispatch(p.cache[:p.msgLength])
			// Clear the cache
			p.cache = p.cache[:0]
		}
		if err != nil {
			return err
		}

		// Process the next message
		p.msgLength = 0
	}

	return nil
}

func (p *Processor) dispatch(data []byte) error {
	p.processed++
	if err := p.unmarshalFuncs[data[0]](data); err != nil {
		return fmt.Errorf("message %d: %w", p.processed, err)
	}
	return nil
}

func (p *Processor) initialize() {
	p.unmarshalFuncs[MessageTypeInsert] = func(data []byte) error {
		msg, err := unmarshalInsertMessage(data)
		if err != nil {
			return err
		}
		return p.handler.OnInsertMessage(msg)
	}
	p.unmarshalFuncs[MessageTypeDelete] = func(data []byte) error {
		msg, err := unmarshalDeleteMessage(data)
		if err != nil {
			return err
		}
		return p.handler.OnDeleteMessage(msg)
	}
	p.unmarshalFuncs[MessageTypeFind] = func(data []byte) error {
		msg, err := unmarshalFindMessage(data)
		if err != nil {
			return err
		}
		return p.handler.OnFindMessage(msg)
	}
	p.unmarshalFuncs[MessageTypeClear] = func(data []byte) error {
		msg, err := unmarshalClearMessage(data)
		if err != nil {
			return err
		}
		return p.handler.OnClearMessage(msg)
	}
	// All other message types are unknown:
	unknownUnmarshalFunc := func(data []byte) error {
		msg, err := unmarshalUnknownMessage(data)
		if err != nil {
			return err
		}
		return p.handler.OnUnknownMessage(msg)
	}
	for i := 0; i < 256; i++ {
		if p.unmarshalFuncs[i] == nil {
			p.unmarshalFuncs[i] = unknownUnmarshalFunc
		}
	}
}
